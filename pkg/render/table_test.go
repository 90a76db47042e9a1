package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/birdayz/transpose/pkg/cipher"
)

func TestWriteGrid(t *testing.T) {
	var buf bytes.Buffer
	key := cipher.MustParseKey("31425")
	err := WriteGrid(&buf, key, cipher.NewGrid("HELLOWORLD", key.Len()))
	require.NoError(t, err)

	want := "" +
		"  +---+---+---+---+---+\n" +
		"  | 3 | 1 | 4 | 2 | 5 |\n" +
		"  +---+---+---+---+---+\n" +
		"1 | H | E | L | L | O |\n" +
		"  +---+---+---+---+---+\n" +
		"2 | W | O | R | L | D |\n" +
		"  +---+---+---+---+---+\n"
	require.Equal(t, want, buf.String())
}

func TestWriteGrid_RowNumberWidth(t *testing.T) {
	var buf bytes.Buffer
	key := cipher.MustParseKey("1")
	err := WriteGrid(&buf, key, cipher.NewGrid("ABCDEFGHIJ", 1))
	require.NoError(t, err)

	require.Contains(t, buf.String(), "   +---+\n   | 1 |\n")
	require.Contains(t, buf.String(), " 9 | I |\n")
	require.Contains(t, buf.String(), "10 | J |\n")
}

func TestWriteGrid_WideKey(t *testing.T) {
	var buf bytes.Buffer
	key, err := cipher.NewKey([]int{2, 10, 1, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	require.NoError(t, WriteGrid(&buf, key, cipher.NewGrid("ABCDEFGHIJ", key.Len())))

	require.Contains(t, buf.String(), "  |  2 | 10 |  1 |")
	require.Contains(t, buf.String(), "1 |  A |  B |  C |")
}

func TestWriteGrid_Empty(t *testing.T) {
	var buf bytes.Buffer
	key := cipher.MustParseKey("21")
	require.NoError(t, WriteGrid(&buf, key, cipher.NewGrid("", 2)))
	require.Equal(t, "  +---+---+\n  | 2 | 1 |\n  +---+---+\n", buf.String())
}

func TestFormatKey(t *testing.T) {
	require.Equal(t, "[3, 1, 4, 2, 5]", FormatKey(cipher.MustParseKey("31425")))
}
