package cipher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	require.Equal(t, "HELLOWORLD", Clean("HELLO WORLD"))
	require.Equal(t, "AB", Clean("a-A,b B!"))
	require.Empty(t, Clean("123 ?"))
}

func TestTrimPadding(t *testing.T) {
	require.Equal(t, "ATTACK", TrimPadding("ATTACKXXX"))
	require.Equal(t, "ATTACK", TrimPadding("ATTACK"))
	require.Equal(t, "XA", TrimPadding("XAX"))
	require.Empty(t, TrimPadding("XXXX"))
}
