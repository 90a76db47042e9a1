package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/birdayz/transpose/pkg/cipher"
	"github.com/birdayz/transpose/pkg/config"
)

func newTestApp(in string) (*App, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	a := New()
	a.OutWriter = &out
	a.ColorableOut = &out
	a.ErrWriter = &errOut
	a.InReader = strings.NewReader(in)
	return a, &out, &errOut
}

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestResolveKey_Flag(t *testing.T) {
	a, _, _ := newTestApp("")
	a.KeyFlag = "21"
	a.Cfg = config.Config{CurrentKey: "demo", Keys: []*config.NamedKey{{Name: "demo", Digits: "312"}}}

	key, err := a.ResolveKey(testCommand())
	require.NoError(t, err)
	require.Equal(t, "21", key.String())
}

func TestResolveKey_InvalidFlag(t *testing.T) {
	a, _, _ := newTestApp("")
	a.KeyFlag = "22"

	_, err := a.ResolveKey(testCommand())
	require.ErrorIs(t, err, cipher.ErrDuplicateKeyDigit)
}

func TestResolveKey_Config(t *testing.T) {
	a, _, _ := newTestApp("")
	a.Cfg = config.Config{
		CurrentKey: "demo",
		Keys: []*config.NamedKey{
			{Name: "demo", Digits: "312"},
			{Name: "other", Digits: "4321"},
		},
	}

	key, err := a.ResolveKey(testCommand())
	require.NoError(t, err)
	require.Equal(t, "312", key.String())

	a.KeyOverride = "other"
	a.Cfg.KeyOverride = "other"
	key, err = a.ResolveKey(testCommand())
	require.NoError(t, err)
	require.Equal(t, "4321", key.String())

	a.KeyOverride = "missing"
	a.Cfg.KeyOverride = "missing"
	_, err = a.ResolveKey(testCommand())
	require.Error(t, err)
}

func TestResolveKey_Prompt(t *testing.T) {
	a, out, _ := newTestApp("9\n1\n")

	key, err := a.ResolveKey(testCommand())
	require.NoError(t, err)
	require.Equal(t, 1, key.Len())
	require.Contains(t, out.String(), "Error: Each key digit must be in the range 1..1.")
}

func TestPrompter_MachineOutputUsesStderr(t *testing.T) {
	a, out, errOut := newTestApp("hello\n")
	a.Output = OutputFormatJSON

	pt, err := a.Prompter().Plaintext(context.Background())
	require.NoError(t, err)
	require.Equal(t, "HELLO", pt)
	require.Empty(t, out.String())
	require.Contains(t, errOut.String(), "Enter plaintext")
}

func TestInitLogger(t *testing.T) {
	a, _, errOut := newTestApp("")
	a.InitLogger()
	a.Logger.Debug("hidden")
	require.Empty(t, errOut.String())

	a.Verbose = true
	a.InitLogger()
	a.Logger.Debug("shown")
	require.Contains(t, errOut.String(), "shown")
}

func TestOutputFormat_Set(t *testing.T) {
	var f OutputFormat
	require.NoError(t, f.Set("msgpack"))
	require.Equal(t, OutputFormatMsgpack, f)
	require.Equal(t, "msgpack", f.String())
	require.Error(t, f.Set("xml"))
	require.Equal(t, OutputFormatMsgpack, f)
}

func TestNewPrinter_Template(t *testing.T) {
	a, out, _ := newTestApp("")
	a.Template = "{{ .Output }}"

	p, err := a.NewPrinter()
	require.NoError(t, err)
	require.NoError(t, p.Encryption(cipher.Encode("ABCD", cipher.MustParseKey("21"))))
	require.Equal(t, "BDAC\n", out.String())
}
