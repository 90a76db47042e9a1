package encrypt

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/birdayz/transpose/pkg/app"
	"github.com/birdayz/transpose/pkg/cipher"
	"github.com/birdayz/transpose/pkg/input"
)

// NewCommand returns the "transpose encrypt" command.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt [PLAINTEXT...]",
		Short: "Encrypt plaintext",
		Long:  "Encrypt plaintext given as arguments, or read it from stdin when no arguments are given. Everything but letters is dropped and letters are uppercased.",
		Example: `  transpose encrypt -k 31425 hello world
  transpose encrypt -k 31425 -o raw attack at dawn
  echo "attack at dawn" | transpose encrypt -k 312 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.NewPrinter()
			if err != nil {
				return err
			}

			var plaintext string
			if len(args) > 0 {
				plaintext, err = input.CleanText(strings.Join(args, " "))
				if err != nil {
					return input.TextError("Plaintext", err)
				}
			} else {
				plaintext, err = a.Prompter().Plaintext(cmd.Context())
				if err != nil {
					return err
				}
			}

			key, err := a.ResolveKey(cmd)
			if err != nil {
				return err
			}

			enc := cipher.Encode(plaintext, key)
			a.Logger.Debug("encrypted",
				zap.Int("length", len(enc.Plaintext)),
				zap.Int("columns", enc.Grid.Cols()),
				zap.Int("rows", enc.Grid.Rows()),
			)
			return p.Encryption(enc)
		},
	}
	a.AddKeyFlags(cmd)
	a.AddOutputFlags(cmd)
	return cmd
}
