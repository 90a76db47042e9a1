package decrypt

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/birdayz/transpose/pkg/app"
	"github.com/birdayz/transpose/pkg/cipher"
	"github.com/birdayz/transpose/pkg/input"
)

// NewCommand returns the "transpose decrypt" command.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt [CIPHERTEXT...]",
		Short: "Decrypt ciphertext",
		Long: `Decrypt ciphertext given as arguments, or read it from stdin when no arguments are given.

Trailing X characters are treated as padding and removed, so a message that
really ends in X loses those letters.`,
		Example: `  transpose decrypt -k 31425 EOLLHWLROD
  transpose decrypt -n demo -o raw EOLLHWLROD`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.NewPrinter()
			if err != nil {
				return err
			}

			var ciphertext string
			if len(args) > 0 {
				ciphertext, err = input.CleanText(strings.Join(args, " "))
				if err != nil {
					return input.TextError("Ciphertext", err)
				}
			} else {
				ciphertext, err = a.Prompter().Ciphertext(cmd.Context())
				if err != nil {
					return err
				}
			}

			key, err := a.ResolveKey(cmd)
			if err != nil {
				return err
			}

			dec := cipher.Decode(ciphertext, key)
			a.Logger.Debug("decrypted",
				zap.Int("length", len(dec.Ciphertext)),
				zap.Int("columns", dec.Grid.Cols()),
				zap.Int("rows", dec.Grid.Rows()),
				zap.Strings("groups", dec.Groups),
			)
			return p.Decryption(dec)
		},
	}
	a.AddKeyFlags(cmd)
	a.AddOutputFlags(cmd)
	return cmd
}
