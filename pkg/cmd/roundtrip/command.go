package roundtrip

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/birdayz/transpose/pkg/app"
	"github.com/birdayz/transpose/pkg/cipher"
)

// NewCommand returns the "transpose roundtrip" command.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Encrypt a plaintext and decrypt the result again",
		Long:  "Prompt for a plaintext and a key, print the encryption and then the decryption of the ciphertext just produced. This is also what runs when no command is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd, a)
		},
	}
	a.AddKeyFlags(cmd)
	a.AddOutputFlags(cmd)
	return cmd
}

// Run performs one round trip.
func Run(cmd *cobra.Command, a *app.App) error {
	p, err := a.NewPrinter()
	if err != nil {
		return err
	}

	plaintext, err := a.Prompter().Plaintext(cmd.Context())
	if err != nil {
		return err
	}
	key, err := a.ResolveKey(cmd)
	if err != nil {
		return err
	}

	enc := cipher.Encode(plaintext, key)
	if err := p.Encryption(enc); err != nil {
		return err
	}

	dec := cipher.Decode(enc.Ciphertext, key)
	if dec.Plaintext != enc.Plaintext {
		a.Logger.Debug("round trip lost trailing padding characters",
			zap.String("plaintext", enc.Plaintext),
			zap.String("recovered", dec.Plaintext),
		)
	}
	return p.Decryption(dec)
}
