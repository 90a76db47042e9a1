package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/birdayz/transpose/pkg/app"
	"github.com/birdayz/transpose/pkg/cmd/completion"
	tconfig "github.com/birdayz/transpose/pkg/cmd/config"
	"github.com/birdayz/transpose/pkg/cmd/decrypt"
	"github.com/birdayz/transpose/pkg/cmd/encrypt"
	"github.com/birdayz/transpose/pkg/cmd/roundtrip"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand(app.New(), version, commit).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree around a. Without a subcommand it
// runs one interactive encrypt/decrypt round trip.
func NewRootCommand(a *app.App, version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:   "transpose",
		Short: "Columnar transposition cipher",
		Long: `Encrypts and decrypts text with a columnar transposition cipher.

The key is a permutation of 1..N, e.g. 31425. The text is written row by row
into a grid with N columns, the last row padded with X, and the columns are
read out in the order given by the key.

Run without a command to enter a plaintext and a key, then see it encrypted
and decrypted again.`,
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()

			if a.OutWriter != os.Stdout {
				a.ColorableOut = a.OutWriter
			}

			a.InitLogger()
			return a.InitConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return roundtrip.Run(cmd, a)
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.transpose/config)")
	root.PersistentFlags().StringVarP(&a.KeyOverride, "key-name", "n", "", "use a key stored in the config instead of the current one")
	root.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "Enable debug logging on stderr")
	root.PersistentFlags().BoolVar(&a.NoColor, "no-color", false, "Disable colored output")
	_ = root.RegisterFlagCompletionFunc("key-name", a.ValidKeyArgs)
	a.AddKeyFlags(root)
	a.AddOutputFlags(root)

	root.AddCommand(
		encrypt.NewCommand(a),
		decrypt.NewCommand(a),
		roundtrip.NewCommand(a),
		tconfig.NewCommand(a),
		completion.NewCommand(root, a),
	)

	a.Root = root
	return root
}
