package completion

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/birdayz/transpose/pkg/app"
)

type generator func(root *cobra.Command, w io.Writer, descriptions bool) error

var generators = map[string]generator{
	"bash": func(root *cobra.Command, w io.Writer, descriptions bool) error {
		return root.GenBashCompletionV2(w, descriptions)
	},
	"zsh": func(root *cobra.Command, w io.Writer, descriptions bool) error {
		if descriptions {
			return root.GenZshCompletion(w)
		}
		return root.GenZshCompletionNoDesc(w)
	},
	"fish": func(root *cobra.Command, w io.Writer, descriptions bool) error {
		return root.GenFishCompletion(w, descriptions)
	},
	"powershell": func(root *cobra.Command, w io.Writer, descriptions bool) error {
		if descriptions {
			return root.GenPowerShellCompletionWithDesc(w)
		}
		return root.GenPowerShellCompletion(w)
	},
}

// Shells lists the shells a script can be generated for, sorted.
func Shells() []string {
	shells := make([]string, 0, len(generators))
	for s := range generators {
		shells = append(shells, s)
	}
	slices.Sort(shells)
	return shells
}

// NewCommand returns the "transpose completion" command. Scripts cover the
// whole tree below root, including saved key names for --key-name.
func NewCommand(root *cobra.Command, a *app.App) *cobra.Command {
	var noDesc bool

	cmd := &cobra.Command{
		Use:   "completion SHELL",
		Short: "Print a shell completion script (" + strings.Join(Shells(), ", ") + ")",
		Long: `Print a script that completes transpose subcommands, flags and saved
key names. Source it from the shell's startup file, for example:

  bash        source <(transpose completion bash)
  zsh         transpose completion zsh > "${fpath[1]}/_transpose"
  fish        transpose completion fish > ~/.config/fish/completions/transpose.fish
  powershell  transpose completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             Shells(),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := generators[args[0]]
			if err := gen(root, a.OutWriter, !noDesc); err != nil {
				return fmt.Errorf("failed to write %s completion: %w", args[0], err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noDesc, "no-descriptions", false, "Leave flag and command descriptions out of the script")
	return cmd
}
