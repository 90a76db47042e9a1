package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/birdayz/transpose/pkg/app"
	"github.com/birdayz/transpose/pkg/render"
)

// NewCommand returns the "transpose config" command with subcommands.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Handle stored keys",
	}

	cmd.AddCommand(
		newCurrentKeyCommand(a),
		newUseKeyCommand(a),
		newGetKeysCommand(a),
		newAddKeyCommand(a),
		newRemoveKeyCommand(a),
		newSelectKeyCommand(a),
	)

	return cmd
}

func newCurrentKeyCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "current-key",
		Short: "Displays the current key",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.OutWriter, a.Cfg.CurrentKey)
		},
	}
}

func newUseKeyCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "use-key [NAME]",
		Short:             "Sets the current key in the configuration",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidKeyArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := a.Cfg.SetCurrentKey(name); err != nil {
				return fmt.Errorf("key with name %v not found", name)
			}
			fmt.Fprintf(a.OutWriter, "Switched to key \"%v\".\n", name)
			return nil
		},
	}
}

func newGetKeysCommand(a *app.App) *cobra.Command {
	var noHeaders bool
	cmd := &cobra.Command{
		Use:   "get-keys",
		Short: "Display keys in the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := app.NewTabWriter(a.OutWriter)
			if !noHeaders {
				fmt.Fprintln(w, "  NAME\tKEY\tCOLUMNS\t")
			}
			for _, k := range a.Cfg.Keys {
				marker := "  "
				if k.Name == a.Cfg.CurrentKey {
					marker = "* "
				}
				key, err := k.Parse()
				if err != nil {
					fmt.Fprintf(w, "%s%s\t%s\t%s\t\n", marker, k.Name, k.Digits, "invalid")
					continue
				}
				fmt.Fprintf(w, "%s%s\t%s\t%d\t\n", marker, k.Name, render.FormatKey(key), key.Len())
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Hide table headers")
	return cmd
}

func newAddKeyCommand(a *app.App) *cobra.Command {
	var use bool

	cmd := &cobra.Command{
		Use:     "add-key [NAME] [DIGITS]",
		Short:   "Add key",
		Example: "  transpose config add-key demo 31425 --use",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, digits := args[0], args[1]
			if err := a.Cfg.AddKey(name, digits); err != nil {
				return fmt.Errorf("could not add key: %w", err)
			}
			if use || a.Cfg.CurrentKey == "" {
				a.Cfg.CurrentKey = name
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Added key.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&use, "use", false, "Make the new key the current one")
	return cmd
}

func newRemoveKeyCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "remove-key [NAME]",
		Short:             "remove key",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidKeyArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Cfg.RemoveKey(args[0]); err != nil {
				return fmt.Errorf("could not delete key: %w", err)
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Removed key.")
			return nil
		},
	}
}

func newSelectKeyCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "select-key",
		Short: "Interactively select a key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(a.Cfg.Keys) == 0 {
				return fmt.Errorf("no keys configured, add one with \"transpose config add-key\"")
			}

			var keyNames []string
			pos := 0
			for i, k := range a.Cfg.Keys {
				keyNames = append(keyNames, k.Name)
				if k.Name == a.Cfg.CurrentKey {
					pos = i
				}
			}

			searcher := func(input string, index int) bool {
				name := strings.ReplaceAll(strings.ToLower(keyNames[index]), " ", "")
				input = strings.ReplaceAll(strings.ToLower(input), " ", "")
				return strings.Contains(name, input)
			}

			p := promptui.Select{
				Label:     "Select key",
				Items:     keyNames,
				Searcher:  searcher,
				Size:      10,
				CursorPos: pos,
			}

			_, selected, err := p.Run()
			if err != nil {
				// User cancelled (e.g. Ctrl-C). Not an error.
				return nil
			}

			if err := a.Cfg.SetCurrentKey(selected); err != nil {
				return fmt.Errorf("key with name %v not found", selected)
			}
			fmt.Fprintf(a.OutWriter, "Switched to key \"%v\".\n", selected)
			return nil
		},
	}
}
