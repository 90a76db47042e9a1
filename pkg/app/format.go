package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdayz/transpose/pkg/render"
)

// OutputFormat controls how cipher runs are printed.
type OutputFormat string

const (
	OutputFormatDefault OutputFormat = render.FormatDefault
	OutputFormatRaw     OutputFormat = render.FormatRaw
	OutputFormatJSON    OutputFormat = render.FormatJSON
	OutputFormatMsgpack OutputFormat = render.FormatMsgpack
)

func (e *OutputFormat) String() string {
	return string(*e)
}

func (e *OutputFormat) Set(v string) error {
	switch v {
	case "default", "raw", "json", "msgpack":
		*e = OutputFormat(v)
		return nil
	default:
		return fmt.Errorf("must be one of: default, raw, json, msgpack")
	}
}

func (e *OutputFormat) Type() string {
	return "OutputFormat"
}

// CompleteOutputFormat provides shell completion for --output.
func CompleteOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"default", "raw", "json", "msgpack"}, cobra.ShellCompDirectiveNoFileComp
}
