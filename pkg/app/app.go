package app

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/birdayz/transpose/pkg/cipher"
	"github.com/birdayz/transpose/pkg/config"
	"github.com/birdayz/transpose/pkg/input"
	"github.com/birdayz/transpose/pkg/render"
)

// App holds all shared mutable state for the CLI. It is created once per
// invocation and threaded into every command package.
type App struct {
	// I/O
	OutWriter    io.Writer
	ErrWriter    io.Writer
	InReader     io.Reader
	ColorableOut io.Writer

	// Config state
	Cfg         config.Config
	CfgFile     string
	KeyOverride string
	KeyFlag     string

	// Output
	Output   OutputFormat
	Template string
	NoColor  bool

	Verbose bool
	Logger  *zap.Logger

	// prompter is created lazily so that all prompts of one run share the
	// same buffered reader.
	prompter input.Prompter

	// Root command reference (for completion generation)
	Root *cobra.Command
}

// New creates an App with sane defaults.
func New() *App {
	return &App{
		OutWriter:    os.Stdout,
		ErrWriter:    os.Stderr,
		InReader:     os.Stdin,
		ColorableOut: colorable.NewColorableStdout(),
		Output:       OutputFormatDefault,
		Logger:       zap.NewNop(),
	}
}

// InitLogger replaces the no-op logger with a debug console logger on
// ErrWriter when Verbose is set.
func (a *App) InitLogger() {
	if !a.Verbose {
		a.Logger = zap.NewNop()
		return
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(a.ErrWriter),
		zap.DebugLevel,
	)
	a.Logger = zap.New(core)
}

// InitConfig reads the config file and applies the --key-name override.
// Called by PersistentPreRunE on the root command.
func (a *App) InitConfig() error {
	var err error
	a.Cfg, err = config.ReadConfig(a.CfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.Cfg.KeyOverride = a.KeyOverride
	a.Logger.Debug("loaded config", zap.String("path", a.Cfg.Path()), zap.Int("keys", len(a.Cfg.Keys)))
	return nil
}

// Prompter returns the prompter reading from InReader. Prompts go to
// ErrWriter when stdout carries machine readable output.
func (a *App) Prompter() input.Prompter {
	if a.prompter == nil {
		out := a.OutWriter
		if a.Output != OutputFormatDefault || a.Template != "" {
			out = a.ErrWriter
		}
		a.prompter = input.NewPrompter(a.InReader, out, a.Logger)
	}
	return a.prompter
}

// ResolveKey picks the key for a run: --key, then --key-name, then the
// current key of the config, and finally an interactive prompt.
func (a *App) ResolveKey(cmd *cobra.Command) (cipher.Key, error) {
	if a.KeyFlag != "" {
		key, err := cipher.ParseKey(a.KeyFlag)
		if err != nil {
			return cipher.Key{}, fmt.Errorf("invalid --key: %w", err)
		}
		a.Logger.Debug("using key from flag", zap.Stringer("key", key))
		return key, nil
	}

	if a.KeyOverride != "" && !a.Cfg.HasKey(a.KeyOverride) {
		return cipher.Key{}, fmt.Errorf("key with name %v not found", a.KeyOverride)
	}
	if nk := a.Cfg.ActiveKey(); nk != nil {
		key, err := nk.Parse()
		if err != nil {
			return cipher.Key{}, err
		}
		a.Logger.Debug("using key from config", zap.String("name", nk.Name), zap.Stringer("key", key))
		return key, nil
	}

	return a.Prompter().Key(cmd.Context())
}

// NewPrinter builds the printer for the --output and --template flags.
func (a *App) NewPrinter() (*render.Printer, error) {
	return render.NewPrinter(a.ColorableOut, a.OutWriter, render.Options{
		Format:   string(a.Output),
		Template: a.Template,
		Color:    !a.NoColor && isTerminal(a.OutWriter),
	})
}

// AddKeyFlags installs --key on cmd.
func (a *App) AddKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.KeyFlag, "key", "k", "", "Numeric key, e.g. 31425. Overrides the configured key")
}

// AddOutputFlags installs --output and --template on cmd.
func (a *App) AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().VarP(&a.Output, "output", "o", "Output format: default, raw (only the resulting text), json, msgpack")
	cmd.Flags().StringVar(&a.Template, "template", "", "Go template rendered for every result. Sprig functions are available")
	_ = cmd.RegisterFlagCompletionFunc("output", CompleteOutputFormat)
}

// ValidKeyArgs provides shell completion for stored key names.
func (a *App) ValidKeyArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(a.Cfg.Keys))
	for _, k := range a.Cfg.Keys {
		names = append(names, k.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

const (
	TabwriterMinWidth = 6
	TabwriterWidth    = 4
	TabwriterPadding  = 3
	TabwriterPadChar  = ' '
	TabwriterFlags    = 0
)

// NewTabWriter creates a standard tabwriter for CLI output.
func NewTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, TabwriterMinWidth, TabwriterWidth, TabwriterPadding, TabwriterPadChar, TabwriterFlags)
}
