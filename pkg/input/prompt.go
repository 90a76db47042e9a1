package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/birdayz/transpose/pkg/cipher"
)

const (
	PlaintextLabel  = "Enter plaintext (letters only; spaces allowed)"
	CiphertextLabel = "Enter ciphertext (letters only; spaces allowed)"
	KeyLabel        = "Enter numeric key (digits only, e.g. 31425)"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("aborted")

// Prompter asks for the values a cipher run needs. Every method keeps
// asking until the answer is valid, the input ends or ctx is done.
type Prompter interface {
	Plaintext(ctx context.Context) (string, error)
	Ciphertext(ctx context.Context) (string, error)
	Key(ctx context.Context) (cipher.Key, error)
}

// NewPrompter returns a TermPrompter when in is an interactive terminal and
// a LinePrompter otherwise.
func NewPrompter(in io.Reader, out io.Writer, logger *zap.Logger) Prompter {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return TermPrompter{Out: out, Logger: logger}
	}
	return NewLinePrompter(in, out, logger)
}

// LinePrompter reads one answer per line. Rejections are written to out
// followed by the prompt again.
type LinePrompter struct {
	r      *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

func NewLinePrompter(in io.Reader, out io.Writer, logger *zap.Logger) *LinePrompter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LinePrompter{
		r:      bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

func (p *LinePrompter) Plaintext(ctx context.Context) (string, error) {
	return ask(ctx, p, PlaintextLabel, CleanText, func(err error) string {
		return TextMessage("Plaintext", err)
	})
}

func (p *LinePrompter) Ciphertext(ctx context.Context) (string, error) {
	return ask(ctx, p, CiphertextLabel, CleanText, func(err error) string {
		return TextMessage("Ciphertext", err)
	})
}

func (p *LinePrompter) Key(ctx context.Context) (cipher.Key, error) {
	return ask(ctx, p, KeyLabel, cipher.ParseKey, KeyMessage)
}

func ask[T any](ctx context.Context, p *LinePrompter, label string, parse func(string) (T, error), message func(error) string) (T, error) {
	var zero T
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		fmt.Fprintf(p.out, "%s: ", label)

		line, err := p.readLine()
		if err != nil {
			fmt.Fprintln(p.out)
			if errors.Is(err, io.EOF) {
				return zero, fmt.Errorf("no input for %q: %w", label, io.EOF)
			}
			return zero, fmt.Errorf("read input: %w", err)
		}

		v, err := parse(line)
		if err != nil {
			p.logger.Debug("rejected input", zap.String("prompt", label), zap.Error(err))
			fmt.Fprintln(p.out, message(err))
			continue
		}
		return v, nil
	}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// TermPrompter asks through promptui, which validates while typing. The
// prompt is drawn on Out.
type TermPrompter struct {
	Out    io.Writer
	Logger *zap.Logger
}

func (p TermPrompter) Plaintext(ctx context.Context) (string, error) {
	return runPrompt(ctx, p, PlaintextLabel, CleanText, func(err error) string {
		return TextMessage("Plaintext", err)
	})
}

func (p TermPrompter) Ciphertext(ctx context.Context) (string, error) {
	return runPrompt(ctx, p, CiphertextLabel, CleanText, func(err error) string {
		return TextMessage("Ciphertext", err)
	})
}

func (p TermPrompter) Key(ctx context.Context) (cipher.Key, error) {
	return runPrompt(ctx, p, KeyLabel, cipher.ParseKey, KeyMessage)
}

func newPrompt[T any](p TermPrompter, label string, parse func(string) (T, error), message func(error) string) promptui.Prompt {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if _, err := parse(s); err != nil {
				logger.Debug("rejected input", zap.String("prompt", label), zap.Error(err))
				return errors.New(strings.TrimPrefix(message(err), "Error: "))
			}
			return nil
		},
	}
	if p.Out != nil {
		prompt.Stdout = nopWriteCloser{p.Out}
	}
	return prompt
}

func runPrompt[T any](ctx context.Context, p TermPrompter, label string, parse func(string) (T, error), message func(error) string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	prompt := newPrompt(p, label, parse, message)
	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return zero, ErrAborted
		}
		return zero, fmt.Errorf("prompt failed: %w", err)
	}
	return parse(result)
}

// nopWriteCloser keeps promptui from closing the command's writer.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
