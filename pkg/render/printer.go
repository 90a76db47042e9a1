// Package render prints cipher runs for people (bordered grid reports) and
// for programs (json, msgpack, templates).
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/charmbracelet/lipgloss"
	"github.com/hokaccha/go-prettyjson"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/birdayz/transpose/pkg/cipher"
)

const (
	FormatDefault  = "default"
	FormatRaw      = "raw"
	FormatJSON     = "json"
	FormatMsgpack  = "msgpack"
	FormatTemplate = "template"
)

// Options configure a Printer.
type Options struct {
	Format string
	// Template is a Go text/template with the sprig functions, executed
	// against a Document. Setting it selects FormatTemplate.
	Template string
	// Color enables colored json and styled titles. The writer decides in
	// the end: lipgloss drops styles when it is not a terminal.
	Color bool
}

// Printer writes cipher runs to Out in the configured format.
type Printer struct {
	out    io.Writer
	format string
	tpl    *template.Template
	json   *prettyjson.Formatter
	title  lipgloss.Style
}

// NewPrinter validates opts and returns a Printer writing to out. term is
// used only to detect the color profile and may be nil.
func NewPrinter(out, term io.Writer, opts Options) (*Printer, error) {
	p := &Printer{
		out:    out,
		format: opts.Format,
		json:   prettyjson.NewFormatter(),
	}
	if p.format == "" {
		p.format = FormatDefault
	}
	p.json.DisabledColor = !opts.Color

	if term == nil {
		term = out
	}
	p.title = lipgloss.NewRenderer(term).NewStyle()
	if opts.Color {
		p.title = p.title.Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	}

	if opts.Template != "" {
		tpl, err := template.New("transpose").Funcs(sprig.HermeticTxtFuncMap()).Parse(opts.Template)
		if err != nil {
			return nil, fmt.Errorf("failed to parse go template: %w", err)
		}
		p.tpl = tpl
		p.format = FormatTemplate
	}

	switch p.format {
	case FormatDefault, FormatRaw, FormatJSON, FormatMsgpack:
	case FormatTemplate:
		if p.tpl == nil {
			return nil, fmt.Errorf("output format %q needs a template", FormatTemplate)
		}
	default:
		return nil, fmt.Errorf("unknown output format %q", p.format)
	}
	return p, nil
}

// Encryption prints the result of cipher.Encode.
func (p *Printer) Encryption(enc cipher.Encryption) error {
	if p.format != FormatDefault {
		return p.document(EncryptionDocument(enc))
	}

	var sb strings.Builder
	sb.WriteString("\n" + p.title.Render("=== ENCRYPTION ===") + "\n")
	fmt.Fprintf(&sb, "PT = %s\n", enc.Plaintext)
	p.keyLines(&sb, enc.Key, enc.Grid)
	if err := WriteGrid(&sb, enc.Key, enc.Grid); err != nil {
		return err
	}
	fmt.Fprintf(&sb, "CT = %s\n", enc.Ciphertext)

	_, err := io.WriteString(p.out, sb.String())
	return err
}

// Decryption prints the result of cipher.Decode, including the ciphertext
// split into its key-ordered groups.
func (p *Printer) Decryption(dec cipher.Decryption) error {
	if p.format != FormatDefault {
		return p.document(DecryptionDocument(dec))
	}

	var sb strings.Builder
	sb.WriteString("\n" + p.title.Render("=== DECRYPTION ===") + "\n")
	fmt.Fprintf(&sb, "CT = %s\n", dec.Ciphertext)
	p.keyLines(&sb, dec.Key, dec.Grid)
	fmt.Fprintf(&sb, "CT Division: %s\n", strings.Join(dec.Groups, " | "))
	if err := WriteGrid(&sb, dec.Key, dec.Grid); err != nil {
		return err
	}
	fmt.Fprintf(&sb, "PT = %s\n", dec.Plaintext)

	_, err := io.WriteString(p.out, sb.String())
	return err
}

func (p *Printer) keyLines(sb *strings.Builder, key cipher.Key, grid *cipher.Grid) {
	fmt.Fprintf(sb, "K  = %s  -> %d columns\n", FormatKey(key), key.Len())
	fmt.Fprintf(sb, "Rows = %d\n", grid.Rows())
}

func (p *Printer) document(doc Document) error {
	switch p.format {
	case FormatRaw:
		_, err := fmt.Fprintln(p.out, doc.Output)
		return err
	case FormatJSON:
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		b, err := p.json.Format(raw)
		if err != nil {
			return fmt.Errorf("failed to format json: %w", err)
		}
		_, err = p.out.Write(append(b, '\n'))
		return err
	case FormatMsgpack:
		b, err := msgpack.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal msgpack: %w", err)
		}
		_, err = p.out.Write(b)
		return err
	case FormatTemplate:
		var buf bytes.Buffer
		if err := p.tpl.Execute(&buf, doc); err != nil {
			return fmt.Errorf("failed to execute go template: %w", err)
		}
		if buf.Len() == 0 || buf.Bytes()[buf.Len()-1] != '\n' {
			buf.WriteByte('\n')
		}
		_, err := p.out.Write(buf.Bytes())
		return err
	}
	return fmt.Errorf("unknown output format %q", p.format)
}
