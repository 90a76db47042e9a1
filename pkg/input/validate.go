// Package input validates what the user types at the console and re-prompts
// until it is usable.
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/birdayz/transpose/pkg/cipher"
)

// CleanText validates raw message input and returns it as uppercase
// letters. Blank input, input containing digits and input without letters
// are rejected. Everything that is not an ASCII letter is dropped.
func CleanText(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", cipher.ErrEmptyInput
	}
	if strings.ContainsFunc(raw, isASCIIDigit) {
		return "", cipher.ErrDigitsInPlaintext
	}

	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'A' && c <= 'Z':
			sb.WriteByte(c)
		case c >= 'a' && c <= 'z':
			sb.WriteByte(c - 'a' + 'A')
		}
	}
	if sb.Len() == 0 {
		return "", cipher.ErrNoLettersInPlaintext
	}
	return sb.String(), nil
}

// TextMessage turns a CleanText error into the line shown to the user.
// noun names the text being asked for, e.g. "Plaintext".
func TextMessage(noun string, err error) string {
	switch {
	case errors.Is(err, cipher.ErrEmptyInput):
		return fmt.Sprintf("Error: %s cannot be empty.", noun)
	case errors.Is(err, cipher.ErrDigitsInPlaintext):
		return fmt.Sprintf("Error: %s must not contain digits. Please enter letters only.", noun)
	case errors.Is(err, cipher.ErrNoLettersInPlaintext):
		return fmt.Sprintf("Error: %s must contain letters (A-Z).", noun)
	}
	return fmt.Sprintf("Error: %v", err)
}

// KeyMessage turns a cipher.ParseKey error into the line shown to the user.
func KeyMessage(err error) string {
	var kerr *cipher.KeyError
	if !errors.As(err, &kerr) {
		return fmt.Sprintf("Error: %v", err)
	}
	switch kerr.Kind {
	case cipher.ErrEmptyInput, cipher.ErrNonDigitKey:
		return "Error: Key must contain digits only (no letters or symbols)."
	case cipher.ErrKeyDigitOutOfRange:
		return fmt.Sprintf("Error: Each key digit must be in the range 1..%d.", kerr.N)
	case cipher.ErrDuplicateKeyDigit:
		return fmt.Sprintf("Error: Duplicate digit '%d' found in key. Key digits must be unique.", kerr.Digit)
	case cipher.ErrKeyNotPermutation:
		return fmt.Sprintf("Error: Key must be a permutation of 1..%d. Missing digit: %d", kerr.N, kerr.Digit)
	}
	return fmt.Sprintf("Error: %v", err)
}

// TextError is the CleanText error err carrying the user-facing message,
// for text that came from arguments rather than a prompt.
func TextError(noun string, err error) error {
	return &messageError{
		msg: strings.TrimPrefix(TextMessage(noun, err), "Error: "),
		err: err,
	}
}

type messageError struct {
	msg string
	err error
}

func (e *messageError) Error() string { return e.msg }

func (e *messageError) Unwrap() error { return e.err }

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
