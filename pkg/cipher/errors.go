package cipher

import (
	"errors"
	"fmt"
)

// Input errors. All of them are recoverable at the prompt; the core
// Encode/Decode functions never return them.
var (
	ErrEmptyInput           = errors.New("input is empty")
	ErrDigitsInPlaintext    = errors.New("plaintext contains digits")
	ErrNoLettersInPlaintext = errors.New("plaintext contains no letters")
)

// ErrInvalidKey is matched by every key validation failure, in addition to
// the specific kind below.
var ErrInvalidKey = errors.New("invalid key")

var (
	ErrNonDigitKey        = errors.New("key contains non-digit characters")
	ErrKeyDigitOutOfRange = errors.New("key digit out of range")
	ErrDuplicateKeyDigit  = errors.New("duplicate key digit")
	// ErrKeyNotPermutation is never returned by NewKey or ParseKey: a key
	// that passes the range and duplicate checks covers 1..N.
	ErrKeyNotPermutation = errors.New("key is not a permutation")
)

// KeyError describes why a key was rejected. It matches both ErrInvalidKey
// and Kind under errors.Is.
type KeyError struct {
	Kind  error
	Digit int
	// N is the key length the digits were checked against.
	N int
}

func (e *KeyError) Error() string {
	switch e.Kind {
	case ErrKeyDigitOutOfRange:
		return fmt.Sprintf("%v: %v: %d is not in 1..%d", ErrInvalidKey, e.Kind, e.Digit, e.N)
	case ErrDuplicateKeyDigit:
		return fmt.Sprintf("%v: %v: %d", ErrInvalidKey, e.Kind, e.Digit)
	case ErrKeyNotPermutation:
		return fmt.Sprintf("%v: %v: missing %d", ErrInvalidKey, e.Kind, e.Digit)
	case ErrNonDigitKey:
		return fmt.Sprintf("%v: %v: %q", ErrInvalidKey, e.Kind, rune(e.Digit))
	}
	return fmt.Sprintf("%v: %v", ErrInvalidKey, e.Kind)
}

func (e *KeyError) Unwrap() []error {
	return []error{ErrInvalidKey, e.Kind}
}
