package cipher

import (
	"strconv"
	"strings"
)

// MaxKeyDigits is the longest key that can be written as single digits.
// ParseKey rejects anything longer through the usual range and duplicate
// checks. String separates columns with commas past this length.
const MaxKeyDigits = 9

// Key is a permutation of 1..N. order[i] is the play order of column i,
// pos is the inverse mapping.
type Key struct {
	order []int
	pos   []int
}

// NewKey validates order as a permutation of 1..len(order).
func NewKey(order []int) (Key, error) {
	n := len(order)
	if n == 0 {
		return Key{}, &KeyError{Kind: ErrEmptyInput}
	}

	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	for i, d := range order {
		if d < 1 || d > n {
			return Key{}, &KeyError{Kind: ErrKeyDigitOutOfRange, Digit: d, N: n}
		}
		if pos[d-1] != -1 {
			return Key{}, &KeyError{Kind: ErrDuplicateKeyDigit, Digit: d, N: n}
		}
		pos[d-1] = i
	}
	// n in-range values without repeats fill every slot.
	for i, p := range pos {
		if p == -1 {
			return Key{}, &KeyError{Kind: ErrKeyNotPermutation, Digit: i + 1, N: n}
		}
	}

	k := Key{
		order: make([]int, n),
		pos:   pos,
	}
	copy(k.order, order)
	return k, nil
}

// ParseKey reads a key written as single digits, e.g. "31425".
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Key{}, &KeyError{Kind: ErrEmptyInput}
	}
	order := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return Key{}, &KeyError{Kind: ErrNonDigitKey, Digit: int(r), N: len(s)}
		}
		order = append(order, int(r-'0'))
	}
	return NewKey(order)
}

// MustParseKey is like ParseKey but panics on error.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Len returns the number of columns.
func (k Key) Len() int {
	return len(k.order)
}

// PositionOf returns the zero-based column read at the given 1-based play
// order, or -1 if order is not in 1..Len().
func (k Key) PositionOf(order int) int {
	if order < 1 || order > len(k.pos) {
		return -1
	}
	return k.pos[order-1]
}

// Order returns a copy of the key digits in column order.
func (k Key) Order() []int {
	out := make([]int, len(k.order))
	copy(out, k.order)
	return out
}

func (k Key) String() string {
	var sb strings.Builder
	sep := len(k.order) > MaxKeyDigits
	for i, d := range k.order {
		if sep && i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(d))
	}
	return sb.String()
}
