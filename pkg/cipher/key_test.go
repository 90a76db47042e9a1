package cipher

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKey_PositionOf(t *testing.T) {
	k, err := ParseKey("31425")
	require.NoError(t, err)
	require.Equal(t, 5, k.Len())
	require.Equal(t, []int{3, 1, 4, 2, 5}, k.Order())

	require.Equal(t, 1, k.PositionOf(1))
	require.Equal(t, 3, k.PositionOf(2))
	require.Equal(t, 0, k.PositionOf(3))
	require.Equal(t, 2, k.PositionOf(4))
	require.Equal(t, 4, k.PositionOf(5))
}

func TestKey_PositionOfOutOfRange(t *testing.T) {
	k := MustParseKey("21")
	require.Equal(t, -1, k.PositionOf(0))
	require.Equal(t, -1, k.PositionOf(3))
}

func TestParseKey_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind error
	}{
		{name: "empty", in: "", kind: ErrEmptyInput},
		{name: "blank", in: "   ", kind: ErrEmptyInput},
		{name: "letter", in: "12a", kind: ErrNonDigitKey},
		{name: "sign", in: "-12", kind: ErrNonDigitKey},
		{name: "zero", in: "102", kind: ErrKeyDigitOutOfRange},
		{name: "too large", in: "14", kind: ErrKeyDigitOutOfRange},
		{name: "duplicate", in: "1223", kind: ErrDuplicateKeyDigit},
		{name: "duplicate first", in: "1134", kind: ErrDuplicateKeyDigit},
		{name: "ten digits repeat one", in: "1234567891", kind: ErrDuplicateKeyDigit},
		{name: "ten digits with zero", in: "1234567890", kind: ErrKeyDigitOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKey(tt.in)
			require.ErrorIs(t, err, ErrInvalidKey)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

// Past nine digits some digit repeats or a zero appears, so the ordinary
// range and duplicate errors report it.
func TestParseKey_LongKeys(t *testing.T) {
	tests := []struct {
		in    string
		kind  error
		digit int
		n     int
	}{
		{in: "1234567891", kind: ErrDuplicateKeyDigit, digit: 1, n: 10},
		{in: "9876543219", kind: ErrDuplicateKeyDigit, digit: 9, n: 10},
		{in: "1234567890", kind: ErrKeyDigitOutOfRange, digit: 0, n: 10},
		{in: "123456789123", kind: ErrDuplicateKeyDigit, digit: 1, n: 12},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseKey(tt.in)
			var kerr *KeyError
			require.ErrorAs(t, err, &kerr)
			require.ErrorIs(t, err, tt.kind)
			require.Equal(t, tt.digit, kerr.Digit)
			require.Equal(t, tt.n, kerr.N)
		})
	}
}

func TestParseKey_TrimsWhitespace(t *testing.T) {
	k, err := ParseKey(" 213\n")
	require.NoError(t, err)
	require.Equal(t, "213", k.String())
}

// Every digit string of length n over 0..9 is accepted exactly when it is a
// permutation of 1..n. Checked exhaustively for short keys and on a stride
// for the longer ones.
func TestParseKey_RejectsNonPermutations(t *testing.T) {
	for n := 1; n <= MaxKeyDigits; n++ {
		total := 1
		for i := 0; i < n; i++ {
			total *= 10
		}
		step := 1
		if n > 5 {
			step = 7919
		}
		for v := 0; v < total; v += step {
			s := fmt.Sprintf("%0*d", n, v)
			_, err := ParseKey(s)
			if isPermutation(s) {
				require.NoError(t, err, s)
			} else {
				require.ErrorIs(t, err, ErrInvalidKey, s)
			}
		}
	}
}

func TestParseKey_AllPermutationsAccepted(t *testing.T) {
	for n := 1; n <= 6; n++ {
		digits := []byte("123456789"[:n])
		permute(digits, 0, func(p []byte) {
			k, err := ParseKey(string(p))
			require.NoError(t, err, string(p))
			require.Equal(t, string(p), k.String())
		})
	}
}

func TestNewKey_SupportsWideKeys(t *testing.T) {
	order := []int{10, 1, 2, 3, 4, 5, 6, 7, 8, 9, 12, 11}
	k, err := NewKey(order)
	require.NoError(t, err)
	require.Equal(t, 12, k.Len())
	require.Equal(t, 0, k.PositionOf(10))
	require.Equal(t, 11, k.PositionOf(11))
	require.Equal(t, "10,1,2,3,4,5,6,7,8,9,12,11", k.String())
}

func TestNewKey_CopiesInput(t *testing.T) {
	order := []int{2, 1}
	k, err := NewKey(order)
	require.NoError(t, err)
	order[0] = 1
	require.Equal(t, []int{2, 1}, k.Order())
}

func isPermutation(s string) bool {
	n := len(s)
	for d := 1; d <= n; d++ {
		if strings.Count(s, string(rune('0'+d))) != 1 {
			return false
		}
	}
	return true
}

func permute(a []byte, i int, fn func([]byte)) {
	if i == len(a) {
		fn(a)
		return
	}
	for j := i; j < len(a); j++ {
		a[i], a[j] = a[j], a[i]
		permute(a, i+1, fn)
		a[i], a[j] = a[j], a[i]
	}
}

func TestNewKey_KeyErrorDetails(t *testing.T) {
	_, err := ParseKey("3125")
	var kerr *KeyError
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, ErrKeyDigitOutOfRange, kerr.Kind)
	require.Equal(t, 5, kerr.Digit)
	require.Equal(t, 4, kerr.N)
	require.EqualError(t, err, "invalid key: key digit out of range: 5 is not in 1..4")

	_, err = ParseKey("3113")
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, ErrDuplicateKeyDigit, kerr.Kind)
	require.Equal(t, 1, kerr.Digit)
}
