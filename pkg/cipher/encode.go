package cipher

import "strings"

// Encryption holds everything produced while encrypting one message.
type Encryption struct {
	Plaintext  string
	Key        Key
	Grid       *Grid
	Ciphertext string
}

// Encode writes plaintext into a grid as wide as the key and reads the
// columns back in play order. The ciphertext always has Rows*Len
// characters, padding included.
func Encode(plaintext string, key Key) Encryption {
	pt := Clean(plaintext)
	grid := NewGrid(pt, key.Len())

	var ct strings.Builder
	ct.Grow(grid.Rows() * grid.Cols())
	for order := 1; order <= key.Len(); order++ {
		ct.WriteString(grid.Column(key.PositionOf(order)))
	}

	return Encryption{
		Plaintext:  pt,
		Key:        key,
		Grid:       grid,
		Ciphertext: ct.String(),
	}
}

// Encrypt returns just the ciphertext of Encode.
func Encrypt(plaintext string, key Key) string {
	return Encode(plaintext, key).Ciphertext
}
