package cipher

// Decryption holds everything produced while decrypting one message.
type Decryption struct {
	Ciphertext string
	Key        Key
	// Groups are the slices of the ciphertext in play order, Groups[0]
	// belongs to order 1.
	Groups    []string
	Grid      *Grid
	Plaintext string
}

// Decode reverses Encode. The ciphertext is cut into Len groups in play
// order, each min(rows, remaining) long, so when the length is not a
// multiple of the key length only the groups read last come up short.
// Short columns are padded with Filler. The grid is read row-major and the
// trailing Filler run is removed.
func Decode(ciphertext string, key Key) Decryption {
	ct := Clean(ciphertext)
	cols := key.Len()
	rows := rowsFor(len(ct), cols)

	groups := splitGroups(ct, rows, cols)

	grid := newBlankGrid(rows, cols)
	for order := 1; order <= cols; order++ {
		grid.setColumn(key.PositionOf(order), groups[order-1])
	}

	return Decryption{
		Ciphertext: ct,
		Key:        key,
		Groups:     groups,
		Grid:       grid,
		Plaintext:  TrimPadding(grid.String()),
	}
}

// Decrypt returns just the recovered plaintext of Decode.
func Decrypt(ciphertext string, key Key) string {
	return Decode(ciphertext, key).Plaintext
}

func splitGroups(ct string, rows, n int) []string {
	groups := make([]string, n)
	idx := 0
	for i := range groups {
		take := min(rows, len(ct)-idx)
		if take < 0 {
			take = 0
		}
		groups[i] = ct[idx : idx+take]
		idx += take
	}
	return groups
}
