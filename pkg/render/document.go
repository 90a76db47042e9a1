package render

import "github.com/birdayz/transpose/pkg/cipher"

const (
	ModeEncrypt = "encrypt"
	ModeDecrypt = "decrypt"
)

// Document is the machine readable form of one cipher run. It is what the
// json, msgpack and template outputs serialize.
type Document struct {
	Mode    string   `json:"mode" msgpack:"mode"`
	Input   string   `json:"input" msgpack:"input"`
	Key     []int    `json:"key" msgpack:"key"`
	Columns int      `json:"columns" msgpack:"columns"`
	Rows    int      `json:"rows" msgpack:"rows"`
	Grid    []string `json:"grid" msgpack:"grid"`
	Groups  []string `json:"groups,omitempty" msgpack:"groups,omitempty"`
	Output  string   `json:"output" msgpack:"output"`
}

func EncryptionDocument(enc cipher.Encryption) Document {
	return Document{
		Mode:    ModeEncrypt,
		Input:   enc.Plaintext,
		Key:     enc.Key.Order(),
		Columns: enc.Key.Len(),
		Rows:    enc.Grid.Rows(),
		Grid:    enc.Grid.RowStrings(),
		Output:  enc.Ciphertext,
	}
}

func DecryptionDocument(dec cipher.Decryption) Document {
	return Document{
		Mode:    ModeDecrypt,
		Input:   dec.Ciphertext,
		Key:     dec.Key.Order(),
		Columns: dec.Key.Len(),
		Rows:    dec.Grid.Rows(),
		Grid:    dec.Grid.RowStrings(),
		Groups:  dec.Groups,
		Output:  dec.Plaintext,
	}
}
