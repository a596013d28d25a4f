package envelope

import "github.com/privault/privault/models"

// Part is one plaintext unit submitted for encryption. The tag binds the
// ciphertext to its role inside an item (note body, file data, file
// metadata) so parts cannot be swapped between roles on decrypt.
type Part struct {
	Payload []byte
	Tag     string
}

// CipherPart is one encrypted unit submitted for decryption, carrying the
// tag it was encrypted under.
type CipherPart struct {
	Ciphertext models.Ciphertext
	Tag        string
}
