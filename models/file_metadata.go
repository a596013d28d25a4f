package models

import "encoding/json"

// FileMetadata is the plaintext payload carried inside the encrypted
// "file_metadata" part of a file item. The JSON field names match the
// serialized form produced by earlier clients, so old records keep
// decoding.
type FileMetadata struct {
	Name         string `json:"name"`
	MimeType     string `json:"type"`
	SizeBytes    int64  `json:"size"`
	LastModified int64  `json:"lastModified"` // epoch millis
}

// Marshal serializes the metadata for encryption.
func (m FileMetadata) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

// UnmarshalFileMetadata parses a decrypted "file_metadata" plaintext.
func UnmarshalFileMetadata(b []byte) (FileMetadata, error) {
	var m FileMetadata
	if err := json.Unmarshal(b, &m); err != nil {
		return FileMetadata{}, err
	}
	return m, nil
}
