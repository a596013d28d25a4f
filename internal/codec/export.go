package codec

// FileExport is a decoded file payload ready to be written to disk or
// streamed to a client, paired with the identity it carried in its metadata.
type FileExport struct {
	Name string `json:"name"`
	MIME string `json:"mime"`
	Data []byte `json:"data"`
}
