package service

// DocumentStore defines the interface for storing PDF documents on disk.
// The database keeps a base64 copy of every document, so a store failure
// degrades redundancy rather than losing data.
type DocumentStore interface {
	// Save writes the document bytes under a name derived from the owner
	// and filename, returning the relative path of the stored file.
	Save(ownerID string, filename string, data []byte) (string, error)

	// Load reads a previously stored document by its relative path.
	Load(path string) ([]byte, error)

	// Remove deletes a stored document. Missing files are not an error.
	Remove(path string) error
}
