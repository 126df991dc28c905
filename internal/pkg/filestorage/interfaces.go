package filestorage

import "io"

// ImageStorage stores profile images under generated names
type ImageStorage interface {
	// Save writes r under name and returns the number of bytes written
	Save(name string, r io.Reader) (int64, error)

	// Exists reports whether name is present and non-empty
	Exists(name string) bool

	// Delete removes name; deleting a missing file is not an error
	Delete(name string) error

	// URL returns the public path the file is served from
	URL(name string) string
}
