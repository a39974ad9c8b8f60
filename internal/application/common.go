package application

import "io"

// FileSystem abstracts the file handles used by App
type FileSystem interface {
	// Open opens the named file for reading.
	Open(name string) (io.ReadCloser, error)
	// Create creates or truncates the named file for writing.
	Create(name string) (io.WriteCloser, error)
}
