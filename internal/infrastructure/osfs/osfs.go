package osfs

import (
	"io"
	"os"
)

// FileSystem implements application.FileSystem on top of the os package
type FileSystem struct{}

func (FileSystem) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (FileSystem) Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}
