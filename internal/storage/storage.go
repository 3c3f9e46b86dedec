// Package storage persists uploaded files on local disk and maps them to
// public URLs served by the router's static file route.
package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Store struct {
	Dir     string
	BaseURL string
}

func New(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{Dir: dir, BaseURL: baseURL}, nil
}

// Save writes the file under a uuid-prefixed name so uploads with the same
// filename never collide. Returns the on-disk path and the public URL.
func (s *Store) Save(filename string, r io.Reader) (path string, url string, err error) {
	name := uuid.New().String() + "_" + filepath.Base(filename)
	path = filepath.Join(s.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", "", err
	}
	return path, s.BaseURL + "/" + name, nil
}

// Remove deletes a stored file. Missing files are not an error; the row is
// the source of truth.
func (s *Store) Remove(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
