// Package files implements the storage.Store interface on top of a directory
// of YAML documents, one file per key.
package files

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/iarchive/iarchive/pkg/errors"
	"github.com/iarchive/iarchive/pkg/storage"
)

// Store persists each key as <dir>/<key>.yaml.
type Store struct {
	dir string
}

// Compile-time interface check.
var _ storage.Store = (*Store)(nil)

// New creates a file-backed store rooted at dir, creating the directory if it
// does not exist.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.NewValidationError("dir", dir, "directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.WrapIO("mkdir", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads the value for key. A missing file is reported as absent, not as
// an error.
func (s *Store) Load(key string) ([]byte, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WrapIO("read", path, err)
	}
	return data, true, nil
}

// Save writes the value for key atomically: the bytes land in a temp file
// first and are renamed into place, so a crash never leaves a torn document.
func (s *Store) Save(key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("close", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// Delete removes the value for key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.WrapIO("remove", path, err)
	}
	return nil
}

// path maps a key to its file, rejecting keys that would escape the store
// directory.
func (s *Store) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", errors.NewValidationError("key", key, "key must be a plain name")
	}
	return filepath.Join(s.dir, key+".yaml"), nil
}
