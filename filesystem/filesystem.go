// Package filesystem routes every file operation through a swappable afero backend
// so tests can run against memory instead of the real disk.
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches to the real operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// WriteAtomic writes data next to path and renames it into place, creating
// parent directories as needed. Readers never observe a half-written file.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	if err := backend.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := backend.WriteFile(tmp, data, perm); err != nil {
		return err
	}

	if err := backend.Rename(tmp, path); err != nil {
		_ = backend.Remove(tmp)
		return err
	}
	return nil
}
