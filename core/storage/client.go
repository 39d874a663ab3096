package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Client defines the interface for output storage operations.
type Client interface {
	// EnsureDir creates a directory tree if missing and reports whether it had to.
	EnsureDir(path string) (created bool, err error)
	// Create opens a new file for writing, truncating an existing one.
	Create(path string) (io.WriteCloser, error)
	// WriteFile writes a complete file, creating its parent directory.
	WriteFile(path string, data []byte) error
}

// NewClient creates a storage client rooted on the given filesystem.
// A nil filesystem means the operating system filesystem.
func NewClient(fs afero.Fs) Client {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &fsClient{fs: fs}
}

type fsClient struct {
	fs afero.Fs
}

func (c *fsClient) EnsureDir(path string) (bool, error) {
	exists, err := afero.DirExists(c.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat directory %s: %w", path, err)
	}
	if exists {
		return false, nil
	}
	if err := c.fs.MkdirAll(path, 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return true, nil
}

func (c *fsClient) Create(path string) (io.WriteCloser, error) {
	f, err := c.fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", path, err)
	}
	return f, nil
}

func (c *fsClient) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if _, err := c.EnsureDir(dir); err != nil {
			return err
		}
	}
	if err := afero.WriteFile(c.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
