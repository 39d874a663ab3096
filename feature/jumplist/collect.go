package jumplist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"jumplist-exporter/feature/jumplist/decoded"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	// AutomaticExt is the extension of automatic destinations containers.
	AutomaticExt = ".automaticDestinations-ms"
	// CustomExt is the extension of custom destinations containers.
	CustomExt = ".customDestinations-ms"
)

var (
	// ErrNoInput is returned when neither a file nor a directory is given.
	ErrNoInput = errors.New("either a file or a directory is required")
	// ErrInputNotFound is returned when the given input does not exist.
	ErrInputNotFound = errors.New("input not found")
)

// Collect resolves the run input into container paths. A single file is
// returned as is. A directory is walked recursively and, unless all is set,
// filtered to jump list extensions ignoring case. Decoded documents are never
// collected.
func (s *Service) Collect(file, dir string) ([]string, error) {
	switch {
	case file != "":
		info, err := s.fs.Stat(file)
		if err != nil {
			return nil, inputError(file, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory, use the directory option", file)
		}
		return []string{file}, nil
	case dir != "":
		info, err := s.fs.Stat(dir)
		if err != nil {
			return nil, inputError(dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dir)
		}
		return s.walk(dir)
	default:
		return nil, ErrNoInput
	}
}

func (s *Service) walk(root string) ([]string, error) {
	var paths []string
	err := afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) && path != root {
				s.logger.Warn("Skipping inaccessible path", zap.String("path", path), zap.Error(err))
				if info != nil && info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return err
		}
		if info.IsDir() || info.Mode()&os.ModeSymlink != 0 {
			return nil
		}
		if IsDecodedDocument(path) {
			return nil
		}
		if s.opts.All || IsContainerName(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", root, err)
	}

	s.logger.Info(fmt.Sprintf("Found %d files", len(paths)), zap.String("directory", root))
	return paths, nil
}

// IsContainerName reports whether path has a jump list extension.
func IsContainerName(path string) bool {
	ext := filepath.Ext(path)
	return strings.EqualFold(ext, AutomaticExt) || strings.EqualFold(ext, CustomExt)
}

// IsDecodedDocument reports whether path is a decoded document written next
// to a container rather than a container itself.
func IsDecodedDocument(path string) bool {
	return strings.EqualFold(filepath.Ext(path), decoded.Suffix)
}

func inputError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	return fmt.Errorf("failed to access %s: %w", path, err)
}
