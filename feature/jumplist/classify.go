package jumplist

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"jumplist-exporter/feature/jumplist/models"

	"github.com/spf13/afero"
)

// Classify reads the first 8 bytes of path as a little-endian value and
// compares them with the compound file signature. A match means an automatic
// container; anything else, files shorter than the signature included, is
// treated as custom. A file that cannot be opened or read is an error.
func Classify(fs afero.Fs, path string) (models.Kind, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var sig [8]byte
	if _, err := io.ReadFull(f, sig[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return models.KindCustom, nil
		}
		return "", fmt.Errorf("failed to read signature of %s: %w", path, err)
	}
	if binary.LittleEndian.Uint64(sig[:]) == models.AutomaticSignature {
		return models.KindAutomatic, nil
	}
	return models.KindCustom, nil
}
