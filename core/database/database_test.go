//go:build cgo

package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Empty path", func(t *testing.T) {
		db, err := Connect(Config{})
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Missing parent directory", func(t *testing.T) {
		db, err := Connect(Config{Path: filepath.Join(t.TempDir(), "missing", "records.db")})
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("New file", func(t *testing.T) {
		db, err := Connect(Config{Path: filepath.Join(t.TempDir(), "records.db")})
		require.NoError(t, err)
		require.NotNil(t, db)
		assert.NoError(t, Close(db))
	})
}
