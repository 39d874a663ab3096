//go:build cgo

package export

import (
	"path/filepath"
	"testing"

	"jumplist-exporter/core/database"
	"jumplist-exporter/feature/jumplist/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Path: filepath.Join(t.TempDir(), "records.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	opts := Options{DB: db, RunID: "3f1e9c62-5d1a-4c8e-9b7a-2f0d6e4c1a77", BatchSize: 1}
	exp := NewExporter(nil, opts, stamp, nil)

	sets := automaticSets()
	results := exp.Export(models.KindAutomatic, sets)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, 2, results[0].Records)

	cols, err := database.GetTableColumns(db, "automatic_destinations")
	require.NoError(t, err)
	names := map[string]bool{}
	for _, c := range cols {
		names[c.Field] = true
	}
	for _, want := range []string{"id", "run_id", "source_file", "entry_number", "path", "notes"} {
		assert.True(t, names[want], "missing column %s", want)
	}

	var rows []AutomaticRow
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, opts.RunID, rows[0].RunID)
	if diff := cmp.Diff(sets[0].Records[0].Fields(), rows[0].Fields()); diff != "" {
		t.Errorf("stored record differs (-want +got):\n%s", diff)
	}

	t.Run("Custom", func(t *testing.T) {
		results := exp.Export(models.KindCustom, customSets())
		require.NoError(t, results[0].Err)

		var custom []CustomRow
		require.NoError(t, db.Find(&custom).Error)
		require.Len(t, custom, 1)
		assert.Equal(t, "Tasks", custom[0].EntryName)
		assert.Equal(t, "/new", custom[0].Arguments)
	})
}

func TestSQLiteSink_RejectsMixedKinds(t *testing.T) {
	db, err := database.Connect(database.Config{Path: filepath.Join(t.TempDir(), "records.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	sink := NewSQLiteSink(db, "run", 0)
	require.NoError(t, sink.Begin(models.KindAutomatic))
	assert.Error(t, sink.Write(customSets()[0]))
}

func TestSQLiteSink_CheckColumns(t *testing.T) {
	db, err := database.Connect(database.Config{Path: filepath.Join(t.TempDir(), "records.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, db.Exec("CREATE TABLE custom_destinations (id integer primary key, run_id text, source_file text)").Error)

	sink := NewSQLiteSink(db, "run", 0)
	err = sink.checkColumns(&CustomRow{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry_name")
	assert.NotContains(t, err.Error(), "source_file")

	require.NoError(t, sink.Begin(models.KindCustom))
	assert.NoError(t, sink.checkColumns(&CustomRow{}))
}
