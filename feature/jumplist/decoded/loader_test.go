package decoded

import (
	"errors"
	"io/fs"
	"testing"

	"jumplist-exporter/feature/jumplist/models"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appIDs map[string]string

func (a appIDs) Describe(id string) string {
	if d, ok := a[id]; ok {
		return d
	}
	return "Unknown AppId"
}

const automaticDoc = `{
  "destlist_version": 4,
  "destlist_count": 1,
  "last_used_entry_number": 1,
  "destlist_entries": [
    {
      "entry_number": 1,
      "path": "C:\\Users\\bob\\notes.txt",
      "pinned": true,
      "created_on": "2021-03-04T05:06:07Z",
      "mac_address": "00:0c:29:aa:bb:cc",
      "file_droid": "5b0b7a4e-2d3c-11eb-9f8a-000c29a1b2c3",
      "volume_droid": "",
      "shortcut": {
        "header": {"file_size": 42, "data_flags": 1},
        "target_ids": [{"kind": "0x1F", "value": "My Computer"}]
      }
    }
  ],
  "directory": [{"name": "Root Entry"}, {"name": "1"}, {"name": "DestList"}],
  "streams": {"1": {"header": {"file_size": 42}}}
}`

func TestLoadAutomatic(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/cases/1B4DD67F29CB1962.automaticDestinations-ms"
	require.NoError(t, afero.WriteFile(fs, path+Suffix, []byte(automaticDoc), 0o644))

	auto, err := NewLoader(fs, appIDs{"1b4dd67f29cb1962": "Windows Explorer"}).LoadAutomatic(path)
	require.NoError(t, err)

	assert.Equal(t, path, auto.SourceFile)
	assert.Equal(t, models.AppID{ID: "1b4dd67f29cb1962", Description: "Windows Explorer"}, auto.AppID)
	assert.Equal(t, 4, auto.DestListVersion)
	require.Len(t, auto.DestListEntries, 1)

	entry := auto.DestListEntries[0]
	assert.True(t, entry.Pinned)
	assert.Equal(t, "5b0b7a4e-2d3c-11eb-9f8a-000c29a1b2c3", entry.FileDroid.String())
	assert.True(t, entry.VolumeDroid.IsZero())
	require.NotNil(t, entry.Shortcut)
	assert.Equal(t, uint32(42), entry.Shortcut.Header.FileSize)
	assert.True(t, entry.Shortcut.Header.DataFlags.Has(models.HasTargetIDList))
	assert.Len(t, auto.Directory, 3)

	lnk, ok := auto.ShortcutByName("1")
	assert.True(t, ok)
	assert.Nil(t, lnk.TargetIDs)
}

func TestLoadAutomatic_KeepsDecodedAppID(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/x/abc.automaticDestinations-ms"
	doc := `{"app_id": {"id": "feedface", "description": "Custom tool"}}`
	require.NoError(t, afero.WriteFile(fs, path+Suffix, []byte(doc), 0o644))

	auto, err := NewLoader(fs, appIDs{}).LoadAutomatic(path)
	require.NoError(t, err)
	assert.Equal(t, models.AppID{ID: "feedface", Description: "Custom tool"}, auto.AppID)
}

func TestLoadCustom(t *testing.T) {
	fs := afero.NewMemMapFs()
	loader := NewLoader(fs, appIDs{})

	t.Run("Entries", func(t *testing.T) {
		path := "/x/9b9cdc69c1c24e2b.customDestinations-ms"
		doc := `{"entries": [{"name": "Tasks", "rank": 0.5, "shortcuts": [{"arguments": "/new"}]}]}`
		require.NoError(t, afero.WriteFile(fs, path+Suffix, []byte(doc), 0o644))

		custom, err := loader.LoadCustom(path)
		require.NoError(t, err)
		assert.Equal(t, "Unknown AppId", custom.AppID.Description)
		require.Len(t, custom.Entries, 1)
		assert.Equal(t, float32(0.5), custom.Entries[0].Rank)
		assert.Equal(t, "/new", custom.Entries[0].Shortcuts[0].Arguments)
	})

	t.Run("Empty", func(t *testing.T) {
		path := "/x/empty.customDestinations-ms"
		require.NoError(t, afero.WriteFile(fs, path+Suffix, []byte(`{"entries": []}`), 0o644))

		_, err := loader.LoadCustom(path)
		assert.ErrorIs(t, err, models.ErrEmptyCustomDestinations)
	})
}

func TestLoad_Errors(t *testing.T) {
	mfs := afero.NewMemMapFs()
	loader := NewLoader(mfs, nil)

	_, err := loader.LoadAutomatic("/missing.automaticDestinations-ms")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	require.NoError(t, afero.WriteFile(mfs, "/bad.customDestinations-ms"+Suffix, []byte("{"), 0o644))
	_, err = loader.LoadCustom("/bad.customDestinations-ms")
	assert.ErrorContains(t, err, "failed to decode")
}
