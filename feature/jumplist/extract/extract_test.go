package extract

import (
	"errors"
	"testing"
	"time"

	"jumplist-exporter/feature/jumplist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const layout = "2006-01-02 15:04:05"

type mockVendors struct {
	mock.Mock
}

func (m *mockVendors) Vendor(oui string) (string, bool) {
	args := m.Called(oui)
	return args.String(0), args.Bool(1)
}

func items(values ...string) []models.ShellItem {
	chain := make([]models.ShellItem, len(values))
	for i, v := range values {
		chain[i] = models.ShellItem{Kind: models.ShellItemDirectory, Value: v}
	}
	return chain
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		ts       time.Time
		sentinel int
		want     string
	}{
		{name: "Header sentinel", ts: time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC), sentinel: HeaderSentinelYear, want: ""},
		{name: "DestList sentinel", ts: time.Date(1582, 10, 15, 0, 0, 0, 0, time.UTC), sentinel: DestListSentinelYear, want: ""},
		{name: "Zero time", ts: time.Time{}, sentinel: HeaderSentinelYear, want: ""},
		{name: "Real value", ts: time.Date(2020, 5, 6, 7, 8, 9, 0, time.UTC), sentinel: HeaderSentinelYear, want: "2020-05-06 07:08:09"},
		{name: "Other sentinel year is kept", ts: time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC), sentinel: DestListSentinelYear, want: "1601-01-01 00:00:00"},
		{name: "Rendered in UTC", ts: time.Date(2020, 5, 6, 9, 8, 9, 0, time.FixedZone("CEST", 2*3600)), sentinel: HeaderSentinelYear, want: "2020-05-06 07:08:09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Timestamp(tt.ts, tt.sentinel, layout))
		})
	}
}

func TestNormalizePtr(t *testing.T) {
	_, ok := NormalizePtr(nil, HeaderSentinelYear)
	assert.False(t, ok)

	ts := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	got, ok := NormalizePtr(&ts, HeaderSentinelYear)
	assert.True(t, ok)
	assert.Equal(t, ts, got)
}

func TestAbsolutePath(t *testing.T) {
	tests := []struct {
		name       string
		chain      []models.ShellItem
		share      *models.NetworkShareInfo
		localPath  string
		commonPath string
		want       string
	}{
		{
			name:  "Chain values joined",
			chain: items("v1", "v2", "v3"),
			want:  `v1\v2\v3`,
		},
		{
			name:  "Realistic chain",
			chain: items("My Computer", `C:`, "Users", "bob", "report.docx"),
			want:  `My Computer\C:\Users\bob\report.docx`,
		},
		{
			name:  "Missing value contributes an empty segment",
			chain: items("a", "", "b"),
			want:  `a\\b`,
		},
		{
			name:       "Empty chain with network share",
			chain:      []models.ShellItem{},
			share:      &models.NetworkShareInfo{ShareName: `\\host\share`},
			localPath:  `C:\ignored`,
			commonPath: "docs",
			want:       `\\host\share\docs`,
		},
		{
			name:       "Empty chain with local path",
			chain:      []models.ShellItem{},
			localPath:  `C:\Users`,
			commonPath: "docs",
			want:       `C:\Users\docs`,
		},
		{
			name:       "Single empty value does not fall back",
			chain:      items(""),
			localPath:  `C:\Users`,
			commonPath: "docs",
			want:       "",
		},
		{
			name:       "Empty values keep their segments",
			chain:      items("", ""),
			localPath:  `C:\Users`,
			commonPath: "docs",
			want:       `\`,
		},
		{
			name:  "Empty value inside chain",
			chain: items("My Computer", "", "notes.txt"),
			want:  `My Computer\\notes.txt`,
		},
		{
			name:       "Absent chain",
			chain:      nil,
			localPath:  `C:\Users`,
			commonPath: "docs",
			want:       NoTargetIDs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbsolutePath(tt.chain, tt.share, tt.localPath, tt.commonPath))
		})
	}
}

func TestShortcutPath(t *testing.T) {
	lnk := &models.Shortcut{TargetIDs: []models.ShellItem{}, LocalPath: `D:\data`, CommonPath: "x.txt"}
	assert.Equal(t, `D:\data\x.txt`, ShortcutPath(lnk))
}

func trackerBlock(mac string) models.ExtraDataBlock {
	return models.ExtraDataBlock{
		Kind: models.BlockTracker,
		Tracker: &models.TrackerData{
			MachineID:    "desktop-01",
			MacAddress:   mac,
			CreationTime: time.Date(2019, 2, 3, 4, 5, 6, 0, time.UTC),
		},
	}
}

func TestTracker(t *testing.T) {
	t.Run("No blocks", func(t *testing.T) {
		facts, err := Tracker(nil, nil)
		assert.NoError(t, err)
		assert.Nil(t, facts)
	})

	t.Run("Known vendor", func(t *testing.T) {
		vendors := &mockVendors{}
		vendors.On("Vendor", "00-0C-29").Return("VMware, Inc.", true)

		facts, err := Tracker([]models.ExtraDataBlock{{Kind: models.BlockKnownFolder}, trackerBlock("00:0c:29:aa:bb:cc")}, vendors)
		require.NoError(t, err)
		require.NotNil(t, facts)

		assert.Equal(t, "desktop-01", facts.MachineID)
		assert.Equal(t, "00:0c:29:aa:bb:cc", facts.MacAddress)
		assert.Equal(t, "VMware, Inc.", facts.VendorName)
		assert.True(t, facts.HasCreationTime)
		vendors.AssertExpectations(t)
	})

	t.Run("Unknown vendor", func(t *testing.T) {
		vendors := &mockVendors{}
		vendors.On("Vendor", "12-34-56").Return("", false)

		facts, err := Tracker([]models.ExtraDataBlock{trackerBlock("12:34:56:78:9a:bc")}, vendors)
		require.NoError(t, err)
		assert.Equal(t, UnknownVendor, facts.VendorName)
	})

	t.Run("Zero MAC skips vendor lookup", func(t *testing.T) {
		vendors := &mockVendors{}

		facts, err := Tracker([]models.ExtraDataBlock{trackerBlock("00:00:00:00:00:00")}, vendors)
		require.NoError(t, err)

		assert.Equal(t, "", facts.MacAddress)
		assert.Equal(t, "", facts.VendorName)
		vendors.AssertNotCalled(t, "Vendor", mock.Anything)
	})

	t.Run("Type name matched ignoring case", func(t *testing.T) {
		block := trackerBlock("00:00:00:00:00:00")
		block.Kind = "trackerdatabaseblock"

		facts, err := Tracker([]models.ExtraDataBlock{block}, nil)
		require.NoError(t, err)
		assert.NotNil(t, facts)
	})

	t.Run("Sentinel creation time", func(t *testing.T) {
		block := trackerBlock("00:00:00:00:00:00")
		block.Tracker.CreationTime = time.Date(1582, 10, 15, 0, 0, 0, 0, time.UTC)

		facts, err := Tracker([]models.ExtraDataBlock{block}, nil)
		require.NoError(t, err)
		assert.False(t, facts.HasCreationTime)
	})

	t.Run("Duplicates keep the first", func(t *testing.T) {
		second := trackerBlock("00:00:00:00:00:00")
		second.Tracker.MachineID = "laptop-02"

		facts, err := Tracker([]models.ExtraDataBlock{trackerBlock("00:00:00:00:00:00"), second}, nil)
		assert.True(t, errors.Is(err, models.ErrMultipleTrackers))
		require.NotNil(t, facts)
		assert.Equal(t, "desktop-01", facts.MachineID)
	})
}

func TestVendorFromMAC(t *testing.T) {
	assert.Equal(t, UnknownVendor, VendorFromMAC("00:14:22:0d:94:04", nil))

	vendors := &mockVendors{}
	vendors.On("Vendor", "00-14-22").Return("Dell Inc.", true)
	assert.Equal(t, "Dell Inc.", VendorFromMAC("00-14-22-0d-94-04", vendors))
}

func ptr[T any](v T) *T {
	return &v
}

func fileEntry(entry uint64, seq uint16) models.ExtensionBlock {
	return models.ExtensionBlock{
		Kind: models.ExtensionFileEntry,
		MFT:  &models.MFTReference{EntryNumber: ptr(entry), SequenceNumber: ptr(seq)},
	}
}

func TestMFT(t *testing.T) {
	tests := []struct {
		name   string
		chain  []models.ShellItem
		want   MFTRef
		wantOK bool
	}{
		{name: "Absent chain"},
		{name: "No extension blocks", chain: items("a", "b")},
		{
			name: "Entry and sequence",
			chain: []models.ShellItem{
				{Value: "a"},
				{Value: "b", ExtensionBlocks: []models.ExtensionBlock{fileEntry(18, 2)}},
			},
			want:   MFTRef{EntryNumber: "0x12", SequenceNumber: "0x2"},
			wantOK: true,
		},
		{
			name: "Only the last item is consulted",
			chain: []models.ShellItem{
				{Value: "a", ExtensionBlocks: []models.ExtensionBlock{fileEntry(18, 2)}},
				{Value: "b"},
			},
		},
		{
			name: "Last file-entry block wins",
			chain: []models.ShellItem{
				{Value: "b", ExtensionBlocks: []models.ExtensionBlock{
					fileEntry(1, 1),
					{Kind: models.ExtensionFileTimes},
					fileEntry(0xABCDEF, 0x10),
				}},
			},
			want:   MFTRef{EntryNumber: "0xABCDEF", SequenceNumber: "0x10"},
			wantOK: true,
		},
		{
			name: "Missing sequence half",
			chain: []models.ShellItem{
				{Value: "b", ExtensionBlocks: []models.ExtensionBlock{
					{Kind: models.ExtensionFileEntry, MFT: &models.MFTReference{EntryNumber: ptr(uint64(255))}},
				}},
			},
			want:   MFTRef{EntryNumber: "0xFF"},
			wantOK: true,
		},
		{
			name: "File-entry block without reference",
			chain: []models.ShellItem{
				{Value: "b", ExtensionBlocks: []models.ExtensionBlock{{Kind: models.ExtensionFileEntry, LongName: "b"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MFT(tt.chain)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMFTAmbiguous(t *testing.T) {
	same := []models.ShellItem{{ExtensionBlocks: []models.ExtensionBlock{fileEntry(5, 1), fileEntry(5, 1)}}}
	differ := []models.ShellItem{{ExtensionBlocks: []models.ExtensionBlock{fileEntry(5, 1), fileEntry(6, 1)}}}

	assert.False(t, MFTAmbiguous(nil))
	assert.False(t, MFTAmbiguous(same))
	assert.True(t, MFTAmbiguous(differ))
}

func TestInventory(t *testing.T) {
	assert.Equal(t, "", Inventory(nil))
	assert.Equal(t, "TrackerDataBaseBlock", Inventory([]models.ExtraDataBlock{{Kind: models.BlockTracker}}))
	assert.Equal(t,
		"PropertyStoreDataBlock, TrackerDataBaseBlock, SomethingNew",
		Inventory([]models.ExtraDataBlock{{Kind: models.BlockPropertyStore}, {Kind: models.BlockTracker}, {Kind: "SomethingNew"}}),
	)
}
