package reconcile

import (
	"testing"

	"jumplist-exporter/feature/jumplist/models"

	"github.com/stretchr/testify/assert"
)

func directory(n int) []models.DirectoryEntry {
	entries := make([]models.DirectoryEntry, n)
	for i := range entries {
		entries[i] = models.DirectoryEntry{Name: EntryKey(i)}
	}
	return entries
}

func TestCheckConsistency(t *testing.T) {
	store := &models.PropertyStore{Sheets: []models.PropertySheet{{GUID: "{x}"}}}

	tests := []struct {
		name       string
		count      int
		entries    int
		store      *models.PropertyStore
		wantAdjust int
		wantWarn   bool
	}{
		{name: "Counts agree", count: 5, entries: 7},
		{name: "Counts disagree", count: 5, entries: 6, wantAdjust: 2, wantWarn: true},
		{name: "Property store adds a stream", count: 5, entries: 8, store: store},
		{name: "Property store mismatch", count: 5, entries: 7, store: store, wantAdjust: 3, wantWarn: true},
		{name: "Empty property store ignored", count: 5, entries: 7, store: &models.PropertyStore{}},
		{name: "Unknown count", count: 0, entries: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auto := &models.AutomaticDestination{
				DestListCount: tt.count,
				Directory:     directory(tt.entries),
				PropertyStore: tt.store,
			}

			mismatch := CheckConsistency(auto)
			if !tt.wantWarn {
				assert.Nil(t, mismatch)
				return
			}
			if assert.NotNil(t, mismatch) {
				assert.Equal(t, tt.count, mismatch.Expected)
				assert.Equal(t, tt.entries-tt.wantAdjust, mismatch.Actual)
				assert.Equal(t, tt.wantAdjust, mismatch.Adjust)
				assert.Contains(t, mismatch.String(), "does not match")
			}
		})
	}
}

func TestPlan(t *testing.T) {
	auto := &models.AutomaticDestination{
		DestListEntries: []models.DestListEntry{{EntryNumber: 10}, {EntryNumber: 11}},
		Directory: []models.DirectoryEntry{
			{Name: "Root Entry"}, {Name: "a"}, {Name: "DestList"}, {Name: "c"},
		},
	}

	plan := Plan(auto)

	assert.Equal(t, 1, plan.Summary.MissingListing)
	assert.Equal(t, 1, plan.Summary.MissingManifest)
	assert.Equal(t, 2, plan.Summary.StructuralItems)
	if assert.Len(t, plan.Orphans, 1) {
		assert.Equal(t, "c", plan.Orphans[0].Name)
	}
}
