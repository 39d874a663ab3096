package reconcile

import (
	"fmt"

	"jumplist-exporter/feature/jumplist/models"
)

// CountMismatch describes a DestList whose entry count disagrees with the
// number of shortcut streams in the directory listing.
type CountMismatch struct {
	Expected         int
	Actual           int
	DirectoryEntries int
	Adjust           int
}

func (m *CountMismatch) String() string {
	return fmt.Sprintf("DestList count %d does not match directory listing count %d (%d streams less %d structural)",
		m.Expected, m.Actual, m.DirectoryEntries, m.Adjust)
}

// CheckConsistency compares the DestList count with the directory listing.
// The listing always holds the root entry and the DestList stream, plus a
// property store stream when the container carries a non-empty one.
// It returns nil when the counts agree or the DestList count is unknown.
func CheckConsistency(auto *models.AutomaticDestination) *CountMismatch {
	adjust := 2
	if auto.HasPropertyStore() {
		adjust = 3
	}

	actual := len(auto.Directory) - adjust
	if auto.DestListCount <= 0 || auto.DestListCount == actual {
		return nil
	}

	return &CountMismatch{
		Expected:         auto.DestListCount,
		Actual:           actual,
		DirectoryEntries: len(auto.Directory),
		Adjust:           adjust,
	}
}
