package reconcile

import (
	"fmt"
	"strings"

	corereconcile "jumplist-exporter/core/reconcile"
	"jumplist-exporter/feature/jumplist/models"
)

const (
	rootEntryName = "Root Entry"
	destListName  = "DestList"
)

// Adapter reconciles an automatic container's DestList (manifest) against
// the streams of its compound file (listing). Keys are hex entry numbers.
type Adapter struct {
	auto *models.AutomaticDestination
}

// NewAdapter creates an adapter for one automatic container.
func NewAdapter(auto *models.AutomaticDestination) *Adapter {
	return &Adapter{auto: auto}
}

// Name implements corereconcile.Adapter.
func (a *Adapter) Name() string {
	return "destlist"
}

// ManifestKeys returns the hex entry numbers of the DestList.
func (a *Adapter) ManifestKeys() []string {
	keys := make([]string, len(a.auto.DestListEntries))
	for i, entry := range a.auto.DestListEntries {
		keys[i] = EntryKey(entry.EntryNumber)
	}
	return keys
}

// ListingNames returns the directory stream names.
func (a *Adapter) ListingNames() []string {
	names := make([]string, len(a.auto.Directory))
	for i, entry := range a.auto.Directory {
		names[i] = entry.Name
	}
	return names
}

// ExtractListingKey skips the compound file root and the DestList stream.
func (a *Adapter) ExtractListingKey(name string) (string, bool) {
	if name == rootEntryName || name == destListName {
		return "", false
	}
	return strings.ToUpper(name), true
}

// EntryKey formats a DestList entry number the way stream names are written.
func EntryKey(entryNumber int) string {
	return fmt.Sprintf("%X", entryNumber)
}

// Plan reconciles the DestList of auto against its directory listing.
func Plan(auto *models.AutomaticDestination) *corereconcile.ReconcilePlan {
	return corereconcile.ReconcileAll(NewAdapter(auto))
}
