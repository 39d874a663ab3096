package models

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrEmptyCustomDestinations marks a custom container that holds no entries.
	// It is a benign condition, reported apart from parse failures.
	ErrEmptyCustomDestinations = errors.New("empty custom destinations jump list")

	// ErrMultipleTrackers marks a shortcut carrying more than one tracker block.
	ErrMultipleTrackers = errors.New("multiple tracker data blocks present")
)

// AutomaticSignature is the little-endian value of the first 8 bytes of a
// compound-file (automatic destinations) container.
const AutomaticSignature uint64 = 0xe11ab1a1e011cfd0

// Kind identifies the container variant.
type Kind string

const (
	KindAutomatic Kind = "Automatic"
	KindCustom    Kind = "Custom"
)

// AppID identifies the application that owns a jump list.
type AppID struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// SourceInfo carries file system timestamps of the container file itself.
// Any of them may be unavailable on the platform that produced the listing.
type SourceInfo struct {
	Created  *time.Time `json:"created,omitempty"`
	Modified *time.Time `json:"modified,omitempty"`
	Accessed *time.Time `json:"accessed,omitempty"`
}

// AutomaticDestination is a decoded *.automaticDestinations-ms container.
type AutomaticDestination struct {
	SourceFile          string               `json:"source_file"`
	Source              SourceInfo           `json:"source"`
	AppID               AppID                `json:"app_id"`
	DestListVersion     int                  `json:"destlist_version"`
	DestListCount       int                  `json:"destlist_count"`
	LastUsedEntryNumber int                  `json:"last_used_entry_number"`
	HasSps              bool                 `json:"has_sps"`
	DestListEntries     []DestListEntry      `json:"destlist_entries"`
	Directory           []DirectoryEntry     `json:"directory"`
	PropertyStore       *PropertyStore       `json:"destlist_property_store,omitempty"`
	Streams             map[string]*Shortcut `json:"streams,omitempty"`
}

// HasPropertyStore reports whether the container carries a non-empty
// container-level property store.
func (a *AutomaticDestination) HasPropertyStore() bool {
	return a.PropertyStore != nil && len(a.PropertyStore.Sheets) > 0
}

// ShortcutByName resolves the shortcut stored in the named directory stream.
// Stream names are hex numbers, so the lookup ignores case.
func (a *AutomaticDestination) ShortcutByName(name string) (*Shortcut, bool) {
	if lnk, ok := a.Streams[name]; ok && lnk != nil {
		return lnk, true
	}
	for streamName, lnk := range a.Streams {
		if lnk != nil && strings.EqualFold(streamName, name) {
			return lnk, true
		}
	}
	return nil, false
}

// DestListEntry is one row of the DestList manifest.
type DestListEntry struct {
	EntryNumber      int       `json:"entry_number"`
	MRUPosition      int       `json:"mru_position"`
	Path             string    `json:"path"`
	Pinned           bool      `json:"pinned"`
	CreatedOn        time.Time `json:"created_on"`
	LastModified     time.Time `json:"last_modified"`
	Hostname         string    `json:"hostname"`
	MacAddress       string    `json:"mac_address"`
	InteractionCount int       `json:"interaction_count"`
	FileBirthDroid   GUID      `json:"file_birth_droid"`
	FileDroid        GUID      `json:"file_droid"`
	VolumeBirthDroid GUID      `json:"volume_birth_droid"`
	VolumeDroid      GUID      `json:"volume_droid"`
	Shortcut         *Shortcut `json:"shortcut,omitempty"`
}

// DirectoryEntry describes one stream of the underlying compound file.
type DirectoryEntry struct {
	Name         string     `json:"name"`
	CreationTime *time.Time `json:"creation_time,omitempty"`
	ModifiedTime *time.Time `json:"modified_time,omitempty"`
}

// CustomDestination is a decoded *.customDestinations-ms container.
type CustomDestination struct {
	SourceFile string        `json:"source_file"`
	Source     SourceInfo    `json:"source"`
	AppID      AppID         `json:"app_id"`
	Entries    []CustomEntry `json:"entries"`
}

// CustomEntry is one category of a custom jump list.
type CustomEntry struct {
	Name      string     `json:"name"`
	Rank      float32    `json:"rank"`
	Shortcuts []Shortcut `json:"shortcuts"`
}

// PropertyStore is a serialized property store made of property sheets.
type PropertyStore struct {
	Sheets []PropertySheet `json:"sheets"`
}

// PropertySheet groups properties under one format identifier.
type PropertySheet struct {
	GUID       string     `json:"guid"`
	Properties []Property `json:"properties"`
}

// Property is a single id/value pair of a sheet.
type Property struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}
