package lookup

import (
	"strings"

	"github.com/spf13/afero"
)

// AppIDs maps jump list AppIDs to application descriptions.
type AppIDs struct {
	entries map[string]string
}

func loadAppIDs() (*AppIDs, error) {
	var doc struct {
		AppIDs map[string]string `yaml:"appids"`
	}
	if err := readEmbedded("appids.yaml", &doc); err != nil {
		return nil, err
	}

	a := &AppIDs{entries: make(map[string]string, len(doc.AppIDs))}
	for id, desc := range doc.AppIDs {
		a.entries[strings.ToLower(id)] = desc
	}
	return a, nil
}

// Lookup returns the description of id.
func (a *AppIDs) Lookup(id string) (string, bool) {
	desc, ok := a.entries[strings.ToLower(strings.TrimSpace(id))]
	return desc, ok
}

// Describe returns the description of id, or UnknownAppID.
func (a *AppIDs) Describe(id string) string {
	if desc, ok := a.Lookup(id); ok {
		return desc
	}
	return UnknownAppID
}

// Len returns the number of known AppIDs.
func (a *AppIDs) Len() int {
	return len(a.entries)
}

// LoadFile adds entries from a file of "appid|description" lines. Entries
// for AppIDs already known are replaced. It returns how many new AppIDs were
// added.
func (a *AppIDs) LoadFile(fs afero.Fs, path string) (int, error) {
	added := 0
	err := readLines(fs, path, func(line string) {
		id, desc, ok := strings.Cut(line, "|")
		if !ok {
			return
		}
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			return
		}
		if _, exists := a.entries[id]; !exists {
			added++
		}
		a.entries[id] = strings.TrimSpace(desc)
	})
	return added, err
}
