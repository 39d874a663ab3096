package lookup

import (
	"strings"

	"github.com/spf13/afero"
)

// Vendors maps MAC OUI prefixes (AA-BB-CC) to vendor names.
type Vendors struct {
	entries map[string]string
}

func loadVendors() (*Vendors, error) {
	var doc struct {
		Vendors map[string]string `yaml:"vendors"`
	}
	if err := readEmbedded("oui.yaml", &doc); err != nil {
		return nil, err
	}

	v := &Vendors{entries: make(map[string]string, len(doc.Vendors))}
	for oui, name := range doc.Vendors {
		v.entries[strings.ToUpper(oui)] = name
	}
	return v, nil
}

// Vendor returns the vendor registered for oui.
func (v *Vendors) Vendor(oui string) (string, bool) {
	name, ok := v.entries[strings.ToUpper(oui)]
	return name, ok
}

// LoadFile adds entries from a file of "AA-BB-CC<TAB>Vendor" lines, the
// layout of the IEEE OUI text export.
func (v *Vendors) LoadFile(fs afero.Fs, path string) (int, error) {
	added := 0
	err := readLines(fs, path, func(line string) {
		oui, name, ok := strings.Cut(line, "\t")
		if !ok {
			return
		}
		oui = strings.ToUpper(strings.TrimSpace(oui))
		if len(oui) != 8 {
			return
		}
		if _, exists := v.entries[oui]; !exists {
			added++
		}
		v.entries[oui] = strings.TrimSpace(name)
	})
	return added, err
}
