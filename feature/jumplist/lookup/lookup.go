package lookup

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// UnknownAppID describes an AppID missing from the table.
const UnknownAppID = "Unknown AppId"

//go:embed data/*.yaml
var data embed.FS

// Tables bundles the lookup tables used while normalizing containers.
type Tables struct {
	AppIDs     *AppIDs
	Vendors    *Vendors
	Properties *Properties
}

// Load parses the built-in tables.
func Load() (*Tables, error) {
	appIDs, err := loadAppIDs()
	if err != nil {
		return nil, err
	}
	vendors, err := loadVendors()
	if err != nil {
		return nil, err
	}
	properties, err := loadProperties()
	if err != nil {
		return nil, err
	}
	return &Tables{AppIDs: appIDs, Vendors: vendors, Properties: properties}, nil
}

func readEmbedded(name string, out any) error {
	raw, err := data.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// readLines opens path and calls fn for every non-blank, non-comment line.
func readLines(fs afero.Fs, path string, fn func(line string)) error {
	f, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return scanLines(f, fn)
}

func scanLines(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fn(line)
	}
	return scanner.Err()
}
