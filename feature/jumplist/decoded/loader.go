package decoded

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"jumplist-exporter/feature/jumplist/models"

	"github.com/spf13/afero"
)

// Suffix is appended to a container path to locate its decoded document.
const Suffix = ".json"

// AppIDResolver describes an AppID.
type AppIDResolver interface {
	Describe(id string) string
}

// Loader reads decoded container documents from a filesystem.
type Loader struct {
	fs     afero.Fs
	appIDs AppIDResolver
}

// NewLoader creates a loader. appIDs fills in missing AppID descriptions and
// may be nil.
func NewLoader(fs afero.Fs, appIDs AppIDResolver) *Loader {
	return &Loader{fs: fs, appIDs: appIDs}
}

// LoadAutomatic loads the decoded automatic destinations container at path.
func (l *Loader) LoadAutomatic(path string) (*models.AutomaticDestination, error) {
	var auto models.AutomaticDestination
	if err := l.read(path, &auto); err != nil {
		return nil, err
	}

	auto.SourceFile = path
	auto.AppID = l.appID(path, auto.AppID)
	return &auto, nil
}

// LoadCustom loads the decoded custom destinations container at path. A
// container without entries yields models.ErrEmptyCustomDestinations.
func (l *Loader) LoadCustom(path string) (*models.CustomDestination, error) {
	var custom models.CustomDestination
	if err := l.read(path, &custom); err != nil {
		return nil, err
	}
	if len(custom.Entries) == 0 {
		return nil, models.ErrEmptyCustomDestinations
	}

	custom.SourceFile = path
	custom.AppID = l.appID(path, custom.AppID)
	return &custom, nil
}

func (l *Loader) read(path string, out any) error {
	f, err := l.fs.Open(path + Suffix)
	if err != nil {
		return fmt.Errorf("failed to open decoded container: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path+Suffix, err)
	}
	return nil
}

// appID completes a decoded AppID. The id defaults to the container name up
// to the first dot, the description to the lookup table entry.
func (l *Loader) appID(path string, id models.AppID) models.AppID {
	if id.ID == "" {
		name := filepath.Base(path)
		if i := strings.IndexByte(name, '.'); i > 0 {
			name = name[:i]
		}
		id.ID = strings.ToLower(name)
	}
	if id.Description == "" && l.appIDs != nil {
		id.Description = l.appIDs.Describe(id.ID)
	}
	return id
}
