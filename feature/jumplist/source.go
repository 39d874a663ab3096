package jumplist

import (
	"time"

	"jumplist-exporter/feature/jumplist/models"

	"github.com/spf13/afero"
	"gopkg.in/djherbis/times.v1"
)

// sourceInfo reads the timestamps of the container file itself. Birth and
// access times are only available from the operating system filesystem.
func sourceInfo(fs afero.Fs, path string) (models.SourceInfo, error) {
	if _, ok := fs.(*afero.OsFs); ok {
		ts, err := times.Stat(path)
		if err != nil {
			return models.SourceInfo{}, err
		}
		info := models.SourceInfo{
			Modified: utc(ts.ModTime()),
			Accessed: utc(ts.AccessTime()),
		}
		if ts.HasBirthTime() {
			info.Created = utc(ts.BirthTime())
		}
		return info, nil
	}

	st, err := fs.Stat(path)
	if err != nil {
		return models.SourceInfo{}, err
	}
	return models.SourceInfo{Modified: utc(st.ModTime())}, nil
}

func utc(t time.Time) *time.Time {
	v := t.UTC()
	return &v
}
