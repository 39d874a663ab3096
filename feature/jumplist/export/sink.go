package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"jumplist-exporter/core/storage"
	"jumplist-exporter/feature/jumplist/models"

	"go.uber.org/zap"
)

// StampLayout formats the run timestamp embedded in output names.
const StampLayout = "20060102150405"

// Sink receives the record sets of one container kind.
type Sink interface {
	// Name identifies the sink in logs and results.
	Name() string
	// Begin prepares the output for kind. A failure disables the sink.
	Begin(kind models.Kind) error
	// Write renders the records of one container.
	Write(set models.RecordSet) error
	// Close finalizes the output.
	Close() error
}

// Stamp renders t as a run timestamp.
func Stamp(t time.Time) string {
	return t.UTC().Format(StampLayout)
}

// kindLabel names the output of a kind, e.g. AutomaticDestinations.
func kindLabel(kind models.Kind) string {
	return string(kind) + "Destinations"
}

// csvName returns the CSV file name for a kind. A non-empty custom name
// keeps its stem and extension around the kind label.
func csvName(stamp string, kind models.Kind, custom string) string {
	if custom == "" {
		return fmt.Sprintf("%s_%s.csv", stamp, kindLabel(kind))
	}
	ext := filepath.Ext(custom)
	stem := strings.TrimSuffix(filepath.Base(custom), ext)
	return fmt.Sprintf("%s_%s%s", stem, kindLabel(kind), ext)
}

// jsonName returns the per-container document name.
func jsonName(stamp, sourceFile string) string {
	return fmt.Sprintf("%s_%s.json", stamp, baseName(sourceFile))
}

// htmlDirName returns the directory holding the aggregated document of a kind.
func htmlDirName(stamp string, kind models.Kind) string {
	return fmt.Sprintf("%s_JumpList_%s_Output", stamp, kind)
}

// baseName returns the last element of a path written with either separator.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ensureDir creates an output directory, warning when it was missing.
func ensureDir(client storage.Client, path string, logger *zap.Logger) error {
	created, err := client.EnsureDir(path)
	if err != nil {
		return err
	}
	if created {
		logger.Warn(fmt.Sprintf("'%s' does not exist. Creating...", path))
	}
	return nil
}

// values returns the field values of a record in column order.
func values(rec models.Record) []string {
	fields := rec.Fields()
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Value
	}
	return out
}

// fieldMap indexes the field values of a record by column name.
func fieldMap(rec models.Record) map[string]string {
	fields := rec.Fields()
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Name] = f.Value
	}
	return out
}
