package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"

	"jumplist-exporter/core/storage"
	"jumplist-exporter/feature/jumplist/models"

	"go.uber.org/zap"
)

// CSVSink writes one file per kind: a header row followed by one row per record.
type CSVSink struct {
	client   storage.Client
	dir      string
	fileName string
	stamp    string
	logger   *zap.Logger

	path   string
	file   io.WriteCloser
	writer *csv.Writer
}

// NewCSVSink creates a CSV sink writing into dir. fileName overrides the
// timestamped default name when set.
func NewCSVSink(client storage.Client, dir, fileName, stamp string, logger *zap.Logger) *CSVSink {
	return &CSVSink{client: client, dir: dir, fileName: fileName, stamp: stamp, logger: logger}
}

func (s *CSVSink) Name() string {
	return "csv"
}

func (s *CSVSink) Begin(kind models.Kind) error {
	if err := ensureDir(s.client, s.dir, s.logger); err != nil {
		return err
	}

	s.path = filepath.Join(s.dir, csvName(s.stamp, kind, s.fileName))
	s.logger.Warn(fmt.Sprintf("%s CSV output will be saved to '%s'", kindLabel(kind), s.path))

	file, err := s.client.Create(s.path)
	if err != nil {
		return err
	}
	s.file = file
	s.writer = csv.NewWriter(file)

	return s.flush(s.writer.Write(models.Columns(kind)))
}

func (s *CSVSink) Write(set models.RecordSet) error {
	for _, rec := range set.Records {
		if err := s.writer.Write(values(rec)); err != nil {
			return fmt.Errorf("failed to write record to %s: %w", s.path, err)
		}
	}
	return s.flush(nil)
}

func (s *CSVSink) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.flush(nil)
	if cerr := s.file.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close %s: %w", s.path, cerr)
	}
	s.file, s.writer = nil, nil
	return err
}

func (s *CSVSink) flush(err error) error {
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
