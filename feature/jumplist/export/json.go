package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"jumplist-exporter/core/storage"
	"jumplist-exporter/feature/jumplist/models"

	"go.uber.org/zap"
)

// document is the JSON shape of one container: header fields followed by
// the records, each in column order.
type document struct {
	models.ContainerHeader
	Records []models.Record `json:"Records"`
}

// JSONSink writes one self-contained document per container.
type JSONSink struct {
	client storage.Client
	dir    string
	pretty bool
	stamp  string
	logger *zap.Logger
}

// NewJSONSink creates a JSON sink writing into dir.
func NewJSONSink(client storage.Client, dir string, pretty bool, stamp string, logger *zap.Logger) *JSONSink {
	return &JSONSink{client: client, dir: dir, pretty: pretty, stamp: stamp, logger: logger}
}

func (s *JSONSink) Name() string {
	return "json"
}

func (s *JSONSink) Begin(kind models.Kind) error {
	if err := ensureDir(s.client, s.dir, s.logger); err != nil {
		return err
	}
	s.logger.Warn(fmt.Sprintf("Saving %s json output to '%s'", kindLabel(kind), s.dir))
	return nil
}

func (s *JSONSink) Write(set models.RecordSet) error {
	records := set.Records
	if records == nil {
		records = []models.Record{}
	}

	data, err := s.encode(document{ContainerHeader: set.Header, Records: records})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", set.Header.SourceFile, err)
	}
	return s.client.WriteFile(filepath.Join(s.dir, jsonName(s.stamp, set.Header.SourceFile)), data)
}

func (s *JSONSink) Close() error {
	return nil
}

// encode keeps '<', '>' and '&' literal so values match the other sinks.
func (s *JSONSink) encode(doc document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if s.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
