package export

import (
	"jumplist-exporter/core/storage"
	"jumplist-exporter/feature/jumplist/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options selects the active sinks. An empty directory disables its sink.
type Options struct {
	CSVDir    string
	CSVFile   string
	JSONDir   string
	Pretty    bool
	HTMLDir   string
	DB        *gorm.DB
	RunID     string
	BatchSize int
}

// Enabled reports whether any sink is selected.
func (o Options) Enabled() bool {
	return o.CSVDir != "" || o.JSONDir != "" || o.HTMLDir != "" || o.DB != nil
}

// SinkResult reports the outcome of one sink for one kind.
type SinkResult struct {
	Sink    string
	Records int
	Err     error
}

// Exporter renders record sets into every selected sink.
type Exporter struct {
	client storage.Client
	opts   Options
	stamp  string
	logger *zap.Logger
}

// NewExporter creates an exporter. stamp is embedded in output names.
func NewExporter(client storage.Client, opts Options, stamp string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{client: client, opts: opts, stamp: stamp, logger: logger}
}

// sinks builds a fresh sink for every selected output.
func (e *Exporter) sinks() []Sink {
	var sinks []Sink
	if e.opts.CSVDir != "" {
		sinks = append(sinks, NewCSVSink(e.client, e.opts.CSVDir, e.opts.CSVFile, e.stamp, e.logger))
	}
	if e.opts.JSONDir != "" {
		sinks = append(sinks, NewJSONSink(e.client, e.opts.JSONDir, e.opts.Pretty, e.stamp, e.logger))
	}
	if e.opts.HTMLDir != "" {
		sinks = append(sinks, NewXHTMLSink(e.client, e.opts.HTMLDir, e.stamp, e.logger))
	}
	if e.opts.DB != nil {
		sinks = append(sinks, NewSQLiteSink(e.opts.DB, e.opts.RunID, e.opts.BatchSize))
	}
	return sinks
}

// Export writes every record set of one kind to each selected sink.
// A sink that fails to begin or write is disabled for the rest of the pass
// while the other sinks continue. It returns one result per sink.
func (e *Exporter) Export(kind models.Kind, sets []models.RecordSet) []SinkResult {
	sinks := e.sinks()
	results := make([]SinkResult, len(sinks))
	active := make([]bool, len(sinks))

	for i, sink := range sinks {
		results[i].Sink = sink.Name()
		if err := sink.Begin(kind); err != nil {
			e.logger.Error("Unable to start export, sink disabled",
				zap.String("sink", sink.Name()),
				zap.String("kind", string(kind)),
				zap.Error(err))
			results[i].Err = err
			_ = sink.Close()
			continue
		}
		active[i] = true
	}

	for _, set := range sets {
		for i, sink := range sinks {
			if !active[i] {
				continue
			}
			if err := sink.Write(set); err != nil {
				e.logger.Error("Error writing records, sink disabled",
					zap.String("sink", sink.Name()),
					zap.String("file", set.Header.SourceFile),
					zap.Error(err))
				results[i].Err = err
				active[i] = false
				_ = sink.Close()
				continue
			}
			results[i].Records += len(set.Records)
		}
	}

	for i, sink := range sinks {
		if !active[i] {
			continue
		}
		if err := sink.Close(); err != nil {
			e.logger.Error("Error finishing export",
				zap.String("sink", sink.Name()),
				zap.Error(err))
			results[i].Err = err
		}
	}

	return results
}
