package jumplist

import (
	"jumplist-exporter/core/storage"
	"jumplist-exporter/feature/jumplist/models"
	"jumplist-exporter/feature/jumplist/narrator"
	"jumplist-exporter/feature/jumplist/reconcile"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Parser decodes container files.
type Parser interface {
	LoadAutomatic(path string) (*models.AutomaticDestination, error)
	LoadCustom(path string) (*models.CustomDestination, error)
}

// Options configures a run.
type Options struct {
	// All disables the extension filter when walking a directory.
	All bool
	// WithDir includes directory entries absent from the DestList.
	WithDir bool
	// Quiet suppresses narration.
	Quiet bool
	// DumpTo receives the raw embedded shortcuts when set.
	DumpTo string
}

// Service drives a batch over jump list containers.
type Service struct {
	fs       afero.Fs
	parser   Parser
	output   storage.Client
	builder  *reconcile.Builder
	narrator *narrator.Narrator
	logger   *zap.Logger
	opts     Options
}

// NewService creates a new batch service. narr may be nil when narration is
// not wanted; output is only used for shortcut dumps.
func NewService(fs afero.Fs, parser Parser, output storage.Client, builder *reconcile.Builder, narr *narrator.Narrator, logger *zap.Logger, opts Options) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fs:       fs,
		parser:   parser,
		output:   output,
		builder:  builder,
		narrator: narr,
		logger:   logger,
		opts:     opts,
	}
}

// Records builds the canonical record sets of every container in the batch,
// grouped by kind in processing order.
func (s *Service) Records(batch *Batch) map[models.Kind][]models.RecordSet {
	out := make(map[models.Kind][]models.RecordSet, 2)
	for _, auto := range batch.Automatic {
		out[models.KindAutomatic] = append(out[models.KindAutomatic], s.builder.Automatic(auto, s.opts.WithDir))
	}
	for _, custom := range batch.Custom {
		out[models.KindCustom] = append(out[models.KindCustom], s.builder.Custom(custom))
	}
	return out
}
