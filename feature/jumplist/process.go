package jumplist

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"jumplist-exporter/feature/jumplist/models"
	"jumplist-exporter/feature/jumplist/reconcile"

	"go.uber.org/zap"
)

// FailureKind classifies a per-file failure.
type FailureKind string

const (
	FailureAccess    FailureKind = "access"
	FailureMalformed FailureKind = "malformed"
	FailureBenign    FailureKind = "benign"
)

// Failure records why one file did not make it into the batch.
type Failure struct {
	File string
	Kind FailureKind
	Err  error
}

// Batch holds the outcome of processing a list of files.
type Batch struct {
	Automatic []*models.AutomaticDestination
	Custom    []*models.CustomDestination
	// Failures lists access and malformed failures.
	Failures []Failure
	// Skipped lists benign conditions, such as empty custom containers.
	Skipped []Failure
	Total   int
	Elapsed time.Duration
}

// Processed returns the number of containers accepted into the batch.
func (b *Batch) Processed() int {
	return len(b.Automatic) + len(b.Custom)
}

// Process handles every path in order. A failing file is recorded and the
// batch moves on.
func (s *Service) Process(paths []string) *Batch {
	start := time.Now()
	batch := &Batch{Total: len(paths)}

	for _, path := range paths {
		kind, err := Classify(s.fs, path)
		if err == nil {
			if kind == models.KindAutomatic {
				err = s.processAutomatic(batch, path)
			} else {
				err = s.processCustom(batch, path)
			}
		}
		if err != nil {
			s.record(batch, path, err)
		}
	}

	batch.Elapsed = time.Since(start)
	return batch
}

func (s *Service) processAutomatic(batch *Batch, path string) error {
	s.logger.Debug("Processing automatic destinations", zap.String("file", path))

	auto, err := s.parser.LoadAutomatic(path)
	if err != nil {
		return err
	}
	s.fillSource(path, &auto.Source)

	if mismatch := reconcile.CheckConsistency(auto); mismatch != nil {
		s.logger.Warn("DestList count does not match directory listing",
			zap.String("file", path),
			zap.Int("destlist_count", mismatch.Expected),
			zap.Int("directory_count", mismatch.Actual),
			zap.Int("directory_entries", mismatch.DirectoryEntries))
	}

	if s.narrator != nil && !s.opts.Quiet {
		s.narrator.Automatic(auto, s.opts.WithDir)
	}
	if s.opts.DumpTo != "" {
		s.dumpAutomatic(auto)
	}

	batch.Automatic = append(batch.Automatic, auto)
	s.logger.Info("Processed automatic destinations",
		zap.String("file", path),
		zap.String("app_id", auto.AppID.ID),
		zap.Int("entries", len(auto.DestListEntries)))
	return nil
}

func (s *Service) processCustom(batch *Batch, path string) error {
	s.logger.Debug("Processing custom destinations", zap.String("file", path))

	custom, err := s.parser.LoadCustom(path)
	if err != nil {
		return err
	}
	s.fillSource(path, &custom.Source)

	if s.narrator != nil && !s.opts.Quiet {
		s.narrator.Custom(custom)
	}
	if s.opts.DumpTo != "" {
		s.dumpCustom(custom)
	}

	batch.Custom = append(batch.Custom, custom)
	s.logger.Info("Processed custom destinations",
		zap.String("file", path),
		zap.String("app_id", custom.AppID.ID),
		zap.Int("entries", len(custom.Entries)))
	return nil
}

// fillSource reads the container file timestamps when the decoded document
// did not carry them.
func (s *Service) fillSource(path string, source *models.SourceInfo) {
	if source.Created != nil || source.Modified != nil || source.Accessed != nil {
		return
	}
	info, err := sourceInfo(s.fs, path)
	if err != nil {
		s.logger.Debug("Source timestamps unavailable", zap.String("file", path), zap.Error(err))
		return
	}
	*source = info
}

func (s *Service) record(batch *Batch, path string, err error) {
	failure := Failure{File: path, Kind: classifyFailure(err), Err: err}

	switch failure.Kind {
	case FailureBenign:
		s.logger.Info(fmt.Sprintf("%s is empty, skipping", filepath.Base(path)), zap.String("file", path))
		batch.Skipped = append(batch.Skipped, failure)
	case FailureAccess:
		s.logger.Error("Unable to access file", zap.String("file", path), zap.Error(err))
		batch.Failures = append(batch.Failures, failure)
	default:
		s.logger.Error("Error processing jump list", zap.String("file", path), zap.Error(err))
		batch.Failures = append(batch.Failures, failure)
	}
}

func classifyFailure(err error) FailureKind {
	switch {
	case errors.Is(err, models.ErrEmptyCustomDestinations):
		return FailureBenign
	case errors.Is(err, fs.ErrPermission):
		return FailureAccess
	default:
		return FailureMalformed
	}
}
