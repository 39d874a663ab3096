package jumplist

import (
	"fmt"
	"path/filepath"

	"jumplist-exporter/feature/jumplist/models"
	"jumplist-exporter/feature/jumplist/reconcile"

	"go.uber.org/zap"
)

// dumpAutomatic writes the raw shortcut of every DestList entry. Containers
// with an empty DestList are only dumped from the directory when WithDir is
// set.
func (s *Service) dumpAutomatic(auto *models.AutomaticDestination) {
	if auto.DestListCount == 0 && !s.opts.WithDir {
		return
	}

	for _, entry := range auto.DestListEntries {
		key := reconcile.EntryKey(entry.EntryNumber)
		lnk := entry.Shortcut
		if lnk == nil {
			lnk, _ = auto.ShortcutByName(key)
		}
		s.dump(auto.SourceFile, key, lnk)
	}
	if s.opts.WithDir {
		for _, orphan := range reconcile.Plan(auto).Orphans {
			lnk, _ := auto.ShortcutByName(orphan.Name)
			s.dump(auto.SourceFile, orphan.Name, lnk)
		}
	}
}

// dumpCustom writes every shortcut of a custom container, numbered by its
// position in the file starting at 1.
func (s *Service) dumpCustom(custom *models.CustomDestination) {
	position := 0
	for _, entry := range custom.Entries {
		for i := range entry.Shortcuts {
			position++
			s.dump(custom.SourceFile, fmt.Sprintf("%d", position), &entry.Shortcuts[i])
		}
	}
}

func (s *Service) dump(sourceFile, entry string, lnk *models.Shortcut) {
	if lnk == nil || len(lnk.Raw) == 0 {
		return
	}

	name := fmt.Sprintf("%s_%s.lnk", filepath.Base(sourceFile), entry)
	path := filepath.Join(s.opts.DumpTo, name)
	if err := s.output.WriteFile(path, lnk.Raw); err != nil {
		s.logger.Warn("Failed to dump shortcut", zap.String("path", path), zap.Error(err))
		return
	}
	s.logger.Debug("Dumped shortcut", zap.String("path", path))
}
