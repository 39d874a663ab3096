package reconcile

import (
	"errors"
	"strconv"
	"time"

	"jumplist-exporter/core/utils"
	"jumplist-exporter/feature/jumplist/extract"
	"jumplist-exporter/feature/jumplist/models"

	"go.uber.org/zap"
)

const (
	// OrphanNote marks records built from a directory stream the DestList omits.
	OrphanNote = "Found in Directory, not DestList"

	noVolumeInfo = "(None)"
)

// Builder turns decoded containers into canonical records. It is the only
// place where record values are formatted.
type Builder struct {
	layout string
	logger *zap.Logger
}

// NewBuilder creates a builder rendering timestamps with the Go layout.
func NewBuilder(layout string, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{layout: layout, logger: logger}
}

// Automatic builds one record per DestList entry, followed by one record per
// orphaned directory stream when withDir is set.
func (b *Builder) Automatic(auto *models.AutomaticDestination, withDir bool) models.RecordSet {
	header := b.header(models.KindAutomatic, auto.SourceFile, auto.Source, auto.AppID)
	header.DestListVersion = strconv.Itoa(auto.DestListVersion)
	header.LastUsedEntryNumber = strconv.Itoa(auto.LastUsedEntryNumber)

	set := models.RecordSet{Header: header, Records: make([]models.Record, 0, len(auto.DestListEntries))}

	for i := range auto.DestListEntries {
		entry := &auto.DestListEntries[i]
		key := EntryKey(entry.EntryNumber)

		lnk := entry.Shortcut
		if lnk == nil {
			lnk, _ = auto.ShortcutByName(key)
		}

		rec := models.AutomaticRecord{
			SourceFields:        header.SourceFields,
			DestListVersion:     header.DestListVersion,
			LastUsedEntryNumber: header.LastUsedEntryNumber,
			MRU:                 strconv.Itoa(entry.MRUPosition),
			EntryNumber:         key,
			CreationTime:        extract.Timestamp(entry.CreatedOn, extract.DestListSentinelYear, b.layout),
			LastModified:        extract.Timestamp(entry.LastModified, extract.DestListSentinelYear, b.layout),
			Hostname:            entry.Hostname,
			MacAddress:          extract.NormalizeMAC(entry.MacAddress),
			Path:                entry.Path,
			InteractionCount:    strconv.Itoa(entry.InteractionCount),
			PinStatus:           pinStatus(entry.Pinned),
			FileBirthDroid:      entry.FileBirthDroid.String(),
			FileDroid:           entry.FileDroid.String(),
			VolumeBirthDroid:    entry.VolumeBirthDroid.String(),
			VolumeDroid:         entry.VolumeDroid.String(),
			ShortcutFields:      b.shortcutFields(lnk, auto.SourceFile, key),
		}
		rec.Sanitize(utils.StripInvalidXML)
		set.Records = append(set.Records, rec)
	}

	if withDir {
		set.Records = append(set.Records, b.orphans(auto, header)...)
	}

	return set
}

// orphans builds records for directory streams the DestList does not list.
func (b *Builder) orphans(auto *models.AutomaticDestination, header models.ContainerHeader) []models.Record {
	plan := Plan(auto)
	if len(plan.Orphans) == 0 {
		return nil
	}

	directory := make(map[string]*models.DirectoryEntry, len(auto.Directory))
	for i := range auto.Directory {
		if _, exists := directory[auto.Directory[i].Name]; !exists {
			directory[auto.Directory[i].Name] = &auto.Directory[i]
		}
	}

	records := make([]models.Record, 0, len(plan.Orphans))
	for _, orphan := range plan.Orphans {
		lnk, ok := auto.ShortcutByName(orphan.Name)
		if !ok {
			b.logger.Debug("Directory stream holds no shortcut",
				zap.String("file", auto.SourceFile),
				zap.String("stream", orphan.Name))
			continue
		}

		dir := directory[orphan.Name]
		rec := models.AutomaticRecord{
			SourceFields:        header.SourceFields,
			DestListVersion:     header.DestListVersion,
			LastUsedEntryNumber: header.LastUsedEntryNumber,
			EntryNumber:         orphan.Name,
			CreationTime:        b.directoryTime(dir.CreationTime),
			LastModified:        b.directoryTime(dir.ModifiedTime),
			ShortcutFields:      b.shortcutFields(lnk, auto.SourceFile, orphan.Name),
			Notes:               OrphanNote,
		}
		rec.Sanitize(utils.StripInvalidXML)
		records = append(records, rec)
	}
	return records
}

// Custom builds one record per shortcut of every entry, in order.
func (b *Builder) Custom(custom *models.CustomDestination) models.RecordSet {
	header := b.header(models.KindCustom, custom.SourceFile, custom.Source, custom.AppID)
	set := models.RecordSet{Header: header}

	for i := range custom.Entries {
		entry := &custom.Entries[i]
		for j := range entry.Shortcuts {
			rec := models.CustomRecord{
				SourceFields:   header.SourceFields,
				EntryName:      entry.Name,
				ShortcutFields: b.shortcutFields(&entry.Shortcuts[j], custom.SourceFile, entry.Name),
			}
			rec.Sanitize(utils.StripInvalidXML)
			set.Records = append(set.Records, rec)
		}
	}

	return set
}

func (b *Builder) header(kind models.Kind, sourceFile string, source models.SourceInfo, appID models.AppID) models.ContainerHeader {
	return models.ContainerHeader{
		Kind: kind,
		SourceFields: models.SourceFields{
			SourceFile:       utils.StripInvalidXML(sourceFile),
			SourceCreated:    b.sourceTime(source.Created),
			SourceModified:   b.sourceTime(source.Modified),
			SourceAccessed:   b.sourceTime(source.Accessed),
			AppID:            utils.StripInvalidXML(appID.ID),
			AppIDDescription: utils.StripInvalidXML(appID.Description),
		},
	}
}

// shortcutFields derives every shortcut column. A nil shortcut yields the
// zero value, leaving all of them empty.
func (b *Builder) shortcutFields(lnk *models.Shortcut, sourceFile, entry string) models.ShortcutFields {
	if lnk == nil {
		return models.ShortcutFields{}
	}

	h := lnk.Header
	f := models.ShortcutFields{
		TargetCreated:        extract.Timestamp(h.TargetCreated, extract.HeaderSentinelYear, b.layout),
		TargetModified:       extract.Timestamp(h.TargetModified, extract.HeaderSentinelYear, b.layout),
		TargetAccessed:       extract.Timestamp(h.TargetAccessed, extract.HeaderSentinelYear, b.layout),
		FileSize:             strconv.FormatUint(uint64(h.FileSize), 10),
		RelativePath:         lnk.RelativePath,
		WorkingDirectory:     lnk.WorkingDirectory,
		FileAttributes:       h.FileAttributes.String(),
		HeaderFlags:          h.DataFlags.String(),
		DriveType:            noVolumeInfo,
		LocalPath:            lnk.LocalPath,
		CommonPath:           lnk.CommonPath,
		TargetIDAbsolutePath: extract.ShortcutPath(lnk),
		ExtraBlocksPresent:   extract.Inventory(lnk.ExtraBlocks),
	}

	if lnk.VolumeInfo != nil {
		f.DriveType = lnk.VolumeInfo.DriveType.String()
		f.VolumeSerialNumber = lnk.VolumeInfo.SerialNumber
		f.VolumeLabel = lnk.VolumeInfo.Label
	}

	if mft, ok := extract.MFT(lnk.TargetIDs); ok {
		f.TargetMFTEntryNumber = mft.EntryNumber
		f.TargetMFTSequenceNumber = mft.SequenceNumber
		if extract.MFTAmbiguous(lnk.TargetIDs) {
			b.logger.Debug("Last shell item holds differing MFT references, using the last one",
				zap.String("file", sourceFile),
				zap.String("entry", entry))
		}
	}

	tracker, err := extract.Tracker(lnk.ExtraBlocks, nil)
	if errors.Is(err, models.ErrMultipleTrackers) {
		b.logger.Warn("Shortcut has more than one tracker block, using the first",
			zap.String("file", sourceFile),
			zap.String("entry", entry),
			zap.Error(err))
	}
	if tracker != nil {
		f.MachineID = tracker.MachineID
		f.MachineMACAddress = tracker.MacAddress
		f.TrackerCreatedOn = extract.Display(tracker.CreationTime, tracker.HasCreationTime, b.layout)
	}

	if h.DataFlags.Has(models.HasArguments) {
		f.Arguments = lnk.Arguments
	}

	return f
}

func (b *Builder) sourceTime(t *time.Time) string {
	v, ok := extract.NormalizePtr(t, extract.HeaderSentinelYear)
	return extract.Display(v, ok, b.layout)
}

// directoryTime renders a compound file timestamp, which may carry either
// sentinel depending on the writer.
func (b *Builder) directoryTime(t *time.Time) string {
	v, ok := extract.NormalizePtr(t, extract.HeaderSentinelYear)
	if ok {
		v, ok = extract.Normalize(v, extract.DestListSentinelYear)
	}
	return extract.Display(v, ok, b.layout)
}

func pinStatus(pinned bool) string {
	if pinned {
		return "True"
	}
	return "False"
}
