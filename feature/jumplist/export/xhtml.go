package export

import (
	"embed"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"jumplist-exporter/core/storage"
	"jumplist-exporter/feature/jumplist/models"

	"go.uber.org/zap"
)

//go:embed styles/*.css
var styles embed.FS

var stylesheets = []string{"normalize.css", "style.css"}

const (
	sourceFileTitle     = "Note: Location and name of processed Jump List"
	automaticEntryTitle = "Entry number"
	customEntryTitle    = "Note: Lnk position in file"
)

// Detail columns in display order. Optional columns are skipped when empty.
var (
	automaticDetail = []string{
		"TargetIDAbsolutePath", "CreationTime", "LastModified", "Hostname", "MacAddress",
		"Path", "PinStatus", "FileBirthDroid", "FileDroid", "VolumeBirthDroid", "VolumeDroid",
		"Arguments", "TargetCreated", "TargetModified", "TargetAccessed", "InteractionCount",
		"FileSize", "RelativePath", "WorkingDirectory", "FileAttributes", "HeaderFlags",
		"DriveType", "VolumeSerialNumber", "VolumeLabel", "LocalPath", "CommonPath",
		"TargetMFTEntryNumber", "TargetMFTSequenceNumber", "MachineID", "MachineMACAddress",
		"TrackerCreatedOn", "ExtraBlocksPresent", "Notes",
	}
	customDetail = []string{
		"EntryName", "TargetIDAbsolutePath", "Arguments", "TargetCreated", "TargetModified",
		"TargetAccessed", "FileSize", "RelativePath", "WorkingDirectory", "FileAttributes",
		"HeaderFlags", "DriveType", "VolumeSerialNumber", "VolumeLabel", "LocalPath",
		"CommonPath", "TargetMFTEntryNumber", "TargetMFTSequenceNumber", "MachineID",
		"MachineMACAddress", "TrackerCreatedOn", "ExtraBlocksPresent",
	}
	optionalDetail = map[string]bool{"Arguments": true, "Notes": true}
)

// XHTMLSink aggregates every container of a kind into one index.xhtml.
type XHTMLSink struct {
	client storage.Client
	root   string
	stamp  string
	logger *zap.Logger

	kind models.Kind
	path string
	file io.WriteCloser
	enc  *xml.Encoder
}

// NewXHTMLSink creates an XHTML sink writing below root.
func NewXHTMLSink(client storage.Client, root, stamp string, logger *zap.Logger) *XHTMLSink {
	return &XHTMLSink{client: client, root: root, stamp: stamp, logger: logger}
}

func (s *XHTMLSink) Name() string {
	return "xhtml"
}

func (s *XHTMLSink) Begin(kind models.Kind) error {
	if err := ensureDir(s.client, s.root, s.logger); err != nil {
		return err
	}

	dir := filepath.Join(s.root, htmlDirName(s.stamp, kind))
	for _, name := range stylesheets {
		css, err := styles.ReadFile("styles/" + name)
		if err != nil {
			return fmt.Errorf("failed to read stylesheet %s: %w", name, err)
		}
		if err := s.client.WriteFile(filepath.Join(dir, "styles", name), css); err != nil {
			return err
		}
	}

	s.kind = kind
	s.path = filepath.Join(dir, "index.xhtml")
	s.logger.Warn(fmt.Sprintf("Saving HTML output to '%s'", s.path))

	file, err := s.client.Create(s.path)
	if err != nil {
		return err
	}
	s.file = file
	s.enc = xml.NewEncoder(file)
	s.enc.Indent("", "    ")

	tokens := []xml.Token{
		xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="utf-8"`)},
	}
	for _, name := range stylesheets {
		tokens = append(tokens, xml.ProcInst{Target: "xml-stylesheet", Inst: []byte(`href="styles/` + name + `"`)})
	}
	tokens = append(tokens, xml.StartElement{Name: xml.Name{Local: "document"}})

	for _, tok := range tokens {
		if err := s.enc.EncodeToken(tok); err != nil {
			return s.fail(err)
		}
	}
	return s.fail(s.enc.Flush())
}

func (s *XHTMLSink) Write(set models.RecordSet) error {
	container := xml.StartElement{Name: xml.Name{Local: "Container"}}
	if err := s.enc.EncodeToken(container); err != nil {
		return s.fail(err)
	}

	for _, f := range set.Header.Fields() {
		var attrs []xml.Attr
		if f.Name == "SourceFile" {
			attrs = []xml.Attr{{Name: xml.Name{Local: "title"}, Value: sourceFileTitle}}
		}
		if err := s.element(f.Name, f.Value, attrs...); err != nil {
			return s.fail(err)
		}
	}

	for i, rec := range set.Records {
		if err := s.entry(i, fieldMap(rec)); err != nil {
			return s.fail(err)
		}
	}

	if err := s.enc.EncodeToken(container.End()); err != nil {
		return s.fail(err)
	}
	return s.fail(s.enc.Flush())
}

func (s *XHTMLSink) Close() error {
	if s.file == nil {
		return nil
	}

	err := s.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: "document"}})
	if err == nil {
		err = s.enc.Flush()
	}
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	s.file, s.enc = nil, nil
	return s.fail(err)
}

// entry writes the left column badge and the right column details of one record.
func (s *XHTMLSink) entry(index int, values map[string]string) error {
	detail, title, badge := automaticDetail, automaticEntryTitle, values["EntryNumber"]
	if s.kind == models.KindCustom {
		detail, title, badge = customDetail, customEntryTitle, strconv.Itoa(index)
	}

	left := xml.StartElement{Name: xml.Name{Local: "lftColumn"}}
	if err := s.enc.EncodeToken(left); err != nil {
		return err
	}
	if err := s.element("EntryNumber_large", badge, xml.Attr{Name: xml.Name{Local: "title"}, Value: title}); err != nil {
		return err
	}
	if err := s.enc.EncodeToken(left.End()); err != nil {
		return err
	}

	right := xml.StartElement{Name: xml.Name{Local: "rgtColumn"}}
	if err := s.enc.EncodeToken(right); err != nil {
		return err
	}
	for _, name := range detail {
		value := values[name]
		if value == "" && optionalDetail[name] {
			continue
		}
		if err := s.element(name, value); err != nil {
			return err
		}
	}
	return s.enc.EncodeToken(right.End())
}

func (s *XHTMLSink) element(name, value string, attrs ...xml.Attr) error {
	return s.enc.EncodeElement(value, xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (s *XHTMLSink) fail(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to write %s: %w", s.path, err)
}
