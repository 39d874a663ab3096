package models

// Field is one named value of a canonical record.
type Field struct {
	Name  string
	Value string
}

// Record is a canonical output row. Every value is already formatted, so all
// sinks emit the same strings.
type Record interface {
	Fields() []Field
}

// SourceFields identify the container a record came from.
type SourceFields struct {
	SourceFile       string `json:"SourceFile"`
	SourceCreated    string `json:"SourceCreated"`
	SourceModified   string `json:"SourceModified"`
	SourceAccessed   string `json:"SourceAccessed"`
	AppID            string `json:"AppId"`
	AppIDDescription string `json:"AppIdDescription"`
}

// ShortcutFields are derived from an embedded shortcut. They are all empty
// when the entry has no shortcut.
type ShortcutFields struct {
	TargetCreated           string `json:"TargetCreated"`
	TargetModified          string `json:"TargetModified"`
	TargetAccessed          string `json:"TargetAccessed"`
	FileSize                string `json:"FileSize"`
	RelativePath            string `json:"RelativePath"`
	WorkingDirectory        string `json:"WorkingDirectory"`
	FileAttributes          string `json:"FileAttributes"`
	HeaderFlags             string `json:"HeaderFlags"`
	DriveType               string `json:"DriveType"`
	VolumeSerialNumber      string `json:"VolumeSerialNumber"`
	VolumeLabel             string `json:"VolumeLabel"`
	LocalPath               string `json:"LocalPath"`
	CommonPath              string `json:"CommonPath"`
	TargetIDAbsolutePath    string `json:"TargetIDAbsolutePath"`
	TargetMFTEntryNumber    string `json:"TargetMFTEntryNumber"`
	TargetMFTSequenceNumber string `json:"TargetMFTSequenceNumber"`
	MachineID               string `json:"MachineID"`
	MachineMACAddress       string `json:"MachineMACAddress"`
	TrackerCreatedOn        string `json:"TrackerCreatedOn"`
	ExtraBlocksPresent      string `json:"ExtraBlocksPresent"`
	Arguments               string `json:"Arguments"`
}

// AutomaticRecord is one row derived from an automatic destinations container.
type AutomaticRecord struct {
	SourceFields
	DestListVersion     string `json:"DestListVersion"`
	LastUsedEntryNumber string `json:"LastUsedEntryNumber"`
	MRU                 string `json:"MRU"`
	EntryNumber         string `json:"EntryNumber"`
	CreationTime        string `json:"CreationTime"`
	LastModified        string `json:"LastModified"`
	Hostname            string `json:"Hostname"`
	MacAddress          string `json:"MacAddress"`
	Path                string `json:"Path"`
	InteractionCount    string `json:"InteractionCount"`
	PinStatus           string `json:"PinStatus"`
	FileBirthDroid      string `json:"FileBirthDroid"`
	FileDroid           string `json:"FileDroid"`
	VolumeBirthDroid    string `json:"VolumeBirthDroid"`
	VolumeDroid         string `json:"VolumeDroid"`
	ShortcutFields
	Notes string `json:"Notes"`
}

// CustomRecord is one row derived from a custom destinations container.
type CustomRecord struct {
	SourceFields
	EntryName string `json:"EntryName"`
	ShortcutFields
}

type column struct {
	name  string
	value *string
}

func (s *SourceFields) columns() []column {
	return []column{
		{"SourceFile", &s.SourceFile},
		{"SourceCreated", &s.SourceCreated},
		{"SourceModified", &s.SourceModified},
		{"SourceAccessed", &s.SourceAccessed},
		{"AppId", &s.AppID},
		{"AppIdDescription", &s.AppIDDescription},
	}
}

func (s *ShortcutFields) columns() []column {
	return []column{
		{"TargetCreated", &s.TargetCreated},
		{"TargetModified", &s.TargetModified},
		{"TargetAccessed", &s.TargetAccessed},
		{"FileSize", &s.FileSize},
		{"RelativePath", &s.RelativePath},
		{"WorkingDirectory", &s.WorkingDirectory},
		{"FileAttributes", &s.FileAttributes},
		{"HeaderFlags", &s.HeaderFlags},
		{"DriveType", &s.DriveType},
		{"VolumeSerialNumber", &s.VolumeSerialNumber},
		{"VolumeLabel", &s.VolumeLabel},
		{"LocalPath", &s.LocalPath},
		{"CommonPath", &s.CommonPath},
		{"TargetIDAbsolutePath", &s.TargetIDAbsolutePath},
		{"TargetMFTEntryNumber", &s.TargetMFTEntryNumber},
		{"TargetMFTSequenceNumber", &s.TargetMFTSequenceNumber},
		{"MachineID", &s.MachineID},
		{"MachineMACAddress", &s.MachineMACAddress},
		{"TrackerCreatedOn", &s.TrackerCreatedOn},
		{"ExtraBlocksPresent", &s.ExtraBlocksPresent},
		{"Arguments", &s.Arguments},
	}
}

func (r *AutomaticRecord) columns() []column {
	cols := r.SourceFields.columns()
	cols = append(cols,
		column{"DestListVersion", &r.DestListVersion},
		column{"LastUsedEntryNumber", &r.LastUsedEntryNumber},
		column{"MRU", &r.MRU},
		column{"EntryNumber", &r.EntryNumber},
		column{"CreationTime", &r.CreationTime},
		column{"LastModified", &r.LastModified},
		column{"Hostname", &r.Hostname},
		column{"MacAddress", &r.MacAddress},
		column{"Path", &r.Path},
		column{"InteractionCount", &r.InteractionCount},
		column{"PinStatus", &r.PinStatus},
		column{"FileBirthDroid", &r.FileBirthDroid},
		column{"FileDroid", &r.FileDroid},
		column{"VolumeBirthDroid", &r.VolumeBirthDroid},
		column{"VolumeDroid", &r.VolumeDroid},
	)
	cols = append(cols, r.ShortcutFields.columns()...)
	return append(cols, column{"Notes", &r.Notes})
}

func (r *CustomRecord) columns() []column {
	cols := r.SourceFields.columns()
	cols = append(cols, column{"EntryName", &r.EntryName})
	return append(cols, r.ShortcutFields.columns()...)
}

// Fields returns the record's values in column order.
func (r AutomaticRecord) Fields() []Field {
	return toFields(r.columns())
}

// Fields returns the record's values in column order.
func (r CustomRecord) Fields() []Field {
	return toFields(r.columns())
}

// Sanitize passes every value of the record through clean.
func (r *AutomaticRecord) Sanitize(clean func(string) string) {
	sanitize(r.columns(), clean)
}

// Sanitize passes every value of the record through clean.
func (r *CustomRecord) Sanitize(clean func(string) string) {
	sanitize(r.columns(), clean)
}

// Columns returns the fixed column set for a container kind.
func Columns(kind Kind) []string {
	var cols []column
	if kind == KindAutomatic {
		cols = (&AutomaticRecord{}).columns()
	} else {
		cols = (&CustomRecord{}).columns()
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names
}

func toFields(cols []column) []Field {
	fields := make([]Field, len(cols))
	for i, c := range cols {
		fields[i] = Field{Name: c.name, Value: *c.value}
	}
	return fields
}

func sanitize(cols []column, clean func(string) string) {
	for _, c := range cols {
		*c.value = clean(*c.value)
	}
}

// ContainerHeader holds the container-level values shared by every record of
// one container, formatted exactly as in the records.
type ContainerHeader struct {
	Kind Kind `json:"Kind"`
	SourceFields
	DestListVersion     string `json:"DestListVersion,omitempty"`
	LastUsedEntryNumber string `json:"LastUsedEntryNumber,omitempty"`
}

// Fields returns the header values in column order. Automatic headers carry
// the DestList version and last used entry number after the source fields.
func (h ContainerHeader) Fields() []Field {
	cols := h.SourceFields.columns()
	if h.Kind == KindAutomatic {
		cols = append(cols,
			column{"DestListVersion", &h.DestListVersion},
			column{"LastUsedEntryNumber", &h.LastUsedEntryNumber},
		)
	}
	return toFields(cols)
}

// RecordSet is the canonical output of one container.
type RecordSet struct {
	Header  ContainerHeader
	Records []Record
}
