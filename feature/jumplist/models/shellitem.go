package models

import "time"

// ShellItemKind is the type tag of a shell item. Tags not listed below are
// still carried through verbatim and handled as unknown.
type ShellItemKind string

const (
	ShellItemUsersPropertyView ShellItemKind = "0x00"
	ShellItemControlPanelCat   ShellItemKind = "0x01"
	ShellItemRootFolder        ShellItemKind = "0x1F"
	ShellItemUsersFilesFolder  ShellItemKind = "0x2E"
	ShellItemDrive             ShellItemKind = "0x2F"
	ShellItemDirectory         ShellItemKind = "0x31"
	ShellItemFile              ShellItemKind = "0x32"
	ShellItemUnicodeFile       ShellItemKind = "0x36"
	ShellItemNetworkLocation   ShellItemKind = "0x40"
	ShellItemURI               ShellItemKind = "0x61"
	ShellItemControlPanel      ShellItemKind = "0x71"
	ShellItemDelegate          ShellItemKind = "0x74"
	ShellItemNetworkShare      ShellItemKind = "0xC3"
	ShellItemZipContents       ShellItemKind = "ZipContents"
)

// ShellItem is one element of a shortcut's target ID list.
type ShellItem struct {
	Kind            ShellItemKind    `json:"kind"`
	FriendlyName    string           `json:"friendly_name"`
	Value           string           `json:"value"`
	ShortName       string           `json:"short_name,omitempty"`
	DriveLetter     string           `json:"drive_letter,omitempty"`
	Modified        *time.Time       `json:"modified,omitempty"`
	PropertyStore   *PropertyStore   `json:"property_store,omitempty"`
	ExtensionBlocks []ExtensionBlock `json:"extension_blocks,omitempty"`
	Raw             string           `json:"raw,omitempty"`
}

// ExtensionKind is the signature of a shell item extension block.
type ExtensionKind string

const (
	// ExtensionFileEntry carries long names, timestamps and the MFT reference.
	ExtensionFileEntry ExtensionKind = "Beef0004"
	ExtensionGUID      ExtensionKind = "Beef0003"
	ExtensionDocType   ExtensionKind = "Beef001a"
	ExtensionFileTimes ExtensionKind = "Beef0025"
)

// ExtensionBlock is an extension block attached to a shell item.
type ExtensionBlock struct {
	Kind             ExtensionKind `json:"kind"`
	LongName         string        `json:"long_name,omitempty"`
	LocalizedName    string        `json:"localized_name,omitempty"`
	CreatedOn        *time.Time    `json:"created_on,omitempty"`
	LastAccessed     *time.Time    `json:"last_accessed,omitempty"`
	MFT              *MFTReference `json:"mft,omitempty"`
	FileTime1        *time.Time    `json:"file_time1,omitempty"`
	FileTime2        *time.Time    `json:"file_time2,omitempty"`
	GUID             string        `json:"guid,omitempty"`
	GUIDFolder       string        `json:"guid_folder,omitempty"`
	FileDocumentType string        `json:"file_document_type,omitempty"`
	Raw              string        `json:"raw,omitempty"`
}

// MFTReference is an NTFS file reference. Either half may be missing.
type MFTReference struct {
	EntryNumber    *uint64 `json:"entry_number,omitempty"`
	SequenceNumber *uint16 `json:"sequence_number,omitempty"`
}
