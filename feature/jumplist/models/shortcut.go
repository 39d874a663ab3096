package models

import (
	"fmt"
	"strings"
	"time"
)

// Shortcut is a fully decoded shell link (LNK) structure.
type Shortcut struct {
	Header           Header            `json:"header"`
	Name             string            `json:"name"`
	RelativePath     string            `json:"relative_path"`
	WorkingDirectory string            `json:"working_directory"`
	Arguments        string            `json:"arguments"`
	IconLocation     string            `json:"icon_location"`
	LocationFlags    string            `json:"location_flags"`
	LocalPath        string            `json:"local_path"`
	CommonPath       string            `json:"common_path"`
	VolumeInfo       *VolumeInfo       `json:"volume_info,omitempty"`
	NetworkShareInfo *NetworkShareInfo `json:"network_share_info,omitempty"`
	// TargetIDs is nil when the link carries no ID list at all, and empty when
	// the list is present but holds no items.
	TargetIDs   []ShellItem      `json:"target_ids"`
	ExtraBlocks []ExtraDataBlock `json:"extra_blocks"`
	Raw         []byte           `json:"raw,omitempty"`
}

// Header is the fixed-size shell link header.
type Header struct {
	TargetCreated  time.Time      `json:"target_created"`
	TargetModified time.Time      `json:"target_modified"`
	TargetAccessed time.Time      `json:"target_accessed"`
	FileSize       uint32         `json:"file_size"`
	DataFlags      DataFlags      `json:"data_flags"`
	FileAttributes FileAttributes `json:"file_attributes"`
	HotKey         string         `json:"hot_key"`
	IconIndex      int32          `json:"icon_index"`
	ShowWindow     string         `json:"show_window"`
}

// VolumeInfo describes the volume the target lived on.
type VolumeInfo struct {
	DriveType    DriveType `json:"drive_type"`
	SerialNumber string    `json:"serial_number"`
	Label        string    `json:"label"`
}

// NetworkShareInfo describes the share the target lived on.
type NetworkShareInfo struct {
	ShareName    string `json:"share_name"`
	DeviceName   string `json:"device_name"`
	ProviderType string `json:"provider_type"`
	ShareFlags   string `json:"share_flags"`
}

// DataFlags is the LinkFlags bit set of the header.
type DataFlags uint32

const (
	HasTargetIDList DataFlags = 1 << iota
	HasLinkInfo
	HasName
	HasRelativePath
	HasWorkingDir
	HasArguments
	HasIconLocation
	IsUnicode
	ForceNoLinkInfo
	HasExpString
	RunInSeparateProcess
	Unused1
	HasDarwinID
	RunAsUser
	HasExpIcon
	NoPidlAlias
	Unused2
	RunWithShimLayer
	ForceNoLinkTrack
	EnableTargetMetadata
	DisableLinkPathTracking
	DisableKnownFolderTracking
	DisableKnownFolderAlias
	AllowLinkToLink
	UnaliasOnSave
	PreferEnvironmentPath
	KeepLocalIDListForUncTarget
)

var dataFlagNames = []string{
	"HasTargetIdList", "HasLinkInfo", "HasName", "HasRelativePath", "HasWorkingDir",
	"HasArguments", "HasIconLocation", "IsUnicode", "ForceNoLinkInfo", "HasExpString",
	"RunInSeparateProcess", "Unused1", "HasDarwinId", "RunAsUser", "HasExpIcon",
	"NoPidlAlias", "Unused2", "RunWithShimLayer", "ForceNoLinkTrack", "EnableTargetMetadata",
	"DisableLinkPathTracking", "DisableKnownFolderTracking", "DisableKnownFolderAlias",
	"AllowLinkToLink", "UnaliasOnSave", "PreferEnvironmentPath", "KeepLocalIdListForUncTarget",
}

// Has reports whether every bit of flag is set.
func (f DataFlags) Has(flag DataFlags) bool {
	return f&flag == flag
}

// String lists the set flags by name, lowest bit first.
func (f DataFlags) String() string {
	return flagString(uint32(f), func(bit int) string {
		if bit < len(dataFlagNames) {
			return dataFlagNames[bit]
		}
		return ""
	})
}

// FileAttributes is the target's FILE_ATTRIBUTE_* bit set.
type FileAttributes uint32

var fileAttributeNames = map[int]string{
	0:  "FileAttributeReadonly",
	1:  "FileAttributeHidden",
	2:  "FileAttributeSystem",
	4:  "FileAttributeDirectory",
	5:  "FileAttributeArchive",
	6:  "FileAttributeDevice",
	7:  "FileAttributeNormal",
	8:  "FileAttributeTemporary",
	9:  "FileAttributeSparseFile",
	10: "FileAttributeReparsePoint",
	11: "FileAttributeCompressed",
	12: "FileAttributeOffline",
	13: "FileAttributeNotContentIndexed",
	14: "FileAttributeEncrypted",
	15: "FileAttributeIntegrityStream",
	17: "FileAttributeNoScrubData",
}

// String lists the set attributes by name, lowest bit first.
func (a FileAttributes) String() string {
	return flagString(uint32(a), func(bit int) string {
		return fileAttributeNames[bit]
	})
}

// flagString joins the names of set bits with ", ". Bits without a name are
// folded into a trailing hex remainder, and an empty set renders as "0".
func flagString(v uint32, name func(bit int) string) string {
	if v == 0 {
		return "0"
	}

	var parts []string
	var unnamed uint32
	for bit := 0; bit < 32; bit++ {
		mask := uint32(1) << bit
		if v&mask == 0 {
			continue
		}
		if n := name(bit); n != "" {
			parts = append(parts, n)
		} else {
			unnamed |= mask
		}
	}
	if unnamed != 0 {
		parts = append(parts, fmt.Sprintf("0x%X", unnamed))
	}
	return strings.Join(parts, ", ")
}

// DriveType is the volume drive type.
type DriveType int

const (
	DriveUnknown DriveType = iota
	DriveNoRootDir
	DriveRemovable
	DriveFixed
	DriveRemote
	DriveCDROM
	DriveRAMDisk
)

var driveTypeDescriptions = map[DriveType]string{
	DriveUnknown:   "Unknown",
	DriveNoRootDir: "No root directory",
	DriveRemovable: "Removable storage media (Floppy, USB)",
	DriveFixed:     "Fixed storage media (Hard drive)",
	DriveRemote:    "Remote storage",
	DriveCDROM:     "Optical disc (CD-ROM, DVD, BD)",
	DriveRAMDisk:   "RAM disk",
}

// String returns the human readable description of the drive type.
func (d DriveType) String() string {
	if s, ok := driveTypeDescriptions[d]; ok {
		return s
	}
	return "Unknown"
}
