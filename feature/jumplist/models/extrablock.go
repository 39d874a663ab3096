package models

import "time"

// ExtraBlockKind is the type name of a shortcut extra data block.
type ExtraBlockKind string

const (
	BlockConsole             ExtraBlockKind = "ConsoleDataBlock"
	BlockConsoleFE           ExtraBlockKind = "ConsoleFEDataBlock"
	BlockDarwin              ExtraBlockKind = "DarwinDataBlock"
	BlockEnvironmentVariable ExtraBlockKind = "EnvironmentVariableDataBlock"
	BlockIconEnvironment     ExtraBlockKind = "IconEnvironmentDataBlock"
	BlockKnownFolder         ExtraBlockKind = "KnownFolderDataBlock"
	BlockPropertyStore       ExtraBlockKind = "PropertyStoreDataBlock"
	BlockShim                ExtraBlockKind = "ShimDataBlock"
	BlockSpecialFolder       ExtraBlockKind = "SpecialFolderDataBlock"
	BlockTracker             ExtraBlockKind = "TrackerDataBaseBlock"
	BlockVistaIDList         ExtraBlockKind = "VistaAndAboveIdListDataBlock"
)

// ExtraDataBlock is one entry of a shortcut's extra data section. Kind selects
// which payload is populated; unknown kinds keep only Kind and Raw.
type ExtraDataBlock struct {
	Kind ExtraBlockKind `json:"kind"`

	Console             *ConsoleData             `json:"console,omitempty"`
	ConsoleFE           *ConsoleFEData           `json:"console_fe,omitempty"`
	Darwin              *DarwinData              `json:"darwin,omitempty"`
	EnvironmentVariable *EnvironmentVariableData `json:"environment_variable,omitempty"`
	IconEnvironment     *IconEnvironmentData     `json:"icon_environment,omitempty"`
	KnownFolder         *KnownFolderData         `json:"known_folder,omitempty"`
	PropertyStore       *PropertyStore           `json:"property_store,omitempty"`
	Shim                *ShimData                `json:"shim,omitempty"`
	SpecialFolder       *SpecialFolderData       `json:"special_folder,omitempty"`
	Tracker             *TrackerData             `json:"tracker,omitempty"`
	VistaIDList         []ShellItem              `json:"vista_id_list,omitempty"`

	Raw string `json:"raw,omitempty"`
}

// ConsoleData holds console window settings.
type ConsoleData struct {
	FillAttributes           string `json:"fill_attributes"`
	PopupFillAttributes      string `json:"popup_fill_attributes"`
	BufferSizeX              int    `json:"buffer_size_x"`
	BufferSizeY              int    `json:"buffer_size_y"`
	WindowSizeX              int    `json:"window_size_x"`
	WindowSizeY              int    `json:"window_size_y"`
	WindowOriginX            int    `json:"window_origin_x"`
	WindowOriginY            int    `json:"window_origin_y"`
	FontSize                 int    `json:"font_size"`
	IsBold                   bool   `json:"is_bold"`
	FaceName                 string `json:"face_name"`
	CursorSize               int    `json:"cursor_size"`
	IsFullScreen             bool   `json:"is_full_screen"`
	IsQuickEdit              bool   `json:"is_quick_edit"`
	IsInsertMode             bool   `json:"is_insert_mode"`
	IsAutoPositioned         bool   `json:"is_auto_positioned"`
	HistoryBufferSize        int    `json:"history_buffer_size"`
	HistoryBufferCount       int    `json:"history_buffer_count"`
	HistoryDuplicatesAllowed bool   `json:"history_duplicates_allowed"`
}

// ConsoleFEData holds the console code page.
type ConsoleFEData struct {
	CodePage int `json:"code_page"`
}

// DarwinData holds an application identifier.
type DarwinData struct {
	ApplicationIdentifier string `json:"application_identifier"`
}

// EnvironmentVariableData holds an environment-relative target path.
type EnvironmentVariableData struct {
	Value string `json:"value"`
}

// IconEnvironmentData holds an environment-relative icon path.
type IconEnvironmentData struct {
	IconPath string `json:"icon_path"`
}

// KnownFolderData identifies a known folder.
type KnownFolderData struct {
	KnownFolderID   string `json:"known_folder_id"`
	KnownFolderName string `json:"known_folder_name"`
}

// ShimData holds the shim layer name.
type ShimData struct {
	LayerName string `json:"layer_name"`
}

// SpecialFolderData identifies a special folder.
type SpecialFolderData struct {
	SpecialFolderID int `json:"special_folder_id"`
}

// TrackerData is the distributed link tracking block.
type TrackerData struct {
	MachineID        string    `json:"machine_id"`
	MacAddress       string    `json:"mac_address"`
	CreationTime     time.Time `json:"creation_time"`
	VolumeDroid      GUID      `json:"volume_droid"`
	VolumeDroidBirth GUID      `json:"volume_droid_birth"`
	FileDroid        GUID      `json:"file_droid"`
	FileDroidBirth   GUID      `json:"file_droid_birth"`
}
