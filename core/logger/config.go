package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum enabled level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding of the primary output (console, json).
	Format string `mapstructure:"format" default:"console"`
	// File is an optional path that receives a JSON copy of every entry.
	File string `mapstructure:"file" default:""`
	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `mapstructure:"max_size_mb" default:"50"`
	// MaxBackups is the number of rotated files to retain.
	MaxBackups int `mapstructure:"max_backups" default:"3"`
	// Compress gzips rotated files.
	Compress bool `mapstructure:"compress" default:"false"`
}
