package database

// Config holds configuration for the record database.
type Config struct {
	// Path is the SQLite database file. Empty disables the database sink.
	Path string `mapstructure:"path" default:""`
	// BatchSize is the number of rows inserted per statement.
	BatchSize int `mapstructure:"batch_size" default:"200"`
}
