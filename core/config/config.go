package config

import (
	"reflect"
	"strings"

	"jumplist-exporter/core/database"
	"jumplist-exporter/core/logger"
	"jumplist-exporter/core/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable (JUMPLIST_LOG_LEVEL).
const EnvPrefix = "JUMPLIST"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the SQLite sink.
	Database database.Config `mapstructure:"database"`
	// Export holds defaults for the output sinks.
	Export ExportConfig `mapstructure:"export"`
	// Lookup holds optional user lookup files.
	Lookup LookupConfig `mapstructure:"lookup"`
}

// ExportConfig holds output defaults that flags may override.
type ExportConfig struct {
	// DateFormat is the .NET style timestamp format used by every sink.
	DateFormat string `mapstructure:"date_format" default:"yyyy-MM-dd HH:mm:ss"`
	// Pretty indents JSON documents.
	Pretty bool `mapstructure:"pretty" default:"false"`
}

// LookupConfig points at user files merged over the embedded tables.
type LookupConfig struct {
	// AppIDsFile holds "id|description" lines.
	AppIDsFile string `mapstructure:"appids_file" default:""`
	// VendorsFile holds "oui|vendor" lines.
	VendorsFile string `mapstructure:"vendors_file" default:""`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (JUMPLIST_LOG_LEVEL -> log.level)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	return validation.Errors{
		"log":      validateLog(&c.Log),
		"database": validateDatabase(&c.Database),
		"export":   c.Export.Validate(),
	}.Filter()
}

// Validate checks the export configuration.
func (c *ExportConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DateFormat, validation.Required, validation.By(func(value interface{}) error {
			_, err := utils.GoLayout(value.(string))
			return err
		})),
	)
}

func validateLog(c *logger.Config) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Format, validation.In("console", "json")),
		validation.Field(&c.MaxSizeMB, validation.Min(1)),
		validation.Field(&c.MaxBackups, validation.Min(0)),
	)
}

func validateDatabase(c *database.Config) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BatchSize, validation.Required, validation.Min(1)),
	)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
