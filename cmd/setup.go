package cmd

import (
	"fmt"

	"jumplist-exporter/core/config"
	"jumplist-exporter/core/logger"
	"jumplist-exporter/feature/jumplist/lookup"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// environment bundles what every command needs before it touches a container.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	tables *lookup.Tables
	fs     afero.Fs
}

// setup loads configuration, builds the logger and loads the lookup tables
// merged with the configured user files. appIDsFile overrides the configured
// AppID file when set.
func setup(debug bool, appIDsFile string) (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if debug {
		cfg.Log.Level = "debug"
	}
	if appIDsFile != "" {
		cfg.Lookup.AppIDsFile = appIDsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	tables, err := lookup.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load lookup tables: %w", err)
	}

	env := &environment{cfg: cfg, logger: l, tables: tables, fs: afero.NewOsFs()}

	if path := cfg.Lookup.AppIDsFile; path != "" {
		n, err := tables.AppIDs.LoadFile(env.fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load AppIDs from %s: %w", path, err)
		}
		l.Info(fmt.Sprintf("Loaded %d new AppIds", n), zap.String("file", path))
	}
	if path := cfg.Lookup.VendorsFile; path != "" {
		n, err := tables.Vendors.LoadFile(env.fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load vendors from %s: %w", path, err)
		}
		l.Info(fmt.Sprintf("Loaded %d vendors", n), zap.String("file", path))
	}

	return env, nil
}
