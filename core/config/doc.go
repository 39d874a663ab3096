// Package config provides configuration management for the jump list exporter.
//
// Values come from struct tag defaults, an optional .env file and
// JUMPLIST_ prefixed environment variables, in increasing priority.
// Command-line flags are applied on top by the cmd package.
//
// # Configuration Structure
//
//   - Log: level, format and the optional rotating log file
//   - Database: SQLite sink path and insert batch size
//   - Export: default date format and JSON indentation
//   - Lookup: user AppID and MAC vendor files
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Export.DateFormat)
package config
