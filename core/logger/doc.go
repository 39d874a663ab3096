// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that switches between a development
// profile (debug level, human timestamps) and a production profile.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (coloured levels, no stack traces) or json
//   - File: an optional rotating JSON log written through lumberjack
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Processing container", zap.String("file", path))
package logger
