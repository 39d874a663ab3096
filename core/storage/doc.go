// Package storage provides an abstraction layer for the output tree written by
// the exporters.
//
// It wraps an afero filesystem so that every sink writes through the same small
// interface. Production code uses the operating system filesystem while tests
// run against an in-memory one.
//
// # Client Interface
//
// The Client interface abstracts the filesystem, making it easy to inject
// failures in unit tests (as seen in core/storage/mocks).
//
// # Operations
//
//   - EnsureDir: creates an output directory and reports whether it was missing.
//   - Create: opens a file for streaming output (CSV, XHTML).
//   - WriteFile: writes a complete document (JSON, stylesheets, dumped shortcuts).
//
// # Usage
//
//	client := storage.NewClient(afero.NewOsFs())
//	created, err := client.EnsureDir(csvDir)
package storage
