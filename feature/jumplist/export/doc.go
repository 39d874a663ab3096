// Package export renders canonical jump list records into output sinks.
//
// The Exporter drives every active sink through one pass per container kind:
// Begin, one Write per container, Close. Sinks receive records whose values
// are already formatted, so a field holds the same string in each of them.
//
// Sinks:
//
//   - CSV: one file per kind with a fixed header row.
//   - JSON: one document per container.
//   - XHTML: one aggregated document per kind plus its stylesheets.
//   - SQLite: one table per kind, rows stamped with the run id.
//
// A sink that fails is disabled for the rest of the run. The others continue.
package export
