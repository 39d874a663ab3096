// Package jumplist drives a batch run over jump list containers.
//
// A run has three phases:
//
//   - Collect resolves the input file or directory into an ordered list of
//     container paths. A missing input aborts the run before any work.
//   - Process classifies each container by its signature, loads the decoded
//     document, narrates it and keeps it for export. Failures are recorded
//     per file and never stop the batch.
//   - Records turns the kept containers into canonical record sets, one
//     slice per container kind, ready for the exporter.
//
// Failures fall into three kinds: access (permission denied), malformed
// (anything the loader rejects) and benign (an empty custom destinations
// file). Only the first two count as failed files.
package jumplist
