// Package models defines the decoded jump list structures consumed by the
// normalization engine and the canonical records it produces.
//
// Automatic and custom containers arrive fully decoded from the binary
// parsers. Shell items, extension blocks and extra data blocks are tagged
// variants: a Kind string selects the populated payload, and kinds this
// package does not know keep their tag and raw rendering so callers can
// report them instead of failing.
//
// AutomaticRecord and CustomRecord are string-only rows. Their column order
// is fixed and shared by every exporter through Fields and Columns.
package models
