// Package extract holds the field extraction rules shared by the record
// builder and the console narrator.
//
// # Timestamps
//
// Decoded timestamps use fixed years to mean "no value": 1601 for shortcut
// headers and FILETIME fields, 1582 for DestList and tracker values. Normalize
// collapses them (and the zero time) to absent, which renders as an empty
// string.
//
// # Paths
//
// AbsolutePath joins a shell item chain into a backslash separated path and
// falls back to the link info paths when the chain resolves to nothing.
//
// # Extra blocks
//
// Tracker, MFT and Inventory read the extra data blocks of a shortcut and the
// extension blocks of its last shell item.
package extract
