// Package decoded loads containers produced by the external jump list
// parsers. For every container the parsers write a JSON document named after
// it with a ".json" suffix, holding the decoded DestList, directory listing,
// custom entries and embedded shortcuts.
package decoded
