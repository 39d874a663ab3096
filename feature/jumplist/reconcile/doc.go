// Package reconcile merges the data sources of a jump list container into
// canonical records.
//
// For an automatic container every DestList entry yields one record that
// combines the entry, its embedded shortcut and the container identity.
// CheckConsistency compares the DestList count with the compound file
// listing, and with the orphan pass enabled, directory streams that the
// DestList does not mention are turned into extra records marked with
// OrphanNote. The DestList/listing comparison itself is delegated to the
// generic engine in core/reconcile through Adapter.
//
// For a custom container every shortcut of every entry yields one record.
//
// All value formatting happens in Builder so every exporter receives the same
// strings.
package reconcile
