// Package database manages the optional SQLite record store.
//
// Connect opens the database file through GORM with a silent logger and a
// single-writer pool. GetTableColumns reads a table's schema back, which the
// exporter tests use to check the migrated record tables.
package database
