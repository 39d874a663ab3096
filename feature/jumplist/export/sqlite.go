package export

import (
	"fmt"
	"strings"

	"jumplist-exporter/core/database"
	"jumplist-exporter/feature/jumplist/models"

	"gorm.io/gorm"
)

// AutomaticRow is a stored automatic destinations record.
type AutomaticRow struct {
	ID    uint   `gorm:"primaryKey"`
	RunID string `gorm:"size:36;index"`
	models.AutomaticRecord
}

// TableName overrides the table name used by AutomaticRow to `automatic_destinations`
func (AutomaticRow) TableName() string {
	return "automatic_destinations"
}

// CustomRow is a stored custom destinations record.
type CustomRow struct {
	ID    uint   `gorm:"primaryKey"`
	RunID string `gorm:"size:36;index"`
	models.CustomRecord
}

// TableName overrides the table name used by CustomRow to `custom_destinations`
func (CustomRow) TableName() string {
	return "custom_destinations"
}

// SQLiteSink stores records in one table per kind.
type SQLiteSink struct {
	db        *gorm.DB
	runID     string
	batchSize int
	kind      models.Kind
}

// NewSQLiteSink creates a sink over an open database. The caller owns db.
func NewSQLiteSink(db *gorm.DB, runID string, batchSize int) *SQLiteSink {
	if batchSize <= 0 {
		batchSize = 200
	}
	return &SQLiteSink{db: db, runID: runID, batchSize: batchSize}
}

func (s *SQLiteSink) Name() string {
	return "sqlite"
}

func (s *SQLiteSink) Begin(kind models.Kind) error {
	s.kind = kind

	var model interface{} = &CustomRow{}
	if kind == models.KindAutomatic {
		model = &AutomaticRow{}
	}
	if err := s.db.AutoMigrate(model); err != nil {
		return fmt.Errorf("failed to migrate %s table: %w", kindLabel(kind), err)
	}
	return s.checkColumns(model)
}

// checkColumns verifies that the migrated table holds a column for every
// field of the row model.
func (s *SQLiteSink) checkColumns(model interface{}) error {
	stmt := &gorm.Statement{DB: s.db}
	if err := stmt.Parse(model); err != nil {
		return fmt.Errorf("failed to parse row model: %w", err)
	}

	cols, err := database.GetTableColumns(s.db, stmt.Schema.Table)
	if err != nil {
		return err
	}
	present := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		present[c.Field] = struct{}{}
	}

	var missing []string
	for _, field := range stmt.Schema.Fields {
		if field.DBName == "" {
			continue
		}
		if _, ok := present[strings.ToLower(field.DBName)]; !ok {
			missing = append(missing, field.DBName)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns: %s", stmt.Schema.Table, strings.Join(missing, ", "))
	}
	return nil
}

func (s *SQLiteSink) Write(set models.RecordSet) error {
	if len(set.Records) == 0 {
		return nil
	}

	var err error
	switch s.kind {
	case models.KindAutomatic:
		rows := make([]AutomaticRow, 0, len(set.Records))
		for _, rec := range set.Records {
			r, ok := rec.(models.AutomaticRecord)
			if !ok {
				return fmt.Errorf("unexpected record type %T for %s", rec, s.kind)
			}
			rows = append(rows, AutomaticRow{RunID: s.runID, AutomaticRecord: r})
		}
		err = s.db.CreateInBatches(rows, s.batchSize).Error
	default:
		rows := make([]CustomRow, 0, len(set.Records))
		for _, rec := range set.Records {
			r, ok := rec.(models.CustomRecord)
			if !ok {
				return fmt.Errorf("unexpected record type %T for %s", rec, s.kind)
			}
			rows = append(rows, CustomRow{RunID: s.runID, CustomRecord: r})
		}
		err = s.db.CreateInBatches(rows, s.batchSize).Error
	}

	if err != nil {
		return fmt.Errorf("failed to insert records of %s: %w", set.Header.SourceFile, err)
	}
	return nil
}

func (s *SQLiteSink) Close() error {
	return nil
}
