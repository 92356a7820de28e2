package checks

import (
	"fmt"

	"moodbank/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing a table against its expected columns.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	Errors         []string `json:"errors"`
}

// CheckSchema verifies that table has every column in columns.
func CheckSchema(db *gorm.DB, table string, columns []string) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Table:          table,
		Matched:        true,
		MissingColumns: []string{},
		Errors:         []string{},
	}

	actual, err := database.GetTableColumns(db, table)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
		report.Matched = false
		return report, nil
	}

	present := make(map[string]struct{}, len(actual))
	for _, col := range actual {
		present[col.Field] = struct{}{}
	}
	for _, col := range columns {
		if _, ok := present[col]; !ok {
			report.MissingColumns = append(report.MissingColumns, col)
			report.Matched = false
		}
	}
	return report, nil
}
