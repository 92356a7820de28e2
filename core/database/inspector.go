package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo is one column of an inspected table. Field and Type are
// lowercased so sqlite and mysql reports compare equal.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

// sqliteColumn is a row of PRAGMA table_info.
type sqliteColumn struct {
	Cid        int
	Name       string
	Type       string
	Notnull    int
	DefaultVal *string
	Pk         int
}

// GetTableColumns lists the columns of table, e.g. mood_entries for the
// schema check. A missing sqlite table yields no columns; a missing mysql
// table is an error.
func GetTableColumns(db *gorm.DB, table string) ([]ColumnInfo, error) {
	if db.Dialector.Name() == DriverSQLite {
		return sqliteColumns(db, table)
	}

	var columns []ColumnInfo
	if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", table)).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", table, err)
	}
	for i := range columns {
		columns[i].Field = strings.ToLower(columns[i].Field)
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}

func sqliteColumns(db *gorm.DB, table string) ([]ColumnInfo, error) {
	var rows []sqliteColumn
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", table)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", table, err)
	}

	columns := make([]ColumnInfo, 0, len(rows))
	for _, r := range rows {
		col := ColumnInfo{
			Field:   strings.ToLower(r.Name),
			Type:    strings.ToLower(r.Type),
			Default: r.DefaultVal,
			Null:    "YES",
		}
		if r.Notnull == 1 {
			col.Null = "NO"
		}
		if r.Pk > 0 {
			col.Key = "PRI"
		}
		columns = append(columns, col)
	}
	return columns, nil
}
