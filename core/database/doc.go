// Package database handles database connections and schema inspection.
//
// It wraps GORM and configures either a MySQL connection pool or a single
// connection SQLite database (the default, stored in moodbank.db) from the
// application's configuration.
//
// # Connect
//
// Connect opens the database and pings it within the configured timeout.
// Callers own the returned handle and release it with Close.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns (SHOW COLUMNS on MySQL, PRAGMA
// table_info on SQLite). The integrity feature uses it to verify that the
// mood_entries table matches the model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "mood_entries")
package database
