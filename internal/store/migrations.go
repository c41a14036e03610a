package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the three event tables and their time indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS mood_entries (
			id         TEXT PRIMARY KEY,
			timestamp  TEXT NOT NULL,
			mood_level REAL NOT NULL,
			emotions   TEXT,
			notes      TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS activity_entries (
			id               TEXT PRIMARY KEY,
			timestamp        TEXT NOT NULL,
			activity_type    TEXT NOT NULL,
			duration_minutes INTEGER,
			intensity        INTEGER,
			notes            TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS sleep_entries (
			id             TEXT PRIMARY KEY,
			timestamp      TEXT NOT NULL,
			duration_hours REAL NOT NULL,
			quality        REAL,
			start_time     TEXT,
			end_time       TEXT,
			notes          TEXT
		)`,

		// Every engine query filters on the timestamp column.
		`CREATE INDEX IF NOT EXISTS idx_mood_timestamp ON mood_entries(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_timestamp ON activity_entries(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_type ON activity_entries(activity_type)`,
		`CREATE INDEX IF NOT EXISTS idx_sleep_timestamp ON sleep_entries(timestamp)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
