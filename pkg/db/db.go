// Package db is the durable store for scraped records and session
// statistics. Both tables are append-only: rows are never updated or deleted
// once written.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "scraper_data.db"

type DB struct {
	*sql.DB
	path string
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The schema must stay correct under future concurrent writers; a single
	// connection serializes all writes through database/sql.
	sqlDB.SetMaxOpenConns(1)

	return sqlDB, nil
}

// Open opens or creates the SQLite database at path and makes sure the
// schema exists.
func Open(path string) (*DB, error) {
	if path == "" {
		path = DefaultDBName
	}

	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	db := &DB{
		DB:   sqlDB,
		path: path,
	}

	if err := db.ensureSchemaExists(); err != nil {
		_ = db.Close() // Close error less important than schema error
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// ensureSchemaExists checks if the schema exists and initializes it if not
func (db *DB) ensureSchemaExists() error {
	var tableName string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='scraped_data'").Scan(&tableName)

	if err == sql.ErrNoRows {
		return db.InitSchema()
	}

	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}

	return nil
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// InitSchema initializes the database schema
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}
