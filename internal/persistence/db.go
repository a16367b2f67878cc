// Package persistence provides the SQLite side table for planted-season
// tags, used when the host's annotation maps should not carry them.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection for the tag side table.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS season_tags (
		crop_id TEXT PRIMARY KEY,
		season TEXT NOT NULL
	);`
	_, err := db.conn.Exec(schema)
	return err
}

// TagCrop records a planted season for a crop. The first write wins; later
// calls for the same crop are ignored.
func (db *DB) TagCrop(cropID, season string) error {
	_, err := db.conn.Exec(
		`INSERT INTO season_tags (crop_id, season) VALUES (?, ?)
		 ON CONFLICT(crop_id) DO NOTHING`,
		cropID, season,
	)
	if err != nil {
		return fmt.Errorf("tag crop %s: %w", cropID, err)
	}
	return nil
}

// PlantedSeason returns the recorded season for a crop, if any.
func (db *DB) PlantedSeason(cropID string) (string, bool, error) {
	var season string
	err := db.conn.Get(&season, `SELECT season FROM season_tags WHERE crop_id = ?`, cropID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load tag %s: %w", cropID, err)
	}
	return season, true, nil
}
