package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the SQLite sighting log.
type DB struct {
	db *sql.DB
}

// New creates and initializes a new database connection
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Optimize SQLite for Raspberry Pi performance
	if err := optimizeSQLite(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to optimize database: %w", err)
	}

	database := &DB{db: db}

	if err := database.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// optimizeSQLite applies performance optimizations for Raspberry Pi
func optimizeSQLite(db *sql.DB) error {
	// Enable WAL mode for better concurrency (allows concurrent reads)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Use NORMAL synchronous mode (faster than FULL, safer than OFF)
	// WAL mode makes this safer since writes go to WAL first
	if _, err := db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		return fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	// Set busy timeout to handle concurrent access better
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

// SightingRepository returns the repository for the sighting log.
func (d *DB) SightingRepository() SightingRepository {
	return &sightingRepository{db: d.db}
}

// initSchema creates the database schema if it doesn't exist
func (d *DB) initSchema() error {
	schema := `CREATE TABLE IF NOT EXISTS sightings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		icao24 TEXT NOT NULL,
		callsign TEXT,
		flight_number TEXT,
		registration TEXT,
		aircraft_type TEXT,
		airline TEXT,
		origin TEXT,
		destination TEXT,
		altitude_ft INTEGER,
		ground_speed_kt INTEGER,
		heading_deg INTEGER,
		seen_at TIMESTAMP NOT NULL
	);`

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_sightings_icao24 ON sightings(icao24)`,
		`CREATE INDEX IF NOT EXISTS idx_sightings_seen_at ON sightings(seen_at)`,
	}

	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create sightings table: %w", err)
	}

	for _, idx := range indexes {
		if _, err := d.db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
