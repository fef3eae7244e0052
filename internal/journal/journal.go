// Package journal provides a SQLite-backed log of performed renames, so a
// technician can recover what a standardized file used to be called.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/starford/dagaz/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS renames (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	old_path   TEXT NOT NULL,
	new_path   TEXT NOT NULL,
	vendor     TEXT NOT NULL,
	template   TEXT NOT NULL,
	primer     TEXT NOT NULL,
	date       TEXT NOT NULL,
	renamed_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_renames_new_path ON renames(new_path);
`

// Record is one journal row.
type Record struct {
	ID        int64
	OldPath   string
	NewPath   string
	Vendor    string
	Template  string
	Primer    string
	Date      string
	RenamedAt time.Time
}

// Journal defines the operations the application needs from the rename log.
// Consumers depend on this interface rather than the concrete *DB to make
// the wiring testable.
type Journal interface {
	Append(entry models.RenameEntry, newPath string) error
	Recent(limit int) ([]Record, error)
	Close() error
}

// Verify *DB satisfies Journal at compile time.
var _ Journal = (*DB)(nil)

// DB wraps a sql.DB with journal-specific operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the journal database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("journal: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("journal: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("journal: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Append records one performed rename.
func (db *DB) Append(entry models.RenameEntry, newPath string) error {
	_, err := db.conn.Exec(`
		INSERT INTO renames (old_path, new_path, vendor, template, primer, date)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.SourcePath, newPath, entry.Vendor.String(), entry.Template, entry.Primer, entry.Date)
	if err != nil {
		return fmt.Errorf("journal: append: %w", err)
	}
	return nil
}

// Recent returns the most recent records, newest first.
func (db *DB) Recent(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(`
		SELECT id, old_path, new_path, vendor, template, primer, date, renamed_at
		FROM renames
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("journal: recent: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.OldPath, &r.NewPath, &r.Vendor, &r.Template, &r.Primer, &r.Date, &r.RenamedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
