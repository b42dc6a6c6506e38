// ABOUTME: Snapshot history kept in a SQLite file next to the live store
// ABOUTME: Handles opening SQLite database with WAL mode and snapshot rows
package archive

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/harperreed/refit/db"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	taken_at DATETIME NOT NULL,
	version TEXT NOT NULL,
	payload BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_taken_at ON snapshots(taken_at);
`

// Archive stores dated full-dataset snapshots so a bad edit or import can be
// walked back.
type Archive struct {
	db *sql.DB
}

// Open opens (or creates) the archive database at path.
func Open(path string) (*Archive, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	// Single connection avoids database locked errors
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, err
	}
	return &Archive{db: conn}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

// Save stores a snapshot and returns its row id.
func (a *Archive) Save(snap *db.Snapshot) (int64, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return 0, err
	}
	res, err := a.db.Exec(
		"INSERT INTO snapshots (taken_at, version, payload) VALUES (?, ?, ?)",
		snap.ExportDate, snap.Version, payload,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Entry describes one archived snapshot without its payload.
type Entry struct {
	ID      int64
	TakenAt time.Time
	Version string
}

// List returns archive entries, newest first.
func (a *Archive) List() ([]Entry, error) {
	rows, err := a.db.Query("SELECT id, taken_at, version FROM snapshots ORDER BY taken_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.TakenAt, &e.Version); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get loads one archived snapshot by row id.
func (a *Archive) Get(id int64) (*db.Snapshot, error) {
	var payload []byte
	err := a.db.QueryRow("SELECT payload FROM snapshots WHERE id = ?", id).Scan(&payload)
	if err != nil {
		return nil, err
	}
	var snap db.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Latest loads the most recently taken snapshot. Returns sql.ErrNoRows when
// the archive is empty.
func (a *Archive) Latest() (*db.Snapshot, error) {
	var payload []byte
	err := a.db.QueryRow("SELECT payload FROM snapshots ORDER BY taken_at DESC, id DESC LIMIT 1").Scan(&payload)
	if err != nil {
		return nil, err
	}
	var snap db.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Prune deletes snapshots taken before the cutoff and returns how many rows
// were removed.
func (a *Archive) Prune(cutoff time.Time) (int64, error) {
	res, err := a.db.Exec("DELETE FROM snapshots WHERE taken_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
