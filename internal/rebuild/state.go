package rebuild

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// StateDB journals completed rebuild ranges so repeated runs can skip work
// that already succeeded.
type StateDB struct {
	db *sql.DB
}

// OpenStateDB opens (or creates) the SQLite journal at dir/rebuild.db.
func OpenStateDB(dir string) (*StateDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "rebuild.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS rebuilt_ranges (
		user_id      INTEGER NOT NULL,
		start_date   TEXT NOT NULL,
		end_date     TEXT NOT NULL,
		rows_written INTEGER NOT NULL,
		rebuilt_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, start_date, end_date)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state table: %w", err)
	}

	return &StateDB{db: db}, nil
}

// IsRebuilt checks whether a range was already rebuilt for this user.
func (s *StateDB) IsRebuilt(userID int, start, end time.Time) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM rebuilt_ranges WHERE user_id = ? AND start_date = ? AND end_date = ?`,
		userID, dayKey(start), dayKey(end),
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkRebuilt records a completed rebuild. Re-running the same range
// overwrites the journal entry.
func (s *StateDB) MarkRebuilt(userID int, start, end time.Time, rowsWritten int64) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO rebuilt_ranges (user_id, start_date, end_date, rows_written) VALUES (?, ?, ?, ?)`,
		userID, dayKey(start), dayKey(end), rowsWritten,
	)
	return err
}

// Close closes the journal database.
func (s *StateDB) Close() error {
	return s.db.Close()
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
