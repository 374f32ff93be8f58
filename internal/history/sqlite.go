package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/amrit/rehearse/internal/session"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    student_name TEXT NOT NULL,
    started_at TEXT NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_student ON sessions(student_name);
`

// SQLiteStore keeps session records in a single SQLite database instead of a
// directory of JSON files. It implements session.Recorder.
type SQLiteStore struct {
	db  *sql.DB
	log *slog.Logger
}

// NewSQLiteStore opens (creating if needed) the database at dbPath.
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply session schema: %w", err)
	}

	return &SQLiteStore{db: db, log: logger}, nil
}

// Close releases the underlying database handle.
func (st *SQLiteStore) Close() error {
	return st.db.Close()
}

// Save inserts the session record and returns a locator string. Session IDs
// embed a timestamp, so collisions only occur on a genuine duplicate save and
// are rejected by the primary key.
func (st *SQLiteStore) Save(ctx context.Context, s *session.Session) (string, error) {
	rec := FromSession(s)

	payload, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode session %s: %w", s.ID, err)
	}

	_, err = st.db.ExecContext(ctx,
		"INSERT INTO sessions (id, student_name, started_at, payload) VALUES (?, ?, ?, ?)",
		rec.SessionID, rec.StudentName, rec.SessionTimestamp.Format(time.RFC3339), string(payload))
	if err != nil {
		return "", fmt.Errorf("insert session %s: %w", s.ID, err)
	}

	st.log.Info("session saved", "student", s.StudentName, "id", rec.SessionID)
	return "sqlite:" + rec.SessionID, nil
}

// LoadAll returns every stored record, newest first. Rows whose payload no
// longer parses are skipped with a warning.
func (st *SQLiteStore) LoadAll(ctx context.Context) ([]SessionRecord, error) {
	rows, err := st.db.QueryContext(ctx,
		"SELECT id, payload FROM sessions ORDER BY started_at DESC")
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		var rec SessionRecord
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			st.log.Warn("skipping corrupt session row", "id", id, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
