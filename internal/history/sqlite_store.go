package history

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"quiz-runner/internal/quiz"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		path = "quiz-history.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			correct INTEGER NOT NULL,
			incorrect INTEGER NOT NULL,
			finished_at_unix INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_source_finished ON sessions(source, finished_at_unix DESC);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveSession stores a finished session. A missing ID or finish time is
// filled in and the stored entry is returned.
func (s *SQLiteStore) SaveSession(ctx context.Context, entry Entry) (Entry, error) {
	if entry.Source == "" {
		return Entry{}, errors.New("session source is required")
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.FinishedAt.IsZero() {
		entry.FinishedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sessions (session_id, source, correct, incorrect, finished_at_unix) VALUES (?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Source,
		entry.Results.Correct,
		entry.Results.Incorrect,
		entry.FinishedAt.UnixNano(),
	)
	if err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// ListSessions returns the newest sessions first. An empty source lists
// sessions for every source.
func (s *SQLiteStore) ListSessions(ctx context.Context, source string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT session_id, source, correct, incorrect, finished_at_unix
		 FROM sessions
		 WHERE ? = '' OR source = ?
		 ORDER BY finished_at_unix DESC, session_id ASC
		 LIMIT ?`,
		source,
		source,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var (
			entry          Entry
			finishedAtUnix int64
		)
		if err := rows.Scan(&entry.ID, &entry.Source, &entry.Results.Correct, &entry.Results.Incorrect, &finishedAtUnix); err != nil {
			return nil, err
		}
		entry.FinishedAt = time.Unix(0, finishedAtUnix).UTC()
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *SQLiteStore) Summary(ctx context.Context, source string) (Summary, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT correct, incorrect, finished_at_unix FROM sessions WHERE source = ?`,
		source,
	)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()

	summary := Summary{Source: source}
	for rows.Next() {
		var (
			results        quiz.Results
			finishedAtUnix int64
		)
		if err := rows.Scan(&results.Correct, &results.Incorrect, &finishedAtUnix); err != nil {
			return Summary{}, err
		}

		if summary.Sessions == 0 || results.Percent() > summary.BestPercent {
			summary.BestPercent = results.Percent()
		}
		summary.Sessions++
		summary.Correct += results.Correct
		summary.Incorrect += results.Incorrect

		finishedAt := time.Unix(0, finishedAtUnix).UTC()
		if finishedAt.After(summary.LastPlayed) {
			summary.LastPlayed = finishedAt
		}
	}
	if err := rows.Err(); err != nil {
		return Summary{}, err
	}

	if summary.Sessions == 0 {
		return Summary{}, ErrNoSessions
	}
	return summary, nil
}
