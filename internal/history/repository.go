// Package history persists finished quiz sessions.
package history

import (
	"context"
	"errors"
	"time"

	"quiz-runner/internal/quiz"
)

var ErrNoSessions = errors.New("no sessions recorded")

const defaultListLimit = 10

type Entry struct {
	ID         string
	Source     string
	Results    quiz.Results
	FinishedAt time.Time
}

type Summary struct {
	Source      string
	Sessions    int
	Correct     int
	Incorrect   int
	BestPercent int
	LastPlayed  time.Time
}

type Repository interface {
	SaveSession(ctx context.Context, entry Entry) (Entry, error)
	ListSessions(ctx context.Context, source string, limit int) ([]Entry, error)
	Summary(ctx context.Context, source string) (Summary, error)
}
