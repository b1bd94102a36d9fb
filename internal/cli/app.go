package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"quiz-runner/internal/history"
	"quiz-runner/internal/loader"
	"quiz-runner/internal/quiz"
)

type Config struct {
	Source string

	// Seed fixes the question and answer order when SeedSet is true.
	Seed    uint64
	SeedSet bool

	// Shuffle false keeps the source order.
	Shuffle bool
}

type Dependencies struct {
	Loader loader.Loader
	// History is optional; nil skips persistence.
	History history.Repository
	Logger  *log.Logger
}

// Run executes one quiz invocation: load, build, play, record, report.
// Nothing is shown to the user when the source fails to load or build.
func Run(ctx context.Context, cfg Config, deps Dependencies, in io.Reader, out io.Writer) error {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if deps.Loader == nil {
		deps.Loader = loader.New()
	}

	records, err := deps.Loader.Load(ctx, cfg.Source)
	if err != nil {
		return err
	}

	q, err := quiz.New(records)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Source, err)
	}

	session := NewSession(in, out, randomizerFor(cfg))
	results, err := session.Run(ctx, q)
	if err != nil {
		return err
	}

	if deps.History != nil {
		entry, err := deps.History.SaveSession(ctx, history.Entry{
			Source:     cfg.Source,
			Results:    results,
			FinishedAt: time.Now().UTC(),
		})
		if err != nil {
			logger.Printf("history: save session failed: %v", err)
		} else {
			logger.Printf("history: saved session %s (%s)", entry.ID, quiz.FormatResults(results))
		}
	}

	fmt.Fprintf(out, "Final results: %s\n", quiz.FormatResults(results))
	fmt.Fprintln(out, "Done!")
	return nil
}

func randomizerFor(cfg Config) quiz.Randomizer {
	switch {
	case !cfg.Shuffle:
		return quiz.Identity{}
	case cfg.SeedSet:
		return quiz.NewSeededShuffler(cfg.Seed)
	default:
		return quiz.NewRandomShuffler()
	}
}

// PrintHistory writes recent sessions, newest first, and the summary for
// source when one is given.
func PrintHistory(ctx context.Context, repo history.Repository, source string, limit int, out io.Writer) error {
	entries, err := repo.ListSessions(ctx, source, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No sessions recorded.")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(out, "%s  %-24s %s\n", entry.FinishedAt.Local().Format(time.DateTime), entry.Source, quiz.FormatResults(entry.Results))
	}

	if source == "" {
		return nil
	}
	summary, err := repo.Summary(ctx, source)
	if err != nil {
		return err
	}
	total := quiz.Results{Correct: summary.Correct, Incorrect: summary.Incorrect}
	fmt.Fprintf(out, "\n%d sessions, best %d%%, overall %s\n", summary.Sessions, summary.BestPercent, quiz.FormatResults(total))
	return nil
}
