// Package loader turns a quiz source identifier into question records.
//
// A source is either a file path (JSON, or YAML by extension) or the
// pseudo-source "opentdb[:amount]" which fetches from Open Trivia DB.
// Loaders only surface records; validating them is quiz.New's job.
package loader

import (
	"context"
	"strconv"
	"strings"

	"quiz-runner/internal/opentdb"
	"quiz-runner/internal/quiz"
)

const opentdbScheme = "opentdb"

type Loader interface {
	Load(ctx context.Context, source string) ([]quiz.Record, error)
}

// Fetcher is satisfied by *opentdb.Client.
type Fetcher interface {
	FetchQuestions(ctx context.Context, amount int) ([]opentdb.RawQuestion, error)
}

type Source struct {
	fetcher       Fetcher
	defaultAmount int
}

type Option func(*Source)

func WithFetcher(fetcher Fetcher) Option {
	return func(s *Source) {
		s.fetcher = fetcher
	}
}

// WithDefaultAmount sets how many questions "opentdb" without an explicit
// amount asks for.
func WithDefaultAmount(amount int) Option {
	return func(s *Source) {
		s.defaultAmount = amount
	}
}

func New(opts ...Option) *Source {
	s := &Source{}
	for _, opt := range opts {
		opt(s)
	}
	if s.fetcher == nil {
		s.fetcher = opentdb.NewClient(nil)
	}
	return s
}

func (s *Source) Load(ctx context.Context, source string) ([]quiz.Record, error) {
	if amount, ok, err := parseRemote(source, s.defaultAmount); ok {
		if err != nil {
			return nil, &quiz.LoadError{Source: source, Err: err}
		}
		return s.loadRemote(ctx, source, amount)
	}
	return loadFile(source)
}

func parseRemote(source string, defaultAmount int) (int, bool, error) {
	name, rawAmount, hasAmount := strings.Cut(strings.TrimSpace(source), ":")
	if name != opentdbScheme {
		return 0, false, nil
	}
	if !hasAmount {
		return defaultAmount, true, nil
	}
	amount, err := strconv.Atoi(rawAmount)
	if err != nil || amount < 1 {
		return 0, true, errInvalidAmount(rawAmount)
	}
	return amount, true, nil
}
