package loader

import (
	"context"
	"fmt"
	"html"

	"quiz-runner/internal/opentdb"
	"quiz-runner/internal/quiz"
)

func errInvalidAmount(raw string) error {
	return fmt.Errorf("invalid question amount %q", raw)
}

func (s *Source) loadRemote(ctx context.Context, source string, amount int) ([]quiz.Record, error) {
	raw, err := s.fetcher.FetchQuestions(ctx, amount)
	if err != nil {
		return nil, &quiz.LoadError{Source: source, Err: err}
	}

	records := make([]quiz.Record, 0, len(raw))
	for _, item := range raw {
		records = append(records, recordFromTrivia(item))
	}
	return records, nil
}

// recordFromTrivia lists the incorrect answers first and the correct one
// last; the session shuffles answers anyway.
func recordFromTrivia(raw opentdb.RawQuestion) quiz.Record {
	options := make([]string, 0, len(raw.IncorrectAnswers)+1)
	for _, incorrect := range raw.IncorrectAnswers {
		options = append(options, html.UnescapeString(incorrect))
	}
	options = append(options, html.UnescapeString(raw.CorrectAnswer))

	return quiz.Record{
		Prompt:  html.UnescapeString(raw.Question),
		Options: options,
		Answer:  len(options),
	}
}
