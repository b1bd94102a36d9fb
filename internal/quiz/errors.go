package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrLoad              = errors.New("quiz source unreadable")
	ErrParse             = errors.New("quiz source not decodable")
	ErrMalformedQuestion = errors.New("malformed question")

	// ErrCorrectAnswerMissing means a question reached the session without a
	// correct answer. New never builds such a question, so seeing it is a bug.
	ErrCorrectAnswerMissing = errors.New("internal error: correct answer not found")
)

var (
	errMissingPrompt = errors.New("prompt is empty")
	errNoOptions     = errors.New("options list is empty")
	errMissingAnswer = errors.New("correct option is missing or 0")
)

func answerOutOfRange(answer, optionCount int) error {
	return fmt.Errorf("correct option %d is out of range 1-%d", answer, optionCount)
}

// LoadError reports a source that could not be read at all.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load quiz %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// ParseError reports a source that was read but does not decode into
// the expected document shape.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse quiz %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

type MalformedQuestionError struct {
	// Position is 1-based in source order.
	Position int
	Reason   string
}

func (e *MalformedQuestionError) Error() string {
	return fmt.Sprintf("malformed question #%d: %s", e.Position, e.Reason)
}

func (e *MalformedQuestionError) Is(target error) bool { return target == ErrMalformedQuestion }

const (
	KindLoad      = "load"
	KindParse     = "parse"
	KindMalformed = "malformed"
	KindInternal  = "internal"
)

// Kind classifies err into one of the quiz error kinds, or "" when err is
// not a quiz error.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrLoad):
		return KindLoad
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, ErrMalformedQuestion):
		return KindMalformed
	case errors.Is(err, ErrCorrectAnswerMissing):
		return KindInternal
	default:
		return ""
	}
}
