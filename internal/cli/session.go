package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quiz-runner/internal/quiz"
)

// ErrInputClosed is returned when input ends before every question has an
// answer.
var ErrInputClosed = errors.New("input closed before the quiz finished")

type Session struct {
	reader     *bufio.Reader
	out        io.Writer
	randomizer quiz.Randomizer
}

func NewSession(in io.Reader, out io.Writer, randomizer quiz.Randomizer) *Session {
	if randomizer == nil {
		randomizer = quiz.NewRandomShuffler()
	}
	return &Session{
		reader:     bufio.NewReader(in),
		out:        out,
		randomizer: randomizer,
	}
}

// Run asks every question once, in shuffled order, and returns the totals.
// On error the totals gathered so far are returned with it.
func (s *Session) Run(ctx context.Context, q quiz.Quiz) (quiz.Results, error) {
	var results quiz.Results

	for _, question := range s.randomizer.ShuffleQuestions(q).Questions {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		question = s.randomizer.ShuffleAnswers(question)
		fmt.Fprintln(s.out, renderQuestion(question))

		correctIndex, err := quiz.CorrectIndex(question.Answers)
		if err != nil {
			return results, err
		}

		chosen, err := s.readSelection(ctx, len(question.Answers))
		if err != nil {
			return results, err
		}

		correct := chosen == correctIndex
		results.Record(correct)
		if correct {
			fmt.Fprintln(s.out, "Correct!")
		} else {
			fmt.Fprintf(s.out, "Incorrect! Correct answer was #%d\n", correctIndex+1)
		}

		fmt.Fprintf(s.out, "\n%s\n\n\n", quiz.FormatResults(results))
	}

	return results, nil
}

func renderQuestion(question quiz.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "---\n\n%s\n\n", question.Prompt)
	for idx, answer := range question.Answers {
		fmt.Fprintf(&b, "%d - %s\n\n", idx+1, answer.Text)
	}
	return b.String()
}

// readSelection prompts until a line parses as an option number and returns
// it zero-based. There is no retry limit.
func (s *Session) readSelection(ctx context.Context, optionCount int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		fmt.Fprintln(s.out, "Answer: ")
		line, err := s.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return -1, err
		}
		if errors.Is(err, io.EOF) && line == "" {
			return -1, ErrInputClosed
		}

		if chosen, ok := parseSelection(line, optionCount); ok {
			return chosen, nil
		}
		fmt.Fprintln(s.out, "Invalid answer")
	}
}

func parseSelection(line string, optionCount int) (int, bool) {
	selection, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || selection < 1 || selection > optionCount {
		return -1, false
	}
	return selection - 1, true
}
