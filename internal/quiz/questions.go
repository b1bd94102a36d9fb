package quiz

import (
	"strings"
)

// Answer is one option of a question. Correct is set once when the question
// is built and travels with the value through every shuffle.
type Answer struct {
	Text    string
	Correct bool
}

type Question struct {
	Prompt  string
	Answers []Answer
}

type Quiz struct {
	Questions []Question
}

// Record is a question as surfaced by a loader. Answer is the 1-based position
// of the correct option in Options; zero means the source did not declare one.
type Record struct {
	Prompt  string
	Options []string
	Answer  int
}

// New builds a Quiz from loader records. The first malformed record aborts
// the whole build.
func New(records []Record) (Quiz, error) {
	questions := make([]Question, 0, len(records))
	for idx, record := range records {
		question, err := buildQuestion(record)
		if err != nil {
			return Quiz{}, &MalformedQuestionError{Position: idx + 1, Reason: err.Error()}
		}
		questions = append(questions, question)
	}
	return Quiz{Questions: questions}, nil
}

func buildQuestion(record Record) (Question, error) {
	if strings.TrimSpace(record.Prompt) == "" {
		return Question{}, errMissingPrompt
	}
	if len(record.Options) == 0 {
		return Question{}, errNoOptions
	}
	if record.Answer == 0 {
		return Question{}, errMissingAnswer
	}
	if record.Answer < 0 || record.Answer > len(record.Options) {
		return Question{}, answerOutOfRange(record.Answer, len(record.Options))
	}

	answers := make([]Answer, len(record.Options))
	for idx, option := range record.Options {
		answers[idx] = Answer{
			Text:    option,
			Correct: idx+1 == record.Answer,
		}
	}

	return Question{
		Prompt:  record.Prompt,
		Answers: answers,
	}, nil
}

// CorrectIndex returns the zero-based position of the answer tagged correct.
func CorrectIndex(answers []Answer) (int, error) {
	for idx, answer := range answers {
		if answer.Correct {
			return idx, nil
		}
	}
	return -1, ErrCorrectAnswerMissing
}
