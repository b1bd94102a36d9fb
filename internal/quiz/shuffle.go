package quiz

import (
	"math/rand/v2"
)

// Randomizer reorders questions and answers. Implementations return new
// slices and leave their input untouched.
type Randomizer interface {
	ShuffleQuestions(q Quiz) Quiz
	ShuffleAnswers(q Question) Question
}

type Shuffler struct {
	rng *rand.Rand
}

func NewShuffler(rng *rand.Rand) *Shuffler {
	return &Shuffler{rng: rng}
}

// NewSeededShuffler returns a Shuffler whose permutations are fully
// determined by seed.
func NewSeededShuffler(seed uint64) *Shuffler {
	return NewShuffler(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func NewRandomShuffler() *Shuffler {
	return NewShuffler(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func (s *Shuffler) ShuffleQuestions(q Quiz) Quiz {
	questions := cloneQuestions(q.Questions)
	s.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return Quiz{Questions: questions}
}

func (s *Shuffler) ShuffleAnswers(q Question) Question {
	answers := cloneAnswers(q.Answers)
	s.rng.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})
	return Question{Prompt: q.Prompt, Answers: answers}
}

// Identity keeps the source order. It still copies so callers get the same
// ownership guarantees as with a Shuffler.
type Identity struct{}

func (Identity) ShuffleQuestions(q Quiz) Quiz {
	return Quiz{Questions: cloneQuestions(q.Questions)}
}

func (Identity) ShuffleAnswers(q Question) Question {
	return Question{Prompt: q.Prompt, Answers: cloneAnswers(q.Answers)}
}

func cloneQuestions(questions []Question) []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

func cloneAnswers(answers []Answer) []Answer {
	out := make([]Answer, len(answers))
	copy(out, answers)
	return out
}
