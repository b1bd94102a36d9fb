package quiz

import "fmt"

// Results holds the running totals of one session.
type Results struct {
	Correct   int
	Incorrect int
}

func (r *Results) Record(correct bool) {
	if correct {
		r.Correct++
		return
	}
	r.Incorrect++
}

func (r Results) Total() int {
	return r.Correct + r.Incorrect
}

// Percent truncates toward zero: 1 of 3 is 33, not 33.3 or 34.
func (r Results) Percent() int {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return 100 * r.Correct / total
}

func (r Results) String() string {
	return FormatResults(r)
}

func FormatResults(r Results) string {
	return fmt.Sprintf("%d%% correct (%d of %d)", r.Percent(), r.Correct, r.Total())
}
