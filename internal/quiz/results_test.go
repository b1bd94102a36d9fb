package quiz

import (
	"errors"
	"testing"
)

func TestFormatResults(t *testing.T) {
	tests := []struct {
		name    string
		results Results
		want    string
	}{
		{name: "mixed", results: Results{Correct: 3, Incorrect: 2}, want: "60% correct (3 of 5)"},
		{name: "empty", results: Results{}, want: "0% correct (0 of 0)"},
		{name: "truncates", results: Results{Correct: 1, Incorrect: 2}, want: "33% correct (1 of 3)"},
		{name: "truncates two thirds", results: Results{Correct: 2, Incorrect: 1}, want: "66% correct (2 of 3)"},
		{name: "perfect", results: Results{Correct: 1}, want: "100% correct (1 of 1)"},
		{name: "none right", results: Results{Incorrect: 4}, want: "0% correct (0 of 4)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatResults(tc.results); got != tc.want {
				t.Fatalf("FormatResults(%+v) = %q, want %q", tc.results, got, tc.want)
			}
			if got := tc.results.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResultsRecordIncrementsExactlyOne(t *testing.T) {
	var results Results
	outcomes := []bool{true, false, false, true, true}

	for idx, correct := range outcomes {
		results.Record(correct)
		if results.Total() != idx+1 {
			t.Fatalf("after %d records total = %d", idx+1, results.Total())
		}
	}

	if results.Correct != 3 || results.Incorrect != 2 {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "load", err: &LoadError{Source: "x.json", Err: errors.New("no such file")}, want: KindLoad},
		{name: "parse", err: &ParseError{Source: "x.json", Err: errors.New("bad json")}, want: KindParse},
		{name: "malformed", err: &MalformedQuestionError{Position: 1, Reason: "r"}, want: KindMalformed},
		{name: "internal", err: ErrCorrectAnswerMissing, want: KindInternal},
		{name: "other", err: errors.New("boom"), want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Kind(tc.err); got != tc.want {
				t.Fatalf("Kind(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}

func TestLoadErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("no such file")
	err := &LoadError{Source: "quiz.json", Err: cause}

	if err.Error() != "load quiz quiz.json: no such file" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected LoadError to unwrap to its cause")
	}
	if errors.Is(err, ErrParse) {
		t.Fatalf("load error must not match ErrParse")
	}
}
