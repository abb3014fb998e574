package quiz

import (
	"errors"
	"testing"
)

func mcQuestion(id, answer string, points int, options ...string) Question {
	return Question{
		ID:            id,
		Kind:          MultipleChoice,
		Text:          "pick one",
		Options:       options,
		CorrectAnswer: answer,
		Points:        points,
	}
}

func questionIDs(qs []Question) []string {
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func TestValidateQuestionRejectsAnswerOutsideOptions(t *testing.T) {
	q := mcQuestion("q1", "D", 5, "A", "B", "C")
	err := ValidateQuestion(q)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "correctAnswer" {
		t.Fatalf("expected correctAnswer field, got %q", verr.Field)
	}
}

func TestValidateQuestionCaseSensitiveMembership(t *testing.T) {
	// "a" is not "A": membership is exact.
	if err := ValidateQuestion(mcQuestion("q1", "a", 5, "A", "B")); err == nil {
		t.Fatal("expected lowercase answer to be rejected")
	}
	if err := ValidateQuestion(mcQuestion("q1", "A", 5, "A", "B")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateQuestionRejectsNonPositivePoints(t *testing.T) {
	for _, points := range []int{0, -3} {
		if err := ValidateQuestion(mcQuestion("q1", "A", points, "A")); err == nil {
			t.Fatalf("expected error for points=%d", points)
		}
	}
}

func TestValidateQuestionShortAnswerIgnoresOptions(t *testing.T) {
	q := Question{ID: "q1", Kind: ShortAnswer, Text: "capital of France", CorrectAnswer: "Paris", Points: 5}
	if err := ValidateQuestion(q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateQuestionsEmptySet(t *testing.T) {
	var verr *ValidationError
	if err := ValidateQuestions(nil); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty set, got %v", err)
	}
}

func TestAddQuestionAppendsWithoutReordering(t *testing.T) {
	qs := []Question{mcQuestion("q1", "A", 5, "A"), mcQuestion("q2", "B", 5, "B")}
	out, err := AddQuestion(qs, mcQuestion("q3", "C", 5, "C"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"q1", "q2", "q3"}
	got := questionIDs(out)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch: got %v, want %v", got, want)
		}
	}
	if len(qs) != 2 {
		t.Fatalf("input slice was mutated: %v", questionIDs(qs))
	}
}

func TestAddQuestionValidatesNewQuestion(t *testing.T) {
	qs := []Question{mcQuestion("q1", "A", 5, "A")}
	if _, err := AddQuestion(qs, mcQuestion("q2", "X", 5, "A", "B")); err == nil {
		t.Fatal("expected validation error for bad new question")
	}
}

func TestRemoveQuestion(t *testing.T) {
	qs := []Question{mcQuestion("q1", "A", 5, "A"), mcQuestion("q2", "B", 5, "B")}
	out, err := RemoveQuestion(qs, "q1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "q2" {
		t.Fatalf("unexpected result: %v", questionIDs(out))
	}
}

func TestRemoveQuestionMissingIDIsNotFound(t *testing.T) {
	qs := []Question{mcQuestion("q1", "A", 5, "A")}
	_, err := RemoveQuestion(qs, "nope")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != "nope" {
		t.Fatalf("error should carry the missing id, got %q", nf.ID)
	}
}

func TestReorderQuestionsRoundTrip(t *testing.T) {
	qs := []Question{
		mcQuestion("q1", "A", 5, "A"),
		mcQuestion("q2", "B", 5, "B"),
		mcQuestion("q3", "C", 5, "C"),
	}
	perms := [][]string{
		{"q3", "q1", "q2"},
		{"q2", "q3", "q1"},
		{"q1", "q2", "q3"},
	}
	for _, perm := range perms {
		out, err := ReorderQuestions(qs, perm)
		if err != nil {
			t.Fatalf("perm %v: unexpected error: %v", perm, err)
		}
		got := questionIDs(out)
		for i := range perm {
			if got[i] != perm[i] {
				t.Fatalf("perm %v: read back %v", perm, got)
			}
		}
	}
}

func TestReorderQuestionsRejectsNonPermutations(t *testing.T) {
	qs := []Question{mcQuestion("q1", "A", 5, "A"), mcQuestion("q2", "B", 5, "B")}
	cases := map[string][]string{
		"omission":  {"q1"},
		"addition":  {"q1", "q2", "q3"},
		"duplicate": {"q1", "q1"},
		"unknown":   {"q1", "q9"},
	}
	for name, order := range cases {
		_, err := ReorderQuestions(qs, order)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", name, err)
		}
	}
}

func TestUpdateQuestionRevalidatesMergedResult(t *testing.T) {
	qs := []Question{mcQuestion("q1", "A", 5, "A", "B")}

	// Patching the answer to an existing option is fine.
	answer := "B"
	out, err := UpdateQuestion(qs, "q1", QuestionPatch{CorrectAnswer: &answer})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].CorrectAnswer != "B" {
		t.Fatalf("patch not applied: %+v", out[0])
	}
	if qs[0].CorrectAnswer != "A" {
		t.Fatal("input slice was mutated")
	}

	// Patching it outside the option list must fail on the merged value.
	bad := "Z"
	if _, err := UpdateQuestion(qs, "q1", QuestionPatch{CorrectAnswer: &bad}); err == nil {
		t.Fatal("expected validation error for merged result")
	}

	// Shrinking the options away from the current answer must also fail.
	opts := []string{"X", "Y"}
	if _, err := UpdateQuestion(qs, "q1", QuestionPatch{Options: &opts}); err == nil {
		t.Fatal("expected validation error when options no longer contain the answer")
	}
}

func TestUpdateQuestionMissingID(t *testing.T) {
	qs := []Question{mcQuestion("q1", "A", 5, "A")}
	_, err := UpdateQuestion(qs, "q9", QuestionPatch{})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestTotalPoints(t *testing.T) {
	qs := []Question{mcQuestion("q1", "A", 10, "A"), mcQuestion("q2", "B", 15, "B")}
	if got := TotalPoints(qs); got != 25 {
		t.Fatalf("TotalPoints = %d, want 25", got)
	}
}
