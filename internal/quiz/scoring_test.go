package quiz

import (
	"reflect"
	"testing"
)

func TestScoreAttemptTwoQuestionScenario(t *testing.T) {
	qs := []Question{
		mcQuestion("q1", "A", 10, "A", "B", "C"),
		mcQuestion("q2", "B", 15, "A", "B", "C"),
	}
	res := ScoreAttempt(qs, map[string]string{"q1": "A", "q2": "C"})

	if res.Score != 10 {
		t.Fatalf("score = %d, want 10", res.Score)
	}
	if res.TotalPoints != 25 {
		t.Fatalf("totalPoints = %d, want 25", res.TotalPoints)
	}
	want := map[string]int{"q1": 10, "q2": 0}
	if !reflect.DeepEqual(res.PerQuestion, want) {
		t.Fatalf("perQuestion = %v, want %v", res.PerQuestion, want)
	}
}

func TestScoreAttemptDeterministic(t *testing.T) {
	qs := []Question{
		mcQuestion("q1", "A", 10, "A", "B"),
		{ID: "q2", Kind: ShortAnswer, Text: "?", CorrectAnswer: "go", Points: 5},
	}
	answers := map[string]string{"q1": "A", "q2": "GO"}
	first := ScoreAttempt(qs, answers)
	second := ScoreAttempt(qs, answers)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scoring is not deterministic: %v vs %v", first, second)
	}
}

func TestScoreAttemptPerQuestionSumEqualsScore(t *testing.T) {
	qs := []Question{
		mcQuestion("q1", "A", 10, "A", "B"),
		mcQuestion("q2", "B", 15, "A", "B"),
		{ID: "q3", Kind: ShortAnswer, Text: "?", CorrectAnswer: "yes", Points: 7},
	}
	answerSets := []map[string]string{
		{},
		{"q1": "A"},
		{"q1": "A", "q2": "B", "q3": " YES "},
		{"q1": "B", "q2": "A", "q3": "no"},
	}
	for _, answers := range answerSets {
		res := ScoreAttempt(qs, answers)
		sum := 0
		for _, pts := range res.PerQuestion {
			sum += pts
		}
		if sum != res.Score {
			t.Fatalf("answers %v: per-question sum %d != score %d", answers, sum, res.Score)
		}
		if res.Score > res.TotalPoints {
			t.Fatalf("answers %v: score %d exceeds total %d", answers, res.Score, res.TotalPoints)
		}
	}
}

func TestScoreAttemptMultipleChoiceIsCaseSensitive(t *testing.T) {
	qs := []Question{mcQuestion("q1", "A", 10, "A", "a")}
	if res := ScoreAttempt(qs, map[string]string{"q1": "a"}); res.Score != 0 {
		t.Fatalf("lowercase candidate scored %d, want 0", res.Score)
	}
}

func TestScoreAttemptShortAnswerTrimsAndFoldsCase(t *testing.T) {
	qs := []Question{{ID: "q1", Kind: ShortAnswer, Text: "?", CorrectAnswer: "Paris", Points: 5}}
	for _, candidate := range []string{"paris", "  PARIS  ", "Paris"} {
		if res := ScoreAttempt(qs, map[string]string{"q1": candidate}); res.Score != 5 {
			t.Fatalf("candidate %q scored %d, want 5", candidate, res.Score)
		}
	}
	if res := ScoreAttempt(qs, map[string]string{"q1": "London"}); res.Score != 0 {
		t.Fatalf("wrong answer scored %d, want 0", res.Score)
	}
}

func TestScoreAttemptIgnoresUnknownKeysAndMissingAnswers(t *testing.T) {
	qs := []Question{mcQuestion("q1", "A", 10, "A", "B")}
	res := ScoreAttempt(qs, map[string]string{"ghost": "A"})
	if res.Score != 0 {
		t.Fatalf("score = %d, want 0", res.Score)
	}
	if _, ok := res.PerQuestion["ghost"]; ok {
		t.Fatal("unknown key leaked into per-question results")
	}
	if pts, ok := res.PerQuestion["q1"]; !ok || pts != 0 {
		t.Fatalf("unanswered question should be present with 0, got %v", res.PerQuestion)
	}
}
