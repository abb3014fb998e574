package quiz

import (
	"errors"
	"testing"
	"time"
)

func TestApplyOverrideBounds(t *testing.T) {
	now := time.Now()
	cases := []struct {
		score int
		ok    bool
	}{
		{-1, false},
		{0, true},
		{100, true},
		{101, false},
	}
	for _, tc := range cases {
		a := Attempt{Score: 60, TotalPoints: 100}
		err := ApplyOverride(&a, Override{Score: tc.score, GradedBy: "mentor-1"}, now)
		if tc.ok && err != nil {
			t.Fatalf("score %d: unexpected error: %v", tc.score, err)
		}
		if !tc.ok {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("score %d: expected ValidationError, got %v", tc.score, err)
			}
			if a.OverriddenScore != nil || a.GradedAt != nil {
				t.Fatalf("score %d: rejected override mutated the attempt", tc.score)
			}
		}
	}
}

func TestApplyOverrideKeepsAutomaticScore(t *testing.T) {
	a := Attempt{Score: 60, TotalPoints: 100}
	now := time.Now()
	if err := ApplyOverride(&a, Override{Score: 75, GradedBy: "mentor-1"}, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Score != 60 {
		t.Fatalf("automatic score changed to %d", a.Score)
	}
	if got := EffectiveScore(a); got != 75 {
		t.Fatalf("effective score = %d, want 75", got)
	}
	if a.GradedBy != "mentor-1" || a.GradedAt == nil || !a.GradedAt.Equal(now) {
		t.Fatalf("grading metadata not set: %+v", a)
	}
}

func TestApplyOverrideLastWriteWins(t *testing.T) {
	a := Attempt{Score: 60, TotalPoints: 100}
	first := time.Now()
	second := first.Add(time.Hour)

	if err := ApplyOverride(&a, Override{
		Score:           80,
		Feedback:        map[string]string{"q1": "good"},
		OverallFeedback: "solid",
		GradedBy:        "mentor-1",
	}, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ApplyOverride(&a, Override{Score: 70, GradedBy: "mentor-2"}, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := EffectiveScore(a); got != 70 {
		t.Fatalf("effective score = %d, want 70", got)
	}
	if a.GradedBy != "mentor-2" || !a.GradedAt.Equal(second) {
		t.Fatalf("metadata not replaced: %+v", a)
	}
	if len(a.Feedback) != 0 || a.OverallFeedback != "" {
		t.Fatalf("previous feedback survived: %+v", a)
	}
}

func TestEffectiveScoreWithoutOverride(t *testing.T) {
	a := Attempt{Score: 42, TotalPoints: 100}
	if got := EffectiveScore(a); got != 42 {
		t.Fatalf("effective score = %d, want 42", got)
	}
}
