package quiz

import "testing"

func TestAverageEffectiveScorePercent(t *testing.T) {
	attempts := []Attempt{
		{Score: 50, TotalPoints: 100},
		{Score: 90, TotalPoints: 100},
	}
	if got := AverageEffectiveScorePercent(attempts); got != 70 {
		t.Fatalf("average = %d, want 70", got)
	}
}

func TestAverageEffectiveScorePercentUsesOverride(t *testing.T) {
	override := 100
	attempts := []Attempt{
		{Score: 50, TotalPoints: 100, OverriddenScore: &override},
		{Score: 90, TotalPoints: 100},
	}
	// (100% + 90%) / 2
	if got := AverageEffectiveScorePercent(attempts); got != 95 {
		t.Fatalf("average = %d, want 95", got)
	}
}

func TestAverageEffectiveScorePercentSkipsZeroTotals(t *testing.T) {
	attempts := []Attempt{
		{Score: 0, TotalPoints: 0},
		{Score: 80, TotalPoints: 100},
	}
	if got := AverageEffectiveScorePercent(attempts); got != 80 {
		t.Fatalf("average = %d, want 80", got)
	}
}

func TestAverageEffectiveScorePercentEmpty(t *testing.T) {
	if got := AverageEffectiveScorePercent(nil); got != 0 {
		t.Fatalf("average = %d, want 0", got)
	}
	// All-zero totals reduce to the empty case as well.
	if got := AverageEffectiveScorePercent([]Attempt{{TotalPoints: 0}}); got != 0 {
		t.Fatalf("average = %d, want 0", got)
	}
}

func TestAverageEffectiveScorePercentRoundsHalfUp(t *testing.T) {
	attempts := []Attempt{
		{Score: 1, TotalPoints: 2}, // 50%
		{Score: 3, TotalPoints: 4}, // 75%
	}
	// mean = 62.5 -> 63
	if got := AverageEffectiveScorePercent(attempts); got != 63 {
		t.Fatalf("average = %d, want 63", got)
	}
}

func TestMaterialCompletionPercent(t *testing.T) {
	ids := []string{"m1", "m2", "m3", "m4"}
	viewed := map[string]bool{"m1": true, "m2": true, "m3": true}
	if got := MaterialCompletionPercent(ids, viewed); got != 75 {
		t.Fatalf("completion = %d, want 75", got)
	}
}

func TestMaterialCompletionPercentEmptyCourse(t *testing.T) {
	if got := MaterialCompletionPercent(nil, map[string]bool{"m1": true}); got != 100 {
		t.Fatalf("completion = %d, want 100", got)
	}
}

func TestMaterialCompletionPercentIgnoresForeignIDs(t *testing.T) {
	ids := []string{"m1", "m2"}
	viewed := map[string]bool{"m1": true, "other": true}
	if got := MaterialCompletionPercent(ids, viewed); got != 50 {
		t.Fatalf("completion = %d, want 50", got)
	}
}

func TestMaterialCompletionPercentRounds(t *testing.T) {
	ids := []string{"m1", "m2", "m3"}
	viewed := map[string]bool{"m1": true}
	// 33.33... -> 33
	if got := MaterialCompletionPercent(ids, viewed); got != 33 {
		t.Fatalf("completion = %d, want 33", got)
	}
	viewed["m2"] = true
	// 66.66... -> 67
	if got := MaterialCompletionPercent(ids, viewed); got != 67 {
		t.Fatalf("completion = %d, want 67", got)
	}
}
