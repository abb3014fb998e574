package quiz

// Authoring operations mutate the ordered question sequence of a quiz. They
// are pure: each returns a fresh slice (or an error) and never leaves a
// partially-mutated input behind, so callers persist only on success.

// ValidateQuestions checks a complete question set as used at quiz creation.
// The set must be non-empty and every question must pass ValidateQuestion.
func ValidateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return &ValidationError{Field: "questions", Reason: "quiz needs at least one question"}
	}
	for _, q := range questions {
		if err := ValidateQuestion(q); err != nil {
			return err
		}
	}
	return nil
}

// TotalPoints is the quiz's total: the sum of all question point values.
// It is always computed, never stored.
func TotalPoints(questions []Question) int {
	total := 0
	for _, q := range questions {
		total += q.Points
	}
	return total
}

// AddQuestion appends a validated question; existing order is untouched.
func AddQuestion(questions []Question, q Question) ([]Question, error) {
	if err := ValidateQuestion(q); err != nil {
		return nil, err
	}
	out := make([]Question, 0, len(questions)+1)
	out = append(out, questions...)
	out = append(out, q)
	return out, nil
}

// RemoveQuestion removes the first question with the given id. A missing id
// is a NotFoundError so callers can tell "removed" from "nothing to remove".
func RemoveQuestion(questions []Question, questionID string) ([]Question, error) {
	for i, q := range questions {
		if q.ID == questionID {
			out := make([]Question, 0, len(questions)-1)
			out = append(out, questions[:i]...)
			out = append(out, questions[i+1:]...)
			return out, nil
		}
	}
	return nil, &NotFoundError{Kind: "question", ID: questionID}
}

// ReorderQuestions replaces the sequence with the same questions in the
// given order. newOrder must be an exact permutation of the current id set:
// no additions, no omissions, no duplicates.
func ReorderQuestions(questions []Question, newOrder []string) ([]Question, error) {
	if len(newOrder) != len(questions) {
		return nil, &ValidationError{Field: "newOrder", Reason: "order list must contain every question id exactly once"}
	}
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	seen := make(map[string]bool, len(newOrder))
	out := make([]Question, 0, len(newOrder))
	for _, id := range newOrder {
		if seen[id] {
			return nil, &ValidationError{Field: "newOrder", ID: id, Reason: "duplicate question id"}
		}
		q, ok := byID[id]
		if !ok {
			return nil, &ValidationError{Field: "newOrder", ID: id, Reason: "id is not part of this quiz"}
		}
		seen[id] = true
		out = append(out, q)
	}
	return out, nil
}

// UpdateQuestion applies a partial update to one question and re-validates
// the merged result, so a patch can never break the multiple-choice
// invariant.
func UpdateQuestion(questions []Question, questionID string, patch QuestionPatch) ([]Question, error) {
	idx := -1
	for i, q := range questions {
		if q.ID == questionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &NotFoundError{Kind: "question", ID: questionID}
	}
	merged := patch.apply(questions[idx])
	merged.ID = questionID
	if err := ValidateQuestion(merged); err != nil {
		return nil, err
	}
	out := make([]Question, len(questions))
	copy(out, questions)
	out[idx] = merged
	return out, nil
}
