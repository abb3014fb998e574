// Package quiz implements the quiz domain rules: question validation,
// authoring mutations, attempt scoring, grading overrides and the statistics
// the dashboards are built on. Everything here is synchronous and free of
// I/O; persistence and transport live in the service layer.
package quiz

import "strings"

type QuestionKind string

const (
	MultipleChoice QuestionKind = "multiple-choice"
	ShortAnswer    QuestionKind = "short-answer"
)

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

type Question struct {
	ID            string       `json:"id"`
	Kind          QuestionKind `json:"type"`
	Text          string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Points        int          `json:"points"`
}

// QuestionPatch is a partial update of one question. Nil fields are left
// unchanged; the merged result is re-validated.
type QuestionPatch struct {
	Kind          *QuestionKind
	Text          *string
	Options       *[]string
	CorrectAnswer *string
	Points        *int
}

// ValidateQuestion enforces the structural invariants of a single question:
// positive points, and for multiple-choice a non-empty option list that
// contains the correct answer (exact, case-sensitive).
func ValidateQuestion(q Question) error {
	if q.Points <= 0 {
		return &ValidationError{Field: "points", ID: q.ID, Reason: "point value must be positive"}
	}
	switch q.Kind {
	case MultipleChoice:
		if len(q.Options) == 0 {
			return &ValidationError{Field: "options", ID: q.ID, Reason: "multiple-choice question needs at least one option"}
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return &ValidationError{Field: "correctAnswer", ID: q.ID, Reason: "correct answer is not one of the options"}
		}
	case ShortAnswer:
		// options are ignored for short-answer questions
	default:
		return &ValidationError{Field: "type", ID: q.ID, Reason: "unknown question type " + string(q.Kind)}
	}
	return nil
}

func (p QuestionPatch) apply(q Question) Question {
	if p.Kind != nil {
		q.Kind = *p.Kind
	}
	if p.Text != nil {
		q.Text = *p.Text
	}
	if p.Options != nil {
		q.Options = *p.Options
	}
	if p.CorrectAnswer != nil {
		q.CorrectAnswer = *p.CorrectAnswer
	}
	if p.Points != nil {
		q.Points = *p.Points
	}
	return q
}

// answerMatches applies the per-kind answer rule: exact equality for
// multiple-choice, trimmed case-insensitive equality as the automatic
// baseline for short-answer (a grader can override later).
func answerMatches(q Question, candidate string) bool {
	switch q.Kind {
	case MultipleChoice:
		return candidate == q.CorrectAnswer
	case ShortAnswer:
		return strings.EqualFold(strings.TrimSpace(candidate), strings.TrimSpace(q.CorrectAnswer))
	}
	return false
}
