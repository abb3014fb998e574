package service

import (
	"errors"
	"testing"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/quiz"
	"skillforge_backend/internal/util"
)

func testQuiz() *model.Quiz {
	q := &model.Quiz{
		CourseID:  "course-1",
		Title:     "Go Basics",
		CreatedBy: "mentor-1",
		Questions: []quiz.Question{
			{ID: "q1", Kind: quiz.MultipleChoice, Text: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4", Points: 10},
			{ID: "q2", Kind: quiz.ShortAnswer, Text: "Keyword for constants?", CorrectAnswer: "const", Points: 15},
		},
	}
	q.ID = "quiz-1"
	return q
}

func newAttemptFixture() (*AttemptService, *fakeQuizStore, *fakeAttemptStore, *fakeAssignmentStore) {
	quizzes := &fakeQuizStore{quizzes: map[string]*model.Quiz{"quiz-1": testQuiz()}}
	attempts := &fakeAttemptStore{}
	assignments := &fakeAssignmentStore{}
	svc := NewAttemptService(quizzes, attempts, assignments, nil)
	return svc, quizzes, attempts, assignments
}

func TestSubmitRequiresAssignment(t *testing.T) {
	svc, _, _, _ := newAttemptFixture()

	_, err := svc.Submit("quiz-1", "student-1", map[string]string{"q1": "4"})
	if !errors.Is(err, util.ErrQuizNotAssigned) {
		t.Fatalf("expected ErrQuizNotAssigned, got %v", err)
	}
}

func TestSubmitUnknownQuiz(t *testing.T) {
	svc, _, _, _ := newAttemptFixture()

	_, err := svc.Submit("quiz-unknown", "student-1", nil)
	if !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestSubmitScoresServerSide(t *testing.T) {
	svc, _, _, assignments := newAttemptFixture()
	assignments.Create(&model.QuizAssignment{QuizID: "quiz-1", StudentID: "student-1"})

	attempt, err := svc.Submit("quiz-1", "student-1", map[string]string{
		"q1": "4",
		"q2": "  CONST ",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if attempt.Score != 25 || attempt.TotalPoints != 25 {
		t.Fatalf("got score %d/%d, want 25/25", attempt.Score, attempt.TotalPoints)
	}
	if attempt.SubmittedAt.IsZero() {
		t.Fatal("submittedAt not set")
	}
}

func TestSubmitSnapshotsTotalPoints(t *testing.T) {
	svc, quizzes, attempts, assignments := newAttemptFixture()
	assignments.Create(&model.QuizAssignment{QuizID: "quiz-1", StudentID: "student-1"})

	first, err := svc.Submit("quiz-1", "student-1", map[string]string{"q1": "4"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if first.TotalPoints != 25 {
		t.Fatalf("snapshot total = %d, want 25", first.TotalPoints)
	}

	// Grow the quiz after the first submission.
	q := quizzes.quizzes["quiz-1"]
	q.Questions = append(q.Questions, quiz.Question{
		ID: "q3", Kind: quiz.ShortAnswer, Text: "Zero value of int?", CorrectAnswer: "0", Points: 5,
	})

	second, err := svc.Submit("quiz-1", "student-1", map[string]string{"q1": "4"})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.TotalPoints != 30 {
		t.Fatalf("second snapshot total = %d, want 30", second.TotalPoints)
	}

	stored, err := attempts.FindByID(first.ID)
	if err != nil {
		t.Fatalf("find first: %v", err)
	}
	if stored.TotalPoints != 25 {
		t.Fatalf("first attempt total re-tracked the quiz: got %d, want 25", stored.TotalPoints)
	}

	all, _ := attempts.FindByQuizAndStudent("quiz-1", "student-1")
	if len(all) != 2 {
		t.Fatalf("expected both attempts kept, got %d", len(all))
	}
}

func TestGradeOverride(t *testing.T) {
	svc, _, _, assignments := newAttemptFixture()
	assignments.Create(&model.QuizAssignment{QuizID: "quiz-1", StudentID: "student-1"})

	attempt, err := svc.Submit("quiz-1", "student-1", map[string]string{"q1": "4"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if attempt.Score != 10 {
		t.Fatalf("auto score = %d, want 10", attempt.Score)
	}

	graded, err := svc.Grade(attempt.ID, "mentor-1", GradeInput{
		OverriddenScore: 20,
		Feedback:        map[string]string{"q2": "right idea, wrong keyword"},
		OverallFeedback: "close",
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if graded.Score != 10 {
		t.Fatalf("automatic score changed by override: %d", graded.Score)
	}
	if graded.OverriddenScore == nil || *graded.OverriddenScore != 20 {
		t.Fatalf("override not stored: %+v", graded.OverriddenScore)
	}
	if graded.EffectiveScore() != 20 {
		t.Fatalf("effective score = %d, want 20", graded.EffectiveScore())
	}
	if graded.GradedBy != "mentor-1" || graded.GradedAt == nil {
		t.Fatalf("grader metadata missing: %+v", graded)
	}
}

func TestGradeOutOfBounds(t *testing.T) {
	svc, _, _, assignments := newAttemptFixture()
	assignments.Create(&model.QuizAssignment{QuizID: "quiz-1", StudentID: "student-1"})

	attempt, err := svc.Submit("quiz-1", "student-1", nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := svc.Grade(attempt.ID, "mentor-1", GradeInput{OverriddenScore: 26}); err == nil {
		t.Fatal("expected override above total to fail")
	}
	if _, err := svc.Grade(attempt.ID, "mentor-1", GradeInput{OverriddenScore: -1}); err == nil {
		t.Fatal("expected negative override to fail")
	}
	if _, err := svc.Grade(attempt.ID, "mentor-1", GradeInput{OverriddenScore: 25}); err != nil {
		t.Fatalf("override at total should pass: %v", err)
	}
}

func TestRegradeReplacesOverlay(t *testing.T) {
	svc, _, _, assignments := newAttemptFixture()
	assignments.Create(&model.QuizAssignment{QuizID: "quiz-1", StudentID: "student-1"})

	attempt, _ := svc.Submit("quiz-1", "student-1", map[string]string{"q1": "4"})

	if _, err := svc.Grade(attempt.ID, "mentor-1", GradeInput{
		OverriddenScore: 15,
		Feedback:        map[string]string{"q1": "first pass"},
	}); err != nil {
		t.Fatalf("first grade: %v", err)
	}

	regraded, err := svc.Grade(attempt.ID, "mentor-2", GradeInput{OverriddenScore: 18})
	if err != nil {
		t.Fatalf("regrade: %v", err)
	}
	if *regraded.OverriddenScore != 18 || regraded.GradedBy != "mentor-2" {
		t.Fatalf("regrade did not replace overlay: %+v", regraded)
	}
	if len(regraded.Feedback) != 0 {
		t.Fatalf("stale per-question feedback survived regrade: %v", regraded.Feedback)
	}
}
