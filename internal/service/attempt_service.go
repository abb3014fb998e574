package service

import (
	"errors"
	"time"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/quiz"
	"skillforge_backend/internal/util"
	"skillforge_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// Store interfaces are satisfied by the gorm repositories; tests swap in
// in-memory fakes.

type quizStore interface {
	FindByID(id string) (*model.Quiz, error)
}

type attemptStore interface {
	Create(attempt *model.QuizAttempt) error
	FindByID(id string) (*model.QuizAttempt, error)
	FindByQuiz(quizID string) ([]model.QuizAttempt, error)
	FindByStudent(studentID string) ([]model.QuizAttempt, error)
	FindByQuizAndStudent(quizID, studentID string) ([]model.QuizAttempt, error)
	Update(attempt *model.QuizAttempt) error
}

type assignmentChecker interface {
	Exists(quizID, studentID string) (bool, error)
}

type AttemptService struct {
	Quizzes     quizStore
	Attempts    attemptStore
	Assignments assignmentChecker
	Activity    *ActivityService
}

func NewAttemptService(quizzes quizStore, attempts attemptStore, assignments assignmentChecker, activity *ActivityService) *AttemptService {
	return &AttemptService{
		Quizzes:     quizzes,
		Attempts:    attempts,
		Assignments: assignments,
		Activity:    activity,
	}
}

// Submit scores the answers server-side and stores a new attempt. The quiz
// must be assigned to the student. Every submission is a fresh row; earlier
// attempts are kept. TotalPoints is snapshotted from the quiz as it exists
// right now.
func (s *AttemptService) Submit(quizID, studentID string, answers map[string]string) (*model.QuizAttempt, error) {
	q, err := s.Quizzes.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}

	assigned, err := s.Assignments.Exists(quizID, studentID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, util.ErrQuizNotAssigned
	}

	result := quiz.ScoreAttempt(q.Questions, answers)

	attempt := &model.QuizAttempt{
		QuizID:      quizID,
		StudentID:   studentID,
		Answers:     answers,
		Score:       result.Score,
		TotalPoints: result.TotalPoints,
		SubmittedAt: time.Now(),
	}
	if err := s.Attempts.Create(attempt); err != nil {
		return nil, err
	}

	monitoring.AttemptCounter.WithLabelValues(quizID).Inc()

	if s.Activity != nil {
		s.Activity.Record(model.ActivityAttemptSubmit, "Quiz attempt submitted: "+q.Title, map[string]interface{}{
			"quizId":    quizID,
			"attemptId": attempt.ID,
			"score":     result.Score,
			"total":     result.TotalPoints,
		})
	}
	return attempt, nil
}

func (s *AttemptService) GetByID(id string) (*model.QuizAttempt, error) {
	attempt, err := s.Attempts.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAttemptNotFound
	}
	return attempt, err
}

func (s *AttemptService) ListByStudent(studentID string) ([]model.QuizAttempt, error) {
	return s.Attempts.FindByStudent(studentID)
}

func (s *AttemptService) ListByQuiz(quizID string) ([]model.QuizAttempt, error) {
	return s.Attempts.FindByQuiz(quizID)
}

func (s *AttemptService) ListByQuizAndStudent(quizID, studentID string) ([]model.QuizAttempt, error) {
	return s.Attempts.FindByQuizAndStudent(quizID, studentID)
}

type GradeInput struct {
	OverriddenScore int               `json:"overriddenScore"`
	Feedback        map[string]string `json:"feedback"`
	OverallFeedback string            `json:"overallFeedback"`
}

// Grade applies a manual override to an attempt. Regrading replaces the
// previous overlay; the automatic score is never touched.
func (s *AttemptService) Grade(attemptID, graderID string, input GradeInput) (*model.QuizAttempt, error) {
	attempt, err := s.GetByID(attemptID)
	if err != nil {
		return nil, err
	}

	grading := attempt.Grading()
	override := quiz.Override{
		Score:           input.OverriddenScore,
		Feedback:        input.Feedback,
		OverallFeedback: input.OverallFeedback,
		GradedBy:        graderID,
	}
	if err := quiz.ApplyOverride(&grading, override, time.Now()); err != nil {
		return nil, err
	}
	attempt.SetGrading(grading)

	if err := s.Attempts.Update(attempt); err != nil {
		return nil, err
	}

	if s.Activity != nil {
		s.Activity.Record(model.ActivityAttemptGraded, "Quiz attempt graded", map[string]interface{}{
			"attemptId":       attempt.ID,
			"quizId":          attempt.QuizID,
			"overriddenScore": input.OverriddenScore,
		})
	}
	return attempt, nil
}
