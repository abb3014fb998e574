package service

import (
	"errors"
	"time"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/util"

	"gorm.io/gorm"
)

type assignmentStore interface {
	Create(assignment *model.QuizAssignment) error
	Exists(quizID, studentID string) (bool, error)
	FindByStudent(studentID string) ([]model.QuizAssignment, error)
	FindByQuiz(quizID string) ([]model.QuizAssignment, error)
}

type userLookup interface {
	FindByID(id string) (*model.User, error)
}

type AssignmentService struct {
	Assignments assignmentStore
	Quizzes     quizStore
	Users       userLookup
	Activity    *ActivityService
}

func NewAssignmentService(assignments assignmentStore, quizzes quizStore, users userLookup, activity *ActivityService) *AssignmentService {
	return &AssignmentService{
		Assignments: assignments,
		Quizzes:     quizzes,
		Users:       users,
		Activity:    activity,
	}
}

// BulkResult reports the outcome of a bulk assignment per student id.
type BulkResult struct {
	Assigned []string          `json:"assigned"`
	Skipped  []string          `json:"skipped"`
	Failed   map[string]string `json:"failed,omitempty"`
}

// AssignBulk assigns a quiz to many students at once, best-effort: students
// already holding the assignment are skipped, unknown or non-student ids are
// reported in Failed, and one bad id never aborts the rest.
func (s *AssignmentService) AssignBulk(quizID, actorID string, isAdmin bool, studentIDs []string) (*BulkResult, error) {
	q, err := s.Quizzes.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	if !isAdmin && q.CreatedBy != actorID {
		return nil, util.ErrPermissionDenied
	}

	result := &BulkResult{Failed: map[string]string{}}
	seen := make(map[string]bool, len(studentIDs))
	for _, studentID := range studentIDs {
		if seen[studentID] {
			continue
		}
		seen[studentID] = true

		user, err := s.Users.FindByID(studentID)
		if err != nil {
			result.Failed[studentID] = "student not found"
			continue
		}
		if user.Role != model.Student {
			result.Failed[studentID] = "not a student account"
			continue
		}

		exists, err := s.Assignments.Exists(quizID, studentID)
		if err != nil {
			result.Failed[studentID] = err.Error()
			continue
		}
		if exists {
			result.Skipped = append(result.Skipped, studentID)
			continue
		}

		assignment := &model.QuizAssignment{
			QuizID:     quizID,
			StudentID:  studentID,
			AssignedAt: time.Now(),
		}
		if err := s.Assignments.Create(assignment); err != nil {
			result.Failed[studentID] = err.Error()
			continue
		}
		result.Assigned = append(result.Assigned, studentID)
	}

	if s.Activity != nil && len(result.Assigned) > 0 {
		s.Activity.Record(model.ActivityQuizAssigned, "Quiz assigned: "+q.Title, map[string]interface{}{
			"quizId":   quizID,
			"students": len(result.Assigned),
		})
	}
	return result, nil
}

// AssignedQuizzes returns the quizzes currently assigned to a student, most
// recently assigned first.
func (s *AssignmentService) AssignedQuizzes(studentID string) ([]model.Quiz, error) {
	assignments, err := s.Assignments.FindByStudent(studentID)
	if err != nil {
		return nil, err
	}

	quizzes := make([]model.Quiz, 0, len(assignments))
	for _, a := range assignments {
		q, err := s.Quizzes.FindByID(a.QuizID)
		if err != nil {
			continue
		}
		quizzes = append(quizzes, *q)
	}
	return quizzes, nil
}

func (s *AssignmentService) IsAssigned(quizID, studentID string) (bool, error) {
	return s.Assignments.Exists(quizID, studentID)
}

func (s *AssignmentService) StudentsForQuiz(quizID string) ([]model.QuizAssignment, error) {
	return s.Assignments.FindByQuiz(quizID)
}
