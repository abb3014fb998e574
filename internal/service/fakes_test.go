package service

import (
	"fmt"

	"skillforge_backend/internal/model"

	"gorm.io/gorm"
)

// In-memory stand-ins for the gorm repositories.

type fakeQuizStore struct {
	quizzes map[string]*model.Quiz
}

func (f *fakeQuizStore) FindByID(id string) (*model.Quiz, error) {
	q, ok := f.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *q
	return &copied, nil
}

func (f *fakeQuizStore) FindByCreator(userID string) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, q := range f.quizzes {
		if q.CreatedBy == userID {
			out = append(out, *q)
		}
	}
	return out, nil
}

type fakeAttemptStore struct {
	attempts []*model.QuizAttempt
}

func (f *fakeAttemptStore) Create(attempt *model.QuizAttempt) error {
	if attempt.ID == "" {
		attempt.ID = fmt.Sprintf("attempt-%d", len(f.attempts)+1)
	}
	copied := *attempt
	f.attempts = append(f.attempts, &copied)
	return nil
}

func (f *fakeAttemptStore) FindByID(id string) (*model.QuizAttempt, error) {
	for _, a := range f.attempts {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttemptStore) FindByQuiz(quizID string) ([]model.QuizAttempt, error) {
	var out []model.QuizAttempt
	for _, a := range f.attempts {
		if a.QuizID == quizID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAttemptStore) FindByStudent(studentID string) ([]model.QuizAttempt, error) {
	var out []model.QuizAttempt
	for _, a := range f.attempts {
		if a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAttemptStore) FindByQuizAndStudent(quizID, studentID string) ([]model.QuizAttempt, error) {
	var out []model.QuizAttempt
	for _, a := range f.attempts {
		if a.QuizID == quizID && a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAttemptStore) Update(attempt *model.QuizAttempt) error {
	for i, a := range f.attempts {
		if a.ID == attempt.ID {
			copied := *attempt
			f.attempts[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeAssignmentStore struct {
	assignments []*model.QuizAssignment
}

func (f *fakeAssignmentStore) Create(assignment *model.QuizAssignment) error {
	if assignment.ID == "" {
		assignment.ID = fmt.Sprintf("assignment-%d", len(f.assignments)+1)
	}
	copied := *assignment
	f.assignments = append(f.assignments, &copied)
	return nil
}

func (f *fakeAssignmentStore) Exists(quizID, studentID string) (bool, error) {
	for _, a := range f.assignments {
		if a.QuizID == quizID && a.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAssignmentStore) FindByStudent(studentID string) ([]model.QuizAssignment, error) {
	var out []model.QuizAssignment
	for _, a := range f.assignments {
		if a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentStore) FindByQuiz(quizID string) ([]model.QuizAssignment, error) {
	var out []model.QuizAssignment
	for _, a := range f.assignments {
		if a.QuizID == quizID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeUserStore struct {
	users map[string]*model.User
}

func (f *fakeUserStore) FindByID(id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

type fakeCourseStore struct {
	courses map[string]*model.Course
}

func (f *fakeCourseStore) FindByID(id string) (*model.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCourseStore) FindAll() ([]model.Course, error) {
	var out []model.Course
	for _, c := range f.courses {
		out = append(out, *c)
	}
	return out, nil
}

type fakeProgressStore struct {
	viewed map[string][]string // studentID+courseID -> material ids
}

func (f *fakeProgressStore) ViewedMaterialIDs(studentID, courseID string) ([]string, error) {
	return f.viewed[studentID+"/"+courseID], nil
}
