package service

import (
	"errors"
	"testing"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/util"
)

func newAssignmentFixture() (*AssignmentService, *fakeAssignmentStore) {
	quizzes := &fakeQuizStore{quizzes: map[string]*model.Quiz{"quiz-1": testQuiz()}}
	assignments := &fakeAssignmentStore{}

	student1 := &model.User{Role: model.Student}
	student1.ID = "student-1"
	student2 := &model.User{Role: model.Student}
	student2.ID = "student-2"
	mentor := &model.User{Role: model.Mentor}
	mentor.ID = "mentor-1"

	users := &fakeUserStore{users: map[string]*model.User{
		"student-1": student1,
		"student-2": student2,
		"mentor-1":  mentor,
	}}

	return NewAssignmentService(assignments, quizzes, users, nil), assignments
}

func TestAssignBulkBestEffort(t *testing.T) {
	svc, assignments := newAssignmentFixture()
	assignments.Create(&model.QuizAssignment{QuizID: "quiz-1", StudentID: "student-2"})

	result, err := svc.AssignBulk("quiz-1", "mentor-1", false, []string{
		"student-1", // fresh
		"student-1", // duplicate in the request
		"student-2", // already assigned
		"mentor-1",  // wrong role
		"ghost",     // unknown id
	})
	if err != nil {
		t.Fatalf("bulk assign: %v", err)
	}

	if len(result.Assigned) != 1 || result.Assigned[0] != "student-1" {
		t.Fatalf("assigned = %v, want [student-1]", result.Assigned)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "student-2" {
		t.Fatalf("skipped = %v, want [student-2]", result.Skipped)
	}
	if len(result.Failed) != 2 {
		t.Fatalf("failed = %v, want entries for mentor-1 and ghost", result.Failed)
	}

	// Re-running the same request assigns nothing new.
	again, err := svc.AssignBulk("quiz-1", "mentor-1", false, []string{"student-1", "student-2"})
	if err != nil {
		t.Fatalf("second bulk assign: %v", err)
	}
	if len(again.Assigned) != 0 || len(again.Skipped) != 2 {
		t.Fatalf("rerun assigned=%v skipped=%v, want all skipped", again.Assigned, again.Skipped)
	}
}

func TestAssignBulkAuthorization(t *testing.T) {
	svc, _ := newAssignmentFixture()

	if _, err := svc.AssignBulk("quiz-1", "mentor-2", false, []string{"student-1"}); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for foreign mentor, got %v", err)
	}
	if _, err := svc.AssignBulk("quiz-1", "admin-1", true, []string{"student-1"}); err != nil {
		t.Fatalf("admin should pass the ownership check: %v", err)
	}
	if _, err := svc.AssignBulk("quiz-unknown", "mentor-1", false, []string{"student-1"}); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestAssignedQuizzes(t *testing.T) {
	svc, assignments := newAssignmentFixture()
	assignments.Create(&model.QuizAssignment{QuizID: "quiz-1", StudentID: "student-1"})
	assignments.Create(&model.QuizAssignment{QuizID: "quiz-gone", StudentID: "student-1"})

	quizzes, err := svc.AssignedQuizzes("student-1")
	if err != nil {
		t.Fatalf("assigned quizzes: %v", err)
	}
	if len(quizzes) != 1 || quizzes[0].ID != "quiz-1" {
		t.Fatalf("got %v, want the one surviving quiz", quizzes)
	}
}
