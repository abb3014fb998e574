package service

import (
	"testing"

	"skillforge_backend/internal/model"
)

func TestStudentDashboardAggregation(t *testing.T) {
	course := &model.Course{
		Title: "Go Basics",
		Materials: model.MaterialList{
			{ID: "m1", Kind: model.MaterialVideo, Title: "Intro"},
			{ID: "m2", Kind: model.MaterialPDF, Title: "Notes"},
			{ID: "m3", Kind: model.MaterialVideo, Title: "Slices"},
			{ID: "m4", Kind: model.MaterialLink, Title: "Spec"},
		},
	}
	course.ID = "course-1"

	attempts := &fakeAttemptStore{}
	attempts.Create(&model.QuizAttempt{QuizID: "quiz-1", StudentID: "student-1", Score: 5, TotalPoints: 10})
	attempts.Create(&model.QuizAttempt{QuizID: "quiz-2", StudentID: "student-1", Score: 9, TotalPoints: 10})
	attempts.Create(&model.QuizAttempt{QuizID: "quiz-9", StudentID: "someone-else", Score: 1, TotalPoints: 10})

	assignments := &fakeAssignmentStore{}
	assignments.Create(&model.QuizAssignment{QuizID: "quiz-1", StudentID: "student-1"})
	assignments.Create(&model.QuizAssignment{QuizID: "quiz-2", StudentID: "student-1"})
	assignments.Create(&model.QuizAssignment{QuizID: "quiz-3", StudentID: "student-1"})

	svc := NewReportService(
		attempts,
		&fakeProgressStore{viewed: map[string][]string{"student-1/course-1": {"m1", "m2", "m3"}}},
		&fakeCourseStore{courses: map[string]*model.Course{"course-1": course}},
		&fakeQuizStore{quizzes: map[string]*model.Quiz{}},
		assignments,
	)

	dash, err := svc.StudentDashboard("student-1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	// 50% and 90% average to 70.
	if dash.AverageScorePercent != 70 {
		t.Fatalf("average = %d, want 70", dash.AverageScorePercent)
	}
	if dash.AttemptCount != 2 {
		t.Fatalf("attempt count = %d, want 2", dash.AttemptCount)
	}
	if dash.AssignedQuizCount != 3 || dash.PendingQuizCount != 1 {
		t.Fatalf("assigned=%d pending=%d, want 3/1", dash.AssignedQuizCount, dash.PendingQuizCount)
	}
	if len(dash.CourseCompletion) != 1 || dash.CourseCompletion[0].CompletionPercent != 75 {
		t.Fatalf("completion = %+v, want 75%% for course-1", dash.CourseCompletion)
	}
}

func TestStudentDashboardUsesOverriddenScores(t *testing.T) {
	override := 9
	attempts := &fakeAttemptStore{}
	attempts.Create(&model.QuizAttempt{QuizID: "quiz-1", StudentID: "student-1", Score: 5, TotalPoints: 10, OverriddenScore: &override})

	svc := NewReportService(
		attempts,
		&fakeProgressStore{},
		&fakeCourseStore{courses: map[string]*model.Course{}},
		&fakeQuizStore{quizzes: map[string]*model.Quiz{}},
		&fakeAssignmentStore{},
	)

	dash, err := svc.StudentDashboard("student-1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.AverageScorePercent != 90 {
		t.Fatalf("average = %d, want the overridden 90", dash.AverageScorePercent)
	}
}

func TestMentorDashboard(t *testing.T) {
	q := testQuiz()
	attempts := &fakeAttemptStore{}
	attempts.Create(&model.QuizAttempt{QuizID: "quiz-1", StudentID: "student-1", Score: 15, TotalPoints: 25})
	graded := &model.QuizAttempt{QuizID: "quiz-1", StudentID: "student-2", Score: 25, TotalPoints: 25}
	now := graded.SubmittedAt
	graded.GradedAt = &now
	attempts.Create(graded)

	svc := NewReportService(
		attempts,
		&fakeProgressStore{},
		&fakeCourseStore{courses: map[string]*model.Course{}},
		&fakeQuizStore{quizzes: map[string]*model.Quiz{"quiz-1": q}},
		&fakeAssignmentStore{},
	)

	dash, err := svc.MentorDashboard("mentor-1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.QuizCount != 1 || len(dash.Quizzes) != 1 {
		t.Fatalf("quiz count = %d, want 1", dash.QuizCount)
	}
	stats := dash.Quizzes[0]
	if stats.AttemptCount != 2 || stats.UngradedCount != 1 {
		t.Fatalf("attempts=%d ungraded=%d, want 2/1", stats.AttemptCount, stats.UngradedCount)
	}
	// 60% and 100% average to 80.
	if stats.AverageScorePercent != 80 {
		t.Fatalf("average = %d, want 80", stats.AverageScorePercent)
	}
}
