package service

import (
	"skillforge_backend/internal/model"
	"skillforge_backend/internal/quiz"
	"skillforge_backend/internal/repository"
)

type reportAttemptStore interface {
	FindByStudent(studentID string) ([]model.QuizAttempt, error)
	FindByQuiz(quizID string) ([]model.QuizAttempt, error)
}

type reportProgressStore interface {
	ViewedMaterialIDs(studentID, courseID string) ([]string, error)
}

type reportCourseStore interface {
	FindByID(id string) (*model.Course, error)
	FindAll() ([]model.Course, error)
}

type reportQuizStore interface {
	FindByCreator(userID string) ([]model.Quiz, error)
}

type reportAssignmentStore interface {
	FindByStudent(studentID string) ([]model.QuizAssignment, error)
}

// ReportService computes the dashboard aggregates. All percentage math lives
// in the quiz package; this layer only gathers rows.
type ReportService struct {
	Attempts    reportAttemptStore
	Progress    reportProgressStore
	Courses     reportCourseStore
	Quizzes     reportQuizStore
	Assignments reportAssignmentStore
}

func NewReportService(attempts reportAttemptStore, progress reportProgressStore, courses reportCourseStore, quizzes reportQuizStore, assignments reportAssignmentStore) *ReportService {
	return &ReportService{
		Attempts:    attempts,
		Progress:    progress,
		Courses:     courses,
		Quizzes:     quizzes,
		Assignments: assignments,
	}
}

type CourseCompletion struct {
	CourseID          string `json:"courseId"`
	CourseTitle       string `json:"courseTitle"`
	CompletionPercent int    `json:"completionPercent"`
}

type StudentDashboard struct {
	AverageScorePercent int                `json:"averageScorePercent"`
	AttemptCount        int                `json:"attemptCount"`
	AssignedQuizCount   int                `json:"assignedQuizCount"`
	PendingQuizCount    int                `json:"pendingQuizCount"`
	CourseCompletion    []CourseCompletion `json:"courseCompletion"`
}

func (s *ReportService) StudentDashboard(studentID string) (*StudentDashboard, error) {
	attempts, err := s.Attempts.FindByStudent(studentID)
	if err != nil {
		return nil, err
	}

	gradings := make([]quiz.Attempt, len(attempts))
	attempted := make(map[string]bool, len(attempts))
	for i, a := range attempts {
		gradings[i] = a.Grading()
		attempted[a.QuizID] = true
	}

	assignments, err := s.Assignments.FindByStudent(studentID)
	if err != nil {
		return nil, err
	}
	pending := 0
	for _, a := range assignments {
		if !attempted[a.QuizID] {
			pending++
		}
	}

	courses, err := s.Courses.FindAll()
	if err != nil {
		return nil, err
	}
	completion := make([]CourseCompletion, 0, len(courses))
	for _, course := range courses {
		viewedIDs, err := s.Progress.ViewedMaterialIDs(studentID, course.ID)
		if err != nil {
			return nil, err
		}
		viewed := make(map[string]bool, len(viewedIDs))
		for _, id := range viewedIDs {
			viewed[id] = true
		}
		completion = append(completion, CourseCompletion{
			CourseID:          course.ID,
			CourseTitle:       course.Title,
			CompletionPercent: quiz.MaterialCompletionPercent(course.MaterialIDs(), viewed),
		})
	}

	return &StudentDashboard{
		AverageScorePercent: quiz.AverageEffectiveScorePercent(gradings),
		AttemptCount:        len(attempts),
		AssignedQuizCount:   len(assignments),
		PendingQuizCount:    pending,
		CourseCompletion:    completion,
	}, nil
}

type QuizStats struct {
	QuizID              string `json:"quizId"`
	QuizTitle           string `json:"quizTitle"`
	AttemptCount        int    `json:"attemptCount"`
	UngradedCount       int    `json:"ungradedCount"`
	AverageScorePercent int    `json:"averageScorePercent"`
}

type MentorDashboard struct {
	QuizCount int         `json:"quizCount"`
	Quizzes   []QuizStats `json:"quizzes"`
}

func (s *ReportService) MentorDashboard(mentorID string) (*MentorDashboard, error) {
	quizzes, err := s.Quizzes.FindByCreator(mentorID)
	if err != nil {
		return nil, err
	}

	stats := make([]QuizStats, 0, len(quizzes))
	for _, q := range quizzes {
		attempts, err := s.Attempts.FindByQuiz(q.ID)
		if err != nil {
			return nil, err
		}
		gradings := make([]quiz.Attempt, len(attempts))
		ungraded := 0
		for i, a := range attempts {
			gradings[i] = a.Grading()
			if a.GradedAt == nil {
				ungraded++
			}
		}
		stats = append(stats, QuizStats{
			QuizID:              q.ID,
			QuizTitle:           q.Title,
			AttemptCount:        len(attempts),
			UngradedCount:       ungraded,
			AverageScorePercent: quiz.AverageEffectiveScorePercent(gradings),
		})
	}

	return &MentorDashboard{
		QuizCount: len(quizzes),
		Quizzes:   stats,
	}, nil
}

// AdminDashboard is assembled from raw table counts; it bypasses the store
// interfaces because nothing in it needs domain math.
type AdminDashboard struct {
	StudentCount  int64 `json:"studentCount"`
	MentorCount   int64 `json:"mentorCount"`
	CourseCount   int64 `json:"courseCount"`
	QuizCount     int64 `json:"quizCount"`
	AttemptCount  int64 `json:"attemptCount"`
	UngradedCount int64 `json:"ungradedCount"`
}

func AdminDashboardCounts(users *repository.UserRepository, courses *repository.CourseRepository, quizzes *repository.QuizRepository, attempts *repository.AttemptRepository) (*AdminDashboard, error) {
	d := &AdminDashboard{}
	var err error
	if d.StudentCount, err = users.CountByRole(model.Student); err != nil {
		return nil, err
	}
	if d.MentorCount, err = users.CountByRole(model.Mentor); err != nil {
		return nil, err
	}
	if d.CourseCount, err = courses.Count(); err != nil {
		return nil, err
	}
	if d.QuizCount, err = quizzes.Count(); err != nil {
		return nil, err
	}
	if d.AttemptCount, err = attempts.Count(); err != nil {
		return nil, err
	}
	if d.UngradedCount, err = attempts.CountUngraded(); err != nil {
		return nil, err
	}
	return d, nil
}
