package service

import (
	"errors"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/quiz"
	"skillforge_backend/internal/repository"
	"skillforge_backend/internal/util"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo   *repository.QuizRepository
	CourseRepo *repository.CourseRepository
	Activity   *ActivityService
}

func NewQuizService(quizRepo *repository.QuizRepository, courseRepo *repository.CourseRepository, activity *ActivityService) *QuizService {
	return &QuizService{
		QuizRepo:   quizRepo,
		CourseRepo: courseRepo,
		Activity:   activity,
	}
}

type QuizInput struct {
	CourseID   string          `json:"courseId" binding:"required"`
	Title      string          `json:"title" binding:"required"`
	Questions  []quiz.Question `json:"questions" binding:"required"`
	Difficulty string          `json:"difficulty"`
}

// Create validates the question set, assigns ids to questions that lack
// them, and persists the quiz. Difficulty defaults to the course's when not
// given.
func (s *QuizService) Create(creatorID string, isAdmin bool, input QuizInput) (*model.Quiz, error) {
	course, err := s.CourseRepo.FindByID(input.CourseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	if !isAdmin && course.MentorID != creatorID {
		return nil, util.ErrPermissionDenied
	}

	questions := make([]quiz.Question, len(input.Questions))
	copy(questions, input.Questions)
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = model.GenerateUUID()
		}
	}

	if err := quiz.ValidateQuestions(questions); err != nil {
		return nil, err
	}

	q := &model.Quiz{
		CourseID:   input.CourseID,
		Title:      input.Title,
		Questions:  questions,
		Difficulty: course.Difficulty,
		CreatedBy:  creatorID,
	}
	if input.Difficulty != "" {
		q.Difficulty = parseDifficulty(input.Difficulty)
	}

	if err := s.QuizRepo.Create(q); err != nil {
		return nil, err
	}

	s.Activity.Record(model.ActivityQuizCreate, "Quiz created: "+q.Title, map[string]interface{}{
		"quizId":   q.ID,
		"courseId": q.CourseID,
	})
	return q, nil
}

func (s *QuizService) GetByID(id string) (*model.Quiz, error) {
	q, err := s.QuizRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return q, err
}

func (s *QuizService) ListByCourse(courseID string) ([]model.Quiz, error) {
	return s.QuizRepo.FindByCourse(courseID)
}

func (s *QuizService) ListByCreator(creatorID string) ([]model.Quiz, error) {
	return s.QuizRepo.FindByCreator(creatorID)
}

func (s *QuizService) UpdateTitle(quizID, actorID string, isAdmin bool, title string) (*model.Quiz, error) {
	q, err := s.authorized(quizID, actorID, isAdmin)
	if err != nil {
		return nil, err
	}
	q.Title = title
	if err := s.QuizRepo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuizService) Delete(quizID, actorID string, isAdmin bool) error {
	if _, err := s.authorized(quizID, actorID, isAdmin); err != nil {
		return err
	}
	return s.QuizRepo.Delete(quizID)
}

func (s *QuizService) AddQuestion(quizID, actorID string, isAdmin bool, question quiz.Question) (*model.Quiz, error) {
	q, err := s.authorized(quizID, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	if question.ID == "" {
		question.ID = model.GenerateUUID()
	}
	updated, err := quiz.AddQuestion(q.Questions, question)
	if err != nil {
		return nil, err
	}
	q.Questions = updated
	if err := s.QuizRepo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuizService) RemoveQuestion(quizID, questionID, actorID string, isAdmin bool) (*model.Quiz, error) {
	q, err := s.authorized(quizID, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	updated, err := quiz.RemoveQuestion(q.Questions, questionID)
	if err != nil {
		return nil, err
	}
	q.Questions = updated
	if err := s.QuizRepo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuizService) ReorderQuestions(quizID, actorID string, isAdmin bool, newOrder []string) (*model.Quiz, error) {
	q, err := s.authorized(quizID, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	updated, err := quiz.ReorderQuestions(q.Questions, newOrder)
	if err != nil {
		return nil, err
	}
	q.Questions = updated
	if err := s.QuizRepo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuizService) UpdateQuestion(quizID, questionID, actorID string, isAdmin bool, patch quiz.QuestionPatch) (*model.Quiz, error) {
	q, err := s.authorized(quizID, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	updated, err := quiz.UpdateQuestion(q.Questions, questionID, patch)
	if err != nil {
		return nil, err
	}
	q.Questions = updated
	if err := s.QuizRepo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

// StripAnswers blanks the answer key for student-facing reads.
func StripAnswers(q *model.Quiz) *model.Quiz {
	stripped := *q
	stripped.Questions = make([]quiz.Question, len(q.Questions))
	copy(stripped.Questions, q.Questions)
	for i := range stripped.Questions {
		stripped.Questions[i].CorrectAnswer = ""
	}
	return &stripped
}

func (s *QuizService) authorized(quizID, actorID string, isAdmin bool) (*model.Quiz, error) {
	q, err := s.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && q.CreatedBy != actorID {
		return nil, util.ErrPermissionDenied
	}
	return q, nil
}
