package repository

import (
	"skillforge_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) FindByID(id string) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.First(&attempt, "id = ?", id).Error
	return &attempt, err
}

func (r *AttemptRepository) FindByQuiz(quizID string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("quiz_id = ?", quizID).Order("submitted_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) FindByStudent(studentID string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("student_id = ?", studentID).Order("submitted_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) FindByQuizAndStudent(quizID, studentID string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("quiz_id = ? AND student_id = ?", quizID, studentID).
		Order("submitted_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) FindByQuizzes(quizIDs []string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	if len(quizIDs) == 0 {
		return attempts, nil
	}
	err := r.DB.Where("quiz_id IN ?", quizIDs).Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) Update(attempt *model.QuizAttempt) error {
	return r.DB.Save(attempt).Error
}

func (r *AttemptRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizAttempt{}).Count(&count).Error
	return count, err
}

func (r *AttemptRepository) CountUngraded() (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizAttempt{}).Where("graded_at IS NULL").Count(&count).Error
	return count, err
}
