package repository

import (
	"errors"

	"skillforge_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(assignment *model.QuizAssignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) Exists(quizID, studentID string) (bool, error) {
	var assignment model.QuizAssignment
	err := r.DB.Where("quiz_id = ? AND student_id = ?", quizID, studentID).
		First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *AssignmentRepository) FindByStudent(studentID string) ([]model.QuizAssignment, error) {
	var assignments []model.QuizAssignment
	err := r.DB.Where("student_id = ?", studentID).Order("assigned_at DESC").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) FindByQuiz(quizID string) ([]model.QuizAssignment, error) {
	var assignments []model.QuizAssignment
	err := r.DB.Where("quiz_id = ?", quizID).Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) Delete(quizID, studentID string) error {
	return r.DB.Where("quiz_id = ? AND student_id = ?", quizID, studentID).
		Delete(&model.QuizAssignment{}).Error
}
