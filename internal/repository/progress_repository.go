package repository

import (
	"errors"

	"skillforge_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) MarkViewed(progress *model.MaterialProgress) error {
	var existing model.MaterialProgress
	err := r.DB.Where("student_id = ? AND material_id = ?", progress.StudentID, progress.MaterialID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) ViewedMaterialIDs(studentID, courseID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.MaterialProgress{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Pluck("material_id", &ids).Error
	return ids, err
}

func (r *ProgressRepository) ViewedByStudent(studentID string) ([]model.MaterialProgress, error) {
	var entries []model.MaterialProgress
	err := r.DB.Where("student_id = ?", studentID).Find(&entries).Error
	return entries, err
}
