package repository

import (
	"skillforge_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(entry *model.ActivityLog) error {
	return r.DB.Create(entry).Error
}

func (r *ActivityRepository) FindRecent(limit int) ([]model.ActivityLog, error) {
	var entries []model.ActivityLog
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *ActivityRepository) FindByType(activityType string, limit int) ([]model.ActivityLog, error) {
	var entries []model.ActivityLog
	err := r.DB.Where("type = ?", activityType).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
