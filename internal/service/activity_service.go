package service

import (
	"context"
	"encoding/json"
	"time"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/repository"
	"skillforge_backend/pkg/logger"
	"skillforge_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const activityChannel = "activity_events"

// ActivityService persists platform events and fans them out to the live
// dashboard feed over redis pub/sub.
type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	Redis        *redis.Client
	ctx          context.Context
}

func NewActivityService(activityRepo *repository.ActivityRepository, rdb *redis.Client) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		Redis:        rdb,
		ctx:          context.Background(),
	}
}

// ActivityEvent is the wire shape pushed to websocket subscribers.
type ActivityEvent struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Record stores the event and publishes it. Failures are logged and
// swallowed so a broken feed never fails the triggering request.
func (s *ActivityService) Record(activityType, message string, metadata map[string]interface{}) {
	entry := &model.ActivityLog{
		Type:    activityType,
		Message: message,
	}
	if metadata != nil {
		if raw, err := json.Marshal(metadata); err == nil {
			entry.Metadata = raw
		}
	}

	if err := s.ActivityRepo.Create(entry); err != nil {
		logger.Log.Error("activity log insert failed", zap.String("type", activityType), zap.Error(err))
		return
	}

	monitoring.ActivityEventCounter.WithLabelValues(activityType).Inc()

	event := ActivityEvent{
		ID:        entry.ID,
		Type:      activityType,
		Message:   message,
		Metadata:  metadata,
		Timestamp: entry.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if s.Redis != nil {
		if err := s.Redis.Publish(s.ctx, activityChannel, payload).Err(); err != nil {
			logger.Log.Warn("activity publish failed", zap.Error(err))
		}
	}
}

func (s *ActivityService) Recent(limit int) ([]model.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.ActivityRepo.FindRecent(limit)
}

func (s *ActivityService) RecentByType(activityType string, limit int) ([]model.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.ActivityRepo.FindByType(activityType, limit)
}
