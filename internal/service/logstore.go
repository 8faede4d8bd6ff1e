package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/models"
)

// GormLogStore is the LogStore backed by the relational database.
type GormLogStore struct {
	db *gorm.DB
}

// Ensure GormLogStore implements LogStore
var _ LogStore = (*GormLogStore)(nil)

// NewGormLogStore creates a new GormLogStore instance
func NewGormLogStore(db *gorm.DB) *GormLogStore {
	return &GormLogStore{db: db}
}

func (s *GormLogStore) AppendWater(ctx context.Context, entry *models.WaterLog) (uuid.UUID, error) {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to append water log: %w", err)
	}
	return entry.ID, nil
}

func (s *GormLogStore) AppendFood(ctx context.Context, entry *models.FoodLog) (uuid.UUID, error) {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to append food log: %w", err)
	}
	return entry.ID, nil
}

func (s *GormLogStore) AppendWorkout(ctx context.Context, entry *models.WorkoutLog) (uuid.UUID, error) {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to append workout log: %w", err)
	}
	return entry.ID, nil
}

func (s *GormLogStore) QueryWater(ctx context.Context, userID int64, from, to time.Time) ([]models.WaterLog, error) {
	var entries []models.WaterLog
	if err := s.window(ctx, userID, from, to).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to query water logs: %w", err)
	}
	return entries, nil
}

func (s *GormLogStore) QueryFood(ctx context.Context, userID int64, from, to time.Time) ([]models.FoodLog, error) {
	var entries []models.FoodLog
	if err := s.window(ctx, userID, from, to).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to query food logs: %w", err)
	}
	return entries, nil
}

func (s *GormLogStore) QueryWorkouts(ctx context.Context, userID int64, from, to time.Time) ([]models.WorkoutLog, error) {
	var entries []models.WorkoutLog
	if err := s.window(ctx, userID, from, to).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to query workout logs: %w", err)
	}
	return entries, nil
}

func (s *GormLogStore) LastWorkout(ctx context.Context, userID int64) (*models.WorkoutLog, error) {
	var entry models.WorkoutLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last workout: %w", err)
	}
	return &entry, nil
}

// window scopes a query to one user and a half-open UTC time range.
func (s *GormLogStore) window(ctx context.Context, userID int64, from, to time.Time) *gorm.DB {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, from.UTC(), to.UTC()).
		Order("timestamp ASC")
}
