package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Log entries are append-only. Timestamps are stored in UTC; day bucketing is
// done by the reader in the configured timezone.

// WaterLog records one drink.
type WaterLog struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_water_logs_user_ts,priority:1" json:"user_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Timestamp time.Time `gorm:"not null;index:idx_water_logs_user_ts,priority:2" json:"timestamp"`
}

func (WaterLog) TableName() string {
	return "water_logs"
}

func (l *WaterLog) BeforeCreate(tx *gorm.DB) error {
	l.ID, l.Timestamp = newEntryIdentity(l.ID, l.Timestamp)
	return nil
}

// FoodLog records one eaten portion. Calories and macros are for the portion,
// not per 100 g.
type FoodLog struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      int64     `gorm:"not null;index:idx_food_logs_user_ts,priority:1" json:"user_id"`
	FoodName    string    `gorm:"size:200;not null" json:"food_name"`
	Calories    float64   `gorm:"not null" json:"calories"`
	ServingSize float64   `gorm:"not null" json:"serving_size"`
	Protein     *float64  `json:"protein,omitempty"`
	Carbs       *float64  `json:"carbs,omitempty"`
	Fat         *float64  `json:"fat,omitempty"`
	Timestamp   time.Time `gorm:"not null;index:idx_food_logs_user_ts,priority:2" json:"timestamp"`
}

func (FoodLog) TableName() string {
	return "food_logs"
}

func (l *FoodLog) BeforeCreate(tx *gorm.DB) error {
	l.ID, l.Timestamp = newEntryIdentity(l.ID, l.Timestamp)
	return nil
}

// WorkoutLog records one training session.
type WorkoutLog struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         int64     `gorm:"not null;index:idx_workout_logs_user_ts,priority:1" json:"user_id"`
	WorkoutType    string    `gorm:"size:100;not null" json:"workout_type"`
	Duration       int       `gorm:"not null" json:"duration"`
	CaloriesBurned float64   `gorm:"not null" json:"calories_burned"`
	Timestamp      time.Time `gorm:"not null;index:idx_workout_logs_user_ts,priority:2" json:"timestamp"`
}

func (WorkoutLog) TableName() string {
	return "workout_logs"
}

func (l *WorkoutLog) BeforeCreate(tx *gorm.DB) error {
	l.ID, l.Timestamp = newEntryIdentity(l.ID, l.Timestamp)
	return nil
}

func newEntryIdentity(id uuid.UUID, ts time.Time) (uuid.UUID, time.Time) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	if ts.IsZero() {
		ts = time.Now()
	}
	return id, ts.UTC()
}
