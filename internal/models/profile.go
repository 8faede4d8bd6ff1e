package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/types"
)

// Profile holds a chat user's body metrics and the goals derived from them.
type Profile struct {
	ID            uuid.UUID           `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID        int64               `gorm:"not null;uniqueIndex" json:"user_id"`
	Username      string              `gorm:"size:100" json:"username"`
	Weight        float64             `gorm:"not null" json:"weight"`
	Height        float64             `gorm:"not null" json:"height"`
	Age           int                 `gorm:"not null" json:"age"`
	Gender        types.Gender        `gorm:"size:10;not null;default:'male'" json:"gender"`
	ActivityLevel types.ActivityLevel `gorm:"size:20;not null;default:'moderate'" json:"activity_level"`
	City          string              `gorm:"size:100" json:"city"`
	Temperature   float64             `json:"temperature"`
	WaterGoal     float64             `gorm:"not null;default:2000" json:"water_goal"`
	CalorieGoal   float64             `gorm:"not null;default:2000" json:"calorie_goal"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate assigns an id when the caller did not.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
