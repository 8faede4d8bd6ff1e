package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileHistory represents a record of profile changes
type ProfileHistory struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey"`
	UserID    int64     `gorm:"index;not null"`
	Field     string    `gorm:"not null"` // The field that was changed
	OldValue  string    `gorm:"type:text"`
	NewValue  string    `gorm:"type:text"`
	ChangedAt time.Time `gorm:"not null"`
	ChangedBy string    `gorm:"not null"` // Username or "system" for derived fields
}

// TableName specifies the table name for ProfileHistory
func (ProfileHistory) TableName() string {
	return "profile_history"
}

func (h *ProfileHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
