package types

import (
	"time"

	"github.com/google/uuid"
)

// UpdateProfileRequest is the full profile submission from the dialogue.
// Every submission overwrites the derived goals.
type UpdateProfileRequest struct {
	Username      string        `json:"username"`
	Weight        float64       `json:"weight" binding:"required,gte=20,lte=300"`
	Height        float64       `json:"height" binding:"required,gte=100,lte=250"`
	Age           int           `json:"age" binding:"required,gte=10,lte=120"`
	Gender        Gender        `json:"gender" binding:"required,oneof=male female"`
	ActivityLevel ActivityLevel `json:"activity_level" binding:"required,oneof=sedentary light moderate active very_active"`
	City          string        `json:"city" binding:"required,max=100"`
}

// ProfileHistory represents a single changed profile field
type ProfileHistory struct {
	ID        uuid.UUID `json:"id"`
	UserID    int64     `json:"user_id"`
	Field     string    `json:"field"`
	OldValue  string    `json:"old_value"`
	NewValue  string    `json:"new_value"`
	ChangedAt time.Time `json:"changed_at"`
	ChangedBy string    `json:"changed_by"`
}

// ProfileResponse is returned after a profile submission.
type ProfileResponse struct {
	UserID             int64         `json:"user_id"`
	Username           string        `json:"username"`
	Weight             float64       `json:"weight"`
	Height             float64       `json:"height"`
	Age                int           `json:"age"`
	Gender             Gender        `json:"gender"`
	ActivityLevel      ActivityLevel `json:"activity_level"`
	City               string        `json:"city"`
	Temperature        float64       `json:"temperature"`
	TemperatureDefault bool          `json:"temperature_default"`
	WaterGoal          float64       `json:"water_goal"`
	CalorieGoal        float64       `json:"calorie_goal"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
