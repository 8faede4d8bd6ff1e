package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidInput is returned for out-of-range values supplied by a caller.
var ErrInvalidInput = errors.New("invalid input")

// TokenRequest is sent by the chat gateway to obtain a token for a chat user.
type TokenRequest struct {
	UserID   int64  `json:"user_id" binding:"required"`
	Username string `json:"username"`
}

// LogWaterRequest represents the request body for logging water
type LogWaterRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0,lte=5000"`
}

// LogFoodRequest logs a meal either from a previous search session
// (SearchID + Index) or from explicit per-100g nutrients.
type LogFoodRequest struct {
	SearchID *uuid.UUID `json:"search_id,omitempty"`
	Index    int        `json:"index" binding:"gte=0"`
	Grams    float64    `json:"grams" binding:"required,gt=0,lte=5000"`
	Food     *FoodItem  `json:"food,omitempty"`
}

// LogWorkoutRequest represents the request body for logging a workout
type LogWorkoutRequest struct {
	WorkoutType string `json:"workout_type" binding:"required,max=100"`
	Duration    int    `json:"duration" binding:"required,gte=1,lte=300"`
}

// WaterLogResponse is returned after a water append.
type WaterLogResponse struct {
	ID          uuid.UUID `json:"id"`
	Amount      float64   `json:"amount"`
	TodayTotal  float64   `json:"today_total"`
	WaterGoal   float64   `json:"water_goal"`
	ProgressPct float64   `json:"progress_pct"`
}

// FoodLogResponse is returned after a food append.
type FoodLogResponse struct {
	ID          uuid.UUID `json:"id"`
	FoodName    string    `json:"food_name"`
	Grams       float64   `json:"grams"`
	Calories    float64   `json:"calories"`
	TodayTotal  float64   `json:"today_total"`
	CalorieGoal float64   `json:"calorie_goal"`
}

// WorkoutLogResponse is returned after a workout append.
type WorkoutLogResponse struct {
	ID             uuid.UUID `json:"id"`
	WorkoutType    string    `json:"workout_type"`
	Duration       int       `json:"duration"`
	CaloriesBurned float64   `json:"calories_burned"`
	ExtraWater     float64   `json:"extra_water"`
	Timestamp      time.Time `json:"timestamp"`
}
