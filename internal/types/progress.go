package types

import (
	"time"

	"github.com/google/uuid"
)

// DailySummary is the derived per-day activity total. It is never persisted.
type DailySummary struct {
	Date             time.Time `json:"date"`
	Water            float64   `json:"water"`
	CaloriesConsumed float64   `json:"calories_consumed"`
	CaloriesBurned   float64   `json:"calories_burned"`
	Workouts         int       `json:"workouts"`
}

// ProgressReport bundles today's figures against the stored goals.
type ProgressReport struct {
	Date             time.Time `json:"date"`
	WaterToday       float64   `json:"water_today"`
	WaterGoal        float64   `json:"water_goal"`
	WaterRemaining   float64   `json:"water_remaining"`
	WaterProgressPct float64   `json:"water_progress_pct"`

	CaloriesConsumed    float64 `json:"calories_consumed"`
	CaloriesBurned      float64 `json:"calories_burned"`
	CaloriesBalance     float64 `json:"calories_balance"`
	CalorieGoal         float64 `json:"calorie_goal"`
	CaloriesRemaining   float64 `json:"calories_remaining"`
	CaloriesProgressPct float64 `json:"calories_progress_pct"`
}

// WeeklyTrend summarises a 7-day window.
type WeeklyTrend struct {
	From                time.Time `json:"from"`
	To                  time.Time `json:"to"`
	AvgWater            float64   `json:"avg_water"`
	AvgCalories         float64   `json:"avg_calories"`
	AvgCaloriesBurned   float64   `json:"avg_calories_burned"`
	TotalWorkouts       int       `json:"total_workouts"`
	ActiveDays          int       `json:"active_days"`
	WaterGoalDays       int       `json:"water_goal_days"`
	WaterDelta          float64   `json:"water_delta"`
	CaloriesDelta       float64   `json:"calories_delta"`
	CaloriesBurnedDelta float64   `json:"calories_burned_delta"`
}

// WeeklyReport is the payload of the weekly endpoint and the archived snapshot.
type WeeklyReport struct {
	UserID int64          `json:"user_id"`
	Days   []DailySummary `json:"days"`
	Trend  WeeklyTrend    `json:"trend"`
}

// FoodItem is one catalog hit; nutrient values are per 100 g.
type FoodItem struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories" binding:"gte=0"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FoodSearchSession holds the results of one search so the user can pick by
// index in a follow-up request.
type FoodSearchSession struct {
	ID        uuid.UUID  `json:"id"`
	UserID    int64      `json:"user_id"`
	Query     string     `json:"query"`
	Items     []FoodItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
}
