package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

// LogStore persists append-only log entries and answers time-window queries.
// Query windows are half-open [from, to); results are ordered by timestamp
// ascending.
type LogStore interface {
	AppendWater(ctx context.Context, entry *models.WaterLog) (uuid.UUID, error)
	AppendFood(ctx context.Context, entry *models.FoodLog) (uuid.UUID, error)
	AppendWorkout(ctx context.Context, entry *models.WorkoutLog) (uuid.UUID, error)

	QueryWater(ctx context.Context, userID int64, from, to time.Time) ([]models.WaterLog, error)
	QueryFood(ctx context.Context, userID int64, from, to time.Time) ([]models.FoodLog, error)
	QueryWorkouts(ctx context.Context, userID int64, from, to time.Time) ([]models.WorkoutLog, error)

	// LastWorkout returns nil, nil when the user never logged a workout.
	LastWorkout(ctx context.Context, userID int64) (*models.WorkoutLog, error)
}

// ProfileStore reads and writes profiles. Get returns nil, nil when the user
// has no profile yet.
type ProfileStore interface {
	Get(ctx context.Context, userID int64) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}

// TemperatureProvider resolves the current air temperature of a city in °C.
type TemperatureProvider interface {
	Temperature(ctx context.Context, city string) (float64, error)
}

// FoodCatalog looks up nutrition facts per 100 g.
type FoodCatalog interface {
	Search(ctx context.Context, query string) ([]types.FoodItem, error)
	LowCalorieSuggestions(ctx context.Context) []string
}

// SearchSessionStore keeps food search results between the search request and
// the follow-up selection.
type SearchSessionStore interface {
	Save(ctx context.Context, userID int64, query string, items []types.FoodItem) (*types.FoodSearchSession, error)
	Get(ctx context.Context, id uuid.UUID) (*types.FoodSearchSession, error)
}

// ReportArchive stores report snapshots and returns a download URL.
type ReportArchive interface {
	Put(ctx context.Context, key string, body []byte) (string, error)
}

// IActivityLedger aggregates log entries into time-windowed totals.
type IActivityLedger interface {
	SumWater(ctx context.Context, userID int64, date time.Time) (float64, error)
	SumCaloriesConsumed(ctx context.Context, userID int64, date time.Time) (float64, error)
	SumCaloriesBurned(ctx context.Context, userID int64, date time.Time) (float64, error)
	LastWorkout(ctx context.Context, userID int64) (*models.WorkoutLog, error)
	DaySummary(ctx context.Context, userID int64, date time.Time) (types.DailySummary, error)
	WeeklySummary(ctx context.Context, userID int64, endDate time.Time) ([]types.DailySummary, error)
}

// IProfileService defines the interface for profile operations
type IProfileService interface {
	ProfileStore
	SubmitProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) (*types.ProfileResponse, error)
	GetProfileHistory(ctx context.Context, userID int64) ([]*types.ProfileHistory, error)
}

// IActivityService appends log entries on behalf of a user.
type IActivityService interface {
	LogWater(ctx context.Context, userID int64, amount float64) (*types.WaterLogResponse, error)
	LogFood(ctx context.Context, userID int64, req *types.LogFoodRequest) (*types.FoodLogResponse, error)
	LogWorkout(ctx context.Context, userID int64, req *types.LogWorkoutRequest) (*types.WorkoutLogResponse, error)
	SearchFood(ctx context.Context, userID int64, query string) (*types.FoodSearchSession, error)
}

// IProgressService builds the user-facing reports.
type IProgressService interface {
	Today(ctx context.Context, userID int64) (*types.ProgressReport, error)
	Weekly(ctx context.Context, userID int64) (*types.WeeklyReport, error)
	Recommendations(ctx context.Context, userID int64) ([]string, error)
	ExportWeekly(ctx context.Context, userID int64) (string, error)
}

// IAuthService issues and validates bearer tokens for chat users.
type IAuthService interface {
	VerifyGatewayKey(key string) error
	GenerateToken(userID int64, username string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}
