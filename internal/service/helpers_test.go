package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection would otherwise get its own empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.ProfileHistory{},
		&models.WaterLog{},
		&models.FoodLog{},
		&models.WorkoutLog{},
	))
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func testProfile(userID int64) *models.Profile {
	return &models.Profile{
		UserID:        userID,
		Username:      "tester",
		Weight:        70,
		Height:        175,
		Age:           30,
		Gender:        types.GenderMale,
		ActivityLevel: types.ActivitySedentary,
		City:          "Moscow",
		Temperature:   20,
		WaterGoal:     2500,
		CalorieGoal:   2000,
	}
}

type stubTemperature struct {
	temp  float64
	err   error
	calls int
}

func (s *stubTemperature) Temperature(ctx context.Context, city string) (float64, error) {
	s.calls++
	return s.temp, s.err
}

// blockingTemperature waits until the caller's deadline.
type blockingTemperature struct{}

func (blockingTemperature) Temperature(ctx context.Context, city string) (float64, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

type stubCatalog struct {
	items []types.FoodItem
	err   error
}

func (s *stubCatalog) Search(ctx context.Context, query string) ([]types.FoodItem, error) {
	return s.items, s.err
}

func (s *stubCatalog) LowCalorieSuggestions(ctx context.Context) []string {
	return lowCalorieFoods
}

var errStub = errors.New("stub failure")
