package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

func TestPercentRejectsNonPositiveGoal(t *testing.T) {
	_, err := Percent(100, 0)
	assert.ErrorIs(t, err, ErrGoalUndefined)

	_, err = Percent(100, -5)
	assert.ErrorIs(t, err, ErrGoalUndefined)

	pct, err := Percent(750, 2500)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, pct, 1e-9)
}

func TestEvaluate(t *testing.T) {
	e := NewProgressEvaluator(nil)
	report, err := e.Evaluate(testProfile(1), 750, 1750, 250)
	require.NoError(t, err)

	assert.InDelta(t, 30.0, report.WaterProgressPct, 1e-9)
	assert.Equal(t, 1750.0, report.WaterRemaining)
	assert.Equal(t, 1500.0, report.CaloriesBalance)
	assert.InDelta(t, 75.0, report.CaloriesProgressPct, 1e-9)
	assert.Equal(t, 500.0, report.CaloriesRemaining)
}

func TestEvaluateClampsRemaining(t *testing.T) {
	e := NewProgressEvaluator(nil)
	report, err := e.Evaluate(testProfile(1), 3000, 2500, 0)
	require.NoError(t, err)
	assert.Zero(t, report.WaterRemaining)
	assert.Zero(t, report.CaloriesRemaining)
	assert.InDelta(t, 120.0, report.WaterProgressPct, 1e-9)
}

func TestEvaluateZeroGoal(t *testing.T) {
	profile := testProfile(1)
	profile.WaterGoal = 0
	_, err := NewProgressEvaluator(nil).Evaluate(profile, 500, 0, 0)
	assert.ErrorIs(t, err, ErrGoalUndefined)
}

func TestRecommend(t *testing.T) {
	noon := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC)
	night := time.Date(2024, 6, 10, 21, 0, 0, 0, time.UTC)
	yesterday := &models.WorkoutLog{Timestamp: noon.AddDate(0, 0, -1)}
	lightFoods := "Cucumber (15 kcal/100g), Celery (16 kcal/100g), Tomato (18 kcal/100g)"

	tests := []struct {
		name     string
		water    float64
		calories float64
		last     *models.WorkoutLog
		now      time.Time
		expected []string
	}{
		{
			name:     "low water comes first",
			water:    500,
			calories: 1000,
			last:     yesterday,
			now:      noon,
			expected: []string{AdviceDrinkNow},
		},
		{
			name:     "water between half and eighty percent",
			water:    1500,
			calories: 1000,
			last:     yesterday,
			now:      noon,
			expected: []string{AdviceWaterGood},
		},
		{
			name:     "near calorie limit before eight",
			water:    2400,
			calories: 1900,
			last:     yesterday,
			now:      noon,
			expected: []string{fmt.Sprintf(AdviceNearLimit, lightFoods)},
		},
		{
			name:     "near calorie limit late at night is silent",
			water:    2400,
			calories: 1900,
			last:     yesterday,
			now:      night,
			expected: []string{AdviceAllGood},
		},
		{
			name:     "few calories in the evening",
			water:    2400,
			calories: 500,
			last:     yesterday,
			now:      evening,
			expected: []string{AdviceFullDinner},
		},
		{
			name:     "few calories at noon is fine",
			water:    2400,
			calories: 500,
			last:     yesterday,
			now:      noon,
			expected: []string{AdviceAllGood},
		},
		{
			name:     "long workout gap",
			water:    2400,
			calories: 1000,
			last:     &models.WorkoutLog{Timestamp: noon.AddDate(0, 0, -3)},
			now:      noon,
			expected: []string{fmt.Sprintf(AdviceExercise, 3)},
		},
		{
			name:     "two day gap is tolerated",
			water:    2400,
			calories: 1000,
			last:     &models.WorkoutLog{Timestamp: noon.AddDate(0, 0, -2)},
			now:      noon,
			expected: []string{AdviceAllGood},
		},
		{
			name:     "never worked out",
			water:    2400,
			calories: 1000,
			now:      noon,
			expected: []string{AdviceNoWorkout},
		},
		{
			name:     "all rules fire in order",
			water:    100,
			calories: 1950,
			now:      noon,
			expected: []string{AdviceDrinkNow, fmt.Sprintf(AdviceNearLimit, lightFoods), AdviceNoWorkout},
		},
	}

	e := NewProgressEvaluator(&stubCatalog{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice, err := e.Recommend(context.Background(), testProfile(1), tt.water, tt.calories, tt.last, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, advice)
		})
	}
}

func TestRecommendZeroCalorieGoal(t *testing.T) {
	profile := testProfile(1)
	profile.CalorieGoal = 0
	_, err := NewProgressEvaluator(nil).Recommend(context.Background(), profile, 1000, 1000, nil, time.Now())
	assert.ErrorIs(t, err, ErrGoalUndefined)
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysSince(now.Add(-23*time.Hour), now))
	assert.Equal(t, 1, DaysSince(now.Add(-25*time.Hour), now))
	assert.Equal(t, 0, DaysSince(now.Add(time.Hour), now))
}

func TestTrend(t *testing.T) {
	start := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	days := make([]types.DailySummary, WeekDays)
	for i := range days {
		days[i].Date = start.AddDate(0, 0, i)
	}
	days[0].Water = 1000
	days[0].CaloriesConsumed = 1400
	days[3].Water = 2600
	days[3].Workouts = 2
	days[3].CaloriesBurned = 500
	days[6].Water = 2000
	days[6].CaloriesConsumed = 2100

	trend := NewProgressEvaluator(nil).Trend(days, testProfile(1))
	assert.True(t, trend.From.Equal(start))
	assert.True(t, trend.To.Equal(start.AddDate(0, 0, 6)))
	assert.InDelta(t, 800.0, trend.AvgWater, 1e-9)
	assert.InDelta(t, 500.0, trend.AvgCalories, 1e-9)
	assert.Equal(t, 2, trend.TotalWorkouts)
	assert.Equal(t, 3, trend.ActiveDays)
	assert.Equal(t, 1, trend.WaterGoalDays)
	assert.Equal(t, 1000.0, trend.WaterDelta)
	assert.Equal(t, 700.0, trend.CaloriesDelta)
}

func TestTrendEmpty(t *testing.T) {
	assert.Equal(t, types.WeeklyTrend{}, NewProgressEvaluator(nil).Trend(nil, nil))
}

type memArchive struct {
	key  string
	body []byte
	err  error
}

func (a *memArchive) Put(ctx context.Context, key string, body []byte) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.key = key
	a.body = body
	return "https://reports.example/" + key, nil
}

func setupProgressService(t *testing.T, archive ReportArchive) (*ProgressService, *ProfileService, *GormLogStore, time.Time) {
	t.Helper()
	db := newTestDB(t)
	profiles := NewProfileService(db, nil, 0)
	store := NewGormLogStore(db)
	ledger := NewActivityLedger(store, moscow)
	now := time.Date(2024, 6, 10, 14, 0, 0, 0, moscow)
	svc := NewProgressService(profiles, ledger, NewProgressEvaluator(NewNutritionService("", time.Second)), archive, moscow).
		WithClock(func() time.Time { return now })
	return svc, profiles, store, now
}

func TestProgressServiceRequiresProfile(t *testing.T) {
	svc, _, _, _ := setupProgressService(t, nil)
	ctx := context.Background()

	_, err := svc.Today(ctx, 5)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	_, err = svc.Weekly(ctx, 5)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	_, err = svc.Recommendations(ctx, 5)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProgressServiceToday(t *testing.T) {
	svc, profiles, store, now := setupProgressService(t, nil)
	ctx := context.Background()
	_, err := profiles.Upsert(ctx, testProfile(1))
	require.NoError(t, err)

	_, err = store.AppendWater(ctx, &models.WaterLog{UserID: 1, Amount: 250, Timestamp: now.Add(-2 * time.Hour)})
	require.NoError(t, err)
	_, err = store.AppendWater(ctx, &models.WaterLog{UserID: 1, Amount: 500, Timestamp: now.Add(-time.Hour)})
	require.NoError(t, err)

	report, err := svc.Today(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 750.0, report.WaterToday)
	assert.InDelta(t, 30.0, report.WaterProgressPct, 1e-9)
	assert.True(t, report.Date.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, moscow)))
}

func TestProgressServiceRecommendations(t *testing.T) {
	svc, profiles, _, _ := setupProgressService(t, nil)
	ctx := context.Background()
	_, err := profiles.Upsert(ctx, testProfile(1))
	require.NoError(t, err)

	advice, err := svc.Recommendations(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{AdviceDrinkNow, AdviceNoWorkout}, advice)
}

func TestExportWeekly(t *testing.T) {
	archive := &memArchive{}
	svc, profiles, _, _ := setupProgressService(t, archive)
	ctx := context.Background()
	_, err := profiles.Upsert(ctx, testProfile(1))
	require.NoError(t, err)

	url, err := svc.ExportWeekly(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "reports/1/weekly-2024-06-10.json", archive.key)
	assert.Equal(t, "https://reports.example/reports/1/weekly-2024-06-10.json", url)

	var report types.WeeklyReport
	require.NoError(t, json.Unmarshal(archive.body, &report))
	assert.Len(t, report.Days, WeekDays)
	assert.Equal(t, int64(1), report.UserID)
}

func TestExportWeeklyWithoutArchive(t *testing.T) {
	svc, _, _, _ := setupProgressService(t, nil)
	_, err := svc.ExportWeekly(context.Background(), 1)
	assert.ErrorIs(t, err, ErrArchiveUnavailable)
}

func TestExportWeeklyArchiveFailure(t *testing.T) {
	svc, profiles, _, _ := setupProgressService(t, &memArchive{err: errStub})
	ctx := context.Background()
	_, err := profiles.Upsert(ctx, testProfile(1))
	require.NoError(t, err)

	_, err = svc.ExportWeekly(ctx, 1)
	assert.ErrorIs(t, err, errStub)
}
