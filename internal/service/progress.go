package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

var (
	// ErrGoalUndefined is returned when a progress percentage would divide by
	// a zero or negative goal.
	ErrGoalUndefined = errors.New("goal must be positive to compute progress")
	// ErrArchiveUnavailable is returned when report export is not configured.
	ErrArchiveUnavailable = errors.New("report archive is not configured")
)

// Recommendation thresholds.
const (
	waterLowPct        = 50.0
	waterGoodPct       = 80.0
	caloriesNearPct    = 90.0
	caloriesLowPct     = 40.0
	lateSnackHour      = 20
	dinnerHour         = 15
	workoutGapDays     = 2
	lowCalorieListSize = 3
)

// Advice texts, in the order they can appear.
const (
	AdviceDrinkNow   = "You are drinking too little water. Try a glass right now!"
	AdviceWaterGood  = "Water: good progress. Keep drinking regularly."
	AdviceNearLimit  = "You are close to your daily calorie limit. Consider light foods: %s"
	AdviceFullDinner = "You still have plenty of calories left today. Consider a full dinner."
	AdviceExercise   = "It has been %d days since your last workout. Time to get moving!"
	AdviceNoWorkout  = "You haven't worked out today. How about a 15-minute warm-up?"
	AdviceAllGood    = "You are doing great! Keep it up."
)

// ProgressEvaluator turns goals and daily totals into reports and advice.
type ProgressEvaluator struct {
	foods FoodCatalog
}

// NewProgressEvaluator creates an evaluator. foods may be nil, in which case
// the near-limit advice carries no suggestions.
func NewProgressEvaluator(foods FoodCatalog) *ProgressEvaluator {
	return &ProgressEvaluator{foods: foods}
}

// Percent returns part/goal×100, or ErrGoalUndefined for goal <= 0.
func Percent(part, goal float64) (float64, error) {
	if goal <= 0 {
		return 0, ErrGoalUndefined
	}
	return part / goal * 100, nil
}

// Evaluate builds today's progress report for profile.
func (e *ProgressEvaluator) Evaluate(profile *models.Profile, waterToday, consumedToday, burnedToday float64) (*types.ProgressReport, error) {
	waterPct, err := Percent(waterToday, profile.WaterGoal)
	if err != nil {
		return nil, fmt.Errorf("water progress: %w", err)
	}
	balance := consumedToday - burnedToday
	caloriesPct, err := Percent(balance, profile.CalorieGoal)
	if err != nil {
		return nil, fmt.Errorf("calorie progress: %w", err)
	}

	return &types.ProgressReport{
		WaterToday:          waterToday,
		WaterGoal:           profile.WaterGoal,
		WaterRemaining:      math.Max(0, profile.WaterGoal-waterToday),
		WaterProgressPct:    waterPct,
		CaloriesConsumed:    consumedToday,
		CaloriesBurned:      burnedToday,
		CaloriesBalance:     balance,
		CalorieGoal:         profile.CalorieGoal,
		CaloriesRemaining:   math.Max(0, profile.CalorieGoal-balance),
		CaloriesProgressPct: caloriesPct,
	}, nil
}

// Recommend returns advice ordered water, food timing, workout recency. now is
// the caller's local time and drives the time-of-day rules.
func (e *ProgressEvaluator) Recommend(ctx context.Context, profile *models.Profile, waterToday, caloriesToday float64, lastWorkout *models.WorkoutLog, now time.Time) ([]string, error) {
	waterPct, err := Percent(waterToday, profile.WaterGoal)
	if err != nil {
		return nil, fmt.Errorf("water progress: %w", err)
	}
	caloriesPct, err := Percent(caloriesToday, profile.CalorieGoal)
	if err != nil {
		return nil, fmt.Errorf("calorie progress: %w", err)
	}

	var advice []string

	switch {
	case waterPct < waterLowPct:
		advice = append(advice, AdviceDrinkNow)
	case waterPct < waterGoodPct:
		advice = append(advice, AdviceWaterGood)
	}

	hour := now.Hour()
	switch {
	case caloriesPct > caloriesNearPct && hour < lateSnackHour:
		advice = append(advice, fmt.Sprintf(AdviceNearLimit, strings.Join(e.lightFoods(ctx), ", ")))
	case caloriesPct < caloriesLowPct && hour > dinnerHour:
		advice = append(advice, AdviceFullDinner)
	}

	if lastWorkout != nil {
		if days := DaysSince(lastWorkout.Timestamp, now); days > workoutGapDays {
			advice = append(advice, fmt.Sprintf(AdviceExercise, days))
		}
	} else {
		advice = append(advice, AdviceNoWorkout)
	}

	if len(advice) == 0 {
		advice = append(advice, AdviceAllGood)
	}
	return advice, nil
}

func (e *ProgressEvaluator) lightFoods(ctx context.Context) []string {
	if e.foods == nil {
		return nil
	}
	foods := e.foods.LowCalorieSuggestions(ctx)
	if len(foods) > lowCalorieListSize {
		foods = foods[:lowCalorieListSize]
	}
	return foods
}

// DaysSince counts whole elapsed days between then and now; never negative.
func DaysSince(then, now time.Time) int {
	d := now.Sub(then)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

// Trend summarises a window of daily summaries against profile's goals.
func (e *ProgressEvaluator) Trend(days []types.DailySummary, profile *models.Profile) types.WeeklyTrend {
	var trend types.WeeklyTrend
	if len(days) == 0 {
		return trend
	}
	first, last := days[0], days[len(days)-1]
	trend.From = first.Date
	trend.To = last.Date

	var water, consumed, burned float64
	for _, d := range days {
		water += d.Water
		consumed += d.CaloriesConsumed
		burned += d.CaloriesBurned
		trend.TotalWorkouts += d.Workouts
		if d.Water > 0 || d.CaloriesConsumed > 0 || d.Workouts > 0 {
			trend.ActiveDays++
		}
		if profile != nil && profile.WaterGoal > 0 && d.Water >= profile.WaterGoal {
			trend.WaterGoalDays++
		}
	}
	n := float64(len(days))
	trend.AvgWater = water / n
	trend.AvgCalories = consumed / n
	trend.AvgCaloriesBurned = burned / n
	trend.WaterDelta = last.Water - first.Water
	trend.CaloriesDelta = last.CaloriesConsumed - first.CaloriesConsumed
	trend.CaloriesBurnedDelta = last.CaloriesBurned - first.CaloriesBurned
	return trend
}

// ProgressService answers report requests for one user at a time.
type ProgressService struct {
	profiles  ProfileStore
	ledger    IActivityLedger
	evaluator *ProgressEvaluator
	archive   ReportArchive
	now       func() time.Time
}

// Ensure ProgressService implements IProgressService
var _ IProgressService = (*ProgressService)(nil)

// NewProgressService creates a new ProgressService instance. archive may be
// nil when report export is disabled.
func NewProgressService(profiles ProfileStore, ledger IActivityLedger, evaluator *ProgressEvaluator, archive ReportArchive, loc *time.Location) *ProgressService {
	if loc == nil {
		loc = time.Local
	}
	return &ProgressService{
		profiles:  profiles,
		ledger:    ledger,
		evaluator: evaluator,
		archive:   archive,
		now:       func() time.Time { return time.Now().In(loc) },
	}
}

// WithClock overrides the time source; used by tests.
func (s *ProgressService) WithClock(now func() time.Time) *ProgressService {
	s.now = now
	return s
}

func (s *ProgressService) profile(ctx context.Context, userID int64) (*models.Profile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Today reports progress for the current calendar day.
func (s *ProgressService) Today(ctx context.Context, userID int64) (*types.ProgressReport, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	day, err := s.ledger.DaySummary(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	report, err := s.evaluator.Evaluate(profile, day.Water, day.CaloriesConsumed, day.CaloriesBurned)
	if err != nil {
		return nil, err
	}
	report.Date = day.Date
	return report, nil
}

// Weekly returns the last seven days and their trend.
func (s *ProgressService) Weekly(ctx context.Context, userID int64) (*types.WeeklyReport, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	days, err := s.ledger.WeeklySummary(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}
	return &types.WeeklyReport{
		UserID: userID,
		Days:   days,
		Trend:  s.evaluator.Trend(days, profile),
	}, nil
}

// Recommendations returns ordered advice for the current moment.
func (s *ProgressService) Recommendations(ctx context.Context, userID int64) ([]string, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	water, err := s.ledger.SumWater(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	calories, err := s.ledger.SumCaloriesConsumed(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	last, err := s.ledger.LastWorkout(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.evaluator.Recommend(ctx, profile, water, calories, last, now)
}

// ExportWeekly stores the weekly report as JSON and returns its URL.
func (s *ProgressService) ExportWeekly(ctx context.Context, userID int64) (string, error) {
	if s.archive == nil {
		return "", ErrArchiveUnavailable
	}
	report, err := s.Weekly(ctx, userID)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal weekly report: %w", err)
	}
	key := fmt.Sprintf("reports/%d/weekly-%s.json", userID, report.Trend.To.Format(dayKeyLayout))
	url, err := s.archive.Put(ctx, key, body)
	if err != nil {
		return "", fmt.Errorf("failed to archive weekly report: %w", err)
	}
	log.Printf("[ProgressService] Archived weekly report for user %d at %s", userID, key)
	return url, nil
}
