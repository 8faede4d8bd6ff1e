package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/pageza/fittrack/backend/internal/calculator"
	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

// ErrSearchSessionForbidden is returned when a user selects from another
// user's search session.
var ErrSearchSessionForbidden = errors.New("food search session belongs to another user")

// ActivityService appends water, food and workout entries.
type ActivityService struct {
	profiles ProfileStore
	store    LogStore
	ledger   IActivityLedger
	foods    FoodCatalog
	sessions SearchSessionStore
	timeout  time.Duration
	now      func() time.Time
}

// Ensure ActivityService implements IActivityService
var _ IActivityService = (*ActivityService)(nil)

// NewActivityService creates a new ActivityService instance
func NewActivityService(profiles ProfileStore, store LogStore, ledger IActivityLedger, foods FoodCatalog, sessions SearchSessionStore, timeout time.Duration) *ActivityService {
	return &ActivityService{
		profiles: profiles,
		store:    store,
		ledger:   ledger,
		foods:    foods,
		sessions: sessions,
		timeout:  timeout,
		now:      time.Now,
	}
}

// WithClock overrides the time source; used by tests.
func (s *ActivityService) WithClock(now func() time.Time) *ActivityService {
	s.now = now
	return s
}

func (s *ActivityService) profile(ctx context.Context, userID int64) (*models.Profile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// LogWater appends a water entry and reports today's total.
func (s *ActivityService) LogWater(ctx context.Context, userID int64, amount float64) (*types.WaterLogResponse, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: water amount must be positive", types.ErrInvalidInput)
	}
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.WaterGoal <= 0 {
		return nil, fmt.Errorf("%w: water goal is %v", ErrGoalUndefined, profile.WaterGoal)
	}

	now := s.now()
	id, err := s.store.AppendWater(ctx, &models.WaterLog{UserID: userID, Amount: amount, Timestamp: now})
	if err != nil {
		return nil, err
	}
	total, err := s.ledger.SumWater(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	pct, err := Percent(total, profile.WaterGoal)
	if err != nil {
		return nil, err
	}

	return &types.WaterLogResponse{
		ID:          id,
		Amount:      amount,
		TodayTotal:  total,
		WaterGoal:   profile.WaterGoal,
		ProgressPct: pct,
	}, nil
}

// SearchFood queries the catalog and stores the hits as a search session.
func (s *ActivityService) SearchFood(ctx context.Context, userID int64, query string) (*types.FoodSearchSession, error) {
	searchCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	items, err := s.foods.Search(searchCtx, query)
	if err != nil {
		return nil, err
	}
	return s.sessions.Save(ctx, userID, query, items)
}

// LogFood appends a food entry. The food comes either from a previous search
// session or directly from the request.
func (s *ActivityService) LogFood(ctx context.Context, userID int64, req *types.LogFoodRequest) (*types.FoodLogResponse, error) {
	if req.Grams <= 0 {
		return nil, fmt.Errorf("%w: serving size must be positive", types.ErrInvalidInput)
	}
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.selectFood(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	portion := calculator.FoodPortion(item, req.Grams)
	now := s.now()
	entry := &models.FoodLog{
		UserID:      userID,
		FoodName:    item.Name,
		Calories:    portion.Calories,
		ServingSize: req.Grams,
		Protein:     &portion.Protein,
		Carbs:       &portion.Carbs,
		Fat:         &portion.Fat,
		Timestamp:   now,
	}
	id, err := s.store.AppendFood(ctx, entry)
	if err != nil {
		return nil, err
	}
	total, err := s.ledger.SumCaloriesConsumed(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return &types.FoodLogResponse{
		ID:          id,
		FoodName:    item.Name,
		Grams:       req.Grams,
		Calories:    portion.Calories,
		TodayTotal:  total,
		CalorieGoal: profile.CalorieGoal,
	}, nil
}

func (s *ActivityService) selectFood(ctx context.Context, userID int64, req *types.LogFoodRequest) (types.FoodItem, error) {
	if req.SearchID != nil {
		session, err := s.sessions.Get(ctx, *req.SearchID)
		if err != nil {
			return types.FoodItem{}, err
		}
		if session.UserID != userID {
			return types.FoodItem{}, ErrSearchSessionForbidden
		}
		if req.Index < 0 || req.Index >= len(session.Items) {
			return types.FoodItem{}, fmt.Errorf("%w: food index %d out of range", types.ErrInvalidInput, req.Index)
		}
		return session.Items[req.Index], nil
	}
	if req.Food != nil {
		return *req.Food, nil
	}
	return types.FoodItem{}, fmt.Errorf("%w: search_id or food is required", types.ErrInvalidInput)
}

// LogWorkout appends a workout with calories estimated from the user's weight.
func (s *ActivityService) LogWorkout(ctx context.Context, userID int64, req *types.LogWorkoutRequest) (*types.WorkoutLogResponse, error) {
	if req.Duration < 1 || req.Duration > 300 {
		return nil, fmt.Errorf("%w: duration must be between 1 and 300 minutes", types.ErrInvalidInput)
	}
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	burned := calculator.WorkoutCalories(req.WorkoutType, req.Duration, profile.Weight)
	entry := &models.WorkoutLog{
		UserID:         userID,
		WorkoutType:    req.WorkoutType,
		Duration:       req.Duration,
		CaloriesBurned: burned,
		Timestamp:      s.now(),
	}
	id, err := s.store.AppendWorkout(ctx, entry)
	if err != nil {
		return nil, err
	}
	log.Printf("[ActivityService] User %d logged %s for %d min (%.0f kcal)", userID, req.WorkoutType, req.Duration, burned)

	return &types.WorkoutLogResponse{
		ID:             id,
		WorkoutType:    req.WorkoutType,
		Duration:       req.Duration,
		CaloriesBurned: burned,
		ExtraWater:     calculator.ExtraWaterForWorkout(req.Duration),
		Timestamp:      entry.Timestamp,
	}, nil
}
