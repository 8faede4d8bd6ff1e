package service

import (
	"context"
	"time"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

// WeekDays is the width of the weekly summary window.
const WeekDays = 7

const dayKeyLayout = "2006-01-02"

// ActivityLedger sums log entries per calendar day. Days are computed in the
// ledger's location; a user without logs gets zeros, never an error.
type ActivityLedger struct {
	store LogStore
	loc   *time.Location
}

// Ensure ActivityLedger implements IActivityLedger
var _ IActivityLedger = (*ActivityLedger)(nil)

// NewActivityLedger creates a ledger over store. A nil location means time.Local.
func NewActivityLedger(store LogStore, loc *time.Location) *ActivityLedger {
	if loc == nil {
		loc = time.Local
	}
	return &ActivityLedger{store: store, loc: loc}
}

// DayStart returns midnight of t's calendar day in the ledger's location.
func (l *ActivityLedger) DayStart(t time.Time) time.Time {
	t = t.In(l.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, l.loc)
}

func (l *ActivityLedger) dayBounds(date time.Time) (time.Time, time.Time) {
	start := l.DayStart(date)
	return start, start.AddDate(0, 0, 1)
}

// SumWater returns the millilitres drunk on date's calendar day.
func (l *ActivityLedger) SumWater(ctx context.Context, userID int64, date time.Time) (float64, error) {
	from, to := l.dayBounds(date)
	entries, err := l.store.QueryWater(ctx, userID, from, to)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range entries {
		total += e.Amount
	}
	return total, nil
}

// SumCaloriesConsumed returns the kcal eaten on date's calendar day.
func (l *ActivityLedger) SumCaloriesConsumed(ctx context.Context, userID int64, date time.Time) (float64, error) {
	from, to := l.dayBounds(date)
	entries, err := l.store.QueryFood(ctx, userID, from, to)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range entries {
		total += e.Calories
	}
	return total, nil
}

// SumCaloriesBurned returns the kcal burned in workouts on date's calendar day.
func (l *ActivityLedger) SumCaloriesBurned(ctx context.Context, userID int64, date time.Time) (float64, error) {
	from, to := l.dayBounds(date)
	entries, err := l.store.QueryWorkouts(ctx, userID, from, to)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range entries {
		total += e.CaloriesBurned
	}
	return total, nil
}

// LastWorkout returns the most recent workout or nil.
func (l *ActivityLedger) LastWorkout(ctx context.Context, userID int64) (*models.WorkoutLog, error) {
	return l.store.LastWorkout(ctx, userID)
}

// DaySummary aggregates a single calendar day.
func (l *ActivityLedger) DaySummary(ctx context.Context, userID int64, date time.Time) (types.DailySummary, error) {
	days, err := l.summarize(ctx, userID, l.DayStart(date), 1)
	if err != nil {
		return types.DailySummary{}, err
	}
	return days[0], nil
}

// WeeklySummary returns exactly seven days ending with endDate's calendar day,
// oldest first. Days without activity are present with zero values.
func (l *ActivityLedger) WeeklySummary(ctx context.Context, userID int64, endDate time.Time) ([]types.DailySummary, error) {
	start := l.DayStart(endDate).AddDate(0, 0, -(WeekDays - 1))
	return l.summarize(ctx, userID, start, WeekDays)
}

// summarize loads each log kind once for the whole window and buckets the
// entries into n consecutive calendar days starting at start.
func (l *ActivityLedger) summarize(ctx context.Context, userID int64, start time.Time, n int) ([]types.DailySummary, error) {
	end := start.AddDate(0, 0, n)

	days := make([]types.DailySummary, n)
	index := make(map[string]*types.DailySummary, n)
	for i := range days {
		date := start.AddDate(0, 0, i)
		days[i].Date = date
		index[date.Format(dayKeyLayout)] = &days[i]
	}
	bucket := func(ts time.Time) *types.DailySummary {
		return index[ts.In(l.loc).Format(dayKeyLayout)]
	}

	water, err := l.store.QueryWater(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	for _, e := range water {
		if d := bucket(e.Timestamp); d != nil {
			d.Water += e.Amount
		}
	}

	food, err := l.store.QueryFood(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	for _, e := range food {
		if d := bucket(e.Timestamp); d != nil {
			d.CaloriesConsumed += e.Calories
		}
	}

	workouts, err := l.store.QueryWorkouts(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	for _, e := range workouts {
		if d := bucket(e.Timestamp); d != nil {
			d.CaloriesBurned += e.CaloriesBurned
			d.Workouts++
		}
	}

	return days, nil
}
