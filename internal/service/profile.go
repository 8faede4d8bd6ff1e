package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/pageza/fittrack/backend/internal/calculator"
	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/types"
)

// ErrProfileNotFound is returned when a user has not submitted a profile yet.
var ErrProfileNotFound = errors.New("profile not found")

// changedBySystem marks history rows for derived fields.
const changedBySystem = "system"

// ProfileService handles user profile operations
type ProfileService struct {
	db      *gorm.DB
	weather TemperatureProvider
	timeout time.Duration
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance. weather may be nil,
// in which case every profile uses DefaultTemperature.
func NewProfileService(db *gorm.DB, weather TemperatureProvider, timeout time.Duration) *ProfileService {
	return &ProfileService{
		db:      db,
		weather: weather,
		timeout: timeout,
	}
}

// Get retrieves a user's profile, or nil when there is none.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// Upsert creates the profile or overwrites the existing one for the same user,
// recording every changed field in the profile history.
func (s *ProfileService) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	var saved *models.Profile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Profile
		err := tx.Where("user_id = ?", profile.UserID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(profile).Error; err != nil {
				return err
			}
			saved = profile
			return nil
		}
		if err != nil {
			return err
		}

		changes := diffProfile(&existing, profile)
		existing.Username = profile.Username
		existing.Weight = profile.Weight
		existing.Height = profile.Height
		existing.Age = profile.Age
		existing.Gender = profile.Gender
		existing.ActivityLevel = profile.ActivityLevel
		existing.City = profile.City
		existing.Temperature = profile.Temperature
		existing.WaterGoal = profile.WaterGoal
		existing.CalorieGoal = profile.CalorieGoal
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		now := time.Now()
		for _, c := range changes {
			c.UserID = existing.UserID
			c.ChangedAt = now
			if c.ChangedBy == "" {
				c.ChangedBy = existing.Username
			}
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
		}
		saved = &existing
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return saved, nil
}

// SubmitProfile resolves the city temperature, recomputes both goals and
// stores the profile.
func (s *ProfileService) SubmitProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) (*types.ProfileResponse, error) {
	temperature, fallback := ResolveTemperature(ctx, s.weather, req.City, s.timeout)

	goals := calculator.CalculateGoals(calculator.Input{
		Weight:        req.Weight,
		Height:        req.Height,
		Age:           req.Age,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		Temperature:   temperature,
	})

	profile, err := s.Upsert(ctx, &models.Profile{
		UserID:        userID,
		Username:      req.Username,
		Weight:        req.Weight,
		Height:        req.Height,
		Age:           req.Age,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		City:          req.City,
		Temperature:   temperature,
		WaterGoal:     goals.Water,
		CalorieGoal:   goals.Calories,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[ProfileService] Saved profile for user %d: water goal %.0f mL, calorie goal %.0f kcal", userID, goals.Water, goals.Calories)

	return &types.ProfileResponse{
		UserID:             profile.UserID,
		Username:           profile.Username,
		Weight:             profile.Weight,
		Height:             profile.Height,
		Age:                profile.Age,
		Gender:             profile.Gender,
		ActivityLevel:      profile.ActivityLevel,
		City:               profile.City,
		Temperature:        profile.Temperature,
		TemperatureDefault: fallback,
		WaterGoal:          profile.WaterGoal,
		CalorieGoal:        profile.CalorieGoal,
		UpdatedAt:          profile.UpdatedAt,
	}, nil
}

// GetProfileHistory retrieves the change history for a user's profile
func (s *ProfileService) GetProfileHistory(ctx context.Context, userID int64) ([]*types.ProfileHistory, error) {
	var history []models.ProfileHistory
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("changed_at ASC").
		Find(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to get profile history: %w", err)
	}

	result := make([]*types.ProfileHistory, len(history))
	for i, h := range history {
		result[i] = &types.ProfileHistory{
			ID:        h.ID,
			UserID:    h.UserID,
			Field:     h.Field,
			OldValue:  h.OldValue,
			NewValue:  h.NewValue,
			ChangedAt: h.ChangedAt,
			ChangedBy: h.ChangedBy,
		}
	}
	return result, nil
}

func diffProfile(old, updated *models.Profile) []models.ProfileHistory {
	var changes []models.ProfileHistory
	add := func(field, oldValue, newValue, by string) {
		if oldValue != newValue {
			changes = append(changes, models.ProfileHistory{
				Field:     field,
				OldValue:  oldValue,
				NewValue:  newValue,
				ChangedBy: by,
			})
		}
	}
	by := updated.Username
	add("weight", formatFloat(old.Weight), formatFloat(updated.Weight), by)
	add("height", formatFloat(old.Height), formatFloat(updated.Height), by)
	add("age", strconv.Itoa(old.Age), strconv.Itoa(updated.Age), by)
	add("gender", string(old.Gender), string(updated.Gender), by)
	add("activity_level", string(old.ActivityLevel), string(updated.ActivityLevel), by)
	add("city", old.City, updated.City, by)
	add("temperature", formatFloat(old.Temperature), formatFloat(updated.Temperature), changedBySystem)
	add("water_goal", formatFloat(old.WaterGoal), formatFloat(updated.WaterGoal), changedBySystem)
	add("calorie_goal", formatFloat(old.CalorieGoal), formatFloat(updated.CalorieGoal), changedBySystem)
	return changes
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
