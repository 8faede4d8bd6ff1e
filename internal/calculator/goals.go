// Package calculator turns profile and activity inputs into daily targets.
// All functions are pure; inputs are expected to be validated by the caller.
package calculator

import "github.com/pageza/fittrack/backend/internal/types"

const (
	// DefaultMET applies to workout types without a table entry.
	DefaultMET = 4.0
	// DefaultActivityMultiplier applies to unknown activity levels.
	DefaultActivityMultiplier = 1.2

	waterPerKg            = 30.0
	extraWaterPerInterval = 200.0
	extraWaterInterval    = 30
)

// Input holds everything the goal formulas depend on.
type Input struct {
	Weight        float64
	Height        float64
	Age           int
	Gender        types.Gender
	ActivityLevel types.ActivityLevel
	Temperature   float64
}

// Goals are the derived daily targets. They are always produced together.
type Goals struct {
	Water    float64 `json:"water_goal"`
	Calories float64 `json:"calorie_goal"`
}

// Nutrients describes a portion of food.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// CalculateGoals computes the water and calorie goals for one profile.
func CalculateGoals(in Input) Goals {
	return Goals{
		Water:    WaterGoal(in.Weight, in.ActivityLevel, in.Temperature),
		Calories: CalorieGoal(in.Weight, in.Height, in.Age, in.Gender, in.ActivityLevel),
	}
}

// WaterGoal returns the daily water target in millilitres.
func WaterGoal(weight float64, level types.ActivityLevel, temperature float64) float64 {
	return weight*waterPerKg + activityWaterBonus(level) + temperatureWaterBonus(temperature)
}

func activityWaterBonus(level types.ActivityLevel) float64 {
	switch level {
	case types.ActivityLight:
		return 200
	case types.ActivityModerate:
		return 400
	case types.ActivityActive:
		return 600
	case types.ActivityVeryActive:
		return 800
	default:
		return 0
	}
}

// The hotter threshold is checked first so 32°C gets 1000, not 500.
func temperatureWaterBonus(temperature float64) float64 {
	switch {
	case temperature > 30:
		return 1000
	case temperature > 25:
		return 500
	default:
		return 0
	}
}

// CalorieGoal returns the daily calorie target: Mifflin-St Jeor BMR scaled by
// the activity multiplier. The result is not rounded.
func CalorieGoal(weight, height float64, age int, gender types.Gender, level types.ActivityLevel) float64 {
	return BMR(weight, height, age, gender) * ActivityMultiplier(level)
}

// BMR is the Mifflin-St Jeor basal metabolic rate. Anything other than male
// uses the female constant.
func BMR(weight, height float64, age int, gender types.Gender) float64 {
	bmr := 10*weight + 6.25*height - 5*float64(age)
	if gender == types.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// ActivityMultiplier maps an activity level to its TDEE factor.
func ActivityMultiplier(level types.ActivityLevel) float64 {
	switch level {
	case types.ActivitySedentary:
		return 1.2
	case types.ActivityLight:
		return 1.375
	case types.ActivityModerate:
		return 1.55
	case types.ActivityActive:
		return 1.725
	case types.ActivityVeryActive:
		return 1.9
	default:
		return DefaultActivityMultiplier
	}
}

// MET returns the metabolic equivalent for a free-text workout label.
func MET(workoutType string) float64 {
	t, ok := types.ParseWorkoutType(workoutType)
	if !ok {
		return DefaultMET
	}
	switch t {
	case types.WorkoutRunning:
		return 8.0
	case types.WorkoutWalking:
		return 3.5
	case types.WorkoutCycling:
		return 7.5
	case types.WorkoutSwimming, types.WorkoutStrength:
		return 6.0
	case types.WorkoutYoga:
		return 2.5
	default:
		return DefaultMET
	}
}

// WorkoutCalories estimates kcal burned: MET × weight (kg) × hours.
func WorkoutCalories(workoutType string, durationMinutes int, weight float64) float64 {
	return MET(workoutType) * weight * (float64(durationMinutes) / 60)
}

// ExtraWaterForWorkout is the additional water suggested after a workout:
// 200 mL for every full 30 minutes.
func ExtraWaterForWorkout(durationMinutes int) float64 {
	if durationMinutes <= 0 {
		return 0
	}
	return float64(durationMinutes/extraWaterInterval) * extraWaterPerInterval
}

// FoodPortion scales per-100g values to a serving of the given size.
func FoodPortion(per100g types.FoodItem, grams float64) Nutrients {
	scale := grams / 100
	return Nutrients{
		Calories: per100g.Calories * scale,
		Protein:  per100g.Protein * scale,
		Carbs:    per100g.Carbs * scale,
		Fat:      per100g.Fat * scale,
	}
}
