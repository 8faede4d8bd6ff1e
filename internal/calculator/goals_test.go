package calculator

import (
	"testing"

	"github.com/pageza/fittrack/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

var allLevels = []types.ActivityLevel{
	types.ActivitySedentary,
	types.ActivityLight,
	types.ActivityModerate,
	types.ActivityActive,
	types.ActivityVeryActive,
}

func TestWaterGoal(t *testing.T) {
	tests := []struct {
		name        string
		weight      float64
		level       types.ActivityLevel
		temperature float64
		want        float64
	}{
		{"moderate mild weather", 70, types.ActivityModerate, 20, 2500},
		{"moderate hot weather takes the larger bonus only", 70, types.ActivityModerate, 32, 3500},
		{"warm weather", 70, types.ActivityModerate, 26, 3000},
		{"exactly 25 gets no bonus", 70, types.ActivitySedentary, 25, 2100},
		{"exactly 30 gets the warm bonus", 70, types.ActivitySedentary, 30, 2600},
		{"very active", 80, types.ActivityVeryActive, 10, 3200},
		{"unknown level falls back to no bonus", 70, types.ActivityLevel("couch"), 20, 2100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WaterGoal(tt.weight, tt.level, tt.temperature))
		})
	}
}

func TestWaterGoalMonotonic(t *testing.T) {
	for _, level := range allLevels {
		prev := 0.0
		for w := 20.0; w <= 300; w += 5 {
			got := WaterGoal(w, level, 20)
			assert.GreaterOrEqual(t, got, prev, "weight %v level %s", w, level)
			prev = got
		}

		prev = 0
		for temp := -30.0; temp <= 50; temp += 0.5 {
			got := WaterGoal(70, level, temp)
			assert.GreaterOrEqual(t, got, prev, "temperature %v level %s", temp, level)
			prev = got
		}
	}
}

func TestCalorieGoal(t *testing.T) {
	// male: 10*70 + 6.25*175 - 5*30 + 5 = 1648.75
	assert.InDelta(t, 1978.5, CalorieGoal(70, 175, 30, types.GenderMale, types.ActivitySedentary), 1e-9)

	// female: 10*60 + 6.25*165 - 5*25 - 161 = 1345.25
	assert.InDelta(t, 1345.25*1.55, CalorieGoal(60, 165, 25, types.GenderFemale, types.ActivityModerate), 1e-9)

	// anything other than male uses the female constant
	assert.Equal(t,
		CalorieGoal(60, 165, 25, types.GenderFemale, types.ActivityLight),
		CalorieGoal(60, 165, 25, types.Gender("unspecified"), types.ActivityLight))

	// unknown level uses the sedentary multiplier
	assert.Equal(t,
		CalorieGoal(70, 175, 30, types.GenderMale, types.ActivitySedentary),
		CalorieGoal(70, 175, 30, types.GenderMale, types.ActivityLevel("")))
}

func TestActivityMultiplier(t *testing.T) {
	want := []float64{1.2, 1.375, 1.55, 1.725, 1.9}
	for i, level := range allLevels {
		assert.Equal(t, want[i], ActivityMultiplier(level))
	}
	assert.Equal(t, DefaultActivityMultiplier, ActivityMultiplier("unknown"))
}

func TestWorkoutCalories(t *testing.T) {
	assert.Equal(t, 420.0, WorkoutCalories("running", 45, 70))
	assert.Equal(t, 420.0, WorkoutCalories("Бег", 45, 70))
	assert.Equal(t, 420.0, WorkoutCalories("  Running ", 45, 70))
	assert.InDelta(t, 3.5*70*0.5, WorkoutCalories("walking", 30, 70), 1e-9)
	assert.InDelta(t, 2.5*70, WorkoutCalories("Йога", 60, 70), 1e-9)
	assert.InDelta(t, DefaultMET*70, WorkoutCalories("trampoline", 60, 70), 1e-9)
}

func TestMET(t *testing.T) {
	tests := map[string]float64{
		"running":   8.0,
		"walking":   3.5,
		"cycling":   7.5,
		"swimming":  6.0,
		"strength":  6.0,
		"yoga":      2.5,
		"other":     DefaultMET,
		"Велосипед": 7.5,
		"Плавание":  6.0,
		"Силовая":   6.0,
		"":          DefaultMET,
	}
	for label, want := range tests {
		assert.Equal(t, want, MET(label), label)
	}
}

func TestExtraWaterForWorkout(t *testing.T) {
	assert.Equal(t, 0.0, ExtraWaterForWorkout(29))
	assert.Equal(t, 200.0, ExtraWaterForWorkout(45))
	assert.Equal(t, 400.0, ExtraWaterForWorkout(60))
	assert.Equal(t, 2000.0, ExtraWaterForWorkout(300))
	assert.Equal(t, 0.0, ExtraWaterForWorkout(-10))
}

func TestFoodPortion(t *testing.T) {
	banana := types.FoodItem{Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3}
	got := FoodPortion(banana, 150)
	assert.InDelta(t, 133.5, got.Calories, 1e-9)
	assert.InDelta(t, 1.65, got.Protein, 1e-9)
	assert.InDelta(t, 34.5, got.Carbs, 1e-9)
	assert.InDelta(t, 0.45, got.Fat, 1e-9)
}

func TestCalculateGoals(t *testing.T) {
	goals := CalculateGoals(Input{
		Weight:        70,
		Height:        175,
		Age:           30,
		Gender:        types.GenderMale,
		ActivityLevel: types.ActivityModerate,
		Temperature:   20,
	})
	assert.Equal(t, 2500.0, goals.Water)
	assert.InDelta(t, 1648.75*1.55, goals.Calories, 1e-9)
}
