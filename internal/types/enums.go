package types

import "strings"

// ActivityLevel is the self-reported daily activity of a user.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Valid reports whether l is one of the known activity levels.
func (l ActivityLevel) Valid() bool {
	switch l {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

// Gender is used only for the BMR constant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// WorkoutType identifies an exercise kind with a known MET value.
type WorkoutType string

const (
	WorkoutRunning  WorkoutType = "running"
	WorkoutWalking  WorkoutType = "walking"
	WorkoutCycling  WorkoutType = "cycling"
	WorkoutSwimming WorkoutType = "swimming"
	WorkoutStrength WorkoutType = "strength"
	WorkoutYoga     WorkoutType = "yoga"
	WorkoutOther    WorkoutType = "other"
)

// workoutAliases maps chat keyboard labels onto workout types.
var workoutAliases = map[string]WorkoutType{
	"running":   WorkoutRunning,
	"run":       WorkoutRunning,
	"бег":       WorkoutRunning,
	"walking":   WorkoutWalking,
	"walk":      WorkoutWalking,
	"ходьба":    WorkoutWalking,
	"cycling":   WorkoutCycling,
	"bike":      WorkoutCycling,
	"велосипед": WorkoutCycling,
	"swimming":  WorkoutSwimming,
	"swim":      WorkoutSwimming,
	"плавание":  WorkoutSwimming,
	"strength":  WorkoutStrength,
	"силовая":   WorkoutStrength,
	"yoga":      WorkoutYoga,
	"йога":      WorkoutYoga,
	"other":     WorkoutOther,
	"другое":    WorkoutOther,
}

// ParseWorkoutType normalises a free-text workout label. Unknown labels
// return WorkoutOther and false.
func ParseWorkoutType(s string) (WorkoutType, bool) {
	t, ok := workoutAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return WorkoutOther, false
	}
	return t, true
}
