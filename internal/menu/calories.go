package menu

import (
	"time"

	"mealia-backend/internal/models"
)

// Defaults used when a biometric is missing from the profile.
const (
	DefaultWeightKg = 70.0
	DefaultHeightM  = 1.70
	DefaultAge      = 25
)

// The daily target is clamped to this range whatever the biometrics say.
const (
	MinCalorieTarget = 1200
	MaxCalorieTarget = 4000
)

const (
	activityMultiplier = 1.3
	goalAdjustment     = 400.0
)

// Biometrics is the profile subset the calorie calculation reads.
// Nil fields fall back to the defaults above.
type Biometrics struct {
	WeightKg  *float64
	HeightM   *float64
	Birthdate *time.Time
	Goal      string
}

// CalorieTarget derives the daily kcal target from the biometrics using the
// Mifflin-St Jeor equation, a fixed activity multiplier and a flat goal
// adjustment. It always produces a value: missing biometrics default, and
// the result is clamped to [MinCalorieTarget, MaxCalorieTarget] and
// truncated to an integer.
func CalorieTarget(b Biometrics, today time.Time) int {
	weight := DefaultWeightKg
	if b.WeightKg != nil {
		weight = *b.WeightKg
	}

	height := DefaultHeightM
	if b.HeightM != nil {
		height = *b.HeightM
	}

	age := DefaultAge
	if b.Birthdate != nil {
		age = wholeYears(*b.Birthdate, today)
	}

	bmr := 10*weight + 6.25*(height*100) - 5*float64(age) + 5
	tdee := bmr * activityMultiplier

	switch b.Goal {
	case models.GoalDeficit:
		tdee -= goalAdjustment
	case models.GoalMassGain:
		tdee += goalAdjustment
	}

	if tdee < MinCalorieTarget {
		tdee = MinCalorieTarget
	}
	if tdee > MaxCalorieTarget {
		tdee = MaxCalorieTarget
	}

	return int(tdee)
}

// wholeYears counts completed years between birthdate and today, comparing
// (month, day) to decide whether the birthday has occurred this year.
func wholeYears(birthdate, today time.Time) int {
	years := today.Year() - birthdate.Year()
	if today.Month() < birthdate.Month() ||
		(today.Month() == birthdate.Month() && today.Day() < birthdate.Day()) {
		years--
	}
	return years
}
