package menu

import (
	"testing"
	"time"

	"mealia-backend/internal/models"
)

func f64(v float64) *float64 { return &v }

// fixed reference date so age computation is stable.
var today = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestCalorieTargetScenarios(t *testing.T) {
	// bmr = 10*70 + 6.25*170 - 5*25 + 5 = 1642.5; tdee = 1642.5*1.3 = 2135.25
	birthdate := time.Date(2000, time.January, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		b    Biometrics
		want int
	}{
		{
			name: "maintenance 70kg 1.70m age 25",
			b:    Biometrics{WeightKg: f64(70), HeightM: f64(1.70), Birthdate: &birthdate, Goal: models.GoalMaintenance},
			want: 2135,
		},
		{
			name: "deficit subtracts exactly 400",
			b:    Biometrics{WeightKg: f64(70), HeightM: f64(1.70), Birthdate: &birthdate, Goal: models.GoalDeficit},
			want: 1735,
		},
		{
			name: "mass gain adds exactly 400",
			b:    Biometrics{WeightKg: f64(70), HeightM: f64(1.70), Birthdate: &birthdate, Goal: models.GoalMassGain},
			want: 2535,
		},
		{
			// bmr = 700 + 6.25*175 - 125 + 5 = 1673.75; tdee = 2175.875
			name: "maintenance 70kg 1.75m truncates to 2175",
			b:    Biometrics{WeightKg: f64(70), HeightM: f64(1.75), Birthdate: &birthdate, Goal: models.GoalMaintenance},
			want: 2175,
		},
		{
			name: "all defaults equal explicit 70kg 1.70m age 25",
			b:    Biometrics{Goal: models.GoalMaintenance},
			want: 2135,
		},
		{
			name: "tiny biometrics clamp to the floor",
			b:    Biometrics{WeightKg: f64(30), HeightM: f64(1.20), Birthdate: &birthdate, Goal: models.GoalDeficit},
			want: MinCalorieTarget,
		},
		{
			name: "huge biometrics clamp to the ceiling",
			b:    Biometrics{WeightKg: f64(250), HeightM: f64(2.10), Birthdate: &birthdate, Goal: models.GoalMassGain},
			want: MaxCalorieTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalorieTarget(tt.b, today)
			if got != tt.want {
				t.Errorf("CalorieTarget() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalorieTargetAlwaysInRange(t *testing.T) {
	goals := []string{models.GoalDeficit, models.GoalMassGain, models.GoalMaintenance, "", "otro"}

	for _, weight := range []float64{20, 45, 70, 120, 300} {
		for _, height := range []float64{1.0, 1.50, 1.70, 1.95, 2.20} {
			for _, birthYear := range []int{1940, 1975, 2000, 2010} {
				for _, goal := range goals {
					birthdate := time.Date(birthYear, time.March, 1, 0, 0, 0, 0, time.UTC)
					got := CalorieTarget(Biometrics{
						WeightKg:  f64(weight),
						HeightM:   f64(height),
						Birthdate: &birthdate,
						Goal:      goal,
					}, today)
					if got < MinCalorieTarget || got > MaxCalorieTarget {
						t.Errorf("CalorieTarget(w=%v h=%v y=%d goal=%q) = %d, out of [%d, %d]",
							weight, height, birthYear, goal, got, MinCalorieTarget, MaxCalorieTarget)
					}
				}
			}
		}
	}
}

func TestCalorieTargetGoalOrdering(t *testing.T) {
	birthdate := time.Date(1990, time.October, 2, 0, 0, 0, 0, time.UTC)
	base := Biometrics{WeightKg: f64(80), HeightM: f64(1.80), Birthdate: &birthdate}

	deficit := base
	deficit.Goal = models.GoalDeficit
	maintenance := base
	maintenance.Goal = models.GoalMaintenance
	gain := base
	gain.Goal = models.GoalMassGain

	d := CalorieTarget(deficit, today)
	m := CalorieTarget(maintenance, today)
	g := CalorieTarget(gain, today)

	if d > m {
		t.Errorf("deficit target %d > maintenance target %d", d, m)
	}
	if g < m {
		t.Errorf("mass-gain target %d < maintenance target %d", g, m)
	}
	// Mid-range biometrics: the clamp is inactive, so the spread is exact.
	if m-d != 400 {
		t.Errorf("maintenance - deficit = %d, want 400", m-d)
	}
	if g-m != 400 {
		t.Errorf("gain - maintenance = %d, want 400", g-m)
	}
}

func TestWholeYears(t *testing.T) {
	tests := []struct {
		name      string
		birthdate time.Time
		want      int
	}{
		{
			name:      "birthday already passed this year",
			birthdate: time.Date(1995, time.February, 1, 0, 0, 0, 0, time.UTC),
			want:      30,
		},
		{
			name:      "birthday later this year",
			birthdate: time.Date(1995, time.November, 20, 0, 0, 0, 0, time.UTC),
			want:      29,
		},
		{
			name:      "birthday today counts as completed",
			birthdate: time.Date(1995, time.June, 15, 0, 0, 0, 0, time.UTC),
			want:      30,
		},
		{
			name:      "same month, day later this month",
			birthdate: time.Date(1995, time.June, 30, 0, 0, 0, 0, time.UTC),
			want:      29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wholeYears(tt.birthdate, today); got != tt.want {
				t.Errorf("wholeYears() = %d, want %d", got, tt.want)
			}
		})
	}
}
