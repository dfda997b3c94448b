package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestValidGoal(t *testing.T) {
	for _, goal := range []string{GoalDeficit, GoalMassGain, GoalMaintenance} {
		if !ValidGoal(goal) {
			t.Errorf("ValidGoal(%q) = false, want true", goal)
		}
	}
	for _, goal := range []string{"", "deficit", "Déficit ", "Bulking"} {
		if ValidGoal(goal) {
			t.Errorf("ValidGoal(%q) = true, want false", goal)
		}
	}
}

func TestJSONDateFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "bare date",
			in:   `"1999-04-23"`,
			want: time.Date(1999, time.April, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "RFC3339",
			in:   `"1999-04-23T10:30:00Z"`,
			want: time.Date(1999, time.April, 23, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d JSONDate
			if err := json.Unmarshal([]byte(tt.in), &d); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.in, err)
			}
			if !d.Time().Equal(tt.want) {
				t.Errorf("Time() = %v, want %v", d.Time(), tt.want)
			}
		})
	}

	var d JSONDate
	if err := json.Unmarshal([]byte(`"23/04/1999"`), &d); err == nil {
		t.Error("Unmarshal accepted an unsupported date format")
	}
}
