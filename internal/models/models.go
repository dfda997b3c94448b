// internal/models/models.go
package models

import (
	"time"
)

// Goal values accepted for a user profile. The prompt and goal adjustment
// logic depend on these exact strings, so anything else is rejected at the
// profile boundary.
const (
	GoalDeficit     = "Déficit"
	GoalMassGain    = "Aumentar masa"
	GoalMaintenance = "Mantenimiento"
)

// ValidGoal reports whether g is one of the three accepted goal values.
func ValidGoal(g string) bool {
	return g == GoalDeficit || g == GoalMassGain || g == GoalMaintenance
}

// DefaultUnit is assigned to inventory items created without an explicit unit.
const DefaultUnit = "Unidades"

type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name,omitempty"`
	PasswordHash string     `json:"-"`
	HeightM      *float64   `json:"height,omitempty"`
	WeightKg     *float64   `json:"weight,omitempty"`
	Birthdate    *time.Time `json:"birthdate,omitempty"`
	Goal         string     `json:"goal"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	Premium      bool       `json:"premium"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// InventoryItem is a user's stock of a single ingredient. Name is stored
// normalized (lowercase, trimmed); (OwnerID, Name) is unique.
type InventoryItem struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SavedRecipe is a meal the user chose to keep. (OwnerID, Name) is unique.
type SavedRecipe struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	Calories    int       `json:"calories"`
	CreatedAt   time.Time `json:"created_at"`
}

// Meal is one course of a generated menu.
type Meal struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Calories    int      `json:"calories"`
}

// GeneratedMenu is the validated output of one generation request.
// TotalCalories is always recomputed server-side from the three meals.
type GeneratedMenu struct {
	Breakfast     Meal   `json:"breakfast"`
	Lunch         Meal   `json:"lunch"`
	Dinner        Meal   `json:"dinner"`
	Note          string `json:"note"`
	TotalCalories int    `json:"total_calories"`
}

type Payment struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	StripeSessionID string    `json:"stripe_session_id"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
