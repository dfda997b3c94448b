package menu

import (
	"encoding/json"
	"fmt"
	"strings"

	"mealia-backend/internal/models"
)

// rawMeal uses pointers so missing keys are distinguishable from zero values.
type rawMeal struct {
	Name        *string   `json:"name"`
	Ingredients *[]string `json:"ingredients"`
	Steps       *[]string `json:"steps"`
	Calories    *int      `json:"calories"`
}

type rawMenu struct {
	Breakfast *rawMeal `json:"breakfast"`
	Lunch     *rawMeal `json:"lunch"`
	Dinner    *rawMeal `json:"dinner"`
	Note      *string  `json:"note"`
	// The model's self-reported total is parsed but never trusted.
	TotalCalories *int `json:"total_calories"`
}

// ParseMenu turns the model's raw text into a validated GeneratedMenu, or
// fails with ErrMalformedOutput. Validation is all-or-nothing: the three
// meals and the note must all be present and well-typed. total_calories is
// recomputed from the meals regardless of what the model reported. Name,
// ingredients, steps and note pass through verbatim: the structural schema
// is the only thing enforced server-side.
func ParseMenu(raw string) (*models.GeneratedMenu, error) {
	payload, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var parsed rawMenu
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	breakfast, err := validateMeal("breakfast", parsed.Breakfast)
	if err != nil {
		return nil, err
	}
	lunch, err := validateMeal("lunch", parsed.Lunch)
	if err != nil {
		return nil, err
	}
	dinner, err := validateMeal("dinner", parsed.Dinner)
	if err != nil {
		return nil, err
	}

	if parsed.Note == nil {
		return nil, fmt.Errorf("%w: missing note", ErrMalformedOutput)
	}

	return &models.GeneratedMenu{
		Breakfast:     breakfast,
		Lunch:         lunch,
		Dinner:        dinner,
		Note:          *parsed.Note,
		TotalCalories: breakfast.Calories + lunch.Calories + dinner.Calories,
	}, nil
}

func validateMeal(key string, m *rawMeal) (models.Meal, error) {
	if m == nil {
		return models.Meal{}, fmt.Errorf("%w: missing meal %q", ErrMalformedOutput, key)
	}
	if m.Name == nil {
		return models.Meal{}, fmt.Errorf("%w: meal %q has no name", ErrMalformedOutput, key)
	}
	if m.Ingredients == nil {
		return models.Meal{}, fmt.Errorf("%w: meal %q has no ingredients", ErrMalformedOutput, key)
	}
	if m.Steps == nil {
		return models.Meal{}, fmt.Errorf("%w: meal %q has no steps", ErrMalformedOutput, key)
	}
	if m.Calories == nil {
		return models.Meal{}, fmt.Errorf("%w: meal %q has no calories", ErrMalformedOutput, key)
	}

	return models.Meal{
		Name:        *m.Name,
		Ingredients: *m.Ingredients,
		Steps:       *m.Steps,
		Calories:    *m.Calories,
	}, nil
}

// extractJSONObject isolates the JSON object from the raw model text.
// Models occasionally wrap their answer in markdown fences despite the
// contract; anything outside the outermost braces is discarded.
func extractJSONObject(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("%w: no JSON object found", ErrMalformedOutput)
	}
	return raw[start : end+1], nil
}
