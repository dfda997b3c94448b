package db

import (
	"context"
	"encoding/json"
	"fmt"

	"mealia-backend/internal/models"
)

// SaveRecipe stores a recipe for the owner. (owner_id, name) is unique:
// saving the same name twice returns ErrDuplicate.
func (db *PostgresDB) SaveRecipe(ctx context.Context, recipe *models.SavedRecipe) error {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to encode ingredients: %w", err)
	}
	steps, err := json.Marshal(recipe.Steps)
	if err != nil {
		return fmt.Errorf("failed to encode steps: %w", err)
	}

	query := `
        INSERT INTO saved_recipes (owner_id, name, ingredients, steps, calories)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `

	err = db.pool.QueryRow(ctx, query,
		recipe.OwnerID, recipe.Name, string(ingredients), string(steps), recipe.Calories,
	).Scan(&recipe.ID, &recipe.CreatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}

	return nil
}

// ListRecentRecipes returns the owner's most recently saved recipes,
// newest first, capped at limit.
func (db *PostgresDB) ListRecentRecipes(ctx context.Context, ownerID int64, limit int) ([]models.SavedRecipe, error) {
	query := `
        SELECT id, owner_id, name, ingredients, steps, calories, created_at
        FROM saved_recipes
        WHERE owner_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `

	rows, err := db.pool.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []models.SavedRecipe
	for rows.Next() {
		var recipe models.SavedRecipe
		var ingredients, steps []byte
		if err := rows.Scan(
			&recipe.ID, &recipe.OwnerID, &recipe.Name, &ingredients, &steps,
			&recipe.Calories, &recipe.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		if err := json.Unmarshal(ingredients, &recipe.Ingredients); err != nil {
			return nil, fmt.Errorf("failed to decode ingredients: %w", err)
		}
		if err := json.Unmarshal(steps, &recipe.Steps); err != nil {
			return nil, fmt.Errorf("failed to decode steps: %w", err)
		}
		recipes = append(recipes, recipe)
	}

	return recipes, rows.Err()
}

func (db *PostgresDB) DeleteRecipe(ctx context.Context, ownerID, recipeID int64) error {
	query := `
        DELETE FROM saved_recipes
        WHERE id = $2 AND owner_id = $1
    `

	tag, err := db.pool.Exec(ctx, query, ownerID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipe %d not found", recipeID)
	}

	return nil
}
