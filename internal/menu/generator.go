package menu

import (
	"context"
	"fmt"
	"time"

	"mealia-backend/internal/models"
	"mealia-backend/pkg/logger"
)

// favoritesLimit caps how many recent saved recipes are loaded as context
// for the prompt builder.
const favoritesLimit = 10

// Store is what the generator reads before calling the model. All reads
// complete before the model call is issued, so no record is held across it.
type Store interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListInventory(ctx context.Context, ownerID int64) ([]models.InventoryItem, error)
	ListRecentRecipes(ctx context.Context, ownerID int64, limit int) ([]models.SavedRecipe, error)
}

// Completer is the capability seam for the generative model: one two-part
// prompt in, raw text out.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Generator runs the pipeline: inventory → calorie target → prompt → one
// model call → validation. No retries anywhere; every failure is surfaced
// immediately and the caller resubmits.
type Generator struct {
	store     Store
	completer Completer
	sampler   Sampler
	logger    *logger.Logger
}

func NewGenerator(store Store, completer Completer, sampler Sampler, l *logger.Logger) *Generator {
	return &Generator{
		store:     store,
		completer: completer,
		sampler:   sampler,
		logger:    l,
	}
}

// GenerateMenu produces today's validated menu for the user, or one of
// ErrEmptyInventory, ErrServiceUnavailable, ErrMalformedOutput.
func (g *Generator) GenerateMenu(ctx context.Context, userID int64) (*models.GeneratedMenu, error) {
	// Inventory first: an unsatisfiable request must not reach the paid
	// model call.
	items, err := g.store.ListInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyInventory
	}

	user, err := g.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	target := CalorieTarget(Biometrics{
		WeightKg:  user.WeightKg,
		HeightM:   user.HeightM,
		Birthdate: user.Birthdate,
		Goal:      user.Goal,
	}, time.Now())

	recipes, err := g.store.ListRecentRecipes(ctx, userID, favoritesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved recipes: %w", err)
	}
	favorites := make([]string, 0, len(recipes))
	for _, r := range recipes {
		favorites = append(favorites, r.Name)
	}

	systemPrompt, userPrompt := BuildPrompt(PromptInput{
		FirstName:     user.FirstName,
		CalorieTarget: target,
		Inventory:     items,
		Favorites:     favorites,
	}, g.sampler)

	raw, err := g.completer.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		g.logger.Error("Menu generation call failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	generated, err := ParseMenu(raw)
	if err != nil {
		g.logger.Error("Menu generation returned unusable output", "user_id", userID, "error", err)
		return nil, err
	}

	g.logger.Info("Generated menu", "user_id", userID, "target_kcal", target, "total_kcal", generated.TotalCalories)

	return generated, nil
}
