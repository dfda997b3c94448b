package menu

import (
	"context"
	"errors"
	"testing"

	"mealia-backend/internal/models"
	"mealia-backend/pkg/logger"
)

// fakeStore serves canned inventory, profile and recipes.
type fakeStore struct {
	user    models.User
	items   []models.InventoryItem
	recipes []models.SavedRecipe

	inventoryErr error
}

func (f *fakeStore) GetUser(_ context.Context, id int64) (*models.User, error) {
	u := f.user
	u.ID = id
	return &u, nil
}

func (f *fakeStore) ListInventory(_ context.Context, _ int64) ([]models.InventoryItem, error) {
	return f.items, f.inventoryErr
}

func (f *fakeStore) ListRecentRecipes(_ context.Context, _ int64, limit int) ([]models.SavedRecipe, error) {
	if len(f.recipes) > limit {
		return f.recipes[:limit], nil
	}
	return f.recipes, nil
}

// fakeCompleter returns a canned payload or error and counts calls.
type fakeCompleter struct {
	payload string
	err     error
	calls   int
}

func (f *fakeCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.payload, nil
}

func newTestGenerator(store *fakeStore, completer *fakeCompleter) *Generator {
	return NewGenerator(store, completer, fixedSampler{}, logger.New())
}

func stockedStore() *fakeStore {
	return &fakeStore{
		user: models.User{
			FirstName: "Lucía",
			Goal:      models.GoalMaintenance,
		},
		items: testInventory(),
	}
}

func TestGenerateMenuEmptyInventory(t *testing.T) {
	completer := &fakeCompleter{payload: validPayload}
	g := newTestGenerator(&fakeStore{items: nil}, completer)

	_, err := g.GenerateMenu(context.Background(), 7)
	if !errors.Is(err, ErrEmptyInventory) {
		t.Fatalf("GenerateMenu() error = %v, want ErrEmptyInventory", err)
	}

	// The paid model call must never happen for an unsatisfiable request.
	if completer.calls != 0 {
		t.Errorf("completer called %d times, want 0", completer.calls)
	}
}

func TestGenerateMenuServiceFailure(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("rate limited")}
	g := newTestGenerator(stockedStore(), completer)

	_, err := g.GenerateMenu(context.Background(), 7)
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("GenerateMenu() error = %v, want ErrServiceUnavailable", err)
	}
	if completer.calls != 1 {
		t.Errorf("completer called %d times, want exactly 1 (no retries)", completer.calls)
	}
}

func TestGenerateMenuMalformedOutput(t *testing.T) {
	completer := &fakeCompleter{payload: "hoy no hay menú"}
	g := newTestGenerator(stockedStore(), completer)

	_, err := g.GenerateMenu(context.Background(), 7)
	if !errors.Is(err, ErrMalformedOutput) {
		t.Fatalf("GenerateMenu() error = %v, want ErrMalformedOutput", err)
	}
	if completer.calls != 1 {
		t.Errorf("completer called %d times, want exactly 1 (no retries)", completer.calls)
	}
}

func TestGenerateMenuHappyPath(t *testing.T) {
	store := stockedStore()
	store.recipes = []models.SavedRecipe{
		{Name: "Tortilla del Alba"},
		{Name: "Arroz Imperial"},
	}
	completer := &fakeCompleter{payload: validPayload}
	g := newTestGenerator(store, completer)

	got, err := g.GenerateMenu(context.Background(), 7)
	if err != nil {
		t.Fatalf("GenerateMenu() error = %v", err)
	}

	if completer.calls != 1 {
		t.Errorf("completer called %d times, want exactly 1", completer.calls)
	}
	if got.TotalCalories != 1300 {
		t.Errorf("TotalCalories = %d, want recomputed 1300", got.TotalCalories)
	}
	if got.Lunch.Name != "Jardín del Mediodía" {
		t.Errorf("Lunch.Name = %q", got.Lunch.Name)
	}
}

func TestGenerateMenuInventoryLoadFailure(t *testing.T) {
	store := stockedStore()
	store.inventoryErr = errors.New("connection reset")
	completer := &fakeCompleter{payload: validPayload}
	g := newTestGenerator(store, completer)

	_, err := g.GenerateMenu(context.Background(), 7)
	if err == nil {
		t.Fatal("GenerateMenu() error = nil, want store failure")
	}
	if errors.Is(err, ErrEmptyInventory) {
		t.Errorf("store failure must not masquerade as empty inventory: %v", err)
	}
	if completer.calls != 0 {
		t.Errorf("completer called %d times, want 0", completer.calls)
	}
}
