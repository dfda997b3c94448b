package server

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"mealia-backend/internal/menu"
	"mealia-backend/internal/models"
	"mealia-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type stubStore struct {
	items []models.InventoryItem
}

func (s *stubStore) GetUser(_ context.Context, id int64) (*models.User, error) {
	return &models.User{ID: id, FirstName: "Ana", Goal: models.GoalMaintenance}, nil
}

func (s *stubStore) ListInventory(_ context.Context, _ int64) ([]models.InventoryItem, error) {
	return s.items, nil
}

func (s *stubStore) ListRecentRecipes(_ context.Context, _ int64, _ int) ([]models.SavedRecipe, error) {
	return nil, nil
}

type stubCompleter struct {
	payload string
	err     error
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	return s.payload, s.err
}

const stubPayload = `{
  "breakfast": {"name": "a", "ingredients": [], "steps": [], "calories": 300},
  "lunch": {"name": "b", "ingredients": [], "steps": [], "calories": 600},
  "dinner": {"name": "c", "ingredients": [], "steps": [], "calories": 400},
  "note": "x",
  "total_calories": 999
}`

func newMenuTestRouter(store menu.Store, completer menu.Completer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	sampler := menu.NewSampler(rand.New(rand.NewSource(1)))
	generator := menu.NewGenerator(store, completer, sampler, logger.New())
	h := NewHandler(nil, nil, nil, generator, nil, "", "", logger.New())

	r := gin.New()
	r.POST("/menu/generate", func(c *gin.Context) {
		c.Set(userIDKey, int64(1))
		h.GenerateMenu(c)
	})
	return r
}

func TestGenerateMenuEndpointStatuses(t *testing.T) {
	stocked := []models.InventoryItem{{Name: "pollo", Quantity: 1, Unit: "Kg"}}

	tests := []struct {
		name       string
		store      *stubStore
		completer  *stubCompleter
		wantStatus int
	}{
		{
			name:       "empty inventory is a client error",
			store:      &stubStore{},
			completer:  &stubCompleter{payload: stubPayload},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "service failure is a bad gateway",
			store:      &stubStore{items: stocked},
			completer:  &stubCompleter{err: errors.New("timeout")},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "malformed output is a bad gateway",
			store:      &stubStore{items: stocked},
			completer:  &stubCompleter{payload: "no es JSON"},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "valid menu is returned",
			store:      &stubStore{items: stocked},
			completer:  &stubCompleter{payload: stubPayload},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMenuTestRouter(tt.store, tt.completer)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/menu/generate", nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body: %s", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				var got models.GeneratedMenu
				if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if got.TotalCalories != 1300 {
					t.Errorf("total_calories = %d, want recomputed 1300", got.TotalCalories)
				}
			}
		})
	}
}
