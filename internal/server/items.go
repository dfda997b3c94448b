package server

import (
	"errors"
	"net/http"
	"strconv"

	"mealia-backend/internal/db"
	"mealia-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListInventory(c *gin.Context) {
	items, err := h.store.ListInventory(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logger.Error("Failed to list inventory", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list inventory"})
		return
	}

	if items == nil {
		items = []models.InventoryItem{}
	}
	c.JSON(http.StatusOK, items)
}

type addItemRequest struct {
	Name     string   `json:"name" binding:"required"`
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
}

// AddInventoryItem creates an item or increments the quantity of an
// existing one with the same normalized name.
func (h *Handler) AddInventoryItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quantity := 1.0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be non-negative"})
		return
	}

	item := &models.InventoryItem{
		OwnerID:  currentUserID(c),
		Name:     req.Name,
		Quantity: quantity,
		Unit:     req.Unit,
	}

	if err := h.store.AddInventoryItem(c.Request.Context(), item); err != nil {
		h.logger.Error("Failed to add inventory item", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

type updateItemRequest struct {
	Quantity float64 `json:"quantity"`
}

func (h *Handler) UpdateInventoryItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be non-negative"})
		return
	}

	item, err := h.store.UpdateInventoryQuantity(c.Request.Context(), currentUserID(c), itemID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteInventoryItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := h.store.DeleteInventoryItem(c.Request.Context(), currentUserID(c), itemID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListRecipes(c *gin.Context) {
	recipes, err := h.store.ListRecentRecipes(c.Request.Context(), currentUserID(c), 10)
	if err != nil {
		h.logger.Error("Failed to list recipes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recipes"})
		return
	}

	if recipes == nil {
		recipes = []models.SavedRecipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

type saveRecipeRequest struct {
	Name        string   `json:"name" binding:"required"`
	Ingredients []string `json:"ingredients" binding:"required"`
	Steps       []string `json:"steps" binding:"required"`
	Calories    int      `json:"calories"`
}

func (h *Handler) SaveRecipe(c *gin.Context) {
	var req saveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe := &models.SavedRecipe{
		OwnerID:     currentUserID(c),
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Calories:    req.Calories,
	}

	if err := h.store.SaveRecipe(c.Request.Context(), recipe); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "recipe already saved"})
			return
		}
		h.logger.Error("Failed to save recipe", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save recipe"})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *Handler) DeleteRecipe(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.store.DeleteRecipe(c.Request.Context(), currentUserID(c), recipeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
