package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP surface around the handler set.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/google", h.GoogleLogin)
	}
	r.POST("/webhook/stripe", h.HandleStripeWebhook)

	// Protected routes
	user := r.Group("/user")
	user.Use(h.AuthRequired())
	{
		user.GET("/profile", h.GetProfile)
		user.PUT("/profile", h.UpdateProfile)
	}

	inventory := r.Group("/inventory")
	inventory.Use(h.AuthRequired())
	{
		inventory.GET("", h.ListInventory)
		inventory.POST("", h.AddInventoryItem)
		inventory.PUT("/:id", h.UpdateInventoryItem)
		inventory.DELETE("/:id", h.DeleteInventoryItem)
	}

	recipes := r.Group("/recipes")
	recipes.Use(h.AuthRequired())
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.SaveRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}

	menu := r.Group("/menu")
	menu.Use(h.AuthRequired())
	{
		menu.POST("/generate", h.GenerateMenu)
	}

	billing := r.Group("/billing")
	billing.Use(h.AuthRequired())
	{
		billing.POST("/checkout", h.CreateCheckout)
	}

	return r
}
