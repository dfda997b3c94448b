package server

import (
	"errors"
	"net/http"

	"mealia-backend/internal/menu"

	"github.com/gin-gonic/gin"
)

// GenerateMenu runs the generation pipeline for the authenticated user and
// maps its failure taxonomy onto HTTP statuses. Nothing is retried here:
// on 502 the client is expected to resubmit.
func (h *Handler) GenerateMenu(c *gin.Context) {
	generated, err := h.generator.GenerateMenu(c.Request.Context(), currentUserID(c))

	switch {
	case err == nil:
		c.JSON(http.StatusOK, generated)
	case errors.Is(err, menu.ErrEmptyInventory):
		c.JSON(http.StatusBadRequest, gin.H{"error": "tu inventario está vacío, añade ingredientes antes de generar un menú"})
	case errors.Is(err, menu.ErrMalformedOutput):
		c.JSON(http.StatusBadGateway, gin.H{"error": "la respuesta del chef no se pudo interpretar, inténtalo de nuevo"})
	case errors.Is(err, menu.ErrServiceUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "el servicio de generación no está disponible, inténtalo de nuevo"})
	default:
		h.logger.Error("Menu generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo generar el menú"})
	}
}

// CreateCheckout opens a Stripe checkout session for the premium tier.
func (h *Handler) CreateCheckout(c *gin.Context) {
	sessionID, url, err := h.stripe.CreateCheckoutSession(currentUserID(c), h.successURL, h.cancelURL)
	if err != nil {
		h.logger.Error("Failed to create checkout session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "url": url})
}
