package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"mealia-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v72"
)

// HandleStripeWebhook processes checkout events for the premium tier.
func (h *Handler) HandleStripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Error("Failed to read webhook body", "error", err)
		c.String(http.StatusBadRequest, "Failed to read request body")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		h.logger.Error("Missing Stripe signature header")
		c.String(http.StatusBadRequest, "Missing signature")
		return
	}

	event, err := h.stripe.VerifyWebhookSignature(body, signature)
	if err != nil {
		h.logger.Error("Failed to verify webhook signature", "error", err)
		c.String(http.StatusBadRequest, "Invalid signature")
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			h.logger.Error("Failed to parse checkout session", "error", err)
			c.String(http.StatusBadRequest, "Failed to parse event data")
			return
		}

		if session.ClientReferenceID == "" {
			h.logger.Error("Missing client reference ID", "session_id", session.ID)
			c.String(http.StatusBadRequest, "Missing client reference ID")
			return
		}

		userID, err := strconv.ParseInt(session.ClientReferenceID, 10, 64)
		if err != nil {
			h.logger.Error("Invalid client reference ID", "value", session.ClientReferenceID)
			c.String(http.StatusBadRequest, "Invalid client reference ID")
			return
		}

		// Record the payment and flag premium in the background so the
		// webhook acknowledges within Stripe's timeout.
		go h.recordPremiumPurchase(userID, &session)
		h.logger.Info("Premium purchase processing started", "user_id", userID, "session_id", session.ID)

	case "invoice.payment_failed":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			h.logger.Error("Failed to parse invoice", "error", err)
			break
		}
		h.logger.Error("Subscription payment failed", "invoice_id", invoice.ID)
	}

	c.String(http.StatusOK, "Webhook received")
}

func (h *Handler) recordPremiumPurchase(userID int64, session *stripe.CheckoutSession) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	payment := &models.Payment{
		UserID:          userID,
		Amount:          session.AmountTotal,
		Currency:        string(session.Currency),
		StripeSessionID: session.ID,
		Status:          "completed",
	}

	if err := h.store.SavePayment(ctx, payment); err != nil {
		h.logger.Error("Failed to record payment", "user_id", userID, "error", err)
		return
	}

	if err := h.store.SetPremium(ctx, userID, true); err != nil {
		h.logger.Error("Failed to flag user premium", "user_id", userID, "error", err)
		return
	}

	h.logger.Info("User upgraded to premium", "user_id", userID)
}
