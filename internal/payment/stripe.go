// internal/payment/stripe.go
package payment

import (
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
	"github.com/stripe/stripe-go/v72/webhook"
)

// StripeClient creates premium-subscription checkout sessions and verifies
// webhook signatures.
type StripeClient struct {
	secretKey     string
	publicKey     string
	webhookSecret string
	priceID       string
}

func NewStripeClient(config struct {
	SecretKey  string
	PublicKey  string
	WebhookKey string
	PriceID    string
	SuccessURL string
	CancelURL  string
}) *StripeClient {
	stripe.Key = config.SecretKey

	return &StripeClient{
		secretKey:     config.SecretKey,
		publicKey:     config.PublicKey,
		webhookSecret: config.WebhookKey,
		priceID:       config.PriceID,
	}
}

func (s *StripeClient) GetWebhookSecret() string {
	return s.webhookSecret
}

// CreateCheckoutSession opens a subscription checkout for the premium tier.
// The user ID travels as the client reference so the webhook can attribute
// the payment. Returns the session ID and the redirect URL.
func (s *StripeClient) CreateCheckoutSession(userID int64, successURL, cancelURL string) (string, string, error) {
	if stripe.Key != s.secretKey {
		stripe.Key = s.secretKey
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:        stripe.String(successURL),
		CancelURL:         stripe.String(cancelURL),
		ClientReferenceID: stripe.String(strconv.FormatInt(userID, 10)),
	}

	sess, err := session.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return sess.ID, sess.URL, nil
}

func (s *StripeClient) VerifyWebhookSignature(payload []byte, sig string) (stripe.Event, error) {
	if s.webhookSecret == "" {
		return stripe.Event{}, fmt.Errorf("webhook secret is not configured")
	}
	return webhook.ConstructEvent(payload, sig, s.webhookSecret)
}
