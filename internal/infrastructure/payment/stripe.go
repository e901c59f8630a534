// Package payment wraps the Stripe SDK behind the intent-issuer port so
// the core never touches processor types directly.
package payment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeIssuer creates payment intents through the Stripe API.
type StripeIssuer struct {
	api *client.API
}

// NewStripeIssuer builds an issuer from the account's secret key.
func NewStripeIssuer(secretKey string) *StripeIssuer {
	return &StripeIssuer{api: client.New(secretKey, nil)}
}

// CreateIntent creates a card payment intent for the given minor-unit
// amount and returns its client secret. When an idempotency key is
// supplied it is forwarded to Stripe, which deduplicates retried calls
// on its side as well.
func (s *StripeIssuer) CreateIntent(ctx context.Context, amount int64, currency, idempotencyKey string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
