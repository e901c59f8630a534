package ports

import "context"

// IntentIssuer creates a payment intent with the external processor and
// returns its client secret. Amount is in currency minor units.
type IntentIssuer interface {
	CreateIntent(ctx context.Context, amount int64, currency, idempotencyKey string) (string, error)
}

// IntentCache replays previously issued client secrets by idempotency key
// so a retried request does not create a duplicate intent.
type IntentCache interface {
	Get(ctx context.Context, key string) (secret string, ok bool, err error)
	Put(ctx context.Context, key, secret string) error
}

// CreateIntentInput carries the caller-supplied payment parameters.
// Price is in currency major units (e.g. 19.99 USD).
type CreateIntentInput struct {
	Price          float64
	IdempotencyKey string
}

// IntentResult is returned by PaymentService.CreateIntent.
type IntentResult struct {
	ClientSecret string
	// Replayed is true when the idempotency key matched a cached intent.
	Replayed bool
}

// PaymentService defines the payment-intent use case.
type PaymentService interface {
	CreateIntent(ctx context.Context, input CreateIntentInput) (*IntentResult, error)
}
