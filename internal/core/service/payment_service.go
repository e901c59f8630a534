package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/beautyparlor/booking-api/internal/core/domain"
	"github.com/beautyparlor/booking-api/internal/core/ports"
)

const intentCurrency = "usd"

// PaymentService creates client-confirmable payment intents with the
// external processor. Intents are not persisted locally; the processor is
// the system of record and the caller only receives the client secret.
type PaymentService struct {
	issuer ports.IntentIssuer
	cache  ports.IntentCache
	logger zerolog.Logger
}

// NewPaymentService wires the processor-backed issuer and an optional
// replay cache. A nil cache disables idempotent replay.
func NewPaymentService(issuer ports.IntentIssuer, cache ports.IntentCache, logger zerolog.Logger) *PaymentService {
	return &PaymentService{issuer: issuer, cache: cache, logger: logger}
}

// CreateIntent converts the major-unit price to minor units and issues an
// intent. When an idempotency key is supplied, a retried call returns the
// cached client secret instead of creating a duplicate intent.
func (s *PaymentService) CreateIntent(ctx context.Context, input ports.CreateIntentInput) (*ports.IntentResult, error) {
	amount := minorUnits(input.Price)
	if amount <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	if input.IdempotencyKey != "" && s.cache != nil {
		secret, ok, err := s.cache.Get(ctx, input.IdempotencyKey)
		if err != nil {
			// Cache trouble must not block payments; fall through to the issuer.
			s.logger.Warn().Err(err).Msg("intent cache read failed")
		} else if ok {
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Msg("intent replayed from cache")
			return &ports.IntentResult{ClientSecret: secret, Replayed: true}, nil
		}
	}

	secret, err := s.issuer.CreateIntent(ctx, amount, intentCurrency, input.IdempotencyKey)
	if err != nil {
		s.logger.Error().Err(err).Int64("amount", amount).Msg("failed to create payment intent")
		return nil, err
	}

	if input.IdempotencyKey != "" && s.cache != nil {
		if err := s.cache.Put(ctx, input.IdempotencyKey, secret); err != nil {
			s.logger.Warn().Err(err).Msg("intent cache write failed")
		}
	}

	s.logger.Info().Int64("amount", amount).Str("currency", intentCurrency).Msg("payment intent created")
	return &ports.IntentResult{ClientSecret: secret}, nil
}

// minorUnits converts a major-unit price to integer minor units, rounding
// to the nearest cent. Plain truncation turns 19.99 into 1998 under binary
// floats, which is not what callers supplying display prices expect.
func minorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
