package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/beautyparlor/booking-api/internal/core/domain"
	"github.com/beautyparlor/booking-api/internal/core/ports"
)

type stubPaymentService struct {
	createIntentFn func(ctx context.Context, input ports.CreateIntentInput) (*ports.IntentResult, error)
}

func (s *stubPaymentService) CreateIntent(ctx context.Context, input ports.CreateIntentInput) (*ports.IntentResult, error) {
	return s.createIntentFn(ctx, input)
}

func TestPaymentHandler_CreateIntent_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPaymentService{
		createIntentFn: func(ctx context.Context, input ports.CreateIntentInput) (*ports.IntentResult, error) {
			if input.Price != 19.99 {
				t.Fatalf("unexpected price: %v", input.Price)
			}
			if input.IdempotencyKey != "pay-1" {
				t.Fatalf("expected idempotency key forwarded, got %q", input.IdempotencyKey)
			}
			return &ports.IntentResult{ClientSecret: "pi_secret"}, nil
		},
	}
	handler := NewPaymentHandler(stub)

	body := strings.NewReader(`{"price":19.99}`)
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(idempotencyKeyHeader, "pay-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateIntent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["clientSecret"] != "pi_secret" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPaymentHandler_CreateIntent_MissingPrice(t *testing.T) {
	e := newTestEcho()
	stub := &stubPaymentService{
		createIntentFn: func(ctx context.Context, input ports.CreateIntentInput) (*ports.IntentResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPaymentHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateIntent(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestPaymentHandler_CreateIntent_InvalidPrice(t *testing.T) {
	e := newTestEcho()
	stub := &stubPaymentService{
		createIntentFn: func(ctx context.Context, input ports.CreateIntentInput) (*ports.IntentResult, error) {
			return nil, domain.ErrInvalidPrice
		},
	}
	handler := NewPaymentHandler(stub)

	body := strings.NewReader(`{"price":0.001}`)
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateIntent(c)
	if !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}
