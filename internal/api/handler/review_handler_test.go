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

type stubReviewService struct {
	listFn   func(ctx context.Context) ([]*domain.Review, error)
	createFn func(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error)
}

func (s *stubReviewService) List(ctx context.Context) ([]*domain.Review, error) {
	return s.listFn(ctx)
}

func (s *stubReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	return s.createFn(ctx, input)
}

func TestReviewHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		createFn: func(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
			if input.Reviewer != "Alice" || input.Rating != 5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Review{ID: "r1", Reviewer: input.Reviewer, Rating: input.Rating, Text: input.Text}, nil
		},
	}
	handler := NewReviewHandler(stub)

	body := strings.NewReader(`{"reviewer":"Alice","rating":5,"text":"Loved the facial."}`)
	req := httptest.NewRequest(http.MethodPost, "/reviews", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestReviewHandler_Create_RatingOutOfRange(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		createFn: func(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewReviewHandler(stub)

	body := strings.NewReader(`{"reviewer":"Alice","rating":6,"text":"too good"}`)
	req := httptest.NewRequest(http.MethodPost, "/reviews", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestReviewHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubReviewService{
		listFn: func(ctx context.Context) ([]*domain.Review, error) {
			return []*domain.Review{{ID: "r1", Reviewer: "Alice", Rating: 5}}, nil
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["reviewer"] != "Alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
