package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/beautyparlor/booking-api/internal/core/ports"
)

type stubTokenService struct {
	issueFn  func(claims ports.Claims) (string, error)
	verifyFn func(token string) (ports.Claims, error)
}

func (s *stubTokenService) Issue(claims ports.Claims) (string, error) {
	return s.issueFn(claims)
}

func (s *stubTokenService) Verify(token string) (ports.Claims, error) {
	return s.verifyFn(token)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Issue_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubTokenService{
		issueFn: func(claims ports.Claims) (string, error) {
			if claims.Email != "alice@example.com" || claims.Name != "Alice" {
				t.Fatalf("unexpected claims: %+v", claims)
			}
			return "token123", nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"alice@example.com","name":"Alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/jwt", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Issue(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Issue_MissingEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubTokenService{
		issueFn: func(claims ports.Claims) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Issue(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Issue_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubTokenService{
		issueFn: func(claims ports.Claims) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Issue(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
