package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautyparlor/booking-api/internal/api/metrics"
	"github.com/beautyparlor/booking-api/internal/core/ports"
)

// PaymentHandler handles the payment intent route.
type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type createIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent handles POST /create-payment-intent. The price arrives in
// major units (dollars) and is charged in cents. Retries carrying the
// same Idempotency-Key header replay the original client secret without
// contacting the processor again.
//
// @Summary      Create a card payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string               false  "Client retry key"
// @Param        body             body      createIntentRequest  true   "Amount to charge"
// @Success      200              {object}  createIntentResponse
// @Failure      422              {object}  errorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.payments.CreateIntent(c.Request().Context(), ports.CreateIntentInput{
		Price:          req.Price,
		IdempotencyKey: c.Request().Header.Get(idempotencyKeyHeader),
	})
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		return err
	}

	if result.Replayed {
		metrics.PaymentIntentsTotal.WithLabelValues("replayed").Inc()
	} else {
		metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	}
	return c.JSON(http.StatusOK, createIntentResponse{ClientSecret: result.ClientSecret})
}
