package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautyparlor/booking-api/internal/api/metrics"
	"github.com/beautyparlor/booking-api/internal/core/ports"
)

const idempotencyKeyHeader = "Idempotency-Key"

// BookingHandler handles appointment routes.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	ServiceID   string  `json:"service_id" validate:"required"`
	ServiceName string  `json:"service_name,omitempty" validate:"omitempty"`
	Date        string  `json:"date" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// ListAll handles GET /bookings (admin only).
//
// @Summary      List every booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	bookings, err := h.bookings.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListByEmail handles GET /bookings/:email. Callers may read their own
// bookings; reading someone else's requires an admin account.
//
// @Summary      List bookings for one customer
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Customer email"
// @Success      200    {array}   domain.Booking
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /bookings/{email} [get]
func (h *BookingHandler) ListByEmail(c echo.Context) error {
	requester, _ := c.Get("email").(string)
	bookings, err := h.bookings.ListByEmail(c.Request().Context(), ports.ListBookingsInput{
		Email:          c.Param("email"),
		RequesterEmail: requester,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Create handles POST /bookings (token required). Retried submissions
// carrying the same Idempotency-Key header return the original booking
// with a 200 instead of inserting a duplicate.
//
// @Summary      Book an appointment
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Client retry key"
// @Param        body             body      createBookingRequest  true   "Booking details"
// @Success      200              {object}  domain.Booking        "Replay of an earlier submission"
// @Success      201              {object}  domain.Booking
// @Failure      401              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.bookings.Create(c.Request().Context(), ports.CreateBookingInput{
		Email:          req.Email,
		ServiceID:      req.ServiceID,
		ServiceName:    req.ServiceName,
		Date:           req.Date,
		Price:          req.Price,
		IdempotencyKey: c.Request().Header.Get(idempotencyKeyHeader),
	})
	if err != nil {
		return err
	}

	if result.AlreadyExisted {
		return c.JSON(http.StatusOK, result.Booking)
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, result.Booking)
}
