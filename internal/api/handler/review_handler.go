package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautyparlor/booking-api/internal/core/ports"
)

// ReviewHandler handles customer testimonial routes.
type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewRequest struct {
	Reviewer string `json:"reviewer" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Text     string `json:"text" validate:"required"`
}

// List handles GET /reviews. Public, no token required.
//
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  domain.Review
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviews.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create handles POST /reviews. Public, no token required.
//
// @Summary      Submit a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  domain.Review
// @Failure      422   {object}  errorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	review, err := h.reviews.Create(c.Request().Context(), ports.CreateReviewInput{
		Reviewer: req.Reviewer,
		Email:    req.Email,
		Rating:   req.Rating,
		Text:     req.Text,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}
