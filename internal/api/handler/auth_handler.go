package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beautyparlor/booking-api/internal/core/ports"
)

// AuthHandler issues bearer tokens for client-verified identities.
type AuthHandler struct {
	tokens ports.TokenService
}

func NewAuthHandler(tokens ports.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

type issueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty" validate:"omitempty"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// Issue handles POST /jwt. It signs a 1-hour token for the supplied identity.
//
// @Summary      Issue a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      issueTokenRequest  true  "Identity claims"
// @Success      200   {object}  issueTokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /jwt [post]
func (h *AuthHandler) Issue(c echo.Context) error {
	var req issueTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := h.tokens.Issue(ports.Claims{Email: req.Email, Name: req.Name})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, issueTokenResponse{Token: token})
}
