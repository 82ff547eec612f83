// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strings"
	"time"

	deliverycontext "taskmanager/internal/delivery/context"
	"taskmanager/internal/delivery/http/response"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"notblank,max=255"`
	Password string `json:"password" form:"password" validate:"notblank"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type meResponse struct {
	Subject   string    `json:"subject"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login exchanges a username and password for a bearer token.
// Clients that accept only text/plain receive the raw token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body could not be decoded")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if wantsPlainText(c.Request().Header.Get(echo.HeaderAccept)) {
		return c.String(http.StatusOK, output.Token)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		Token:     output.Token,
		TokenType: output.TokenType,
		ExpiresAt: output.ExpiresAt,
	}, "Login successful")
}

// Me returns the claims of the token that authenticated the request.
func (h *AuthHandler) Me(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return domainerrors.ErrMissingToken
	}

	return response.Success(c, http.StatusOK, meResponse{
		Subject:   claims.Subject,
		IssuedAt:  claims.IssuedAt,
		ExpiresAt: claims.ExpiresAt,
	}, "")
}

func wantsPlainText(accept string) bool {
	return strings.HasPrefix(strings.TrimSpace(accept), echo.MIMETextPlain)
}
