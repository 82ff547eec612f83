package middleware

import (
	"encoding/json"
	"slices"
	"strings"

	deliverycontext "taskmanager/internal/delivery/context"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "bearer "

// Placeholders browser clients send when their token variable was never set.
var missingTokenPlaceholders = []string{"null", "undefined", "[object Object]"}

// AuthMiddleware guards routes that require a verified bearer token.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate verifies the bearer token and stores its claims on the context.
// Failures are returned as errors so the shared error handler renders them.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := ExtractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return err
		}

		claims, err := m.auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// ExtractBearerToken pulls the compact token out of an Authorization header.
//
// The scheme is matched case-insensitively. Empty values and the usual
// client placeholders count as a missing token. A JSON object of the form
// {"token": "..."} is unwrapped. Anything left that does not have three
// non-empty dot separated segments is malformed.
func ExtractBearerToken(header string) (string, error) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", domainerrors.ErrMissingToken
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if isPlaceholder(token) {
		return "", domainerrors.ErrMissingToken
	}

	if strings.HasPrefix(token, "{") {
		var wrapped struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal([]byte(token), &wrapped); err != nil {
			return "", domainerrors.ErrMissingToken
		}
		token = strings.TrimSpace(wrapped.Token)
		if isPlaceholder(token) {
			return "", domainerrors.ErrMissingToken
		}
	}

	if !hasCompactShape(token) {
		return "", domainerrors.ErrMalformedToken
	}

	return token, nil
}

func isPlaceholder(token string) bool {
	return token == "" || slices.Contains(missingTokenPlaceholders, token)
}

func hasCompactShape(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
	}

	return true
}
