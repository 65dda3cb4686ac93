package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/safegate/gate-api/internal/core/ports"
)

// claimsKey is the echo context key the Auth middleware stores claims under.
const claimsKey = "auth_claims"

// Auth authenticates a request from its bearer token. A missing token is
// 401; a present but malformed or expired token is 400. On success the
// decoded claims are attached to the context for the handlers and the
// admin gate.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "acesso negado")
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "token inválido")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// OptionalAuth attaches claims when a bearer token is present but lets
// anonymous requests through. A token that is present and invalid is
// still rejected.
func OptionalAuth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return next(c)
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "token inválido")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims attached by Auth, or nil when the request
// was not authenticated.
func ClaimsFrom(c echo.Context) *ports.Claims {
	claims, _ := c.Get(claimsKey).(*ports.Claims)
	return claims
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
