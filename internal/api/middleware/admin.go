package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/safegate/gate-api/internal/api/metrics"
	"github.com/safegate/gate-api/internal/core/domain"
	"github.com/safegate/gate-api/internal/core/ports"
)

// RoleLookup resolves the current stored role for an email. It is the
// store-of-truth fallback behind the admin gate.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// Denylist reports whether a token id has been revoked before its natural
// expiry (logout). Consulted only when a self-asserted admin claim is about
// to be trusted without a store lookup.
type Denylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AdminPolicy selects the authorization strategy for admin-gated routes.
type AdminPolicy struct {
	// TrustAdminClaim enables the fast path: a token that already asserts
	// admin is accepted after a denylist check, skipping the store lookup.
	// When false (the default) every admin-gated call re-reads the current
	// role from the store, so a downgrade applies immediately even to a
	// still-valid admin token.
	TrustAdminClaim bool
}

// AdminOnly gates privileged routes. Must run after Auth in the chain.
func AdminOnly(roles RoleLookup, denylist Denylist, policy AdminPolicy, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "acesso negado")
			}
			if err := authorize(c.Request().Context(), claims, policy, roles, denylist, log); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// authorize is the single admin check behind both strategies: trust the
// claim (fast path) or re-verify against the store of truth (slow path).
func authorize(ctx context.Context, claims *ports.Claims, policy AdminPolicy, roles RoleLookup, denylist Denylist, log zerolog.Logger) error {
	if policy.TrustAdminClaim && claims.IsAdmin() {
		revoked, err := denylist.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			// Denylist unavailability must not lock admins out; log and
			// fall through to the claim.
			log.Warn().Err(err).Msg("denylist check failed")
		} else if revoked {
			metrics.AdminAccessDeniedTotal.WithLabelValues("revoked").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, "token revogado")
		}
		return nil
	}

	role, err := roles.RoleByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AdminAccessDeniedTotal.WithLabelValues("unknown_user").Inc()
			return echo.NewHTTPError(http.StatusForbidden, "acesso restrito a administradores")
		}
		log.Error().Err(err).Str("email", claims.Email).Msg("role re-check failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "erro ao verificar permissões")
	}
	if role != domain.RoleAdmin {
		metrics.AdminAccessDeniedTotal.WithLabelValues("not_admin").Inc()
		return echo.NewHTTPError(http.StatusForbidden, "acesso restrito a administradores")
	}
	return nil
}
