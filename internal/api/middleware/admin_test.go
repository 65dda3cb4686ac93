package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/safegate/gate-api/internal/core/domain"
	"github.com/safegate/gate-api/internal/core/ports"
)

type stubRoleLookup struct {
	roles    map[string]string
	failWith error
	calls    int
}

func (s *stubRoleLookup) RoleByEmail(_ context.Context, email string) (string, error) {
	s.calls++
	if s.failWith != nil {
		return "", s.failWith
	}
	role, ok := s.roles[email]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return role, nil
}

type stubDenylist struct {
	revoked  map[string]bool
	failWith error
}

func (s *stubDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if s.failWith != nil {
		return false, s.failWith
	}
	return s.revoked[tokenID], nil
}

func adminGateCall(t *testing.T, claims *ports.Claims, lookup RoleLookup, denylist Denylist, policy AdminPolicy) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(claimsKey, claims)
	}

	mw := AdminOnly(lookup, denylist, policy, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAdminOnly_NoClaims(t *testing.T) {
	rec := adminGateCall(t, nil, &stubRoleLookup{}, &stubDenylist{}, AdminPolicy{})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminOnly_NonAdminRejected(t *testing.T) {
	lookup := &stubRoleLookup{roles: map[string]string{"bob@example.com": domain.RoleClient}}
	claims := &ports.Claims{UserID: 2, Email: "bob@example.com", Role: domain.RoleClient}

	rec := adminGateCall(t, claims, lookup, &stubDenylist{}, AdminPolicy{})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAdminOnly_AdminAllowed(t *testing.T) {
	lookup := &stubRoleLookup{roles: map[string]string{"root@example.com": domain.RoleAdmin}}
	claims := &ports.Claims{UserID: 1, Email: "root@example.com", Role: domain.RoleAdmin}

	rec := adminGateCall(t, claims, lookup, &stubDenylist{}, AdminPolicy{})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// A claim can be behind the store: under the default policy an admin-claiming
// token whose user was downgraded is re-checked and rejected.
func TestAdminOnly_DowngradedAdminRejected(t *testing.T) {
	lookup := &stubRoleLookup{roles: map[string]string{"root@example.com": domain.RoleClient}}
	claims := &ports.Claims{UserID: 1, Email: "root@example.com", Role: domain.RoleAdmin}

	rec := adminGateCall(t, claims, lookup, &stubDenylist{}, AdminPolicy{})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 after downgrade, got %d", rec.Code)
	}
}

// The claim can also understate the current role: a client token whose user
// has since been promoted passes the slow path.
func TestAdminOnly_PromotedClientAllowed(t *testing.T) {
	lookup := &stubRoleLookup{roles: map[string]string{"bob@example.com": domain.RoleAdmin}}
	claims := &ports.Claims{UserID: 2, Email: "bob@example.com", Role: domain.RoleClient}

	rec := adminGateCall(t, claims, lookup, &stubDenylist{}, AdminPolicy{})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after promotion, got %d", rec.Code)
	}
}

func TestAdminOnly_UnknownUserRejected(t *testing.T) {
	claims := &ports.Claims{UserID: 9, Email: "ghost@example.com", Role: domain.RoleClient}

	rec := adminGateCall(t, claims, &stubRoleLookup{roles: map[string]string{}}, &stubDenylist{}, AdminPolicy{})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAdminOnly_LookupFailure(t *testing.T) {
	lookup := &stubRoleLookup{failWith: errors.New("connection reset")}
	claims := &ports.Claims{UserID: 1, Email: "root@example.com", Role: domain.RoleClient}

	rec := adminGateCall(t, claims, lookup, &stubDenylist{}, AdminPolicy{})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestAdminOnly_FastPathSkipsStore(t *testing.T) {
	lookup := &stubRoleLookup{roles: map[string]string{}}
	claims := &ports.Claims{UserID: 1, Email: "root@example.com", Role: domain.RoleAdmin, TokenID: "jti-1"}

	rec := adminGateCall(t, claims, lookup, &stubDenylist{}, AdminPolicy{TrustAdminClaim: true})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if lookup.calls != 0 {
		t.Fatalf("fast path must not query the store, got %d calls", lookup.calls)
	}
}

func TestAdminOnly_FastPathRevokedToken(t *testing.T) {
	denylist := &stubDenylist{revoked: map[string]bool{"jti-1": true}}
	claims := &ports.Claims{UserID: 1, Email: "root@example.com", Role: domain.RoleAdmin, TokenID: "jti-1"}

	rec := adminGateCall(t, claims, &stubRoleLookup{}, denylist, AdminPolicy{TrustAdminClaim: true})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %d", rec.Code)
	}
}

func TestAdminOnly_FastPathDenylistFailureFallsThrough(t *testing.T) {
	denylist := &stubDenylist{failWith: errors.New("redis down")}
	claims := &ports.Claims{UserID: 1, Email: "root@example.com", Role: domain.RoleAdmin, TokenID: "jti-1"}

	rec := adminGateCall(t, claims, &stubRoleLookup{}, denylist, AdminPolicy{TrustAdminClaim: true})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when denylist is unavailable, got %d", rec.Code)
	}
}
