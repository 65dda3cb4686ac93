package ports

import (
	"time"

	"github.com/safegate/gate-api/internal/core/domain"
)

// Claims is the identity carried inside a verified token. Not kept in sync
// with later user mutations: a role change only propagates on re-login.
type Claims struct {
	UserID int64
	Email  string
	Role   string
	// TokenID is the JTI, used as the denylist key.
	TokenID string
	// ExpiresAt bounds how long a revocation entry needs to live.
	ExpiresAt time.Time
}

// IsAdmin reports whether the claim self-asserts the admin role.
func (c Claims) IsAdmin() bool {
	return c.Role == domain.RoleAdmin
}

// TokenService issues and verifies signed, time-limited identity assertions.
// Verification is purely cryptographic/structural; it never touches storage.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*Claims, error)
}
