package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/safegate/gate-api/internal/core/domain"
	"github.com/safegate/gate-api/internal/core/ports"
)

// tokenTTL is the fixed token lifetime. Tokens are stateless and cannot be
// refreshed; a role change only becomes visible on re-login within this window.
const tokenTTL = time.Hour

type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"tipo_usuario"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService returns a TokenService signing HS256 tokens with the given
// process-wide secret. The secret's presence is enforced at startup by config.
func NewTokenService(secret string) ports.TokenService {
	return &tokenService{secret: []byte(secret), now: time.Now}
}

func (s *tokenService) Issue(user *domain.User) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *tokenService) Verify(token string) (*ports.Claims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	out := &ports.Claims{
		UserID:  userID,
		Email:   claims.Email,
		Role:    claims.Role,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
