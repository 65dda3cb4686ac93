package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/safegate/gate-api/internal/core/domain"
	"github.com/safegate/gate-api/internal/core/ports"
)

// AuthService implements registration, login, and profile updates.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		CPF:          in.CPF,
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	}

	// Uniqueness of email/CPF is enforced by the store's constraints; a race
	// between lookup and insert surfaces here as ErrDuplicateUser.
	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("user registered")
	return user, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// are indistinguishable to the caller: both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("email", user.Email).Msg("login succeeded")
	return token, user, nil
}

// UpdateProfile applies a partial update: only supplied fields change. The
// target account comes from the request body's email or, absent that, the
// authenticated identity (resolved by the handler before calling here).
func (s *AuthService) UpdateProfile(ctx context.Context, in ports.UpdateProfileInput) error {
	if in.Email == "" {
		return domain.ErrMissingEmail
	}

	// Existence check first so an unknown email reports 404, not a silent
	// zero-row update.
	if _, err := s.repo.FindByEmail(ctx, in.Email); err != nil {
		return err
	}

	var update ports.ProfileUpdate
	if in.Name != "" {
		update.Name = &in.Name
	}
	if in.Phone != "" {
		update.Phone = &in.Phone
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		update.PasswordHash = &hash
	}

	if err := s.repo.UpdateProfile(ctx, in.Email, update); err != nil {
		return err
	}

	s.log.Info().Str("email", in.Email).Msg("profile updated")
	return nil
}
