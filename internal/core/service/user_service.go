package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/safegate/gate-api/internal/core/domain"
	"github.com/safegate/gate-api/internal/core/ports"
)

// UserService implements the admin-facing directory operations.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.PublicUser, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Delete(ctx context.Context, email string) error {
	if err := s.repo.DeleteByEmail(ctx, email); err != nil {
		return err
	}
	s.log.Info().Str("email", email).Msg("user deleted")
	return nil
}
