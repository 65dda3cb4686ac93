package ports

import (
	"context"

	"github.com/safegate/gate-api/internal/core/domain"
)

// UserService exposes the admin-facing directory operations.
type UserService interface {
	List(ctx context.Context) ([]domain.PublicUser, error)
	Delete(ctx context.Context, email string) error
}
