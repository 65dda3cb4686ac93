package ports

import (
	"context"

	"github.com/safegate/gate-api/internal/core/domain"
)

// ProfileUpdate carries the optional fields of a partial profile update.
// Nil means "keep the stored value".
type ProfileUpdate struct {
	Name         *string
	Phone        *string
	PasswordHash *string
}

// UserRepository defines persistence for the user directory.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// RoleByEmail returns the current stored role; domain.ErrUserNotFound
	// when no such user exists. Used by the authorization slow path.
	RoleByEmail(ctx context.Context, email string) (string, error)
	UpdateProfile(ctx context.Context, email string, update ProfileUpdate) error
	List(ctx context.Context) ([]domain.PublicUser, error)
	DeleteByEmail(ctx context.Context, email string) error
}
