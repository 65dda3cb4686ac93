package ports

import (
	"context"

	"github.com/safegate/gate-api/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer to AuthService.
type RegisterInput struct {
	Name     string
	CPF      string
	Phone    string
	Email    string
	Password string
	Role     string
}

// UpdateProfileInput carries a partial profile update. Email targets the
// account; empty fields are left untouched.
type UpdateProfileInput struct {
	Email    string
	Name     string
	Phone    string
	Password string
}

// AuthService covers registration, login, and profile maintenance.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	UpdateProfile(ctx context.Context, in UpdateProfileInput) error
}
