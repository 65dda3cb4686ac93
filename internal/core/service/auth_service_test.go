package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/safegate/gate-api/internal/core/domain"
	"github.com/safegate/gate-api/internal/core/ports"
	"github.com/safegate/gate-api/internal/infrastructure/crypto"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int64
	// failWith forces every call to return this error when set.
	failWith error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.CPF == user.CPF {
			return 0, domain.ErrDuplicateUser
		}
	}
	stored := cloneUser(user)
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.Email] = stored
	return stored.ID, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) RoleByEmail(_ context.Context, email string) (string, error) {
	if r.failWith != nil {
		return "", r.failWith
	}
	u, ok := r.users[email]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return u.Role, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, email string, update ports.ProfileUpdate) error {
	if r.failWith != nil {
		return r.failWith
	}
	u, ok := r.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.PublicUser, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]domain.PublicUser, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (r *stubUserRepo) DeleteByEmail(_ context.Context, email string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.users[email]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, email)
	return nil
}

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, crypto.NewBcryptHasher(), NewTokenService("secret"), zerolog.Nop())
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Alice",
		CPF:      "111.222.333-44",
		Phone:    "11999990000",
		Email:    "alice@example.com",
		Password: "s3cret",
		Role:     domain.RoleClient,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if !crypto.NewBcryptHasher().Verify("s3cret", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	in := registerInput()
	in.Role = "gerente"
	if _, err := svc.Register(context.Background(), in); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput()); err != domain.ErrDuplicateUser {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate register must not create a second row, have %d", len(repo.users))
	}
}

func TestAuthService_Login_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	in := registerInput()
	in.Role = domain.RoleAdmin
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), in.Email, in.Password)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user.PasswordHash == "" {
		// Login returns the full user; the handler strips the hash via json:"-".
		t.Fatalf("expected stored user")
	}

	claims, err := NewTokenService("secret").Verify(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("token role %q does not match registered role", claims.Role)
	}
	if claims.Email != in.Email {
		t.Fatalf("unexpected token email: %s", claims.Email)
	}
}

// Unknown email and wrong password must be indistinguishable.
func TestAuthService_Login_Opaque(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "s3cret"); err != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_UpdateProfile_Partial(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	before := repo.users["alice@example.com"]
	priorName, priorHash := before.Name, before.PasswordHash

	err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		Email: "alice@example.com",
		Phone: "11888887777",
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	after := repo.users["alice@example.com"]
	if after.Phone != "11888887777" {
		t.Fatalf("phone not updated: %s", after.Phone)
	}
	if after.Name != priorName {
		t.Fatalf("name changed unexpectedly: %s", after.Name)
	}
	if after.PasswordHash != priorHash {
		t.Fatalf("password hash changed unexpectedly")
	}
}

func TestAuthService_UpdateProfile_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		Email:    "alice@example.com",
		Password: "newpass",
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	stored := repo.users["alice@example.com"]
	if stored.PasswordHash == "newpass" {
		t.Fatalf("password stored unhashed")
	}
	if !crypto.NewBcryptHasher().Verify("newpass", stored.PasswordHash) {
		t.Fatalf("new password does not verify against stored hash")
	}
}

func TestAuthService_UpdateProfile_MissingEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{Phone: "x"}); err != domain.ErrMissingEmail {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
}

func TestAuthService_UpdateProfile_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{Email: "ghost@example.com", Phone: "x"})
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
