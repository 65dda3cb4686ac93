package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/safegate/gate-api/internal/core/domain"
	"github.com/safegate/gate-api/internal/core/ports"
)

const pgErrUniqueViolation = "23505"

// UserRepository implements ports.UserRepository over the usuarios table.
type UserRepository struct {
	db *sql.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		insert into usuarios (nome, cpf, telefone, email, senha, tipo_usuario)
		values ($1, $2, $3, $4, $5, $6)
		returning id_usuario
	`, user.Name, user.CPF, user.Phone, user.Email, user.PasswordHash, user.Role).Scan(&id)
	if err != nil {
		if pgErr, ok := maybePgError(err); ok && pgErr.Code == pgErrUniqueViolation {
			return 0, domain.ErrDuplicateUser
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, `
		select id_usuario, nome, cpf, telefone, email, senha, tipo_usuario
		from usuarios
		where email = $1
	`, email).Scan(&u.ID, &u.Name, &u.CPF, &u.Phone, &u.Email, &u.PasswordHash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) RoleByEmail(ctx context.Context, email string) (string, error) {
	var role string
	err := r.db.QueryRowContext(ctx,
		`select tipo_usuario from usuarios where email = $1`, email,
	).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("role lookup: %w", err)
	}
	return role, nil
}

// UpdateProfile applies a partial update; nil fields keep the stored value.
func (r *UserRepository) UpdateProfile(ctx context.Context, email string, update ports.ProfileUpdate) error {
	_, err := r.db.ExecContext(ctx, `
		update usuarios set
			nome     = coalesce($1, nome),
			telefone = coalesce($2, telefone),
			senha    = coalesce($3, senha)
		where email = $4
	`, nullable(update.Name), nullable(update.Phone), nullable(update.PasswordHash), email)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.PublicUser, error) {
	rows, err := r.db.QueryContext(ctx, `
		select id_usuario, nome, email, tipo_usuario
		from usuarios
		order by id_usuario
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.PublicUser, 0)
	for rows.Next() {
		var u domain.PublicUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) DeleteByEmail(ctx context.Context, email string) error {
	res, err := r.db.ExecContext(ctx, `delete from usuarios where email = $1`, email)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func maybePgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
