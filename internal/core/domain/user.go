package domain

// Wire values follow the database schema: roles are stored in
// usuarios.tipo_usuario as "cliente" or "admin".
const (
	RoleAdmin  = "admin"
	RoleClient = "cliente"
)

// ValidRole reports whether role is one of the accepted tipo_usuario values.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleClient
}

// User models a registered actor. Email and CPF are unique keys enforced by
// the store; the password hash never leaves the backend (json:"-").
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"nome"`
	CPF          string `json:"cpf"`
	Phone        string `json:"telefone"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"tipo_usuario"`
}

// PublicUser is the directory listing view of a User: no CPF, no phone,
// no credential material.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"tipo_usuario"`
}

// Public returns the caller-safe view of u.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
