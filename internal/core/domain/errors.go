package domain

import "errors"

// Sentinel errors shared across services, repositories, and the HTTP error
// handler. Every component failure is classified as one of these before it
// reaches the client; anything else is logged and surfaced as a generic 500.
var (
	// ErrInvalidCredentials covers both "unknown email" and "wrong password".
	// Login deliberately collapses the two so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("credenciais inválidas")

	// ErrInvalidToken covers malformed, badly signed, and expired tokens.
	ErrInvalidToken = errors.New("token inválido")

	// ErrTokenRevoked is returned when a structurally valid token's JTI is
	// present in the denylist.
	ErrTokenRevoked = errors.New("token revogado")

	// ErrForbidden means authenticated but lacking the required role.
	ErrForbidden = errors.New("acesso restrito a administradores")

	ErrInvalidRole   = errors.New("tipo de usuário inválido")
	ErrInvalidAction = errors.New("ação inválida")
	ErrMissingEmail  = errors.New("email é obrigatório")

	ErrUserNotFound   = errors.New("email não encontrado")
	ErrActionNotFound = errors.New("registro não encontrado")

	// ErrDuplicateUser signals a uniqueness violation on email or CPF.
	ErrDuplicateUser = errors.New("email ou CPF já cadastrado")
)
