package handler

import "github.com/safegate/gate-api/internal/core/domain"

type registerRequest struct {
	Name     string `json:"nome"         validate:"required"`
	CPF      string `json:"cpf"          validate:"required"`
	Phone    string `json:"telefone"     validate:"required"`
	Email    string `json:"email"        validate:"required,email"`
	Password string `json:"senha"        validate:"required"`
	Role     string `json:"tipo_usuario" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

type updateRequest struct {
	Email    string `json:"email,omitempty"`
	Name     string `json:"nome,omitempty"`
	Phone    string `json:"telefone,omitempty"`
	Password string `json:"senha,omitempty"`
}

type gateActionRequest struct {
	Action      string `json:"acao" validate:"required"`
	Description string `json:"descricao,omitempty"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type actionResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id_registro"`
}
