package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/safegate/gate-api/internal/api/metrics"
	"github.com/safegate/gate-api/internal/api/middleware"
	"github.com/safegate/gate-api/internal/core/domain"
	"github.com/safegate/gate-api/internal/core/ports"
)

// TokenRevoker records a token id as revoked until the token would have
// expired on its own.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

type AuthHandler struct {
	authService ports.AuthService
	revoker     TokenRevoker
}

func NewAuthHandler(authService ports.AuthService, revoker TokenRevoker) *AuthHandler {
	return &AuthHandler{authService: authService, revoker: revoker}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		CPF:      req.CPF,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Usuário criado com sucesso!"})
}

// Login authenticates a user and returns a JWT token with the public profile.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		// Malformed login input is reported as the same opaque credential
		// failure so the response shape never hints at what was wrong.
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return domain.ErrInvalidCredentials
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Update applies a partial profile update. The target account is the email
// in the body or, when absent, the authenticated identity's email.
//
// @Summary      Update profile fields
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      updateRequest  true  "Fields to update"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/update [put]
func (h *AuthHandler) Update(c echo.Context) error {
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	email := req.Email
	if email == "" {
		if claims := middleware.ClaimsFrom(c); claims != nil {
			email = claims.Email
		}
	}

	err := h.authService.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		Email:    email,
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Dados atualizados com sucesso!"})
}

// Logout revokes the presented token for the remainder of its lifetime.
//
// @Summary      Logout (revoke the current token)
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "acesso negado")
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		// Already expired; nothing to revoke.
		return c.JSON(http.StatusOK, messageResponse{Message: "Sessão encerrada"})
	}
	if err := h.revoker.Revoke(c.Request().Context(), claims.TokenID, ttl); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Sessão encerrada"})
}
