package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/safegate/gate-api/internal/api/handler"
	"github.com/safegate/gate-api/internal/api/middleware"
	"github.com/safegate/gate-api/internal/core/service"
	"github.com/safegate/gate-api/internal/infrastructure/crypto"
	"github.com/safegate/gate-api/internal/infrastructure/db/postgres"
	redisdb "github.com/safegate/gate-api/internal/infrastructure/db/redis"
)

// Options carries the request-path configuration the router needs.
type Options struct {
	JWTSecret string
	// TrustAdminClaim enables the admin gate's fast path; see
	// middleware.AdminPolicy.
	TrustAdminClaim bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("safegate"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	gateRepo := postgres.NewGateRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	tokens := service.NewTokenService(opts.JWTSecret)
	authService := service.NewAuthService(userRepo, crypto.NewBcryptHasher(), tokens, log)
	gateService := service.NewGateService(gateRepo, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService, denylist)
	gateHandler := handler.NewGateHandler(gateService)
	adminHandler := handler.NewAdminHandler(userService)

	authenticated := middleware.Auth(tokens)
	adminOnly := middleware.AdminOnly(userRepo, denylist,
		middleware.AdminPolicy{TrustAdminClaim: opts.TrustAdminClaim}, log)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	// Update resolves its target from the body's email when present, so the
	// token is optional here; the handler falls back to the authenticated
	// identity only when both are available.
	e.PUT("/auth/update", authHandler.Update, middleware.OptionalAuth(tokens))
	e.POST("/auth/logout", authHandler.Logout, authenticated)

	// --- Gate routes (any authenticated user) ---
	e.POST("/gate/action", gateHandler.Action, authenticated)
	e.GET("/gate/history", gateHandler.History, authenticated)
	e.GET("/gate/logs", gateHandler.Logs, authenticated)
	// Delete-by-id requires a valid token but not the admin role.
	e.DELETE("/gate/history/:id", gateHandler.DeleteHistory, authenticated)

	// --- Admin routes ---
	e.GET("/admin/users", adminHandler.ListUsers, authenticated, adminOnly)
	e.DELETE("/admin/users/:email", adminHandler.DeleteUser, authenticated, adminOnly)
	e.GET("/admin/logs", gateHandler.Logs, authenticated, adminOnly)

	// --- Probes & metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
