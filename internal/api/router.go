package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/caseflow/case-api/docs"
	"github.com/caseflow/case-api/internal/api/handler"
	"github.com/caseflow/case-api/internal/api/middleware"
	"github.com/caseflow/case-api/internal/core/domain"
	"github.com/caseflow/case-api/internal/core/ports"
	"github.com/caseflow/case-api/internal/core/service"
	"github.com/caseflow/case-api/internal/core/token"
	mongostore "github.com/caseflow/case-api/internal/infrastructure/db/mongo"
	redisstore "github.com/caseflow/case-api/internal/infrastructure/db/redis"
	"github.com/caseflow/case-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// All dependencies are constructed here from the injected store clients; no
// package-level state is involved.
func NewRouter(db *mongo.Database, rdb *redis.Client, uploads ports.UploadStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("caseflow"))

	// --- Dependencies ---
	issuer := token.NewIssuer(cfg.JWTSecret, 24*time.Hour)

	userRepo := mongostore.NewUserRepository(db)
	caseRepo := mongostore.NewCaseRepository(db)
	caseCache := redisstore.NewCaseListCache(rdb)

	authService := service.NewAuthService(userRepo, issuer, service.AdminSeed{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, log)
	caseService := service.NewCaseService(caseRepo, caseCache, log)

	authHandler := handler.NewAuthHandler(authService)
	caseHandler := handler.NewCaseHandler(caseService, uploads)
	adminHandler := handler.NewAdminHandler(authService)

	authRequired := middleware.Auth(issuer)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Route table ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	e.GET("/api/cases", caseHandler.List)
	e.POST("/api/cases", caseHandler.Create, authRequired)
	e.DELETE("/api/cases/:id", caseHandler.Delete, authRequired, adminOnly)

	e.PUT("/api/block/:id", adminHandler.ToggleBlock, authRequired, adminOnly)
	e.GET("/create-admin", adminHandler.CreateAdmin)

	// --- Uploaded assets ---
	e.Static("/uploads", cfg.Uploads.Dir)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
