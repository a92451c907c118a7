package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixelgram/social-api/internal/api/handler"
	"github.com/pixelgram/social-api/internal/api/middleware"
	"github.com/pixelgram/social-api/internal/core/ports"
	"github.com/pixelgram/social-api/internal/core/service"
	"github.com/pixelgram/social-api/internal/infrastructure/config"
	mongodb "github.com/pixelgram/social-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pixelgram/social-api/internal/infrastructure/db/redis"
	"github.com/pixelgram/social-api/internal/infrastructure/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	cfg *config.Config,
	db *mongo.Database,
	rdb *redis.Client,
	media ports.MediaResolver,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pixelgram"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	issuer := token.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	denylist := redisdb.NewTokenDenylist(rdb)
	presenter := service.NewProfilePresenter(media)

	authService := service.NewAuthService(userRepo, issuer, denylist, presenter, log)
	userService := service.NewUserService(userRepo, presenter, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authRequired := middleware.Auth(cfg.JWT.Secret)

	// --- Auth routes ---
	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout)

	// --- User routes (bearer auth) ---
	users := e.Group("/v1/users", authRequired)
	users.GET("", userHandler.List)
	users.GET("/search", userHandler.Search)
	users.GET("/me", userHandler.Me)
	users.GET("/:id", userHandler.Get)
	users.GET("/:id/followers", userHandler.Followers)
	users.GET("/:id/following", userHandler.Following)
	users.PATCH("/follow/:id", userHandler.FollowToggle)

	// --- Administrative routes (staff only) ---
	admin := e.Group("/v1/admin", authRequired, middleware.StaffOnly())
	admin.GET("/users", userHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
