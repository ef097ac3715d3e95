package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ezelectronics/server/internal/api/handler"
	"github.com/ezelectronics/server/internal/api/middleware"
	"github.com/ezelectronics/server/internal/core/domain"
	"github.com/ezelectronics/server/internal/core/service"
	redisdb "github.com/ezelectronics/server/internal/infrastructure/db/redis"
	"github.com/ezelectronics/server/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ezelectronics"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(userRepo, sessions, jwtSecret, tokenTTL)
	productService := service.NewProductService(productRepo, log)

	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)

	authRequired := middleware.Auth(jwtSecret, sessions)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	staffOnly := middleware.RBAC(domain.RoleManager, domain.RoleAdmin)

	root := e.Group("/ezelectronics")

	// --- Account routes ---
	users := root.Group("/users")
	users.POST("", userHandler.Create) // self-registration, no auth
	users.GET("", userHandler.GetAll, authRequired, adminOnly)
	users.DELETE("", userHandler.DeleteAll, authRequired, adminOnly)
	users.GET("/roles/:role", userHandler.GetAllByRole, authRequired, adminOnly)
	users.GET("/:username", userHandler.GetByUsername, authRequired)
	users.PATCH("/:username", userHandler.Update, authRequired)
	users.DELETE("/:username", userHandler.Delete, authRequired)

	// --- Session routes ---
	sessionsGroup := root.Group("/sessions")
	sessionsGroup.POST("", authHandler.Login)
	sessionsGroup.DELETE("/current", authHandler.Logout, authRequired)
	sessionsGroup.GET("/current", authHandler.Current, authRequired)

	// --- Catalog routes ---
	products := root.Group("/products", authRequired, staffOnly)
	products.POST("", productHandler.Register)
	products.GET("", productHandler.List)
	products.GET("/:model", productHandler.Get)
	products.PATCH("/:model/sell", productHandler.Sell)
	products.DELETE("/:model", productHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
