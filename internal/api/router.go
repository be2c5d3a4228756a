package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storekit/commerce-api/internal/api/handler"
	"github.com/storekit/commerce-api/internal/api/middleware"
	"github.com/storekit/commerce-api/internal/core/domain"
	"github.com/storekit/commerce-api/internal/core/service"
	mongodb "github.com/storekit/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storekit/commerce-api/internal/infrastructure/db/redis"
	"github.com/storekit/commerce-api/internal/infrastructure/http/handlers"
	"github.com/storekit/commerce-api/internal/infrastructure/storage"
	"github.com/storekit/commerce-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// A nil rdb disables the login limiter; the readiness probe reports redis as
// absent in that case.
func NewRouter(db *mongo.Database, rdb *redis.Client, files *storage.DiskStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)

	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	var limiter service.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.Login.MaxFailures, cfg.Login.Window)
	}

	authService := service.NewAuthService(userRepo, issuer, limiter, log)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)

	authHandler := handler.NewAuthHandler(authService, files)
	productHandler := handler.NewProductHandler(catalogService, files)
	categoryHandler := handler.NewCategoryHandler(categoryService, files)

	authed := middleware.Auth(issuer)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/user", authHandler.GetProfile, authed)
	e.PUT("/user", authHandler.UpdateProfile, authed)

	// --- Catalog routes ---
	e.GET("/product", productHandler.List)
	e.GET("/product/:id", productHandler.Get)
	e.POST("/product", productHandler.Create, authed, adminOnly)
	e.PUT("/product/:id", productHandler.Update, authed, adminOnly)
	e.DELETE("/product/:id", productHandler.Delete, authed, adminOnly)

	// --- Category routes (historical path spelling) ---
	e.GET("/catagory", categoryHandler.List)
	e.POST("/catagory", categoryHandler.Create, authed, adminOnly)
	e.PUT("/catagory/:id", categoryHandler.Update, authed, adminOnly)
	e.DELETE("/catagory/:id", categoryHandler.Delete, authed, adminOnly)

	// --- Uploaded images ---
	e.Static("/uploads", files.Dir())

	// --- Observability (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
