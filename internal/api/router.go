package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/backoffice/admin-console/internal/api/handler"
	"github.com/backoffice/admin-console/internal/api/middleware"
	"github.com/backoffice/admin-console/internal/core/domain"
	"github.com/backoffice/admin-console/internal/core/ports"
	"github.com/backoffice/admin-console/internal/core/service"
	mongodb "github.com/backoffice/admin-console/internal/infrastructure/db/mongo"
	redisdb "github.com/backoffice/admin-console/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case the dashboard counts skip the cache.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("console"))

	// --- Dependencies ---
	var countCache ports.CountCache
	if rdb != nil {
		countCache = redisdb.NewCountCache(rdb)
	}

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)

	hasher := service.NewBcryptHasher()
	tokens := service.NewTokenService(jwtSecret)
	authService := service.NewAuthService(userRepo, hasher, tokens, countCache, log)
	userService := service.NewUserService(userRepo, hasher, countCache, log)
	productService := service.NewProductService(productRepo, countCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	authenticated := middleware.Auth(tokens)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Routes ---
	apiGroup := e.Group("/api")

	auth := apiGroup.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	user := apiGroup.Group("/user", authenticated)
	user.PUT("/update-password", userHandler.UpdatePassword)
	user.PUT("/update-profile", userHandler.UpdateProfile)
	user.GET("/get-all-users-count", userHandler.UsersCount)
	user.GET("/get-user-profile/:id", userHandler.Profile)

	admin := apiGroup.Group("/admin", authenticated, adminOnly)
	admin.GET("/get-all-users", adminHandler.ListUsers)
	admin.POST("/create-user", adminHandler.CreateUser)
	admin.PUT("/edit-user/:id", adminHandler.EditUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	product := apiGroup.Group("/product", authenticated)
	product.POST("/create-product", productHandler.Create)
	product.GET("/get-all-products", productHandler.List)
	product.PUT("/edit-product/:id", productHandler.Edit)
	product.DELETE("/delete-product/:id", productHandler.Delete)
	product.GET("/get-all-products-count", productHandler.Count)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
