package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beautyparlor/booking-api/internal/api/handler"
	"github.com/beautyparlor/booking-api/internal/api/middleware"
	"github.com/beautyparlor/booking-api/internal/core/ports"
	"github.com/beautyparlor/booking-api/internal/core/service"
	mongodb "github.com/beautyparlor/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/beautyparlor/booking-api/internal/infrastructure/db/redis"
	"github.com/beautyparlor/booking-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, issuer ports.IntentIssuer, jwtSecret string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Logger())

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	intentCache := redisdb.NewIntentCache(rdb)

	// --- Core services ---
	tokenService := service.NewTokenService(jwtSecret, time.Hour)
	userService := service.NewUserService(userRepo, logger.Get())
	catalogService := service.NewCatalogService(serviceRepo, logger.Get())
	reviewService := service.NewReviewService(reviewRepo, logger.Get())
	bookingService := service.NewBookingService(bookingRepo, userRepo, logger.Get())
	paymentService := service.NewPaymentService(issuer, intentCache, logger.Get())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(tokenService)
	userHandler := handler.NewUserHandler(userService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// --- Route guards ---
	requireToken := middleware.Auth(tokenService)
	requireAdmin := middleware.RequireAdmin(userRepo)

	// --- Auth ---
	e.POST("/jwt", authHandler.Issue)

	// --- Users ---
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.List, requireToken, requireAdmin)
	e.GET("/users/admin/:email", userHandler.AdminStatus, requireToken)
	e.PATCH("/users/admin/:id", userHandler.Promote, requireToken, requireAdmin)
	e.DELETE("/users/:id", userHandler.Delete, requireToken, requireAdmin)

	// --- Services ---
	e.GET("/services", serviceHandler.List)
	e.GET("/services/:id", serviceHandler.Get)
	e.POST("/services", serviceHandler.Create, requireToken, requireAdmin)
	e.DELETE("/services/:id", serviceHandler.Delete, requireToken, requireAdmin)

	// --- Reviews ---
	e.GET("/reviews", reviewHandler.List)
	e.POST("/reviews", reviewHandler.Create)

	// --- Bookings ---
	e.GET("/bookings", bookingHandler.ListAll, requireToken, requireAdmin)
	e.GET("/bookings/:email", bookingHandler.ListByEmail, requireToken)
	e.POST("/bookings", bookingHandler.Create, requireToken)

	// --- Payments ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
