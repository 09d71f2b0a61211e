package main

import (
	"context"
	"courseHub/app/echo-server/router"
	"courseHub/business/auth"
	"courseHub/business/cart"
	"courseHub/business/catalog"
	"courseHub/business/checkout"
	"courseHub/business/reporting"
	userService "courseHub/business/user"
	"courseHub/internal/middleware"
	"courseHub/internal/repository/notification"
	psqlRepo "courseHub/internal/repository/postgres"
	redisRepo "courseHub/internal/repository/redis"
	"courseHub/internal/repository/stripe"
	"courseHub/internal/rest"
	"courseHub/pkg/config"
	"courseHub/pkg/database"
	redisdb "courseHub/pkg/database/redis"
	"courseHub/pkg/logger"
	"courseHub/pkg/metrics"
	"courseHub/pkg/utils"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting CourseHub", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Redis is optional: the trending endpoint falls back to the database
	// when the cache is unavailable.
	var trendingCache catalog.TrendingCache
	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, trending cache disabled", "error", err)
	} else {
		trendingCache = redisRepo.NewTrendingCache(redisClient)
		defer redisdb.CloseRedisClient(redisClient)
	}

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	stripeRepo := stripe.NewStripeRepository(
		stripe.StripeConfig{
			StripeApi: cfg.Stripe.StripeSecretKey,
			StripeUrl: cfg.Stripe.StripeBaseUrl,
			Currency:  cfg.Stripe.Currency,
		},
	)

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	courseRepo := psqlRepo.NewCourseRepository(db)
	cartRepo := psqlRepo.NewCartRepository(db)
	paymentHistoryRepo := psqlRepo.NewPaymentHistoryRepository(db)
	enrollmentRepo := psqlRepo.NewEnrollmentRepository(db)
	enrolledStudentRepo := psqlRepo.NewEnrolledStudentRepository(db)

	// Init service
	authService := auth.NewService(userRepo)
	usersService := userService.NewService(userRepo, enrollmentRepo, enrolledStudentRepo)
	catalogService := catalog.NewService(courseRepo, trendingCache)
	cartService := cart.NewService(cartRepo)
	checkoutService := checkout.NewService(enrolledStudentRepo, cartRepo, paymentHistoryRepo, enrollmentRepo, mailjetEmail, stripeRepo)
	reportingService := reporting.NewService(paymentHistoryRepo, enrollmentRepo, userRepo, courseRepo, enrolledStudentRepo)

	// Init handler
	healthHandler := rest.NewHealthHandler(cfg.App.Name, cfg.App.Version)
	sessionHandler := rest.NewSessionHandler(cfg.App.Environment)
	userHandler := rest.NewUserHandler(usersService)
	catalogHandler := rest.NewCatalogHandler(catalogService)
	cartHandler := rest.NewCartHandler(cartService)
	checkoutHandler := rest.NewCheckoutHandler(checkoutService)
	reportingHandler := rest.NewReportingHandler(reportingService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestLogger())

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly(authService)
	studentOnly := middleware.StudentOnly(authService)

	// Setup routes
	e.GET("/", healthHandler.Root)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	router.SetupSessionRoutes(e, sessionHandler)
	router.SetupUserRoutes(e, userHandler, authRequired, adminOnly)
	router.SetupCatalogRoutes(e, catalogHandler, authRequired, adminOnly, studentOnly)
	router.SetupCartRoutes(e, cartHandler, authRequired, studentOnly)
	router.SetupCheckoutRoutes(e, checkoutHandler, authRequired, studentOnly)
	router.SetupReportingRoutes(e, reportingHandler, authRequired, adminOnly, studentOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
