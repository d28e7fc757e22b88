package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourbook/internal/authz"
	"tourbook/internal/cache"
	"tourbook/internal/config"
	"tourbook/internal/database"
	"tourbook/internal/handler"
	"tourbook/internal/logger"
	"tourbook/internal/mailer"
	"tourbook/internal/media"
	"tourbook/internal/middleware"
	"tourbook/internal/payment"
	"tourbook/internal/queue"
	"tourbook/internal/repository"
	"tourbook/internal/router"
	"tourbook/internal/service"
	"tourbook/internal/storage"
	"tourbook/internal/validator"
	"tourbook/pkg/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate swag init -g cmd/server/main.go -o swagger -d ../../

// @title           Natours API
// @version         1.0
// @description     Tour booking REST API built with Gin, MongoDB, Redis and Stripe.

// @contact.name    API Support
// @contact.email   hello@natours.io

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

const (
	mailboxCapacity = 100
	rateLimitSweep  = 10 * time.Minute
	shutdownTimeout = 30 * time.Second
	indexTimeout    = 30 * time.Second
)

func main() {
	// Load configuration
	cfg := config.Load()

	appLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync(appLog)
	appLog.Info("Configuration loaded", zap.String("env", cfg.Env))

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoConnectionString(), cfg.MongoDatabase, appLog)
	defer mongoDB.Close()

	// Uniqueness and the geo queries depend on these
	indexCtx, indexCancel := context.WithTimeout(context.Background(), indexTimeout)
	if err := mongoDB.EnsureIndexes(indexCtx); err != nil {
		appLog.Fatal("Failed to create indexes", zap.Error(err))
	}
	indexCancel()

	// Redis cache, optional
	var appCache cache.Cache = cache.Noop{}
	if cfg.RedisURI != "" {
		redisCache := cache.NewRedis(cfg.RedisURI, appLog)
		defer redisCache.Close()
		appCache = redisCache
	} else {
		appLog.Warn("REDIS_URI not set, user lookups are not cached")
	}

	var denylist cache.TokenDenylist
	if cfg.RevokesTokens() {
		denylist = cache.NewTokenDenylist(appCache)
	} else if cfg.LogoutRevokesTokens {
		appLog.Warn("LOGOUT_REVOKES_TOKENS needs REDIS_URI, logout will not revoke tokens")
	}

	// Object storage, optional
	var store storage.Storage
	var uploader *media.Uploader
	if cfg.S3Endpoint != "" {
		s3Client, err := storage.NewS3Client(context.Background(), cfg, appLog)
		if err != nil {
			appLog.Fatal("Failed to configure object storage", zap.Error(err))
		}
		store = s3Client
		uploader = media.NewUploader(media.NewProcessor(), store, appLog)
	} else {
		appLog.Warn("S3_ENDPOINT not set, image uploads are disabled")
	}

	// Payments, optional
	var gateway payment.Gateway = payment.Disabled{}
	if cfg.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.BaseURL)
	} else {
		appLog.Warn("STRIPE_SECRET_KEY not set, checkout is disabled")
	}

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	tourRepo := repository.NewTourRepository(mongoDB.Database)
	reviewRepo := repository.NewReviewRepository(mongoDB.Database)
	bookingRepo := repository.NewBookingRepository(mongoDB.Database)

	// Outgoing email mailbox and its workers
	sender := mailer.New(cfg, appLog)
	emailMailbox := queue.NewMailbox(mailboxCapacity)
	emailProcessor := queue.NewProcessor(emailMailbox, sender, cfg.EmailWorkers, appLog)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   userRepo,
		Cache:      appCache,
		Denylist:   denylist,
		JWTManager: jwtManager,
		Mailer:     sender,
		EmailQueue: emailMailbox,
		Logger:     appLog,
	})
	userService := service.NewUserService(userRepo, appCache, cfg.QueryMaxLimit)
	tourService := service.NewTourService(tourRepo, userRepo, reviewRepo, cfg.QueryMaxLimit)
	reviewService := service.NewReviewService(reviewRepo, tourRepo, userRepo, cfg.QueryMaxLimit)
	bookingService := service.NewBookingService(bookingRepo, tourRepo, userRepo, gateway, cfg.BaseURL, cfg.QueryMaxLimit)

	authorizer := authz.NewRoleAuthorizer()
	cookies := handler.SessionCookies{Lifetime: cfg.CookieExpiry(), Production: cfg.IsProduction()}
	images := handler.NewImages(uploader)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService, cookies, cfg.BaseURL)
	userHandler := handler.NewUserHandler(userService, images)
	tourHandler := handler.NewTourHandler(tourService, images)
	reviewHandler := handler.NewReviewHandler(reviewService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	imageHandler := handler.NewImageHandler(store)
	viewHandler := handler.NewViewHandler(handler.ViewHandlerConfig{
		Tours:      tourService,
		Bookings:   bookingService,
		Users:      userService,
		Auth:       authService,
		Authorizer: authorizer,
		Cookies:    cookies,
		Images:     images,
		BaseURL:    cfg.BaseURL,
	})

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerHour)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:    authHandler,
		UserHandler:    userHandler,
		TourHandler:    tourHandler,
		ReviewHandler:  reviewHandler,
		BookingHandler: bookingHandler,
		ViewHandler:    viewHandler,
		ImageHandler:   imageHandler,
		Authenticator:  authService,
		Authorizer:     authorizer,
		RateLimiter:    rateLimiter,
		Logger:         appLog,
		Env:            cfg.Env,
		CORSOrigins:    cfg.CORSAllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
		UploadMaxBytes: cfg.UploadMaxBytes,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start email processor and rate limiter sweeps
	emailProcessor.Start(ctx)
	stopSweeps := make(chan struct{})
	go rateLimiter.Run(rateLimitSweep, stopSweeps)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		appLog.Info("Server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	appLog.Info("Shutdown signal received", zap.String("signal", sig.String()))

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	appLog.Info("Shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("HTTP server shutdown error", zap.Error(err))
	}

	close(stopSweeps)

	// Cancel context to signal processor shutdown
	cancel()

	// Stop email processor (waits for workers)
	appLog.Info("Stopping email processor")
	emailProcessor.Stop()

	appLog.Info("Server shutdown complete")
}
