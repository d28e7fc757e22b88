//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"tourbook/internal/authz"
	"tourbook/internal/cache"
	"tourbook/internal/config"
	"tourbook/internal/handler"
	"tourbook/internal/media"
	"tourbook/internal/middleware"
	"tourbook/internal/queue"
	"tourbook/internal/repository"
	"tourbook/internal/router"
	"tourbook/internal/service"
	"tourbook/internal/storage"
	"tourbook/pkg/auth"
	"tourbook/test/api/testdb"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the session lifetime used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestBaseURL is the public origin the server believes it runs on.
	TestBaseURL = "http://natours.test"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo    repository.UserRepository
	TourRepo    repository.TourRepository
	ReviewRepo  repository.ReviewRepository
	BookingRepo repository.BookingRepository

	// Collaborators standing in for external services
	Payments *FakeGateway
	Outbox   *Outbox

	JWTManager *auth.JWTManager

	emailProcessor *queue.Processor
	cancel         context.CancelFunc
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Cache and denylist on the real Redis
	redisCache := cache.NewRedisFromClient(redisContainer.Client, log)

	// Storage on the real MinIO
	s3Client, err := storage.NewS3Client(ctx, &config.Config{
		S3Endpoint:  minioContainer.Endpoint,
		S3AccessKey: testdb.MinIOAccessKey,
		S3SecretKey: testdb.MinIOSecretKey,
		S3Bucket:    minioContainer.Bucket,
	}, log)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		_ = minioContainer.Cleanup(ctx)
		return nil, err
	}

	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	tourRepo := repository.NewTourRepository(mongoDB.Database)
	reviewRepo := repository.NewReviewRepository(mongoDB.Database)
	bookingRepo := repository.NewBookingRepository(mongoDB.Database)

	payments := NewFakeGateway()
	outbox := &Outbox{}
	emailMailbox := queue.NewMailbox(100)
	emailProcessor := queue.NewProcessor(emailMailbox, outbox, 1, log)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   userRepo,
		Cache:      redisCache,
		Denylist:   cache.NewTokenDenylist(redisCache),
		JWTManager: jwtManager,
		Mailer:     outbox,
		EmailQueue: emailMailbox,
		Logger:     log,
	})
	userService := service.NewUserService(userRepo, redisCache, 100)
	tourService := service.NewTourService(tourRepo, userRepo, reviewRepo, 100)
	reviewService := service.NewReviewService(reviewRepo, tourRepo, userRepo, 100)
	bookingService := service.NewBookingService(bookingRepo, tourRepo, userRepo, payments, TestBaseURL, 100)

	authorizer := authz.NewRoleAuthorizer()
	cookies := handler.SessionCookies{Lifetime: 90 * 24 * time.Hour}
	images := handler.NewImages(media.NewUploader(media.NewProcessor(), s3Client, log))

	r := router.Setup(&router.Config{
		AuthHandler:    handler.NewAuthHandler(authService, cookies, TestBaseURL),
		UserHandler:    handler.NewUserHandler(userService, images),
		TourHandler:    handler.NewTourHandler(tourService, images),
		ReviewHandler:  handler.NewReviewHandler(reviewService),
		BookingHandler: handler.NewBookingHandler(bookingService),
		ImageHandler:   handler.NewImageHandler(s3Client),
		ViewHandler: handler.NewViewHandler(handler.ViewHandlerConfig{
			Tours:      tourService,
			Bookings:   bookingService,
			Users:      userService,
			Auth:       authService,
			Authorizer: authorizer,
			Cookies:    cookies,
			Images:     images,
			BaseURL:    TestBaseURL,
		}),
		Authenticator:  authService,
		Authorizer:     authorizer,
		RateLimiter:    middleware.NewRateLimiter(100000),
		Logger:         log,
		Env:            config.EnvDevelopment,
		CORSOrigins:    []string{"*"},
		UploadMaxBytes: 10 << 20,
	})

	procCtx, cancel := context.WithCancel(context.Background())
	emailProcessor.Start(procCtx)

	return &TestServer{
		Router:         r,
		MongoDB:        mongoDB,
		Redis:          redisContainer,
		MinIO:          minioContainer,
		UserRepo:       userRepo,
		TourRepo:       tourRepo,
		ReviewRepo:     reviewRepo,
		BookingRepo:    bookingRepo,
		Payments:       payments,
		Outbox:         outbox,
		JWTManager:     jwtManager,
		emailProcessor: emailProcessor,
		cancel:         cancel,
	}, nil
}

// Cleanup stops the email workers and terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.cancel != nil {
		ts.cancel()
		ts.emailProcessor.Stop()
	}
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
