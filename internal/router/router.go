// Package router sets up HTTP routes for the API and the pages.
package router

import (
	"fmt"
	"net/http"

	_ "tourbook/swagger" // Import generated swagger docs

	"tourbook/internal/authz"
	apperrors "tourbook/internal/errors"
	"tourbook/internal/handler"
	"tourbook/internal/middleware"
	"tourbook/internal/views"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	TourHandler    *handler.TourHandler
	ReviewHandler  *handler.ReviewHandler
	BookingHandler *handler.BookingHandler
	ViewHandler    *handler.ViewHandler
	ImageHandler   *handler.ImageHandler

	Authenticator middleware.Authenticator
	Authorizer    authz.Authorizer
	RateLimiter   *middleware.RateLimiter
	Logger        *zap.Logger

	Env            string
	CORSOrigins    []string
	TrustedProxies []string
	UploadMaxBytes int64
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(views.Templates())

	// Forwarded headers are honoured only from listed proxies, so the rate
	// limiter keys on the socket address otherwise.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		cfg.Logger.Warn("Invalid trusted proxies, forwarded headers ignored", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}

	// Global middleware. ErrorHandler sits before Recovery so recovered
	// panics are rendered like any other error.
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(cfg.Logger),
		middleware.ErrorHandler(cfg.Env, cfg.Logger),
		middleware.Recovery(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.CORSOrigins),
	)

	protect := middleware.Protect(cfg.Authenticator)
	allow := func(action string) gin.HandlerFunc {
		return middleware.Authorize(cfg.Authorizer, action)
	}

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Signed payload, read raw before any body limit applies
	r.POST("/webhook-checkout", cfg.BookingHandler.Webhook)

	r.GET("/img/*filepath", cfg.ImageHandler.Serve)

	api := r.Group("/api")
	api.Use(
		middleware.RateLimit(cfg.RateLimiter, cfg.Logger),
		middleware.BodyLimit(middleware.DefaultJSONLimit, cfg.UploadMaxBytes),
	)

	v1 := api.Group("/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/signup", cfg.AuthHandler.Signup)
			users.POST("/login", cfg.AuthHandler.Login)
			users.GET("/logout", cfg.AuthHandler.Logout)
			users.POST("/forgotPassword", cfg.AuthHandler.ForgotPassword)
			users.PATCH("/resetPassword/:token", cfg.AuthHandler.ResetPassword)

			me := users.Group("", protect)
			{
				me.PATCH("/updateMyPassword", cfg.AuthHandler.UpdatePassword)
				me.GET("/me", cfg.UserHandler.GetMe)
				me.PATCH("/updateMe", cfg.UserHandler.UpdateMe)
				me.DELETE("/deleteMe", cfg.UserHandler.DeleteMe)
			}

			admin := users.Group("", protect, allow(authz.ActionUserAdmin))
			{
				admin.GET("", cfg.UserHandler.GetAll)
				admin.POST("", cfg.UserHandler.CreateOne)
				admin.GET("/:id", cfg.UserHandler.GetOne)
				admin.PATCH("/:id", cfg.UserHandler.UpdateOne)
				admin.DELETE("/:id", cfg.UserHandler.DeleteOne)
			}
		}

		tours := v1.Group("/tours")
		{
			tours.GET("/top-5-cheap", handler.AliasTopTours, cfg.TourHandler.GetAll)
			tours.GET("/tour-stats", cfg.TourHandler.Stats)
			tours.GET("/monthly-plan/:year", protect, allow(authz.ActionTourPlan), cfg.TourHandler.MonthlyPlan)
			tours.GET("/tours-within/:distance/center/:latlng/unit/:unit", cfg.TourHandler.Within)
			tours.GET("/distances/:latlng/unit/:unit", cfg.TourHandler.Distances)

			tours.GET("", cfg.TourHandler.GetAll)
			tours.POST("", protect, allow(authz.ActionTourWrite), cfg.TourHandler.CreateOne)
			tours.GET("/:id", cfg.TourHandler.GetOne)
			tours.PATCH("/:id", protect, allow(authz.ActionTourWrite), cfg.TourHandler.UpdateOne)
			tours.DELETE("/:id", protect, allow(authz.ActionTourWrite), cfg.TourHandler.DeleteOne)

			// gin needs one wildcard name per segment, so the tour id is
			// handed to the review handlers under the name they expect.
			nested := tours.Group("/:id/reviews", protect, mergeParams("id", handler.TourIDParam))
			{
				nested.GET("", cfg.ReviewHandler.TourReviews)
				nested.POST("", allow(authz.ActionReviewCreate), cfg.ReviewHandler.CreateTourReview)
			}
		}

		reviews := v1.Group("/reviews", protect)
		{
			reviews.GET("", cfg.ReviewHandler.GetAll)
			reviews.POST("", allow(authz.ActionReviewCreate), cfg.ReviewHandler.CreateOne)
			reviews.GET("/:id", cfg.ReviewHandler.GetOne)
			reviews.PATCH("/:id", allow(authz.ActionReviewWrite), cfg.ReviewHandler.UpdateOne)
			reviews.DELETE("/:id", allow(authz.ActionReviewWrite), cfg.ReviewHandler.DeleteOne)
		}

		booking := v1.Group("/booking", protect)
		{
			booking.GET("/checkout-session/:"+handler.TourIDParam, cfg.BookingHandler.CheckoutSession)
			booking.GET("/my-tours", cfg.BookingHandler.MyTours)
		}

		bookings := v1.Group("/bookings", protect, allow(authz.ActionBookingManage))
		{
			bookings.GET("", cfg.BookingHandler.GetAll)
			bookings.POST("", cfg.BookingHandler.CreateOne)
			bookings.GET("/:id", cfg.BookingHandler.GetOne)
			bookings.PATCH("/:id", cfg.BookingHandler.UpdateOne)
			bookings.DELETE("/:id", cfg.BookingHandler.DeleteOne)
		}
	}

	// Pages
	pages := r.Group("", middleware.IsLoggedIn(cfg.Authenticator))
	{
		pages.GET("/", cfg.ViewHandler.Overview)
		pages.GET("/tour/:slug", cfg.ViewHandler.Tour)
		pages.GET("/login", cfg.ViewHandler.LoginForm)
		pages.POST("/login", cfg.ViewHandler.Login)
		pages.GET("/signup", cfg.ViewHandler.SignupForm)
		pages.POST("/signup", cfg.ViewHandler.Signup)
	}

	account := r.Group("", protect)
	{
		account.GET("/me", cfg.ViewHandler.Account)
		account.GET("/my-tours", cfg.ViewHandler.MyTours)
		account.POST("/submit-user-data", cfg.ViewHandler.UpdateUserData)
	}

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.NotFound(fmt.Sprintf("Can't find %s on this server!", c.Request.URL.RequestURI())))
	})

	return r
}

// mergeParams exposes the path parameter from under the name to.
func mergeParams(from, to string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: to, Value: c.Param(from)})
		c.Next()
	}
}
