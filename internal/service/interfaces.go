// Package service contains business logic for the application.
package service

import (
	"context"
	"net/url"

	"tourbook/internal/models"
	"tourbook/internal/payment"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource defines the generic CRUD operations of one entity type.
type Resource[T any] interface {
	List(ctx context.Context, values url.Values, scope bson.M) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, doc *T) (*T, error)
	Update(ctx context.Context, id string, patch models.Patch) (*T, error)
	Delete(ctx context.Context, id string) error
}

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Signup(ctx context.Context, req *models.SignupRequest, accountURL string) (*AuthResult, error)
	Login(ctx context.Context, req *models.LoginRequest) (*AuthResult, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email, baseURL string) error
	ResetPassword(ctx context.Context, token string, req *models.ResetPasswordRequest) (*AuthResult, error)
	UpdatePassword(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) (*AuthResult, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	Resource[models.User]
	UpdateMe(ctx context.Context, userID primitive.ObjectID, req *models.UpdateMeRequest) (*models.User, error)
	DeleteMe(ctx context.Context, userID primitive.ObjectID) error
}

// TourServicer defines the interface for tour operations.
type TourServicer interface {
	Resource[models.Tour]
	GetBySlug(ctx context.Context, slug string) (*models.Tour, error)
	Stats(ctx context.Context) ([]models.TourStats, error)
	MonthlyPlan(ctx context.Context, year string) ([]models.MonthlyPlan, error)
	Within(ctx context.Context, distance, latlng, unit string) ([]models.Tour, error)
	Distances(ctx context.Context, latlng, unit string) ([]models.TourDistance, error)
}

// ReviewServicer defines the interface for review operations.
type ReviewServicer interface {
	Resource[models.Review]
}

// BookingServicer defines the interface for booking operations.
type BookingServicer interface {
	Resource[models.Booking]
	CheckoutSession(ctx context.Context, tourID string, user *models.User) (*payment.CheckoutSession, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	MyTours(ctx context.Context, userID primitive.ObjectID) ([]models.Tour, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer    = (*AuthService)(nil)
	_ UserServicer    = (*UserService)(nil)
	_ TourServicer    = (*TourService)(nil)
	_ ReviewServicer  = (*ReviewService)(nil)
	_ BookingServicer = (*BookingService)(nil)
)
