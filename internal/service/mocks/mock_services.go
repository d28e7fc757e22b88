// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"
	"net/url"

	"tourbook/internal/models"
	"tourbook/internal/payment"
	"tourbook/internal/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockResource is a mock implementation of service.Resource.
type MockResource[T any] struct {
	ListFunc   func(ctx context.Context, values url.Values, scope bson.M) ([]T, error)
	GetFunc    func(ctx context.Context, id string) (*T, error)
	CreateFunc func(ctx context.Context, doc *T) (*T, error)
	UpdateFunc func(ctx context.Context, id string, patch models.Patch) (*T, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockResource[T]) List(ctx context.Context, values url.Values, scope bson.M) ([]T, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, values, scope)
	}
	return []T{}, nil
}

func (m *MockResource[T]) Get(ctx context.Context, id string) (*T, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockResource[T]) Create(ctx context.Context, doc *T) (*T, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doc)
	}
	return doc, nil
}

func (m *MockResource[T]) Update(ctx context.Context, id string, patch models.Patch) (*T, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, nil
}

func (m *MockResource[T]) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	SignupFunc         func(ctx context.Context, req *models.SignupRequest, accountURL string) (*service.AuthResult, error)
	LoginFunc          func(ctx context.Context, req *models.LoginRequest) (*service.AuthResult, error)
	AuthenticateFunc   func(ctx context.Context, token string) (*models.User, error)
	LogoutFunc         func(ctx context.Context, token string) error
	ForgotPasswordFunc func(ctx context.Context, email, baseURL string) error
	ResetPasswordFunc  func(ctx context.Context, token string, req *models.ResetPasswordRequest) (*service.AuthResult, error)
	UpdatePasswordFunc func(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) (*service.AuthResult, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req *models.SignupRequest, accountURL string) (*service.AuthResult, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req, accountURL)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*service.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return nil
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email, baseURL string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email, baseURL)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token string, req *models.ResetPasswordRequest) (*service.AuthResult, error) {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, req)
	}
	return nil, nil
}

func (m *MockAuthService) UpdatePassword(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) (*service.AuthResult, error) {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, req)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	MockResource[models.User]
	UpdateMeFunc func(ctx context.Context, userID primitive.ObjectID, req *models.UpdateMeRequest) (*models.User, error)
	DeleteMeFunc func(ctx context.Context, userID primitive.ObjectID) error
}

func (m *MockUserService) UpdateMe(ctx context.Context, userID primitive.ObjectID, req *models.UpdateMeRequest) (*models.User, error) {
	if m.UpdateMeFunc != nil {
		return m.UpdateMeFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteMe(ctx context.Context, userID primitive.ObjectID) error {
	if m.DeleteMeFunc != nil {
		return m.DeleteMeFunc(ctx, userID)
	}
	return nil
}

// MockTourService is a mock implementation of TourServicer.
type MockTourService struct {
	MockResource[models.Tour]
	GetBySlugFunc   func(ctx context.Context, slug string) (*models.Tour, error)
	StatsFunc       func(ctx context.Context) ([]models.TourStats, error)
	MonthlyPlanFunc func(ctx context.Context, year string) ([]models.MonthlyPlan, error)
	WithinFunc      func(ctx context.Context, distance, latlng, unit string) ([]models.Tour, error)
	DistancesFunc   func(ctx context.Context, latlng, unit string) ([]models.TourDistance, error)
}

func (m *MockTourService) GetBySlug(ctx context.Context, slug string) (*models.Tour, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockTourService) Stats(ctx context.Context) ([]models.TourStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return []models.TourStats{}, nil
}

func (m *MockTourService) MonthlyPlan(ctx context.Context, year string) ([]models.MonthlyPlan, error) {
	if m.MonthlyPlanFunc != nil {
		return m.MonthlyPlanFunc(ctx, year)
	}
	return []models.MonthlyPlan{}, nil
}

func (m *MockTourService) Within(ctx context.Context, distance, latlng, unit string) ([]models.Tour, error) {
	if m.WithinFunc != nil {
		return m.WithinFunc(ctx, distance, latlng, unit)
	}
	return []models.Tour{}, nil
}

func (m *MockTourService) Distances(ctx context.Context, latlng, unit string) ([]models.TourDistance, error) {
	if m.DistancesFunc != nil {
		return m.DistancesFunc(ctx, latlng, unit)
	}
	return []models.TourDistance{}, nil
}

// MockReviewService is a mock implementation of ReviewServicer.
type MockReviewService struct {
	MockResource[models.Review]
}

// MockBookingService is a mock implementation of BookingServicer.
type MockBookingService struct {
	MockResource[models.Booking]
	CheckoutSessionFunc func(ctx context.Context, tourID string, user *models.User) (*payment.CheckoutSession, error)
	HandleWebhookFunc   func(ctx context.Context, payload []byte, signature string) error
	MyToursFunc         func(ctx context.Context, userID primitive.ObjectID) ([]models.Tour, error)
}

func (m *MockBookingService) CheckoutSession(ctx context.Context, tourID string, user *models.User) (*payment.CheckoutSession, error) {
	if m.CheckoutSessionFunc != nil {
		return m.CheckoutSessionFunc(ctx, tourID, user)
	}
	return nil, nil
}

func (m *MockBookingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if m.HandleWebhookFunc != nil {
		return m.HandleWebhookFunc(ctx, payload, signature)
	}
	return nil
}

func (m *MockBookingService) MyTours(ctx context.Context, userID primitive.ObjectID) ([]models.Tour, error) {
	if m.MyToursFunc != nil {
		return m.MyToursFunc(ctx, userID)
	}
	return []models.Tour{}, nil
}

var (
	_ service.AuthServicer    = (*MockAuthService)(nil)
	_ service.UserServicer    = (*MockUserService)(nil)
	_ service.TourServicer    = (*MockTourService)(nil)
	_ service.ReviewServicer  = (*MockReviewService)(nil)
	_ service.BookingServicer = (*MockBookingService)(nil)
)
