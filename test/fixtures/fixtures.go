// Package fixtures provides test data builders for the end-to-end suites.
package fixtures

import (
	"fmt"
	"time"

	"tourbook/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plain password of built users.
const DefaultPassword = "pass1234"

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user     models.User
	password string
}

// NewUser creates a UserBuilder for an active user with a unique email.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:    primitive.NewObjectID(),
			Name:  "Test User",
			Email: fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[16:]),
			Role:  models.RoleUser,
			Photo: models.DefaultPhoto,
		},
		password: DefaultPassword,
	}
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.user.Role = role
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Inactive marks the account as deleted by its owner.
func (b *UserBuilder) Inactive() *UserBuilder {
	inactive := false
	b.user.Active = &inactive
	return b
}

// Build hashes the password with the minimum cost, which login accepts
// like any other bcrypt hash.
func (b *UserBuilder) Build() *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	user := b.user
	user.Password = string(hash)
	return &user
}

// ===== Tour Fixtures =====

// TourBuilder provides fluent API for building test tours.
type TourBuilder struct {
	tour models.Tour
}

// NewTour creates a TourBuilder for a public tour starting in Miami.
func NewTour() *TourBuilder {
	name := "The Sea Explorer " + primitive.NewObjectID().Hex()[18:]
	return &TourBuilder{
		tour: models.Tour{
			ID:             primitive.NewObjectID(),
			Name:           name,
			Slug:           models.Slugify(name),
			Duration:       7,
			MaxGroupSize:   15,
			Difficulty:     models.DifficultyMedium,
			RatingsAverage: models.DefaultRatingsAverage,
			Price:          497,
			Summary:        "Exploring the jaw-dropping US east coast by foot and by boat",
			ImageCover:     "tour-2-cover.jpg",
			StartDates:     []time.Time{time.Date(2026, time.June, 19, 9, 0, 0, 0, time.UTC)},
			StartLocation: &models.Location{
				Type:        "Point",
				Coordinates: []float64{-80.185942, 25.774772},
				Description: "Miami, USA",
			},
		},
	}
}

func (b *TourBuilder) WithName(name string) *TourBuilder {
	b.tour.Name = name
	b.tour.Slug = models.Slugify(name)
	return b
}

func (b *TourBuilder) WithPrice(price float64) *TourBuilder {
	b.tour.Price = price
	return b
}

func (b *TourBuilder) WithDifficulty(difficulty string) *TourBuilder {
	b.tour.Difficulty = difficulty
	return b
}

func (b *TourBuilder) WithRating(average float64, quantity int) *TourBuilder {
	b.tour.RatingsAverage = average
	b.tour.RatingsQuantity = quantity
	return b
}

func (b *TourBuilder) WithStartDates(dates ...time.Time) *TourBuilder {
	b.tour.StartDates = dates
	return b
}

// At places the start location at lng, lat.
func (b *TourBuilder) At(lng, lat float64) *TourBuilder {
	b.tour.StartLocation = &models.Location{Type: "Point", Coordinates: []float64{lng, lat}}
	return b
}

func (b *TourBuilder) WithGuides(ids ...primitive.ObjectID) *TourBuilder {
	b.tour.Guides = ids
	return b
}

// Secret hides the tour from every find.
func (b *TourBuilder) Secret() *TourBuilder {
	b.tour.SecretTour = true
	return b
}

func (b *TourBuilder) Build() *models.Tour {
	tour := b.tour
	return &tour
}

// ===== Review Fixtures =====

// NewReview builds a review of tour by user.
func NewReview(tour, user primitive.ObjectID, rating float64) *models.Review {
	return &models.Review{
		ID:     primitive.NewObjectID(),
		Review: "Amazing tour, would book again!",
		Rating: rating,
		Tour:   tour,
		User:   user,
	}
}
