package repository

import (
	"context"
	"time"

	"tourbook/internal/database"
	"tourbook/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	Store[models.Booking]
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error)
}

type bookingRepository struct {
	*mongoStore[models.Booking]
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepository{
		mongoStore: newMongoStore(db.Collection(database.BookingsCollection), nil, stampBooking),
	}
}

func stampBooking(b *models.Booking, id primitive.ObjectID, now time.Time) {
	stampID(&b.ID, id)
	stampTime(&b.CreatedAt, now)
}

// FindByUser returns all bookings made by a user
func (r *bookingRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error) {
	return r.findAll(ctx, bson.M{"user": userID})
}
