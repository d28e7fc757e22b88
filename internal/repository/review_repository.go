package repository

import (
	"context"
	"errors"
	"time"

	"tourbook/internal/database"
	"tourbook/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoRatings is returned when a tour has no reviews to aggregate.
var ErrNoRatings = errors.New("tour has no reviews")

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	Store[models.Review]
	FindByTour(ctx context.Context, tourID primitive.ObjectID) ([]models.Review, error)
	CalcRatings(ctx context.Context, tourID primitive.ObjectID) (*models.RatingSummary, error)
}

type reviewRepository struct {
	*mongoStore[models.Review]
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{
		mongoStore: newMongoStore(db.Collection(database.ReviewsCollection), nil, stampReview),
	}
}

func stampReview(r *models.Review, id primitive.ObjectID, now time.Time) {
	stampID(&r.ID, id)
	stampTime(&r.CreatedAt, now)
}

// FindByTour returns the reviews of a tour, newest first
func (r *reviewRepository) FindByTour(ctx context.Context, tourID primitive.ObjectID) ([]models.Review, error) {
	return r.findAll(ctx, bson.M{"tour": tourID}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// CalcRatings aggregates count and average rating of a tour's reviews
func (r *reviewRepository) CalcRatings(ctx context.Context, tourID primitive.ObjectID) (*models.RatingSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"tour": tourID}}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$tour",
			"nRating":   bson.M{"$sum": 1},
			"avgRating": bson.M{"$avg": "$rating"},
		}}},
	}

	summaries, err := aggregate[models.RatingSummary](ctx, r.collection, pipeline)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, ErrNoRatings
	}
	return &summaries[0], nil
}
