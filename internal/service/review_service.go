package service

import (
	"context"
	"errors"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/query"
	"tourbook/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// reviewFields are the filterable review attributes.
var reviewFields = []string{"rating", "tour", "user"}

// ReviewService handles business logic for review operations. Every write
// recomputes the rating aggregates of the reviewed tour.
type ReviewService struct {
	*ResourceService[models.Review]
	reviews repository.ReviewRepository
	tours   repository.TourRepository
	users   repository.UserRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews repository.ReviewRepository, tours repository.TourRepository, users repository.UserRepository, maxLimit int) *ReviewService {
	s := &ReviewService{reviews: reviews, tours: tours, users: users}
	s.ResourceService = NewResourceService[models.Review](reviews, Hooks[models.Review]{
		Prepare:     s.prepare,
		AfterWrite:  s.afterChange,
		AfterDelete: s.afterChange,
		Populate:    s.populate,
	},
		query.WithAllowedFields(reviewFields...),
		query.WithMaxLimit(maxLimit),
	)
	return s
}

func (s *ReviewService) prepare(_ context.Context, review *models.Review) error {
	if review.Tour.IsZero() {
		return apperrors.Validation("Review must belong to a tour.")
	}
	if review.User.IsZero() {
		return apperrors.Validation("Review must belong to a user")
	}
	return nil
}

func (s *ReviewService) afterChange(ctx context.Context, review *models.Review) error {
	return s.CalcAverageRatings(ctx, review.Tour)
}

func (s *ReviewService) populate(ctx context.Context, reviews []models.Review) error {
	return populateAuthors(ctx, s.users, reviews)
}

// CalcAverageRatings stores the review count and average on the tour.
// A tour without reviews goes back to 0 ratings averaging 4.5. This is a
// separate write, not a transaction with the review change.
func (s *ReviewService) CalcAverageRatings(ctx context.Context, tourID primitive.ObjectID) error {
	quantity, average := 0, models.DefaultRatingsAverage

	summary, err := s.reviews.CalcRatings(ctx, tourID)
	switch {
	case err == nil:
		quantity, average = summary.Quantity, models.RoundRating(summary.Average)
	case errors.Is(err, repository.ErrNoRatings):
	default:
		return err
	}

	err = s.tours.UpdateRatings(ctx, tourID, quantity, average)
	if errors.Is(err, apperrors.ErrDocumentNotFound) {
		// The tour is gone; nothing left to summarize
		return nil
	}
	return err
}
