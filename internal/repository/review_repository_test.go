package repository

import (
	"context"
	"testing"

	"tourbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestReviewRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewReviewRepository(tdb.Database)
	ctx := context.Background()

	tourID := primitive.NewObjectID()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()

	t.Run("no reviews yields ErrNoRatings", func(t *testing.T) {
		_, err := repo.CalcRatings(ctx, tourID)
		assert.ErrorIs(t, err, ErrNoRatings)
	})

	first := &models.Review{Review: "Great", Rating: 5, Tour: tourID, User: alice}
	require.NoError(t, repo.Create(ctx, first))
	assert.False(t, first.CreatedAt.IsZero())
	require.NoError(t, repo.Create(ctx, &models.Review{Review: "Fine", Rating: 4, Tour: tourID, User: bob}))
	require.NoError(t, repo.Create(ctx, &models.Review{Review: "Other tour", Rating: 1, Tour: primitive.NewObjectID(), User: bob}))

	t.Run("one review per user and tour", func(t *testing.T) {
		err := repo.Create(ctx, &models.Review{Review: "Again", Rating: 3, Tour: tourID, User: alice})
		assert.True(t, mongo.IsDuplicateKeyError(err))
	})

	t.Run("aggregates only the tour's reviews", func(t *testing.T) {
		summary, err := repo.CalcRatings(ctx, tourID)
		require.NoError(t, err)
		assert.Equal(t, tourID, summary.Tour)
		assert.Equal(t, 2, summary.Quantity)
		assert.InDelta(t, 4.5, summary.Average, 0.0001)
	})

	t.Run("finds by tour", func(t *testing.T) {
		reviews, err := repo.FindByTour(ctx, tourID)
		require.NoError(t, err)
		assert.Len(t, reviews, 2)
	})
}
