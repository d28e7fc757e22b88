package repository

import (
	"context"
	"testing"

	"tourbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBookingRepository_FindByUser(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewBookingRepository(tdb.Database)
	ctx := context.Background()

	user := primitive.NewObjectID()
	booking := &models.Booking{Tour: primitive.NewObjectID(), User: user, Price: 497, Paid: true}
	require.NoError(t, repo.Create(ctx, booking))
	require.NoError(t, repo.Create(ctx, &models.Booking{Tour: primitive.NewObjectID(), User: user, Price: 997, Paid: true}))
	require.NoError(t, repo.Create(ctx, &models.Booking{Tour: primitive.NewObjectID(), User: primitive.NewObjectID(), Price: 1}))

	assert.False(t, booking.ID.IsZero())
	assert.False(t, booking.CreatedAt.IsZero())

	bookings, err := repo.FindByUser(ctx, user)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	none, err := repo.FindByUser(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
