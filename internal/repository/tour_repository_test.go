package repository

import (
	"context"
	"net/url"
	"testing"
	"time"

	"tourbook/internal/database"
	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestTour(name, difficulty string, price, rating float64, lng, lat float64, starts ...time.Time) *models.Tour {
	return &models.Tour{
		Name:           name,
		Duration:       5,
		MaxGroupSize:   10,
		Difficulty:     difficulty,
		Price:          price,
		RatingsAverage: rating,
		Summary:        "A test tour",
		ImageCover:     "cover.jpg",
		StartDates:     starts,
		StartLocation:  &models.Location{Type: "Point", Coordinates: []float64{lng, lat}},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
}

func seedTours(t *testing.T, repo TourRepository) (visible []*models.Tour, secret *models.Tour) {
	t.Helper()
	ctx := context.Background()

	visible = []*models.Tour{
		// Miami
		newTestTour("The Sea Explorer", models.DifficultyMedium, 497, 4.8, -80.185942, 25.774772,
			date(2021, time.June, 19), date(2021, time.July, 20)),
		// Banff
		newTestTour("The Forest Hiker", models.DifficultyEasy, 397, 4.7, -115.570154, 51.178456,
			date(2021, time.July, 1), date(2021, time.December, 31)),
		// Las Vegas
		newTestTour("The Snow Adventurer", models.DifficultyDifficult, 997, 4.5, -115.172652, 36.110904,
			date(2021, time.July, 5), date(2022, time.January, 3)),
		newTestTour("The City Wanderer", models.DifficultyEasy, 1197, 4.2, -73.985141, 40.75894,
			date(2021, time.March, 11)),
	}
	for _, tour := range visible {
		require.NoError(t, repo.Create(ctx, tour))
	}

	secret = newTestTour("The Secret Strolling", models.DifficultyEasy, 100, 5, -80.19, 25.78, date(2021, time.July, 9))
	secret.SecretTour = true
	require.NoError(t, repo.Create(ctx, secret))
	return visible, secret
}

func TestTourRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	ctx := context.Background()

	tour := newTestTour("The Park Camper", models.DifficultyMedium, 1497, 4.9, 0, 0)
	require.NoError(t, repo.Create(ctx, tour))

	assert.False(t, tour.ID.IsZero())
	assert.Equal(t, "the-park-camper", tour.Slug)
	assert.False(t, tour.CreatedAt.IsZero())
	assert.NotNil(t, tour.Images)
	assert.NotNil(t, tour.Guides)

	t.Run("names are unique", func(t *testing.T) {
		err := repo.Create(ctx, newTestTour("The Park Camper", models.DifficultyEasy, 10, 4, 0, 0))
		require.Error(t, err)
		appErr := apperrors.Translate(err)
		assert.Equal(t, apperrors.KindDuplicate, appErr.Kind)
		assert.Contains(t, appErr.Message, `"The Park Camper"`)
	})

	t.Run("found by slug", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "the-park-camper")
		require.NoError(t, err)
		assert.Equal(t, tour.ID, found.ID)
	})
}

func TestTourRepository_SecretToursAreHidden(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	ctx := context.Background()
	visible, secret := seedTours(t, repo)

	t.Run("by id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, secret.ID)
		assert.ErrorIs(t, err, apperrors.ErrDocumentNotFound)
	})

	t.Run("by slug", func(t *testing.T) {
		_, err := repo.FindBySlug(ctx, secret.Slug)
		assert.ErrorIs(t, err, apperrors.ErrDocumentNotFound)
	})

	t.Run("in lists", func(t *testing.T) {
		tours, err := repo.FindMany(ctx, query.New(url.Values{}).Filter().Build())
		require.NoError(t, err)
		assert.Len(t, tours, len(visible))
	})

	t.Run("in aggregations", func(t *testing.T) {
		plan, err := repo.MonthlyPlan(ctx, 2021)
		require.NoError(t, err)
		for _, month := range plan {
			assert.NotContains(t, month.Tours, secret.Name)
		}
	})

	t.Run("ratings still update", func(t *testing.T) {
		require.NoError(t, repo.UpdateRatings(ctx, secret.ID, 3, 4.3))
	})
}

func TestTourRepository_FindManyWithSpec(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	ctx := context.Background()
	seedTours(t, repo)

	values, _ := url.ParseQuery("difficulty=easy&price[lt]=1000&sort=-price")
	tours, err := repo.FindMany(ctx, query.New(values).Filter().Sort().LimitFields().Paginate().Build())
	require.NoError(t, err)

	require.Len(t, tours, 1)
	assert.Equal(t, "The Forest Hiker", tours[0].Name)

	values, _ = url.ParseQuery("sort=price&limit=2&page=2")
	page, err := repo.FindMany(ctx, query.New(values).Filter().Sort().Paginate().Build())
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 997.0, page[0].Price)
	assert.Equal(t, 1197.0, page[1].Price)
}

func TestTourRepository_Stats(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	seedTours(t, repo)

	stats, err := repo.Stats(context.Background(), 4.5)
	require.NoError(t, err)

	// City Wanderer is below the threshold; secret tour is hidden
	require.Len(t, stats, 3)
	assert.Equal(t, "EASY", stats[0].Difficulty)
	assert.Equal(t, 1, stats[0].NumTours)
	assert.Equal(t, 397.0, stats[0].MinPrice)
	assert.Equal(t, "MEDIUM", stats[1].Difficulty)
	assert.Equal(t, "DIFFICULT", stats[2].Difficulty)
}

func TestTourRepository_MonthlyPlan(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	seedTours(t, repo)

	plan, err := repo.MonthlyPlan(context.Background(), 2021)
	require.NoError(t, err)

	require.NotEmpty(t, plan)
	assert.Equal(t, 7, plan[0].Month)
	assert.Equal(t, 3, plan[0].NumTourStarts)
	assert.ElementsMatch(t, []string{"The Sea Explorer", "The Forest Hiker", "The Snow Adventurer"}, plan[0].Tours)

	months := map[int]int{}
	for _, m := range plan {
		months[m.Month] = m.NumTourStarts
	}
	assert.Equal(t, 1, months[12], "the last day of the year is included")
	assert.Equal(t, 1, months[3])
	assert.Len(t, plan, 4)
}

func TestTourRepository_Geo(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	ctx := context.Background()
	seedTours(t, repo)

	// Near Los Angeles
	lat, lng := 34.111745, -118.113491

	t.Run("within a radius", func(t *testing.T) {
		tours, err := repo.Within(ctx, lng, lat, 400/3963.2)
		require.NoError(t, err)
		require.Len(t, tours, 1)
		assert.Equal(t, "The Snow Adventurer", tours[0].Name)
	})

	t.Run("distances are sorted and converted", func(t *testing.T) {
		distances, err := repo.Distances(ctx, lng, lat, 0.001)
		require.NoError(t, err)
		require.Len(t, distances, 4)
		assert.Equal(t, "The Snow Adventurer", distances[0].Name)
		assert.InDelta(t, 348, distances[0].Distance, 5)
		for i := 1; i < len(distances); i++ {
			assert.LessOrEqual(t, distances[i-1].Distance, distances[i].Distance)
		}
	})
}

func TestTourRepository_FindByIDs(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTourRepository(tdb.Database)
	visible, secret := seedTours(t, repo)

	tours, err := repo.FindByIDs(context.Background(), []primitive.ObjectID{visible[0].ID, secret.ID})
	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, visible[0].ID, tours[0].ID)

	_, err = repo.UpdateByID(context.Background(), visible[0].ID, bson.M{"price": 10.0})
	require.NoError(t, err)
}

func TestTourRepository_UpdateRatingsUnknownTour(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)
	tdb.ClearCollection(t, database.ToursCollection)

	repo := NewTourRepository(tdb.Database)
	err := repo.UpdateRatings(context.Background(), primitive.NewObjectID(), 1, 5)
	assert.ErrorIs(t, err, apperrors.ErrDocumentNotFound)
}
