//go:build api

package api

import (
	"context"
	"net/http"
	"testing"

	"tourbook/internal/models"
	"tourbook/test/fixtures"
	"tourbook/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tourRatings(t *testing.T, id string) (float64, int) {
	t.Helper()
	w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	doc := testutil.ParseEnvelope(t, w).Doc(t)
	return doc["ratingsAverage"].(float64), int(doc["ratingsQuantity"].(float64))
}

func TestNestedReviews(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	tour := testServer.SeedTour(t, fixtures.NewTour())
	other := testServer.SeedTour(t, fixtures.NewTour())
	_, firstToken := testServer.SeedSession(t, models.RoleUser)
	_, secondToken := testServer.SeedSession(t, models.RoleUser)
	_, guideToken := testServer.SeedSession(t, models.RoleGuide)
	stranger := testServer.SeedUser(t, fixtures.NewUser())
	testServer.SeedReview(t, fixtures.NewReview(other.ID, stranger.ID, 1))

	path := "/api/v1/tours/" + tour.ID.Hex() + "/reviews"

	t.Run("create takes tour and author from the request", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, path, firstToken,
			map[string]interface{}{"review": "Loved every minute", "rating": 5})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		doc := testutil.ParseEnvelope(t, w).Doc(t)
		assert.Equal(t, tour.ID.Hex(), doc["tour"])

		average, quantity := tourRatings(t, tour.ID.Hex())
		assert.Equal(t, 5.0, average)
		assert.Equal(t, 1, quantity)
	})

	t.Run("ratings average over all reviews", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, path, secondToken,
			map[string]interface{}{"review": "Decent, a bit rushed", "rating": 4})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		average, quantity := tourRatings(t, tour.ID.Hex())
		assert.Equal(t, 4.5, average)
		assert.Equal(t, 2, quantity)
	})

	t.Run("one review per tour and user", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, path, firstToken,
			map[string]interface{}{"review": "Second thoughts", "rating": 3})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, testutil.ParseEnvelope(t, w).Message, "Duplicate field value")
	})

	t.Run("guides cannot review", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, path, guideToken,
			map[string]interface{}{"review": "Great group", "rating": 5})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/tours/"+other.ID.Hex()+"/reviews", firstToken,
			map[string]interface{}{"review": "Off the charts", "rating": 6})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("listing requires a session", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("listing is scoped to the tour", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, path, guideToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		docs := testutil.ParseEnvelope(t, w).Docs(t)
		require.Len(t, docs, 2)
		for _, doc := range docs {
			assert.Equal(t, tour.ID.Hex(), doc["tour"])
			assert.NotNil(t, doc["author"])
		}
	})
}

func TestReviewUpdateAndDelete(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	tour := testServer.SeedTour(t, fixtures.NewTour())
	author, token := testServer.SeedSession(t, models.RoleUser)
	_, guideToken := testServer.SeedSession(t, models.RoleGuide)
	review := testServer.SeedReview(t, fixtures.NewReview(tour.ID, author.ID, 2))
	path := "/api/v1/reviews/" + review.ID.Hex()

	t.Run("reviews require a session", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/reviews", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("guides cannot edit", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPatch, path, guideToken,
			map[string]interface{}{"rating": 5})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("update recomputes the tour", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPatch, path, token,
			map[string]interface{}{"rating": 4})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, float64(4), testutil.ParseEnvelope(t, w).Doc(t)["rating"])

		average, quantity := tourRatings(t, tour.ID.Hex())
		assert.Equal(t, 4.0, average)
		assert.Equal(t, 1, quantity)
	})

	t.Run("deleting the last review resets the tour", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, path, token, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		average, quantity := tourRatings(t, tour.ID.Hex())
		assert.Equal(t, models.DefaultRatingsAverage, average)
		assert.Equal(t, 0, quantity)

		_, err := testServer.ReviewRepo.FindByID(context.Background(), review.ID)
		assert.Error(t, err)
	})
}
