//go:build api

package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"tourbook/internal/models"
	"tourbook/test/fixtures"
	"tourbook/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTourPayload(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":         name,
		"duration":     5,
		"maxGroupSize": 25,
		"difficulty":   models.DifficultyEasy,
		"price":        397,
		"summary":      "Breathtaking hike through the Canadian Banff National Park",
		"imageCover":   "tour-1-cover.jpg",
		"startDates":   []string{"2026-04-25T09:00:00Z", "2026-07-20T09:00:00Z"},
		"startLocation": map[string]interface{}{
			"type":        "Point",
			"coordinates": []float64{-115.570154, 51.178456},
			"description": "Banff, CAN",
		},
	}
}

func TestTourCRUD(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	_, adminToken := testServer.SeedSession(t, models.RoleAdmin)
	_, userToken := testServer.SeedSession(t, models.RoleUser)

	var tourID string

	t.Run("regular users cannot create tours", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/tours", userToken, newTourPayload("The Forest Hiker"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous users cannot create tours", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/tours", newTourPayload("The Forest Hiker"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/tours", adminToken, newTourPayload("The Forest Hiker"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		doc := testutil.ParseEnvelope(t, w).Doc(t)
		assert.Equal(t, "the-forest-hiker", doc["slug"])
		assert.Equal(t, models.DefaultRatingsAverage, doc["ratingsAverage"])
		assert.InDelta(t, 5.0/7, doc["durationWeeks"], 0.0001)
		tourID, _ = doc["_id"].(string)
		require.NotEmpty(t, tourID)
	})

	t.Run("duplicate name", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/tours", adminToken, newTourPayload("The Forest Hiker"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, testutil.ParseEnvelope(t, w).Message, "Duplicate field value")
	})

	t.Run("discount above price", func(t *testing.T) {
		payload := newTourPayload("The Snow Adventurer")
		payload["priceDiscount"] = 500

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/tours", adminToken, payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, testutil.ParseEnvelope(t, w).Message, "should be below regular price")
	})

	t.Run("get is public", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/"+tourID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "The Forest Hiker", testutil.ParseEnvelope(t, w).Doc(t)["name"])
	})

	t.Run("update renames the slug", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPatch, "/api/v1/tours/"+tourID, adminToken,
			map[string]interface{}{"name": "The Forest Wanderer", "price": 450})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		doc := testutil.ParseEnvelope(t, w).Doc(t)
		assert.Equal(t, "the-forest-wanderer", doc["slug"])
		assert.Equal(t, float64(450), doc["price"])
	})

	t.Run("update checks the discount against the stored price", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPatch, "/api/v1/tours/"+tourID, adminToken,
			map[string]interface{}{"priceDiscount": 451})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/tours/"+tourID, adminToken, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/"+tourID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No document found with that ID", testutil.ParseEnvelope(t, w).Message)
	})
}

func TestTourDetail(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	guide := testServer.SeedUser(t, fixtures.NewUser().WithRole(models.RoleGuide).WithName("Lisa Brown"))
	reviewer := testServer.SeedUser(t, fixtures.NewUser().WithName("Sophie Turner"))
	tour := testServer.SeedTour(t, fixtures.NewTour().WithGuides(guide.ID))
	testServer.SeedReview(t, fixtures.NewReview(tour.ID, reviewer.ID, 5))

	w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/"+tour.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	doc := testutil.ParseEnvelope(t, w).Doc(t)

	guides, ok := doc["guideProfiles"].([]interface{})
	require.True(t, ok)
	require.Len(t, guides, 1)
	assert.Equal(t, "Lisa Brown", guides[0].(map[string]interface{})["name"])

	reviews, ok := doc["reviews"].([]interface{})
	require.True(t, ok)
	require.Len(t, reviews, 1)
	author := reviews[0].(map[string]interface{})["author"].(map[string]interface{})
	assert.Equal(t, "Sophie Turner", author["name"])
}

func TestListTours(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	testServer.SeedTour(t, fixtures.NewTour().WithPrice(397).WithRating(4.9, 10).WithDifficulty(models.DifficultyEasy))
	testServer.SeedTour(t, fixtures.NewTour().WithPrice(997).WithRating(4.8, 7).WithDifficulty(models.DifficultyMedium))
	testServer.SeedTour(t, fixtures.NewTour().WithPrice(1497).WithRating(4.2, 3).WithDifficulty(models.DifficultyDifficult))
	testServer.SeedTour(t, fixtures.NewTour().WithPrice(197).Secret())

	t.Run("secret tours are hidden", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseEnvelope(t, w)
		require.NotNil(t, resp.Results)
		assert.Equal(t, 3, *resp.Results)
	})

	t.Run("filter operators and sort", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours?price[lt]=1000&sort=-price", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		docs := testutil.ParseEnvelope(t, w).Docs(t)
		require.Len(t, docs, 2)
		assert.Equal(t, float64(997), docs[0]["price"])
		assert.Equal(t, float64(397), docs[1]["price"])
	})

	t.Run("field projection", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours?fields=name,price&limit=1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		docs := testutil.ParseEnvelope(t, w).Docs(t)
		require.Len(t, docs, 1)
		assert.Empty(t, docs[0]["summary"])
	})

	t.Run("top five cheap", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/top-5-cheap", nil)
		require.Equal(t, http.StatusOK, w.Code)

		docs := testutil.ParseEnvelope(t, w).Docs(t)
		require.Len(t, docs, 3)
		assert.Equal(t, 4.9, docs[0]["ratingsAverage"])
		assert.Equal(t, 4.2, docs[2]["ratingsAverage"])
	})
}

func TestTourStats(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	testServer.SeedTour(t, fixtures.NewTour().WithPrice(400).WithRating(4.8, 10).WithDifficulty(models.DifficultyEasy))
	testServer.SeedTour(t, fixtures.NewTour().WithPrice(600).WithRating(4.6, 6).WithDifficulty(models.DifficultyEasy))
	testServer.SeedTour(t, fixtures.NewTour().WithPrice(900).WithRating(4.0, 2).WithDifficulty(models.DifficultyDifficult))

	w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/tour-stats", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stats, ok := testutil.ParseEnvelope(t, w).Data["stats"].([]interface{})
	require.True(t, ok)
	require.Len(t, stats, 1, "tours rated below 4.5 are left out")

	easy := stats[0].(map[string]interface{})
	assert.True(t, strings.EqualFold(models.DifficultyEasy, easy["_id"].(string)))
	assert.Equal(t, float64(2), easy["numTours"])
	assert.Equal(t, float64(16), easy["numRatings"])
	assert.Equal(t, float64(500), easy["avgPrice"])
	assert.Equal(t, float64(400), easy["minPrice"])
	assert.Equal(t, float64(600), easy["maxPrice"])
}

func TestMonthlyPlan(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	_, guideToken := testServer.SeedSession(t, models.RoleGuide)
	_, userToken := testServer.SeedSession(t, models.RoleUser)

	july := time.Date(2026, time.July, 20, 9, 0, 0, 0, time.UTC)
	testServer.SeedTour(t, fixtures.NewTour().WithName("The Forest Hiker").WithStartDates(july, time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)))
	testServer.SeedTour(t, fixtures.NewTour().WithName("The Sea Explorer").WithStartDates(july, time.Date(2027, time.July, 1, 9, 0, 0, 0, time.UTC)))

	t.Run("groups starts by month", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/monthly-plan/2026", guideToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		plan, ok := testutil.ParseEnvelope(t, w).Data["plan"].([]interface{})
		require.True(t, ok)
		require.Len(t, plan, 2)

		busiest := plan[0].(map[string]interface{})
		assert.Equal(t, float64(7), busiest["month"])
		assert.Equal(t, float64(2), busiest["numTourStarts"])
		assert.ElementsMatch(t, []interface{}{"The Forest Hiker", "The Sea Explorer"}, busiest["tours"])
	})

	t.Run("regular users are forbidden", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/monthly-plan/2026", userToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("bad year", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/monthly-plan/next", guideToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGeoQueries(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	// Los Angeles and Las Vegas, about 370 km apart
	la := testServer.SeedTour(t, fixtures.NewTour().At(-118.2437, 34.0522))
	testServer.SeedTour(t, fixtures.NewTour().At(-115.1398, 36.1699))

	center := "34.0522,-118.2437"

	t.Run("within radius", func(t *testing.T) {
		tests := []struct {
			distance string
			unit     string
			expected int
		}{
			{"100", "km", 1},
			{"500", "km", 2},
			{"100", "mi", 1},
			{"300", "mi", 2},
		}
		for _, tt := range tests {
			t.Run(tt.distance+tt.unit, func(t *testing.T) {
				path := fmt.Sprintf("/api/v1/tours/tours-within/%s/center/%s/unit/%s", tt.distance, center, tt.unit)
				w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, path, nil)
				require.Equal(t, http.StatusOK, w.Code, w.Body.String())
				assert.Len(t, testutil.ParseEnvelope(t, w).Docs(t), tt.expected)
			})
		}
	})

	t.Run("distances are sorted", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/distances/"+center+"/unit/km", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		docs := testutil.ParseEnvelope(t, w).Docs(t)
		require.Len(t, docs, 2)
		assert.Equal(t, la.ID.Hex(), docs[0]["_id"])
		assert.InDelta(t, 0, docs[0]["distance"], 0.01)
		assert.InDelta(t, 368, docs[1]["distance"], 10)
	})

	t.Run("bad unit", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/distances/"+center+"/unit/yards", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Please provide the unit as mi or km.", testutil.ParseEnvelope(t, w).Message)
	})

	t.Run("bad center", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/tours/tours-within/10/center/nowhere/unit/km", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTourImages(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	_, token := testServer.SeedSession(t, models.RoleLeadGuide)
	tour := testServer.SeedTour(t, fixtures.NewTour())
	path := "/api/v1/tours/" + tour.ID.Hex()
	image := testutil.FormFile{Field: "images", ContentType: "image/png", Content: testutil.PNG(t, 400, 300)}

	t.Run("cover and gallery", func(t *testing.T) {
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPatch, path, token, nil,
			testutil.FormFile{Field: "imageCover", ContentType: "image/png", Content: testutil.PNG(t, 400, 300)},
			image, image, image)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		doc := testutil.ParseEnvelope(t, w).Doc(t)
		cover, _ := doc["imageCover"].(string)
		assert.True(t, strings.HasSuffix(cover, "-cover.jpeg"), cover)
		assert.Equal(t, "image/jpeg", testServer.MinIO.ObjectContentType(context.Background(), "img/tours/"+cover))

		images, _ := doc["images"].([]interface{})
		assert.Len(t, images, 3)
	})

	t.Run("at most three gallery images", func(t *testing.T) {
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPatch, path, token, nil, image, image, image, image)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
