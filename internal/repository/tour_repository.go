package repository

import (
	"context"
	"time"

	"tourbook/internal/database"
	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// publicTours hides secret tours from finds and aggregations
var publicTours = bson.M{"secretTour": bson.M{"$ne": true}}

// TourRepository defines the interface for tour data operations
type TourRepository interface {
	Store[models.Tour]
	FindBySlug(ctx context.Context, slug string) (*models.Tour, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Tour, error)
	UpdateRatings(ctx context.Context, id primitive.ObjectID, quantity int, average float64) error
	Stats(ctx context.Context, minRating float64) ([]models.TourStats, error)
	MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlan, error)
	Within(ctx context.Context, lng, lat, radius float64) ([]models.Tour, error)
	Distances(ctx context.Context, lng, lat, multiplier float64) ([]models.TourDistance, error)
}

type tourRepository struct {
	*mongoStore[models.Tour]
}

// NewTourRepository creates a new TourRepository
func NewTourRepository(db *mongo.Database) TourRepository {
	return &tourRepository{
		mongoStore: newMongoStore(db.Collection(database.ToursCollection), publicTours, stampTour),
	}
}

func stampTour(t *models.Tour, id primitive.ObjectID, now time.Time) {
	stampID(&t.ID, id)
	stampTime(&t.CreatedAt, now)
	if t.Slug == "" {
		t.Slug = models.Slugify(t.Name)
	}
	if t.Images == nil {
		t.Images = []string{}
	}
	if t.StartDates == nil {
		t.StartDates = []time.Time{}
	}
	if t.Locations == nil {
		t.Locations = []models.Location{}
	}
	if t.Guides == nil {
		t.Guides = []primitive.ObjectID{}
	}
}

// FindBySlug finds a public tour by its slug
func (r *tourRepository) FindBySlug(ctx context.Context, slug string) (*models.Tour, error) {
	return r.FindOne(ctx, bson.M{"slug": slug})
}

// FindByIDs loads the public tours with the given IDs
func (r *tourRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Tour, error) {
	if len(ids) == 0 {
		return []models.Tour{}, nil
	}
	return r.findAll(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// UpdateRatings stores recomputed rating aggregates. Secret tours keep
// their ratings too, so the default scope does not apply.
func (r *tourRepository) UpdateRatings(ctx context.Context, id primitive.ObjectID, quantity int, average float64) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"ratingsQuantity": quantity, "ratingsAverage": average}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

// Stats groups well rated tours by difficulty
func (r *tourRepository) Stats(ctx context.Context, minRating float64) ([]models.TourStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: publicTours}},
		{{Key: "$match", Value: bson.M{"ratingsAverage": bson.M{"$gte": minRating}}}},
		{{Key: "$group", Value: bson.M{
			"_id":        bson.M{"$toUpper": "$difficulty"},
			"numTours":   bson.M{"$sum": 1},
			"numRatings": bson.M{"$sum": "$ratingsQuantity"},
			"avgRating":  bson.M{"$avg": "$ratingsAverage"},
			"avgPrice":   bson.M{"$avg": "$price"},
			"minPrice":   bson.M{"$min": "$price"},
			"maxPrice":   bson.M{"$max": "$price"},
		}}},
		{{Key: "$sort", Value: bson.M{"avgPrice": 1}}},
	}
	return aggregate[models.TourStats](ctx, r.collection, pipeline)
}

// MonthlyPlan counts tour starts per month of a year, busiest month first
func (r *tourRepository) MonthlyPlan(ctx context.Context, year int) ([]models.MonthlyPlan, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: publicTours}},
		{{Key: "$unwind", Value: "$startDates"}},
		{{Key: "$match", Value: bson.M{"startDates": bson.M{"$gte": from, "$lt": to}}}},
		{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"$month": "$startDates"},
			"numTourStarts": bson.M{"$sum": 1},
			"tours":         bson.M{"$push": "$name"},
		}}},
		{{Key: "$addFields", Value: bson.M{"month": "$_id"}}},
		{{Key: "$project", Value: bson.M{"_id": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "numTourStarts", Value: -1}, {Key: "month", Value: 1}}}},
		{{Key: "$limit", Value: 12}},
	}
	return aggregate[models.MonthlyPlan](ctx, r.collection, pipeline)
}

// Within finds tours starting inside a sphere of radius radians
func (r *tourRepository) Within(ctx context.Context, lng, lat, radius float64) ([]models.Tour, error) {
	return r.findAll(ctx, bson.M{
		"startLocation": bson.M{
			"$geoWithin": bson.M{"$centerSphere": bson.A{bson.A{lng, lat}, radius}},
		},
	})
}

// Distances returns every tour with its distance from a point, nearest
// first. multiplier converts meters to the requested unit.
func (r *tourRepository) Distances(ctx context.Context, lng, lat, multiplier float64) ([]models.TourDistance, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.M{
			"near":               bson.M{"type": "Point", "coordinates": bson.A{lng, lat}},
			"distanceField":      "distance",
			"distanceMultiplier": multiplier,
			"key":                "startLocation",
			"query":              publicTours,
			"spherical":          true,
		}}},
		{{Key: "$project", Value: bson.M{"distance": 1, "name": 1}}},
	}
	return aggregate[models.TourDistance](ctx, r.collection, pipeline)
}

func aggregate[T any](ctx context.Context, collection *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](ctx, cursor)
}
