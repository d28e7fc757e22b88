package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexSpec struct {
	collection string
	model      mongo.IndexModel
}

func indexSpecs() []indexSpec {
	return []indexSpec{
		{UsersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{UsersCollection, mongo.IndexModel{
			Keys: bson.D{{Key: "passwordResetToken", Value: 1}},
		}},

		{ToursCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{ToursCollection, mongo.IndexModel{
			Keys: bson.D{{Key: "price", Value: 1}, {Key: "ratingsAverage", Value: -1}},
		}},
		{ToursCollection, mongo.IndexModel{
			Keys: bson.D{{Key: "slug", Value: 1}},
		}},
		{ToursCollection, mongo.IndexModel{
			Keys: bson.D{{Key: "startLocation", Value: "2dsphere"}},
		}},

		// One review per user and tour
		{ReviewsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "tour", Value: 1}, {Key: "user", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},

		{BookingsCollection, mongo.IndexModel{
			Keys: bson.D{{Key: "user", Value: 1}},
		}},
		{BookingsCollection, mongo.IndexModel{
			Keys: bson.D{{Key: "tour", Value: 1}},
		}},
	}
}

// EnsureIndexes creates every index the repositories rely on and returns
// the index names. Existing indexes with the same keys are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database) ([]string, error) {
	names := make([]string, 0, len(indexSpecs()))
	for _, spec := range indexSpecs() {
		name, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model)
		if err != nil {
			return names, fmt.Errorf("create index on %s: %w", spec.collection, err)
		}
		names = append(names, spec.collection+"."+name)
	}
	return names, nil
}
