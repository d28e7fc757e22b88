// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store defines the CRUD operations shared by every collection. All reads
// and writes are restricted by the collection's default scope.
type Store[T any] interface {
	Create(ctx context.Context, doc *T) error
	InsertMany(ctx context.Context, docs []T) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	FindOne(ctx context.Context, filter bson.M) (*T, error)
	FindMany(ctx context.Context, spec query.Spec) ([]T, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*T, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// stampFunc fills identity and creation time on documents that lack them.
type stampFunc[T any] func(doc *T, id primitive.ObjectID, now time.Time)

// mongoStore implements Store over one MongoDB collection
type mongoStore[T any] struct {
	collection *mongo.Collection
	scope      bson.M
	stamp      stampFunc[T]
	now        func() time.Time
}

func newMongoStore[T any](collection *mongo.Collection, scope bson.M, stamp stampFunc[T]) *mongoStore[T] {
	return &mongoStore[T]{
		collection: collection,
		scope:      scope,
		stamp:      stamp,
		now:        time.Now,
	}
}

// scoped composes a filter with the default scope
func (s *mongoStore[T]) scoped(filter bson.M) bson.M {
	if len(s.scope) == 0 {
		return filter
	}
	if len(filter) == 0 {
		return s.scope
	}
	return bson.M{"$and": bson.A{s.scope, filter}}
}

// Create inserts a new document and assigns its ID
func (s *mongoStore[T]) Create(ctx context.Context, doc *T) error {
	s.stamp(doc, primitive.NewObjectID(), s.now())
	_, err := s.collection.InsertOne(ctx, doc)
	return err
}

// InsertMany inserts documents in order, keeping IDs that are already set
func (s *mongoStore[T]) InsertMany(ctx context.Context, docs []T) error {
	if len(docs) == 0 {
		return nil
	}
	now := s.now()
	items := make([]interface{}, 0, len(docs))
	for i := range docs {
		s.stamp(&docs[i], primitive.NewObjectID(), now)
		items = append(items, &docs[i])
	}
	_, err := s.collection.InsertMany(ctx, items)
	return err
}

// FindByID finds a document by its ID
func (s *mongoStore[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

// FindOne returns the first document matching filter
func (s *mongoStore[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := s.collection.FindOne(ctx, s.scoped(filter)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindMany executes a query spec once
func (s *mongoStore[T]) FindMany(ctx context.Context, spec query.Spec) ([]T, error) {
	cursor, err := s.collection.Find(ctx, s.scoped(spec.Filter), spec.FindOptions())
	if err != nil {
		return nil, err
	}
	return decodeAll[T](ctx, cursor)
}

// Count returns the number of documents matching filter
func (s *mongoStore[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.collection.CountDocuments(ctx, s.scoped(filter))
}

// UpdateByID applies set and returns the updated document
func (s *mongoStore[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*T, error) {
	if len(set) == 0 {
		return s.FindByID(ctx, id)
	}

	var doc T
	err := s.collection.FindOneAndUpdate(
		ctx,
		s.scoped(bson.M{"_id": id}),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// DeleteByID removes a document and returns it
func (s *mongoStore[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	err := s.collection.FindOneAndDelete(ctx, s.scoped(bson.M{"_id": id})).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// DeleteAll empties the collection, ignoring the default scope
func (s *mongoStore[T]) DeleteAll(ctx context.Context) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (s *mongoStore[T]) findAll(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := s.collection.Find(ctx, s.scoped(filter), opts...)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](ctx, cursor)
}

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

func stampID(current *primitive.ObjectID, id primitive.ObjectID) {
	if current.IsZero() {
		*current = id
	}
}

func stampTime(current *time.Time, now time.Time) {
	if current.IsZero() {
		*current = now
	}
}
