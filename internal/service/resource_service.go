package service

import (
	"context"
	"net/url"
	"slices"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/query"
	"tourbook/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hooks are the optional steps a resource runs around persistence. They
// are called explicitly by ResourceService, in the order listed.
type Hooks[T any] struct {
	// Prepare runs before a new document is inserted.
	Prepare func(ctx context.Context, doc *T) error
	// ValidateUpdate sees the stored document and the pending changes.
	ValidateUpdate func(ctx context.Context, current *T, set bson.M) error
	// AfterWrite runs after a create or update succeeded.
	AfterWrite func(ctx context.Context, doc *T) error
	// AfterDelete runs with the removed document.
	AfterDelete func(ctx context.Context, doc *T) error
	// Populate fills related data into loaded documents.
	Populate func(ctx context.Context, docs []T) error
	// PopulateOne fills the detail view of a single document. Falls back
	// to Populate when unset.
	PopulateOne func(ctx context.Context, doc *T) error
}

// ResourceService implements list, get, create, update and delete for one
// entity type on top of a repository.Store.
type ResourceService[T any] struct {
	store     repository.Store[T]
	hooks     Hooks[T]
	queryOpts []query.Option
}

// NewResourceService creates a ResourceService. opts configure the query
// builder used by List.
func NewResourceService[T any](store repository.Store[T], hooks Hooks[T], opts ...query.Option) *ResourceService[T] {
	return &ResourceService[T]{
		store:     store,
		hooks:     hooks,
		queryOpts: opts,
	}
}

// ParseID converts a path parameter into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.Cast("_id", id)
	}
	return oid, nil
}

// List runs the query described by values, restricted to scope.
func (s *ResourceService[T]) List(ctx context.Context, values url.Values, scope bson.M) ([]T, error) {
	opts := append(slices.Clone(s.queryOpts), query.WithBase(scope))
	spec := query.New(values, opts...).
		Filter().
		Sort().
		LimitFields().
		Paginate().
		Build()

	docs, err := s.store.FindMany(ctx, spec)
	if err != nil {
		return nil, err
	}
	if s.hooks.Populate != nil {
		if err := s.hooks.Populate(ctx, docs); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

// Get loads one document with its detail data.
func (s *ResourceService[T]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if err := s.populateOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Create inserts doc and returns it.
func (s *ResourceService[T]) Create(ctx context.Context, doc *T) (*T, error) {
	if s.hooks.Prepare != nil {
		if err := s.hooks.Prepare(ctx, doc); err != nil {
			return nil, err
		}
	}

	if err := s.store.Create(ctx, doc); err != nil {
		return nil, err
	}

	if s.hooks.AfterWrite != nil {
		if err := s.hooks.AfterWrite(ctx, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Update applies patch to the document and returns the new version.
func (s *ResourceService[T]) Update(ctx context.Context, id string, patch models.Patch) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	set := patch.Fields()
	if s.hooks.ValidateUpdate != nil && len(set) > 0 {
		current, err := s.store.FindByID(ctx, oid)
		if err != nil {
			return nil, err
		}
		if err := s.hooks.ValidateUpdate(ctx, current, set); err != nil {
			return nil, err
		}
	}

	doc, err := s.store.UpdateByID(ctx, oid, set)
	if err != nil {
		return nil, err
	}

	if s.hooks.AfterWrite != nil {
		if err := s.hooks.AfterWrite(ctx, doc); err != nil {
			return nil, err
		}
	}
	if err := s.populateOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes the document.
func (s *ResourceService[T]) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	doc, err := s.store.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}

	if s.hooks.AfterDelete != nil {
		return s.hooks.AfterDelete(ctx, doc)
	}
	return nil
}

func (s *ResourceService[T]) populateOne(ctx context.Context, doc *T) error {
	if s.hooks.PopulateOne != nil {
		return s.hooks.PopulateOne(ctx, doc)
	}
	if s.hooks.Populate != nil {
		docs := []T{*doc}
		if err := s.hooks.Populate(ctx, docs); err != nil {
			return err
		}
		*doc = docs[0]
	}
	return nil
}
