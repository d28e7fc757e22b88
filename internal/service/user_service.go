package service

import (
	"context"

	"tourbook/internal/cache"
	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/query"
	"tourbook/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userFields are the filterable user attributes.
var userFields = []string{"name", "email", "role", "photo"}

// UserService handles business logic for user operations.
type UserService struct {
	*ResourceService[models.User]
	repo  repository.UserRepository
	cache cache.Cache
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, c cache.Cache, maxLimit int) *UserService {
	if c == nil {
		c = cache.Noop{}
	}
	s := &UserService{repo: repo, cache: c}
	s.ResourceService = NewResourceService[models.User](repo, Hooks[models.User]{
		AfterWrite:  s.invalidate,
		AfterDelete: s.invalidate,
	},
		query.WithAllowedFields(userFields...),
		query.WithMultiValueFields("role"),
		query.WithMaxLimit(maxLimit),
		// users carry no createdAt; the id holds the creation time
		query.WithDefaultSort("-_id"),
	)
	return s
}

// Create is not offered for users; accounts come from signup.
func (s *UserService) Create(context.Context, *models.User) (*models.User, error) {
	return nil, apperrors.ErrUseSignup
}

// UpdateMe changes the profile of the signed-in user. Only name, email and
// photo can be changed here.
func (s *UserService) UpdateMe(ctx context.Context, userID primitive.ObjectID, req *models.UpdateMeRequest) (*models.User, error) {
	if req.TouchesPassword() {
		return nil, apperrors.ErrPasswordRoute
	}

	user, err := s.repo.UpdateByID(ctx, userID, req.Fields())
	if err != nil {
		return nil, err
	}

	_ = s.invalidate(ctx, user)
	return user, nil
}

// DeleteMe deactivates the account of the signed-in user.
func (s *UserService) DeleteMe(ctx context.Context, userID primitive.ObjectID) error {
	user, err := s.repo.UpdateByID(ctx, userID, bson.M{"active": false})
	if err != nil {
		return err
	}

	_ = s.invalidate(ctx, user)
	return nil
}

// invalidate drops the cached session copy of a user. Cache errors are
// ignored; the entry expires on its own.
func (s *UserService) invalidate(ctx context.Context, user *models.User) error {
	_ = s.cache.Delete(ctx, cache.UserCacheKey(user.ID.Hex()))
	return nil
}
