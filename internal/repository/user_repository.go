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

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks tourbook/internal/repository UserRepository,TourRepository,ReviewRepository,BookingRepository

// activeUsers hides deactivated accounts from every query
var activeUsers = bson.M{"active": bson.M{"$ne": false}}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Store[models.User]
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (*models.User, error)
	SetPassword(ctx context.Context, id primitive.ObjectID, hash string, changedAt time.Time) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expires time.Time) error
	ClearResetToken(ctx context.Context, id primitive.ObjectID) error
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	*mongoStore[models.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		mongoStore: newMongoStore(db.Collection(database.UsersCollection), activeUsers, stampUser),
	}
}

func stampUser(u *models.User, id primitive.ObjectID, _ time.Time) {
	stampID(&u.ID, id)
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if u.Photo == "" {
		u.Photo = models.DefaultPhoto
	}
	if u.Active == nil {
		active := true
		u.Active = &active
	}
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.FindOne(ctx, bson.M{"email": email})
}

// FindByIDs loads the users with the given IDs, in no particular order
func (r *userRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	return r.findAll(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// FindByResetToken finds the user owning an unexpired reset token hash
func (r *userRepository) FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (*models.User, error) {
	return r.FindOne(ctx, bson.M{
		"passwordResetToken":   tokenHash,
		"passwordResetExpires": bson.M{"$gt": now},
	})
}

// SetPassword stores a new password hash and drops any pending reset
func (r *userRepository) SetPassword(ctx context.Context, id primitive.ObjectID, hash string, changedAt time.Time) error {
	return r.updateOne(ctx, id, bson.M{
		"$set":   bson.M{"password": hash, "passwordChangedAt": changedAt},
		"$unset": bson.M{"passwordResetToken": "", "passwordResetExpires": ""},
	})
}

// SetResetToken stores the hash of a password reset token
func (r *userRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expires time.Time) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{"passwordResetToken": tokenHash, "passwordResetExpires": expires},
	})
}

// ClearResetToken removes a pending password reset
func (r *userRepository) ClearResetToken(ctx context.Context, id primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{
		"$unset": bson.M{"passwordResetToken": "", "passwordResetExpires": ""},
	})
}

func (r *userRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, r.scoped(bson.M{"_id": id}), update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}
