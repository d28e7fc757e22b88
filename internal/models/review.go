package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user's rating of a tour. A user reviews a tour at most once.
type Review struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"5c8a34ed14eb5c17645c9108" swaggertype:"string"`
	Review    string             `json:"review" bson:"review" example:"Cras mollis nisi parturient mi nec aliquet suspendisse sagittis eros condimentum scelerisque taciti mattis praesent feugiat eu nascetur a tincidunt"`
	Rating    float64            `json:"rating" bson:"rating" example:"5"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	Tour      primitive.ObjectID `json:"tour" bson:"tour" example:"5c88fa8cf4afda39709c2955" swaggertype:"string"`
	User      primitive.ObjectID `json:"user" bson:"user" example:"5c8a1dfa2f8fb814b56fa181" swaggertype:"string"`
	Version   int                `json:"-" bson:"__v"`

	Author *UserSummary `json:"author,omitempty" bson:"-"`
}

// CreateReviewRequest is the payload for posting a review. Tour and user
// default to the nested route and the signed-in user.
type CreateReviewRequest struct {
	Review string  `json:"review" binding:"required" example:"Amazing tour, would book again!"`
	Rating float64 `json:"rating" binding:"required,gte=1,lte=5" example:"5"`
	Tour   string  `json:"tour" binding:"omitempty,objectid" example:"5c88fa8cf4afda39709c2955"`
	User   string  `json:"user" binding:"omitempty,objectid" example:"5c8a1dfa2f8fb814b56fa181"`
}

// ToModel builds the new review.
func (r *CreateReviewRequest) ToModel() *Review {
	review := &Review{
		Review: strings.TrimSpace(r.Review),
		Rating: r.Rating,
	}
	review.Tour, _ = primitive.ObjectIDFromHex(r.Tour)
	review.User, _ = primitive.ObjectIDFromHex(r.User)
	return review
}

// UpdateReviewRequest changes the text or rating of a review.
type UpdateReviewRequest struct {
	Review *string  `json:"review" binding:"omitempty,min=1" example:"Even better the second time."`
	Rating *float64 `json:"rating" binding:"omitempty,gte=1,lte=5" example:"4"`
}

// Fields returns the document changes.
func (r *UpdateReviewRequest) Fields() bson.M {
	set := bson.M{}
	if r.Review != nil {
		set["review"] = strings.TrimSpace(*r.Review)
	}
	if r.Rating != nil {
		set["rating"] = *r.Rating
	}
	return set
}

// RatingSummary is the aggregate of all reviews of one tour.
type RatingSummary struct {
	Tour     primitive.ObjectID `bson:"_id"`
	Quantity int                `bson:"nRating"`
	Average  float64            `bson:"avgRating"`
}
