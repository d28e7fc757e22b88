package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking records a paid reservation of a tour by a user.
type Booking struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"5c8a1f292f8fb814b56fa184" swaggertype:"string"`
	Tour      primitive.ObjectID `json:"tour" bson:"tour" example:"5c88fa8cf4afda39709c2955" swaggertype:"string"`
	User      primitive.ObjectID `json:"user" bson:"user" example:"5c8a1dfa2f8fb814b56fa181" swaggertype:"string"`
	Price     float64            `json:"price" bson:"price" example:"497"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	Paid      bool               `json:"paid" bson:"paid" example:"true"`
	Version   int                `json:"-" bson:"__v"`

	TourInfo *TourSummary `json:"tourInfo,omitempty" bson:"-"`
	UserInfo *UserSummary `json:"userInfo,omitempty" bson:"-"`
}

// CreateBookingRequest is the administrative booking payload.
type CreateBookingRequest struct {
	Tour  string  `json:"tour" binding:"required,objectid" example:"5c88fa8cf4afda39709c2955"`
	User  string  `json:"user" binding:"required,objectid" example:"5c8a1dfa2f8fb814b56fa181"`
	Price float64 `json:"price" binding:"required,gt=0" example:"497"`
	Paid  *bool   `json:"paid" example:"true"`
}

// ToModel builds the new booking. Bookings are paid unless stated.
func (r *CreateBookingRequest) ToModel() *Booking {
	b := &Booking{Price: r.Price, Paid: true}
	b.Tour, _ = primitive.ObjectIDFromHex(r.Tour)
	b.User, _ = primitive.ObjectIDFromHex(r.User)
	if r.Paid != nil {
		b.Paid = *r.Paid
	}
	return b
}

// UpdateBookingRequest changes price or payment state.
type UpdateBookingRequest struct {
	Price *float64 `json:"price" binding:"omitempty,gt=0" example:"397"`
	Paid  *bool    `json:"paid" example:"false"`
}

// Fields returns the document changes.
func (r *UpdateBookingRequest) Fields() bson.M {
	set := bson.M{}
	if r.Price != nil {
		set["price"] = *r.Price
	}
	if r.Paid != nil {
		set["paid"] = *r.Paid
	}
	return set
}
