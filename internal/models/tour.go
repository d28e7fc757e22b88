package models

import (
	"math"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tour difficulties.
const (
	DifficultyEasy      = "easy"
	DifficultyMedium    = "medium"
	DifficultyDifficult = "difficult"
)

// DefaultRatingsAverage is the average of a tour without reviews.
const DefaultRatingsAverage = 4.5

// Location is a GeoJSON point with optional labels. Coordinates are
// longitude first.
type Location struct {
	Type        string    `json:"type" bson:"type" example:"Point"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates" example:"-80.185942,25.774772"`
	Address     string    `json:"address,omitempty" bson:"address,omitempty" example:"301 Biscayne Blvd, Miami, FL 33132, USA"`
	Description string    `json:"description,omitempty" bson:"description,omitempty" example:"Miami, USA"`
	Day         int       `json:"day,omitempty" bson:"day,omitempty" example:"1"`
}

// Valid reports whether the location is a well-formed point.
func (l *Location) Valid() bool {
	if l.Type != "" && l.Type != "Point" {
		return false
	}
	if len(l.Coordinates) != 2 {
		return false
	}
	lng, lat := l.Coordinates[0], l.Coordinates[1]
	return lng >= -180 && lng <= 180 && lat >= -90 && lat <= 90
}

func (l Location) normalized() Location {
	if l.Type == "" {
		l.Type = "Point"
	}
	return l
}

// Tour represents a bookable tour.
type Tour struct {
	ID              primitive.ObjectID   `json:"_id" bson:"_id,omitempty" example:"5c88fa8cf4afda39709c2955" swaggertype:"string"`
	Name            string               `json:"name" bson:"name" example:"The Sea Explorer"`
	Slug            string               `json:"slug" bson:"slug" example:"the-sea-explorer"`
	Duration        int                  `json:"duration" bson:"duration" example:"7"`
	MaxGroupSize    int                  `json:"maxGroupSize" bson:"maxGroupSize" example:"15"`
	Difficulty      string               `json:"difficulty" bson:"difficulty" example:"medium"`
	RatingsAverage  float64              `json:"ratingsAverage" bson:"ratingsAverage" example:"4.8"`
	RatingsQuantity int                  `json:"ratingsQuantity" bson:"ratingsQuantity" example:"6"`
	Price           float64              `json:"price" bson:"price" example:"497"`
	PriceDiscount   *float64             `json:"priceDiscount,omitempty" bson:"priceDiscount,omitempty" example:"97"`
	Summary         string               `json:"summary" bson:"summary" example:"Exploring the jaw-dropping US east coast by foot and by boat"`
	Description     string               `json:"description,omitempty" bson:"description,omitempty"`
	ImageCover      string               `json:"imageCover" bson:"imageCover" example:"tour-2-cover.jpg"`
	Images          []string             `json:"images" bson:"images"`
	CreatedAt       time.Time            `json:"-" bson:"createdAt"`
	StartDates      []time.Time          `json:"startDates" bson:"startDates"`
	SecretTour      bool                 `json:"secretTour" bson:"secretTour"`
	StartLocation   *Location            `json:"startLocation,omitempty" bson:"startLocation,omitempty"`
	Locations       []Location           `json:"locations" bson:"locations"`
	Guides          []primitive.ObjectID `json:"guides" bson:"guides" swaggertype:"array,string"`
	Version         int                  `json:"-" bson:"__v"`

	// Derived and populated fields, never stored
	DurationWeeks float64       `json:"durationWeeks" bson:"-"`
	GuideProfiles []UserSummary `json:"guideProfiles,omitempty" bson:"-"`
	Reviews       []Review      `json:"reviews,omitempty" bson:"-"`
}

// Derive fills computed fields after a load.
func (t *Tour) Derive() {
	t.DurationWeeks = float64(t.Duration) / 7
}

// Ref is the reference embedded in bookings.
func (t *Tour) Ref() TourSummary {
	return TourSummary{ID: t.ID, Name: t.Name, Slug: t.Slug, ImageCover: t.ImageCover}
}

// TourSummary is a populated tour reference.
type TourSummary struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id" example:"5c88fa8cf4afda39709c2955" swaggertype:"string"`
	Name       string             `json:"name" bson:"name" example:"The Sea Explorer"`
	Slug       string             `json:"slug,omitempty" bson:"slug,omitempty" example:"the-sea-explorer"`
	ImageCover string             `json:"imageCover,omitempty" bson:"imageCover,omitempty" example:"tour-2-cover.jpg"`
}

// Slugify derives the URL slug of a tour name.
func Slugify(name string) string {
	return slug.Make(name)
}

// RoundRating rounds an average to one decimal place.
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

// CreateTourRequest is the payload for creating a tour.
type CreateTourRequest struct {
	Name            string      `json:"name" binding:"required,min=10,max=40" example:"The Sea Explorer"`
	Duration        int         `json:"duration" binding:"required,gt=0" example:"7"`
	MaxGroupSize    int         `json:"maxGroupSize" binding:"required,gt=0" example:"15"`
	Difficulty      string      `json:"difficulty" binding:"required,oneof=easy medium difficult" example:"medium"`
	RatingsAverage  *float64    `json:"ratingsAverage" binding:"omitempty,gte=0,lte=5" example:"4.5"`
	RatingsQuantity *int        `json:"ratingsQuantity" binding:"omitempty,gte=0" example:"0"`
	Price           float64     `json:"price" binding:"required,gt=0" example:"497"`
	PriceDiscount   *float64    `json:"priceDiscount" binding:"omitempty,gte=0" example:"97"`
	Summary         string      `json:"summary" binding:"required" example:"Exploring the jaw-dropping US east coast by foot and by boat"`
	Description     string      `json:"description"`
	ImageCover      string      `json:"imageCover" binding:"required" example:"tour-2-cover.jpg"`
	Images          []string    `json:"images"`
	StartDates      []time.Time `json:"startDates"`
	SecretTour      bool        `json:"secretTour"`
	StartLocation   *Location   `json:"startLocation"`
	Locations       []Location  `json:"locations"`
	Guides          []string    `json:"guides" binding:"omitempty,dive,objectid"`
}

// ToModel builds the new tour with defaults applied.
func (r *CreateTourRequest) ToModel() *Tour {
	t := &Tour{
		Name:           strings.TrimSpace(r.Name),
		Duration:       r.Duration,
		MaxGroupSize:   r.MaxGroupSize,
		Difficulty:     r.Difficulty,
		RatingsAverage: DefaultRatingsAverage,
		Price:          r.Price,
		PriceDiscount:  r.PriceDiscount,
		Summary:        strings.TrimSpace(r.Summary),
		Description:    strings.TrimSpace(r.Description),
		ImageCover:     r.ImageCover,
		Images:         nonNil(r.Images),
		StartDates:     r.StartDates,
		SecretTour:     r.SecretTour,
		Guides:         objectIDs(r.Guides),
	}
	if t.StartDates == nil {
		t.StartDates = []time.Time{}
	}
	if r.RatingsAverage != nil {
		t.RatingsAverage = RoundRating(*r.RatingsAverage)
	}
	if r.RatingsQuantity != nil {
		t.RatingsQuantity = *r.RatingsQuantity
	}
	if r.StartLocation != nil {
		loc := r.StartLocation.normalized()
		t.StartLocation = &loc
	}
	t.Locations = make([]Location, 0, len(r.Locations))
	for _, loc := range r.Locations {
		t.Locations = append(t.Locations, loc.normalized())
	}
	t.Slug = Slugify(t.Name)
	return t
}

// UpdateTourRequest is the partial tour update. Image fields are also
// filled from multipart uploads.
type UpdateTourRequest struct {
	Name            *string     `json:"name" form:"name" binding:"omitempty,min=10,max=40" example:"The Sea Explorer"`
	Duration        *int        `json:"duration" form:"duration" binding:"omitempty,gt=0" example:"7"`
	MaxGroupSize    *int        `json:"maxGroupSize" form:"maxGroupSize" binding:"omitempty,gt=0" example:"15"`
	Difficulty      *string     `json:"difficulty" form:"difficulty" binding:"omitempty,oneof=easy medium difficult" example:"medium"`
	RatingsAverage  *float64    `json:"ratingsAverage" form:"ratingsAverage" binding:"omitempty,gte=0,lte=5" example:"4.5"`
	RatingsQuantity *int        `json:"ratingsQuantity" form:"ratingsQuantity" binding:"omitempty,gte=0" example:"0"`
	Price           *float64    `json:"price" form:"price" binding:"omitempty,gt=0" example:"497"`
	PriceDiscount   *float64    `json:"priceDiscount" form:"priceDiscount" binding:"omitempty,gte=0" example:"97"`
	Summary         *string     `json:"summary" form:"summary" example:"Exploring the jaw-dropping US east coast"`
	Description     *string     `json:"description" form:"description"`
	ImageCover      *string     `json:"imageCover" form:"-" example:"tour-2-cover.jpg"`
	Images          []string    `json:"images" form:"-"`
	StartDates      []time.Time `json:"startDates" form:"-"`
	SecretTour      *bool       `json:"secretTour" form:"secretTour"`
	StartLocation   *Location   `json:"startLocation" form:"-"`
	Locations       []Location  `json:"locations" form:"-"`
	Guides          []string    `json:"guides" form:"-" binding:"omitempty,dive,objectid"`
}

// Fields returns the document changes. Renames also move the slug.
func (r *UpdateTourRequest) Fields() bson.M {
	set := bson.M{}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		set["name"] = name
		set["slug"] = Slugify(name)
	}
	if r.Duration != nil {
		set["duration"] = *r.Duration
	}
	if r.MaxGroupSize != nil {
		set["maxGroupSize"] = *r.MaxGroupSize
	}
	if r.Difficulty != nil {
		set["difficulty"] = *r.Difficulty
	}
	if r.RatingsAverage != nil {
		set["ratingsAverage"] = RoundRating(*r.RatingsAverage)
	}
	if r.RatingsQuantity != nil {
		set["ratingsQuantity"] = *r.RatingsQuantity
	}
	if r.Price != nil {
		set["price"] = *r.Price
	}
	if r.PriceDiscount != nil {
		set["priceDiscount"] = *r.PriceDiscount
	}
	if r.Summary != nil {
		set["summary"] = strings.TrimSpace(*r.Summary)
	}
	if r.Description != nil {
		set["description"] = strings.TrimSpace(*r.Description)
	}
	if r.ImageCover != nil {
		set["imageCover"] = *r.ImageCover
	}
	if r.Images != nil {
		set["images"] = r.Images
	}
	if r.StartDates != nil {
		set["startDates"] = r.StartDates
	}
	if r.SecretTour != nil {
		set["secretTour"] = *r.SecretTour
	}
	if r.StartLocation != nil {
		set["startLocation"] = r.StartLocation.normalized()
	}
	if r.Locations != nil {
		locs := make([]Location, 0, len(r.Locations))
		for _, loc := range r.Locations {
			locs = append(locs, loc.normalized())
		}
		set["locations"] = locs
	}
	if r.Guides != nil {
		set["guides"] = objectIDs(r.Guides)
	}
	return set
}

// TourStats is one difficulty bucket of the tour statistics.
type TourStats struct {
	Difficulty string  `json:"_id" bson:"_id" example:"MEDIUM"`
	NumTours   int     `json:"numTours" bson:"numTours" example:"3"`
	NumRatings int     `json:"numRatings" bson:"numRatings" example:"70"`
	AvgRating  float64 `json:"avgRating" bson:"avgRating" example:"4.8"`
	AvgPrice   float64 `json:"avgPrice" bson:"avgPrice" example:"1663.67"`
	MinPrice   float64 `json:"minPrice" bson:"minPrice" example:"497"`
	MaxPrice   float64 `json:"maxPrice" bson:"maxPrice" example:"2997"`
}

// MonthlyPlan lists the tours starting in one month.
type MonthlyPlan struct {
	Month         int      `json:"month" bson:"month" example:"7"`
	NumTourStarts int      `json:"numTourStarts" bson:"numTourStarts" example:"3"`
	Tours         []string `json:"tours" bson:"tours"`
}

// TourDistance is a tour name with its distance from a point.
type TourDistance struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id" swaggertype:"string"`
	Name     string             `json:"name" bson:"name" example:"The Sea Explorer"`
	Distance float64            `json:"distance" bson:"distance" example:"40.12"`
}

func objectIDs(hexes []string) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		// Bound with the objectid validator, so parse errors cannot occur
		if id, err := primitive.ObjectIDFromHex(h); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
