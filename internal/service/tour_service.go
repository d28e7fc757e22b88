package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/query"
	"tourbook/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatsMinRating is the lowest average included in tour statistics.
const StatsMinRating = 4.5

// Earth radius and meter conversion per distance unit.
var (
	earthRadius = map[string]float64{"mi": 3963.2, "km": 6378.1}
	meterFactor = map[string]float64{"mi": 0.000621371, "km": 0.001}
)

// tourFields are the filterable tour attributes.
var tourFields = []string{
	"name", "slug", "duration", "maxGroupSize", "difficulty",
	"ratingsAverage", "ratingsQuantity", "price", "priceDiscount", "guides",
}

// TourService handles business logic for tour operations.
type TourService struct {
	*ResourceService[models.Tour]
	tours   repository.TourRepository
	users   repository.UserRepository
	reviews repository.ReviewRepository
}

// NewTourService creates a new TourService.
func NewTourService(tours repository.TourRepository, users repository.UserRepository, reviews repository.ReviewRepository, maxLimit int) *TourService {
	s := &TourService{tours: tours, users: users, reviews: reviews}
	s.ResourceService = NewResourceService[models.Tour](tours, Hooks[models.Tour]{
		Prepare:        s.prepare,
		ValidateUpdate: s.validateUpdate,
		Populate:       s.populate,
		PopulateOne:    s.populateDetail,
	},
		query.WithAllowedFields(tourFields...),
		query.WithMultiValueFields("difficulty"),
		query.WithMaxLimit(maxLimit),
	)
	return s
}

// GetBySlug loads a tour page by its slug.
func (s *TourService) GetBySlug(ctx context.Context, slug string) (*models.Tour, error) {
	tour, err := s.tours.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			return nil, apperrors.ErrTourNotFound
		}
		return nil, err
	}
	if err := s.populateDetail(ctx, tour); err != nil {
		return nil, err
	}
	return tour, nil
}

// Stats groups tours rated at least StatsMinRating by difficulty.
func (s *TourService) Stats(ctx context.Context) ([]models.TourStats, error) {
	return s.tours.Stats(ctx, StatsMinRating)
}

// MonthlyPlan counts the tour starts of each month in year.
func (s *TourService) MonthlyPlan(ctx context.Context, year string) ([]models.MonthlyPlan, error) {
	y, err := strconv.Atoi(year)
	if err != nil || y < 1 || y > 9999 {
		return nil, apperrors.Cast("year", year)
	}
	return s.tours.MonthlyPlan(ctx, y)
}

// Within finds tours starting within distance of the lat,lng center.
func (s *TourService) Within(ctx context.Context, distance, latlng, unit string) ([]models.Tour, error) {
	lat, lng, err := parseLatLng(latlng)
	if err != nil {
		return nil, err
	}
	radiusBase, ok := earthRadius[unit]
	if !ok {
		return nil, apperrors.ErrInvalidUnit
	}
	d, err := strconv.ParseFloat(distance, 64)
	if err != nil || d < 0 {
		return nil, apperrors.Cast("distance", distance)
	}

	tours, err := s.tours.Within(ctx, lng, lat, d/radiusBase)
	if err != nil {
		return nil, err
	}
	for i := range tours {
		tours[i].Derive()
	}
	return tours, nil
}

// Distances lists all tours with their distance from lat,lng in unit.
func (s *TourService) Distances(ctx context.Context, latlng, unit string) ([]models.TourDistance, error) {
	lat, lng, err := parseLatLng(latlng)
	if err != nil {
		return nil, err
	}
	multiplier, ok := meterFactor[unit]
	if !ok {
		return nil, apperrors.ErrInvalidUnit
	}
	return s.tours.Distances(ctx, lng, lat, multiplier)
}

func parseLatLng(latlng string) (lat, lng float64, err error) {
	parts := strings.Split(latlng, ",")
	if len(parts) != 2 {
		return 0, 0, apperrors.ErrInvalidLatLng
	}
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if latErr != nil || lngErr != nil {
		return 0, 0, apperrors.ErrInvalidLatLng
	}
	return lat, lng, nil
}

func (s *TourService) prepare(_ context.Context, tour *models.Tour) error {
	if err := checkDiscount(tour.Price, tour.PriceDiscount); err != nil {
		return err
	}
	for _, loc := range tour.Locations {
		if !loc.Valid() {
			return apperrors.Validation("locations must be GeoJSON points")
		}
	}
	if tour.StartLocation != nil && !tour.StartLocation.Valid() {
		return apperrors.Validation("startLocation must be a GeoJSON point")
	}
	tour.Derive()
	return nil
}

// validateUpdate checks the discount against the price the tour will have
// after the update.
func (s *TourService) validateUpdate(_ context.Context, current *models.Tour, set bson.M) error {
	price := current.Price
	if p, ok := set["price"].(float64); ok {
		price = p
	}
	discount := current.PriceDiscount
	if d, ok := set["priceDiscount"].(float64); ok {
		discount = &d
	}
	if err := checkDiscount(price, discount); err != nil {
		return err
	}
	if loc, ok := set["startLocation"].(models.Location); ok && !loc.Valid() {
		return apperrors.Validation("startLocation must be a GeoJSON point")
	}
	return nil
}

func checkDiscount(price float64, discount *float64) error {
	if discount != nil && *discount >= price {
		return apperrors.Validation(fmt.Sprintf("Discount price (%v) should be below regular price", *discount))
	}
	return nil
}

// populate derives computed fields and attaches guide profiles.
func (s *TourService) populate(ctx context.Context, tours []models.Tour) error {
	var ids []primitive.ObjectID
	for i := range tours {
		tours[i].Derive()
		ids = append(ids, tours[i].Guides...)
	}
	if len(ids) == 0 {
		return nil
	}

	guides, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[primitive.ObjectID]models.UserSummary, len(guides))
	for i := range guides {
		byID[guides[i].ID] = guides[i].Summary()
	}

	for i := range tours {
		profiles := make([]models.UserSummary, 0, len(tours[i].Guides))
		for _, id := range tours[i].Guides {
			if guide, ok := byID[id]; ok {
				profiles = append(profiles, guide)
			}
		}
		tours[i].GuideProfiles = profiles
	}
	return nil
}

// populateDetail adds guides and reviews to a single tour.
func (s *TourService) populateDetail(ctx context.Context, tour *models.Tour) error {
	tours := []models.Tour{*tour}
	if err := s.populate(ctx, tours); err != nil {
		return err
	}
	*tour = tours[0]

	reviews, err := s.reviews.FindByTour(ctx, tour.ID)
	if err != nil {
		return err
	}
	if err := populateAuthors(ctx, s.users, reviews); err != nil {
		return err
	}
	tour.Reviews = reviews
	return nil
}

// populateAuthors attaches name and photo of each review's author.
func populateAuthors(ctx context.Context, users repository.UserRepository, reviews []models.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(reviews))
	for i := range reviews {
		ids = append(ids, reviews[i].User)
	}
	authors, err := users.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	byID := make(map[primitive.ObjectID]models.UserSummary, len(authors))
	for i := range authors {
		byID[authors[i].ID] = models.UserSummary{ID: authors[i].ID, Name: authors[i].Name, Photo: authors[i].Photo}
	}
	for i := range reviews {
		if author, ok := byID[reviews[i].User]; ok {
			reviews[i].Author = &author
		}
	}
	return nil
}
