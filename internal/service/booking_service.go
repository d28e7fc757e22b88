package service

import (
	"context"
	"errors"
	"strings"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/media"
	"tourbook/internal/models"
	"tourbook/internal/payment"
	"tourbook/internal/query"
	"tourbook/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// bookingFields are the filterable booking attributes.
var bookingFields = []string{"tour", "user", "price", "paid"}

// BookingService handles checkout and booking records.
type BookingService struct {
	*ResourceService[models.Booking]
	bookings repository.BookingRepository
	tours    repository.TourRepository
	users    repository.UserRepository
	gateway  payment.Gateway
	baseURL  string
}

// NewBookingService creates a new BookingService. baseURL is the public
// origin used for image links sent to the payment provider.
func NewBookingService(
	bookings repository.BookingRepository,
	tours repository.TourRepository,
	users repository.UserRepository,
	gateway payment.Gateway,
	baseURL string,
	maxLimit int,
) *BookingService {
	s := &BookingService{
		bookings: bookings,
		tours:    tours,
		users:    users,
		gateway:  gateway,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
	s.ResourceService = NewResourceService[models.Booking](bookings, Hooks[models.Booking]{
		Populate: s.populate,
	},
		query.WithAllowedFields(bookingFields...),
		query.WithMaxLimit(maxLimit),
	)
	return s
}

// CheckoutSession opens a hosted checkout for one tour.
func (s *BookingService) CheckoutSession(ctx context.Context, tourID string, user *models.User) (*payment.CheckoutSession, error) {
	id, err := ParseID(tourID)
	if err != nil {
		return nil, err
	}

	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.gateway.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		TourID:        tour.ID.Hex(),
		TourName:      tour.Name,
		TourSlug:      tour.Slug,
		TourSummary:   tour.Summary,
		ImageURL:      s.baseURL + "/" + media.FolderTours + "/" + tour.ImageCover,
		Price:         tour.Price,
		CustomerEmail: user.Email,
	})
}

// HandleWebhook verifies a provider notification and records the booking
// of a completed checkout. Other events are accepted and ignored.
func (s *BookingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}
	if !event.Completed {
		return nil
	}

	tourID, err := ParseID(event.TourID)
	if err != nil {
		return err
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(event.CustomerEmail))
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			return apperrors.ErrBookingUserUnknown
		}
		return err
	}

	return s.bookings.Create(ctx, &models.Booking{
		Tour:  tourID,
		User:  user.ID,
		Price: event.Price,
		Paid:  true,
	})
}

// MyTours returns the tours a user has booked.
func (s *BookingService) MyTours(ctx context.Context, userID primitive.ObjectID) ([]models.Tour, error) {
	bookings, err := s.bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.Tour)
	}

	tours, err := s.tours.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range tours {
		tours[i].Derive()
	}
	return tours, nil
}

// populate attaches tour names and users to bookings.
func (s *BookingService) populate(ctx context.Context, bookings []models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	tourIDs := make([]primitive.ObjectID, 0, len(bookings))
	userIDs := make([]primitive.ObjectID, 0, len(bookings))
	for _, b := range bookings {
		tourIDs = append(tourIDs, b.Tour)
		userIDs = append(userIDs, b.User)
	}

	tours, err := s.tours.FindByIDs(ctx, tourIDs)
	if err != nil {
		return err
	}
	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return err
	}

	tourByID := make(map[primitive.ObjectID]models.TourSummary, len(tours))
	for i := range tours {
		tourByID[tours[i].ID] = tours[i].Ref()
	}
	userByID := make(map[primitive.ObjectID]models.UserSummary, len(users))
	for i := range users {
		userByID[users[i].ID] = users[i].Summary()
	}

	for i := range bookings {
		if t, ok := tourByID[bookings[i].Tour]; ok {
			bookings[i].TourInfo = &t
		}
		if u, ok := userByID[bookings[i].User]; ok {
			bookings[i].UserInfo = &u
		}
	}
	return nil
}
