package handler

import (
	"net/http"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/models"
	"tourbook/internal/payment"
	"tourbook/internal/service"
	"tourbook/pkg/response"

	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the payment provider's webhook signature.
const SignatureHeader = "Stripe-Signature"

// CheckoutResponse wraps a hosted checkout session.
type CheckoutResponse struct {
	Status  string                   `json:"status" example:"success"`
	Session *payment.CheckoutSession `json:"session"`
}

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	*ResourceHandler[models.Booking]
	service service.BookingServicer
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service service.BookingServicer) *BookingHandler {
	return &BookingHandler{
		ResourceHandler: NewResourceHandler[models.Booking](
			service,
			func() models.Creatable[models.Booking] { return &models.CreateBookingRequest{} },
			func() models.Patch { return &models.UpdateBookingRequest{} },
		),
		service: service,
	}
}

// CheckoutSession godoc
// @Summary      Create checkout session
// @Description  Open a hosted payment page for one tour
// @Tags         bookings
// @Produce      json
// @Param        tourId  path      string  true  "Tour ID"
// @Success      200     {object}  CheckoutResponse
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      503     {object}  response.Response
// @Security     BearerAuth
// @Router       /booking/checkout-session/{tourId} [get]
func (h *BookingHandler) CheckoutSession(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	session, err := h.service.CheckoutSession(c.Request.Context(), c.Param(TourIDParam), user)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CheckoutResponse{Status: response.StatusSuccess, Session: session})
}

// Webhook godoc
// @Summary      Payment webhook
// @Description  Verify a provider notification and record completed checkouts
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "Webhook signature"
// @Success      200               {object}  map[string]bool
// @Failure      400               {string}  string
// @Router       /webhook-checkout [post]
func (h *BookingHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		abort(c, err)
		return
	}

	if err := h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader(SignatureHeader)); err != nil {
		// The provider only reads the status; answer in plain text.
		appErr := apperrors.Translate(err)
		if !appErr.Operational() {
			abort(c, err)
			return
		}
		_ = c.Error(err)
		c.String(appErr.Status, appErr.Message)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// MyTours godoc
// @Summary      My booked tours
// @Description  Tours the signed-in user has booked
// @Tags         bookings
// @Produce      json
// @Success      200  {object}  response.Response{data=response.Payload{data=[]models.Tour}}
// @Failure      401  {object}  response.Response
// @Security     BearerAuth
// @Router       /booking/my-tours [get]
func (h *BookingHandler) MyTours(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	tours, err := h.service.MyTours(c.Request.Context(), user.ID)
	if err != nil {
		abort(c, err)
		return
	}

	response.List(c, tours)
}

// GetAll godoc
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {object}  response.Response{data=response.Payload{data=[]models.Booking}}
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings [get]
func (h *BookingHandler) GetAll(c *gin.Context) {
	h.ResourceHandler.GetAll(c)
}

// GetOne godoc
// @Summary      Get booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  response.Response{data=response.Payload{data=models.Booking}}
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings/{id} [get]
func (h *BookingHandler) GetOne(c *gin.Context) {
	h.ResourceHandler.GetOne(c)
}

// CreateOne godoc
// @Summary      Create booking
// @Description  Record a booking made outside checkout
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateBookingRequest  true  "Booking"
// @Success      201      {object}  response.Response{data=response.Payload{data=models.Booking}}
// @Failure      400      {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings [post]
func (h *BookingHandler) CreateOne(c *gin.Context) {
	h.ResourceHandler.CreateOne(c)
}

// UpdateOne godoc
// @Summary      Update booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Booking ID"
// @Param        request  body      models.UpdateBookingRequest  true  "Booking changes"
// @Success      200      {object}  response.Response{data=response.Payload{data=models.Booking}}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings/{id} [patch]
func (h *BookingHandler) UpdateOne(c *gin.Context) {
	h.ResourceHandler.UpdateOne(c)
}

// DeleteOne godoc
// @Summary      Delete booking
// @Tags         bookings
// @Param        id   path      string  true  "Booking ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) DeleteOne(c *gin.Context) {
	h.ResourceHandler.DeleteOne(c)
}
