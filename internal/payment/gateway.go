// Package payment creates hosted checkout sessions and verifies the
// provider's completion webhooks.
package payment

import (
	"context"
	"net/http"

	apperrors "tourbook/internal/errors"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks tourbook/internal/payment Gateway

// CheckoutRequest describes the single tour a customer is paying for.
type CheckoutRequest struct {
	TourID        string
	TourName      string
	TourSlug      string
	TourSummary   string
	ImageURL      string
	Price         float64
	CustomerEmail string
}

// CheckoutSession is a hosted checkout the client is redirected to.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CheckoutEvent is a verified webhook notification. Completed is set only
// for finished checkouts; other events carry just their type.
type CheckoutEvent struct {
	Type          string
	Completed     bool
	TourID        string
	CustomerEmail string
	Price         float64
}

// Gateway talks to the payment provider.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	ParseWebhook(payload []byte, signatureHeader string) (*CheckoutEvent, error)
}

// WebhookError reports a payload that failed signature verification.
func WebhookError(err error) *apperrors.AppError {
	return apperrors.Operational(http.StatusBadRequest, "Webhook error: "+err.Error(), err)
}

// Disabled is used when no provider key is configured.
type Disabled struct{}

// CreateCheckoutSession always fails with ErrPaymentUnavailable.
func (Disabled) CreateCheckoutSession(context.Context, CheckoutRequest) (*CheckoutSession, error) {
	return nil, apperrors.ErrPaymentUnavailable
}

// ParseWebhook always fails with ErrPaymentUnavailable.
func (Disabled) ParseWebhook([]byte, string) (*CheckoutEvent, error) {
	return nil, apperrors.ErrPaymentUnavailable
}

var (
	_ Gateway = Disabled{}
	_ Gateway = (*StripeGateway)(nil)
)
