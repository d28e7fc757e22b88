package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeGateway uses Stripe hosted checkout.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	baseURL       string
}

// NewStripeGateway creates a gateway. baseURL is the public origin used for
// the success and cancel redirects.
func NewStripeGateway(secretKey, webhookSecret, baseURL string) *StripeGateway {
	return &StripeGateway{
		api:           client.New(secretKey, nil),
		webhookSecret: webhookSecret,
		baseURL:       baseURL,
	}
}

// CreateCheckoutSession opens a one-item payment session for a tour.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	params := g.sessionParams(req)
	params.Context = ctx

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (g *StripeGateway) sessionParams(req CheckoutRequest) *stripe.CheckoutSessionParams {
	product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name:        stripe.String(req.TourName + " Tour"),
		Description: stripe.String(req.TourSummary),
	}
	if req.ImageURL != "" {
		product.Images = []*string{stripe.String(req.ImageURL)}
	}

	return &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(g.baseURL + "/my-tours"),
		CancelURL:          stripe.String(g.baseURL + "/tour/" + req.TourSlug),
		CustomerEmail:      stripe.String(req.CustomerEmail),
		ClientReferenceID:  stripe.String(req.TourID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount:  stripe.Int64(int64(math.Round(req.Price * 100))),
					ProductData: product,
				},
			},
		},
	}
}

// ParseWebhook verifies the Stripe-Signature header and decodes completed
// checkout sessions.
func (g *StripeGateway) ParseWebhook(payload []byte, signatureHeader string) (*CheckoutEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, WebhookError(err)
	}

	out := &CheckoutEvent{Type: string(event.Type)}
	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		return out, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, WebhookError(err)
	}

	email := session.CustomerEmail
	if email == "" && session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}

	out.Completed = true
	out.TourID = session.ClientReferenceID
	out.CustomerEmail = email
	out.Price = float64(session.AmountTotal) / 100
	return out, nil
}
