//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"tourbook/internal/mailer"
	"tourbook/internal/payment"

	"github.com/google/uuid"
)

// FakeSignature is the only webhook signature FakeGateway accepts.
const FakeSignature = "t=1,v1=test"

// FakeGateway records checkout requests and accepts webhook payloads of the
// form {"type", "tourId", "email", "price"} signed with FakeSignature.
type FakeGateway struct {
	mu       sync.Mutex
	requests []payment.CheckoutRequest
}

// NewFakeGateway creates an empty FakeGateway.
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

// CreateCheckoutSession records req and returns a session with a fresh id.
func (g *FakeGateway) CreateCheckoutSession(_ context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)

	id := "cs_test_" + uuid.NewString()
	return &payment.CheckoutSession{ID: id, URL: "https://checkout.example/pay/" + id}, nil
}

// ParseWebhook verifies the fixed signature and decodes the event.
func (g *FakeGateway) ParseWebhook(payload []byte, signature string) (*payment.CheckoutEvent, error) {
	if signature != FakeSignature {
		return nil, payment.WebhookError(errors.New("no signatures found matching the expected signature for payload"))
	}

	var body struct {
		Type   string  `json:"type"`
		TourID string  `json:"tourId"`
		Email  string  `json:"email"`
		Price  float64 `json:"price"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, payment.WebhookError(err)
	}

	return &payment.CheckoutEvent{
		Type:          body.Type,
		Completed:     body.Type == "checkout.session.completed",
		TourID:        body.TourID,
		CustomerEmail: body.Email,
		Price:         body.Price,
	}, nil
}

// Requests returns the checkout requests seen so far.
func (g *FakeGateway) Requests() []payment.CheckoutRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]payment.CheckoutRequest(nil), g.requests...)
}

// Reset forgets recorded requests.
func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = nil
}

// Outbox is a mailer that keeps every message in memory.
type Outbox struct {
	mu       sync.Mutex
	messages []mailer.Message
}

// Send stores msg.
func (o *Outbox) Send(_ context.Context, msg mailer.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, msg)
	return nil
}

// Last returns the newest message sent to addr, waiting up to timeout for
// messages delivered by the email workers.
func (o *Outbox) Last(addr string, template mailer.Template, timeout time.Duration) (mailer.Message, bool) {
	deadline := time.Now().Add(timeout)
	for {
		o.mu.Lock()
		for i := len(o.messages) - 1; i >= 0; i-- {
			if msg := o.messages[i]; msg.To == addr && msg.Template == template {
				o.mu.Unlock()
				return msg, true
			}
		}
		o.mu.Unlock()

		if time.Now().After(deadline) {
			return mailer.Message{}, false
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// Reset drops stored messages.
func (o *Outbox) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = nil
}

var (
	_ payment.Gateway = (*FakeGateway)(nil)
	_ mailer.Mailer   = (*Outbox)(nil)
)
