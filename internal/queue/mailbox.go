// Package queue holds outgoing emails until a worker delivers them.
package queue

import (
	"context"
	"sync"
	"time"

	"tourbook/internal/mailer"

	"github.com/pkg/errors"
)

var (
	// ErrMailboxFull is returned when no more emails can be buffered.
	ErrMailboxFull = errors.New("mailbox is full")
	// ErrMailboxClosed is returned once the mailbox stops accepting emails.
	ErrMailboxClosed = errors.New("mailbox is closed")
)

// Poster accepts emails for background delivery.
type Poster interface {
	Post(msg mailer.Message) error
}

var _ Poster = (*Mailbox)(nil)

// Delivery is one email together with its delivery history.
type Delivery struct {
	Message   mailer.Message
	Attempts  int
	LastError string
	QueuedAt  time.Time
}

// Exhausted reports whether the email has used up its attempts.
func (d Delivery) Exhausted() bool {
	return d.Attempts >= MaxAttempts
}

// Backoff is the wait before the next attempt, doubling from base after
// every failure.
func (d Delivery) Backoff(base time.Duration) time.Duration {
	if d.Attempts < 1 {
		return 0
	}
	return base << uint(d.Attempts-1)
}

func (d Delivery) failed(err error) Delivery {
	d.Attempts++
	d.LastError = err.Error()
	return d
}

// Mailbox buffers deliveries for the email workers. Posting never blocks, so
// a burst of signups cannot stall request handlers.
type Mailbox struct {
	deliveries chan Delivery
	done       chan struct{}
	closeOnce  sync.Once
	now        func() time.Time
}

// NewMailbox creates a mailbox that buffers up to capacity emails.
func NewMailbox(capacity int) *Mailbox {
	if capacity < 0 {
		capacity = 0
	}
	return &Mailbox{
		deliveries: make(chan Delivery, capacity),
		done:       make(chan struct{}),
		now:        time.Now,
	}
}

// Post buffers a new email.
func (m *Mailbox) Post(msg mailer.Message) error {
	return m.put(Delivery{Message: msg, QueuedAt: m.now()})
}

func (m *Mailbox) put(d Delivery) error {
	select {
	case <-m.done:
		return errors.Wrapf(ErrMailboxClosed, "%s email to %s", d.Message.Template, d.Message.To)
	default:
	}

	select {
	case m.deliveries <- d:
		return nil
	default:
		return errors.Wrapf(ErrMailboxFull, "%s email to %s", d.Message.Template, d.Message.To)
	}
}

// Next blocks until a delivery is buffered. Emails buffered before Close are
// still handed out; after that it returns ErrMailboxClosed.
func (m *Mailbox) Next(ctx context.Context) (Delivery, error) {
	select {
	case d := <-m.deliveries:
		return d, nil
	default:
	}

	select {
	case <-ctx.Done():
		return Delivery{}, ctx.Err()
	case d := <-m.deliveries:
		return d, nil
	case <-m.done:
		select {
		case d := <-m.deliveries:
			return d, nil
		default:
			return Delivery{}, ErrMailboxClosed
		}
	}
}

// Close stops the mailbox from accepting emails. It is safe to call more
// than once.
func (m *Mailbox) Close() {
	m.closeOnce.Do(func() { close(m.done) })
}

// Pending returns the number of buffered emails.
func (m *Mailbox) Pending() int {
	return len(m.deliveries)
}

// Capacity returns how many emails the mailbox can buffer.
func (m *Mailbox) Capacity() int {
	return cap(m.deliveries)
}
