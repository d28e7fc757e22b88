package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"tourbook/internal/mailer"

	"go.uber.org/zap"
)

const (
	// MaxAttempts is the number of delivery attempts per email.
	MaxAttempts = 3
	// RetryDelay is the wait after the first failure; later waits double.
	RetryDelay = 5 * time.Second
	// SendTimeout bounds a single delivery attempt.
	SendTimeout = 30 * time.Second
)

// Processor delivers mailbox emails with a fixed pool of workers.
type Processor struct {
	mailbox      *Mailbox
	sender       mailer.Mailer
	log          *zap.Logger
	workerCount  int
	retryDelay   time.Duration
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a processor draining mailbox through sender.
func NewProcessor(mailbox *Mailbox, sender mailer.Mailer, workerCount int, log *zap.Logger) *Processor {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Processor{
		mailbox:     mailbox,
		sender:      sender,
		log:         log,
		workerCount: workerCount,
		retryDelay:  RetryDelay,
		shutdownCh:  make(chan struct{}),
	}
}

// Start launches the workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	p.log.Info("Email processor started", zap.Int("workers", p.workerCount))
}

// Stop closes the mailbox and waits for the workers to drain it.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.mailbox.Close()
	})
	p.wg.Wait()
	p.log.Info("Email processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		d, err := p.mailbox.Next(ctx)
		if errors.Is(err, ErrMailboxClosed) || ctx.Err() != nil {
			p.log.Debug("Email worker shutting down", zap.Int("worker", id))
			return
		}
		if err != nil {
			continue
		}
		p.deliver(ctx, d)
	}
}

func (p *Processor) deliver(ctx context.Context, d Delivery) {
	sendCtx, cancel := context.WithTimeout(ctx, SendTimeout)
	defer cancel()

	fields := []zap.Field{
		zap.String("template", string(d.Message.Template)),
		zap.String("to", d.Message.To),
	}

	err := p.sender.Send(sendCtx, d.Message)
	if err == nil {
		p.log.Info("Email delivered", append(fields, zap.Int("attempts", d.Attempts+1))...)
		return
	}

	d = d.failed(err)
	if d.Exhausted() {
		p.log.Error("Giving up on email", append(fields,
			zap.Int("attempts", d.Attempts),
			zap.Duration("age", time.Since(d.QueuedAt)),
			zap.String("lastError", d.LastError),
		)...)
		return
	}

	wait := d.Backoff(p.retryDelay)
	p.log.Warn("Email delivery failed, retrying", append(fields,
		zap.Int("attempts", d.Attempts),
		zap.Duration("retryIn", wait),
		zap.Error(err),
	)...)

	// A retry still waiting at shutdown is dropped, not sent.
	go func() {
		select {
		case <-p.shutdownCh:
			p.log.Warn("Dropping email retry on shutdown", fields...)
		case <-time.After(wait):
			if err := p.mailbox.put(d); err != nil {
				p.log.Error("Email retry not queued", append(fields, zap.Error(err))...)
			}
		}
	}()
}
