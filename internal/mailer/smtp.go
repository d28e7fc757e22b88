package mailer

import (
	"context"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends messages through an SMTP relay.
type SMTPMailer struct {
	from   string
	dialer *gomail.Dialer
}

// NewSMTPMailer creates a mailer for the given relay.
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		from:   from,
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

// Send renders msg and delivers it. gomail has no context support, so the
// context is only checked before dialing.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rendered, err := Render(msg)
	if err != nil {
		return err
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", rendered.Subject)
	gm.SetBody("text/plain", rendered.Text)
	gm.AddAlternative("text/html", rendered.HTML)

	return m.dialer.DialAndSend(gm)
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	log *zap.Logger
}

// NewLogMailer creates a mailer for development setups without SMTP.
func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// Send logs the rendered message.
func (m *LogMailer) Send(_ context.Context, msg Message) error {
	rendered, err := Render(msg)
	if err != nil {
		return err
	}

	m.log.Info("Email",
		zap.String("to", msg.To),
		zap.String("subject", rendered.Subject),
		zap.String("body", rendered.Text),
	)
	return nil
}

var (
	_ Mailer = (*SMTPMailer)(nil)
	_ Mailer = (*LogMailer)(nil)
)
