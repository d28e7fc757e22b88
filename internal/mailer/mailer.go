// Package mailer renders and delivers transactional emails.
package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"tourbook/internal/config"

	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock_mailer.go -package=mocks tourbook/internal/mailer Mailer

// Template names a message layout.
type Template string

// Available templates.
const (
	TemplateWelcome       Template = "welcome"
	TemplatePasswordReset Template = "passwordReset"
)

var subjects = map[Template]string{
	TemplateWelcome:       "Welcome to the Natours Family!",
	TemplatePasswordReset: "Your password reset token (valid for only 10 minutes)",
}

var plainBodies = map[Template]string{
	TemplateWelcome: "Hi %s,\n\nWelcome to Natours, we're glad to have you!\n" +
		"Upload your user photo so we get to know you a bit better: %s\n",
	TemplatePasswordReset: "Hi %s,\n\nForgot your password? Submit a PATCH request with your new password " +
		"and passwordConfirm to: %s\nIf you didn't forget your password, please ignore this email!\n",
}

//go:embed templates/*.html
var templateFS embed.FS

var templates = map[Template]*template.Template{}

func init() {
	for name := range subjects {
		templates[name] = template.Must(template.ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+string(name)+".html",
		))
	}
}

// Message is one email to one recipient.
type Message struct {
	Template Template
	To       string
	Name     string
	URL      string
}

// FirstName is the first word of the recipient name.
func (m Message) FirstName() string {
	if fields := strings.Fields(m.Name); len(fields) > 0 {
		return fields[0]
	}
	return m.Name
}

// Rendered is a message ready for a transport.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Render builds subject, HTML body and plain text alternative.
func Render(msg Message) (*Rendered, error) {
	tmpl, ok := templates[msg.Template]
	if !ok {
		return nil, fmt.Errorf("unknown email template %q", msg.Template)
	}

	data := struct {
		Subject   string
		FirstName string
		URL       string
	}{
		Subject:   subjects[msg.Template],
		FirstName: msg.FirstName(),
		URL:       msg.URL,
	}

	var html bytes.Buffer
	if err := tmpl.ExecuteTemplate(&html, "layout", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", msg.Template, err)
	}

	return &Rendered{
		Subject: data.Subject,
		HTML:    html.String(),
		Text:    fmt.Sprintf(plainBodies[msg.Template], data.FirstName, data.URL),
	}, nil
}

// New returns an SMTP mailer when a host is configured and a logging mailer
// otherwise.
func New(cfg *config.Config, log *zap.Logger) Mailer {
	if cfg.SMTPHost == "" {
		log.Warn("SMTP_HOST not set, emails are written to the log")
		return NewLogMailer(log)
	}
	return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom)
}
