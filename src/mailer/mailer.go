// Package mailer sends the transactional emails of the application. Delivery
// is best effort: failures are logged and never returned.
package mailer

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/theleywin/talentnest/src/config"
)

// Message is a rendered email ready for delivery.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// transport delivers a rendered message.
type transport interface {
	Send(ctx context.Context, msg Message) error
}

type Mailer struct {
	log       *slog.Logger
	transport transport
}

// New returns a Mailer delivering over SMTP, or one that only logs the
// messages when no SMTP host is configured.
func New(cfg config.SMTPConfig, logger *slog.Logger) (*Mailer, error) {
	log := logger.With("service", "mailer")
	if !cfg.SMTPEnabled() {
		log.Warn("SMTP_HOST not set, emails will only be logged")
		return &Mailer{log: log, transport: logTransport{log: log}}, nil
	}

	smtp, err := newSMTPTransport(cfg)
	if err != nil {
		return nil, err
	}
	return &Mailer{log: log, transport: smtp}, nil
}

func (m *Mailer) SendWelcomeEmail(ctx context.Context, to, name, profileURL string) {
	if to == "" || name == "" || profileURL == "" {
		m.log.ErrorContext(ctx, "welcome email: missing parameters", slog.String("to", to))
		return
	}
	m.send(ctx, "welcome", to, "Welcome to TalentNest", welcomeData{Name: name, ProfileURL: profileURL})
}

func (m *Mailer) SendCommentNotificationEmail(ctx context.Context, to, recipientName, commenterName, postURL, comment string) {
	if to == "" || recipientName == "" || commenterName == "" || postURL == "" || comment == "" {
		m.log.ErrorContext(ctx, "comment email: missing parameters", slog.String("to", to))
		return
	}
	m.send(ctx, "comment", to, "New comment on your post", commentData{
		RecipientName: recipientName,
		CommenterName: commenterName,
		PostURL:       postURL,
		Comment:       comment,
	})
}

func (m *Mailer) SendConnectionAcceptedEmail(ctx context.Context, to, senderName, recipientName, profileURL string) {
	if to == "" || senderName == "" || recipientName == "" || profileURL == "" {
		m.log.ErrorContext(ctx, "connection accepted email: missing parameters", slog.String("to", to))
		return
	}
	m.send(ctx, "connectionAccepted", to, recipientName+" accepted your connection request", connectionAcceptedData{
		SenderName:    senderName,
		RecipientName: recipientName,
		ProfileURL:    profileURL,
	})
}

func (m *Mailer) send(ctx context.Context, tmpl, to, subject string, data any) {
	body, err := render(tmpl, data)
	if err != nil {
		m.log.ErrorContext(ctx, "render email", slog.String("template", tmpl), slog.String("error", err.Error()))
		return
	}

	if err := m.transport.Send(ctx, Message{To: to, Subject: subject, HTML: body}); err != nil {
		m.log.ErrorContext(ctx, "send email",
			slog.String("template", tmpl),
			slog.String("to", to),
			slog.String("error", err.Error()),
		)
		return
	}
	m.log.InfoContext(ctx, "email sent", slog.String("template", tmpl), slog.String("to", to))
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "mailer.render %s", name)
	}
	return buf.String(), nil
}

// logTransport stands in for SMTP in development.
type logTransport struct {
	log *slog.Logger
}

func (t logTransport) Send(ctx context.Context, msg Message) error {
	t.log.InfoContext(ctx, "email not delivered (SMTP disabled)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
