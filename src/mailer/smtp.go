package mailer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"

	"github.com/theleywin/talentnest/src/config"
)

type smtpTransport struct {
	client   *mail.Client
	from     string
	fromName string
}

func newSMTPTransport(cfg config.SMTPConfig) (*smtpTransport, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "mailer.newSMTPTransport")
	}
	return &smtpTransport{client: client, from: cfg.From, fromName: cfg.FromName}, nil
}

func (t *smtpTransport) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.FromFormat(t.fromName, t.from); err != nil {
		return errors.Wrap(err, "set from")
	}
	if err := m.To(msg.To); err != nil {
		return errors.Wrap(err, "set to")
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	return errors.Wrap(t.client.DialAndSendWithContext(ctx, m), "smtp send")
}
