package mailer

import (
	"context"
	"errors"

	mg "github.com/mailgun/mailgun-go/v4"
)

// ErrEmptyBody is returned when neither a text nor an html body is given.
var ErrEmptyBody = errors.New("mailgun: empty body")

// MailgunOptions configures the Mailgun sender. APIBase selects the region; empty means US.
type MailgunOptions struct {
	Domain  string
	APIKey  string
	Sender  string
	APIBase string
}

// Mailgun sends transactional email through one shared Mailgun client.
type Mailgun struct {
	client *mg.MailgunImpl
	sender string
}

func NewMailgun(opts MailgunOptions) (*Mailgun, error) {
	if opts.Domain == "" || opts.APIKey == "" || opts.Sender == "" {
		return nil, errors.New("mailgun: domain, api key and sender are required")
	}
	client := mg.NewMailgun(opts.Domain, opts.APIKey)
	if opts.APIBase != "" {
		client.SetAPIBase(opts.APIBase)
	}
	return &Mailgun{client: client, sender: opts.Sender}, nil
}

// Send delivers one message. The caller bounds ctx.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	if text == "" && html == "" {
		return ErrEmptyBody
	}
	msg := m.client.NewMessage(m.sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	_, _, err := m.client.Send(ctx, msg)
	return err
}
