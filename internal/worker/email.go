package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/readlog/pkg/helpers"
	"github.com/oksasatya/readlog/pkg/mailer"
	mailtpl "github.com/oksasatya/readlog/pkg/mailer/templates"
)

// Sender delivers one rendered email.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// Outcome tells the consumer what to do with a delivery.
type Outcome int

const (
	Ack Outcome = iota
	// Drop rejects a message that can never succeed.
	Drop
	// Retry requeues a message after a transient failure.
	Retry
)

// EmailHandler turns queued EmailJob payloads into sent mail.
type EmailHandler struct {
	Sender      Sender
	Logger      *logrus.Logger
	SendTimeout time.Duration
}

func NewEmailHandler(sender Sender, logger *logrus.Logger) *EmailHandler {
	return &EmailHandler{Sender: sender, Logger: logger, SendTimeout: 15 * time.Second}
}

// Handle decodes, renders and sends one message body.
func (h *EmailHandler) Handle(ctx context.Context, body []byte) (Outcome, error) {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return Drop, fmt.Errorf("bad message: %w", err)
	}
	if err := job.Validate(); err != nil {
		return Drop, err
	}
	helpers.EnsureRecipient(&job)

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		t, hm, err := mailtpl.Render(job.Template, job.Data)
		if err != nil {
			return Drop, fmt.Errorf("render %s: %w", job.Template, err)
		}
		text, html = t, hm
		if subject == "" {
			subject = helpers.SubjectFor(job.Template)
		}
	}

	c, cancel := context.WithTimeout(ctx, h.SendTimeout)
	defer cancel()
	if err := h.Sender.Send(c, job.To, subject, text, html); err != nil {
		if errors.Is(err, mailer.ErrEmptyBody) {
			return Drop, err
		}
		return Retry, fmt.Errorf("send: %w", err)
	}
	if h.Logger != nil {
		h.Logger.WithFields(logrus.Fields{"to": job.To, "template": job.Template}).Info("email sent")
	}
	return Ack, nil
}
