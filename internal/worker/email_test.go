package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/readlog/pkg/mailer"
	mailtpl "github.com/oksasatya/readlog/pkg/mailer/templates"
)

type sent struct {
	to, subject, text, html string
}

type fakeSender struct {
	out []sent
	err error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.out = append(f.out, sent{to, subject, text, html})
	return nil
}

func encode(t *testing.T, job mailer.EmailJob) []byte {
	t.Helper()
	b, err := json.Marshal(job)
	require.NoError(t, err)
	return b
}

func TestEmailHandler_Welcome(t *testing.T) {
	s := &fakeSender{}
	h := NewEmailHandler(s, nil)

	body := encode(t, mailer.EmailJob{
		To:       "ada@example.com",
		Template: mailtpl.Welcome,
		Data:     mailtpl.WelcomeData{Name: "Ada", AppName: "readlog"}.ToMap(),
	})
	out, err := h.Handle(context.Background(), body)
	require.NoError(t, err)
	assert.Equal(t, Ack, out)

	require.Len(t, s.out, 1)
	assert.Equal(t, "ada@example.com", s.out[0].to)
	assert.Equal(t, "Welcome to your reading log", s.out[0].subject)
	assert.Contains(t, s.out[0].text, "Ada")
	assert.Contains(t, s.out[0].html, "Ada")
}

func TestEmailHandler_Outcomes(t *testing.T) {
	t.Run("garbage is dropped", func(t *testing.T) {
		out, err := NewEmailHandler(&fakeSender{}, nil).Handle(context.Background(), []byte("{"))
		assert.Error(t, err)
		assert.Equal(t, Drop, out)
	})

	t.Run("missing recipient is dropped", func(t *testing.T) {
		out, err := NewEmailHandler(&fakeSender{}, nil).Handle(context.Background(), encode(t, mailer.EmailJob{Text: "hi"}))
		assert.ErrorIs(t, err, mailer.ErrNoRecipient)
		assert.Equal(t, Drop, out)
	})

	t.Run("unknown template is dropped", func(t *testing.T) {
		out, err := NewEmailHandler(&fakeSender{}, nil).Handle(context.Background(), encode(t, mailer.EmailJob{To: "a@b.c", Template: "nope"}))
		assert.Error(t, err)
		assert.Equal(t, Drop, out)
	})

	t.Run("job without content is dropped", func(t *testing.T) {
		out, err := NewEmailHandler(&fakeSender{}, nil).Handle(context.Background(), encode(t, mailer.EmailJob{To: "a@b.c", Subject: "s"}))
		assert.ErrorIs(t, err, mailer.ErrNoContent)
		assert.Equal(t, Drop, out)
	})

	t.Run("empty body from sender is dropped", func(t *testing.T) {
		s := &fakeSender{err: mailer.ErrEmptyBody}
		out, err := NewEmailHandler(s, nil).Handle(context.Background(), encode(t, mailer.EmailJob{To: "a@b.c", HTML: "<p>x</p>"}))
		assert.ErrorIs(t, err, mailer.ErrEmptyBody)
		assert.Equal(t, Drop, out)
	})

	t.Run("send failure is retried", func(t *testing.T) {
		s := &fakeSender{err: errors.New("mailgun 503")}
		out, err := NewEmailHandler(s, nil).Handle(context.Background(), encode(t, mailer.EmailJob{To: "a@b.c", Subject: "s", Text: "t"}))
		assert.Error(t, err)
		assert.Equal(t, Retry, out)
	})
}
