package notify

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/readlog/internal/domain/entity"
	"github.com/oksasatya/readlog/pkg/mailer"
)

type recordingPublisher struct {
	msgs []any
}

func (p *recordingPublisher) PublishJSON(_ context.Context, body any) error {
	p.msgs = append(p.msgs, body)
	return nil
}

func TestWelcomeNotifier_UserRegistered(t *testing.T) {
	pub := &recordingPublisher{}
	n, err := NewWelcomeNotifier(pub, "readlog", "http://localhost:8080")
	require.NoError(t, err)

	u := &entity.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", PasswordHash: "secret-hash"}
	require.NoError(t, n.UserRegistered(context.Background(), u))

	require.Len(t, pub.msgs, 1)
	job, ok := pub.msgs[0].(mailer.EmailJob)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", job.To)
	assert.Equal(t, "welcome", job.Template)
	assert.Equal(t, "Ada", job.Data["Name"])
	assert.Equal(t, "readlog", job.Data["AppName"])
	assert.NotContains(t, job.Data, "PasswordHash")
}

func TestNewWelcomeNotifierRequiresPublisher(t *testing.T) {
	_, err := NewWelcomeNotifier(nil, "", "")
	assert.Error(t, err)
}
