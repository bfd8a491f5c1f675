package notify

import (
	"context"
	"errors"

	"github.com/oksasatya/readlog/internal/application"
	"github.com/oksasatya/readlog/internal/domain/entity"
	"github.com/oksasatya/readlog/pkg/helpers"
	"github.com/oksasatya/readlog/pkg/mailer"
	mailtpl "github.com/oksasatya/readlog/pkg/mailer/templates"
)

// Publisher puts a JSON message on the email queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// WelcomeNotifier queues a welcome email for every new user.
type WelcomeNotifier struct {
	pub     Publisher
	appName string
	appURL  string
}

func NewWelcomeNotifier(pub Publisher, appName, appURL string) (*WelcomeNotifier, error) {
	if pub == nil {
		return nil, errors.New("publisher is required")
	}
	return &WelcomeNotifier{pub: pub, appName: appName, appURL: appURL}, nil
}

func (n *WelcomeNotifier) UserRegistered(ctx context.Context, u *entity.User) error {
	job := mailer.EmailJob{
		To:       u.Email,
		Subject:  helpers.SubjectFor(mailtpl.Welcome),
		Template: mailtpl.Welcome,
		Data: mailtpl.WelcomeData{
			Name:    u.Name,
			Email:   u.Email,
			AppName: n.appName,
			AppURL:  n.appURL,
		}.ToMap(),
	}
	return n.pub.PublishJSON(ctx, job)
}

var (
	_ application.Notifier = (*WelcomeNotifier)(nil)
	_ Publisher            = (*helpers.RabbitPublisher)(nil)
)
