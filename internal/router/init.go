package router

import (
	"github.com/oksasatya/readlog/internal/application"
	"github.com/oksasatya/readlog/internal/container"
	handlers "github.com/oksasatya/readlog/internal/interface/http"
	"github.com/oksasatya/readlog/internal/router/modules"
	"github.com/oksasatya/readlog/pkg/validation"
)

type Services struct {
	Users    *application.UserService
	Books    *application.BookService
	Readings *application.ReadingService
	Admin    *application.AdminService
}

func buildServices() Services {
	repos := container.GetRepositories()
	logger := container.GetLogger()

	return Services{
		Users: application.NewUserService(
			repos.Users,
			container.GetHasher(),
			container.GetJWT(),
			container.GetNotifier(),
			logger,
		),
		Books: application.NewBookService(
			repos.Books,
			container.GetBlobStore(),
			container.GetBookIndexer(),
			logger,
		),
		Readings: application.NewReadingService(repos.Books, repos.ReadingLogs),
		Admin:    application.NewAdminService(repos.Users, repos.Books, repos.ReadingLogs),
	}
}

// InitModules builds services from the container and registers every module.
// Call once during startup, after the container is populated.
func InitModules(r *Registry) {
	validation.Init()

	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	rdb := container.GetRedis()
	svc := buildServices()

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewUserModule(handlers.NewUserHandler(svc.Users, logger), rdb, cfg.AuthRateLimit, cfg.AuthRateWindow))
	r.Add(modules.NewBookModule(
		handlers.NewBookHandler(svc.Books, logger),
		handlers.NewReadingHandler(svc.Readings, logger),
		handlers.NewFileHandler(svc.Books, logger, cfg.UploadMaxBytes),
		jwt,
		rdb,
	))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(svc.Admin, svc.Books, logger), cfg.AdminAPIKey))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(rdb))
	}
}
