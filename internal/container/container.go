package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/readlog/config"
	"github.com/oksasatya/readlog/internal/application"
	"github.com/oksasatya/readlog/internal/domain/repository"
	"github.com/oksasatya/readlog/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

// Repositories is the persistence backend chosen by STORE_DRIVER.
type Repositories struct {
	Users       repository.UserRepository
	Books       repository.BookRepository
	ReadingLogs repository.ReadingLogRepository
}

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client

	jwtManager *helpers.JWTManager
	hasher     *helpers.PasswordHasher

	repos    Repositories
	blobs    application.BlobStore
	indexer  application.BookIndexer
	notifier application.Notifier
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetHasher(h *helpers.PasswordHasher) { hasher = h }
func GetHasher() *helpers.PasswordHasher {
	if hasher != nil {
		return hasher
	}
	return helpers.NewPasswordHasher(0)
}

func SetRepositories(r Repositories) { repos = r }
func GetRepositories() Repositories  { return repos }

func SetBlobStore(b application.BlobStore) { blobs = b }
func GetBlobStore() application.BlobStore  { return blobs }

func SetBookIndexer(i application.BookIndexer) { indexer = i }
func GetBookIndexer() application.BookIndexer  { return indexer }

func SetNotifier(n application.Notifier) { notifier = n }
func GetNotifier() application.Notifier  { return notifier }
