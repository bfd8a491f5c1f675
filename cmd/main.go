package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/readlog/config"
	"github.com/oksasatya/readlog/internal/container"
	"github.com/oksasatya/readlog/internal/infrastructure/memory"
	"github.com/oksasatya/readlog/internal/infrastructure/notify"
	pginfra "github.com/oksasatya/readlog/internal/infrastructure/postgres"
	"github.com/oksasatya/readlog/internal/infrastructure/search"
	"github.com/oksasatya/readlog/internal/infrastructure/storage"
	"github.com/oksasatya/readlog/internal/interface/middleware"
	"github.com/oksasatya/readlog/internal/router"
	"github.com/oksasatya/readlog/pkg/helpers"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	var cleanups []func()
	defer func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}()

	container.SetConfig(cfg)
	container.SetLogger(logger)

	// Persistence
	cleanups = append(cleanups, setupStore(ctx, cfg, logger))

	// Redis backs the register/login limiter; without it the limiter is a no-op
	if cfg.RedisAddr != "" {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := helpers.PingRedis(ctx, rdb); err != nil {
			helpers.LogError(logger, "redis unavailable, rate limiting disabled", err, nil)
			_ = rdb.Close()
		} else {
			container.SetRedis(rdb)
			cleanups = append(cleanups, func() { _ = rdb.Close() })
		}
	}

	// Cover uploads
	cleanups = append(cleanups, setupBlobStore(ctx, cfg, logger))

	// Book search
	if idx := setupSearch(cfg, logger); idx != nil {
		container.SetBookIndexer(idx)
	}

	// Welcome emails
	if cfg.MailSendEnabled {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			helpers.LogError(logger, "rabbitmq unavailable, welcome emails disabled", err, logrus.Fields{"queue": cfg.RabbitMQEmailQueue})
		} else {
			cleanups = append(cleanups, pub.Close)
			if n := setupNotifier(pub, cfg, logger); n != nil {
				container.SetNotifier(n)
			}
		}
	}

	// Auth
	jwtManager, err := helpers.NewJWTManager(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("jwt: %v", err)
	}
	container.SetJWT(jwtManager)
	container.SetHasher(helpers.NewPasswordHasher(cfg.BcryptCost))

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP(cfg.TrustProxyHeaders))
	if cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(logger))
	}
	corsCfg := cors.Config{
		AllowOrigins:  cfg.CORSOrigins(),
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.AdminKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))
	if ds, ok := container.GetBlobStore().(*storage.DiskStore); ok {
		r.Static(cfg.UploadURLPath, ds.Dir())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
		return
	}
	logger.Info("server exited properly")
}

func setupStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) func() {
	if cfg.StoreDriver == config.StoreMemory {
		logger.Warn("STORE_DRIVER=memory: data is lost on restart")
		s := memory.NewStore()
		container.SetRepositories(container.Repositories{Users: s.Users(), Books: s.Books(), ReadingLogs: s.ReadingLogs()})
		return func() {}
	}

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
		MaxConns:    cfg.DBMaxConns,
		MinConns:    cfg.DBMinConns,
		MaxConnLife: cfg.DBMaxConnLife,
	})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	if cfg.AutoMigrate {
		if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			pool.Close()
			log.Fatalf("migration failed: %v", err)
		}
	}
	container.SetRepositories(container.Repositories{
		Users:       pginfra.NewUserRepository(pool),
		Books:       pginfra.NewBookRepository(pool),
		ReadingLogs: pginfra.NewReadingLogRepository(pool),
	})
	return pool.Close
}

// setupSearch returns nil when search is not configured or cannot be initialised.
func setupSearch(cfg *config.Config, logger *logrus.Logger) *search.BookIndex {
	addrs := cfg.ESAddrs()
	if len(addrs) == 0 {
		return nil
	}
	es, err := search.NewClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		helpers.LogError(logger, "elasticsearch init failed, search disabled", err, nil)
		return nil
	}
	idx, err := search.NewBookIndex(es, cfg.ESBooksIndex)
	if err != nil {
		helpers.LogError(logger, "book index init failed, search disabled", err, logrus.Fields{"index": cfg.ESBooksIndex})
		return nil
	}
	return idx
}

func setupNotifier(pub notify.Publisher, cfg *config.Config, logger *logrus.Logger) *notify.WelcomeNotifier {
	n, err := notify.NewWelcomeNotifier(pub, cfg.AppName, cfg.AppURL)
	if err != nil {
		helpers.LogError(logger, "welcome notifier init failed, welcome emails disabled", err, nil)
		return nil
	}
	return n
}

func setupBlobStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) func() {
	switch cfg.StorageDriver {
	case config.StorageGCS:
		client, err := storage.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			log.Fatalf("failed to init GCS client: %v", err)
		}
		store, err := storage.NewGCSStore(client, cfg.GCSBucket, cfg.GCSPublicURL)
		if err != nil {
			log.Fatalf("gcs store: %v", err)
		}
		container.SetBlobStore(store)
		logger.WithField("bucket", cfg.GCSBucket).Info("blob store ready: gcs")
		return func() { _ = client.Close() }
	case config.StorageMinio:
		store, err := storage.NewMinioStore(ctx, storage.MinioOptions{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.MinioPublicURL,
		})
		if err != nil {
			log.Fatalf("minio store: %v", err)
		}
		container.SetBlobStore(store)
	default:
		store, err := storage.NewDiskStore(cfg.UploadDir, cfg.UploadURLPath)
		if err != nil {
			log.Fatalf("disk store: %v", err)
		}
		container.SetBlobStore(store)
	}
	logger.WithField("driver", cfg.StorageDriver).Info("blob store ready")
	return func() {}
}
