package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/readlog/config"
	"github.com/oksasatya/readlog/internal/application"
	pginfra "github.com/oksasatya/readlog/internal/infrastructure/postgres"
	"github.com/oksasatya/readlog/pkg/helpers"
)

// seed creates a demo reader with one book and one reading log.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	users := pginfra.NewUserRepository(pool)
	books := pginfra.NewBookRepository(pool)
	logs := pginfra.NewReadingLogRepository(pool)

	// the seed never signs tokens; any non-empty secret satisfies the manager
	secret := cfg.JWTSecret
	if secret == "" {
		secret = "seed-only"
	}
	jwt, err := helpers.NewJWTManager(secret)
	if err != nil {
		log.Fatalf("jwt: %v", err)
	}
	userSvc := application.NewUserService(users, helpers.NewPasswordHasher(cfg.BcryptCost), jwt, nil, logger)
	bookSvc := application.NewBookService(books, nil, nil, logger)
	readingSvc := application.NewReadingService(books, logs)

	email := "demo@readlog.local"
	password := "password123"

	u, err := userSvc.Register(ctx, application.RegisterInput{Name: "Demo Reader", Email: email, Password: password})
	switch {
	case errors.Is(err, application.ErrDuplicateEmail):
		u, err = users.GetByEmail(ctx, email)
		if err != nil {
			log.Fatalf("failed to load demo user: %v", err)
		}
		fmt.Printf("demo user already present: id=%s email=%s\n", u.ID, u.Email)
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	default:
		fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, u.Email, password)
	}

	b, err := bookSvc.CreateBook(ctx, u.ID, application.CreateBookInput{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin"})
	if err != nil {
		log.Fatalf("failed to seed book: %v", err)
	}
	fmt.Printf("seeded book: id=%s title=%q\n", b.ID, b.Title)

	l, err := readingSvc.CreateReadingLog(ctx, u.ID, application.CreateReadingLogInput{
		BookID: b.ID.String(),
		Date:   "2024-01-15",
		Notes:  "Started the first chapter.",
	})
	if err != nil {
		log.Fatalf("failed to seed reading log: %v", err)
	}
	fmt.Printf("seeded reading log: id=%s\n", l.ID)
}
