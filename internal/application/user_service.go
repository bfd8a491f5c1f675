package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/readlog/internal/domain/entity"
	repo "github.com/oksasatya/readlog/internal/domain/repository"
	"github.com/oksasatya/readlog/pkg/helpers"
)

type UserService struct {
	Repo     repo.UserRepository
	Hasher   *helpers.PasswordHasher
	JWT      *helpers.JWTManager
	Notifier Notifier
	Logger   *logrus.Logger

	// dummyHash is compared against when the email is unknown so both login
	// failure paths cost one bcrypt comparison.
	dummyHash string
}

func NewUserService(repo repo.UserRepository, hasher *helpers.PasswordHasher, jwt *helpers.JWTManager, notifier Notifier, logger *logrus.Logger) *UserService {
	s := &UserService{Repo: repo, Hasher: hasher, JWT: jwt, Notifier: notifier, Logger: logger}
	if h, err := hasher.Hash("readlog-dummy-password"); err == nil {
		s.dummyHash = h
	}
	return s
}

// maxPasswordBytes is bcrypt's input limit.
const maxPasswordBytes = 72

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// Register creates a user. The email pre-check is a fast path only; the
// repository's unique constraint decides concurrent races.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	fe := fieldErrors{}
	fe.require("name", in.Name)
	fe.require("email", in.Email)
	fe.require("password", in.Password)
	if len(in.Password) > maxPasswordBytes {
		fe["password"] = "must be at most 72 bytes"
	}
	if err := fe.err(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	existing, err := s.Repo.GetByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return nil, ErrDuplicateEmail
	case err != nil && !errors.Is(err, repo.ErrNotFound):
		return nil, storeErr("lookup user by email", err)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, &ValidationError{Fields: map[string]string{"password": "must be at most 72 bytes"}}
		}
		return nil, err
	}
	u := &entity.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, storeErr("create user", err)
	}

	if s.Notifier != nil {
		if nErr := s.Notifier.UserRegistered(ctx, u); nErr != nil && s.Logger != nil {
			s.Logger.WithError(nErr).WithField("user_id", u.ID.String()).Warn("welcome notification failed")
		}
	}
	return u, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both return ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	fe := fieldErrors{}
	fe.require("email", email)
	fe.require("password", password)
	if err := fe.err(); err != nil {
		return nil, err
	}

	u, err := s.Repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, storeErr("lookup user by email", err)
		}
		s.Hasher.Compare(s.dummyHash, password)
		return nil, ErrInvalidCredentials
	}
	if !s.Hasher.Compare(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID.String()).Error("generate access token failed")
		}
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}
