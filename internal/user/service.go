package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/contasmart/contasmart/internal/auth"
	"github.com/contasmart/contasmart/internal/validation"
)

var (
	// ErrNotFound is returned when a user does not exist.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when the username or email is already taken.
	ErrDuplicate = errors.New("username or email already registered")
	// ErrInvalidCredentials is returned on failed login. It deliberately does
	// not say whether the user exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSeedDefaults reports that the account was created but the default
	// categories could not be seeded. Register still returns the user.
	ErrSeedDefaults = errors.New("default categories not seeded")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByLogin(ctx context.Context, usernameOrEmail string) (*User, error)
	UpdateProfile(ctx context.Context, u *User) error
}

// Seeder provisions per-user defaults after registration.
type Seeder interface {
	SeedDefaults(ctx context.Context, userID int64) error
}

type Service struct {
	repo   Repository
	seeder Seeder
}

func NewService(repo Repository, seeder Seeder) *Service {
	return &Service{repo: repo, seeder: seeder}
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
	FullName string
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	username := strings.TrimSpace(params.Username)
	email := strings.TrimSpace(params.Email)

	if username == "" {
		return nil, validation.Errorf("username", "is required")
	}

	if email == "" || !strings.Contains(email, "@") {
		return nil, validation.Errorf("email", "is not valid")
	}

	if len(params.Password) < 6 {
		return nil, validation.Errorf("password", "must be at least 6 characters")
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	fullName := strings.TrimSpace(params.FullName)
	if fullName == "" {
		fullName = username
	}

	u := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Avatar:       "default.png",
		Theme:        "executive",
		Currency:     "BRL",
		Language:     "pt_BR",
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	// Seeding failure must not lose the account; the user can create
	// categories manually, so the error travels next to the created user.
	if err := s.seeder.SeedDefaults(ctx, u.ID); err != nil {
		return u, fmt.Errorf("%w: %w", ErrSeedDefaults, err)
	}

	return u, nil
}

// Authenticate checks a username-or-email plus password pair.
func (s *Service) Authenticate(ctx context.Context, login, password string) (*User, error) {
	u, err := s.repo.GetUserByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := auth.VerifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetUser(ctx, id)
}

type ProfileUpdate struct {
	FullName *string
	Theme    *string
	Currency *string
	Language *string
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.FullName != nil {
		u.FullName = strings.TrimSpace(*update.FullName)
	}

	if update.Theme != nil {
		u.Theme = *update.Theme
	}

	if update.Currency != nil {
		u.Currency = *update.Currency
	}

	if update.Language != nil {
		u.Language = *update.Language
	}

	if err := s.repo.UpdateProfile(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}
