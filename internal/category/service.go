package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/contasmart/contasmart/internal/validation"
)

// ErrNotFound is returned when a category does not exist for the user.
var ErrNotFound = errors.New("category not found")

type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	ListCategories(ctx context.Context, userID int64) ([]*Category, error)
	DeleteCategory(ctx context.Context, userID, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name  string
	Type  Type
	Color string
	Icon  string
}

func (s *Service) Create(ctx context.Context, userID int64, params CreateParams) (*Category, error) {
	if params.Name == "" {
		return nil, validation.Errorf("name", "is required")
	}

	if params.Type != TypeIncome && params.Type != TypeExpense {
		return nil, validation.Errorf("type", "must be income or expense, got %q", params.Type)
	}

	c := &Category{
		UserID: userID,
		Name:   params.Name,
		Type:   params.Type,
		Color:  params.Color,
		Icon:   params.Icon,
	}

	if c.Color == "" {
		c.Color = "#0066ff"
	}

	if c.Icon == "" {
		c.Icon = "fas fa-tag"
	}

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]*Category, error) {
	return s.repo.ListCategories(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.DeleteCategory(ctx, userID, id)
}

// SeedDefaults creates the default category set for a new user.
func (s *Service) SeedDefaults(ctx context.Context, userID int64) error {
	for _, def := range Defaults() {
		c := def
		c.UserID = userID

		if err := s.repo.CreateCategory(ctx, &c); err != nil {
			return fmt.Errorf("seeding category %q: %w", c.Name, err)
		}
	}

	return nil
}
