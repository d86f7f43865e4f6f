package transaction

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contasmart/contasmart/internal/validation"
)

// ErrNotFound is returned when a transaction does not exist or belongs to
// another user.
var ErrNotFound = errors.New("transaction not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, userID, id int64) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, userID int64, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Type        Type
	CategoryID  int64
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

type ListFilter struct {
	Type       *Type
	CategoryID *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

func validateParams(params CreateParams) error {
	if !params.Type.Valid() {
		return validation.Errorf("type", "must be income or expense")
	}

	if params.CategoryID <= 0 {
		return validation.Errorf("category_id", "is required")
	}

	if strings.TrimSpace(params.Description) == "" {
		return validation.Errorf("description", "is required")
	}

	if !params.Amount.IsPositive() {
		return validation.Errorf("amount", "must be positive, got %s", params.Amount)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, userID int64, params CreateParams) (*Transaction, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	date := params.Date
	if date.IsZero() {
		now := time.Now().UTC()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	tx := &Transaction{
		UserID:      userID,
		Type:        params.Type,
		CategoryID:  params.CategoryID,
		Description: strings.TrimSpace(params.Description),
		Amount:      params.Amount,
		Date:        date,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) List(ctx context.Context, userID int64, filter ListFilter) ([]*Transaction, error) {
	if filter.Type != nil && !filter.Type.Valid() {
		return nil, validation.Errorf("type", "must be income or expense")
	}

	return s.repo.ListTransactions(ctx, userID, filter)
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id int64, params CreateParams) (*Transaction, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	tx, err := s.repo.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	tx.Type = params.Type
	tx.CategoryID = params.CategoryID
	tx.Description = strings.TrimSpace(params.Description)
	tx.Amount = params.Amount

	if !params.Date.IsZero() {
		tx.Date = params.Date
	}

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.DeleteTransaction(ctx, userID, id)
}
