package goal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contasmart/contasmart/internal/validation"
)

// ErrNotFound is returned when a goal does not exist or belongs to another
// user.
var ErrNotFound = errors.New("goal not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	CreateGoal(ctx context.Context, g *Goal) error
	GetGoal(ctx context.Context, userID, id int64) (*Goal, error)
	UpdateGoal(ctx context.Context, g *Goal) error
	ListGoals(ctx context.Context, userID int64) ([]*Goal, error)
	DeleteGoal(ctx context.Context, userID, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title        string
	Description  string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
	Priority     Priority
}

func (s *Service) Create(ctx context.Context, userID int64, params CreateParams) (*Goal, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, validation.Errorf("title", "is required")
	}

	if !params.TargetAmount.IsPositive() {
		return nil, validation.Errorf("target_amount", "must be positive, got %s", params.TargetAmount)
	}

	priority := params.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	if !priority.Valid() {
		return nil, validation.Errorf("priority", "must be low, medium or high, got %q", priority)
	}

	g := &Goal{
		UserID:        userID,
		Title:         title,
		Description:   strings.TrimSpace(params.Description),
		TargetAmount:  params.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      params.Deadline,
		Priority:      priority,
	}
	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// AddProgress adds a deposit to the goal and flips it to completed once the
// current amount reaches the target.
func (s *Service) AddProgress(ctx context.Context, userID, id int64, amount decimal.Decimal) (*Goal, error) {
	if !amount.IsPositive() {
		return nil, validation.Errorf("amount", "must be positive, got %s", amount)
	}

	g, err := s.repo.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	g.CurrentAmount = g.CurrentAmount.Add(amount)
	if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.Completed = true
	}

	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]*Goal, error) {
	return s.repo.ListGoals(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*Goal, error) {
	return s.repo.GetGoal(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.DeleteGoal(ctx, userID, id)
}
