package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contasmart/contasmart/internal/statement"
	"github.com/contasmart/contasmart/internal/validation"
)

// Repository provides the SQL aggregates the service composes.
type Repository interface {
	MonthlyTotals(ctx context.Context, userID int64, since time.Time) ([]MonthTotal, error)
	CategoryTotals(ctx context.Context, userID int64, from, to time.Time) ([]CategoryTotal, error)
	Totals(ctx context.Context, userID int64) (Totals, error)
	TotalsBetween(ctx context.Context, userID int64, from, to time.Time) (Totals, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

const monthLayout = "2006-01"

// Monthly returns income/expense totals for the last n months, oldest first.
// Months with no transactions appear with zero totals.
func (s *Service) Monthly(ctx context.Context, userID int64, n int) ([]MonthTotal, error) {
	if n < 1 || n > 60 {
		return nil, validation.Errorf("months", "must be between 1 and 60, got %d", n)
	}

	now := s.now()
	since := monthStart(now).AddDate(0, -(n - 1), 0)

	totals, err := s.repo.MonthlyTotals(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]MonthTotal, len(totals))
	for _, t := range totals {
		byMonth[t.Month] = t
	}

	out := make([]MonthTotal, 0, n)

	for i := n - 1; i >= 0; i-- {
		month := monthStart(now).AddDate(0, -i, 0).Format(monthLayout)

		if t, ok := byMonth[month]; ok {
			out = append(out, t)
			continue
		}

		out = append(out, MonthTotal{Month: month, Income: decimal.Zero, Expense: decimal.Zero})
	}

	return out, nil
}

// Categories returns per-category expense totals for the given month. A zero
// year selects the current month.
func (s *Service) Categories(ctx context.Context, userID int64, year int, month time.Month) ([]CategoryTotal, error) {
	var from time.Time
	if year == 0 {
		from = monthStart(s.now())
	} else {
		if month < time.January || month > time.December {
			return nil, validation.Errorf("month", "must be between 1 and 12, got %d", month)
		}

		from = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	}

	return s.repo.CategoryTotals(ctx, userID, from, from.AddDate(0, 1, 0))
}

// Dashboard assembles the overall summary for the user's home screen.
func (s *Service) Dashboard(ctx context.Context, userID int64) (*Summary, error) {
	overall, err := s.repo.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	thisMonth := monthStart(now)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	current, err := s.repo.TotalsBetween(ctx, userID, thisMonth, thisMonth.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}

	previous, err := s.repo.TotalsBetween(ctx, userID, lastMonth, thisMonth)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalIncome:   overall.Income,
		TotalExpense:  overall.Expense,
		Balance:       overall.Income.Sub(overall.Expense),
		MonthIncome:   current.Income,
		MonthExpense:  current.Expense,
		SavingsRate:   savingsRate(current.Income, current.Expense),
		ExpenseChange: statement.PercentChange(current.Expense, previous.Expense),
	}, nil
}

// savingsRate is the share of income left after expenses, in percent. Zero
// income yields zero.
func savingsRate(income, expense decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}

	return income.Sub(expense).Div(income).Mul(decimal.NewFromInt(100))
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
