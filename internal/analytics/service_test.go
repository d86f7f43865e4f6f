package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	monthly       []MonthTotal
	categories    []CategoryTotal
	totals        Totals
	totalsBetween map[string]Totals
}

func (f *fakeRepo) MonthlyTotals(_ context.Context, _ int64, _ time.Time) ([]MonthTotal, error) {
	return f.monthly, nil
}

func (f *fakeRepo) CategoryTotals(_ context.Context, _ int64, _, _ time.Time) ([]CategoryTotal, error) {
	return f.categories, nil
}

func (f *fakeRepo) Totals(_ context.Context, _ int64) (Totals, error) {
	return f.totals, nil
}

func (f *fakeRepo) TotalsBetween(_ context.Context, _ int64, from, _ time.Time) (Totals, error) {
	return f.totalsBetween[from.Format(monthLayout)], nil
}

func fixedNow() time.Time {
	return time.Date(2024, 4, 18, 10, 0, 0, 0, time.UTC)
}

func TestService_Monthly_FillsMissingMonths(t *testing.T) {
	repo := &fakeRepo{
		monthly: []MonthTotal{
			{Month: "2024-01", Income: decimal.NewFromInt(5000), Expense: decimal.NewFromInt(3200)},
			{Month: "2024-04", Income: decimal.NewFromInt(5000), Expense: decimal.NewFromInt(2800)},
		},
	}

	svc := NewService(repo)
	svc.now = fixedNow

	got, err := svc.Monthly(context.Background(), 1, 4)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "2024-01", got[0].Month)
	assert.Equal(t, "2024-02", got[1].Month)
	assert.Equal(t, "2024-03", got[2].Month)
	assert.Equal(t, "2024-04", got[3].Month)

	assert.True(t, got[1].Income.IsZero())
	assert.True(t, got[1].Expense.IsZero())
	assert.True(t, got[3].Expense.Equal(decimal.NewFromInt(2800)))
}

func TestService_Monthly_RejectsBadRange(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Monthly(context.Background(), 1, 0)
	assert.Error(t, err)

	_, err = svc.Monthly(context.Background(), 1, 61)
	assert.Error(t, err)
}

func TestService_Dashboard(t *testing.T) {
	repo := &fakeRepo{
		totals: Totals{Income: decimal.NewFromInt(60000), Expense: decimal.NewFromInt(45000)},
		totalsBetween: map[string]Totals{
			"2024-04": {Income: decimal.NewFromInt(5000), Expense: decimal.NewFromInt(3000)},
			"2024-03": {Income: decimal.NewFromInt(5000), Expense: decimal.NewFromInt(2500)},
		},
	}

	svc := NewService(repo)
	svc.now = fixedNow

	got, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, got.Balance.Equal(decimal.NewFromInt(15000)))
	assert.True(t, got.MonthExpense.Equal(decimal.NewFromInt(3000)))
	// (5000 - 3000) / 5000 = 40%
	assert.True(t, got.SavingsRate.Equal(decimal.NewFromInt(40)))
	// 3000 vs 2500 = +20%
	assert.True(t, got.ExpenseChange.Equal(decimal.NewFromInt(20)))
}

func TestService_Dashboard_ZeroIncome(t *testing.T) {
	repo := &fakeRepo{totalsBetween: map[string]Totals{}}

	svc := NewService(repo)
	svc.now = fixedNow

	got, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, got.SavingsRate.IsZero())
}
