package analytics

import "github.com/shopspring/decimal"

// MonthTotal holds aggregated income and expense for a calendar month.
// Month is formatted as "2006-01".
type MonthTotal struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryTotal holds the summed expense of one category over a period.
type CategoryTotal struct {
	CategoryID int64           `json:"category_id"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
}

// Totals is an income/expense pair over some period.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Summary is the dashboard aggregate for one user.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpense  decimal.Decimal `json:"total_expense"`
	Balance       decimal.Decimal `json:"balance"`
	MonthIncome   decimal.Decimal `json:"month_income"`
	MonthExpense  decimal.Decimal `json:"month_expense"`
	SavingsRate   decimal.Decimal `json:"savings_rate"`
	ExpenseChange decimal.Decimal `json:"expense_change"`
}
