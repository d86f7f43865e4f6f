package ledger

import "github.com/shopspring/decimal"

// DefaultChart returns the standard chart of accounts a fresh ledger starts
// with. All balances are zero.
func DefaultChart() []Account {
	accounts := []struct {
		name     string
		category Category
		group    Group
		kind     Kind
	}{
		{"cash", CategoryAsset, GroupCurrent, KindDebit},
		{"banks", CategoryAsset, GroupCurrent, KindDebit},
		{"receivables", CategoryAsset, GroupCurrent, KindDebit},
		{"inventory", CategoryAsset, GroupCurrent, KindDebit},
		{"buildings", CategoryAsset, GroupNonCurrent, KindDebit},
		{"vehicles", CategoryAsset, GroupNonCurrent, KindDebit},
		{"equipment", CategoryAsset, GroupNonCurrent, KindDebit},

		{"suppliers", CategoryLiability, GroupCurrent, KindCredit},
		{"short_term_loans", CategoryLiability, GroupCurrent, KindCredit},
		{"salaries_payable", CategoryLiability, GroupCurrent, KindCredit},
		{"long_term_loans", CategoryLiability, GroupNonCurrent, KindCredit},
		{"financing", CategoryLiability, GroupNonCurrent, KindCredit},

		{"share_capital", CategoryEquity, GroupNone, KindCredit},
		{"retained_earnings", CategoryEquity, GroupNone, KindCredit},
		{"reserves", CategoryEquity, GroupNone, KindCredit},

		{"sales", CategoryRevenue, GroupNone, KindCredit},
		{"services", CategoryRevenue, GroupNone, KindCredit},
		{"interest_income", CategoryRevenue, GroupNone, KindCredit},

		{"cogs", CategoryExpense, GroupNone, KindDebit},
		{"salaries", CategoryExpense, GroupNone, KindDebit},
		{"rent", CategoryExpense, GroupNone, KindDebit},
		{"utilities", CategoryExpense, GroupNone, KindDebit},
		{"phone", CategoryExpense, GroupNone, KindDebit},
		{"maintenance", CategoryExpense, GroupNone, KindDebit},
	}

	chart := make([]Account, len(accounts))
	for i, a := range accounts {
		chart[i] = Account{
			Name:     a.name,
			Category: a.category,
			Group:    a.group,
			Kind:     a.kind,
			Balance:  decimal.Zero,
		}
	}

	return chart
}
