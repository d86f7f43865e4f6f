// Package report derives balance-sheet views: a full sheet walked from the
// ledger's chart of accounts, and a summary computed from flat totals.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/contasmart/contasmart/internal/ledger"
	"github.com/contasmart/contasmart/internal/statement"
	"github.com/contasmart/contasmart/internal/validation"
)

// tolerance is the absolute slack allowed on the accounting equation.
var tolerance = decimal.RequireFromString("0.01")

// Section is one side bucket of the sheet: named non-zero balances plus the
// bucket total.
type Section struct {
	Accounts map[string]decimal.Decimal `json:"accounts"`
	Total    decimal.Decimal            `json:"total"`
}

// Sheet is a balance-sheet snapshot derived from the ledger at calculation
// time.
type Sheet struct {
	Entity string `json:"entity"`
	Period string `json:"period"`

	CurrentAssets         Section `json:"current_assets"`
	NonCurrentAssets      Section `json:"non_current_assets"`
	CurrentLiabilities    Section `json:"current_liabilities"`
	NonCurrentLiabilities Section `json:"non_current_liabilities"`
	Equity                Section `json:"equity"`

	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`

	Balanced bool `json:"balanced"`
}

func newSection() Section {
	return Section{Accounts: make(map[string]decimal.Decimal)}
}

func (s *Section) add(name string, balance decimal.Decimal) {
	s.Accounts[name] = balance
	s.Total = s.Total.Add(balance)
}

// FromLedger buckets the ledger's non-zero balances and checks the
// fundamental equation. The ledger is not mutated. An entity must have been
// set; it governs the report header only.
func FromLedger(l *ledger.Ledger) (*Sheet, error) {
	entity := l.Entity()
	if entity == nil {
		return nil, validation.Errorf("entity", "no company context set")
	}

	sheet := &Sheet{
		Entity:                entity.Name,
		Period:                entity.Period,
		CurrentAssets:         newSection(),
		NonCurrentAssets:      newSection(),
		CurrentLiabilities:    newSection(),
		NonCurrentLiabilities: newSection(),
		Equity:                newSection(),
	}

	for _, acc := range l.Accounts() {
		if acc.Balance.IsZero() {
			continue
		}

		switch acc.Category {
		case ledger.CategoryAsset:
			if acc.Group == ledger.GroupCurrent {
				sheet.CurrentAssets.add(acc.Name, acc.Balance)
			} else {
				sheet.NonCurrentAssets.add(acc.Name, acc.Balance)
			}
		case ledger.CategoryLiability:
			if acc.Group == ledger.GroupCurrent {
				sheet.CurrentLiabilities.add(acc.Name, acc.Balance)
			} else {
				sheet.NonCurrentLiabilities.add(acc.Name, acc.Balance)
			}
		case ledger.CategoryEquity:
			sheet.Equity.add(acc.Name, acc.Balance)
		}
	}

	sheet.TotalAssets = sheet.CurrentAssets.Total.Add(sheet.NonCurrentAssets.Total)
	sheet.TotalLiabilities = sheet.CurrentLiabilities.Total.Add(sheet.NonCurrentLiabilities.Total)

	gap := sheet.TotalAssets.Sub(sheet.TotalLiabilities.Add(sheet.Equity.Total)).Abs()
	sheet.Balanced = gap.LessThan(tolerance)

	return sheet, nil
}

// SummaryInput carries flat totals for a quick balance-sheet check.
type SummaryInput struct {
	CurrentAssets         decimal.Decimal `json:"current_assets"`
	NonCurrentAssets      decimal.Decimal `json:"non_current_assets"`
	CurrentLiabilities    decimal.Decimal `json:"current_liabilities"`
	NonCurrentLiabilities decimal.Decimal `json:"non_current_liabilities"`
	Equity                decimal.Decimal `json:"equity"`
}

// Summary is the computed totals, equation check and the standard liquidity
// and indebtedness indicators.
type Summary struct {
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	Equity           decimal.Decimal `json:"equity"`
	Gap              decimal.Decimal `json:"gap"`
	Balanced         bool            `json:"balanced"`

	CurrentRatio         decimal.Decimal `json:"current_ratio"`
	TotalIndebtedness    decimal.Decimal `json:"total_indebtedness"`
	LiabilityComposition decimal.Decimal `json:"liability_composition"`
}

// Summarize computes totals and indicators from flat section totals.
func Summarize(in SummaryInput) Summary {
	totalAssets := in.CurrentAssets.Add(in.NonCurrentAssets)
	totalLiabilities := in.CurrentLiabilities.Add(in.NonCurrentLiabilities)
	gap := totalAssets.Sub(totalLiabilities.Add(in.Equity)).Abs()

	return Summary{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		Equity:           in.Equity,
		Gap:              gap,
		Balanced:         gap.LessThan(tolerance),

		CurrentRatio:         statement.CurrentRatio(in.CurrentAssets, in.CurrentLiabilities),
		TotalIndebtedness:    statement.TotalIndebtedness(totalLiabilities, totalAssets),
		LiabilityComposition: statement.LiabilityComposition(in.CurrentLiabilities, totalLiabilities),
	}
}
