package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contasmart/contasmart/internal/ledger"
	"github.com/contasmart/contasmart/internal/report"
	"github.com/contasmart/contasmart/internal/validation"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFromLedger_RequiresEntity(t *testing.T) {
	_, err := report.FromLedger(ledger.New())
	require.Error(t, err)
	assert.True(t, validation.Is(err))
}

func TestFromLedger_BucketsAndBalances(t *testing.T) {
	l := ledger.New()
	l.SetEntity("ContaSmart LTDA", "12.345.678/0001-90", "2024")

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Assets 1000 (cash 700 current, equipment 300 non-current) against
	// liabilities 500 (suppliers 200, long_term_loans 300) and equity 500.
	post := func(debit, credit, amount string) {
		t.Helper()

		_, err := l.Post(date, "setup", debit, credit, dec(amount))
		require.NoError(t, err)
	}

	post("cash", "share_capital", "500")
	post("cash", "suppliers", "200")
	post("equipment", "long_term_loans", "300")

	sheet, err := report.FromLedger(l)
	require.NoError(t, err)

	assert.Equal(t, "ContaSmart LTDA", sheet.Entity)
	assert.True(t, sheet.CurrentAssets.Total.Equal(dec("700")))
	assert.True(t, sheet.NonCurrentAssets.Total.Equal(dec("300")))
	assert.True(t, sheet.TotalAssets.Equal(dec("1000")))
	assert.True(t, sheet.TotalLiabilities.Equal(dec("500")))
	assert.True(t, sheet.Equity.Total.Equal(dec("500")))
	assert.True(t, sheet.Balanced)

	// Zero-balance accounts are omitted from the sections.
	_, ok := sheet.CurrentAssets.Accounts["banks"]
	assert.False(t, ok)
}

func TestFromLedger_DoesNotMutate(t *testing.T) {
	l := ledger.New()
	l.SetEntity("ContaSmart LTDA", "", "2024")

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := l.Post(date, "capital", "cash", "share_capital", dec("100"))
	require.NoError(t, err)

	before := l.Accounts()

	_, err = report.FromLedger(l)
	require.NoError(t, err)

	assert.Equal(t, before, l.Accounts())
}

func TestSummarize(t *testing.T) {
	summary := report.Summarize(report.SummaryInput{
		CurrentAssets:         dec("700"),
		NonCurrentAssets:      dec("300"),
		CurrentLiabilities:    dec("200"),
		NonCurrentLiabilities: dec("300"),
		Equity:                dec("500"),
	})

	assert.True(t, summary.TotalAssets.Equal(dec("1000")))
	assert.True(t, summary.TotalLiabilities.Equal(dec("500")))
	assert.True(t, summary.Balanced)
	assert.True(t, summary.CurrentRatio.Equal(dec("3.5")))
	assert.True(t, summary.TotalIndebtedness.Equal(dec("50")))
	assert.True(t, summary.LiabilityComposition.Equal(dec("40")))
}

func TestSummarize_Unbalanced(t *testing.T) {
	summary := report.Summarize(report.SummaryInput{
		CurrentAssets: dec("100"),
		Equity:        dec("50"),
	})

	assert.False(t, summary.Balanced)
	assert.True(t, summary.Gap.Equal(dec("50")))
}

func TestSummarize_WithinTolerance(t *testing.T) {
	summary := report.Summarize(report.SummaryInput{
		CurrentAssets: dec("100.009"),
		Equity:        dec("100.00"),
	})

	assert.True(t, summary.Balanced)
}
