package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contasmart/contasmart/internal/ledger"
	"github.com/contasmart/contasmart/internal/validation"
)

var testDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func balance(t *testing.T, l *ledger.Ledger, name string) decimal.Decimal {
	t.Helper()

	b, err := l.BalanceOf(name)
	require.NoError(t, err)

	return b
}

func TestPost_UpdatesBothSides(t *testing.T) {
	l := ledger.New()

	// Capital contribution: cash (debit-normal) up, share_capital
	// (credit-normal) up.
	entry, err := l.Post(testDate, "capital contribution", "cash", "share_capital", decimal.NewFromInt(1000))
	require.NoError(t, err)

	assert.Equal(t, int64(1), entry.ID)
	assert.True(t, balance(t, l, "cash").Equal(decimal.NewFromInt(1000)))
	assert.True(t, balance(t, l, "share_capital").Equal(decimal.NewFromInt(1000)))
}

func TestPost_SignConvention(t *testing.T) {
	l := ledger.New()

	// Pay a supplier from cash: suppliers (credit-normal) is debited so it
	// decreases; cash (debit-normal) is credited so it decreases.
	_, err := l.Post(testDate, "open payable", "inventory", "suppliers", decimal.NewFromInt(300))
	require.NoError(t, err)
	_, err = l.Post(testDate, "settle payable", "suppliers", "cash", decimal.NewFromInt(120))
	require.NoError(t, err)

	assert.True(t, balance(t, l, "suppliers").Equal(decimal.NewFromInt(180)))
	assert.True(t, balance(t, l, "cash").Equal(decimal.NewFromInt(-120)))
	assert.True(t, balance(t, l, "inventory").Equal(decimal.NewFromInt(300)))
}

func TestPost_PreservesAccountingEquation(t *testing.T) {
	l := ledger.New()

	postings := []struct {
		debit, credit string
		amount        int64
	}{
		{"cash", "share_capital", 5000},
		{"inventory", "suppliers", 1200},
		{"banks", "long_term_loans", 3000},
		{"suppliers", "cash", 700},
	}

	for _, p := range postings {
		_, err := l.Post(testDate, "posting", p.debit, p.credit, decimal.NewFromInt(p.amount))
		require.NoError(t, err)

		var assets, liabilities, equity decimal.Decimal

		for _, acc := range l.Accounts() {
			switch acc.Category {
			case ledger.CategoryAsset:
				assets = assets.Add(acc.Balance)
			case ledger.CategoryLiability:
				liabilities = liabilities.Add(acc.Balance)
			case ledger.CategoryEquity:
				equity = equity.Add(acc.Balance)
			}
		}

		assert.True(t, assets.Sub(liabilities).Sub(equity).IsZero(),
			"equation broken after %s/%s: assets=%s liabilities=%s equity=%s",
			p.debit, p.credit, assets, liabilities, equity)
	}
}

func TestPost_RejectsNonPositiveAmount(t *testing.T) {
	l := ledger.New()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := l.Post(testDate, "bad", "cash", "sales", amount)
		require.Error(t, err)
		assert.True(t, validation.Is(err))
	}

	// Ledger state unchanged.
	assert.Empty(t, l.Entries())
	assert.True(t, balance(t, l, "cash").IsZero())
	assert.True(t, balance(t, l, "sales").IsZero())
}

func TestPost_RejectsUnknownAccounts(t *testing.T) {
	l := ledger.New()

	_, err := l.Post(testDate, "bad", "petty_cash", "sales", decimal.NewFromInt(10))
	require.Error(t, err)
	assert.True(t, validation.Is(err))

	_, err = l.Post(testDate, "bad", "cash", "donations", decimal.NewFromInt(10))
	require.Error(t, err)
	assert.True(t, validation.Is(err))

	assert.Empty(t, l.Entries())
}

func TestBalanceOf_UnknownAccountIsError(t *testing.T) {
	l := ledger.New()

	_, err := l.BalanceOf("petty_cash")
	require.Error(t, err)
	assert.True(t, validation.Is(err))
}

func TestEntries_AppendOnlyOrdered(t *testing.T) {
	l := ledger.New()

	for i := 1; i <= 3; i++ {
		_, err := l.Post(testDate.AddDate(0, 0, i), "posting", "cash", "sales", decimal.NewFromInt(int64(i)))
		require.NoError(t, err)
	}

	entries := l.Entries()
	require.Len(t, entries, 3)

	for i, e := range entries {
		assert.Equal(t, int64(i+1), e.ID)
	}

	// Mutating the returned slice must not affect the ledger.
	entries[0].Description = "tampered"
	assert.Equal(t, "posting", l.Entries()[0].Description)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	l := ledger.New()
	l.SetEntity("ContaSmart LTDA", "12.345.678/0001-90", "2024")

	_, err := l.Post(testDate, "capital", "cash", "share_capital", decimal.NewFromInt(500))
	require.NoError(t, err)
	_, err = l.Post(testDate, "sale", "cash", "sales", decimal.RequireFromString("99.90"))
	require.NoError(t, err)

	restored := ledger.FromSnapshot(l.Snapshot())

	require.NotNil(t, restored.Entity())
	assert.Equal(t, "ContaSmart LTDA", restored.Entity().Name)
	assert.Equal(t, l.Entries(), restored.Entries())
	assert.True(t, balance(t, restored, "cash").Equal(decimal.RequireFromString("599.90")))

	// Restored ledger keeps posting with ids continuing the sequence.
	entry, err := restored.Post(testDate, "more", "cash", "sales", decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.Equal(t, int64(3), entry.ID)
}
