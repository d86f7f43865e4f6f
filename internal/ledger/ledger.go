// Package ledger holds the chart of accounts and the append-only list of
// double-entry postings that mutate account balances.
//
// A Ledger is not safe for concurrent use; the owner serializes access.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/contasmart/contasmart/internal/validation"
)

// Kind is an account's normal-balance side.
type Kind string

const (
	// KindDebit accounts (assets, expenses) increase on the debit side.
	KindDebit Kind = "debit"
	// KindCredit accounts (liabilities, equity, revenue) increase on the credit side.
	KindCredit Kind = "credit"
)

// Category is the top level of the chart of accounts.
type Category string

const (
	CategoryAsset     Category = "asset"
	CategoryLiability Category = "liability"
	CategoryEquity    Category = "equity"
	CategoryRevenue   Category = "revenue"
	CategoryExpense   Category = "expense"
)

// Group is the second level of the chart of accounts. Equity, revenue and
// expense accounts carry no group.
type Group string

const (
	GroupCurrent    Group = "current"
	GroupNonCurrent Group = "non_current"
	GroupNone       Group = ""
)

// Account is a single entry in the chart of accounts. Balances are mutated
// only through Post; accounts are never deleted.
type Account struct {
	Name     string
	Category Category
	Group    Group
	Kind     Kind
	Balance  decimal.Decimal
}

// Entry is a single balanced debit/credit posting. Entries are immutable
// once created.
type Entry struct {
	ID          int64
	Date        time.Time
	Description string
	Debit       string
	Credit      string
	Amount      decimal.Decimal
}

// Entity identifies the company the ledger belongs to. It governs only the
// report header, not the arithmetic.
type Entity struct {
	Name   string
	TaxID  string
	Period string
}

// Ledger owns a chart of accounts and its posting history.
type Ledger struct {
	entity   *Entity
	index    map[string]*Account
	accounts []*Account
	entries  []Entry
}

// New creates a ledger with the default chart of accounts.
func New() *Ledger {
	return NewWithChart(DefaultChart())
}

// NewWithChart creates a ledger from an explicit chart. Account order is
// preserved for reporting; duplicate names keep the first occurrence.
func NewWithChart(chart []Account) *Ledger {
	l := &Ledger{index: make(map[string]*Account, len(chart))}

	for i := range chart {
		acc := chart[i]
		if _, ok := l.index[acc.Name]; ok {
			continue
		}

		a := &acc
		l.index[a.Name] = a
		l.accounts = append(l.accounts, a)
	}

	return l
}

// SetEntity records the company context used in report headers.
func (l *Ledger) SetEntity(name, taxID, period string) {
	l.entity = &Entity{Name: name, TaxID: taxID, Period: period}
}

// Entity returns the company context, or nil if none was set.
func (l *Ledger) Entity() *Entity {
	if l.entity == nil {
		return nil
	}

	e := *l.entity

	return &e
}

// Post validates and appends a posting, updating both account balances per
// the normal-balance convention: the debited account increases when
// debit-normal and decreases otherwise, the credited account increases when
// credit-normal and decreases otherwise. On validation failure the ledger is
// left unchanged.
func (l *Ledger) Post(date time.Time, description, debit, credit string, amount decimal.Decimal) (Entry, error) {
	if !amount.IsPositive() {
		return Entry{}, validation.Errorf("amount", "must be positive, got %s", amount)
	}

	debitAcc, ok := l.index[debit]
	if !ok {
		return Entry{}, validation.Errorf("debit", "unknown account %q", debit)
	}

	creditAcc, ok := l.index[credit]
	if !ok {
		return Entry{}, validation.Errorf("credit", "unknown account %q", credit)
	}

	entry := Entry{
		ID:          int64(len(l.entries)) + 1,
		Date:        date,
		Description: description,
		Debit:       debit,
		Credit:      credit,
		Amount:      amount,
	}

	if debitAcc.Kind == KindDebit {
		debitAcc.Balance = debitAcc.Balance.Add(amount)
	} else {
		debitAcc.Balance = debitAcc.Balance.Sub(amount)
	}

	if creditAcc.Kind == KindCredit {
		creditAcc.Balance = creditAcc.Balance.Add(amount)
	} else {
		creditAcc.Balance = creditAcc.Balance.Sub(amount)
	}

	l.entries = append(l.entries, entry)

	return entry, nil
}

// BalanceOf returns the current balance of the named account. An unknown
// name is a validation error, matching Post's strictness.
func (l *Ledger) BalanceOf(name string) (decimal.Decimal, error) {
	acc, ok := l.index[name]
	if !ok {
		return decimal.Zero, validation.Errorf("account", "unknown account %q", name)
	}

	return acc.Balance, nil
}

// Accounts returns the chart of accounts in chart order.
func (l *Ledger) Accounts() []Account {
	out := make([]Account, len(l.accounts))
	for i, a := range l.accounts {
		out[i] = *a
	}

	return out
}

// Entries returns all postings, oldest first.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)

	return out
}
