package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type represents the direction of a transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single income or expense movement owned by a user.
type Transaction struct {
	ID           int64
	UserID       int64
	Type         Type
	CategoryID   int64
	CategoryName string // Loaded via JOIN
	Description  string
	Amount       decimal.Decimal
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
