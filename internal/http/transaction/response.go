package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/contasmart/contasmart/internal/transaction"
)

type transactionResponse struct {
	ID           int64            `json:"id"`
	Type         transaction.Type `json:"type"`
	CategoryID   int64            `json:"category_id"`
	CategoryName string           `json:"category_name,omitempty"`
	Description  string           `json:"description"`
	Amount       decimal.Decimal  `json:"amount"`
	Date         string           `json:"date"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		Type:         tx.Type,
		CategoryID:   tx.CategoryID,
		CategoryName: tx.CategoryName,
		Description:  tx.Description,
		Amount:       tx.Amount,
		Date:         tx.Date.Format(time.DateOnly),
		CreatedAt:    tx.CreatedAt,
		UpdatedAt:    tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
