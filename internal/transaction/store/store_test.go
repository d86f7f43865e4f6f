package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contasmart/contasmart/internal/transaction"
	"github.com/contasmart/contasmart/internal/transaction/store"
)

var transactionColumns = []string{
	"id", "user_id", "type", "category_id", "category_name",
	"description", "amount", "date", "created_at", "updated_at",
}

func TestStore_CreateTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(int64(1), transaction.TypeExpense, int64(4), "Supermercado", "250.75", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	s := store.New(db)

	tx := &transaction.Transaction{
		UserID:      1,
		Type:        transaction.TypeExpense,
		CategoryID:  4,
		Description: "Supermercado",
		Amount:      decimal.NewFromFloat(250.75),
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, s.CreateTransaction(context.Background(), tx))
	assert.Equal(t, int64(7), tx.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetTransaction_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM transactions").
		WithArgs(int64(404), int64(1)).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	s := store.New(db)

	_, err = s.GetTransaction(context.Background(), 1, 404)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListTransactions_Filters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(transactionColumns).
		AddRow(int64(2), int64(1), "expense", int64(4), "Alimentação",
			"Supermercado", "250.75", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), now, nil).
		AddRow(int64(1), int64(1), "expense", int64(4), "Alimentação",
			"Padaria", "18.90", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), now, nil)

	mock.ExpectQuery("FROM transactions").
		WithArgs(int64(1), transaction.TypeExpense, int64(4)).
		WillReturnRows(rows)

	s := store.New(db)

	typ := transaction.TypeExpense
	catID := int64(4)
	got, err := s.ListTransactions(context.Background(), 1, transaction.ListFilter{
		Type:       &typ,
		CategoryID: &catID,
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Supermercado", got[0].Description)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromFloat(250.75)))
	assert.Equal(t, "Alimentação", got[0].CategoryName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateTransaction_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE transactions").
		WithArgs(transaction.TypeExpense, int64(4), "x", "10", sqlmock.AnyArg(), int64(404), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	s := store.New(db)

	err = s.UpdateTransaction(context.Background(), &transaction.Transaction{
		ID:          404,
		UserID:      1,
		Type:        transaction.TypeExpense,
		CategoryID:  4,
		Description: "x",
		Amount:      decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, transaction.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_DeleteTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM transactions").
		WithArgs(int64(9), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := store.New(db)

	assert.NoError(t, s.DeleteTransaction(context.Background(), 1, 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}
