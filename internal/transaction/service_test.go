package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/contasmart/contasmart/internal/transaction"
	"github.com/contasmart/contasmart/internal/validation"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name        string
		params      transaction.CreateParams
		setupMock   func(m *transaction.MockRepository)
		wantErr     bool
		wantInvalid bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: transaction.CreateParams{
				Type:        transaction.TypeExpense,
				CategoryID:  4,
				Description: "Supermercado",
				Amount:      decimal.NewFromFloat(250.75),
				Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = 1
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "ZeroDateDefaultsToToday",
			params: transaction.CreateParams{
				Type:        transaction.TypeIncome,
				CategoryID:  1,
				Description: "Salário",
				Amount:      decimal.NewFromInt(5000),
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						assert.False(t, tx.Date.IsZero())
						return nil
					})
			},
		},
		{
			name: "InvalidType",
			params: transaction.CreateParams{
				Type:        "transfer",
				CategoryID:  1,
				Description: "x",
				Amount:      decimal.NewFromInt(10),
			},
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name: "MissingCategory",
			params: transaction.CreateParams{
				Type:        transaction.TypeExpense,
				Description: "x",
				Amount:      decimal.NewFromInt(10),
			},
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name: "BlankDescription",
			params: transaction.CreateParams{
				Type:        transaction.TypeExpense,
				CategoryID:  1,
				Description: "   ",
				Amount:      decimal.NewFromInt(10),
			},
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name: "NegativeAmount",
			params: transaction.CreateParams{
				Type:        transaction.TypeExpense,
				CategoryID:  1,
				Description: "x",
				Amount:      decimal.NewFromInt(-10),
			},
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name: "ZeroAmount",
			params: transaction.CreateParams{
				Type:        transaction.TypeExpense,
				CategoryID:  1,
				Description: "x",
				Amount:      decimal.Zero,
			},
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name: "RepoError",
			params: transaction.CreateParams{
				Type:        transaction.TypeExpense,
				CategoryID:  1,
				Description: "x",
				Amount:      decimal.NewFromInt(10),
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.Create(context.Background(), 1, tt.params)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantInvalid, validation.Is(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, int64(1), got.UserID)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &transaction.Transaction{
		ID:          9,
		UserID:      1,
		Type:        transaction.TypeExpense,
		CategoryID:  4,
		Description: "old",
		Amount:      decimal.NewFromInt(100),
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().GetTransaction(gomock.Any(), int64(1), int64(9)).Return(existing, nil)
	repo.EXPECT().
		UpdateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, "new description", tx.Description)
			assert.True(t, tx.Amount.Equal(decimal.NewFromInt(200)))
			// Zero incoming date keeps the stored one.
			assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), tx.Date)
			return nil
		})

	svc := transaction.NewService(repo)
	got, err := svc.Update(context.Background(), 1, 9, transaction.CreateParams{
		Type:        transaction.TypeExpense,
		CategoryID:  4,
		Description: "new description",
		Amount:      decimal.NewFromInt(200),
	})

	require.NoError(t, err)
	assert.Equal(t, "new description", got.Description)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		GetTransaction(gomock.Any(), int64(1), int64(404)).
		Return(nil, transaction.ErrNotFound)

	svc := transaction.NewService(repo)
	_, err := svc.Update(context.Background(), 1, 404, transaction.CreateParams{
		Type:        transaction.TypeExpense,
		CategoryID:  1,
		Description: "x",
		Amount:      decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestService_List_InvalidTypeFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := transaction.NewService(transaction.NewMockRepository(ctrl))

	bad := transaction.Type("transfer")
	_, err := svc.List(context.Background(), 1, transaction.ListFilter{Type: &bad})

	assert.True(t, validation.Is(err))
}
