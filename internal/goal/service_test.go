package goal_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/contasmart/contasmart/internal/goal"
	"github.com/contasmart/contasmart/internal/validation"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name         string
		params       goal.CreateParams
		setupMock    func(m *goal.MockRepository)
		wantErr      bool
		wantPriority goal.Priority
	}

	tests := []testCase{
		{
			name: "Success",
			params: goal.CreateParams{
				Title:        "Reserva de emergência",
				Description:  "6 meses de despesas",
				TargetAmount: decimal.NewFromInt(30000),
			},
			setupMock: func(m *goal.MockRepository) {
				m.EXPECT().
					CreateGoal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, g *goal.Goal) error {
						g.ID = 1
						return nil
					})
			},
			wantPriority: goal.PriorityMedium,
		},
		{
			name: "HighPriority",
			params: goal.CreateParams{
				Title:        "Quitar financiamento",
				TargetAmount: decimal.NewFromInt(80000),
				Priority:     goal.PriorityHigh,
			},
			setupMock: func(m *goal.MockRepository) {
				m.EXPECT().CreateGoal(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantPriority: goal.PriorityHigh,
		},
		{
			name: "BlankTitle",
			params: goal.CreateParams{
				Title:        "   ",
				TargetAmount: decimal.NewFromInt(100),
			},
			wantErr: true,
		},
		{
			name: "NonPositiveTarget",
			params: goal.CreateParams{
				Title:        "Viagem",
				TargetAmount: decimal.Zero,
			},
			wantErr: true,
		},
		{
			name: "UnknownPriority",
			params: goal.CreateParams{
				Title:        "Viagem",
				TargetAmount: decimal.NewFromInt(100),
				Priority:     goal.Priority("urgent"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := goal.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := goal.NewService(repo)
			got, err := svc.Create(context.Background(), 1, tt.params)

			if tt.wantErr {
				assert.True(t, validation.Is(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), got.UserID)
			assert.Equal(t, tt.wantPriority, got.Priority)
			assert.True(t, got.CurrentAmount.IsZero())
			assert.False(t, got.Completed)
		})
	}
}

func TestService_AddProgress(t *testing.T) {
	type testCase struct {
		name          string
		current       string
		target        string
		deposit       string
		wantCompleted bool
	}

	tests := []testCase{
		{name: "PartialProgress", current: "100", target: "1000", deposit: "200", wantCompleted: false},
		{name: "ExactlyReachesTarget", current: "800", target: "1000", deposit: "200", wantCompleted: true},
		{name: "Overshoots", current: "900", target: "1000", deposit: "500", wantCompleted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			stored := &goal.Goal{
				ID:            5,
				UserID:        1,
				Title:         "Viagem",
				TargetAmount:  decimal.RequireFromString(tt.target),
				CurrentAmount: decimal.RequireFromString(tt.current),
			}

			repo := goal.NewMockRepository(ctrl)
			repo.EXPECT().GetGoal(gomock.Any(), int64(1), int64(5)).Return(stored, nil)
			repo.EXPECT().UpdateGoal(gomock.Any(), stored).Return(nil)

			svc := goal.NewService(repo)
			got, err := svc.AddProgress(context.Background(), 1, 5, decimal.RequireFromString(tt.deposit))

			require.NoError(t, err)

			wantCurrent := decimal.RequireFromString(tt.current).Add(decimal.RequireFromString(tt.deposit))
			assert.True(t, got.CurrentAmount.Equal(wantCurrent))
			assert.Equal(t, tt.wantCompleted, got.Completed)
		})
	}
}

func TestService_AddProgress_RejectsNonPositive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := goal.NewService(goal.NewMockRepository(ctrl))

	_, err := svc.AddProgress(context.Background(), 1, 5, decimal.NewFromInt(-50))
	assert.True(t, validation.Is(err))
}

func TestService_AddProgress_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := goal.NewMockRepository(ctrl)
	repo.EXPECT().GetGoal(gomock.Any(), int64(1), int64(404)).Return(nil, goal.ErrNotFound)

	svc := goal.NewService(repo)

	_, err := svc.AddProgress(context.Background(), 1, 404, decimal.NewFromInt(50))
	assert.ErrorIs(t, err, goal.ErrNotFound)
}

func TestGoal_Progress(t *testing.T) {
	g := &goal.Goal{
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(250),
	}
	assert.True(t, g.Progress().Equal(decimal.NewFromInt(25)))

	g.CurrentAmount = decimal.NewFromInt(1500)
	assert.True(t, g.Progress().Equal(decimal.NewFromInt(100)))

	g.TargetAmount = decimal.Zero
	assert.True(t, g.Progress().IsZero())
}
