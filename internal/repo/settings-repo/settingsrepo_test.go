package settingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	updated := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM settings`)).
		WillReturnRows(pgxmock.NewRows([]string{"deposit_charge_type", "deposit_charge_value", "withdrawal_charge_type",
			"withdrawal_charge_value", "allowed_withdrawal_days", "roi_schedule_time", "min_withdrawal_amount",
			"max_withdrawal_amount", "updated_at"}).
			AddRow(domain.ChargePercentage, decimal.NewFromInt(2), domain.ChargeFixed, decimal.RequireFromString("1.50"),
				[]int{1, 15}, "00:00", decimal.NewFromInt(10), decimal.Zero, updated))

	s, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ChargePercentage, s.DepositCharge.Type)
	assert.Equal(t, []int{1, 15}, s.AllowedWithdrawalDays)
	assert.True(t, s.MaxWithdrawal.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save(t *testing.T) {
	ctx := context.Background()
	updated := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	s := domain.Settings{
		DepositCharge:    domain.ChargePolicy{Type: domain.ChargePercentage, Value: decimal.NewFromInt(2)},
		WithdrawalCharge: domain.ChargePolicy{Type: domain.ChargeFixed, Value: decimal.NewFromInt(1)},
		ROIScheduleTime:  "06:30",
	}
	args := []any{domain.ChargePercentage, s.DepositCharge.Value, domain.ChargeFixed, s.WithdrawalCharge.Value,
		[]int{}, "06:30", s.MinWithdrawal, s.MaxWithdrawal}

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
	}{
		{
			name: "nil days stored as empty list",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE settings`)).
					WithArgs(args...).
					WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(updated))
			},
		},
		{
			name: "database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE settings`)).
					WithArgs(args...).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)
			saved, err := repo.Save(ctx, s)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, updated, saved.UpdatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
