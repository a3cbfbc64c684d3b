package settingsrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT deposit_charge_type, deposit_charge_value, withdrawal_charge_type, withdrawal_charge_value,
		       allowed_withdrawal_days, roi_schedule_time, min_withdrawal_amount, max_withdrawal_amount, updated_at
		FROM settings
		WHERE id = 1
	`
	var s domain.Settings
	err := r.db.QueryRow(ctx, query).Scan(&s.DepositCharge.Type, &s.DepositCharge.Value,
		&s.WithdrawalCharge.Type, &s.WithdrawalCharge.Value, &s.AllowedWithdrawalDays, &s.ROIScheduleTime,
		&s.MinWithdrawal, &s.MaxWithdrawal, &s.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to read settings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Save(ctx context.Context, s domain.Settings) (*domain.Settings, error) {
	query := `
		UPDATE settings
		SET deposit_charge_type = $1, deposit_charge_value = $2, withdrawal_charge_type = $3,
		    withdrawal_charge_value = $4, allowed_withdrawal_days = $5, roi_schedule_time = $6,
		    min_withdrawal_amount = $7, max_withdrawal_amount = $8, updated_at = NOW()
		WHERE id = 1
		RETURNING updated_at
	`
	days := s.AllowedWithdrawalDays
	if days == nil {
		days = []int{}
	}
	err := r.db.QueryRow(ctx, query, s.DepositCharge.Type, s.DepositCharge.Value, s.WithdrawalCharge.Type,
		s.WithdrawalCharge.Value, days, s.ROIScheduleTime, s.MinWithdrawal, s.MaxWithdrawal).Scan(&s.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to save settings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}
