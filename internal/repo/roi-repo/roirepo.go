package roirepo

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

// InsertAccrual reports false when the account was already paid for that date.
func (r *Repository) InsertAccrual(ctx context.Context, a domain.ROIAccrual) (bool, error) {
	query := `
		INSERT INTO roi_accruals (account_id, accrual_date, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, accrual_date) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, a.AccountID, domain.Day(a.AccrualDate), a.Amount)
	if err != nil {
		zap.L().Error("failed to insert roi accrual", zap.Int64("accountID", a.AccountID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
