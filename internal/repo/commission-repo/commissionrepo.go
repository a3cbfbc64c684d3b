package commissionrepo

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

func (r *Repository) ExistsForDeposit(ctx context.Context, depositID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM commission_distributions WHERE deposit_id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, depositID).Scan(&exists); err != nil {
		zap.L().Error("failed to check commission distributions", zap.Int64("depositID", depositID), zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Insert reports false when the (deposit, recipient, depth) row is already there.
func (r *Repository) Insert(ctx context.Context, d domain.CommissionDistribution) (bool, error) {
	query := `
		INSERT INTO commission_distributions (deposit_id, from_account_id, to_account_id, depth, percent, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (deposit_id, to_account_id, depth) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, d.DepositID, d.FromAccountID, d.ToAccountID, d.Depth, d.Percent, d.Amount)
	if err != nil {
		zap.L().Error("failed to insert commission distribution", zap.Int64("depositID", d.DepositID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
