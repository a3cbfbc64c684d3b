package capitalrepo

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

// InsertRelease reports false when the deposit's principal was already released.
func (r *Repository) InsertRelease(ctx context.Context, rel domain.CapitalRelease) (bool, error) {
	query := `
		INSERT INTO capital_releases (deposit_id, account_id, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (deposit_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, rel.DepositID, rel.AccountID, rel.Amount)
	if err != nil {
		zap.L().Error("failed to insert capital release", zap.Int64("depositID", rel.DepositID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
