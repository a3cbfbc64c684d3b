package ledgerrepo

import (
	"context"

	"github.com/shopspring/decimal"
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

func (r *Repository) Insert(ctx context.Context, entries []domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (account_id, kind, balance_class, amount, ref_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, e := range entries {
		if _, err := r.db.Exec(ctx, query, e.AccountID, e.Kind, e.BalanceClass, e.Amount, e.RefID); err != nil {
			zap.L().Error("failed to insert ledger entry",
				zap.Int64("accountID", e.AccountID), zap.String("kind", string(e.Kind)), zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT id, account_id, kind, balance_class, amount, ref_id, created_at
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		zap.L().Error("failed to list ledger entries", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Kind, &e.BalanceClass, &e.Amount, &e.RefID, &e.CreatedAt); err != nil {
			zap.L().Error("failed to scan ledger entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SumByClass folds every entry of the account per balance class.
func (r *Repository) SumByClass(ctx context.Context, accountID int64) (map[domain.BalanceClass]decimal.Decimal, error) {
	query := `
		SELECT balance_class, COALESCE(SUM(amount), 0)
		FROM ledger_entries
		WHERE account_id = $1
		GROUP BY balance_class
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to sum ledger entries", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	sums := make(map[domain.BalanceClass]decimal.Decimal)
	for rows.Next() {
		var (
			class domain.BalanceClass
			sum   decimal.Decimal
		)
		if err := rows.Scan(&class, &sum); err != nil {
			zap.L().Error("failed to scan ledger sum", zap.Error(err))
			return nil, err
		}
		sums[class] = sum
	}
	return sums, rows.Err()
}
