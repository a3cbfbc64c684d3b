package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
)

const accountColumns = `id, parent_id, level, wallet_balance, roi_balance, commission_balance, total_investment, staked_amount, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.ParentID, &a.Level, &a.WalletBalance, &a.ROIBalance, &a.CommissionBalance,
		&a.TotalInvestment, &a.StakedAmount, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collect(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()
	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}

func (r *Repository) Create(ctx context.Context, parentID *int64, level int) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (parent_id, level)
		VALUES ($1, $2)
		RETURNING ` + accountColumns
	account, err := scanAccount(r.db.QueryRow(ctx, query, parentID, level))
	if err != nil {
		zap.L().Error("can't create account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("account %d not found", id))
		}
		zap.L().Error("can't get account", zap.Int64("accountID", id), zap.Error(err))
		return nil, err
	}
	return account, nil
}

// LockForUpdate row-locks the given accounts in ascending id order. Must run inside a transaction.
func (r *Repository) LockForUpdate(ctx context.Context, ids []int64) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = ANY($1) ORDER BY id FOR UPDATE`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't lock accounts", zap.Int64s("accountIDs", ids), zap.Error(err))
		return nil, err
	}
	accounts, err := collect(rows)
	if err != nil {
		zap.L().Error("can't scan locked accounts", zap.Error(err))
		return nil, err
	}
	if len(accounts) != len(ids) {
		return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("some of accounts %v not found", ids))
	}
	return accounts, nil
}

func (r *Repository) UpdateBalances(ctx context.Context, a *domain.Account) error {
	query := `
		UPDATE accounts
		SET wallet_balance = $1, roi_balance = $2, commission_balance = $3, total_investment = $4, staked_amount = $5
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query, a.WalletBalance, a.ROIBalance, a.CommissionBalance, a.TotalInvestment, a.StakedAmount, a.ID)
	if err != nil {
		zap.L().Error("failed to update account balances", zap.Int64("accountID", a.ID), zap.Error(err))
		return err
	}
	return nil
}

// UpdateLevel moves an account from one level to another. It reports false without error when
// the stored level is no longer from, so a stale evaluation never overwrites a newer one.
func (r *Repository) UpdateLevel(ctx context.Context, id int64, from, to int) (bool, error) {
	query := `UPDATE accounts SET level = $1 WHERE id = $2 AND level = $3`
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to update account level", zap.Int64("accountID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListAll returns the whole population ordered by id, so parents always precede children.
func (r *Repository) ListAll(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

// Upline returns the account followed by its ancestors up to maxDepth, root first.
func (r *Repository) Upline(ctx context.Context, id int64, maxDepth int) ([]domain.Account, error) {
	query := `
		WITH RECURSIVE up AS (
			SELECT id, parent_id, 0 AS depth FROM accounts WHERE id = $1
			UNION ALL
			SELECT a.id, a.parent_id, up.depth + 1
			FROM accounts a JOIN up ON a.id = up.parent_id
			WHERE up.depth < $2
		)
		SELECT ` + prefixed("a") + `
		FROM up JOIN accounts a ON a.id = up.id
		ORDER BY up.depth DESC
	`
	rows, err := r.db.Query(ctx, query, id, maxDepth)
	if err != nil {
		zap.L().Error("can't load upline", zap.Int64("accountID", id), zap.Error(err))
		return nil, err
	}
	accounts, err := collect(rows)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("account %d not found", id))
	}
	return accounts, nil
}

// Downline returns the account and everyone up to maxDepth below it, ordered by id.
func (r *Repository) Downline(ctx context.Context, id int64, maxDepth int) ([]domain.Account, error) {
	query := `
		WITH RECURSIVE down AS (
			SELECT id, 0 AS depth FROM accounts WHERE id = $1
			UNION ALL
			SELECT a.id, down.depth + 1
			FROM accounts a JOIN down ON a.parent_id = down.id
			WHERE down.depth < $2
		)
		SELECT ` + prefixed("a") + `
		FROM down JOIN accounts a ON a.id = down.id
		ORDER BY a.id
	`
	rows, err := r.db.Query(ctx, query, id, maxDepth)
	if err != nil {
		zap.L().Error("can't load downline", zap.Int64("accountID", id), zap.Error(err))
		return nil, err
	}
	accounts, err := collect(rows)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("account %d not found", id))
	}
	return accounts, nil
}

func prefixed(alias string) string {
	return alias + ".id, " + alias + ".parent_id, " + alias + ".level, " + alias + ".wallet_balance, " +
		alias + ".roi_balance, " + alias + ".commission_balance, " + alias + ".total_investment, " +
		alias + ".staked_amount, " + alias + ".created_at"
}
