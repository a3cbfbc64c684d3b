package withdrawalrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
)

const withdrawalColumns = `id, account_id, gross_amount, charge, net_amount, wallet_address, held_roi, held_commission, status, tx_hash, rejection_reason, created_at, decided_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var w domain.WithdrawalRequest
	err := row.Scan(&w.ID, &w.AccountID, &w.GrossAmount, &w.Charge, &w.NetAmount, &w.WalletAddress,
		&w.HeldROI, &w.HeldCommission, &w.Status, &w.TxHash, &w.RejectionReason, &w.CreatedAt, &w.DecidedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) Create(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
		INSERT INTO withdrawals (account_id, gross_amount, charge, net_amount, wallet_address, held_roi, held_commission, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + withdrawalColumns
	created, err := scanWithdrawal(r.db.QueryRow(ctx, query, w.AccountID, w.GrossAmount, w.Charge, w.NetAmount,
		w.WalletAddress, w.HeldROI, w.HeldCommission, domain.StatusPending))
	if err != nil {
		zap.L().Error("can't create withdrawal", zap.Int64("accountID", w.AccountID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) get(ctx context.Context, query string, id int64) (*domain.WithdrawalRequest, error) {
	w, err := scanWithdrawal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("withdrawal %d not found", id))
		}
		zap.L().Error("can't get withdrawal", zap.Int64("withdrawalID", id), zap.Error(err))
		return nil, err
	}
	return w, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	return r.get(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1`, id)
}

func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	return r.get(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) Decide(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
		UPDATE withdrawals
		SET status = $1, tx_hash = $2, rejection_reason = $3, decided_at = NOW()
		WHERE id = $4 AND status = 'pending'
		RETURNING ` + withdrawalColumns
	decided, err := scanWithdrawal(r.db.QueryRow(ctx, query, w.Status, w.TxHash, w.RejectionReason, w.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewError(domain.KindInvalidState, fmt.Sprintf("withdrawal %d already decided", w.ID))
		}
		zap.L().Error("can't decide withdrawal", zap.Int64("withdrawalID", w.ID), zap.Error(err))
		return nil, err
	}
	return decided, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalRequest
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("can't scan withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *w)
	}
	return withdrawals, rows.Err()
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error) {
	return r.list(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE account_id = $1 ORDER BY created_at DESC`, accountID)
}

// ListByStatus returns the oldest withdrawals first; an empty status lists every withdrawal.
func (r *Repository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.WithdrawalRequest, error) {
	if status == "" {
		return r.list(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals ORDER BY created_at, id`)
	}
	return r.list(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE status = $1 ORDER BY created_at, id`, status)
}
