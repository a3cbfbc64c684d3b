package depositrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
)

const depositColumns = `id, account_id, gross_amount, charge, net_amount, method, tx_hash, status, rejection_reason, created_at, decided_at, term_days`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanDeposit(row pgx.Row) (*domain.DepositRequest, error) {
	var d domain.DepositRequest
	err := row.Scan(&d.ID, &d.AccountID, &d.GrossAmount, &d.Charge, &d.NetAmount, &d.Method, &d.TxHash,
		&d.Status, &d.RejectionReason, &d.CreatedAt, &d.DecidedAt, &d.TermDays)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, d *domain.DepositRequest) (*domain.DepositRequest, error) {
	query := `
		INSERT INTO deposits (account_id, gross_amount, charge, net_amount, method, tx_hash, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + depositColumns
	created, err := scanDeposit(r.db.QueryRow(ctx, query, d.AccountID, d.GrossAmount, d.Charge, d.NetAmount,
		d.Method, d.TxHash, domain.StatusPending))
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.NewError(domain.KindDuplicateOperation, fmt.Sprintf("deposit with tx hash %s already submitted", d.TxHash))
		}
		zap.L().Error("can't create deposit", zap.Int64("accountID", d.AccountID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) get(ctx context.Context, query string, id int64) (*domain.DepositRequest, error) {
	d, err := scanDeposit(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("deposit %d not found", id))
		}
		zap.L().Error("can't get deposit", zap.Int64("depositID", id), zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.DepositRequest, error) {
	return r.get(ctx, `SELECT `+depositColumns+` FROM deposits WHERE id = $1`, id)
}

// GetForUpdate locks the request row so concurrent decisions queue behind each other.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.DepositRequest, error) {
	return r.get(ctx, `SELECT `+depositColumns+` FROM deposits WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) Decide(ctx context.Context, d *domain.DepositRequest) (*domain.DepositRequest, error) {
	query := `
		UPDATE deposits
		SET status = $1, charge = $2, net_amount = $3, rejection_reason = $4, term_days = $5, decided_at = NOW()
		WHERE id = $6 AND status = 'pending'
		RETURNING ` + depositColumns
	decided, err := scanDeposit(r.db.QueryRow(ctx, query, d.Status, d.Charge, d.NetAmount, d.RejectionReason, d.TermDays, d.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewError(domain.KindInvalidState, fmt.Sprintf("deposit %d already decided", d.ID))
		}
		zap.L().Error("can't decide deposit", zap.Int64("depositID", d.ID), zap.Error(err))
		return nil, err
	}
	return decided, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.DepositRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.DepositRequest
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			zap.L().Error("can't scan deposit", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *d)
	}
	return deposits, rows.Err()
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int64) ([]domain.DepositRequest, error) {
	return r.list(ctx, `SELECT `+depositColumns+` FROM deposits WHERE account_id = $1 ORDER BY created_at DESC`, accountID)
}

// ListByStatus returns the oldest deposits first; an empty status lists every deposit.
func (r *Repository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.DepositRequest, error) {
	if status == "" {
		return r.list(ctx, `SELECT `+depositColumns+` FROM deposits ORDER BY created_at, id`)
	}
	return r.list(ctx, `SELECT `+depositColumns+` FROM deposits WHERE status = $1 ORDER BY created_at, id`, status)
}

// ListApprovedBetween returns deposits approved on any UTC day in [from, to].
func (r *Repository) ListApprovedBetween(ctx context.Context, from, to time.Time) ([]domain.DepositRequest, error) {
	query := `
		SELECT ` + depositColumns + `
		FROM deposits
		WHERE status = 'approved' AND (decided_at AT TIME ZONE 'UTC')::date BETWEEN $1 AND $2
		ORDER BY id
	`
	return r.list(ctx, query, domain.Day(from), domain.Day(to))
}

// ListMatured returns approved deposits whose term ended at or before asOf and whose principal
// has not been released yet.
func (r *Repository) ListMatured(ctx context.Context, asOf time.Time) ([]domain.DepositRequest, error) {
	query := `
		SELECT ` + depositColumns + `
		FROM deposits
		WHERE status = 'approved' AND term_days > 0
		  AND decided_at + make_interval(days => term_days) <= $1
		  AND NOT EXISTS (SELECT 1 FROM capital_releases c WHERE c.deposit_id = deposits.id)
		ORDER BY id
	`
	return r.list(ctx, query, asOf)
}
