package promotionrepo

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

const promotionColumns = `id, name, start_date, end_date, self_percent, referral_percent, is_active`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPromotion(row pgx.Row) (*domain.Promotion, error) {
	var p domain.Promotion
	if err := row.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.SelfPercent, &p.ReferralPercent, &p.IsActive); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	query := `
		INSERT INTO promotions (name, start_date, end_date, self_percent, referral_percent, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + promotionColumns
	created, err := scanPromotion(r.db.QueryRow(ctx, query, p.Name, domain.Day(p.StartDate), domain.Day(p.EndDate),
		p.SelfPercent, p.ReferralPercent, p.IsActive))
	if err != nil {
		zap.L().Error("can't create promotion", zap.String("name", p.Name), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	query := `
		UPDATE promotions
		SET name = $1, start_date = $2, end_date = $3, self_percent = $4, referral_percent = $5, is_active = $6
		WHERE id = $7 AND deleted_at IS NULL
		RETURNING ` + promotionColumns
	updated, err := scanPromotion(r.db.QueryRow(ctx, query, p.Name, domain.Day(p.StartDate), domain.Day(p.EndDate),
		p.SelfPercent, p.ReferralPercent, p.IsActive, p.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("promotion %d not found", p.ID))
		}
		zap.L().Error("can't update promotion", zap.Int64("promotionID", p.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Delete is soft: granted rewards keep pointing at the row.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `UPDATE promotions SET deleted_at = NOW(), is_active = FALSE WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete promotion", zap.Int64("promotionID", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewError(domain.KindNotFound, fmt.Sprintf("promotion %d not found", id))
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1 AND deleted_at IS NULL`
	p, err := scanPromotion(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("promotion %d not found", id))
		}
		zap.L().Error("can't get promotion", zap.Int64("promotionID", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE deleted_at IS NULL ORDER BY start_date DESC, id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list promotions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var promotions []domain.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			zap.L().Error("can't scan promotion", zap.Error(err))
			return nil, err
		}
		promotions = append(promotions, *p)
	}
	return promotions, rows.Err()
}

// Active returns the newest promotion running on the given day, or nil.
func (r *Repository) Active(ctx context.Context, at time.Time) (*domain.Promotion, error) {
	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE is_active AND deleted_at IS NULL AND start_date <= $1 AND end_date >= $1
		ORDER BY start_date DESC, id DESC
		LIMIT 1
	`
	p, err := scanPromotion(r.db.QueryRow(ctx, query, domain.Day(at)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get active promotion", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// InsertReward reports false when the (promotion, deposit, account, type) reward already exists.
func (r *Repository) InsertReward(ctx context.Context, rw domain.PromotionReward) (bool, error) {
	query := `
		INSERT INTO promotion_rewards (promotion_id, deposit_id, account_id, reward_type, from_account_id, percent, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (promotion_id, deposit_id, account_id, reward_type) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, rw.PromotionID, rw.DepositID, rw.AccountID, rw.RewardType, rw.FromAccountID,
		rw.Percent, rw.Amount)
	if err != nil {
		zap.L().Error("can't insert promotion reward", zap.Int64("promotionID", rw.PromotionID),
			zap.Int64("depositID", rw.DepositID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListRewards(ctx context.Context, promotionID int64) ([]domain.PromotionReward, error) {
	query := `
		SELECT id, promotion_id, deposit_id, account_id, reward_type, from_account_id, percent, amount
		FROM promotion_rewards
		WHERE promotion_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, promotionID)
	if err != nil {
		zap.L().Error("can't list promotion rewards", zap.Int64("promotionID", promotionID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.PromotionReward
	for rows.Next() {
		var rw domain.PromotionReward
		err := rows.Scan(&rw.ID, &rw.PromotionID, &rw.DepositID, &rw.AccountID, &rw.RewardType, &rw.FromAccountID,
			&rw.Percent, &rw.Amount)
		if err != nil {
			zap.L().Error("can't scan promotion reward", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, rw)
	}
	return rewards, rows.Err()
}
