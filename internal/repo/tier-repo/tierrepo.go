package tierrepo

import (
	"context"
	"encoding/json"

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

func (r *Repository) List(ctx context.Context) ([]domain.Tier, error) {
	query := `
		SELECT level, name, min_investment, daily_roi_percent, commission_percents, profit_share,
		       unlocked_depth, direct_referrals, team_sizes, term_days
		FROM tiers
		ORDER BY level
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list tiers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tiers []domain.Tier
	for rows.Next() {
		var (
			t                             domain.Tier
			commission, profit, teamSizes []byte
		)
		err := rows.Scan(&t.Level, &t.Name, &t.MinInvestment, &t.DailyROIPercent, &commission, &profit,
			&t.UnlockedDepth, &t.DirectReferrals, &teamSizes, &t.TermDays)
		if err != nil {
			zap.L().Error("failed to scan tier", zap.Error(err))
			return nil, err
		}
		if err := unmarshalAll(commission, &t.CommissionPercents, profit, &t.ProfitSharePercents, teamSizes, &t.TeamSizes); err != nil {
			zap.L().Error("malformed tier thresholds", zap.Int("level", t.Level), zap.Error(err))
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

func unmarshalAll(pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		raw, _ := pairs[i].([]byte)
		if len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}
