package commissionservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/charge"
	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
	"github.com/GlebRadaev/stakeledger/internal/referral"
	"github.com/GlebRadaev/stakeledger/internal/service/ledgerservice"
)

//go:generate mockgen -source=commissionservice.go -destination=mock_commissionservice.go -package=commissionservice

type AccountRepo interface {
	Upline(ctx context.Context, id int64, maxDepth int) ([]domain.Account, error)
}

type TierRepo interface {
	List(ctx context.Context) ([]domain.Tier, error)
}

type DistributionRepo interface {
	ExistsForDeposit(ctx context.Context, depositID int64) (bool, error)
	Insert(ctx context.Context, d domain.CommissionDistribution) (bool, error)
}

type Ledger interface {
	Post(ctx context.Context, postings []ledgerservice.Posting) error
}

type Service struct {
	accounts      AccountRepo
	tiers         TierRepo
	distributions DistributionRepo
	ledger        Ledger
	txManager     pg.TXManager
	maxDepth      int
}

func New(accounts AccountRepo, tiers TierRepo, distributions DistributionRepo, ledger Ledger, txManager pg.TXManager, maxDepth int) *Service {
	return &Service{
		accounts:      accounts,
		tiers:         tiers,
		distributions: distributions,
		ledger:        ledger,
		txManager:     txManager,
		maxDepth:      maxDepth,
	}
}

// Distribute pays referral commission on an approved deposit to the depositor's upline.
// The percent at depth d comes from the depositor's tier; an ancestor only receives it when its
// own tier unlocks depth d. A deposit that already has distributions is left alone.
func (s *Service) Distribute(ctx context.Context, deposit *domain.DepositRequest) ([]domain.CommissionDistribution, error) {
	if deposit.Status != domain.StatusApproved {
		return nil, domain.NewError(domain.KindInvalidState, fmt.Sprintf("deposit %d is %s, not approved", deposit.ID, deposit.Status))
	}

	var paid []domain.CommissionDistribution
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		exists, err := s.distributions.ExistsForDeposit(ctx, deposit.ID)
		if err != nil {
			return err
		}
		if exists {
			zap.L().Info("commission already distributed", zap.Int64("depositID", deposit.ID))
			return nil
		}

		tierRows, err := s.tiers.List(ctx)
		if err != nil {
			return err
		}
		table := domain.NewTierTable(tierRows)

		upline, err := s.accounts.Upline(ctx, deposit.AccountID, s.maxDepth)
		if err != nil {
			return err
		}
		graph, err := referral.FromAccounts(upline)
		if err != nil {
			return err
		}
		byID := make(map[int64]domain.Account, len(upline))
		for _, a := range upline {
			byID[a.ID] = a
		}

		depositor, ok := byID[deposit.AccountID]
		if !ok {
			return domain.NewError(domain.KindNotFound, fmt.Sprintf("account %d not found", deposit.AccountID))
		}
		payingTier, ok := table.For(depositor.Level)
		if !ok {
			return domain.NewError(domain.KindInvalidState, "tier table is empty")
		}

		refID := fmt.Sprintf("deposit:%d", deposit.ID)
		var postings []ledgerservice.Posting
		for anc := range graph.Ancestors(deposit.AccountID, s.maxDepth) {
			percent := payingTier.CommissionPercent(anc.Depth)
			if !percent.IsPositive() {
				continue
			}
			ancTier, _ := table.For(byID[anc.ID].Level)
			if !ancTier.Unlocks(anc.Depth) {
				zap.L().Debug("ancestor tier does not unlock depth",
					zap.Int64("ancestorID", anc.ID), zap.Int("depth", anc.Depth), zap.Int("level", ancTier.Level))
				continue
			}
			amount := charge.Percent(deposit.NetAmount, percent)
			if !amount.IsPositive() {
				continue
			}

			dist := domain.CommissionDistribution{
				DepositID:     deposit.ID,
				FromAccountID: deposit.AccountID,
				ToAccountID:   anc.ID,
				Depth:         anc.Depth,
				Percent:       percent,
				Amount:        amount,
			}
			inserted, err := s.distributions.Insert(ctx, dist)
			if err != nil {
				return err
			}
			if !inserted {
				continue
			}
			paid = append(paid, dist)
			postings = append(postings, ledgerservice.Posting{
				AccountID: anc.ID,
				Kind:      domain.KindCommissionCredit,
				Class:     domain.ClassCommission,
				Amount:    amount,
				RefID:     refID,
			})
		}
		return s.ledger.Post(ctx, postings)
	})
	if err != nil {
		zap.L().Error("commission distribution failed", zap.Int64("depositID", deposit.ID), zap.Error(err))
		return nil, err
	}

	if len(paid) > 0 {
		zap.L().Info("commission distributed", zap.Int64("depositID", deposit.ID), zap.Int("recipients", len(paid)))
	}
	return paid, nil
}
