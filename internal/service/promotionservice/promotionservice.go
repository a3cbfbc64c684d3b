package promotionservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/charge"
	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
	"github.com/GlebRadaev/stakeledger/internal/service/ledgerservice"
)

//go:generate mockgen -source=promotionservice.go -destination=mock_promotionservice.go -package=promotionservice

type Repo interface {
	Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error)
	Update(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Promotion, error)
	List(ctx context.Context) ([]domain.Promotion, error)
	Active(ctx context.Context, at time.Time) (*domain.Promotion, error)
	InsertReward(ctx context.Context, rw domain.PromotionReward) (bool, error)
	ListRewards(ctx context.Context, promotionID int64) ([]domain.PromotionReward, error)
}

type AccountRepo interface {
	Get(ctx context.Context, id int64) (*domain.Account, error)
}

type DepositRepo interface {
	ListApprovedBetween(ctx context.Context, from time.Time, to time.Time) ([]domain.DepositRequest, error)
}

type Ledger interface {
	Post(ctx context.Context, postings []ledgerservice.Posting) error
}

type Service struct {
	repo      Repo
	accounts  AccountRepo
	deposits  DepositRepo
	ledger    Ledger
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, accounts AccountRepo, deposits DepositRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		accounts:  accounts,
		deposits:  deposits,
		ledger:    ledger,
		txManager: txManager,
		now:       time.Now,
	}
}

var hundred = decimal.NewFromInt(100)

func validate(p *domain.Promotion) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return domain.NewError(domain.KindValidation, "promotion name is required")
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return domain.NewError(domain.KindValidation, "promotion start and end dates are required")
	}
	if domain.Day(p.EndDate).Before(domain.Day(p.StartDate)) {
		return domain.NewError(domain.KindValidation, "promotion ends before it starts")
	}
	for _, pct := range []decimal.Decimal{p.SelfPercent, p.ReferralPercent} {
		if pct.IsNegative() || pct.GreaterThan(hundred) {
			return domain.NewError(domain.KindValidation, "promotion percents must be within 0..100")
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	zap.L().Info("promotion created", zap.Int64("promotionID", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *Service) Update(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Promotion, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Promotion, error) {
	return s.repo.List(ctx)
}

// Active returns the promotion running today, or nil.
func (s *Service) Active(ctx context.Context) (*domain.Promotion, error) {
	return s.repo.Active(ctx, s.now())
}

func (s *Service) Rewards(ctx context.Context, promotionID int64) ([]domain.PromotionReward, error) {
	if _, err := s.repo.Get(ctx, promotionID); err != nil {
		return nil, err
	}
	return s.repo.ListRewards(ctx, promotionID)
}

// Grant pays the rewards of the promotion active when the deposit was approved.
func (s *Service) Grant(ctx context.Context, deposit *domain.DepositRequest) ([]domain.PromotionReward, error) {
	at := s.now()
	if deposit.DecidedAt != nil {
		at = *deposit.DecidedAt
	}
	promo, err := s.repo.Active(ctx, at)
	if err != nil {
		return nil, err
	}
	if promo == nil || !promo.ActiveAt(at) {
		return nil, nil
	}
	granted, _, err := s.grant(ctx, promo, deposit)
	return granted, err
}

// Migrate back-fills rewards for deposits approved inside the promotion window. Rewards that
// already exist, from a live grant or an earlier migration, are counted as skipped.
func (s *Service) Migrate(ctx context.Context, promotionID int64) (*domain.MigrationResult, error) {
	promo, err := s.repo.Get(ctx, promotionID)
	if err != nil {
		return nil, err
	}
	deposits, err := s.deposits.ListApprovedBetween(ctx, promo.StartDate, promo.EndDate)
	if err != nil {
		return nil, err
	}

	result := &domain.MigrationResult{}
	for i := range deposits {
		granted, skipped, err := s.grant(ctx, promo, &deposits[i])
		if err != nil {
			zap.L().Error("promotion migration failed", zap.Int64("promotionID", promotionID),
				zap.Int64("depositID", deposits[i].ID), zap.Error(err))
			return nil, err
		}
		result.Migrated += len(granted)
		result.Skipped += skipped
	}
	zap.L().Info("promotion rewards migrated", zap.Int64("promotionID", promotionID),
		zap.Int("migrated", result.Migrated), zap.Int("skipped", result.Skipped))
	return result, nil
}

func (s *Service) grant(ctx context.Context, promo *domain.Promotion, deposit *domain.DepositRequest) ([]domain.PromotionReward, int, error) {
	var (
		granted []domain.PromotionReward
		skipped int
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		depositor, err := s.accounts.Get(ctx, deposit.AccountID)
		if err != nil {
			return err
		}

		candidates := []domain.PromotionReward{{
			AccountID:  depositor.ID,
			RewardType: domain.RewardSelf,
			Percent:    promo.SelfPercent,
		}}
		if depositor.ParentID != nil {
			candidates = append(candidates, domain.PromotionReward{
				AccountID:  *depositor.ParentID,
				RewardType: domain.RewardReferral,
				Percent:    promo.ReferralPercent,
			})
		}

		refID := fmt.Sprintf("promotion:%d:deposit:%d", promo.ID, deposit.ID)
		var postings []ledgerservice.Posting
		for _, rw := range candidates {
			rw.Amount = charge.Percent(deposit.NetAmount, rw.Percent)
			if !rw.Amount.IsPositive() {
				continue
			}
			rw.PromotionID = promo.ID
			rw.DepositID = deposit.ID
			rw.FromAccountID = deposit.AccountID

			inserted, err := s.repo.InsertReward(ctx, rw)
			if err != nil {
				return err
			}
			if !inserted {
				skipped++
				continue
			}
			granted = append(granted, rw)
			postings = append(postings, ledgerservice.Posting{
				AccountID: rw.AccountID,
				Kind:      domain.KindPromoCredit,
				Class:     domain.ClassCommission,
				Amount:    rw.Amount,
				RefID:     refID,
			})
		}
		return s.ledger.Post(ctx, postings)
	})
	if err != nil {
		return nil, 0, err
	}
	return granted, skipped, nil
}
