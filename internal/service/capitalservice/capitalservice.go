package capitalservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
	"github.com/GlebRadaev/stakeledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/stakeledger/pkg/guard"
	"github.com/GlebRadaev/stakeledger/pkg/logger"
	"github.com/GlebRadaev/stakeledger/pkg/metrics"
	"github.com/GlebRadaev/stakeledger/pkg/notify"
)

//go:generate mockgen -source=capitalservice.go -destination=mock_capitalservice.go -package=capitalservice

const jobName = "capital"

type DepositRepo interface {
	ListMatured(ctx context.Context, asOf time.Time) ([]domain.DepositRequest, error)
}

type ReleaseRepo interface {
	InsertRelease(ctx context.Context, rel domain.CapitalRelease) (bool, error)
}

type Ledger interface {
	Post(ctx context.Context, postings []ledgerservice.Posting) error
}

type Service struct {
	deposits  DepositRepo
	releases  ReleaseRepo
	ledger    Ledger
	notifier  notify.Notifier
	txManager pg.TXManager
	guard     guard.Guard
	now       func() time.Time
}

func New(deposits DepositRepo, releases ReleaseRepo, ledger Ledger, notifier notify.Notifier,
	txManager pg.TXManager, g guard.Guard) *Service {
	return &Service{
		deposits:  deposits,
		releases:  releases,
		ledger:    ledger,
		notifier:  notifier,
		txManager: txManager,
		guard:     g,
		now:       time.Now,
	}
}

// ReleaseMatured returns the staked principal of every deposit whose term ended by asOf to the
// owner's wallet. A zero asOf means now. Each deposit is released at most once, so re-running
// is safe, and one failed deposit does not stop the others.
func (s *Service) ReleaseMatured(ctx context.Context, asOf time.Time) (*domain.CapitalSummary, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}
	asOf = asOf.UTC()
	log := logger.Job(jobName).With(zap.Time("asOf", asOf))

	release, err := s.guard.Acquire(ctx, jobName)
	if err != nil {
		if errors.Is(err, guard.ErrBusy) {
			return nil, domain.NewError(domain.KindInvalidState, "capital release already in progress")
		}
		return nil, err
	}
	defer release()

	started := s.now()
	summary, err := s.run(ctx, asOf, log)
	metrics.ObserveBatch(jobName, started, err)
	if err != nil {
		log.Error("capital release failed", zap.Error(err))
		return nil, err
	}
	log.Info("capital release finished",
		zap.Int("released", summary.Released),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", len(summary.Failures)),
		zap.String("total", summary.TotalReturned.String()))
	return summary, nil
}

func (s *Service) run(ctx context.Context, asOf time.Time, log *zap.Logger) (*domain.CapitalSummary, error) {
	matured, err := s.deposits.ListMatured(ctx, asOf)
	if err != nil {
		return nil, err
	}

	summary := &domain.CapitalSummary{AsOf: asOf, TotalReturned: decimal.Zero}
	for i := range matured {
		if err := ctx.Err(); err != nil {
			log.Warn("capital release interrupted", zap.Error(err))
			break
		}
		dep := &matured[i]
		released, err := s.releaseOne(ctx, dep)
		switch {
		case err != nil:
			log.Error("capital release of deposit failed", zap.Int64("depositID", dep.ID), zap.Error(err))
			summary.Failures = append(summary.Failures, domain.BatchFailure{
				AccountID: dep.AccountID,
				Reason:    fmt.Sprintf("deposit %d: %s", dep.ID, err),
			})
		case !released:
			summary.Skipped++
		default:
			summary.Released++
			summary.TotalReturned = summary.TotalReturned.Add(dep.NetAmount)
			s.publish(ctx, dep)
		}
	}
	return summary, nil
}

// releaseOne claims the deposit's release row and moves the principal from staked to wallet in
// one transaction. It reports false when another run got there first.
func (s *Service) releaseOne(ctx context.Context, dep *domain.DepositRequest) (bool, error) {
	if !dep.NetAmount.IsPositive() {
		return false, nil
	}
	var released bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		inserted, err := s.releases.InsertRelease(ctx, domain.CapitalRelease{
			DepositID: dep.ID,
			AccountID: dep.AccountID,
			Amount:    dep.NetAmount,
		})
		if err != nil || !inserted {
			return err
		}

		refID := fmt.Sprintf("capital:%d", dep.ID)
		err = s.ledger.Post(ctx, []ledgerservice.Posting{
			{AccountID: dep.AccountID, Kind: domain.KindCapitalReturn, Class: domain.ClassStaked, Amount: dep.NetAmount.Neg(), RefID: refID},
			{AccountID: dep.AccountID, Kind: domain.KindCapitalReturn, Class: domain.ClassWallet, Amount: dep.NetAmount, RefID: refID},
		})
		if err != nil {
			return err
		}
		released = true
		return nil
	})
	return released, err
}

func (s *Service) publish(ctx context.Context, dep *domain.DepositRequest) {
	e := notify.NewEvent(notify.CapitalReturned, dep.AccountID, dep.ID, dep.NetAmount.StringFixed(2))
	if err := s.notifier.Notify(ctx, e); err != nil {
		zap.L().Warn("failed to publish capital release event", zap.Int64("depositID", dep.ID), zap.Error(err))
	}
}
