package roiservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/charge"
	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
	"github.com/GlebRadaev/stakeledger/internal/referral"
	"github.com/GlebRadaev/stakeledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/stakeledger/pkg/guard"
	"github.com/GlebRadaev/stakeledger/pkg/logger"
	"github.com/GlebRadaev/stakeledger/pkg/metrics"
	"github.com/GlebRadaev/stakeledger/pkg/workerpool"
)

//go:generate mockgen -source=roiservice.go -destination=mock_roiservice.go -package=roiservice

const jobName = "roi"

type AccountRepo interface {
	ListAll(ctx context.Context) ([]domain.Account, error)
}

type TierRepo interface {
	List(ctx context.Context) ([]domain.Tier, error)
}

type AccrualRepo interface {
	InsertAccrual(ctx context.Context, a domain.ROIAccrual) (bool, error)
}

type Ledger interface {
	Post(ctx context.Context, postings []ledgerservice.Posting) error
}

type Status struct {
	Running     bool               `json:"running"`
	LastRun     *time.Time         `json:"last_run,omitempty"`
	LastSummary *domain.ROISummary `json:"last_summary,omitempty"`
}

type Service struct {
	accounts  AccountRepo
	tiers     TierRepo
	accruals  AccrualRepo
	ledger    Ledger
	txManager pg.TXManager
	guard     guard.Guard
	pool      workerpool.WorkerPoolI
	maxDepth  int
	now       func() time.Time

	mu     sync.Mutex
	status Status
}

func New(accounts AccountRepo, tiers TierRepo, accruals AccrualRepo, ledger Ledger, txManager pg.TXManager,
	g guard.Guard, pool workerpool.WorkerPoolI, maxDepth int) *Service {
	return &Service{
		accounts:  accounts,
		tiers:     tiers,
		accruals:  accruals,
		ledger:    ledger,
		txManager: txManager,
		guard:     g,
		pool:      pool,
		maxDepth:  maxDepth,
		now:       time.Now,
	}
}

type outcome int

const (
	outcomePaid outcome = iota
	outcomeAlreadyPaid
	outcomeNothingDue
)

// RunDaily credits one day of ROI to every staking account. A zero asOf means today (UTC).
// Accounts already paid for the date are skipped, so re-running a date is safe.
func (s *Service) RunDaily(ctx context.Context, asOf time.Time) (*domain.ROISummary, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}
	date := domain.Day(asOf)
	log := logger.Job(jobName).With(zap.Time("date", date))

	release, err := s.guard.Acquire(ctx, jobName)
	if err != nil {
		if errors.Is(err, guard.ErrBusy) {
			return nil, domain.NewError(domain.KindInvalidState, "roi run already in progress")
		}
		return nil, err
	}
	defer release()

	started := s.now()
	s.setRunning(true)
	summary, err := s.run(ctx, date, log)
	s.finish(started, summary, err)
	metrics.ObserveBatch(jobName, started, err)
	if err != nil {
		log.Error("roi run failed", zap.Error(err))
		return nil, err
	}

	log.Info("roi run finished",
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", len(summary.Failures)),
		zap.String("total", summary.TotalCredited.String()))
	return summary, nil
}

func (s *Service) run(ctx context.Context, date time.Time, log *zap.Logger) (*domain.ROISummary, error) {
	tierRows, err := s.tiers.List(ctx)
	if err != nil {
		return nil, err
	}
	table := domain.NewTierTable(tierRows)

	population, err := s.accounts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	graph, err := referral.FromAccounts(population)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Account, len(population))
	for _, a := range population {
		byID[a.ID] = a
	}

	summary := &domain.ROISummary{AccrualDate: date, TotalCredited: decimal.Zero}
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	record := func(accountID int64, o outcome, amount decimal.Decimal, err error) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case err != nil:
			summary.Failures = append(summary.Failures, domain.BatchFailure{AccountID: accountID, Reason: err.Error()})
		case o == outcomePaid:
			summary.Processed++
			summary.TotalCredited = summary.TotalCredited.Add(amount)
		default:
			summary.Skipped++
		}
	}

	for _, acc := range population {
		if !acc.StakedAmount.IsPositive() {
			continue
		}
		acc := acc
		wg.Add(1)
		err := s.pool.AddTask(ctx, func() error {
			defer wg.Done()
			o, amount, err := s.accrue(ctx, acc, date, table, graph, byID)
			if err != nil {
				log.Error("roi accrual failed", zap.Int64("accountID", acc.ID), zap.Error(err))
			}
			record(acc.ID, o, amount, err)
			return nil
		})
		if err != nil {
			// Stopped between accounts: everything already accrued is complete and idempotent.
			wg.Done()
			log.Warn("roi run interrupted", zap.Error(err))
			break
		}
	}
	wg.Wait()
	return summary, nil
}

func (s *Service) accrue(ctx context.Context, acc domain.Account, date time.Time, table *domain.TierTable,
	graph *referral.Graph, byID map[int64]domain.Account) (outcome, decimal.Decimal, error) {
	tier, ok := table.For(acc.Level)
	if !ok {
		return outcomeNothingDue, decimal.Zero, domain.NewError(domain.KindInvalidState, "tier table is empty")
	}
	amount := charge.Percent(acc.StakedAmount, tier.DailyROIPercent)
	if !amount.IsPositive() {
		return outcomeNothingDue, decimal.Zero, nil
	}

	refID := fmt.Sprintf("roi:%d:%s", acc.ID, date.Format(time.DateOnly))
	result := outcomePaid
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		inserted, err := s.accruals.InsertAccrual(ctx, domain.ROIAccrual{AccountID: acc.ID, AccrualDate: date, Amount: amount})
		if err != nil {
			return err
		}
		if !inserted {
			result = outcomeAlreadyPaid
			return nil
		}

		postings := []ledgerservice.Posting{{
			AccountID: acc.ID,
			Kind:      domain.KindROICredit,
			Class:     domain.ClassROI,
			Amount:    amount,
			RefID:     refID,
		}}
		postings = append(postings, s.profitShare(acc.ID, amount, refID, table, graph, byID)...)
		return s.ledger.Post(ctx, postings)
	})
	if err != nil {
		return outcomePaid, decimal.Zero, err
	}
	return result, amount, nil
}

// profitShare pays uplines from depth 2 a share of the ROI, using each upline's own tier.
func (s *Service) profitShare(accountID int64, roi decimal.Decimal, refID string, table *domain.TierTable,
	graph *referral.Graph, byID map[int64]domain.Account) []ledgerservice.Posting {
	var postings []ledgerservice.Posting
	for anc := range graph.Ancestors(accountID, s.maxDepth) {
		if anc.Depth < 2 {
			continue
		}
		tier, ok := table.For(byID[anc.ID].Level)
		if !ok || !tier.Unlocks(anc.Depth) {
			continue
		}
		share := charge.Percent(roi, tier.ProfitSharePercent(anc.Depth))
		if !share.IsPositive() {
			continue
		}
		postings = append(postings, ledgerservice.Posting{
			AccountID: anc.ID,
			Kind:      domain.KindCommissionCredit,
			Class:     domain.ClassCommission,
			Amount:    share,
			RefID:     refID,
		})
	}
	return postings
}

func (s *Service) setRunning(running bool) {
	s.mu.Lock()
	s.status.Running = running
	s.mu.Unlock()
}

func (s *Service) finish(started time.Time, summary *domain.ROISummary, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Running = false
	s.status.LastRun = &started
	if err == nil {
		s.status.LastSummary = summary
	}
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
