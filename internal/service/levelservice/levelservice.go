package levelservice

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/referral"
	"github.com/GlebRadaev/stakeledger/pkg/guard"
	"github.com/GlebRadaev/stakeledger/pkg/logger"
	"github.com/GlebRadaev/stakeledger/pkg/metrics"
)

//go:generate mockgen -source=levelservice.go -destination=mock_levelservice.go -package=levelservice

const jobName = "levels"

type AccountRepo interface {
	ListAll(ctx context.Context) ([]domain.Account, error)
	Downline(ctx context.Context, id int64, maxDepth int) ([]domain.Account, error)
	UpdateLevel(ctx context.Context, id int64, from, to int) (bool, error)
}

type TierRepo interface {
	List(ctx context.Context) ([]domain.Tier, error)
}

type Service struct {
	accounts AccountRepo
	tiers    TierRepo
	guard    guard.Guard
	workers  int
}

func New(accounts AccountRepo, tiers TierRepo, g guard.Guard, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		accounts: accounts,
		tiers:    tiers,
		guard:    g,
		workers:  workers,
	}
}

func (s *Service) table(ctx context.Context) (*domain.TierTable, error) {
	rows, err := s.tiers.List(ctx)
	if err != nil {
		return nil, err
	}
	table := domain.NewTierTable(rows)
	if _, ok := table.Lowest(); !ok {
		return nil, domain.NewError(domain.KindInvalidState, "tier table is empty")
	}
	return table, nil
}

func evaluate(acc domain.Account, graph *referral.Graph, table *domain.TierTable) (domain.LevelChange, bool) {
	tier, _ := table.Select(domain.Metrics{
		Staked: acc.StakedAmount,
		Team:   graph.TeamCounts(acc.ID, table.TeamDepth()),
	})
	if tier.Level == acc.Level {
		return domain.LevelChange{}, false
	}
	return domain.LevelChange{AccountID: acc.ID, OldLevel: acc.Level, NewLevel: tier.Level}, true
}

// Recompute re-evaluates one account and stores its new tier. It returns nil when the tier is
// unchanged or the stored level moved since it was read.
func (s *Service) Recompute(ctx context.Context, accountID int64) (*domain.LevelChange, error) {
	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}
	team, err := s.accounts.Downline(ctx, accountID, table.TeamDepth())
	if err != nil {
		return nil, err
	}
	graph, err := referral.FromAccounts(team)
	if err != nil {
		return nil, err
	}

	var self domain.Account
	for _, a := range team {
		if a.ID == accountID {
			self = a
			break
		}
	}
	if self.ID != accountID {
		return nil, domain.NewError(domain.KindNotFound, "account not found")
	}

	change, changed := evaluate(self, graph, table)
	if !changed {
		return nil, nil
	}
	updated, err := s.accounts.UpdateLevel(ctx, accountID, change.OldLevel, change.NewLevel)
	if err != nil {
		return nil, err
	}
	if !updated {
		zap.L().Warn("account level changed concurrently, skipping", zap.Int64("accountID", accountID))
		return nil, nil
	}
	zap.L().Info("account level changed",
		zap.Int64("accountID", accountID), zap.Int("old", change.OldLevel), zap.Int("new", change.NewLevel))
	return &change, nil
}

// RecomputeAll evaluates every account against one snapshot of the population, then writes the
// changes. Writes never feed back into the evaluation of other accounts. A failed write is
// reported in the summary and does not stop the others.
func (s *Service) RecomputeAll(ctx context.Context) (*domain.LevelSummary, error) {
	log := logger.Job(jobName)
	release, err := s.guard.Acquire(ctx, jobName)
	if err != nil {
		if errors.Is(err, guard.ErrBusy) {
			return nil, domain.NewError(domain.KindInvalidState, "level recalculation already in progress")
		}
		return nil, err
	}
	defer release()

	started := time.Now()
	summary, err := s.recomputeAll(ctx, log)
	metrics.ObserveBatch(jobName, started, err)
	if err != nil {
		log.Error("level recalculation failed", zap.Error(err))
		return nil, err
	}
	log.Info("level recalculation finished",
		zap.Int("changed", len(summary.Changes)), zap.Int("skipped", summary.Skipped), zap.Int("failed", len(summary.Failures)))
	return summary, nil
}

func (s *Service) recomputeAll(ctx context.Context, log *zap.Logger) (*domain.LevelSummary, error) {
	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}
	population, err := s.accounts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	graph, err := referral.FromAccounts(population)
	if err != nil {
		return nil, err
	}

	var pending []domain.LevelChange
	for _, acc := range population {
		if change, ok := evaluate(acc, graph, table); ok {
			pending = append(pending, change)
		}
	}

	var mu sync.Mutex
	summary := &domain.LevelSummary{Changes: make([]domain.LevelChange, 0, len(pending))}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, change := range pending {
		if gctx.Err() != nil {
			break
		}
		change := change
		g.Go(func() error {
			updated, err := s.accounts.UpdateLevel(gctx, change.AccountID, change.OldLevel, change.NewLevel)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				log.Error("failed to store level", zap.Int64("accountID", change.AccountID), zap.Error(err))
				summary.Failures = append(summary.Failures, domain.BatchFailure{AccountID: change.AccountID, Reason: err.Error()})
			case !updated:
				log.Warn("level changed since snapshot, skipping", zap.Int64("accountID", change.AccountID))
				summary.Skipped++
			default:
				summary.Changes = append(summary.Changes, change)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(summary.Changes, func(i, j int) bool { return summary.Changes[i].AccountID < summary.Changes[j].AccountID })
	sort.Slice(summary.Failures, func(i, j int) bool { return summary.Failures[i].AccountID < summary.Failures[j].AccountID })
	return summary, nil
}
