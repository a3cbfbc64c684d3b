package depositservice

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/charge"
	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
	"github.com/GlebRadaev/stakeledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/stakeledger/pkg/metrics"
	"github.com/GlebRadaev/stakeledger/pkg/notify"
)

//go:generate mockgen -source=depositservice.go -destination=mock_depositservice.go -package=depositservice

type Repo interface {
	Create(ctx context.Context, d *domain.DepositRequest) (*domain.DepositRequest, error)
	Get(ctx context.Context, id int64) (*domain.DepositRequest, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.DepositRequest, error)
	Decide(ctx context.Context, d *domain.DepositRequest) (*domain.DepositRequest, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.DepositRequest, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.DepositRequest, error)
}

type AccountRepo interface {
	Get(ctx context.Context, id int64) (*domain.Account, error)
	Upline(ctx context.Context, id int64, maxDepth int) ([]domain.Account, error)
	LockForUpdate(ctx context.Context, ids []int64) ([]domain.Account, error)
}

type TierRepo interface {
	List(ctx context.Context) ([]domain.Tier, error)
}

type Settings interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type Ledger interface {
	Post(ctx context.Context, postings []ledgerservice.Posting) error
}

type CommissionEngine interface {
	Distribute(ctx context.Context, deposit *domain.DepositRequest) ([]domain.CommissionDistribution, error)
}

type PromotionEngine interface {
	Grant(ctx context.Context, deposit *domain.DepositRequest) ([]domain.PromotionReward, error)
}

type LevelEngine interface {
	Recompute(ctx context.Context, accountID int64) (*domain.LevelChange, error)
}

type Decision struct {
	Approve bool
	Reason  string
}

// Outcome is everything one deposit decision caused.
type Outcome struct {
	Deposit     *domain.DepositRequest          `json:"deposit"`
	Commissions []domain.CommissionDistribution `json:"commissions,omitempty"`
	Rewards     []domain.PromotionReward        `json:"promotion_rewards,omitempty"`
	LevelChange *domain.LevelChange             `json:"level_change,omitempty"`
}

type Service struct {
	repo        Repo
	accounts    AccountRepo
	tiers       TierRepo
	settings    Settings
	ledger      Ledger
	commissions CommissionEngine
	promotions  PromotionEngine
	levels      LevelEngine
	notifier    notify.Notifier
	txManager   pg.TXManager
	maxDepth    int
}

func New(repo Repo, accounts AccountRepo, tiers TierRepo, settings Settings, ledger Ledger, commissions CommissionEngine,
	promotions PromotionEngine, levels LevelEngine, notifier notify.Notifier, txManager pg.TXManager, maxDepth int) *Service {
	return &Service{
		repo:        repo,
		accounts:    accounts,
		tiers:       tiers,
		settings:    settings,
		ledger:      ledger,
		commissions: commissions,
		promotions:  promotions,
		levels:      levels,
		notifier:    notifier,
		txManager:   txManager,
		maxDepth:    maxDepth,
	}
}

// Create files a pending deposit. Charge and net are a preview computed from the current
// settings; approval recomputes them.
func (s *Service) Create(ctx context.Context, accountID int64, gross decimal.Decimal, method, txHash string) (*domain.DepositRequest, error) {
	method, txHash = strings.TrimSpace(method), strings.TrimSpace(txHash)
	if method == "" || txHash == "" {
		return nil, domain.NewError(domain.KindValidation, "method and tx hash are required")
	}
	if !gross.Equal(gross.Round(2)) {
		return nil, domain.NewError(domain.KindValidation, "amount has more than 2 decimal places")
	}
	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	split, err := charge.Calculate(gross, settings.DepositCharge)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.DepositRequest{
		AccountID:   accountID,
		GrossAmount: split.Gross,
		Charge:      split.Charge,
		NetAmount:   split.Net,
		Method:      method,
		TxHash:      txHash,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("deposit created", zap.Int64("depositID", created.ID), zap.Int64("accountID", accountID))
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.DepositRequest, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListByAccount(ctx context.Context, accountID int64) ([]domain.DepositRequest, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

// ListByStatus returns deposits in the given status, or all of them when status is empty.
func (s *Service) ListByStatus(ctx context.Context, status domain.Status) ([]domain.DepositRequest, error) {
	return s.repo.ListByStatus(ctx, status)
}

// Decide approves or rejects a pending deposit. A rejection reason is optional.
func (s *Service) Decide(ctx context.Context, id int64, decision Decision) (*Outcome, error) {
	var out *Outcome
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		dep, err := s.repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if dep.Status != domain.StatusPending {
			return domain.NewError(domain.KindInvalidState, fmt.Sprintf("deposit %d already %s", id, dep.Status))
		}
		if decision.Approve {
			out, err = s.approve(ctx, dep)
			return err
		}
		dep.Status = domain.StatusRejected
		dep.RejectionReason = strings.TrimSpace(decision.Reason)
		decided, err := s.repo.Decide(ctx, dep)
		if err != nil {
			return err
		}
		out = &Outcome{Deposit: decided}
		return nil
	})
	if err != nil {
		zap.L().Error("deposit decision failed", zap.Int64("depositID", id), zap.Bool("approve", decision.Approve), zap.Error(err))
		return nil, err
	}

	metrics.DecisionsTotal.WithLabelValues("deposit", string(out.Deposit.Status)).Inc()
	zap.L().Info("deposit decided", zap.Int64("depositID", id), zap.String("status", string(out.Deposit.Status)))
	s.publish(ctx, out.Deposit)
	return out, nil
}

// approve runs the approval chain inside the caller's transaction; any failure rolls back all of it.
func (s *Service) approve(ctx context.Context, dep *domain.DepositRequest) (*Outcome, error) {
	depositor, err := s.lockUpline(ctx, dep.AccountID)
	if err != nil {
		return nil, err
	}
	if dep.TermDays, err = s.termFor(ctx, depositor.Level); err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	split, err := charge.Calculate(dep.GrossAmount, settings.DepositCharge)
	if err != nil {
		return nil, err
	}
	dep.Charge, dep.NetAmount = split.Charge, split.Net
	dep.Status = domain.StatusApproved

	decided, err := s.repo.Decide(ctx, dep)
	if err != nil {
		return nil, err
	}

	refID := fmt.Sprintf("deposit:%d", decided.ID)
	postings := []ledgerservice.Posting{
		{AccountID: decided.AccountID, Kind: domain.KindDepositCredit, Class: domain.ClassInvestment, Amount: decided.NetAmount, RefID: refID},
		{AccountID: decided.AccountID, Kind: domain.KindDepositCredit, Class: domain.ClassStaked, Amount: decided.NetAmount, RefID: refID},
	}
	if decided.NetAmount.IsPositive() {
		if err := s.ledger.Post(ctx, postings); err != nil {
			return nil, err
		}
	}

	out := &Outcome{Deposit: decided}
	if out.Commissions, err = s.commissions.Distribute(ctx, decided); err != nil {
		return nil, err
	}
	if out.Rewards, err = s.promotions.Grant(ctx, decided); err != nil {
		return nil, err
	}
	if out.LevelChange, err = s.levels.Recompute(ctx, decided.AccountID); err != nil {
		return nil, err
	}
	return out, nil
}

// lockUpline takes the row locks of the depositor and every ancestor up front, in ascending id
// order, so later postings within the chain never wait on a lock held by a concurrent ROI run.
// It returns the locked depositor row.
func (s *Service) lockUpline(ctx context.Context, accountID int64) (*domain.Account, error) {
	upline, err := s.accounts.Upline(ctx, accountID, s.maxDepth)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(upline))
	for _, a := range upline {
		ids = append(ids, a.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	locked, err := s.accounts.LockForUpdate(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range locked {
		if locked[i].ID == accountID {
			return &locked[i], nil
		}
	}
	return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("account %d not found", accountID))
}

// termFor is the lock-in term of the depositor's current tier; the deposit keeps it even if the
// tier table changes later.
func (s *Service) termFor(ctx context.Context, level int) (int, error) {
	rows, err := s.tiers.List(ctx)
	if err != nil {
		return 0, err
	}
	tier, ok := domain.NewTierTable(rows).For(level)
	if !ok {
		return 0, nil
	}
	return tier.TermDays, nil
}

func (s *Service) publish(ctx context.Context, dep *domain.DepositRequest) {
	eventType := notify.DepositApproved
	if dep.Status == domain.StatusRejected {
		eventType = notify.DepositRejected
	}
	e := notify.NewEvent(eventType, dep.AccountID, dep.ID, dep.NetAmount.StringFixed(2))
	e.Reason = dep.RejectionReason
	e.TxHash = dep.TxHash
	if err := s.notifier.Notify(ctx, e); err != nil {
		zap.L().Warn("failed to publish deposit event", zap.Int64("depositID", dep.ID), zap.Error(err))
	}
}
