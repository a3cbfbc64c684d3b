package withdrawalservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/calendar"
	"github.com/GlebRadaev/stakeledger/internal/charge"
	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
	"github.com/GlebRadaev/stakeledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/stakeledger/pkg/metrics"
	"github.com/GlebRadaev/stakeledger/pkg/notify"
)

//go:generate mockgen -source=withdrawalservice.go -destination=mock_withdrawalservice.go -package=withdrawalservice

type Repo interface {
	Create(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	Get(ctx context.Context, id int64) (*domain.WithdrawalRequest, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.WithdrawalRequest, error)
	Decide(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.WithdrawalRequest, error)
}

type AccountRepo interface {
	LockForUpdate(ctx context.Context, ids []int64) ([]domain.Account, error)
}

type Settings interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type Ledger interface {
	Post(ctx context.Context, postings []ledgerservice.Posting) error
}

type Decision struct {
	Approve bool
	TxHash  string
	Reason  string
}

type Service struct {
	repo      Repo
	accounts  AccountRepo
	settings  Settings
	ledger    Ledger
	notifier  notify.Notifier
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, accounts AccountRepo, settings Settings, ledger Ledger, notifier notify.Notifier, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		accounts:  accounts,
		settings:  settings,
		ledger:    ledger,
		notifier:  notifier,
		txManager: txManager,
		now:       time.Now,
	}
}

func refID(id int64) string {
	return fmt.Sprintf("withdrawal:%d", id)
}

func checkLimits(gross decimal.Decimal, s *domain.Settings) error {
	if s.MinWithdrawal.IsPositive() && gross.LessThan(s.MinWithdrawal) {
		return domain.NewError(domain.KindValidation, fmt.Sprintf("minimum withdrawal is %s", s.MinWithdrawal.StringFixed(2)))
	}
	if s.MaxWithdrawal.IsPositive() && gross.GreaterThan(s.MaxWithdrawal) {
		return domain.NewError(domain.KindValidation, fmt.Sprintf("maximum withdrawal is %s", s.MaxWithdrawal.StringFixed(2)))
	}
	return nil
}

// Create opens a withdrawal and holds gross from the withdrawable balance, ROI first.
func (s *Service) Create(ctx context.Context, accountID int64, gross decimal.Decimal, walletAddress string) (*domain.WithdrawalRequest, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return nil, domain.NewError(domain.KindValidation, "wallet address is required")
	}
	if !gross.Equal(gross.Round(2)) {
		return nil, domain.NewError(domain.KindValidation, "amount has more than 2 decimal places")
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := calendar.WithdrawalDays(settings.AllowedWithdrawalDays).Check(s.now().UTC()); err != nil {
		return nil, err
	}
	split, err := charge.Calculate(gross, settings.WithdrawalCharge)
	if err != nil {
		return nil, err
	}
	if err := checkLimits(gross, settings); err != nil {
		return nil, err
	}

	var created *domain.WithdrawalRequest
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.accounts.LockForUpdate(ctx, []int64{accountID})
		if err != nil {
			return err
		}
		acc := locked[0]
		if gross.GreaterThan(acc.Withdrawable()) {
			return domain.NewError(domain.KindInsufficientBalance, fmt.Sprintf(
				"withdrawable balance %s is less than %s", acc.Withdrawable().StringFixed(2), gross.StringFixed(2)))
		}
		fromROI := decimal.Min(gross, acc.ROIBalance)
		fromCommission := gross.Sub(fromROI)

		created, err = s.repo.Create(ctx, &domain.WithdrawalRequest{
			AccountID:      accountID,
			GrossAmount:    split.Gross,
			Charge:         split.Charge,
			NetAmount:      split.Net,
			WalletAddress:  walletAddress,
			HeldROI:        fromROI,
			HeldCommission: fromCommission,
		})
		if err != nil {
			return err
		}
		return s.ledger.Post(ctx, holdPostings(created, domain.KindWithdrawalDebit, true))
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("withdrawal created", zap.Int64("withdrawalID", created.ID), zap.Int64("accountID", accountID),
		zap.String("gross", created.GrossAmount.String()))
	return created, nil
}

// holdPostings moves the held split out of (debit) or back into the earnings balances.
func holdPostings(w *domain.WithdrawalRequest, kind domain.EntryKind, debit bool) []ledgerservice.Posting {
	var postings []ledgerservice.Posting
	for _, part := range []struct {
		class  domain.BalanceClass
		amount decimal.Decimal
	}{
		{domain.ClassROI, w.HeldROI},
		{domain.ClassCommission, w.HeldCommission},
	} {
		if !part.amount.IsPositive() {
			continue
		}
		amount := part.amount
		if debit {
			amount = amount.Neg()
		}
		postings = append(postings, ledgerservice.Posting{
			AccountID: w.AccountID,
			Kind:      kind,
			Class:     part.class,
			Amount:    amount,
			RefID:     refID(w.ID),
		})
	}
	return postings
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListByAccount(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

func (s *Service) ListByStatus(ctx context.Context, status domain.Status) ([]domain.WithdrawalRequest, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) Decide(ctx context.Context, id int64, decision Decision) (*domain.WithdrawalRequest, error) {
	decision.TxHash = strings.TrimSpace(decision.TxHash)
	decision.Reason = strings.TrimSpace(decision.Reason)
	if decision.Approve && decision.TxHash == "" {
		return nil, domain.NewError(domain.KindValidation, "settlement tx hash is required to approve")
	}
	if !decision.Approve && decision.Reason == "" {
		return nil, domain.NewError(domain.KindValidation, "rejection reason is required")
	}

	var decided *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		w, err := s.repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if w.Status != domain.StatusPending {
			return domain.NewError(domain.KindInvalidState, fmt.Sprintf("withdrawal %d already %s", id, w.Status))
		}

		if decision.Approve {
			w.Status = domain.StatusApproved
			w.TxHash = decision.TxHash
		} else {
			w.Status = domain.StatusRejected
			w.RejectionReason = decision.Reason
		}
		decided, err = s.repo.Decide(ctx, w)
		if err != nil {
			return err
		}
		if decision.Approve {
			return nil
		}
		return s.ledger.Post(ctx, holdPostings(decided, domain.KindWithdrawalReversal, false))
	})
	if err != nil {
		zap.L().Error("withdrawal decision failed", zap.Int64("withdrawalID", id), zap.Bool("approve", decision.Approve), zap.Error(err))
		return nil, err
	}

	metrics.DecisionsTotal.WithLabelValues("withdrawal", string(decided.Status)).Inc()
	zap.L().Info("withdrawal decided", zap.Int64("withdrawalID", id), zap.String("status", string(decided.Status)))
	s.publish(ctx, decided)
	return decided, nil
}

func (s *Service) publish(ctx context.Context, w *domain.WithdrawalRequest) {
	eventType := notify.WithdrawalApproved
	if w.Status == domain.StatusRejected {
		eventType = notify.WithdrawalRejected
	}
	e := notify.NewEvent(eventType, w.AccountID, w.ID, w.NetAmount.StringFixed(2))
	e.Reason = w.RejectionReason
	e.TxHash = w.TxHash
	if err := s.notifier.Notify(ctx, e); err != nil {
		zap.L().Warn("failed to publish withdrawal event", zap.Int64("withdrawalID", w.ID), zap.Error(err))
	}
}
