package ledgerservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
	"github.com/GlebRadaev/stakeledger/pkg/metrics"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type AccountRepo interface {
	Get(ctx context.Context, id int64) (*domain.Account, error)
	LockForUpdate(ctx context.Context, ids []int64) ([]domain.Account, error)
	UpdateBalances(ctx context.Context, a *domain.Account) error
}

type EntryRepo interface {
	Insert(ctx context.Context, entries []domain.LedgerEntry) error
	ListByAccount(ctx context.Context, accountID int64, limit int, offset int) ([]domain.LedgerEntry, error)
	SumByClass(ctx context.Context, accountID int64) (map[domain.BalanceClass]decimal.Decimal, error)
}

// Posting is one signed movement on one balance class of one account.
type Posting struct {
	AccountID int64
	Kind      domain.EntryKind
	Class     domain.BalanceClass
	Amount    decimal.Decimal
	RefID     string
}

type Drift struct {
	Class  domain.BalanceClass `json:"balance_class"`
	Stored decimal.Decimal     `json:"stored"`
	Ledger decimal.Decimal     `json:"ledger"`
}

type Reconciliation struct {
	AccountID  int64   `json:"account_id"`
	Consistent bool    `json:"consistent"`
	Drifts     []Drift `json:"drifts,omitempty"`
}

type Service struct {
	accounts  AccountRepo
	entries   EntryRepo
	txManager pg.TXManager
}

func New(accounts AccountRepo, entries EntryRepo, txManager pg.TXManager) *Service {
	return &Service{
		accounts:  accounts,
		entries:   entries,
		txManager: txManager,
	}
}

func validClass(c domain.BalanceClass) bool {
	for _, known := range domain.BalanceClasses {
		if c == known {
			return true
		}
	}
	return false
}

// Post applies all postings atomically. Affected accounts are locked in ascending id order,
// and the whole batch fails with InsufficientBalance if any class would end up negative.
func (s *Service) Post(ctx context.Context, postings []Posting) error {
	if len(postings) == 0 {
		return nil
	}
	idSet := make(map[int64]struct{})
	for _, p := range postings {
		if p.Amount.IsZero() {
			return domain.NewError(domain.KindValidation, "posting amount must be non-zero")
		}
		if !p.Amount.Equal(p.Amount.Round(2)) {
			return domain.NewError(domain.KindValidation, fmt.Sprintf("amount %s has more than 2 decimal places", p.Amount))
		}
		if !validClass(p.Class) {
			return domain.NewError(domain.KindValidation, fmt.Sprintf("unknown balance class %q", p.Class))
		}
		idSet[p.AccountID] = struct{}{}
	}
	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.accounts.LockForUpdate(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[int64]*domain.Account, len(locked))
		for i := range locked {
			byID[locked[i].ID] = &locked[i]
		}

		entries := make([]domain.LedgerEntry, 0, len(postings))
		for _, p := range postings {
			acc, ok := byID[p.AccountID]
			if !ok {
				return domain.NewError(domain.KindNotFound, fmt.Sprintf("account %d not found", p.AccountID))
			}
			next := acc.Balance(p.Class).Add(p.Amount)
			if next.IsNegative() {
				return domain.NewError(domain.KindInsufficientBalance, fmt.Sprintf(
					"account %d %s balance %s is less than %s", acc.ID, p.Class, acc.Balance(p.Class), p.Amount.Neg()))
			}
			acc.SetBalance(p.Class, next)
			entries = append(entries, domain.LedgerEntry{
				AccountID:    p.AccountID,
				Kind:         p.Kind,
				BalanceClass: p.Class,
				Amount:       p.Amount,
				RefID:        p.RefID,
			})
		}

		for _, id := range ids {
			if err := s.accounts.UpdateBalances(ctx, byID[id]); err != nil {
				return err
			}
		}
		return s.entries.Insert(ctx, entries)
	})
	if err != nil {
		return err
	}

	for _, p := range postings {
		metrics.LedgerPostingsTotal.WithLabelValues(string(p.Kind)).Inc()
	}
	return nil
}

func (s *Service) Credit(ctx context.Context, accountID int64, kind domain.EntryKind, class domain.BalanceClass, amount decimal.Decimal, refID string) error {
	if !amount.IsPositive() {
		return domain.NewError(domain.KindValidation, "credit amount must be positive")
	}
	return s.Post(ctx, []Posting{{AccountID: accountID, Kind: kind, Class: class, Amount: amount, RefID: refID}})
}

func (s *Service) Debit(ctx context.Context, accountID int64, kind domain.EntryKind, class domain.BalanceClass, amount decimal.Decimal, refID string) error {
	if !amount.IsPositive() {
		return domain.NewError(domain.KindValidation, "debit amount must be positive")
	}
	return s.Post(ctx, []Posting{{AccountID: accountID, Kind: kind, Class: class, Amount: amount.Neg(), RefID: refID}})
}

func (s *Service) BalanceOf(ctx context.Context, accountID int64, class domain.BalanceClass) (decimal.Decimal, error) {
	if !validClass(class) {
		return decimal.Zero, domain.NewError(domain.KindValidation, fmt.Sprintf("unknown balance class %q", class))
	}
	acc, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return acc.Balance(class), nil
}

func (s *Service) History(ctx context.Context, accountID int64, limit, offset int) ([]domain.LedgerEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return nil, err
	}
	return s.entries.ListByAccount(ctx, accountID, limit, offset)
}

// Reconcile compares stored balances with the fold of the account's ledger entries.
func (s *Service) Reconcile(ctx context.Context, accountID int64) (*Reconciliation, error) {
	acc, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	sums, err := s.entries.SumByClass(ctx, accountID)
	if err != nil {
		return nil, err
	}

	rec := &Reconciliation{AccountID: accountID, Consistent: true}
	for _, class := range domain.BalanceClasses {
		stored := acc.Balance(class)
		folded := sums[class]
		if !stored.Equal(folded) {
			rec.Consistent = false
			rec.Drifts = append(rec.Drifts, Drift{Class: class, Stored: stored, Ledger: folded})
		}
	}
	if !rec.Consistent {
		zap.L().Warn("ledger drift detected", zap.Int64("accountID", accountID), zap.Int("classes", len(rec.Drifts)))
	}
	return rec, nil
}
