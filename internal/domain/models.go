package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BalanceClass string

const (
	ClassWallet     BalanceClass = "wallet"
	ClassROI        BalanceClass = "roi"
	ClassCommission BalanceClass = "commission"
	ClassInvestment BalanceClass = "investment"
	ClassStaked     BalanceClass = "staked"
)

var BalanceClasses = []BalanceClass{ClassWallet, ClassROI, ClassCommission, ClassInvestment, ClassStaked}

type EntryKind string

const (
	KindDepositCredit      EntryKind = "deposit_credit"
	KindWithdrawalDebit    EntryKind = "withdrawal_debit"
	KindROICredit          EntryKind = "roi_credit"
	KindCommissionCredit   EntryKind = "commission_credit"
	KindPromoCredit        EntryKind = "promo_credit"
	KindWithdrawalReversal EntryKind = "withdrawal_reversal"
	KindCapitalReturn      EntryKind = "capital_return"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Account struct {
	ID                int64           `db:"id"`
	ParentID          *int64          `db:"parent_id"`
	Level             int             `db:"level"`
	WalletBalance     decimal.Decimal `db:"wallet_balance"`
	ROIBalance        decimal.Decimal `db:"roi_balance"`
	CommissionBalance decimal.Decimal `db:"commission_balance"`
	TotalInvestment   decimal.Decimal `db:"total_investment"`
	StakedAmount      decimal.Decimal `db:"staked_amount"`
	CreatedAt         time.Time       `db:"created_at"`
}

func (a *Account) Balance(class BalanceClass) decimal.Decimal {
	switch class {
	case ClassWallet:
		return a.WalletBalance
	case ClassROI:
		return a.ROIBalance
	case ClassCommission:
		return a.CommissionBalance
	case ClassInvestment:
		return a.TotalInvestment
	case ClassStaked:
		return a.StakedAmount
	}
	return decimal.Zero
}

func (a *Account) SetBalance(class BalanceClass, v decimal.Decimal) {
	switch class {
	case ClassWallet:
		a.WalletBalance = v
	case ClassROI:
		a.ROIBalance = v
	case ClassCommission:
		a.CommissionBalance = v
	case ClassInvestment:
		a.TotalInvestment = v
	case ClassStaked:
		a.StakedAmount = v
	}
}

// Withdrawable is the earnings part of the account: ROI plus commission, never principal.
func (a *Account) Withdrawable() decimal.Decimal {
	return a.ROIBalance.Add(a.CommissionBalance)
}

type LedgerEntry struct {
	ID           int64           `db:"id"`
	AccountID    int64           `db:"account_id"`
	Kind         EntryKind       `db:"kind"`
	BalanceClass BalanceClass    `db:"balance_class"`
	Amount       decimal.Decimal `db:"amount"`
	RefID        string          `db:"ref_id"`
	CreatedAt    time.Time       `db:"created_at"`
}

type DepositRequest struct {
	ID              int64           `db:"id"`
	AccountID       int64           `db:"account_id"`
	GrossAmount     decimal.Decimal `db:"gross_amount"`
	Charge          decimal.Decimal `db:"charge"`
	NetAmount       decimal.Decimal `db:"net_amount"`
	Method          string          `db:"method"`
	TxHash          string          `db:"tx_hash"`
	Status          Status          `db:"status"`
	RejectionReason string          `db:"rejection_reason"`
	CreatedAt       time.Time       `db:"created_at"`
	DecidedAt       *time.Time      `db:"decided_at"`
	TermDays        int             `db:"term_days"`
}

// MaturesAt is when the staked principal may be returned. Pending, rejected and open-ended
// deposits never mature.
func (d *DepositRequest) MaturesAt() (time.Time, bool) {
	if d.Status != StatusApproved || d.DecidedAt == nil || d.TermDays <= 0 {
		return time.Time{}, false
	}
	return d.DecidedAt.AddDate(0, 0, d.TermDays), true
}

type WithdrawalRequest struct {
	ID              int64           `db:"id"`
	AccountID       int64           `db:"account_id"`
	GrossAmount     decimal.Decimal `db:"gross_amount"`
	Charge          decimal.Decimal `db:"charge"`
	NetAmount       decimal.Decimal `db:"net_amount"`
	WalletAddress   string          `db:"wallet_address"`
	HeldROI         decimal.Decimal `db:"held_roi"`
	HeldCommission  decimal.Decimal `db:"held_commission"`
	Status          Status          `db:"status"`
	TxHash          string          `db:"tx_hash"`
	RejectionReason string          `db:"rejection_reason"`
	CreatedAt       time.Time       `db:"created_at"`
	DecidedAt       *time.Time      `db:"decided_at"`
}

type CommissionDistribution struct {
	ID            int64           `db:"id"`
	DepositID     int64           `db:"deposit_id"`
	FromAccountID int64           `db:"from_account_id"`
	ToAccountID   int64           `db:"to_account_id"`
	Depth         int             `db:"depth"`
	Percent       decimal.Decimal `db:"percent"`
	Amount        decimal.Decimal `db:"amount"`
}

type ROIAccrual struct {
	ID          int64           `db:"id"`
	AccountID   int64           `db:"account_id"`
	AccrualDate time.Time       `db:"accrual_date"`
	Amount      decimal.Decimal `db:"amount"`
}

type ROISummary struct {
	AccrualDate   time.Time       `json:"accrual_date"`
	Processed     int             `json:"processed"`
	Skipped       int             `json:"skipped"`
	TotalCredited decimal.Decimal `json:"total_credited"`
	Failures      []BatchFailure  `json:"failures,omitempty"`
}

type BatchFailure struct {
	AccountID int64  `json:"account_id"`
	Reason    string `json:"reason"`
}

type LevelChange struct {
	AccountID int64 `json:"account_id"`
	OldLevel  int   `json:"old_level"`
	NewLevel  int   `json:"new_level"`
}

// CapitalRelease marks the principal of one deposit as returned. deposit_id is unique.
type CapitalRelease struct {
	ID         int64           `db:"id"`
	DepositID  int64           `db:"deposit_id"`
	AccountID  int64           `db:"account_id"`
	Amount     decimal.Decimal `db:"amount"`
	ReleasedAt time.Time       `db:"released_at"`
}

type CapitalSummary struct {
	AsOf          time.Time       `json:"as_of"`
	Released      int             `json:"released"`
	Skipped       int             `json:"skipped"`
	TotalReturned decimal.Decimal `json:"total_returned"`
	Failures      []BatchFailure  `json:"failures,omitempty"`
}

// LevelSummary reports one full level recalculation. Skipped counts accounts whose level moved
// between the snapshot and the write.
type LevelSummary struct {
	Changes  []LevelChange  `json:"changes"`
	Skipped  int            `json:"skipped"`
	Failures []BatchFailure `json:"failures,omitempty"`
}

type Promotion struct {
	ID              int64           `db:"id"`
	Name            string          `db:"name"`
	StartDate       time.Time       `db:"start_date"`
	EndDate         time.Time       `db:"end_date"`
	SelfPercent     decimal.Decimal `db:"self_percent"`
	ReferralPercent decimal.Decimal `db:"referral_percent"`
	IsActive        bool            `db:"is_active"`
}

// ActiveAt treats start and end as whole calendar days, both inclusive.
func (p *Promotion) ActiveAt(t time.Time) bool {
	if !p.IsActive {
		return false
	}
	day := truncateDay(t)
	return !day.Before(truncateDay(p.StartDate)) && !day.After(truncateDay(p.EndDate))
}

type RewardType string

const (
	RewardSelf     RewardType = "self"
	RewardReferral RewardType = "referral"
)

type PromotionReward struct {
	ID            int64           `db:"id"`
	PromotionID   int64           `db:"promotion_id"`
	DepositID     int64           `db:"deposit_id"`
	AccountID     int64           `db:"account_id"`
	RewardType    RewardType      `db:"reward_type"`
	FromAccountID int64           `db:"from_account_id"`
	Percent       decimal.Decimal `db:"percent"`
	Amount        decimal.Decimal `db:"amount"`
}

type MigrationResult struct {
	Migrated int `json:"migrated"`
	Skipped  int `json:"skipped"`
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Day returns t as a UTC calendar date at midnight.
func Day(t time.Time) time.Time {
	return truncateDay(t)
}
