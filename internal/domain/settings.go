package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type ChargeType string

const (
	ChargePercentage ChargeType = "percentage"
	ChargeFixed      ChargeType = "fixed"
)

type ChargePolicy struct {
	Type  ChargeType      `json:"type"`
	Value decimal.Decimal `json:"value"`
}

func (p ChargePolicy) Validate() error {
	switch p.Type {
	case ChargePercentage:
		if p.Value.GreaterThan(decimal.NewFromInt(100)) {
			return NewError(KindValidation, "percentage charge cannot exceed 100")
		}
	case ChargeFixed:
	default:
		return NewError(KindValidation, fmt.Sprintf("unknown charge type %q", p.Type))
	}
	if p.Value.IsNegative() {
		return NewError(KindValidation, "charge value cannot be negative")
	}
	return nil
}

type Settings struct {
	DepositCharge         ChargePolicy    `json:"deposit_charge"`
	WithdrawalCharge      ChargePolicy    `json:"withdrawal_charge"`
	AllowedWithdrawalDays []int           `json:"allowed_withdrawal_days"`
	ROIScheduleTime       string          `json:"roi_schedule_time"`
	MinWithdrawal         decimal.Decimal `json:"min_withdrawal_amount"`
	MaxWithdrawal         decimal.Decimal `json:"max_withdrawal_amount"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

func (s Settings) Validate() error {
	if err := s.DepositCharge.Validate(); err != nil {
		return err
	}
	if err := s.WithdrawalCharge.Validate(); err != nil {
		return err
	}
	for _, d := range s.AllowedWithdrawalDays {
		if d < 1 || d > 31 {
			return NewError(KindValidation, fmt.Sprintf("withdrawal day %d out of range 1..31", d))
		}
	}
	if _, _, err := ParseScheduleTime(s.ROIScheduleTime); err != nil {
		return err
	}
	if s.MinWithdrawal.IsNegative() || s.MaxWithdrawal.IsNegative() {
		return NewError(KindValidation, "withdrawal limits cannot be negative")
	}
	if s.MaxWithdrawal.IsPositive() && s.MinWithdrawal.GreaterThan(s.MaxWithdrawal) {
		return NewError(KindValidation, "min withdrawal exceeds max withdrawal")
	}
	return nil
}

// ROICronSpec renders the daily ROI time as a UTC cron spec.
func (s Settings) ROICronSpec() (string, error) {
	h, m, err := ParseScheduleTime(s.ROIScheduleTime)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CRON_TZ=UTC %d %d * * *", m, h), nil
}

func ParseScheduleTime(v string) (hour, minute int, err error) {
	t, perr := time.Parse("15:04", v)
	if perr != nil {
		return 0, 0, NewError(KindValidation, fmt.Sprintf("schedule time %q must be HH:MM", v))
	}
	return t.Hour(), t.Minute(), nil
}

// SettingsPatch carries only the fields an admin wants to change.
type SettingsPatch struct {
	DepositCharge         *ChargePolicy
	WithdrawalCharge      *ChargePolicy
	AllowedWithdrawalDays *[]int
	ROIScheduleTime       *string
	MinWithdrawal         *decimal.Decimal
	MaxWithdrawal         *decimal.Decimal
}

func (p SettingsPatch) Apply(s Settings) (Settings, error) {
	if p.DepositCharge != nil {
		s.DepositCharge = *p.DepositCharge
	}
	if p.WithdrawalCharge != nil {
		s.WithdrawalCharge = *p.WithdrawalCharge
	}
	if p.AllowedWithdrawalDays != nil {
		days := dedupeDays(*p.AllowedWithdrawalDays)
		s.AllowedWithdrawalDays = days
	}
	if p.ROIScheduleTime != nil {
		s.ROIScheduleTime = *p.ROIScheduleTime
	}
	if p.MinWithdrawal != nil {
		s.MinWithdrawal = *p.MinWithdrawal
	}
	if p.MaxWithdrawal != nil {
		s.MaxWithdrawal = *p.MaxWithdrawal
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func dedupeDays(days []int) []int {
	seen := make(map[int]struct{}, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}
