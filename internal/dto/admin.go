package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

type RunROIRequestDTO struct {
	AsOf string `json:"as_of,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-10-15"`
}

type ReleaseCapitalRequestDTO struct {
	AsOf string `json:"as_of,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2027-01-13"`
}

type ChargePolicyDTO struct {
	Type  string          `json:"type" validate:"required,oneof=percentage fixed" example:"percentage"`
	Value decimal.Decimal `json:"value" swaggertype:"string" example:"2"`
}

type SettingsDTO struct {
	DepositCharge         ChargePolicyDTO `json:"deposit_charge"`
	WithdrawalCharge      ChargePolicyDTO `json:"withdrawal_charge"`
	AllowedWithdrawalDays []int           `json:"allowed_withdrawal_days" example:"1,15"`
	ROIScheduleTime       string          `json:"roi_schedule_time" example:"00:00"`
	MinWithdrawal         decimal.Decimal `json:"min_withdrawal_amount" swaggertype:"string" example:"10"`
	MaxWithdrawal         decimal.Decimal `json:"max_withdrawal_amount" swaggertype:"string" example:"0"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

func SettingsResponse(s *domain.Settings) SettingsDTO {
	days := s.AllowedWithdrawalDays
	if days == nil {
		days = []int{}
	}
	return SettingsDTO{
		DepositCharge:         ChargePolicyDTO{Type: string(s.DepositCharge.Type), Value: s.DepositCharge.Value},
		WithdrawalCharge:      ChargePolicyDTO{Type: string(s.WithdrawalCharge.Type), Value: s.WithdrawalCharge.Value},
		AllowedWithdrawalDays: days,
		ROIScheduleTime:       s.ROIScheduleTime,
		MinWithdrawal:         s.MinWithdrawal,
		MaxWithdrawal:         s.MaxWithdrawal,
		UpdatedAt:             s.UpdatedAt,
	}
}

// UpdateSettingsRequestDTO is a patch: omitted fields keep their current value.
type UpdateSettingsRequestDTO struct {
	DepositCharge         *ChargePolicyDTO `json:"deposit_charge,omitempty"`
	WithdrawalCharge      *ChargePolicyDTO `json:"withdrawal_charge,omitempty"`
	AllowedWithdrawalDays *[]int           `json:"allowed_withdrawal_days,omitempty"`
	ROIScheduleTime       *string          `json:"roi_schedule_time,omitempty"`
	MinWithdrawal         *decimal.Decimal `json:"min_withdrawal_amount,omitempty" swaggertype:"string"`
	MaxWithdrawal         *decimal.Decimal `json:"max_withdrawal_amount,omitempty" swaggertype:"string"`
}

func (r UpdateSettingsRequestDTO) Patch() domain.SettingsPatch {
	p := domain.SettingsPatch{
		AllowedWithdrawalDays: r.AllowedWithdrawalDays,
		ROIScheduleTime:       r.ROIScheduleTime,
		MinWithdrawal:         r.MinWithdrawal,
		MaxWithdrawal:         r.MaxWithdrawal,
	}
	if r.DepositCharge != nil {
		p.DepositCharge = &domain.ChargePolicy{Type: domain.ChargeType(r.DepositCharge.Type), Value: r.DepositCharge.Value}
	}
	if r.WithdrawalCharge != nil {
		p.WithdrawalCharge = &domain.ChargePolicy{Type: domain.ChargeType(r.WithdrawalCharge.Type), Value: r.WithdrawalCharge.Value}
	}
	return p
}

type ROIStatusResponseDTO struct {
	Running     bool               `json:"running"`
	Schedule    string             `json:"schedule" example:"CRON_TZ=UTC 0 0 * * *"`
	LastRun     *time.Time         `json:"last_run,omitempty"`
	NextRun     *time.Time         `json:"next_run,omitempty"`
	LastSummary *domain.ROISummary `json:"last_summary,omitempty"`
}
