package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

type CreateAccountRequestDTO struct {
	ParentID *int64 `json:"parent_id,omitempty" example:"1"`
}

type AccountResponseDTO struct {
	ID        int64     `json:"id" example:"2"`
	ParentID  *int64    `json:"parent_id,omitempty" example:"1"`
	Level     int       `json:"level" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2026-10-01T10:00:00Z"`
}

func AccountResponse(a *domain.Account) AccountResponseDTO {
	return AccountResponseDTO{ID: a.ID, ParentID: a.ParentID, Level: a.Level, CreatedAt: a.CreatedAt}
}

type BalanceResponseDTO struct {
	Wallet          decimal.Decimal `json:"wallet" swaggertype:"string" example:"0.00"`
	ROI             decimal.Decimal `json:"roi" swaggertype:"string" example:"12.50"`
	Commission      decimal.Decimal `json:"commission" swaggertype:"string" example:"40.00"`
	Withdrawable    decimal.Decimal `json:"withdrawable" swaggertype:"string" example:"52.50"`
	TotalInvestment decimal.Decimal `json:"total_investment" swaggertype:"string" example:"1000.00"`
	Staked          decimal.Decimal `json:"staked" swaggertype:"string" example:"1000.00"`
	Level           int             `json:"level" example:"2"`
}

func BalanceResponse(a *domain.Account) BalanceResponseDTO {
	return BalanceResponseDTO{
		Wallet:          a.WalletBalance,
		ROI:             a.ROIBalance,
		Commission:      a.CommissionBalance,
		Withdrawable:    a.Withdrawable(),
		TotalInvestment: a.TotalInvestment,
		Staked:          a.StakedAmount,
		Level:           a.Level,
	}
}

type LedgerEntryResponseDTO struct {
	ID           int64           `json:"id" example:"10"`
	Kind         string          `json:"kind" example:"roi_credit"`
	BalanceClass string          `json:"balance_class" example:"roi"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"5.00"`
	RefID        string          `json:"ref_id" example:"roi:2:2026-10-15"`
	CreatedAt    time.Time       `json:"created_at" example:"2026-10-15T00:00:01Z"`
}

func LedgerResponse(entries []domain.LedgerEntry) []LedgerEntryResponseDTO {
	out := make([]LedgerEntryResponseDTO, len(entries))
	for i, e := range entries {
		out[i] = LedgerEntryResponseDTO{
			ID:           e.ID,
			Kind:         string(e.Kind),
			BalanceClass: string(e.BalanceClass),
			Amount:       e.Amount,
			RefID:        e.RefID,
			CreatedAt:    e.CreatedAt,
		}
	}
	return out
}
