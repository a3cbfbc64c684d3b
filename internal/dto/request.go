package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

type CreateDepositRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"1000.00"`
	Method string          `json:"method" validate:"required,max=64" example:"usdt-trc20"`
	TxHash string          `json:"tx_hash" validate:"required,hexadecimal,min=8,max=128" example:"0x9fc76417374aa880d4449a1f7f31ec597f00b1f6f3dd2d66f4c9c6c445836d8b"`
}

type DepositResponseDTO struct {
	ID              int64           `json:"id" example:"5"`
	GrossAmount     decimal.Decimal `json:"gross_amount" swaggertype:"string" example:"1000.00"`
	Charge          decimal.Decimal `json:"charge" swaggertype:"string" example:"20.00"`
	NetAmount       decimal.Decimal `json:"net_amount" swaggertype:"string" example:"980.00"`
	Method          string          `json:"method" example:"usdt-trc20"`
	TxHash          string          `json:"tx_hash" example:"0x9fc7"`
	Status          string          `json:"status" example:"pending"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at" example:"2026-10-15T09:00:00Z"`
	DecidedAt       *time.Time      `json:"decided_at,omitempty"`
	TermDays        int             `json:"term_days,omitempty" example:"90"`
	MaturesAt       *time.Time      `json:"matures_at,omitempty" example:"2027-01-13T09:00:00Z"`
}

func DepositResponse(d *domain.DepositRequest) DepositResponseDTO {
	var maturesAt *time.Time
	if t, ok := d.MaturesAt(); ok {
		maturesAt = &t
	}
	return DepositResponseDTO{
		ID:              d.ID,
		GrossAmount:     d.GrossAmount,
		Charge:          d.Charge,
		NetAmount:       d.NetAmount,
		Method:          d.Method,
		TxHash:          d.TxHash,
		Status:          string(d.Status),
		RejectionReason: d.RejectionReason,
		CreatedAt:       d.CreatedAt,
		DecidedAt:       d.DecidedAt,
		TermDays:        d.TermDays,
		MaturesAt:       maturesAt,
	}
}

type CreateWithdrawalRequestDTO struct {
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"50.00"`
	WalletAddress string          `json:"wallet_address" validate:"required,alphanum,min=8,max=128" example:"TQ1z9aXvJ8xJ3pWQ4c9u7p2N6dJrG5h8Lk"`
}

type WithdrawalResponseDTO struct {
	ID              int64           `json:"id" example:"9"`
	GrossAmount     decimal.Decimal `json:"gross_amount" swaggertype:"string" example:"50.00"`
	Charge          decimal.Decimal `json:"charge" swaggertype:"string" example:"1.50"`
	NetAmount       decimal.Decimal `json:"net_amount" swaggertype:"string" example:"48.50"`
	WalletAddress   string          `json:"wallet_address"`
	Status          string          `json:"status" example:"pending"`
	TxHash          string          `json:"tx_hash,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at" example:"2026-10-15T09:00:00Z"`
	DecidedAt       *time.Time      `json:"decided_at,omitempty"`
}

func WithdrawalResponse(w *domain.WithdrawalRequest) WithdrawalResponseDTO {
	return WithdrawalResponseDTO{
		ID:              w.ID,
		GrossAmount:     w.GrossAmount,
		Charge:          w.Charge,
		NetAmount:       w.NetAmount,
		WalletAddress:   w.WalletAddress,
		Status:          string(w.Status),
		TxHash:          w.TxHash,
		RejectionReason: w.RejectionReason,
		CreatedAt:       w.CreatedAt,
		DecidedAt:       w.DecidedAt,
	}
}

type DecisionRequestDTO struct {
	Approve bool   `json:"approve" example:"true"`
	Reason  string `json:"reason,omitempty" validate:"max=500" example:"tx not found on chain"`
	TxHash  string `json:"tx_hash,omitempty" validate:"omitempty,hexadecimal,min=8,max=128" example:"0x5e771ed0a4c1"`
}

type CommissionResponseDTO struct {
	ToAccountID int64           `json:"to_account_id" example:"3"`
	Depth       int             `json:"depth" example:"1"`
	Percent     decimal.Decimal `json:"percent" swaggertype:"string" example:"10"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"98.00"`
}

type DepositDecisionResponseDTO struct {
	Deposit     DepositResponseDTO      `json:"deposit"`
	Commissions []CommissionResponseDTO `json:"commissions"`
	Rewards     []RewardResponseDTO     `json:"rewards"`
	LevelChange *domain.LevelChange     `json:"level_change,omitempty"`
}

func CommissionsResponse(list []domain.CommissionDistribution) []CommissionResponseDTO {
	out := make([]CommissionResponseDTO, len(list))
	for i, c := range list {
		out[i] = CommissionResponseDTO{ToAccountID: c.ToAccountID, Depth: c.Depth, Percent: c.Percent, Amount: c.Amount}
	}
	return out
}
