package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

const dateLayout = "2006-01-02"

type PromotionRequestDTO struct {
	Name            string          `json:"name" validate:"required,max=128" example:"October boost"`
	StartDate       string          `json:"start_date" validate:"required,datetime=2006-01-02" example:"2026-10-01"`
	EndDate         string          `json:"end_date" validate:"required,datetime=2006-01-02" example:"2026-10-31"`
	SelfPercent     decimal.Decimal `json:"self_percent" swaggertype:"string" example:"5"`
	ReferralPercent decimal.Decimal `json:"referral_percent" swaggertype:"string" example:"2"`
	IsActive        bool            `json:"is_active" example:"true"`
}

// Promotion parses the request dates. Both are calendar days in UTC.
func (r PromotionRequestDTO) Promotion() (*domain.Promotion, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return nil, domain.NewError(domain.KindValidation, "start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return nil, domain.NewError(domain.KindValidation, "end_date must be YYYY-MM-DD")
	}
	return &domain.Promotion{
		Name:            r.Name,
		StartDate:       start,
		EndDate:         end,
		SelfPercent:     r.SelfPercent,
		ReferralPercent: r.ReferralPercent,
		IsActive:        r.IsActive,
	}, nil
}

type PromotionResponseDTO struct {
	ID              int64           `json:"id" example:"1"`
	Name            string          `json:"name" validate:"required,max=128" example:"October boost"`
	StartDate       string          `json:"start_date" validate:"required,datetime=2006-01-02" example:"2026-10-01"`
	EndDate         string          `json:"end_date" validate:"required,datetime=2006-01-02" example:"2026-10-31"`
	SelfPercent     decimal.Decimal `json:"self_percent" swaggertype:"string" example:"5"`
	ReferralPercent decimal.Decimal `json:"referral_percent" swaggertype:"string" example:"2"`
	IsActive        bool            `json:"is_active" example:"true"`
}

func PromotionResponse(p *domain.Promotion) PromotionResponseDTO {
	return PromotionResponseDTO{
		ID:              p.ID,
		Name:            p.Name,
		StartDate:       p.StartDate.Format(dateLayout),
		EndDate:         p.EndDate.Format(dateLayout),
		SelfPercent:     p.SelfPercent,
		ReferralPercent: p.ReferralPercent,
		IsActive:        p.IsActive,
	}
}

type RewardResponseDTO struct {
	DepositID     int64           `json:"deposit_id" example:"5"`
	AccountID     int64           `json:"account_id" example:"4"`
	RewardType    string          `json:"reward_type" example:"self"`
	FromAccountID int64           `json:"from_account_id" example:"4"`
	Percent       decimal.Decimal `json:"percent" swaggertype:"string" example:"5"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"49.00"`
}

func RewardsResponse(list []domain.PromotionReward) []RewardResponseDTO {
	out := make([]RewardResponseDTO, len(list))
	for i, r := range list {
		out[i] = RewardResponseDTO{
			DepositID:     r.DepositID,
			AccountID:     r.AccountID,
			RewardType:    string(r.RewardType),
			FromAccountID: r.FromAccountID,
			Percent:       r.Percent,
			Amount:        r.Amount,
		}
	}
	return out
}
