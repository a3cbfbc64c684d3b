package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

func TestPromotionRequest(t *testing.T) {
	p, err := PromotionRequestDTO{Name: "boost", StartDate: "2026-10-01", EndDate: "2026-10-31"}.Promotion()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC), p.EndDate)
	assert.Equal(t, "2026-10-01", PromotionResponse(p).StartDate)

	_, err = PromotionRequestDTO{StartDate: "01.10.2026", EndDate: "2026-10-31"}.Promotion()
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateSettingsPatch(t *testing.T) {
	at := "06:00"
	p := UpdateSettingsRequestDTO{
		WithdrawalCharge: &ChargePolicyDTO{Type: "fixed", Value: decimal.NewFromInt(2)},
		ROIScheduleTime:  &at,
	}.Patch()

	assert.Nil(t, p.DepositCharge)
	assert.Equal(t, domain.ChargeFixed, p.WithdrawalCharge.Type)
	assert.Equal(t, "06:00", *p.ROIScheduleTime)
}

func TestBalanceResponse(t *testing.T) {
	b := BalanceResponse(&domain.Account{ROIBalance: decimal.NewFromInt(3), CommissionBalance: decimal.NewFromInt(4), Level: 2})
	assert.True(t, b.Withdrawable.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, 2, b.Level)
}

func TestDepositResponseMaturity(t *testing.T) {
	decided := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	approved := DepositResponse(&domain.DepositRequest{Status: domain.StatusApproved, TermDays: 90, DecidedAt: &decided})
	require.NotNil(t, approved.MaturesAt)
	assert.Equal(t, time.Date(2027, 1, 13, 9, 0, 0, 0, time.UTC), *approved.MaturesAt)

	pending := DepositResponse(&domain.DepositRequest{Status: domain.StatusPending})
	assert.Nil(t, pending.MaturesAt)
}
