package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("approve deposit: %w", NewError(KindInvalidState, "deposit 7 already approved"))

	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.False(t, errors.Is(err, ErrNotFound))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindInvalidState, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, "invalid_state: deposit 7 already approved", errors.Unwrap(err).Error())
}

func TestAccountBalances(t *testing.T) {
	acc := &Account{}
	for i, class := range BalanceClasses {
		acc.SetBalance(class, decimal.NewFromInt(int64(i+1)))
	}
	assert.True(t, acc.Balance(ClassWallet).Equal(d("1")))
	assert.True(t, acc.Balance(ClassStaked).Equal(d("5")))
	assert.True(t, acc.Withdrawable().Equal(d("5")))
	assert.True(t, acc.Balance(BalanceClass("unknown")).IsZero())
}

func tiers() *TierTable {
	return NewTierTable([]Tier{
		{Level: 3, MinInvestment: d("1000"), DirectReferrals: 3, TeamSizes: []int{3, 5}, UnlockedDepth: 3,
			CommissionPercents: []decimal.Decimal{d("10"), d("5"), d("2")}},
		{Level: 1, MinInvestment: d("0"), UnlockedDepth: 1, CommissionPercents: []decimal.Decimal{d("5")}},
		{Level: 2, MinInvestment: d("500"), DirectReferrals: 1, UnlockedDepth: 2,
			CommissionPercents: []decimal.Decimal{d("7"), d("3")}},
	})
}

func TestTierTableSelect(t *testing.T) {
	tt := tiers()

	tests := []struct {
		name    string
		metrics Metrics
		level   int
	}{
		{"nothing staked stays on lowest", Metrics{Staked: d("0")}, 1},
		{"enough stake without referrals", Metrics{Staked: d("5000")}, 1},
		{"level two", Metrics{Staked: d("600"), Team: []int{1}}, 2},
		{"level three needs depth two team", Metrics{Staked: d("1000"), Team: []int{3, 4}}, 2},
		{"level three", Metrics{Staked: d("1000"), Team: []int{3, 5}}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tier, ok := tt.Select(tc.metrics)
			require.True(t, ok)
			assert.Equal(t, tc.level, tier.Level)
		})
	}

	assert.Equal(t, 2, tt.TeamDepth())
	_, ok := NewTierTable(nil).Select(Metrics{})
	assert.False(t, ok)
}

func TestTierPercentsAndUnlocks(t *testing.T) {
	tier, ok := tiers().Get(3)
	require.True(t, ok)

	assert.True(t, tier.CommissionPercent(1).Equal(d("10")))
	assert.True(t, tier.CommissionPercent(3).Equal(d("2")))
	assert.True(t, tier.CommissionPercent(4).IsZero())
	assert.True(t, tier.ProfitSharePercent(2).IsZero())
	assert.True(t, tier.Unlocks(3))
	assert.False(t, tier.Unlocks(4))
	assert.False(t, tier.Unlocks(0))
}

func TestPromotionActiveAt(t *testing.T) {
	p := Promotion{
		IsActive:  true,
		StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, p.ActiveAt(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.ActiveAt(time.Date(2026, 10, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, p.ActiveAt(time.Date(2026, 11, 1, 0, 0, 1, 0, time.UTC)))
	assert.False(t, p.ActiveAt(time.Date(2026, 9, 30, 12, 0, 0, 0, time.UTC)))

	p.IsActive = false
	assert.False(t, p.ActiveAt(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)))
}

func validSettings() Settings {
	return Settings{
		DepositCharge:    ChargePolicy{Type: ChargePercentage, Value: d("2")},
		WithdrawalCharge: ChargePolicy{Type: ChargeFixed, Value: d("1.50")},
		ROIScheduleTime:  "00:00",
	}
}

func TestSettingsPatchApply(t *testing.T) {
	days := []int{15, 1, 15}
	at := "06:30"
	maxW := d("5000")

	s, err := SettingsPatch{AllowedWithdrawalDays: &days, ROIScheduleTime: &at, MaxWithdrawal: &maxW}.Apply(validSettings())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 15}, s.AllowedWithdrawalDays)

	spec, err := s.ROICronSpec()
	require.NoError(t, err)
	assert.Equal(t, "CRON_TZ=UTC 30 6 * * *", spec)
}

func TestSettingsPatchValidation(t *testing.T) {
	badDays := []int{0}
	badTime := "25:00"
	badCharge := ChargePolicy{Type: ChargePercentage, Value: d("101")}
	negative := ChargePolicy{Type: ChargeFixed, Value: d("-1")}
	unknown := ChargePolicy{Type: "tiered", Value: d("1")}
	minW := d("100")
	maxW := d("10")

	patches := map[string]SettingsPatch{
		"day out of range":        {AllowedWithdrawalDays: &badDays},
		"bad time":                {ROIScheduleTime: &badTime},
		"percentage over hundred": {DepositCharge: &badCharge},
		"negative fixed":          {WithdrawalCharge: &negative},
		"unknown type":            {DepositCharge: &unknown},
		"min above max":           {MinWithdrawal: &minW, MaxWithdrawal: &maxW},
	}
	for name, p := range patches {
		t.Run(name, func(t *testing.T) {
			_, err := p.Apply(validSettings())
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
