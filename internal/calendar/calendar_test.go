package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2026, time.October, d, 10, 0, 0, 0, time.UTC)
}

func TestIsAllowed(t *testing.T) {
	days := WithdrawalDays{1, 15}

	assert.True(t, days.IsAllowed(day(1)))
	assert.True(t, days.IsAllowed(day(15)))
	assert.False(t, days.IsAllowed(day(20)))
	assert.True(t, WithdrawalDays(nil).IsAllowed(day(20)))
}

func TestNextAllowedDay(t *testing.T) {
	tests := []struct {
		name  string
		days  WithdrawalDays
		today int
		want  int
		ok    bool
	}{
		{"wraps to next month", WithdrawalDays{1, 15}, 20, 1, true},
		{"later this month", WithdrawalDays{15, 1}, 3, 15, true},
		{"strictly greater", WithdrawalDays{1, 15}, 15, 1, true},
		{"unsorted input", WithdrawalDays{28, 5, 10}, 6, 10, true},
		{"unrestricted", nil, 20, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.days.NextAllowedDay(day(tt.today))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheck(t *testing.T) {
	days := WithdrawalDays{1, 15}

	assert.NoError(t, days.Check(day(15)))

	err := days.Check(day(20))
	assert.ErrorIs(t, err, domain.ErrScheduleRestriction)
	assert.Contains(t, err.Error(), "next allowed day is 1")
}
