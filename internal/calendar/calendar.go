package calendar

import (
	"fmt"
	"slices"
	"time"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

// WithdrawalDays is the set of day-of-month values on which withdrawals may be opened.
// An empty set means every day is allowed.
type WithdrawalDays []int

func (w WithdrawalDays) IsAllowed(today time.Time) bool {
	if len(w) == 0 {
		return true
	}
	return slices.Contains(w, today.Day())
}

// NextAllowedDay returns the smallest configured day after today's, wrapping to the smallest
// day overall (next month). ok is false when the set is empty.
func (w WithdrawalDays) NextAllowedDay(today time.Time) (day int, ok bool) {
	if len(w) == 0 {
		return 0, false
	}
	days := slices.Clone(w)
	slices.Sort(days)
	for _, d := range days {
		if d > today.Day() {
			return d, true
		}
	}
	return days[0], true
}

// Check fails with a schedule restriction naming the next day withdrawals open.
func (w WithdrawalDays) Check(today time.Time) error {
	if w.IsAllowed(today) {
		return nil
	}
	next, _ := w.NextAllowedDay(today)
	return domain.NewError(domain.KindScheduleRestriction,
		fmt.Sprintf("withdrawals are only accepted on days %v of the month, next allowed day is %d", []int(w), next))
}
