package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Tier is one row of the staking-package table. Percent slices are indexed by depth-1.
type Tier struct {
	Level               int               `db:"level"               json:"level"`
	Name                string            `db:"name"                json:"name"`
	MinInvestment       decimal.Decimal   `db:"min_investment"      json:"min_investment"`
	DailyROIPercent     decimal.Decimal   `db:"daily_roi_percent"   json:"daily_roi_percent"`
	CommissionPercents  []decimal.Decimal `db:"commission_percents" json:"commission_percents"`
	ProfitSharePercents []decimal.Decimal `db:"profit_share"        json:"profit_share_percents"`
	UnlockedDepth       int               `db:"unlocked_depth"      json:"unlocked_depth"`
	DirectReferrals     int               `db:"direct_referrals"    json:"direct_referrals"`
	TeamSizes           []int             `db:"team_sizes"          json:"team_sizes"`
	// TermDays is how long a stake placed at this tier stays locked. Zero means open-ended.
	TermDays int `db:"term_days" json:"term_days"`
}

func percentAt(p []decimal.Decimal, depth int) decimal.Decimal {
	if depth < 1 || depth > len(p) {
		return decimal.Zero
	}
	return p[depth-1]
}

func (t Tier) CommissionPercent(depth int) decimal.Decimal {
	return percentAt(t.CommissionPercents, depth)
}

func (t Tier) ProfitSharePercent(depth int) decimal.Decimal {
	return percentAt(t.ProfitSharePercents, depth)
}

// Unlocks reports whether an account holding this tier may earn payouts at depth.
func (t Tier) Unlocks(depth int) bool {
	return depth >= 1 && depth <= t.UnlockedDepth
}

// Metrics is what tier selection looks at. Team[d-1] is the number of accounts at depth d below the account.
type Metrics struct {
	Staked decimal.Decimal
	Team   []int
}

func (m Metrics) teamAt(depth int) int {
	if depth < 1 || depth > len(m.Team) {
		return 0
	}
	return m.Team[depth-1]
}

func (t Tier) Qualifies(m Metrics) bool {
	if m.Staked.LessThan(t.MinInvestment) {
		return false
	}
	if m.teamAt(1) < t.DirectReferrals {
		return false
	}
	for i, need := range t.TeamSizes {
		if m.teamAt(i+1) < need {
			return false
		}
	}
	return true
}

// MaxTeamDepth is the deepest team level any threshold in t refers to.
func (t Tier) MaxTeamDepth() int {
	d := len(t.TeamSizes)
	if t.DirectReferrals > 0 && d < 1 {
		d = 1
	}
	return d
}

type TierTable struct {
	tiers []Tier
}

func NewTierTable(tiers []Tier) *TierTable {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })
	return &TierTable{tiers: sorted}
}

func (tt *TierTable) Tiers() []Tier {
	return tt.tiers
}

func (tt *TierTable) Get(level int) (Tier, bool) {
	for _, t := range tt.tiers {
		if t.Level == level {
			return t, true
		}
	}
	return Tier{}, false
}

func (tt *TierTable) Lowest() (Tier, bool) {
	if len(tt.tiers) == 0 {
		return Tier{}, false
	}
	return tt.tiers[0], true
}

// Select walks the table from the highest tier down and returns the first one m satisfies.
// Accounts that satisfy nothing stay on the lowest tier.
func (tt *TierTable) Select(m Metrics) (Tier, bool) {
	for i := len(tt.tiers) - 1; i >= 0; i-- {
		if tt.tiers[i].Qualifies(m) {
			return tt.tiers[i], true
		}
	}
	return tt.Lowest()
}

// TeamDepth is the deepest team level any tier in the table needs counted.
func (tt *TierTable) TeamDepth() int {
	d := 0
	for _, t := range tt.tiers {
		if md := t.MaxTeamDepth(); md > d {
			d = md
		}
	}
	return d
}

// For returns the tier stored for level, falling back to the lowest tier for unknown levels.
func (tt *TierTable) For(level int) (Tier, bool) {
	if t, ok := tt.Get(level); ok {
		return t, true
	}
	return tt.Lowest()
}
