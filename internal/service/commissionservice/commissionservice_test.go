package commissionservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
	"github.com/GlebRadaev/stakeledger/internal/service/ledgerservice"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(v int64) *int64 {
	return &v
}

type mocks struct {
	accounts      *MockAccountRepo
	tiers         *MockTierRepo
	distributions *MockDistributionRepo
	ledger        *MockLedger
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()
	m := mocks{
		accounts:      NewMockAccountRepo(ctrl),
		tiers:         NewMockTierRepo(ctrl),
		distributions: NewMockDistributionRepo(ctrl),
		ledger:        NewMockLedger(ctrl),
	}
	return New(m.accounts, m.tiers, m.distributions, m.ledger, tx, 6), m
}

func tierRows() []domain.Tier {
	return []domain.Tier{
		{Level: 1, UnlockedDepth: 1, CommissionPercents: []decimal.Decimal{d("3")}},
		{Level: 3, UnlockedDepth: 3, CommissionPercents: []decimal.Decimal{d("10"), d("5"), d("2")}},
	}
}

// chain is A(1) <- B(2) <- C(3) <- D(4), root first as Upline returns it.
func chain(levels ...int) []domain.Account {
	return []domain.Account{
		{ID: 1, Level: levels[0]},
		{ID: 2, ParentID: ptr(1), Level: levels[1]},
		{ID: 3, ParentID: ptr(2), Level: levels[2]},
		{ID: 4, ParentID: ptr(3), Level: levels[3]},
	}
}

func approvedDeposit() *domain.DepositRequest {
	return &domain.DepositRequest{ID: 42, AccountID: 4, GrossAmount: d("1000"), NetAmount: d("1000"), Status: domain.StatusApproved}
}

func TestService_Distribute(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		levels  []int
		want    map[int64]string
		wantLen int
	}{
		{
			name:   "three levels all unlocked",
			levels: []int{3, 3, 3, 3},
			want:   map[int64]string{3: "100", 2: "50", 1: "20"},
		},
		{
			name:   "ancestor tier gates deeper levels",
			levels: []int{1, 3, 3, 3},
			want:   map[int64]string{3: "100", 2: "50"},
		},
		{
			name:   "depositor tier sets the percents",
			levels: []int{3, 3, 3, 1},
			want:   map[int64]string{3: "30"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := NewMock(t)
			m.distributions.EXPECT().ExistsForDeposit(ctx, int64(42)).Return(false, nil)
			m.tiers.EXPECT().List(ctx).Return(tierRows(), nil)
			m.accounts.EXPECT().Upline(ctx, int64(4), 6).Return(chain(tc.levels...), nil)
			m.distributions.EXPECT().Insert(ctx, gomock.Any()).Return(true, nil).Times(len(tc.want))
			m.ledger.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p []ledgerservice.Posting) error {
				require.Len(t, p, len(tc.want))
				for _, posting := range p {
					assert.Equal(t, domain.ClassCommission, posting.Class)
					assert.Equal(t, domain.KindCommissionCredit, posting.Kind)
					assert.Equal(t, "deposit:42", posting.RefID)
					assert.True(t, posting.Amount.Equal(d(tc.want[posting.AccountID])), "account %d", posting.AccountID)
				}
				return nil
			})

			paid, err := svc.Distribute(ctx, approvedDeposit())
			require.NoError(t, err)
			assert.Len(t, paid, len(tc.want))
		})
	}
}

func TestService_DistributeNetRatio(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	dep := approvedDeposit()
	dep.NetAmount = d("980")

	m.distributions.EXPECT().ExistsForDeposit(ctx, int64(42)).Return(false, nil)
	m.tiers.EXPECT().List(ctx).Return(tierRows(), nil)
	m.accounts.EXPECT().Upline(ctx, int64(4), 6).Return(chain(3, 3, 3, 3), nil)
	m.distributions.EXPECT().Insert(ctx, gomock.Any()).Return(true, nil).Times(3)
	m.ledger.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p []ledgerservice.Posting) error {
		assert.True(t, p[0].Amount.Equal(d("98")))
		assert.True(t, p[1].Amount.Equal(d("49")))
		assert.True(t, p[2].Amount.Equal(d("19.6")))
		return nil
	})

	_, err := svc.Distribute(ctx, dep)
	require.NoError(t, err)
}

func TestService_DistributeIdempotent(t *testing.T) {
	ctx := context.Background()

	t.Run("existing distributions make it a no-op", func(t *testing.T) {
		svc, m := NewMock(t)
		m.distributions.EXPECT().ExistsForDeposit(ctx, int64(42)).Return(true, nil)

		paid, err := svc.Distribute(ctx, approvedDeposit())
		require.NoError(t, err)
		assert.Empty(t, paid)
	})

	t.Run("conflicting row is not credited", func(t *testing.T) {
		svc, m := NewMock(t)
		m.distributions.EXPECT().ExistsForDeposit(ctx, int64(42)).Return(false, nil)
		m.tiers.EXPECT().List(ctx).Return(tierRows(), nil)
		m.accounts.EXPECT().Upline(ctx, int64(4), 6).Return(chain(3, 3, 3, 3), nil)
		gomock.InOrder(
			m.distributions.EXPECT().Insert(ctx, gomock.Any()).Return(true, nil),
			m.distributions.EXPECT().Insert(ctx, gomock.Any()).Return(false, nil),
			m.distributions.EXPECT().Insert(ctx, gomock.Any()).Return(true, nil),
		)
		m.ledger.EXPECT().Post(ctx, gomock.Len(2)).Return(nil)

		paid, err := svc.Distribute(ctx, approvedDeposit())
		require.NoError(t, err)
		assert.Len(t, paid, 2)
	})
}

func TestService_DistributeErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("pending deposit", func(t *testing.T) {
		svc, _ := NewMock(t)
		dep := approvedDeposit()
		dep.Status = domain.StatusPending
		_, err := svc.Distribute(ctx, dep)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("ledger failure aborts", func(t *testing.T) {
		svc, m := NewMock(t)
		m.distributions.EXPECT().ExistsForDeposit(ctx, int64(42)).Return(false, nil)
		m.tiers.EXPECT().List(ctx).Return(tierRows(), nil)
		m.accounts.EXPECT().Upline(ctx, int64(4), 6).Return(chain(3, 3, 3, 3), nil)
		m.distributions.EXPECT().Insert(ctx, gomock.Any()).Return(true, nil).Times(3)
		m.ledger.EXPECT().Post(ctx, gomock.Any()).Return(errors.New("locked"))

		paid, err := svc.Distribute(ctx, approvedDeposit())
		assert.Error(t, err)
		assert.Nil(t, paid)
	})

	t.Run("root depositor pays nobody", func(t *testing.T) {
		svc, m := NewMock(t)
		m.distributions.EXPECT().ExistsForDeposit(ctx, int64(42)).Return(false, nil)
		m.tiers.EXPECT().List(ctx).Return(tierRows(), nil)
		m.accounts.EXPECT().Upline(ctx, int64(4), 6).Return([]domain.Account{{ID: 4, Level: 3}}, nil)
		m.ledger.EXPECT().Post(ctx, gomock.Len(0)).Return(nil)

		paid, err := svc.Distribute(ctx, approvedDeposit())
		require.NoError(t, err)
		assert.Empty(t, paid)
	})
}
