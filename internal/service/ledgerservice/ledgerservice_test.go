package ledgerservice

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
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type mocks struct {
	accounts *MockAccountRepo
	entries  *MockEntryRepo
	tx       *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		accounts: NewMockAccountRepo(ctrl),
		entries:  NewMockEntryRepo(ctrl),
		tx:       pg.NewMockTXManager(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()
	return New(m.accounts, m.entries, m.tx), m
}

func TestService_Post(t *testing.T) {
	ctx := context.Background()

	t.Run("locks in id order and writes every entry", func(t *testing.T) {
		svc, m := NewMock(t)
		m.accounts.EXPECT().LockForUpdate(ctx, []int64{3, 7}).Return([]domain.Account{
			{ID: 3, ROIBalance: d("10.00")},
			{ID: 7},
		}, nil)
		var updated []domain.Account
		m.accounts.EXPECT().UpdateBalances(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Account) error {
			updated = append(updated, *a)
			return nil
		}).Times(2)
		m.entries.EXPECT().Insert(ctx, gomock.Len(3)).Return(nil)

		err := svc.Post(ctx, []Posting{
			{AccountID: 7, Kind: domain.KindDepositCredit, Class: domain.ClassInvestment, Amount: d("100.00"), RefID: "deposit:1"},
			{AccountID: 7, Kind: domain.KindDepositCredit, Class: domain.ClassStaked, Amount: d("100.00"), RefID: "deposit:1"},
			{AccountID: 3, Kind: domain.KindWithdrawalDebit, Class: domain.ClassROI, Amount: d("-4.50"), RefID: "withdrawal:2"},
		})
		require.NoError(t, err)
		require.Len(t, updated, 2)
		assert.Equal(t, int64(3), updated[0].ID)
		assert.True(t, updated[0].ROIBalance.Equal(d("5.50")))
		assert.True(t, updated[1].StakedAmount.Equal(d("100")))
		assert.True(t, updated[1].TotalInvestment.Equal(d("100")))
	})

	t.Run("negative result aborts everything", func(t *testing.T) {
		svc, m := NewMock(t)
		m.accounts.EXPECT().LockForUpdate(ctx, []int64{1}).Return([]domain.Account{{ID: 1, CommissionBalance: d("1.00")}}, nil)

		err := svc.Post(ctx, []Posting{
			{AccountID: 1, Kind: domain.KindWithdrawalDebit, Class: domain.ClassCommission, Amount: d("-1.01")},
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})

	t.Run("validation before any lock", func(t *testing.T) {
		svc, _ := NewMock(t)
		tests := []struct {
			name    string
			posting Posting
		}{
			{"zero", Posting{AccountID: 1, Class: domain.ClassWallet, Amount: decimal.Zero}},
			{"three decimals", Posting{AccountID: 1, Class: domain.ClassWallet, Amount: d("1.005")}},
			{"unknown class", Posting{AccountID: 1, Class: "bonus", Amount: d("1")}},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				assert.ErrorIs(t, svc.Post(ctx, []Posting{tc.posting}), domain.ErrValidation)
			})
		}
	})

	t.Run("entry insert failure propagates", func(t *testing.T) {
		svc, m := NewMock(t)
		m.accounts.EXPECT().LockForUpdate(ctx, []int64{1}).Return([]domain.Account{{ID: 1}}, nil)
		m.accounts.EXPECT().UpdateBalances(ctx, gomock.Any()).Return(nil)
		m.entries.EXPECT().Insert(ctx, gomock.Any()).Return(errors.New("db down"))

		err := svc.Credit(ctx, 1, domain.KindROICredit, domain.ClassROI, d("2.00"), "roi:1")
		assert.EqualError(t, err, "db down")
	})

	t.Run("empty is a no-op", func(t *testing.T) {
		svc, _ := NewMock(t)
		assert.NoError(t, svc.Post(ctx, nil))
	})
}

func TestService_CreditDebit(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	assert.ErrorIs(t, svc.Credit(ctx, 1, domain.KindROICredit, domain.ClassROI, d("-1"), ""), domain.ErrValidation)
	assert.ErrorIs(t, svc.Debit(ctx, 1, domain.KindWithdrawalDebit, domain.ClassROI, d("0"), ""), domain.ErrValidation)

	m.accounts.EXPECT().LockForUpdate(ctx, []int64{1}).Return([]domain.Account{{ID: 1, ROIBalance: d("3")}}, nil)
	m.accounts.EXPECT().UpdateBalances(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Account) error {
		assert.True(t, a.ROIBalance.Equal(d("1")))
		return nil
	})
	m.entries.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e []domain.LedgerEntry) error {
		assert.True(t, e[0].Amount.Equal(d("-2")))
		return nil
	})
	require.NoError(t, svc.Debit(ctx, 1, domain.KindWithdrawalDebit, domain.ClassROI, d("2"), "withdrawal:9"))
}

func TestService_BalanceOf(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.accounts.EXPECT().Get(ctx, int64(4)).Return(&domain.Account{ID: 4, StakedAmount: d("250")}, nil)
	got, err := svc.BalanceOf(ctx, 4, domain.ClassStaked)
	require.NoError(t, err)
	assert.True(t, got.Equal(d("250")))

	_, err = svc.BalanceOf(ctx, 4, "bonus")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_History(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.accounts.EXPECT().Get(ctx, int64(2)).Return(&domain.Account{ID: 2}, nil)
	m.entries.EXPECT().ListByAccount(ctx, int64(2), 100, 0).Return([]domain.LedgerEntry{{ID: 1}}, nil)

	entries, err := svc.History(ctx, 2, 0, -5)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestService_Reconcile(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		sums       map[domain.BalanceClass]decimal.Decimal
		consistent bool
		drifts     int
	}{
		{
			name: "balanced",
			sums: map[domain.BalanceClass]decimal.Decimal{
				domain.ClassROI:    d("5.00"),
				domain.ClassStaked: d("100"),
			},
			consistent: true,
		},
		{
			name: "roi drift",
			sums: map[domain.BalanceClass]decimal.Decimal{
				domain.ClassROI:    d("4.99"),
				domain.ClassStaked: d("100"),
			},
			consistent: false,
			drifts:     1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := NewMock(t)
			m.accounts.EXPECT().Get(ctx, int64(1)).Return(&domain.Account{ID: 1, ROIBalance: d("5"), StakedAmount: d("100.00")}, nil)
			m.entries.EXPECT().SumByClass(ctx, int64(1)).Return(tc.sums, nil)

			rec, err := svc.Reconcile(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.consistent, rec.Consistent)
			assert.Len(t, rec.Drifts, tc.drifts)
		})
	}
}
