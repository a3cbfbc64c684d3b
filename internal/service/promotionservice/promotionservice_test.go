package promotionservice

import (
	"context"
	"testing"
	"time"

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

var today = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

type mocks struct {
	repo     *MockRepo
	accounts *MockAccountRepo
	deposits *MockDepositRepo
	ledger   *MockLedger
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()
	m := mocks{
		repo:     NewMockRepo(ctrl),
		accounts: NewMockAccountRepo(ctrl),
		deposits: NewMockDepositRepo(ctrl),
		ledger:   NewMockLedger(ctrl),
	}
	svc := New(m.repo, m.accounts, m.deposits, m.ledger, tx)
	svc.now = func() time.Time { return today }
	return svc, m
}

func promo() *domain.Promotion {
	return &domain.Promotion{
		ID:              9,
		Name:            "October boost",
		StartDate:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
		SelfPercent:     d("5"),
		ReferralPercent: d("2"),
		IsActive:        true,
	}
}

func deposit(id int64) domain.DepositRequest {
	return domain.DepositRequest{ID: id, AccountID: 7, NetAmount: d("200"), Status: domain.StatusApproved, DecidedAt: &today}
}

func TestService_Grant(t *testing.T) {
	ctx := context.Background()

	t.Run("self and referral rewards", func(t *testing.T) {
		svc, m := NewMock(t)
		m.repo.EXPECT().Active(ctx, today).Return(promo(), nil)
		m.accounts.EXPECT().Get(ctx, int64(7)).Return(&domain.Account{ID: 7, ParentID: ptr(3)}, nil)
		m.repo.EXPECT().InsertReward(ctx, gomock.Any()).Return(true, nil).Times(2)
		m.ledger.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p []ledgerservice.Posting) error {
			require.Len(t, p, 2)
			assert.Equal(t, int64(7), p[0].AccountID)
			assert.True(t, p[0].Amount.Equal(d("10")))
			assert.Equal(t, int64(3), p[1].AccountID)
			assert.True(t, p[1].Amount.Equal(d("4")))
			for _, posting := range p {
				assert.Equal(t, domain.KindPromoCredit, posting.Kind)
				assert.Equal(t, domain.ClassCommission, posting.Class)
				assert.Equal(t, "promotion:9:deposit:1", posting.RefID)
			}
			return nil
		})

		dep := deposit(1)
		rewards, err := svc.Grant(ctx, &dep)
		require.NoError(t, err)
		require.Len(t, rewards, 2)
		assert.Equal(t, domain.RewardSelf, rewards[0].RewardType)
		assert.Equal(t, domain.RewardReferral, rewards[1].RewardType)
		assert.Equal(t, int64(7), rewards[1].FromAccountID)
	})

	t.Run("root depositor gets only the self reward", func(t *testing.T) {
		svc, m := NewMock(t)
		m.repo.EXPECT().Active(ctx, today).Return(promo(), nil)
		m.accounts.EXPECT().Get(ctx, int64(7)).Return(&domain.Account{ID: 7}, nil)
		m.repo.EXPECT().InsertReward(ctx, gomock.Any()).Return(true, nil)
		m.ledger.EXPECT().Post(ctx, gomock.Len(1)).Return(nil)

		dep := deposit(1)
		rewards, err := svc.Grant(ctx, &dep)
		require.NoError(t, err)
		assert.Len(t, rewards, 1)
	})

	t.Run("no active promotion", func(t *testing.T) {
		svc, m := NewMock(t)
		m.repo.EXPECT().Active(ctx, today).Return(nil, nil)

		dep := deposit(1)
		rewards, err := svc.Grant(ctx, &dep)
		require.NoError(t, err)
		assert.Nil(t, rewards)
	})

	t.Run("existing reward is not paid twice", func(t *testing.T) {
		svc, m := NewMock(t)
		m.repo.EXPECT().Active(ctx, today).Return(promo(), nil)
		m.accounts.EXPECT().Get(ctx, int64(7)).Return(&domain.Account{ID: 7, ParentID: ptr(3)}, nil)
		m.repo.EXPECT().InsertReward(ctx, gomock.Any()).Return(false, nil).Times(2)
		m.ledger.EXPECT().Post(ctx, gomock.Len(0)).Return(nil)

		dep := deposit(1)
		rewards, err := svc.Grant(ctx, &dep)
		require.NoError(t, err)
		assert.Empty(t, rewards)
	})
}

func TestService_Migrate(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	p := promo()
	m.repo.EXPECT().Get(ctx, int64(9)).Return(p, nil)
	m.deposits.EXPECT().ListApprovedBetween(ctx, p.StartDate, p.EndDate).
		Return([]domain.DepositRequest{deposit(1), deposit(2)}, nil)
	m.accounts.EXPECT().Get(ctx, int64(7)).Return(&domain.Account{ID: 7, ParentID: ptr(3)}, nil).Times(2)
	m.repo.EXPECT().InsertReward(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rw domain.PromotionReward) (bool, error) {
		// deposit 1 was granted live already
		return rw.DepositID != 1, nil
	}).Times(4)
	m.ledger.EXPECT().Post(ctx, gomock.Any()).Return(nil).Times(2)

	result, err := svc.Migrate(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, &domain.MigrationResult{Migrated: 2, Skipped: 2}, result)
}

func TestService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	bad := map[string]func(p *domain.Promotion){
		"empty name":         func(p *domain.Promotion) { p.Name = "  " },
		"end before start":   func(p *domain.Promotion) { p.EndDate = p.StartDate.AddDate(0, 0, -1) },
		"self over hundred":  func(p *domain.Promotion) { p.SelfPercent = d("101") },
		"negative referral":  func(p *domain.Promotion) { p.ReferralPercent = d("-1") },
		"missing start date": func(p *domain.Promotion) { p.StartDate = time.Time{} },
	}
	for name, mutate := range bad {
		t.Run(name, func(t *testing.T) {
			p := promo()
			mutate(p)
			_, err := svc.Create(ctx, p)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	p := promo()
	p.ID = 0
	m.repo.EXPECT().Create(ctx, p).Return(promo(), nil)
	created, err := svc.Create(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
}

func TestService_Rewards(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.repo.EXPECT().Get(ctx, int64(404)).Return(nil, domain.NewError(domain.KindNotFound, "promotion 404 not found"))
	_, err := svc.Rewards(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	m.repo.EXPECT().Get(ctx, int64(9)).Return(promo(), nil)
	m.repo.EXPECT().ListRewards(ctx, int64(9)).Return([]domain.PromotionReward{{ID: 1}}, nil)
	rewards, err := svc.Rewards(ctx, 9)
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}

func TestService_Active(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.repo.EXPECT().Active(ctx, today).Return(promo(), nil)
	p, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, "October boost", p.Name)
}
