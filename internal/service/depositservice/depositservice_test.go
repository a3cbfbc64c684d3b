package depositservice

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
	"github.com/GlebRadaev/stakeledger/pkg/notify"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type mocks struct {
	repo        *MockRepo
	accounts    *MockAccountRepo
	tiers       *MockTierRepo
	settings    *MockSettings
	ledger      *MockLedger
	commissions *MockCommissionEngine
	promotions  *MockPromotionEngine
	levels      *MockLevelEngine
	notifier    *notify.MockNotifier
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()
	m := mocks{
		repo:        NewMockRepo(ctrl),
		accounts:    NewMockAccountRepo(ctrl),
		tiers:       NewMockTierRepo(ctrl),
		settings:    NewMockSettings(ctrl),
		ledger:      NewMockLedger(ctrl),
		commissions: NewMockCommissionEngine(ctrl),
		promotions:  NewMockPromotionEngine(ctrl),
		levels:      NewMockLevelEngine(ctrl),
		notifier:    notify.NewMockNotifier(ctrl),
	}
	svc := New(m.repo, m.accounts, m.tiers, m.settings, m.ledger, m.commissions, m.promotions, m.levels, m.notifier, tx, 6)
	return svc, m
}

func upline() []domain.Account {
	return []domain.Account{{ID: 9}, {ID: 3, ParentID: ptr(9)}, {ID: 4, ParentID: ptr(3), Level: 2}}
}

func tiers() []domain.Tier {
	return []domain.Tier{{Level: 1, TermDays: 90}, {Level: 2, TermDays: 120}}
}

func ptr(v int64) *int64 {
	return &v
}

func settings() *domain.Settings {
	return &domain.Settings{
		DepositCharge: domain.ChargePolicy{Type: domain.ChargePercentage, Value: d("2")},
	}
}

func pending() *domain.DepositRequest {
	return &domain.DepositRequest{ID: 5, AccountID: 4, GrossAmount: d("1000"), Status: domain.StatusPending, TxHash: "0xabc"}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("computes preview charge", func(t *testing.T) {
		svc, m := NewMock(t)
		m.accounts.EXPECT().Get(ctx, int64(4)).Return(&domain.Account{ID: 4}, nil)
		m.settings.EXPECT().Get(ctx).Return(settings(), nil)
		m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, dep *domain.DepositRequest) (*domain.DepositRequest, error) {
			assert.True(t, dep.Charge.Equal(d("20")))
			assert.True(t, dep.NetAmount.Equal(d("980")))
			assert.Equal(t, "0xabc", dep.TxHash)
			dep.ID = 5
			dep.Status = domain.StatusPending
			return dep, nil
		})

		dep, err := svc.Create(ctx, 4, d("1000"), " usdt ", " 0xabc ")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, dep.Status)
	})

	t.Run("validation", func(t *testing.T) {
		svc, m := NewMock(t)

		_, err := svc.Create(ctx, 4, d("10"), "", "0x1")
		assert.ErrorIs(t, err, domain.ErrValidation)
		_, err = svc.Create(ctx, 4, d("10.001"), "usdt", "0x1")
		assert.ErrorIs(t, err, domain.ErrValidation)

		m.accounts.EXPECT().Get(ctx, int64(4)).Return(&domain.Account{ID: 4}, nil)
		m.settings.EXPECT().Get(ctx).Return(settings(), nil)
		_, err = svc.Create(ctx, 4, d("0"), "usdt", "0x1")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("duplicate tx hash", func(t *testing.T) {
		svc, m := NewMock(t)
		m.accounts.EXPECT().Get(ctx, int64(4)).Return(&domain.Account{ID: 4}, nil)
		m.settings.EXPECT().Get(ctx).Return(settings(), nil)
		m.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, domain.NewError(domain.KindDuplicateOperation, "dup"))

		_, err := svc.Create(ctx, 4, d("10"), "usdt", "0x1")
		assert.ErrorIs(t, err, domain.ErrDuplicateOperation)
	})
}

func TestService_DecideApprove(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	var decided *domain.DepositRequest
	gomock.InOrder(
		m.repo.EXPECT().GetForUpdate(ctx, int64(5)).Return(pending(), nil),
		m.accounts.EXPECT().Upline(ctx, int64(4), 6).Return(upline(), nil),
		m.accounts.EXPECT().LockForUpdate(ctx, []int64{3, 4, 9}).Return(upline(), nil),
		m.tiers.EXPECT().List(ctx).Return(tiers(), nil),
		m.settings.EXPECT().Get(ctx).Return(settings(), nil),
		m.repo.EXPECT().Decide(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, dep *domain.DepositRequest) (*domain.DepositRequest, error) {
			assert.Equal(t, domain.StatusApproved, dep.Status)
			assert.Equal(t, 120, dep.TermDays, "term of the depositor's level 2 tier")
			decided = dep
			return dep, nil
		}),
		m.ledger.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p []ledgerservice.Posting) error {
			require.Len(t, p, 2)
			assert.Equal(t, domain.ClassInvestment, p[0].Class)
			assert.Equal(t, domain.ClassStaked, p[1].Class)
			assert.True(t, p[0].Amount.Equal(d("980")))
			assert.Equal(t, "deposit:5", p[0].RefID)
			return nil
		}),
		m.commissions.EXPECT().Distribute(ctx, gomock.Any()).Return([]domain.CommissionDistribution{{ToAccountID: 3}}, nil),
		m.promotions.EXPECT().Grant(ctx, gomock.Any()).Return(nil, nil),
		m.levels.EXPECT().Recompute(ctx, int64(4)).Return(&domain.LevelChange{AccountID: 4, OldLevel: 1, NewLevel: 2}, nil),
	)
	m.notifier.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e notify.Event) error {
		assert.Equal(t, notify.DepositApproved, e.Type)
		assert.Equal(t, "980.00", e.Amount)
		return nil
	})

	out, err := svc.Decide(ctx, 5, Decision{Approve: true})
	require.NoError(t, err)
	assert.Same(t, decided, out.Deposit)
	assert.Len(t, out.Commissions, 1)
	assert.Equal(t, 2, out.LevelChange.NewLevel)
}

func TestService_DecideReject(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.repo.EXPECT().GetForUpdate(ctx, int64(5)).Return(pending(), nil)
	m.repo.EXPECT().Decide(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, dep *domain.DepositRequest) (*domain.DepositRequest, error) {
		assert.Equal(t, domain.StatusRejected, dep.Status)
		assert.Equal(t, "tx not found on chain", dep.RejectionReason)
		return dep, nil
	})
	m.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(errors.New("broker down"))

	out, err := svc.Decide(ctx, 5, Decision{Reason: "tx not found on chain"})
	require.NoError(t, err, "notification failure does not undo the decision")
	assert.Equal(t, domain.StatusRejected, out.Deposit.Status)
}

func TestService_DecideRejectWithoutReason(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.repo.EXPECT().GetForUpdate(ctx, int64(5)).Return(pending(), nil)
	m.repo.EXPECT().Decide(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, dep *domain.DepositRequest) (*domain.DepositRequest, error) {
		assert.Empty(t, dep.RejectionReason)
		return dep, nil
	})
	m.notifier.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e notify.Event) error {
		assert.Equal(t, notify.DepositRejected, e.Type)
		return nil
	})

	out, err := svc.Decide(ctx, 5, Decision{Reason: "   "})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, out.Deposit.Status)
}

func TestService_DecideApproveLockFailure(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.repo.EXPECT().GetForUpdate(ctx, int64(5)).Return(pending(), nil)
	m.accounts.EXPECT().Upline(ctx, int64(4), 6).Return(upline(), nil)
	m.accounts.EXPECT().LockForUpdate(ctx, []int64{3, 4, 9}).Return(nil, errors.New("deadlock detected"))

	_, err := svc.Decide(ctx, 5, Decision{Approve: true})
	assert.Error(t, err)
}

func TestService_ListByStatus(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.repo.EXPECT().ListByStatus(ctx, domain.StatusPending).Return([]domain.DepositRequest{*pending()}, nil)
	list, err := svc.ListByStatus(ctx, domain.StatusPending)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestService_DecideTwice(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	approved := pending()
	approved.Status = domain.StatusApproved
	m.repo.EXPECT().GetForUpdate(ctx, int64(5)).Return(approved, nil)

	_, err := svc.Decide(ctx, 5, Decision{Approve: true})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestService_DecideApproveRollsBackOnCommissionFailure(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.repo.EXPECT().GetForUpdate(ctx, int64(5)).Return(pending(), nil)
	m.accounts.EXPECT().Upline(ctx, int64(4), 6).Return(upline(), nil)
	m.accounts.EXPECT().LockForUpdate(ctx, gomock.Any()).Return(upline(), nil)
	m.tiers.EXPECT().List(ctx).Return(tiers(), nil)
	m.settings.EXPECT().Get(ctx).Return(settings(), nil)
	m.repo.EXPECT().Decide(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, dep *domain.DepositRequest) (*domain.DepositRequest, error) {
		return dep, nil
	})
	m.ledger.EXPECT().Post(ctx, gomock.Any()).Return(nil)
	m.commissions.EXPECT().Distribute(ctx, gomock.Any()).Return(nil, errors.New("serialization failure"))

	out, err := svc.Decide(ctx, 5, Decision{Approve: true})
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestService_DecideApproveTerm(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown level falls back to the lowest tier", func(t *testing.T) {
		svc, m := NewMock(t)
		locked := upline()
		locked[2].Level = 7

		m.repo.EXPECT().GetForUpdate(ctx, int64(5)).Return(pending(), nil)
		m.accounts.EXPECT().Upline(ctx, int64(4), 6).Return(upline(), nil)
		m.accounts.EXPECT().LockForUpdate(ctx, []int64{3, 4, 9}).Return(locked, nil)
		m.tiers.EXPECT().List(ctx).Return(tiers(), nil)
		m.settings.EXPECT().Get(ctx).Return(settings(), nil)
		m.repo.EXPECT().Decide(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, dep *domain.DepositRequest) (*domain.DepositRequest, error) {
			assert.Equal(t, 90, dep.TermDays)
			return dep, nil
		})
		m.ledger.EXPECT().Post(ctx, gomock.Any()).Return(nil)
		m.commissions.EXPECT().Distribute(ctx, gomock.Any()).Return(nil, nil)
		m.promotions.EXPECT().Grant(ctx, gomock.Any()).Return(nil, nil)
		m.levels.EXPECT().Recompute(ctx, int64(4)).Return(nil, nil)
		m.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(nil)

		out, err := svc.Decide(ctx, 5, Decision{Approve: true})
		require.NoError(t, err)
		assert.Equal(t, 90, out.Deposit.TermDays)
	})

	t.Run("depositor row missing", func(t *testing.T) {
		svc, m := NewMock(t)

		m.repo.EXPECT().GetForUpdate(ctx, int64(5)).Return(pending(), nil)
		m.accounts.EXPECT().Upline(ctx, int64(4), 6).Return(upline()[:2], nil)
		m.accounts.EXPECT().LockForUpdate(ctx, []int64{3, 9}).Return(upline()[:2], nil)

		_, err := svc.Decide(ctx, 5, Decision{Approve: true})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("tier load failure", func(t *testing.T) {
		svc, m := NewMock(t)

		m.repo.EXPECT().GetForUpdate(ctx, int64(5)).Return(pending(), nil)
		m.accounts.EXPECT().Upline(ctx, int64(4), 6).Return(upline(), nil)
		m.accounts.EXPECT().LockForUpdate(ctx, []int64{3, 4, 9}).Return(upline(), nil)
		m.tiers.EXPECT().List(ctx).Return(nil, errors.New("db down"))

		_, err := svc.Decide(ctx, 5, Decision{Approve: true})
		assert.EqualError(t, err, "db down")
	})
}
