package withdrawalservice

import (
	"context"
	"errors"
	"testing"
	"time"

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
	repo     *MockRepo
	accounts *MockAccountRepo
	settings *MockSettings
	ledger   *MockLedger
	notifier *notify.MockNotifier
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
		settings: NewMockSettings(ctrl),
		ledger:   NewMockLedger(ctrl),
		notifier: notify.NewMockNotifier(ctrl),
	}
	svc := New(m.repo, m.accounts, m.settings, m.ledger, m.notifier, tx)
	svc.now = func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) }
	return svc, m
}

func settings(days ...int) *domain.Settings {
	return &domain.Settings{
		WithdrawalCharge:      domain.ChargePolicy{Type: domain.ChargeFixed, Value: d("1.50")},
		AllowedWithdrawalDays: days,
		MinWithdrawal:         d("10"),
		MaxWithdrawal:         d("1000"),
	}
}

func account() domain.Account {
	return domain.Account{ID: 4, ROIBalance: d("30"), CommissionBalance: d("50"), StakedAmount: d("1000")}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("holds roi first then commission", func(t *testing.T) {
		svc, m := NewMock(t)
		m.settings.EXPECT().Get(ctx).Return(settings(1, 15), nil)
		gomock.InOrder(
			m.accounts.EXPECT().LockForUpdate(ctx, []int64{4}).Return([]domain.Account{account()}, nil),
			m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
				assert.True(t, w.HeldROI.Equal(d("30")))
				assert.True(t, w.HeldCommission.Equal(d("20")))
				assert.True(t, w.Charge.Equal(d("1.50")))
				assert.True(t, w.NetAmount.Equal(d("48.50")))
				assert.Equal(t, "TXYZ", w.WalletAddress)
				w.ID = 9
				w.Status = domain.StatusPending
				return w, nil
			}),
			m.ledger.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p []ledgerservice.Posting) error {
				require.Len(t, p, 2)
				assert.Equal(t, domain.ClassROI, p[0].Class)
				assert.True(t, p[0].Amount.Equal(d("-30")))
				assert.Equal(t, domain.ClassCommission, p[1].Class)
				assert.True(t, p[1].Amount.Equal(d("-20")))
				assert.Equal(t, domain.KindWithdrawalDebit, p[1].Kind)
				assert.Equal(t, "withdrawal:9", p[0].RefID)
				return nil
			}),
		)

		w, err := svc.Create(ctx, 4, d("50"), " TXYZ ")
		require.NoError(t, err)
		assert.Equal(t, int64(9), w.ID)
	})

	t.Run("exactly the withdrawable balance", func(t *testing.T) {
		svc, m := NewMock(t)
		m.settings.EXPECT().Get(ctx).Return(settings(), nil)
		m.accounts.EXPECT().LockForUpdate(ctx, []int64{4}).Return([]domain.Account{account()}, nil)
		m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
			return w, nil
		})
		m.ledger.EXPECT().Post(ctx, gomock.Any()).Return(nil)

		_, err := svc.Create(ctx, 4, d("80"), "TXYZ")
		require.NoError(t, err)
	})

	t.Run("principal is not withdrawable", func(t *testing.T) {
		svc, m := NewMock(t)
		m.settings.EXPECT().Get(ctx).Return(settings(), nil)
		m.accounts.EXPECT().LockForUpdate(ctx, []int64{4}).Return([]domain.Account{account()}, nil)

		_, err := svc.Create(ctx, 4, d("80.01"), "TXYZ")
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})

	t.Run("closed day", func(t *testing.T) {
		svc, m := NewMock(t)
		m.settings.EXPECT().Get(ctx).Return(settings(1, 20), nil)

		_, err := svc.Create(ctx, 4, d("50"), "TXYZ")
		assert.ErrorIs(t, err, domain.ErrScheduleRestriction)
		assert.Contains(t, err.Error(), "next allowed day is 20")
	})

	tests := []struct {
		name   string
		amount string
		wallet string
	}{
		{"below minimum", "9.99", "TXYZ"},
		{"above maximum", "1000.01", "TXYZ"},
		{"zero", "0", "TXYZ"},
		{"sub cent", "12.345", "TXYZ"},
		{"no wallet", "50", " "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := NewMock(t)
			m.settings.EXPECT().Get(ctx).Return(settings(), nil).MaxTimes(1)

			_, err := svc.Create(ctx, 4, d(tc.amount), tc.wallet)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func pending() *domain.WithdrawalRequest {
	return &domain.WithdrawalRequest{
		ID: 9, AccountID: 4, GrossAmount: d("50"), Charge: d("1.50"), NetAmount: d("48.50"),
		HeldROI: d("30"), HeldCommission: d("20"), Status: domain.StatusPending,
	}
}

func TestService_DecideApprove(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	_, err := svc.Decide(ctx, 9, Decision{Approve: true})
	assert.ErrorIs(t, err, domain.ErrValidation)

	m.repo.EXPECT().GetForUpdate(ctx, int64(9)).Return(pending(), nil)
	m.repo.EXPECT().Decide(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
		assert.Equal(t, domain.StatusApproved, w.Status)
		assert.Equal(t, "0xsettled", w.TxHash)
		return w, nil
	})
	m.notifier.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e notify.Event) error {
		assert.Equal(t, notify.WithdrawalApproved, e.Type)
		assert.Equal(t, "48.50", e.Amount)
		assert.Equal(t, "0xsettled", e.TxHash)
		return nil
	})

	w, err := svc.Decide(ctx, 9, Decision{Approve: true, TxHash: "0xsettled"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, w.Status)
}

func TestService_DecideRejectRestoresHold(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	gomock.InOrder(
		m.repo.EXPECT().GetForUpdate(ctx, int64(9)).Return(pending(), nil),
		m.repo.EXPECT().Decide(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
			assert.Equal(t, "wallet blacklisted", w.RejectionReason)
			return w, nil
		}),
		m.ledger.EXPECT().Post(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p []ledgerservice.Posting) error {
			require.Len(t, p, 2)
			assert.Equal(t, domain.KindWithdrawalReversal, p[0].Kind)
			assert.True(t, p[0].Amount.Equal(d("30")))
			assert.True(t, p[1].Amount.Equal(d("20")))
			return nil
		}),
	)
	m.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(errors.New("broker down"))

	w, err := svc.Decide(ctx, 9, Decision{Reason: "wallet blacklisted"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, w.Status)
}

func TestService_DecideTwice(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	rejected := pending()
	rejected.Status = domain.StatusRejected
	m.repo.EXPECT().GetForUpdate(ctx, int64(9)).Return(rejected, nil)

	_, err := svc.Decide(ctx, 9, Decision{Reason: "again"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestService_ListByStatus(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.repo.EXPECT().ListByStatus(ctx, domain.Status("")).Return([]domain.WithdrawalRequest{*pending()}, nil)
	list, err := svc.ListByStatus(ctx, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	m.repo.EXPECT().ListByStatus(ctx, domain.StatusApproved).Return(nil, errors.New("database error"))
	_, err = svc.ListByStatus(ctx, domain.StatusApproved)
	assert.Error(t, err)
}
