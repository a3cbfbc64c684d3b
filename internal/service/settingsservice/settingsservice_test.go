package settingsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func current() *domain.Settings {
	return &domain.Settings{
		DepositCharge:    domain.ChargePolicy{Type: domain.ChargePercentage, Value: decimal.NewFromInt(2)},
		WithdrawalCharge: domain.ChargePolicy{Type: domain.ChargeFixed, Value: decimal.NewFromInt(1)},
		ROIScheduleTime:  "00:00",
	}
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies patch and notifies listeners", func(t *testing.T) {
		svc, repo := NewMock(t)
		at := "06:15"
		days := []int{15, 1}

		repo.EXPECT().Get(ctx).Return(current(), nil)
		repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s domain.Settings) (*domain.Settings, error) {
			return &s, nil
		})

		var seen []string
		svc.OnChange(func(s domain.Settings) { seen = append(seen, s.ROIScheduleTime) })

		saved, err := svc.Update(ctx, domain.SettingsPatch{ROIScheduleTime: &at, AllowedWithdrawalDays: &days})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 15}, saved.AllowedWithdrawalDays)
		assert.Equal(t, "percentage", string(saved.DepositCharge.Type))
		assert.Equal(t, []string{"06:15"}, seen)
	})

	t.Run("invalid patch is not saved", func(t *testing.T) {
		svc, repo := NewMock(t)
		bad := "7am"
		repo.EXPECT().Get(ctx).Return(current(), nil)

		svc.OnChange(func(domain.Settings) { t.Error("listener must not run") })
		_, err := svc.Update(ctx, domain.SettingsPatch{ROIScheduleTime: &bad})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("save failure", func(t *testing.T) {
		svc, repo := NewMock(t)
		repo.EXPECT().Get(ctx).Return(current(), nil)
		repo.EXPECT().Save(ctx, gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.Update(ctx, domain.SettingsPatch{})
		assert.EqualError(t, err, "db down")
	})
}

func TestService_Get(t *testing.T) {
	svc, repo := NewMock(t)
	repo.EXPECT().Get(gomock.Any()).Return(current(), nil)

	s, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "00:00", s.ROIScheduleTime)
}
