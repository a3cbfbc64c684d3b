package accountservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/pg"
)

func ptr(v int64) *int64 { return &v }

func NewMock(t *testing.T) (*Service, *MockRepo, *MockTierRepo) {
	ctrl := gomock.NewController(t)
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()
	repo := NewMockRepo(ctrl)
	tiers := NewMockTierRepo(ctrl)
	return New(repo, tiers, tx, 6), repo, tiers
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	tiers := []domain.Tier{{Level: 2}, {Level: 1}}

	tests := []struct {
		name    string
		parent  *int64
		prepare func(repo *MockRepo)
		wantErr error
	}{
		{
			name:   "root account",
			parent: nil,
			prepare: func(repo *MockRepo) {
				repo.EXPECT().Create(ctx, (*int64)(nil), 1).Return(&domain.Account{ID: 1, Level: 1}, nil)
			},
		},
		{
			name:   "under existing parent",
			parent: ptr(1),
			prepare: func(repo *MockRepo) {
				repo.EXPECT().Get(ctx, int64(1)).Return(&domain.Account{ID: 1}, nil)
				repo.EXPECT().Create(ctx, ptr(1), 1).Return(&domain.Account{ID: 2, ParentID: ptr(1), Level: 1}, nil)
			},
		},
		{
			name:   "unknown parent",
			parent: ptr(99),
			prepare: func(repo *MockRepo) {
				repo.EXPECT().Get(ctx, int64(99)).Return(nil, domain.NewError(domain.KindNotFound, "account 99 not found"))
			},
			wantErr: domain.ErrNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, tierRepo := NewMock(t)
			tierRepo.EXPECT().List(ctx).Return(tiers, nil)
			tc.prepare(repo)

			acc, err := svc.Create(ctx, tc.parent)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, acc.Level)
		})
	}

	t.Run("empty tier table", func(t *testing.T) {
		svc, _, tierRepo := NewMock(t)
		tierRepo.EXPECT().List(ctx).Return(nil, nil)

		_, err := svc.Create(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestService_Team(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := NewMock(t)

	repo.EXPECT().Downline(ctx, int64(1), 6).Return([]domain.Account{
		{ID: 1, ParentID: ptr(7)},
		{ID: 2, ParentID: ptr(1)},
		{ID: 3, ParentID: ptr(1)},
		{ID: 4, ParentID: ptr(2)},
		{ID: 5, ParentID: ptr(4)},
		{ID: 6, ParentID: ptr(3)},
	}, nil)

	team, err := svc.Team(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, team.Counts)
	assert.Equal(t, 2, team.Direct)
	assert.Equal(t, 5, team.Total)
}
