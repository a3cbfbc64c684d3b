package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/stakeledger/internal/pg"
	"github.com/GlebRadaev/stakeledger/internal/repo"
	"github.com/GlebRadaev/stakeledger/pkg/guard"
	"github.com/GlebRadaev/stakeledger/pkg/notify"
	"github.com/GlebRadaev/stakeledger/pkg/workerpool"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	pool := workerpool.New(2)
	defer pool.Close()

	services := New(repo.New(mockDB), pg.NewMockTXManager(ctrl), Deps{
		Guard:    guard.NewLocal(),
		Notifier: notify.Noop{},
		Pool:     pool,
		MaxDepth: 6,
		Workers:  2,
	})

	assert.NotNil(t, services.AccountService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.SettingsService)
	assert.NotNil(t, services.CommissionService)
	assert.NotNil(t, services.LevelService)
	assert.NotNil(t, services.PromotionService)
	assert.NotNil(t, services.DepositService)
	assert.NotNil(t, services.WithdrawalService)
	assert.NotNil(t, services.ROIService)
	assert.NotNil(t, services.CapitalService)
}
