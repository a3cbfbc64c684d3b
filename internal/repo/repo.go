package repo

import (
	"github.com/GlebRadaev/stakeledger/internal/pg"
	accountrepo "github.com/GlebRadaev/stakeledger/internal/repo/account-repo"
	capitalrepo "github.com/GlebRadaev/stakeledger/internal/repo/capital-repo"
	commissionrepo "github.com/GlebRadaev/stakeledger/internal/repo/commission-repo"
	depositrepo "github.com/GlebRadaev/stakeledger/internal/repo/deposit-repo"
	ledgerrepo "github.com/GlebRadaev/stakeledger/internal/repo/ledger-repo"
	promotionrepo "github.com/GlebRadaev/stakeledger/internal/repo/promotion-repo"
	roirepo "github.com/GlebRadaev/stakeledger/internal/repo/roi-repo"
	settingsrepo "github.com/GlebRadaev/stakeledger/internal/repo/settings-repo"
	tierrepo "github.com/GlebRadaev/stakeledger/internal/repo/tier-repo"
	withdrawalrepo "github.com/GlebRadaev/stakeledger/internal/repo/withdrawal-repo"
)

// Repositories are kept concrete: each one serves several service interfaces.
type Repositories struct {
	AccountRepo    *accountrepo.Repository
	LedgerRepo     *ledgerrepo.Repository
	TierRepo       *tierrepo.Repository
	DepositRepo    *depositrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
	CommissionRepo *commissionrepo.Repository
	ROIRepo        *roirepo.Repository
	SettingsRepo   *settingsrepo.Repository
	PromotionRepo  *promotionrepo.Repository
	CapitalRepo    *capitalrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AccountRepo:    accountrepo.New(conn),
		LedgerRepo:     ledgerrepo.New(conn),
		TierRepo:       tierrepo.New(conn),
		DepositRepo:    depositrepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
		CommissionRepo: commissionrepo.New(conn),
		ROIRepo:        roirepo.New(conn),
		SettingsRepo:   settingsrepo.New(conn),
		PromotionRepo:  promotionrepo.New(conn),
		CapitalRepo:    capitalrepo.New(conn),
	}
}
