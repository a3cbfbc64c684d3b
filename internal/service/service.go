package service

import (
	"github.com/GlebRadaev/stakeledger/internal/pg"
	"github.com/GlebRadaev/stakeledger/internal/repo"
	"github.com/GlebRadaev/stakeledger/internal/service/accountservice"
	"github.com/GlebRadaev/stakeledger/internal/service/capitalservice"
	"github.com/GlebRadaev/stakeledger/internal/service/commissionservice"
	"github.com/GlebRadaev/stakeledger/internal/service/depositservice"
	"github.com/GlebRadaev/stakeledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/stakeledger/internal/service/levelservice"
	"github.com/GlebRadaev/stakeledger/internal/service/promotionservice"
	"github.com/GlebRadaev/stakeledger/internal/service/roiservice"
	"github.com/GlebRadaev/stakeledger/internal/service/settingsservice"
	"github.com/GlebRadaev/stakeledger/internal/service/withdrawalservice"
	"github.com/GlebRadaev/stakeledger/pkg/guard"
	"github.com/GlebRadaev/stakeledger/pkg/notify"
	"github.com/GlebRadaev/stakeledger/pkg/workerpool"
)

// Deps are the infrastructure pieces chosen at start-up.
type Deps struct {
	Guard    guard.Guard
	Notifier notify.Notifier
	Pool     workerpool.WorkerPoolI
	MaxDepth int
	Workers  int
}

type Services struct {
	AccountService    *accountservice.Service
	LedgerService     *ledgerservice.Service
	SettingsService   *settingsservice.Service
	CommissionService *commissionservice.Service
	LevelService      *levelservice.Service
	PromotionService  *promotionservice.Service
	DepositService    *depositservice.Service
	WithdrawalService *withdrawalservice.Service
	ROIService        *roiservice.Service
	CapitalService    *capitalservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, deps Deps) *Services {
	ledgerService := ledgerservice.New(repo.AccountRepo, repo.LedgerRepo, txManager)
	settingsService := settingsservice.New(repo.SettingsRepo)
	commissionService := commissionservice.New(repo.AccountRepo, repo.TierRepo, repo.CommissionRepo, ledgerService, txManager, deps.MaxDepth)
	levelService := levelservice.New(repo.AccountRepo, repo.TierRepo, deps.Guard, deps.Workers)
	promotionService := promotionservice.New(repo.PromotionRepo, repo.AccountRepo, repo.DepositRepo, ledgerService, txManager)

	return &Services{
		AccountService:    accountservice.New(repo.AccountRepo, repo.TierRepo, txManager, deps.MaxDepth),
		LedgerService:     ledgerService,
		SettingsService:   settingsService,
		CommissionService: commissionService,
		LevelService:      levelService,
		PromotionService:  promotionService,
		DepositService: depositservice.New(repo.DepositRepo, repo.AccountRepo, repo.TierRepo, settingsService, ledgerService,
			commissionService, promotionService, levelService, deps.Notifier, txManager, deps.MaxDepth),
		WithdrawalService: withdrawalservice.New(repo.WithdrawalRepo, repo.AccountRepo, settingsService, ledgerService,
			deps.Notifier, txManager),
		ROIService: roiservice.New(repo.AccountRepo, repo.TierRepo, repo.ROIRepo, ledgerService, txManager,
			deps.Guard, deps.Pool, deps.MaxDepth),
		CapitalService: capitalservice.New(repo.DepositRepo, repo.CapitalRepo, ledgerService, deps.Notifier,
			txManager, deps.Guard),
	}
}
