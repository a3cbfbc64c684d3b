package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/stakeledger/docs"
	accounthandlers "github.com/GlebRadaev/stakeledger/internal/handlers/account"
	batchhandlers "github.com/GlebRadaev/stakeledger/internal/handlers/batch"
	deposithandlers "github.com/GlebRadaev/stakeledger/internal/handlers/deposit"
	promotionhandlers "github.com/GlebRadaev/stakeledger/internal/handlers/promotion"
	settingshandlers "github.com/GlebRadaev/stakeledger/internal/handlers/settings"
	withdrawalhandlers "github.com/GlebRadaev/stakeledger/internal/handlers/withdrawal"
	"github.com/GlebRadaev/stakeledger/internal/service"
	"github.com/GlebRadaev/stakeledger/pkg/auth"
	"github.com/GlebRadaev/stakeledger/pkg/metrics"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AccountHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetLedger(w http.ResponseWriter, r *http.Request)
	GetTeam(w http.ResponseWriter, r *http.Request)
	CreateAccount(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	CreateDeposit(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
	ListDeposits(w http.ResponseWriter, r *http.Request)
	DecideDeposit(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	CreateWithdrawal(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	DecideWithdrawal(w http.ResponseWriter, r *http.Request)
}

type BatchHandler interface {
	RunROI(w http.ResponseWriter, r *http.Request)
	ROIStatus(w http.ResponseWriter, r *http.Request)
	RecalculateLevels(w http.ResponseWriter, r *http.Request)
	ReleaseCapital(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type PromotionHandler interface {
	GetActive(w http.ResponseWriter, r *http.Request)
	ListPromotions(w http.ResponseWriter, r *http.Request)
	CreatePromotion(w http.ResponseWriter, r *http.Request)
	UpdatePromotion(w http.ResponseWriter, r *http.Request)
	DeletePromotion(w http.ResponseWriter, r *http.Request)
	GetRewards(w http.ResponseWriter, r *http.Request)
	MigrateRewards(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler    AccountHandler
	DepositHandler    DepositHandler
	WithdrawalHandler WithdrawalHandler
	BatchHandler      BatchHandler
	SettingsHandler   SettingsHandler
	PromotionHandler  PromotionHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, scheduler batchhandlers.Scheduler, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AccountHandler:    accounthandlers.New(s.AccountService, s.LedgerService),
		DepositHandler:    deposithandlers.New(s.DepositService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		BatchHandler:      batchhandlers.New(s.ROIService, s.LevelService, s.CapitalService, scheduler),
		SettingsHandler:   settingshandlers.New(s.SettingsService),
		PromotionHandler:  promotionhandlers.New(s.PromotionService),
		jwtService:        jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Get("/api/settings", h.SettingsHandler.GetSettings)
	r.Get("/api/promotions/active", h.PromotionHandler.GetActive)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(h.jwtService))

		r.Route("/api/user", func(r chi.Router) {
			r.Get("/balance", h.AccountHandler.GetBalance)
			r.Get("/ledger", h.AccountHandler.GetLedger)
			r.Get("/team", h.AccountHandler.GetTeam)
			r.Route("/deposits", func(r chi.Router) {
				r.Post("/", h.DepositHandler.CreateDeposit)
				r.Get("/", h.DepositHandler.GetDeposits)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WithdrawalHandler.CreateWithdrawal)
				r.Get("/", h.WithdrawalHandler.GetWithdrawals)
			})
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(auth.AdminOnly)

			r.Post("/accounts", h.AccountHandler.CreateAccount)
			r.Get("/accounts/{id}/reconcile", h.AccountHandler.Reconcile)
			r.Get("/deposits", h.DepositHandler.ListDeposits)
			r.Post("/deposits/{id}/decision", h.DepositHandler.DecideDeposit)
			r.Get("/withdrawals", h.WithdrawalHandler.ListWithdrawals)
			r.Post("/withdrawals/{id}/decision", h.WithdrawalHandler.DecideWithdrawal)
			r.Post("/roi/run", h.BatchHandler.RunROI)
			r.Get("/roi/status", h.BatchHandler.ROIStatus)
			r.Post("/levels/recalculate", h.BatchHandler.RecalculateLevels)
			r.Post("/capital/release", h.BatchHandler.ReleaseCapital)
			r.Put("/settings", h.SettingsHandler.UpdateSettings)
			r.Route("/promotions", func(r chi.Router) {
				r.Get("/", h.PromotionHandler.ListPromotions)
				r.Post("/", h.PromotionHandler.CreatePromotion)
				r.Put("/{id}", h.PromotionHandler.UpdatePromotion)
				r.Delete("/{id}", h.PromotionHandler.DeletePromotion)
				r.Get("/{id}/rewards", h.PromotionHandler.GetRewards)
				r.Post("/{id}/migrate", h.PromotionHandler.MigrateRewards)
			})
		})
	})

	return r
}
