package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/config"
	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/handlers"
	"github.com/GlebRadaev/stakeledger/internal/jobs"
	"github.com/GlebRadaev/stakeledger/internal/pg"
	"github.com/GlebRadaev/stakeledger/internal/repo"
	"github.com/GlebRadaev/stakeledger/internal/service"
	"github.com/GlebRadaev/stakeledger/pkg/auth"
	"github.com/GlebRadaev/stakeledger/pkg/clients"
	"github.com/GlebRadaev/stakeledger/pkg/guard"
	"github.com/GlebRadaev/stakeledger/pkg/logger"
	"github.com/GlebRadaev/stakeledger/pkg/notify"
	"github.com/GlebRadaev/stakeledger/pkg/workerpool"
)

const lockTTL = 30 * time.Minute

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	scheduler *jobs.Scheduler

	pool     workerpool.WorkerPoolI
	notifier notify.Notifier

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	notifier, err := buildNotifier(cfg)
	if err != nil {
		return fmt.Errorf("can't build notifier: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.notifier = notifier
	a.pool = workerpool.New(cfg.BatchWorkers)
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, service.Deps{
		Guard:    buildGuard(cfg),
		Notifier: notifier,
		Pool:     a.pool,
		MaxDepth: cfg.CommissionDepth,
		Workers:  cfg.BatchWorkers,
	})
	a.scheduler = jobs.New(a.srv.ROIService, a.srv.LevelService, a.srv.CapitalService, a.srv.SettingsService, jobs.Specs{
		Levels:  cfg.LevelSchedule,
		Capital: cfg.CapitalSchedule,
		Refresh: cfg.SettingsRefresh,
	})
	a.srv.SettingsService.OnChange(func(s domain.Settings) {
		if err := a.scheduler.Apply(s); err != nil {
			zap.L().Error("can't apply new roi schedule", zap.Error(err))
		}
	})
	a.api = handlers.New(a.srv, a.scheduler, auth.NewJWTService(cfg.JWTSecret))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	if err = a.startScheduler(ctx); err != nil {
		return fmt.Errorf("can't start scheduler: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// buildGuard shares batch locks through redis when several instances run, otherwise locks are process local.
func buildGuard(cfg *config.Config) guard.Guard {
	if cfg.RedisAddr == "" {
		return guard.NewLocal()
	}
	client := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{cfg.RedisAddr}})
	return guard.NewRedis(client, "stakeledger:lock:", lockTTL)
}

func buildNotifier(cfg *config.Config) (notify.Notifier, error) {
	switch {
	case cfg.AMQPURL != "":
		rabbit, err := notify.NewRabbit(cfg.AMQPURL)
		if err != nil {
			return nil, err
		}
		return rabbit, nil
	case cfg.NotifyWebhook != "":
		return notify.NewWebhook(cfg.NotifyWebhook, clients.NewHTTPClient()), nil
	default:
		return notify.Noop{}, nil
	}
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startScheduler(ctx context.Context) error {
	if err := a.scheduler.Start(ctx); err != nil {
		return err
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		// running jobs may still enqueue work and publish events until cron lets go of them
		<-a.scheduler.Done()
		a.pool.Close()
		if err := a.notifier.Close(); err != nil {
			zap.L().Warn("can't close notifier", zap.Error(err))
		}
	}()
	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
