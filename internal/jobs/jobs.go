package jobs

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/pkg/logger"
)

//go:generate mockgen -source=jobs.go -destination=mock_jobs.go -package=jobs

type ROIRunner interface {
	RunDaily(ctx context.Context, asOf time.Time) (*domain.ROISummary, error)
}

type LevelRunner interface {
	RecomputeAll(ctx context.Context) (*domain.LevelSummary, error)
}

type CapitalRunner interface {
	ReleaseMatured(ctx context.Context, asOf time.Time) (*domain.CapitalSummary, error)
}

type SettingsReader interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// Schedule describes where the ROI job currently sits on the clock.
type Schedule struct {
	Spec    string     `json:"schedule"`
	NextRun *time.Time `json:"next_run,omitempty"`
}

// Specs are the cron expressions of the fixed jobs. The ROI job follows settings instead.
type Specs struct {
	Levels  string
	Capital string
	Refresh string
}

type Scheduler struct {
	cron     *cron.Cron
	roi      ROIRunner
	levels   LevelRunner
	capital  CapitalRunner
	settings SettingsReader
	specs    Specs
	done     chan struct{}

	mu       sync.Mutex
	ctx      context.Context
	roiSpec  string
	roiEntry cron.EntryID
}

func New(roi ROIRunner, levels LevelRunner, capital CapitalRunner, settings SettingsReader, specs Specs) *Scheduler {
	cronLogger := cron.PrintfLogger(zap.NewStdLog(zap.L().Named("cron")))
	return &Scheduler{
		cron:     cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))),
		roi:      roi,
		levels:   levels,
		capital:  capital,
		settings: settings,
		specs:    specs,
		done:     make(chan struct{}),
		ctx:      context.Background(),
	}
}

// Start registers the jobs and runs the cron loop until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	fixed := []struct {
		spec string
		job  func()
	}{
		{s.specs.Levels, s.runLevels},
		{s.specs.Capital, s.runCapital},
		{s.specs.Refresh, s.refresh},
	}
	for _, f := range fixed {
		if _, err := s.cron.AddFunc(f.spec, f.job); err != nil {
			return err
		}
	}
	if err := s.Reschedule(ctx); err != nil {
		return err
	}

	s.cron.Start()
	zap.L().Info("scheduler started",
		zap.String("levels", s.specs.Levels),
		zap.String("capital", s.specs.Capital),
		zap.String("refresh", s.specs.Refresh),
		zap.String("roi", s.Status().Spec))

	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
		zap.L().Info("scheduler stopped")
		close(s.done)
	}()
	return nil
}

// Done is closed once the cron loop has stopped and every running job has returned.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Reschedule reads the ROI time from settings and moves the ROI job if it changed.
func (s *Scheduler) Reschedule(ctx context.Context) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	return s.Apply(*settings)
}

// Apply moves the ROI job to the time in settings. It is safe to call from settings change hooks.
func (s *Scheduler) Apply(settings domain.Settings) error {
	spec, err := settings.ROICronSpec()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if spec == s.roiSpec {
		return nil
	}
	id, err := s.cron.AddFunc(spec, s.runROI)
	if err != nil {
		return err
	}
	if s.roiEntry != 0 {
		s.cron.Remove(s.roiEntry)
	}
	if s.roiSpec != "" {
		zap.L().Info("roi job rescheduled", zap.String("from", s.roiSpec), zap.String("to", spec))
	}
	s.roiEntry = id
	s.roiSpec = spec
	return nil
}

func (s *Scheduler) Status() Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Schedule{Spec: s.roiSpec}
	if s.roiEntry == 0 {
		return st
	}
	if next := s.cron.Entry(s.roiEntry).Next; !next.IsZero() {
		st.NextRun = &next
	}
	return st
}

func (s *Scheduler) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

func (s *Scheduler) runROI() {
	log := logger.Job("roi")
	if _, err := s.roi.RunDaily(s.context(), time.Time{}); err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			log.Info("skipping scheduled roi run", zap.Error(err))
			return
		}
		log.Error("scheduled roi run failed", zap.Error(err))
	}
}

func (s *Scheduler) runLevels() {
	log := logger.Job("levels")
	summary, err := s.levels.RecomputeAll(s.context())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			log.Info("skipping scheduled level recompute", zap.Error(err))
			return
		}
		log.Error("scheduled level recompute failed", zap.Error(err))
		return
	}
	log.Info("scheduled level recompute finished",
		zap.Int("changed", len(summary.Changes)),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", len(summary.Failures)))
}

func (s *Scheduler) runCapital() {
	log := logger.Job("capital")
	if _, err := s.capital.ReleaseMatured(s.context(), time.Time{}); err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			log.Info("skipping scheduled capital release", zap.Error(err))
			return
		}
		log.Error("scheduled capital release failed", zap.Error(err))
	}
}

func (s *Scheduler) refresh() {
	if err := s.Reschedule(s.context()); err != nil {
		zap.L().Error("failed to refresh roi schedule", zap.Error(err))
	}
}
