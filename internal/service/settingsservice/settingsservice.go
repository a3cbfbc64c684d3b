package settingsservice

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

//go:generate mockgen -source=settingsservice.go -destination=mock_settingsservice.go -package=settingsservice

type Repo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) (*domain.Settings, error)
}

// Service reads settings from storage on every call; nothing is cached in process.
type Service struct {
	repo Repo

	mu        sync.RWMutex
	listeners []func(domain.Settings)
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	return s.repo.Get(ctx)
}

func (s *Service) Update(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	next, err := patch.Apply(*current)
	if err != nil {
		return nil, err
	}
	saved, err := s.repo.Save(ctx, next)
	if err != nil {
		return nil, err
	}
	zap.L().Info("settings updated",
		zap.String("roiScheduleTime", saved.ROIScheduleTime),
		zap.Ints("allowedWithdrawalDays", saved.AllowedWithdrawalDays))

	s.mu.RLock()
	listeners := append([]func(domain.Settings){}, s.listeners...)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn(*saved)
	}
	return saved, nil
}

// OnChange registers fn to run after every successful update.
func (s *Service) OnChange(fn func(domain.Settings)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}
