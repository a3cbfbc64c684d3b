package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/stakeledger/internal/config"
	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/internal/jobs"
	"github.com/GlebRadaev/stakeledger/pkg/guard"
	"github.com/GlebRadaev/stakeledger/pkg/notify"
	"github.com/GlebRadaev/stakeledger/pkg/workerpool"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWaitWithoutErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestBuildGuard() {
	s.IsType(&guard.Local{}, buildGuard(&config.Config{}))
	s.IsType(&guard.Redis{}, buildGuard(&config.Config{RedisAddr: "localhost:6379"}))
}

func (s *ApplicationSuite) TestBuildNotifier() {
	n, err := buildNotifier(&config.Config{})
	s.Require().NoError(err)
	s.IsType(notify.Noop{}, n)

	n, err = buildNotifier(&config.Config{NotifyWebhook: "http://localhost:9000/events"})
	s.Require().NoError(err)
	s.IsType(&notify.Webhook{}, n)

	_, err = buildNotifier(&config.Config{AMQPURL: "://broken"})
	s.Error(err)
}

func (s *ApplicationSuite) TestStartSchedulerClosesPoolAfterStop() {
	ctrl := gomock.NewController(s.T())
	ctx, cancel := context.WithCancel(context.Background())

	settings := jobs.NewMockSettingsReader(ctrl)
	settings.EXPECT().Get(ctx).Return(&domain.Settings{ROIScheduleTime: "00:00"}, nil)
	s.app.scheduler = jobs.New(jobs.NewMockROIRunner(ctrl), jobs.NewMockLevelRunner(ctrl), jobs.NewMockCapitalRunner(ctrl),
		settings, jobs.Specs{Levels: "30 0 * * *", Capital: "15 1 * * *", Refresh: "@every 5m"})
	pool := workerpool.New(1)
	s.app.pool = pool
	s.app.notifier = notify.Noop{}

	s.Require().NoError(s.app.startScheduler(ctx))
	s.NoError(pool.AddTask(ctx, func() error { return nil }))

	cancel()
	s.app.wg.Wait()

	select {
	case <-s.app.scheduler.Done():
	default:
		s.Fail("pool closed before the scheduler stopped")
	}
	s.ErrorIs(pool.AddTask(context.Background(), func() error { return nil }), workerpool.ErrClosed)
}
