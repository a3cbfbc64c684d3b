package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/stakeledger/internal/domain"
)

type mocks struct {
	roi      *MockROIRunner
	levels   *MockLevelRunner
	capital  *MockCapitalRunner
	settings *MockSettingsReader
}

func NewMock(t *testing.T) (*Scheduler, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		roi:      NewMockROIRunner(ctrl),
		levels:   NewMockLevelRunner(ctrl),
		capital:  NewMockCapitalRunner(ctrl),
		settings: NewMockSettingsReader(ctrl),
	}
	return New(m.roi, m.levels, m.capital, m.settings, specs()), m
}

func specs() Specs {
	return Specs{Levels: "30 0 * * *", Capital: "15 1 * * *", Refresh: "@every 5m"}
}

func TestScheduler_Reschedule(t *testing.T) {
	ctx := context.Background()
	s, m := NewMock(t)

	m.settings.EXPECT().Get(ctx).Return(&domain.Settings{ROIScheduleTime: "00:00"}, nil)
	require.NoError(t, s.Reschedule(ctx))
	first := s.roiEntry
	assert.Equal(t, "CRON_TZ=UTC 0 0 * * *", s.Status().Spec)

	m.settings.EXPECT().Get(ctx).Return(&domain.Settings{ROIScheduleTime: "00:00"}, nil)
	require.NoError(t, s.Reschedule(ctx))
	assert.Equal(t, first, s.roiEntry, "unchanged time keeps the entry")

	require.NoError(t, s.Apply(domain.Settings{ROIScheduleTime: "06:30"}))
	assert.NotEqual(t, first, s.roiEntry)
	assert.Equal(t, "CRON_TZ=UTC 30 6 * * *", s.Status().Spec)
	assert.Len(t, s.cron.Entries(), 1)

	assert.ErrorIs(t, s.Apply(domain.Settings{ROIScheduleTime: "6pm"}), domain.ErrValidation)

	m.settings.EXPECT().Get(ctx).Return(nil, errors.New("db down"))
	assert.Error(t, s.Reschedule(ctx))
}

func TestScheduler_StartReportsNextRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s, m := NewMock(t)

	m.settings.EXPECT().Get(ctx).Return(&domain.Settings{ROIScheduleTime: "00:00"}, nil)
	require.NoError(t, s.Start(ctx))

	st := s.Status()
	require.NotNil(t, st.NextRun)
	assert.True(t, st.NextRun.After(time.Now()))
	assert.Equal(t, 0, st.NextRun.UTC().Hour())
	assert.Len(t, s.cron.Entries(), 4)
}

func TestScheduler_DoneAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s, m := NewMock(t)

	m.settings.EXPECT().Get(ctx).Return(&domain.Settings{ROIScheduleTime: "00:00"}, nil)
	require.NoError(t, s.Start(ctx))

	select {
	case <-s.Done():
		t.Fatal("done before the context was cancelled")
	default:
	}

	cancel()
	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_StartRejectsBadSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	for _, bad := range []Specs{
		{Levels: "not a spec", Capital: "15 1 * * *", Refresh: "@every 5m"},
		{Levels: "30 0 * * *", Capital: "tomorrow", Refresh: "@every 5m"},
	} {
		s := New(NewMockROIRunner(ctrl), NewMockLevelRunner(ctrl), NewMockCapitalRunner(ctrl), NewMockSettingsReader(ctrl), bad)
		assert.Error(t, s.Start(context.Background()))
	}
}

func TestScheduler_Jobs(t *testing.T) {
	s, m := NewMock(t)

	m.roi.EXPECT().RunDaily(gomock.Any(), time.Time{}).Return(&domain.ROISummary{Processed: 3}, nil)
	s.runROI()

	m.roi.EXPECT().RunDaily(gomock.Any(), time.Time{}).Return(nil, domain.NewError(domain.KindInvalidState, "roi run already in progress"))
	s.runROI()

	m.levels.EXPECT().RecomputeAll(gomock.Any()).Return(&domain.LevelSummary{
		Changes: []domain.LevelChange{{AccountID: 1, OldLevel: 1, NewLevel: 2}},
		Skipped: 1,
	}, nil)
	s.runLevels()

	m.levels.EXPECT().RecomputeAll(gomock.Any()).Return(nil, errors.New("db down"))
	s.runLevels()

	m.capital.EXPECT().ReleaseMatured(gomock.Any(), time.Time{}).Return(&domain.CapitalSummary{Released: 2}, nil)
	s.runCapital()

	m.capital.EXPECT().ReleaseMatured(gomock.Any(), time.Time{}).Return(nil, domain.NewError(domain.KindInvalidState, "capital release already in progress"))
	s.runCapital()

	m.settings.EXPECT().Get(gomock.Any()).Return(&domain.Settings{ROIScheduleTime: "12:00"}, nil)
	s.refresh()
	assert.Equal(t, "CRON_TZ=UTC 0 12 * * *", s.Status().Spec)
}
