package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adlens/creative-audit-api/infrastructure/repository/mocks"
	"github.com/adlens/creative-audit-api/internal/config"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/adlens/creative-audit-api/internal/usecases/syncing"
)

type fakeSyncer struct {
	syncAllCalls int
	succeeded    int
	failed       int
}

func (f *fakeSyncer) SyncIntegration(_ context.Context, _ string, _ syncing.Sink) (*domain.SyncHistory, error) {
	return nil, nil
}

func (f *fakeSyncer) LatestSync(_ string) (*domain.SyncHistory, error) {
	return nil, nil
}

func (f *fakeSyncer) SyncAllActive(_ context.Context) (int, int) {
	f.syncAllCalls++
	return f.succeeded, f.failed
}

func newSchedulerForTest(t *testing.T, syncer syncing.Syncer) (*SyncSchedulerService, *mocks.MockSyncHistoryRepository) {
	ctrl := gomock.NewController(t)
	historyRepo := mocks.NewMockSyncHistoryRepository(ctrl)

	cfg := &config.Config{}
	cfg.SyncScheduler.CronSchedule = "0 3 * * *"
	cfg.SyncScheduler.Enabled = true
	cfg.SyncScheduler.StaleAfterHours = 6

	return NewSyncSchedulerService(syncer, historyRepo, cfg), historyRepo
}

func TestSyncSchedulerService_SyncAllIntegrations(t *testing.T) {
	t.Run("Executa a sincronização e registra os horários", func(t *testing.T) {
		syncer := &fakeSyncer{succeeded: 2, failed: 1}
		service, _ := newSchedulerForTest(t, syncer)

		service.syncAllIntegrations(context.Background())

		assert.Equal(t, 1, syncer.syncAllCalls)

		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
		assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})

	t.Run("Execução concorrente é ignorada", func(t *testing.T) {
		syncer := &fakeSyncer{}
		service, _ := newSchedulerForTest(t, syncer)

		service.syncMutex.Lock()
		service.syncRunning = true
		service.syncMutex.Unlock()

		service.syncAllIntegrations(context.Background())

		assert.Equal(t, 0, syncer.syncAllCalls)
	})
}

func TestSyncSchedulerService_SweepStaleRuns(t *testing.T) {
	t.Run("Varre com o limite configurado", func(t *testing.T) {
		service, historyRepo := newSchedulerForTest(t, &fakeSyncer{})

		historyRepo.EXPECT().MarkStaleFailed(6*time.Hour).Return(int64(2), nil)

		service.sweepStaleRuns()
	})

	t.Run("Erro na varredura não derruba o agendador", func(t *testing.T) {
		service, historyRepo := newSchedulerForTest(t, &fakeSyncer{})

		historyRepo.EXPECT().MarkStaleFailed(gomock.Any()).Return(int64(0), assert.AnError)

		assert.NotPanics(t, func() {
			service.sweepStaleRuns()
		})
	})
}

func TestSyncSchedulerService_StartDesabilitado(t *testing.T) {
	syncer := &fakeSyncer{}
	service, _ := newSchedulerForTest(t, syncer)
	service.config.Enabled = false

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, 0, syncer.syncAllCalls)
}
