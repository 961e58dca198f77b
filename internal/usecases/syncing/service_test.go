package syncing

import (
	"context"
	"testing"

	"github.com/adlens/creative-audit-api/internal/config"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServiceForTest(ctrl *gomock.Controller) (*Service, orchestratorMocks) {
	orchestrator, m := newOrchestratorForTest(ctrl)

	cfg := &config.Config{
		Sync: config.Sync{ProgressEvery: 1, MaxWorkers: 2},
	}

	return NewService(cfg, orchestrator, m.integrationRepo, m.historyRepo), m
}

func TestService_SyncIntegration_Guards(t *testing.T) {
	t.Run("Integração inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceForTest(ctrl)

		m.integrationRepo.EXPECT().GetByID("INT404").Return(nil, nil)

		_, err := service.SyncIntegration(context.Background(), "INT404", NopSink{})
		assert.ErrorIs(t, err, ErrIntegrationNotFound)
	})

	t.Run("Integração inativa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceForTest(ctrl)

		m.integrationRepo.EXPECT().GetByID("INT001").Return(&domain.Integration{
			ID:       "INT001",
			Platform: domain.PlatformMeta,
			Status:   domain.IntegrationStatusInactive,
		}, nil)

		_, err := service.SyncIntegration(context.Background(), "INT001", NopSink{})
		assert.ErrorIs(t, err, ErrIntegrationInactive)
	})

	t.Run("Plataforma desconhecida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceForTest(ctrl)

		m.integrationRepo.EXPECT().GetByID("INT001").Return(&domain.Integration{
			ID:       "INT001",
			Platform: domain.Platform("tiktok"),
			Status:   domain.IntegrationStatusActive,
		}, nil)

		_, err := service.SyncIntegration(context.Background(), "INT001", NopSink{})
		assert.ErrorIs(t, err, ErrPlatformNotSupported)
	})

	t.Run("Execução já registrada no histórico bloqueia nova execução", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceForTest(ctrl)

		m.integrationRepo.EXPECT().GetByID("INT001").Return(&domain.Integration{
			ID:       "INT001",
			Platform: domain.PlatformMeta,
			Status:   domain.IntegrationStatusActive,
		}, nil)

		m.historyRepo.EXPECT().HasRunning("INT001").Return(true, nil)

		_, err := service.SyncIntegration(context.Background(), "INT001", NopSink{})
		assert.ErrorIs(t, err, ErrSyncAlreadyInProgress)
	})

	t.Run("Guard em memória bloqueia sem consultar o histórico", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceForTest(ctrl)

		// Simula execução em andamento marcada pelo próprio processo
		service.active["INT001"] = struct{}{}

		m.integrationRepo.EXPECT().GetByID("INT001").Return(&domain.Integration{
			ID:       "INT001",
			Platform: domain.PlatformMeta,
			Status:   domain.IntegrationStatusActive,
		}, nil)

		_, err := service.SyncIntegration(context.Background(), "INT001", NopSink{})
		assert.ErrorIs(t, err, ErrSyncAlreadyInProgress)
	})
}

func TestService_SyncAllActive(t *testing.T) {
	t.Run("Sem integrações ativas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceForTest(ctrl)

		m.integrationRepo.EXPECT().ListActive().Return(nil, nil)

		succeeded, failed := service.SyncAllActive(context.Background())
		assert.Equal(t, 0, succeeded)
		assert.Equal(t, 0, failed)
	})

	t.Run("Integração inativa no meio da lista conta como falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceForTest(ctrl)

		m.integrationRepo.EXPECT().ListActive().Return([]*domain.Integration{
			{ID: "INT001", Platform: domain.PlatformMeta, Status: domain.IntegrationStatusActive},
		}, nil)

		// A integração foi desativada entre a listagem e a execução
		m.integrationRepo.EXPECT().GetByID("INT001").Return(&domain.Integration{
			ID:       "INT001",
			Platform: domain.PlatformMeta,
			Status:   domain.IntegrationStatusInactive,
		}, nil)

		succeeded, failed := service.SyncAllActive(context.Background())
		assert.Equal(t, 0, succeeded)
		assert.Equal(t, 1, failed)
	})

	t.Run("Contexto cancelado interrompe o lote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceForTest(ctrl)

		m.integrationRepo.EXPECT().ListActive().Return([]*domain.Integration{
			{ID: "INT001", Platform: domain.PlatformMeta, Status: domain.IntegrationStatusActive},
			{ID: "INT002", Platform: domain.PlatformMeta, Status: domain.IntegrationStatusActive},
		}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		succeeded, failed := service.SyncAllActive(ctx)
		assert.Equal(t, 0, succeeded)
		assert.Equal(t, 0, failed)
	})
}
