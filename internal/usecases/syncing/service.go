package syncing

import (
	"context"
	"sync"

	"github.com/adlens/creative-audit-api/infrastructure/repository"
	"github.com/adlens/creative-audit-api/internal/config"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Syncer é a porta de entrada do motor de sincronização
type Syncer interface {
	SyncIntegration(ctx context.Context, integrationID string, sink Sink) (*domain.SyncHistory, error)
	LatestSync(integrationID string) (*domain.SyncHistory, error)
	SyncAllActive(ctx context.Context) (int, int)
}

type Service struct {
	cfg             *config.Config
	orchestrator    *Orchestrator
	integrationRepo repository.IntegrationRepository
	historyRepo     repository.SyncHistoryRepository

	mu     sync.Mutex
	active map[string]struct{}
}

func NewService(
	cfg *config.Config,
	orchestrator *Orchestrator,
	integrationRepo repository.IntegrationRepository,
	historyRepo repository.SyncHistoryRepository,
) *Service {
	return &Service{
		cfg:             cfg,
		orchestrator:    orchestrator,
		integrationRepo: integrationRepo,
		historyRepo:     historyRepo,
		active:          make(map[string]struct{}),
	}
}

// SyncIntegration executa uma sincronização completa da integração. No
// máximo uma execução por integração: tanto o guard em memória quanto uma
// linha `running` no histórico bloqueiam uma segunda chamada.
func (s *Service) SyncIntegration(ctx context.Context, integrationID string, sink Sink) (*domain.SyncHistory, error) {
	integration, err := s.integrationRepo.GetByID(integrationID)
	if err != nil {
		return nil, err
	}

	if integration == nil {
		return nil, ErrIntegrationNotFound
	}

	if integration.Status != domain.IntegrationStatusActive {
		return nil, ErrIntegrationInactive
	}

	if !integration.Platform.Valid() {
		return nil, ErrPlatformNotSupported
	}

	if err := s.acquire(integrationID); err != nil {
		return nil, err
	}
	defer s.release(integrationID)

	reporter := NewReporter(sink, s.cfg.Sync.ProgressEvery)

	return s.orchestrator.Run(ctx, integration, reporter)
}

func (s *Service) acquire(integrationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.active[integrationID]; busy {
		return ErrSyncAlreadyInProgress
	}

	running, err := s.historyRepo.HasRunning(integrationID)
	if err != nil {
		return err
	}

	if running {
		return ErrSyncAlreadyInProgress
	}

	s.active[integrationID] = struct{}{}
	return nil
}

func (s *Service) release(integrationID string) {
	s.mu.Lock()
	delete(s.active, integrationID)
	s.mu.Unlock()
}

// LatestSync devolve o registro mais recente do histórico da integração
func (s *Service) LatestSync(integrationID string) (*domain.SyncHistory, error) {
	return s.historyRepo.GetLatestByIntegration(integrationID)
}

// SyncAllActive sincroniza todas as integrações ativas em sequência e devolve
// quantas terminaram bem e quantas falharam. Usada pelo agendador.
func (s *Service) SyncAllActive(ctx context.Context) (int, int) {
	integrations, err := s.integrationRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar integrações ativas para sincronização")
		return 0, 0
	}

	succeeded := 0
	failed := 0

	for _, integration := range integrations {
		if ctx.Err() != nil {
			logrus.Info("Sincronização em lote interrompida pelo contexto")
			break
		}

		history, err := s.SyncIntegration(ctx, integration.ID, NopSink{})
		if err != nil {
			failed++
			logrus.WithError(err).WithField("integration_id", integration.ID).Error("Erro ao sincronizar integração")
			continue
		}

		if history.Status == domain.SyncStatusFailed {
			failed++
			continue
		}

		succeeded++
	}

	return succeeded, failed
}
