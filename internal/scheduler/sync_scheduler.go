package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/adlens/creative-audit-api/infrastructure/repository"
	"github.com/adlens/creative-audit-api/internal/config"
	"github.com/adlens/creative-audit-api/internal/usecases/syncing"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// SyncSchedulerConfig representa a configuração do agendador de sincronização
type SyncSchedulerConfig struct {
	CronSchedule    string
	Enabled         bool
	StaleAfterHours int
}

// SyncSchedulerService agenda a sincronização diária de todas as integrações
// ativas e a varredura de execuções abandonadas em `running`
type SyncSchedulerService struct {
	scheduler   *gocron.Scheduler
	config      SyncSchedulerConfig
	appConfig   *config.Config
	syncService syncing.Syncer
	historyRepo repository.SyncHistoryRepository

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSyncSchedulerService cria uma nova instância do agendador de sincronização
func NewSyncSchedulerService(
	syncService syncing.Syncer,
	historyRepo repository.SyncHistoryRepository,
	appConfig *config.Config,
) *SyncSchedulerService {
	schedulerConfig := SyncSchedulerConfig{
		CronSchedule:    appConfig.SyncScheduler.CronSchedule,
		Enabled:         appConfig.SyncScheduler.Enabled,
		StaleAfterHours: appConfig.SyncScheduler.StaleAfterHours,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":     schedulerConfig.CronSchedule,
		"enabled":           schedulerConfig.Enabled,
		"stale_after_hours": schedulerConfig.StaleAfterHours,
	}).Info("Configuração do agendador de sincronização carregada")

	return &SyncSchedulerService{
		scheduler:   scheduler,
		config:      schedulerConfig,
		appConfig:   appConfig,
		syncService: syncService,
		historyRepo: historyRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *SyncSchedulerService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Agendador de sincronização desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de integrações")

	// Agendar a sincronização completa de todas as integrações ativas
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllIntegrations(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de integrações: %w", err)
	}

	// Varredura horária de execuções presas em running
	_, err = s.scheduler.Every(1).Hour().Do(func() {
		s.sweepStaleRuns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de execuções abandonadas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de integrações")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllIntegrations sincroniza todas as integrações ativas
func (s *SyncSchedulerService) syncAllIntegrations(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização agendada já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.Info("Iniciando sincronização agendada de todas as integrações ativas")

	succeeded, failed := s.syncService.SyncAllActive(ctx)

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"succeeded": succeeded,
		"failed":    failed,
	}).Info("Sincronização agendada concluída")
}

// sweepStaleRuns falha execuções presas em running além do limite configurado
func (s *SyncSchedulerService) sweepStaleRuns() {
	staleAfter := time.Duration(s.config.StaleAfterHours) * time.Hour

	marked, err := s.historyRepo.MarkStaleFailed(staleAfter)
	if err != nil {
		logrus.WithError(err).Error("Erro na varredura de execuções abandonadas")
		return
	}

	if marked > 0 {
		logrus.WithField("marked", marked).Warn("Execuções abandonadas marcadas como failed")
	}
}

// TriggerManualSync inicia manualmente uma sincronização de todas as
// integrações. Roda em segundo plano com contexto próprio para não morrer
// junto com a requisição que disparou.
func (s *SyncSchedulerService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização já em andamento, gatilho manual ignorado")
		return
	}
	s.syncMutex.Unlock()

	go s.syncAllIntegrations(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SyncSchedulerService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_enabled":           s.config.Enabled,
		"cron_schedule":          s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
