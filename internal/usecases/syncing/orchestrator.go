package syncing

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/adlens/creative-audit-api/infrastructure/integrator"
	"github.com/adlens/creative-audit-api/infrastructure/repository"
	"github.com/adlens/creative-audit-api/internal/config"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/adlens/creative-audit-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// CreativeImageCacher grava uma cópia interna da imagem do criativo e devolve
// a URL da cópia
type CreativeImageCacher interface {
	CacheImage(ctx context.Context, creativeID, sourceURL string) (string, error)
}

// Orchestrator executa uma sincronização de ponta a ponta: cria o registro de
// histórico, percorre a hierarquia nível a nível (campanhas, depois conjuntos,
// depois criativos) com workers limitados, reconcilia cada escopo e finaliza o
// histórico exatamente uma vez. Um nível só começa quando o anterior fechou,
// porque cada filho precisa do id local do pai.
type Orchestrator struct {
	cfg             *config.Config
	registry        *integrator.Registry
	reconciler      *Reconciler
	integrationRepo repository.IntegrationRepository
	historyRepo     repository.SyncHistoryRepository
	creativeRepo    repository.CreativeRepository
	imageCacher     CreativeImageCacher
}

func NewOrchestrator(
	cfg *config.Config,
	registry *integrator.Registry,
	reconciler *Reconciler,
	integrationRepo repository.IntegrationRepository,
	historyRepo repository.SyncHistoryRepository,
	creativeRepo repository.CreativeRepository,
) *Orchestrator {
	return &Orchestrator{
		cfg:             cfg,
		registry:        registry,
		reconciler:      reconciler,
		integrationRepo: integrationRepo,
		historyRepo:     historyRepo,
		creativeRepo:    creativeRepo,
	}
}

// WithImageCacher habilita o cache interno das imagens dos criativos
func (o *Orchestrator) WithImageCacher(cacher CreativeImageCacher) *Orchestrator {
	o.imageCacher = cacher
	return o
}

type campaignOutcome struct {
	adSetsSynced    int
	creativesSynced int
	deleted         int64
	skipped         int
	err             error
}

// campaignSync carrega o estado de uma campanha entre os níveis da travessia:
// os conjuntos reconciliados no nível 2 alimentam a busca de criativos no
// nível 3.
type campaignSync struct {
	campaign *domain.Campaign
	adSets   []*domain.AdSet
	outcome  campaignOutcome
}

// Run executa a sincronização da integração e devolve o histórico finalizado.
// O histórico sempre termina em completed, partial ou failed, mesmo em caso
// de erro.
func (o *Orchestrator) Run(ctx context.Context, integration *domain.Integration, reporter *Reporter) (*domain.SyncHistory, error) {
	client, ok := o.registry.Resolve(integration.Platform)
	if !ok {
		return nil, ErrPlatformNotSupported
	}

	historyID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	history := &domain.SyncHistory{
		ID:            historyID,
		IntegrationID: integration.ID,
		Status:        domain.SyncStatusRunning,
		StartedAt:     time.Now().UTC(),
	}

	if err := o.historyRepo.Create(history); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"integration_id": integration.ID,
		"platform":       integration.Platform,
		"sync_id":        history.ID,
	}).Info("Iniciando sincronização da integração")

	reporter.Start(fmt.Sprintf("Sincronização iniciada para a integração %s", integration.ID))

	// Etapa 1: buscar e reconciliar campanhas
	reporter.Step("campaigns", "Buscando campanhas da plataforma")

	campaigns, mappingSkips, err := o.fetchCampaigns(ctx, client, integration, reporter)
	if err != nil {
		return o.finalize(history, domain.SyncStatusFailed, reporter, err)
	}

	campaignResult, err := o.reconciler.ReconcileCampaigns(ctx, integration, campaigns, true)
	if err != nil {
		return o.finalize(history, domain.SyncStatusFailed, reporter, err)
	}

	history.CampaignsSynced = campaignResult.Processed()
	history.DeletedRecords += int(campaignResult.Deleted)
	history.SkippedRecords += mappingSkips

	reporter.StepComplete("campaigns", fmt.Sprintf("%d campanhas sincronizadas", campaignResult.Processed()))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	syncs := make([]*campaignSync, 0, len(campaigns))
	for _, campaign := range campaigns {
		syncs = append(syncs, &campaignSync{campaign: campaign})
	}

	// Etapa 2: conjuntos de anúncios de todas as campanhas, com workers
	// limitados. O nível fecha por inteiro antes de descer para os criativos.
	reporter.Step("ad_sets", "Sincronizando conjuntos de anúncios")

	o.runLevel(runCtx, cancel, syncs, reporter, "ad_sets", func(s *campaignSync) {
		o.syncAdSets(runCtx, client, integration, s)
	})

	adSetsSynced := 0
	for _, s := range syncs {
		adSetsSynced += s.outcome.adSetsSynced
	}
	reporter.StepComplete("ad_sets", fmt.Sprintf("%d conjuntos sincronizados", adSetsSynced))

	// Etapa 3: criativos dos conjuntos reconciliados. Campanhas que falharam
	// no nível anterior ficam de fora para não criar filhos de pais incertos.
	reporter.Step("creatives", "Sincronizando criativos")

	healthy := make([]*campaignSync, 0, len(syncs))
	for _, s := range syncs {
		if s.outcome.err == nil && len(s.adSets) > 0 {
			healthy = append(healthy, s)
		}
	}

	o.runLevel(runCtx, cancel, healthy, reporter, "creatives", func(s *campaignSync) {
		o.syncCreatives(runCtx, client, integration, s)
	})

	creativesSynced := 0
	for _, s := range syncs {
		creativesSynced += s.outcome.creativesSynced
	}
	reporter.StepComplete("creatives", fmt.Sprintf("%d criativos sincronizados", creativesSynced))

	var (
		failures     []error
		tokenInvalid bool
	)

	for _, s := range syncs {
		history.AdSetsSynced += s.outcome.adSetsSynced
		history.CreativesSynced += s.outcome.creativesSynced
		history.DeletedRecords += int(s.outcome.deleted)
		history.SkippedRecords += s.outcome.skipped

		if s.outcome.err != nil {
			failures = append(failures, s.outcome.err)
			if integrator.IsTokenInvalid(s.outcome.err) {
				tokenInvalid = true
			}
		}
	}

	switch {
	case tokenInvalid:
		return o.finalize(history, domain.SyncStatusFailed, reporter, joinErrors(failures))
	case len(failures) == 0:
		return o.finalize(history, domain.SyncStatusCompleted, reporter, nil)
	case len(failures) < len(campaigns):
		return o.finalize(history, domain.SyncStatusPartial, reporter, joinErrors(failures))
	default:
		return o.finalize(history, domain.SyncStatusFailed, reporter, joinErrors(failures))
	}
}

func (o *Orchestrator) fetchCampaigns(ctx context.Context, client integrator.PlatformClient, integration *domain.Integration, reporter *Reporter) ([]*domain.Campaign, int, error) {
	campaigns := make([]*domain.Campaign, 0)
	skipped := 0
	cursor := ""

	for {
		page, err := client.FetchCampaigns(ctx, integration, cursor)
		if err != nil {
			return nil, skipped, err
		}

		for _, raw := range page.Items {
			campaign, err := MapCampaign(raw, integration)
			if err != nil {
				skipped++
				logrus.WithError(err).Warn("Campanha ignorada por erro de mapeamento")
				continue
			}
			campaigns = append(campaigns, campaign)
		}

		reporter.Progress("campaigns", len(campaigns), 0)

		if page.NextCursor == "" {
			return campaigns, skipped, nil
		}
		cursor = page.NextCursor

		time.Sleep(o.cfg.Sync.RequestDelay())
	}
}

// runLevel percorre as campanhas do nível com workers limitados. O início de
// cada worker é espaçado pelo delay configurado para não estourar o limite da
// API; token inválido cancela o contexto e derruba o restante do nível.
func (o *Orchestrator) runLevel(ctx context.Context, cancel context.CancelFunc, syncs []*campaignSync, reporter *Reporter, step string, work func(*campaignSync)) {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		processed int
	)

	semaphore := make(chan struct{}, o.cfg.Sync.MaxWorkers)

	for i, s := range syncs {
		if i > 0 {
			time.Sleep(o.cfg.Sync.RequestDelay())
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(s *campaignSync) {
			defer wg.Done()
			defer func() { <-semaphore }()

			work(s)

			mu.Lock()
			processed++
			current := processed
			mu.Unlock()

			if s.outcome.err != nil && integrator.IsTokenInvalid(s.outcome.err) {
				// Token inválido não se recupera repetindo; aborta o resto
				cancel()
			}

			reporter.Progress(step, current, len(syncs))
		}(s)
	}

	wg.Wait()
}

// syncAdSets busca e reconcilia os conjuntos de anúncios de uma campanha. Um
// erro aqui falha só a campanha, não a execução inteira.
func (o *Orchestrator) syncAdSets(ctx context.Context, client integrator.PlatformClient, integration *domain.Integration, s *campaignSync) {
	adSets := make([]*domain.AdSet, 0)
	cursor := ""

	for {
		page, err := client.FetchAdSets(ctx, integration, s.campaign.ExternalID, cursor)
		if err != nil {
			s.outcome.err = fmt.Errorf("campanha %s: %w", s.campaign.ExternalID, err)
			return
		}

		for _, raw := range page.Items {
			adSet, err := MapAdSet(raw, s.campaign, integration.Platform)
			if err != nil {
				s.outcome.skipped++
				logrus.WithError(err).Warn("Conjunto de anúncios ignorado por erro de mapeamento")
				continue
			}
			adSets = append(adSets, adSet)
		}

		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor

		time.Sleep(o.cfg.Sync.RequestDelay())
	}

	adSetResult, err := o.reconciler.ReconcileAdSets(ctx, s.campaign.ID, adSets, true)
	if err != nil {
		s.outcome.err = fmt.Errorf("campanha %s: %w", s.campaign.ExternalID, err)
		return
	}

	s.adSets = adSets
	s.outcome.adSetsSynced = adSetResult.Processed()
	s.outcome.deleted += adSetResult.Deleted
}

// syncCreatives busca em lote e reconcilia os criativos dos conjuntos já
// reconciliados de uma campanha.
func (o *Orchestrator) syncCreatives(ctx context.Context, client integrator.PlatformClient, integration *domain.Integration, s *campaignSync) {
	adSetExternalIDs := make([]string, 0, len(s.adSets))
	for _, adSet := range s.adSets {
		adSetExternalIDs = append(adSetExternalIDs, adSet.ExternalID)
	}

	creativesByAdSet, err := client.FetchCreativesBatch(ctx, integration, adSetExternalIDs)
	if err != nil {
		s.outcome.err = fmt.Errorf("campanha %s: %w", s.campaign.ExternalID, err)
		return
	}

	for _, adSet := range s.adSets {
		creatives := make([]*domain.Creative, 0, len(creativesByAdSet[adSet.ExternalID]))

		for _, raw := range creativesByAdSet[adSet.ExternalID] {
			creative, err := MapCreative(raw, adSet, s.campaign, integration.Platform)
			if err != nil {
				s.outcome.skipped++
				logrus.WithError(err).Warn("Criativo ignorado por erro de mapeamento")
				continue
			}
			creatives = append(creatives, creative)
		}

		creativeResult, err := o.reconciler.ReconcileCreatives(ctx, adSet.ID, creatives, true)
		if err != nil {
			s.outcome.err = fmt.Errorf("campanha %s: %w", s.campaign.ExternalID, err)
			return
		}

		s.outcome.creativesSynced += creativeResult.Processed()
		s.outcome.deleted += creativeResult.Deleted

		o.cacheImages(ctx, creatives)
	}
}

// cacheImages copia as imagens dos criativos para o bucket interno. Falha de
// cache não falha a sincronização.
func (o *Orchestrator) cacheImages(ctx context.Context, creatives []*domain.Creative) {
	if o.imageCacher == nil {
		return
	}

	for _, creative := range creatives {
		if creative.ImageURL == "" || strings.HasPrefix(creative.ImageURL, o.cfg.MediaCache.PublicBaseURL) {
			continue
		}

		cachedURL, err := o.imageCacher.CacheImage(ctx, creative.ID, creative.ImageURL)
		if err != nil {
			logrus.WithError(err).WithField("creative_id", creative.ID).Warn("Falha ao cachear imagem do criativo")
			continue
		}

		if err := o.creativeRepo.UpdateImageURL(creative.ID, cachedURL); err != nil {
			logrus.WithError(err).WithField("creative_id", creative.ID).Warn("Falha ao atualizar URL da imagem cacheada")
		}
	}
}

func (o *Orchestrator) finalize(history *domain.SyncHistory, status domain.SyncStatus, reporter *Reporter, runErr error) (*domain.SyncHistory, error) {
	now := time.Now().UTC()
	history.Status = status
	history.CompletedAt = &now

	if runErr != nil {
		message := runErr.Error()
		history.ErrorMessage = &message
	}

	if err := o.historyRepo.Finalize(history); err != nil {
		logrus.WithError(err).WithField("sync_id", history.ID).Error("Erro ao finalizar histórico de sincronização")
	}

	// last_sync só avança quando a execução escreveu algo confiável
	if status == domain.SyncStatusCompleted || status == domain.SyncStatusPartial {
		if err := o.integrationRepo.MarkSynced(history.IntegrationID, status == domain.SyncStatusCompleted, now); err != nil {
			logrus.WithError(err).WithField("integration_id", history.IntegrationID).Error("Erro ao registrar última sincronização")
		}
	}

	switch status {
	case domain.SyncStatusFailed:
		if runErr != nil {
			reporter.Error(runErr.Error())
		} else {
			reporter.Error("Sincronização falhou")
		}
	default:
		reporter.Complete(fmt.Sprintf("Sincronização finalizada com status %s", status))
	}

	logrus.WithFields(logrus.Fields{
		"sync_id":          history.ID,
		"integration_id":   history.IntegrationID,
		"status":           status,
		"campaigns_synced": history.CampaignsSynced,
		"ad_sets_synced":   history.AdSetsSynced,
		"creatives_synced": history.CreativesSynced,
		"deleted_records":  history.DeletedRecords,
		"skipped_records":  history.SkippedRecords,
	}).Info("Sincronização finalizada")

	return history, runErr
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}

	return fmt.Errorf("%d campanhas falharam: %s", len(errs), strings.Join(messages, "; "))
}
