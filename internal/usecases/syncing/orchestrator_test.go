package syncing

import (
	"context"
	"testing"

	"github.com/adlens/creative-audit-api/infrastructure/integrator"
	integratormocks "github.com/adlens/creative-audit-api/infrastructure/integrator/mocks"
	"github.com/adlens/creative-audit-api/infrastructure/repository/mocks"
	"github.com/adlens/creative-audit-api/internal/config"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type orchestratorMocks struct {
	client          *integratormocks.MockPlatformClient
	campaignRepo    *mocks.MockCampaignRepository
	adSetRepo       *mocks.MockAdSetRepository
	creativeRepo    *mocks.MockCreativeRepository
	integrationRepo *mocks.MockIntegrationRepository
	historyRepo     *mocks.MockSyncHistoryRepository
}

func newOrchestratorForTest(ctrl *gomock.Controller) (*Orchestrator, orchestratorMocks) {
	m := orchestratorMocks{
		client:          integratormocks.NewMockPlatformClient(ctrl),
		campaignRepo:    mocks.NewMockCampaignRepository(ctrl),
		adSetRepo:       mocks.NewMockAdSetRepository(ctrl),
		creativeRepo:    mocks.NewMockCreativeRepository(ctrl),
		integrationRepo: mocks.NewMockIntegrationRepository(ctrl),
		historyRepo:     mocks.NewMockSyncHistoryRepository(ctrl),
	}

	m.client.EXPECT().Platform().Return(domain.PlatformMeta).AnyTimes()

	cfg := &config.Config{
		Sync: config.Sync{
			RequestDelaySeconds: 0,
			MaxWorkers:          2,
			ProgressEvery:       1,
		},
	}

	orchestrator := NewOrchestrator(
		cfg,
		integrator.NewRegistry(m.client),
		NewReconciler(m.campaignRepo, m.adSetRepo, m.creativeRepo),
		m.integrationRepo,
		m.historyRepo,
		m.creativeRepo,
	)

	return orchestrator, m
}

func metaIntegrationForTest() *domain.Integration {
	return &domain.Integration{
		ID:        "INT001",
		CompanyID: "COMP01",
		Platform:  domain.PlatformMeta,
		Status:    domain.IntegrationStatusActive,
	}
}

func TestOrchestrator_Run_Completed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator, m := newOrchestratorForTest(ctrl)
	integration := metaIntegrationForTest()

	m.historyRepo.EXPECT().Create(gomock.Any()).Return(nil)

	// Uma página de campanhas com uma campanha
	m.client.EXPECT().
		FetchCampaigns(gomock.Any(), integration, "").
		Return(&integrator.Page[integrator.RawCampaign]{
			Items: []integrator.RawCampaign{
				{ExternalID: "C1", Name: "Campanha Verão", Status: "ACTIVE", Budget: "10000"},
			},
		}, nil)

	m.campaignRepo.EXPECT().ListByIntegration("INT001").Return(nil, nil)
	m.campaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("LOCC1", nil)
	m.campaignRepo.EXPECT().DeleteMissing(gomock.Any(), "INT001", []string{"C1"}).Return(int64(0), nil)

	// Um conjunto de anúncios na campanha
	m.client.EXPECT().
		FetchAdSets(gomock.Any(), integration, "C1", "").
		Return(&integrator.Page[integrator.RawAdSet]{
			Items: []integrator.RawAdSet{
				{ExternalID: "S1", Name: "Conjunto Sul", Status: "ACTIVE"},
			},
		}, nil)

	m.adSetRepo.EXPECT().ListByCampaign("LOCC1").Return(nil, nil)
	m.adSetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("LOCS1", nil)
	m.adSetRepo.EXPECT().DeleteMissing(gomock.Any(), "LOCC1", []string{"S1"}).Return(int64(0), nil)

	// Um criativo no conjunto, via busca em lote
	m.client.EXPECT().
		FetchCreativesBatch(gomock.Any(), integration, []string{"S1"}).
		Return(map[string][]integrator.RawCreative{
			"S1": {
				{ExternalID: "K1", Name: "Banner Azul", Type: "IMAGE", Impressions: "100", Clicks: "3"},
			},
		}, nil)

	m.creativeRepo.EXPECT().ListByAdSet("LOCS1").Return(nil, nil)
	m.creativeRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("LOCK1", nil)
	m.creativeRepo.EXPECT().DeleteMissing("LOCS1", []string{"K1"}).Return(int64(0), nil)

	m.historyRepo.EXPECT().Finalize(gomock.Any()).Return(nil)

	// Execução completa avança o last_full_sync
	m.integrationRepo.EXPECT().MarkSynced("INT001", true, gomock.Any()).Return(nil)

	history, err := orchestrator.Run(context.Background(), integration, NewReporter(NopSink{}, 1))

	assert.NoError(t, err)
	assert.Equal(t, domain.SyncStatusCompleted, history.Status)
	assert.Equal(t, 1, history.CampaignsSynced)
	assert.Equal(t, 1, history.AdSetsSynced)
	assert.Equal(t, 1, history.CreativesSynced)
	assert.NotNil(t, history.CompletedAt)
	assert.Nil(t, history.ErrorMessage)
}

func TestOrchestrator_Run_Partial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator, m := newOrchestratorForTest(ctrl)
	integration := metaIntegrationForTest()

	m.historyRepo.EXPECT().Create(gomock.Any()).Return(nil)

	m.client.EXPECT().
		FetchCampaigns(gomock.Any(), integration, "").
		Return(&integrator.Page[integrator.RawCampaign]{
			Items: []integrator.RawCampaign{
				{ExternalID: "A", Name: "Campanha A", Status: "ACTIVE"},
				{ExternalID: "B", Name: "Campanha B", Status: "ACTIVE"},
			},
		}, nil)

	m.campaignRepo.EXPECT().ListByIntegration("INT001").Return(nil, nil)
	m.campaignRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(campaign *domain.Campaign) (string, error) {
			return "LOC" + campaign.ExternalID, nil
		}).
		Times(2)
	m.campaignRepo.EXPECT().DeleteMissing(gomock.Any(), "INT001", []string{"A", "B"}).Return(int64(0), nil)

	// Campanha A sincroniza vazia, campanha B falha na plataforma
	m.client.EXPECT().
		FetchAdSets(gomock.Any(), integration, "A", "").
		Return(&integrator.Page[integrator.RawAdSet]{}, nil)

	m.adSetRepo.EXPECT().ListByCampaign("LOCA").Return(nil, nil)
	m.adSetRepo.EXPECT().DeleteMissing(gomock.Any(), "LOCA", []string{}).Return(int64(0), nil)

	m.client.EXPECT().
		FetchAdSets(gomock.Any(), integration, "B", "").
		Return(nil, errors.New("erro transitório da plataforma"))

	m.historyRepo.EXPECT().Finalize(gomock.Any()).Return(nil)

	// Execução parcial avança o last_sync mas não o last_full_sync
	m.integrationRepo.EXPECT().MarkSynced("INT001", false, gomock.Any()).Return(nil)

	history, err := orchestrator.Run(context.Background(), integration, NewReporter(NopSink{}, 1))

	assert.Error(t, err)
	assert.Equal(t, domain.SyncStatusPartial, history.Status)
	assert.NotNil(t, history.ErrorMessage)
}

func TestOrchestrator_Run_FalhaTotalNaBuscaDeCampanhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator, m := newOrchestratorForTest(ctrl)
	integration := metaIntegrationForTest()

	m.historyRepo.EXPECT().Create(gomock.Any()).Return(nil)

	m.client.EXPECT().
		FetchCampaigns(gomock.Any(), integration, "").
		Return(nil, &integrator.TokenInvalidError{Platform: domain.PlatformMeta, Message: "token expirado"})

	m.historyRepo.EXPECT().Finalize(gomock.Any()).Return(nil)

	// Execução falha não mexe no last_sync: nenhuma chamada a MarkSynced

	history, err := orchestrator.Run(context.Background(), integration, NewReporter(NopSink{}, 1))

	assert.Error(t, err)
	assert.True(t, integrator.IsTokenInvalid(err))
	assert.Equal(t, domain.SyncStatusFailed, history.Status)
	assert.NotNil(t, history.ErrorMessage)
}

func TestOrchestrator_Run_HierarquiaInalteradaMantemIDsLocais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator, m := newOrchestratorForTest(ctrl)
	integration := metaIntegrationForTest()

	m.historyRepo.EXPECT().Create(gomock.Any()).Return(nil)

	// A plataforma devolve exatamente o que já está gravado localmente
	m.client.EXPECT().
		FetchCampaigns(gomock.Any(), integration, "").
		Return(&integrator.Page[integrator.RawCampaign]{
			Items: []integrator.RawCampaign{
				{ExternalID: "C1", Name: "Campanha Verão", Status: "ACTIVE", Budget: "10000"},
			},
		}, nil)

	m.campaignRepo.EXPECT().
		ListByIntegration("INT001").
		Return([]*domain.Campaign{
			{ID: "LOCC1", IntegrationID: "INT001", CompanyID: "COMP01", ExternalID: "C1", Name: "Campanha Verão", Status: domain.EntityStatusActive, Budget: 100},
		}, nil)
	m.campaignRepo.EXPECT().DeleteMissing(gomock.Any(), "INT001", []string{"C1"}).Return(int64(0), nil)

	// Os níveis seguintes devem ser escopados pelo id local da campanha
	// pulada, não pelo id externo nem por id vazio
	m.client.EXPECT().
		FetchAdSets(gomock.Any(), integration, "C1", "").
		Return(&integrator.Page[integrator.RawAdSet]{
			Items: []integrator.RawAdSet{
				{ExternalID: "S1", Name: "Conjunto Sul", Status: "ACTIVE"},
			},
		}, nil)

	m.adSetRepo.EXPECT().
		ListByCampaign("LOCC1").
		Return([]*domain.AdSet{
			{ID: "LOCS1", CampaignID: "LOCC1", CompanyID: "COMP01", ExternalID: "S1", Name: "Conjunto Sul", Status: domain.EntityStatusActive},
		}, nil)
	m.adSetRepo.EXPECT().DeleteMissing(gomock.Any(), "LOCC1", []string{"S1"}).Return(int64(0), nil)

	m.client.EXPECT().
		FetchCreativesBatch(gomock.Any(), integration, []string{"S1"}).
		Return(map[string][]integrator.RawCreative{
			"S1": {
				{ExternalID: "K1", Name: "Banner Azul", Type: "IMAGE", Impressions: "100", Clicks: "3"},
			},
		}, nil)

	m.creativeRepo.EXPECT().
		ListByAdSet("LOCS1").
		Return([]*domain.Creative{
			{ID: "LOCK1", AdSetID: "LOCS1", CampaignID: "LOCC1", CompanyID: "COMP01", ExternalID: "K1", Name: "Banner Azul", Type: domain.CreativeTypeImage, Impressions: 100, Clicks: 3},
		}, nil)
	m.creativeRepo.EXPECT().DeleteMissing("LOCS1", []string{"K1"}).Return(int64(0), nil)

	m.historyRepo.EXPECT().Finalize(gomock.Any()).Return(nil)
	m.integrationRepo.EXPECT().MarkSynced("INT001", true, gomock.Any()).Return(nil)

	// Nenhum SaveOrUpdate esperado: registros idênticos não geram escrita
	history, err := orchestrator.Run(context.Background(), integration, NewReporter(NopSink{}, 1))

	assert.NoError(t, err)
	assert.Equal(t, domain.SyncStatusCompleted, history.Status)
	assert.Equal(t, 1, history.CampaignsSynced)
	assert.Equal(t, 1, history.AdSetsSynced)
	assert.Equal(t, 1, history.CreativesSynced)
}

func TestOrchestrator_Run_EmiteEtapasPorNivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator, m := newOrchestratorForTest(ctrl)
	integration := metaIntegrationForTest()

	m.historyRepo.EXPECT().Create(gomock.Any()).Return(nil)

	m.client.EXPECT().
		FetchCampaigns(gomock.Any(), integration, "").
		Return(&integrator.Page[integrator.RawCampaign]{
			Items: []integrator.RawCampaign{
				{ExternalID: "C1", Name: "Campanha Verão", Status: "ACTIVE"},
			},
		}, nil)

	m.campaignRepo.EXPECT().ListByIntegration("INT001").Return(nil, nil)
	m.campaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("LOCC1", nil)
	m.campaignRepo.EXPECT().DeleteMissing(gomock.Any(), "INT001", []string{"C1"}).Return(int64(0), nil)

	m.client.EXPECT().
		FetchAdSets(gomock.Any(), integration, "C1", "").
		Return(&integrator.Page[integrator.RawAdSet]{
			Items: []integrator.RawAdSet{
				{ExternalID: "S1", Name: "Conjunto Sul", Status: "ACTIVE"},
			},
		}, nil)

	m.adSetRepo.EXPECT().ListByCampaign("LOCC1").Return(nil, nil)
	m.adSetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("LOCS1", nil)
	m.adSetRepo.EXPECT().DeleteMissing(gomock.Any(), "LOCC1", []string{"S1"}).Return(int64(0), nil)

	m.client.EXPECT().
		FetchCreativesBatch(gomock.Any(), integration, []string{"S1"}).
		Return(map[string][]integrator.RawCreative{
			"S1": {
				{ExternalID: "K1", Name: "Banner Azul", Type: "IMAGE"},
			},
		}, nil)

	m.creativeRepo.EXPECT().ListByAdSet("LOCS1").Return(nil, nil)
	m.creativeRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return("LOCK1", nil)
	m.creativeRepo.EXPECT().DeleteMissing("LOCS1", []string{"K1"}).Return(int64(0), nil)

	m.historyRepo.EXPECT().Finalize(gomock.Any()).Return(nil)
	m.integrationRepo.EXPECT().MarkSynced("INT001", true, gomock.Any()).Return(nil)

	sink := &recordingSink{}

	_, err := orchestrator.Run(context.Background(), integration, NewReporter(sink, 1))
	assert.NoError(t, err)

	// Cada nível da hierarquia abre e fecha a própria etapa, na ordem da
	// travessia
	expected := []struct {
		kind EventKind
		step string
	}{
		{EventStart, ""},
		{EventStep, "campaigns"},
		{EventProgress, "campaigns"},
		{EventStepComplete, "campaigns"},
		{EventStep, "ad_sets"},
		{EventProgress, "ad_sets"},
		{EventStepComplete, "ad_sets"},
		{EventStep, "creatives"},
		{EventProgress, "creatives"},
		{EventStepComplete, "creatives"},
		{EventComplete, ""},
	}

	assert.Len(t, sink.events, len(expected))
	for i, want := range expected {
		assert.Equal(t, want.kind, sink.events[i].Kind, "evento %d", i)
		assert.Equal(t, want.step, sink.events[i].Step, "evento %d", i)
	}
}

func TestOrchestrator_Run_PlataformaSemCliente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator, m := newOrchestratorForTest(ctrl)
	_ = m

	integration := metaIntegrationForTest()
	integration.Platform = domain.PlatformGoogle

	_, err := orchestrator.Run(context.Background(), integration, NewReporter(NopSink{}, 1))

	assert.ErrorIs(t, err, ErrPlatformNotSupported)
}
