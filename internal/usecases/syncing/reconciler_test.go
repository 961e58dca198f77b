package syncing

import (
	"context"
	"testing"

	"github.com/adlens/creative-audit-api/infrastructure/repository/mocks"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReconciler_ReconcileCampaigns(t *testing.T) {
	integration := &domain.Integration{
		ID:        "INT001",
		CompanyID: "COMP01",
		Platform:  domain.PlatformMeta,
	}

	t.Run("Atualiza alterada, pula inalterada, insere nova e remove órfã", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
		mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)
		mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)

		// Estado local: A desatualizada, B idêntica, D não existe mais na plataforma
		existing := []*domain.Campaign{
			{ID: "LOCA", ExternalID: "A", Name: "Campanha A", Status: domain.EntityStatusPaused, Budget: 100},
			{ID: "LOCB", ExternalID: "B", Name: "Campanha B", Status: domain.EntityStatusActive, Budget: 200},
			{ID: "LOCD", ExternalID: "D", Name: "Campanha D", Status: domain.EntityStatusActive, Budget: 50},
		}

		fetched := []*domain.Campaign{
			{ExternalID: "A", Name: "Campanha A", Status: domain.EntityStatusActive, Budget: 100},
			{ExternalID: "B", Name: "Campanha B", Status: domain.EntityStatusActive, Budget: 200},
			{ExternalID: "C", Name: "Campanha C", Status: domain.EntityStatusActive, Budget: 300},
		}

		mockCampaignRepo.EXPECT().
			ListByIntegration("INT001").
			Return(existing, nil)

		// A mudou de status, C é nova; B não gera escrita
		mockCampaignRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(campaign *domain.Campaign) (string, error) {
				switch campaign.ExternalID {
				case "A":
					return "LOCA", nil
				case "C":
					return "LOCC", nil
				}
				t.Fatalf("escrita inesperada para %s", campaign.ExternalID)
				return "", nil
			}).
			Times(2)

		mockCampaignRepo.EXPECT().
			DeleteMissing(gomock.Any(), "INT001", []string{"A", "B", "C"}).
			Return(int64(1), nil)

		reconciler := NewReconciler(mockCampaignRepo, mockAdSetRepo, mockCreativeRepo)

		result, err := reconciler.ReconcileCampaigns(context.Background(), integration, fetched, true)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Upserted)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, int64(1), result.Deleted)
		assert.Equal(t, 3, result.Processed())

		// O mapa de ids cobre também o registro pulado
		assert.Equal(t, "LOCA", result.IDByExternalID["A"])
		assert.Equal(t, "LOCB", result.IDByExternalID["B"])
		assert.Equal(t, "LOCC", result.IDByExternalID["C"])
	})

	t.Run("Busca incompleta não remove órfãos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
		mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)
		mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)

		mockCampaignRepo.EXPECT().
			ListByIntegration("INT001").
			Return([]*domain.Campaign{
				{ID: "LOCD", ExternalID: "D", Name: "Campanha D", Status: domain.EntityStatusActive},
			}, nil)

		// Nenhuma chamada a DeleteMissing esperada

		reconciler := NewReconciler(mockCampaignRepo, mockAdSetRepo, mockCreativeRepo)

		result, err := reconciler.ReconcileCampaigns(context.Background(), integration, nil, false)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), result.Deleted)
	})

	t.Run("Busca completa e vazia remove tudo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
		mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)
		mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)

		mockCampaignRepo.EXPECT().
			ListByIntegration("INT001").
			Return([]*domain.Campaign{
				{ID: "LOCD", ExternalID: "D", Name: "Campanha D", Status: domain.EntityStatusActive},
			}, nil)

		mockCampaignRepo.EXPECT().
			DeleteMissing(gomock.Any(), "INT001", []string{}).
			Return(int64(1), nil)

		reconciler := NewReconciler(mockCampaignRepo, mockAdSetRepo, mockCreativeRepo)

		result, err := reconciler.ReconcileCampaigns(context.Background(), integration, []*domain.Campaign{}, true)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Deleted)
	})

	t.Run("Erro de escrita devolve PersistenceError com o id externo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
		mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)
		mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)

		mockCampaignRepo.EXPECT().
			ListByIntegration("INT001").
			Return(nil, nil)

		mockCampaignRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return("", errors.New("deadlock detected"))

		reconciler := NewReconciler(mockCampaignRepo, mockAdSetRepo, mockCreativeRepo)

		_, err := reconciler.ReconcileCampaigns(context.Background(), integration, []*domain.Campaign{
			{ExternalID: "A", Name: "Campanha A", Status: domain.EntityStatusActive},
		}, true)

		assert.Error(t, err)

		var persistenceErr *PersistenceError
		assert.ErrorAs(t, err, &persistenceErr)
		assert.Equal(t, "campaign", persistenceErr.Entity)
		assert.Equal(t, "A", persistenceErr.ExternalID)
	})
}

func TestReconciler_SegundaExecucaoSemMudancasNaoEscreve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)
	mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)

	integration := &domain.Integration{
		ID:        "INT001",
		CompanyID: "COMP01",
		Platform:  domain.PlatformMeta,
	}

	reconciler := NewReconciler(mockCampaignRepo, mockAdSetRepo, mockCreativeRepo)

	fetch := func() []*domain.Campaign {
		return []*domain.Campaign{
			{IntegrationID: "INT001", CompanyID: "COMP01", ExternalID: "A", Name: "Campanha A", Status: domain.EntityStatusActive, Budget: 150},
		}
	}

	// Primeira execução: base vazia, a campanha é inserida
	var persisted []*domain.Campaign
	mockCampaignRepo.EXPECT().
		ListByIntegration("INT001").
		Return(nil, nil)
	mockCampaignRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(campaign *domain.Campaign) (string, error) {
			copied := *campaign
			persisted = append(persisted, &copied)
			return campaign.ID, nil
		})
	mockCampaignRepo.EXPECT().
		DeleteMissing(gomock.Any(), "INT001", []string{"A"}).
		Return(int64(0), nil).
		Times(2)

	first, err := reconciler.ReconcileCampaigns(context.Background(), integration, fetch(), true)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Upserted)

	// Segunda execução: a listagem devolve o que a primeira gravou e
	// nenhuma escrita acontece
	mockCampaignRepo.EXPECT().
		ListByIntegration("INT001").
		Return(persisted, nil)

	second := fetch()
	result, err := reconciler.ReconcileCampaigns(context.Background(), integration, second, true)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Upserted)
	assert.Equal(t, 1, result.Skipped)

	// A campanha pulada carrega o id local gravado na primeira execução
	assert.Equal(t, persisted[0].ID, second[0].ID)
	assert.NotEmpty(t, second[0].ID)

	// O id propagado escopa o nível seguinte da hierarquia
	mockAdSetRepo.EXPECT().
		ListByCampaign(persisted[0].ID).
		Return(nil, nil)
	mockAdSetRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(adSet *domain.AdSet) (string, error) {
			assert.Equal(t, persisted[0].ID, adSet.CampaignID)
			return adSet.ID, nil
		})
	mockAdSetRepo.EXPECT().
		DeleteMissing(gomock.Any(), persisted[0].ID, []string{"X"}).
		Return(int64(0), nil)

	adSets := []*domain.AdSet{
		{CampaignID: second[0].ID, CompanyID: "COMP01", ExternalID: "X", Name: "Conjunto X", Status: domain.EntityStatusActive},
	}

	_, err = reconciler.ReconcileAdSets(context.Background(), second[0].ID, adSets, true)
	assert.NoError(t, err)
}

func TestReconciler_ReconcileAdSets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)
	mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)

	mockAdSetRepo.EXPECT().
		ListByCampaign("CMP001").
		Return([]*domain.AdSet{
			{ID: "LOCX", ExternalID: "X", Name: "Conjunto X", Status: domain.EntityStatusActive},
		}, nil)

	mockAdSetRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(adSet *domain.AdSet) (string, error) {
			assert.Equal(t, "Y", adSet.ExternalID)
			assert.NotEmpty(t, adSet.ID, "novo registro deve receber id antes da escrita")
			return adSet.ID, nil
		})

	mockAdSetRepo.EXPECT().
		DeleteMissing(gomock.Any(), "CMP001", []string{"X", "Y"}).
		Return(int64(0), nil)

	reconciler := NewReconciler(mockCampaignRepo, mockAdSetRepo, mockCreativeRepo)

	fetched := []*domain.AdSet{
		{ExternalID: "X", Name: "Conjunto X", Status: domain.EntityStatusActive},
		{ExternalID: "Y", Name: "Conjunto Y", Status: domain.EntityStatusActive},
	}

	result, err := reconciler.ReconcileAdSets(context.Background(), "CMP001", fetched, true)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Upserted)
	assert.Equal(t, 1, result.Skipped)
}

func TestReconciler_ReconcileCreatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)
	mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)

	// Métricas novas contam como mudança de conteúdo
	mockCreativeRepo.EXPECT().
		ListByAdSet("ADS001").
		Return([]*domain.Creative{
			{ID: "LOCK", ExternalID: "K", Name: "Criativo K", Type: domain.CreativeTypeImage, Impressions: 100},
		}, nil)

	mockCreativeRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return("LOCK", nil)

	mockCreativeRepo.EXPECT().
		DeleteMissing("ADS001", []string{"K"}).
		Return(int64(2), nil)

	reconciler := NewReconciler(mockCampaignRepo, mockAdSetRepo, mockCreativeRepo)

	fetched := []*domain.Creative{
		{ExternalID: "K", Name: "Criativo K", Type: domain.CreativeTypeImage, Impressions: 250},
	}

	result, err := reconciler.ReconcileCreatives(context.Background(), "ADS001", fetched, true)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Upserted)
	assert.Equal(t, int64(2), result.Deleted)
}
