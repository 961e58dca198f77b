package syncing

import (
	"testing"

	"github.com/adlens/creative-audit-api/infrastructure/integrator"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapCampaign(t *testing.T) {
	metaIntegration := &domain.Integration{
		ID:        "INT001",
		CompanyID: "COMP01",
		Platform:  domain.PlatformMeta,
	}

	googleIntegration := &domain.Integration{
		ID:        "INT002",
		CompanyID: "COMP01",
		Platform:  domain.PlatformGoogle,
	}

	tests := []struct {
		name        string
		raw         integrator.RawCampaign
		integration *domain.Integration
		validate    func(t *testing.T, campaign *domain.Campaign)
		wantErr     bool
	}{
		{
			name: "Campanha Meta com orçamento em centavos",
			raw: integrator.RawCampaign{
				ExternalID: "23851234567890",
				Name:       "Campanha Promo Verão",
				Status:     "ACTIVE",
				Budget:     "150000",
				Objective:  "OUTCOME_SALES",
			},
			integration: metaIntegration,
			validate: func(t *testing.T, campaign *domain.Campaign) {
				assert.Equal(t, "INT001", campaign.IntegrationID)
				assert.Equal(t, "COMP01", campaign.CompanyID)
				assert.Equal(t, domain.EntityStatusActive, campaign.Status)
				assert.Equal(t, 1500.0, campaign.Budget)
				assert.Equal(t, "OUTCOME_SALES", campaign.Objective)
			},
		},
		{
			name: "Campanha Google com orçamento em micros",
			raw: integrator.RawCampaign{
				ExternalID: "20123456789",
				Name:       "Campanha Search Brand",
				Status:     "ENABLED",
				Budget:     "75000000",
			},
			integration: googleIntegration,
			validate: func(t *testing.T, campaign *domain.Campaign) {
				assert.Equal(t, domain.EntityStatusActive, campaign.Status)
				assert.Equal(t, 75.0, campaign.Budget)
			},
		},
		{
			name: "Campanha sem orçamento vira zero",
			raw: integrator.RawCampaign{
				ExternalID: "23851234567891",
				Name:       "Campanha Sem Budget",
				Status:     "PAUSED",
			},
			integration: metaIntegration,
			validate: func(t *testing.T, campaign *domain.Campaign) {
				assert.Equal(t, domain.EntityStatusPaused, campaign.Status)
				assert.Equal(t, 0.0, campaign.Budget)
			},
		},
		{
			name: "Orçamento inválido gera erro de mapeamento",
			raw: integrator.RawCampaign{
				ExternalID: "23851234567892",
				Name:       "Campanha Budget Quebrado",
				Status:     "ACTIVE",
				Budget:     "abc",
			},
			integration: metaIntegration,
			wantErr:     true,
		},
		{
			name:        "ID externo vazio gera erro de mapeamento",
			raw:         integrator.RawCampaign{Name: "Sem ID"},
			integration: metaIntegration,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign, err := MapCampaign(tt.raw, tt.integration)

			if tt.wantErr {
				assert.Error(t, err)

				var mappingErr *MappingError
				assert.ErrorAs(t, err, &mappingErr)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, campaign)
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		platform domain.Platform
		expected domain.EntityStatus
	}{
		{"Meta ACTIVE", "ACTIVE", domain.PlatformMeta, domain.EntityStatusActive},
		{"Meta PAUSED", "PAUSED", domain.PlatformMeta, domain.EntityStatusPaused},
		{"Meta ARCHIVED", "ARCHIVED", domain.PlatformMeta, domain.EntityStatusArchived},
		{"Meta DELETED", "DELETED", domain.PlatformMeta, domain.EntityStatusDeleted},
		{"Meta com espaços e caixa baixa", " active ", domain.PlatformMeta, domain.EntityStatusActive},
		{"Google ENABLED", "ENABLED", domain.PlatformGoogle, domain.EntityStatusActive},
		{"Google PAUSED", "PAUSED", domain.PlatformGoogle, domain.EntityStatusPaused},
		{"Google REMOVED", "REMOVED", domain.PlatformGoogle, domain.EntityStatusDeleted},
		{"Status desconhecido vira unknown", "IN_PROCESS", domain.PlatformMeta, domain.EntityStatusUnknown},
		{"Vocabulário do Meta não vale para o Google", "ARCHIVED", domain.PlatformGoogle, domain.EntityStatusUnknown},
		{"Status vazio vira unknown", "", domain.PlatformGoogle, domain.EntityStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeStatus(tt.status, tt.platform))
		})
	}
}

func TestNormalizeCreativeType(t *testing.T) {
	tests := []struct {
		rawType  string
		expected domain.CreativeType
	}{
		{"IMAGE", domain.CreativeTypeImage},
		{"IMAGE_AD", domain.CreativeTypeImage},
		{"VIDEO", domain.CreativeTypeVideo},
		{"VIDEO_AD", domain.CreativeTypeVideo},
		{"VIDEO_RESPONSIVE_AD", domain.CreativeTypeVideo},
		{"CAROUSEL", domain.CreativeTypeCarousel},
		{"RESPONSIVE_SEARCH_AD", domain.CreativeTypeText},
		{"", domain.CreativeTypeText},
	}

	for _, tt := range tests {
		t.Run(tt.rawType, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeCreativeType(tt.rawType))
		})
	}
}

func TestMapCreative(t *testing.T) {
	campaign := &domain.Campaign{ID: "CMP001", CompanyID: "COMP01"}
	adSet := &domain.AdSet{ID: "ADS001", CompanyID: "COMP01"}

	t.Run("Criativo Meta com métricas", func(t *testing.T) {
		raw := integrator.RawCreative{
			ExternalID:  "6051234567890",
			Name:        "Criativo Banner Azul",
			Type:        "IMAGE",
			ImageURL:    "https://cdn.example.com/banner.jpg",
			Body:        "Aproveite a promoção",
			Headline:    "Promoção de Verão",
			Impressions: "12500",
			Clicks:      "340",
			Conversions: "27",
			CTR:         "2.72",
			CPC:         "1.3456",
		}

		creative, err := MapCreative(raw, adSet, campaign, domain.PlatformMeta)
		assert.NoError(t, err)
		assert.Equal(t, "ADS001", creative.AdSetID)
		assert.Equal(t, "CMP001", creative.CampaignID)
		assert.Equal(t, domain.CreativeTypeImage, creative.Type)
		assert.Equal(t, int64(12500), creative.Impressions)
		assert.Equal(t, int64(340), creative.Clicks)
		assert.Equal(t, int64(27), creative.Conversions)
		assert.Equal(t, 2.72, creative.CTR)
		assert.Equal(t, 1.35, creative.CPC)
	})

	t.Run("CPC do Google é convertido de micros", func(t *testing.T) {
		raw := integrator.RawCreative{
			ExternalID: "987654321",
			Name:       "Anúncio Responsivo",
			Type:       "RESPONSIVE_SEARCH_AD",
			CPC:        "2340000",
		}

		creative, err := MapCreative(raw, adSet, campaign, domain.PlatformGoogle)
		assert.NoError(t, err)
		assert.Equal(t, 2.34, creative.CPC)
	})

	t.Run("Métricas ausentes viram zero", func(t *testing.T) {
		raw := integrator.RawCreative{
			ExternalID: "6051234567891",
			Name:       "Criativo Sem Insights",
			Type:       "VIDEO",
		}

		creative, err := MapCreative(raw, adSet, campaign, domain.PlatformMeta)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), creative.Impressions)
		assert.Equal(t, 0.0, creative.CTR)
	})

	t.Run("Métrica inválida gera erro identificando o campo", func(t *testing.T) {
		raw := integrator.RawCreative{
			ExternalID:  "6051234567892",
			Name:        "Criativo Quebrado",
			Impressions: "muitas",
		}

		_, err := MapCreative(raw, adSet, campaign, domain.PlatformMeta)
		assert.Error(t, err)

		var mappingErr *MappingError
		assert.ErrorAs(t, err, &mappingErr)
		assert.Equal(t, "impressions", mappingErr.Field)
	})
}
