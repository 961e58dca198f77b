package syncing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adlens/creative-audit-api/infrastructure/integrator"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/adlens/creative-audit-api/pkg/utils"
)

// Mapeamento dos payloads brutos das plataformas para o modelo normalizado.
// Todas as funções são puras: recebem o registro bruto e devolvem a entidade
// ou um MappingError descrevendo o campo problemático.

func MapCampaign(raw integrator.RawCampaign, integration *domain.Integration) (*domain.Campaign, error) {
	if raw.ExternalID == "" {
		return nil, &MappingError{Entity: "campaign", Field: "external_id", Err: fmt.Errorf("identificador externo vazio")}
	}

	budget, err := normalizeBudget(raw.Budget, integration.Platform)
	if err != nil {
		return nil, &MappingError{Entity: "campaign", ExternalID: raw.ExternalID, Field: "budget", Err: err}
	}

	return &domain.Campaign{
		IntegrationID: integration.ID,
		CompanyID:     integration.CompanyID,
		ExternalID:    raw.ExternalID,
		Name:          raw.Name,
		Status:        normalizeStatus(raw.Status, integration.Platform),
		Budget:        budget,
		Objective:     raw.Objective,
	}, nil
}

func MapAdSet(raw integrator.RawAdSet, campaign *domain.Campaign, platform domain.Platform) (*domain.AdSet, error) {
	if raw.ExternalID == "" {
		return nil, &MappingError{Entity: "ad_set", Field: "external_id", Err: fmt.Errorf("identificador externo vazio")}
	}

	return &domain.AdSet{
		CampaignID: campaign.ID,
		CompanyID:  campaign.CompanyID,
		ExternalID: raw.ExternalID,
		Name:       raw.Name,
		Status:     normalizeStatus(raw.Status, platform),
		Targeting:  raw.Targeting,
	}, nil
}

func MapCreative(raw integrator.RawCreative, adSet *domain.AdSet, campaign *domain.Campaign, platform domain.Platform) (*domain.Creative, error) {
	if raw.ExternalID == "" {
		return nil, &MappingError{Entity: "creative", Field: "external_id", Err: fmt.Errorf("identificador externo vazio")}
	}

	impressions, err := parseMetricInt(raw.Impressions)
	if err != nil {
		return nil, &MappingError{Entity: "creative", ExternalID: raw.ExternalID, Field: "impressions", Err: err}
	}

	clicks, err := parseMetricInt(raw.Clicks)
	if err != nil {
		return nil, &MappingError{Entity: "creative", ExternalID: raw.ExternalID, Field: "clicks", Err: err}
	}

	conversions, err := parseMetricInt(raw.Conversions)
	if err != nil {
		return nil, &MappingError{Entity: "creative", ExternalID: raw.ExternalID, Field: "conversions", Err: err}
	}

	ctr, err := parseMetricFloat(raw.CTR)
	if err != nil {
		return nil, &MappingError{Entity: "creative", ExternalID: raw.ExternalID, Field: "ctr", Err: err}
	}

	cpc, err := parseMetricFloat(raw.CPC)
	if err != nil {
		return nil, &MappingError{Entity: "creative", ExternalID: raw.ExternalID, Field: "cpc", Err: err}
	}

	if platform == domain.PlatformGoogle {
		// O Google devolve o CPC médio em micros
		cpc = cpc / 1_000_000
	}

	return &domain.Creative{
		AdSetID:     adSet.ID,
		CampaignID:  campaign.ID,
		CompanyID:   adSet.CompanyID,
		ExternalID:  raw.ExternalID,
		Name:        raw.Name,
		Type:        normalizeCreativeType(raw.Type),
		ImageURL:    raw.ImageURL,
		Body:        raw.Body,
		Headline:    raw.Headline,
		Description: raw.Description,
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		CTR:         utils.RoundWithTwoDecimalPlace(ctr),
		CPC:         utils.RoundWithTwoDecimalPlace(cpc),
	}, nil
}

// normalizeStatus converte o vocabulário de status de cada plataforma para o
// vocabulário interno. Valores desconhecidos viram `unknown` em vez de falhar.
func normalizeStatus(status string, platform domain.Platform) domain.EntityStatus {
	normalized := strings.ToUpper(strings.TrimSpace(status))

	switch platform {
	case domain.PlatformGoogle:
		switch normalized {
		case "ENABLED":
			return domain.EntityStatusActive
		case "PAUSED":
			return domain.EntityStatusPaused
		case "REMOVED":
			return domain.EntityStatusDeleted
		}
	default:
		switch normalized {
		case "ACTIVE":
			return domain.EntityStatusActive
		case "PAUSED":
			return domain.EntityStatusPaused
		case "ARCHIVED":
			return domain.EntityStatusArchived
		case "DELETED":
			return domain.EntityStatusDeleted
		}
	}

	return domain.EntityStatusUnknown
}

// normalizeBudget converte o orçamento bruto para a unidade monetária padrão.
// O Meta envia centavos e o Google envia micros.
func normalizeBudget(raw string, platform domain.Platform) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("valor de orçamento inválido %q: %w", raw, err)
	}

	if platform == domain.PlatformGoogle {
		return utils.RoundWithTwoDecimalPlace(value / 1_000_000), nil
	}

	return utils.RoundWithTwoDecimalPlace(value / 100), nil
}

func normalizeCreativeType(rawType string) domain.CreativeType {
	switch strings.ToUpper(strings.TrimSpace(rawType)) {
	case "IMAGE", "IMAGE_AD":
		return domain.CreativeTypeImage
	case "VIDEO", "VIDEO_AD", "VIDEO_RESPONSIVE_AD":
		return domain.CreativeTypeVideo
	case "CAROUSEL":
		return domain.CreativeTypeCarousel
	default:
		return domain.CreativeTypeText
	}
}

func parseMetricInt(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("valor de métrica inválido %q: %w", raw, err)
	}

	return int64(value), nil
}

func parseMetricFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("valor de métrica inválido %q: %w", raw, err)
	}

	return value, nil
}
