package meta

import (
	"context"

	"github.com/adlens/creative-audit-api/infrastructure/integrator"
	metadomain "github.com/adlens/creative-audit-api/infrastructure/integrator/meta/domain"
	"github.com/adlens/creative-audit-api/infrastructure/integrator/meta/metaclient"
	"github.com/adlens/creative-audit-api/internal/domain"
)

// Service adapta o Graph API do Meta ao contrato de plataforma do motor de
// sincronização. Os payloads saem daqui ainda no vocabulário do Meta; quem
// normaliza é a camada de mapeamento.
type Service struct {
	client metaclient.Client
}

func NewService(client metaclient.Client) *Service {
	return &Service{
		client: client,
	}
}

func (s *Service) Platform() domain.Platform {
	return domain.PlatformMeta
}

func (s *Service) FetchCampaigns(ctx context.Context, integration *domain.Integration, cursor string) (*integrator.Page[integrator.RawCampaign], error) {
	resp, err := s.client.GetCampaigns(ctx, integration.ExternalAccountID, integration.AccessToken, cursor)
	if err != nil {
		return nil, err
	}

	items := make([]integrator.RawCampaign, 0, len(resp.Data))
	for i := range resp.Data {
		campaign := resp.Data[i]
		items = append(items, integrator.RawCampaign{
			ExternalID: campaign.ID,
			Name:       campaign.Name,
			Status:     campaign.Status,
			Budget:     campaign.Budget(),
			Objective:  campaign.Objective,
		})
	}

	return &integrator.Page[integrator.RawCampaign]{
		Items:      items,
		NextCursor: nextCursor(resp.Paging),
	}, nil
}

func (s *Service) FetchAdSets(ctx context.Context, integration *domain.Integration, campaignExternalID string, cursor string) (*integrator.Page[integrator.RawAdSet], error) {
	resp, err := s.client.GetAdSets(ctx, campaignExternalID, integration.AccessToken, cursor)
	if err != nil {
		return nil, err
	}

	items := make([]integrator.RawAdSet, 0, len(resp.Data))
	for i := range resp.Data {
		adSet := resp.Data[i]
		items = append(items, integrator.RawAdSet{
			ExternalID:         adSet.ID,
			CampaignExternalID: campaignExternalID,
			Name:               adSet.Name,
			Status:             adSet.Status,
			Targeting:          string(adSet.Targeting),
		})
	}

	return &integrator.Page[integrator.RawAdSet]{
		Items:      items,
		NextCursor: nextCursor(resp.Paging),
	}, nil
}

func (s *Service) FetchCreatives(ctx context.Context, integration *domain.Integration, adSetExternalID string, cursor string) (*integrator.Page[integrator.RawCreative], error) {
	resp, err := s.client.GetAds(ctx, adSetExternalID, integration.AccessToken, cursor)
	if err != nil {
		return nil, err
	}

	items := make([]integrator.RawCreative, 0, len(resp.Data))
	for i := range resp.Data {
		items = append(items, rawCreativeFromAd(resp.Data[i], adSetExternalID))
	}

	return &integrator.Page[integrator.RawCreative]{
		Items:      items,
		NextCursor: nextCursor(resp.Paging),
	}, nil
}

func (s *Service) FetchCreativesBatch(ctx context.Context, integration *domain.Integration, adSetExternalIDs []string) (map[string][]integrator.RawCreative, error) {
	adsByAdSet, err := s.client.GetAdsBatch(ctx, adSetExternalIDs, integration.AccessToken)
	if err != nil {
		return nil, err
	}

	creatives := make(map[string][]integrator.RawCreative, len(adsByAdSet))
	for adSetID, ads := range adsByAdSet {
		mapped := make([]integrator.RawCreative, 0, len(ads))
		for i := range ads {
			mapped = append(mapped, rawCreativeFromAd(ads[i], adSetID))
		}
		creatives[adSetID] = mapped
	}

	return creatives, nil
}

func rawCreativeFromAd(ad metadomain.Ad, adSetExternalID string) integrator.RawCreative {
	raw := integrator.RawCreative{
		ExternalID:      ad.ID,
		AdSetExternalID: adSetExternalID,
		Name:            ad.Name,
		Type:            creativeType(ad.Creative),
		ImageURL:        imageURL(ad.Creative),
		Body:            ad.Creative.Body,
		Headline:        ad.Creative.Title,
		Description:     ad.Creative.LinkDescription,
		Impressions:     "0",
		Clicks:          "0",
		Conversions:     "0",
		CTR:             "0",
		CPC:             "0",
	}

	if len(ad.Insights.Data) > 0 {
		insight := ad.Insights.Data[0]
		raw.Impressions = insight.Impressions
		raw.Clicks = insight.Clicks
		raw.Conversions = insight.Conversions()
		raw.CTR = insight.CTR
		raw.CPC = insight.CPC
	}

	return raw
}

func creativeType(creative metadomain.AdCreative) string {
	switch {
	case creative.ObjectType == "CAROUSEL":
		return "CAROUSEL"
	case creative.VideoID != "":
		return "VIDEO"
	case creative.ImageURL != "" || creative.ThumbnailURL != "":
		return "IMAGE"
	default:
		return "TEXT"
	}
}

func imageURL(creative metadomain.AdCreative) string {
	if creative.ImageURL != "" {
		return creative.ImageURL
	}
	return creative.ThumbnailURL
}

func nextCursor(paging metadomain.Paging) string {
	if !paging.HasNext() {
		return ""
	}
	return paging.Cursors.After
}
