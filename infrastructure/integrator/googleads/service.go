package googleads

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/adlens/creative-audit-api/infrastructure/integrator"
	"github.com/adlens/creative-audit-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/adlens/creative-audit-api/internal/domain"
)

// Service adapta a API REST do Google Ads ao contrato de plataforma.
// Ad groups fazem o papel de conjuntos de anúncios na hierarquia.
type Service struct {
	client gadsclient.Client
}

func NewService(client gadsclient.Client) *Service {
	return &Service{
		client: client,
	}
}

func (s *Service) Platform() domain.Platform {
	return domain.PlatformGoogle
}

func (s *Service) FetchCampaigns(ctx context.Context, integration *domain.Integration, cursor string) (*integrator.Page[integrator.RawCampaign], error) {
	resp, err := s.client.SearchCampaigns(ctx, integration.ExternalAccountID, integration.AccessToken, cursor)
	if err != nil {
		return nil, err
	}

	items := make([]integrator.RawCampaign, 0, len(resp.Results))
	for i := range resp.Results {
		result := resp.Results[i]
		if result.Campaign == nil {
			continue
		}

		budget := ""
		if result.CampaignBudget != nil {
			budget = result.CampaignBudget.AmountMicros
		}

		items = append(items, integrator.RawCampaign{
			ExternalID: result.Campaign.ID,
			Name:       result.Campaign.Name,
			Status:     result.Campaign.Status,
			Budget:     budget,
			Objective:  result.Campaign.AdvertisingChannelType,
		})
	}

	return &integrator.Page[integrator.RawCampaign]{
		Items:      items,
		NextCursor: resp.NextPageToken,
	}, nil
}

func (s *Service) FetchAdSets(ctx context.Context, integration *domain.Integration, campaignExternalID string, cursor string) (*integrator.Page[integrator.RawAdSet], error) {
	resp, err := s.client.SearchAdGroups(ctx, integration.ExternalAccountID, integration.AccessToken, campaignExternalID, cursor)
	if err != nil {
		return nil, err
	}

	items := make([]integrator.RawAdSet, 0, len(resp.Results))
	for i := range resp.Results {
		result := resp.Results[i]
		if result.AdGroup == nil {
			continue
		}

		targeting := ""
		if result.AdGroup.TargetingSetting != nil {
			if raw, err := json.Marshal(result.AdGroup.TargetingSetting); err == nil {
				targeting = string(raw)
			}
		}

		items = append(items, integrator.RawAdSet{
			ExternalID:         result.AdGroup.ID,
			CampaignExternalID: campaignExternalID,
			Name:               result.AdGroup.Name,
			Status:             result.AdGroup.Status,
			Targeting:          targeting,
		})
	}

	return &integrator.Page[integrator.RawAdSet]{
		Items:      items,
		NextCursor: resp.NextPageToken,
	}, nil
}

func (s *Service) FetchCreatives(ctx context.Context, integration *domain.Integration, adSetExternalID string, cursor string) (*integrator.Page[integrator.RawCreative], error) {
	resp, err := s.client.SearchAds(ctx, integration.ExternalAccountID, integration.AccessToken, adSetExternalID, cursor)
	if err != nil {
		return nil, err
	}

	items := make([]integrator.RawCreative, 0, len(resp.Results))
	for i := range resp.Results {
		result := resp.Results[i]
		if result.AdGroupAd == nil {
			continue
		}

		items = append(items, rawCreativeFromResult(result, adSetExternalID))
	}

	return &integrator.Page[integrator.RawCreative]{
		Items:      items,
		NextCursor: resp.NextPageToken,
	}, nil
}

// FetchCreativesBatch não tem endpoint equivalente no Google Ads; os
// conjuntos são percorridos um a um com paginação completa
func (s *Service) FetchCreativesBatch(ctx context.Context, integration *domain.Integration, adSetExternalIDs []string) (map[string][]integrator.RawCreative, error) {
	creatives := make(map[string][]integrator.RawCreative, len(adSetExternalIDs))

	for _, adSetID := range adSetExternalIDs {
		all := make([]integrator.RawCreative, 0)
		cursor := ""

		for {
			page, err := s.FetchCreatives(ctx, integration, adSetID, cursor)
			if err != nil {
				return nil, err
			}

			all = append(all, page.Items...)

			if page.NextCursor == "" {
				break
			}
			cursor = page.NextCursor
		}

		creatives[adSetID] = all
	}

	return creatives, nil
}

func rawCreativeFromResult(result gadsclient.SearchResult, adSetExternalID string) integrator.RawCreative {
	ad := result.AdGroupAd.Ad

	raw := integrator.RawCreative{
		ExternalID:      ad.ID,
		AdSetExternalID: adSetExternalID,
		Name:            ad.Name,
		Type:            ad.Type,
		Impressions:     "0",
		Clicks:          "0",
		Conversions:     "0",
		CTR:             "0",
		CPC:             "0",
	}

	if ad.ImageAd != nil {
		raw.ImageURL = ad.ImageAd.ImageURL
	}

	if ad.ResponsiveSearchAd != nil {
		if len(ad.ResponsiveSearchAd.Headlines) > 0 {
			raw.Headline = ad.ResponsiveSearchAd.Headlines[0].Text
		}

		descriptions := make([]string, 0, len(ad.ResponsiveSearchAd.Descriptions))
		for _, description := range ad.ResponsiveSearchAd.Descriptions {
			descriptions = append(descriptions, description.Text)
		}
		raw.Body = strings.Join(descriptions, " ")
	}

	if result.Metrics != nil {
		raw.Impressions = result.Metrics.Impressions
		raw.Clicks = result.Metrics.Clicks
		raw.Conversions = strconv.FormatFloat(result.Metrics.Conversions, 'f', -1, 64)
		raw.CTR = strconv.FormatFloat(result.Metrics.CTR, 'f', -1, 64)
		raw.CPC = strconv.FormatFloat(result.Metrics.AverageCPC, 'f', -1, 64)
	}

	return raw
}
