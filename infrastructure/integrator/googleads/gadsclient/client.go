package gadsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/adlens/creative-audit-api/infrastructure/integrator"
	"github.com/adlens/creative-audit-api/internal/config"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

type Client interface {
	SearchCampaigns(ctx context.Context, customerID, accessToken, pageToken string) (*SearchResponse, error)
	SearchAdGroups(ctx context.Context, customerID, accessToken, campaignID, pageToken string) (*SearchResponse, error)
	SearchAds(ctx context.Context, customerID, accessToken, adGroupID, pageToken string) (*SearchResponse, error)
}

type GoogleAdsClient struct {
	Cfg  *config.Config
	HTTP *resty.Client

	// Backoff calcula a espera entre tentativas após RESOURCE_EXHAUSTED.
	// Substituível nos testes.
	Backoff func(attempt int) time.Duration
}

func NewClient(cfg *config.Config) *GoogleAdsClient {
	return &GoogleAdsClient{
		Cfg:  cfg,
		HTTP: resty.New().SetTimeout(30 * time.Second),
		Backoff: func(attempt int) time.Duration {
			return time.Duration(1<<attempt) * time.Second
		},
	}
}

const (
	campaignsQuery = `SELECT campaign.id, campaign.name, campaign.status,
		campaign.advertising_channel_type, campaign_budget.amount_micros
		FROM campaign`

	adGroupsQuery = `SELECT ad_group.id, ad_group.name, ad_group.status,
		ad_group.targeting_setting FROM ad_group WHERE campaign.id = %s`

	adsQuery = `SELECT ad_group_ad.ad.id, ad_group_ad.ad.name, ad_group_ad.status,
		ad_group_ad.ad.type, ad_group_ad.ad.final_urls,
		ad_group_ad.ad.responsive_search_ad.headlines,
		ad_group_ad.ad.responsive_search_ad.descriptions,
		ad_group_ad.ad.image_ad.image_url,
		metrics.impressions, metrics.clicks, metrics.conversions,
		metrics.ctr, metrics.average_cpc
		FROM ad_group_ad WHERE ad_group.id = %s`
)

func (c *GoogleAdsClient) SearchCampaigns(ctx context.Context, customerID, accessToken, pageToken string) (*SearchResponse, error) {
	return c.search(ctx, customerID, accessToken, campaignsQuery, pageToken)
}

func (c *GoogleAdsClient) SearchAdGroups(ctx context.Context, customerID, accessToken, campaignID, pageToken string) (*SearchResponse, error) {
	return c.search(ctx, customerID, accessToken, fmt.Sprintf(adGroupsQuery, campaignID), pageToken)
}

func (c *GoogleAdsClient) SearchAds(ctx context.Context, customerID, accessToken, adGroupID, pageToken string) (*SearchResponse, error) {
	return c.search(ctx, customerID, accessToken, fmt.Sprintf(adsQuery, adGroupID), pageToken)
}

// search executa uma consulta GAQL paginada, repetindo com backoff quando a
// API devolve RESOURCE_EXHAUSTED
func (c *GoogleAdsClient) search(ctx context.Context, customerID, accessToken, query, pageToken string) (*SearchResponse, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.GoogleAds.BaseURL, customerID)

	payload := map[string]interface{}{
		"query":    query,
		"pageSize": c.Cfg.Sync.BatchSize,
	}
	if pageToken != "" {
		payload["pageToken"] = pageToken
	}

	for attempt := 0; ; attempt++ {
		resp, err := c.HTTP.R().
			SetContext(ctx).
			SetAuthToken(accessToken).
			SetHeader("developer-token", c.Cfg.GoogleAds.DeveloperToken).
			SetBody(payload).
			Post(endpoint)
		if err != nil {
			return nil, fmt.Errorf("erro ao consultar o Google Ads: %w", err)
		}

		if resp.StatusCode() == http.StatusOK {
			var search SearchResponse
			if err := json.Unmarshal(resp.Body(), &search); err != nil {
				return nil, fmt.Errorf("erro ao decodificar resposta do Google Ads: %w", err)
			}
			return &search, nil
		}

		var apiErr ErrorResponse
		_ = json.Unmarshal(resp.Body(), &apiErr)

		if resp.StatusCode() == http.StatusUnauthorized || apiErr.Error.Status == "UNAUTHENTICATED" {
			return nil, &integrator.TokenInvalidError{
				Platform: domain.PlatformGoogle,
				Message:  apiErr.Error.Message,
			}
		}

		if resp.StatusCode() == http.StatusTooManyRequests || apiErr.Error.Status == "RESOURCE_EXHAUSTED" {
			if attempt >= c.Cfg.Sync.MaxRetryAttempts-1 {
				return nil, &integrator.RateLimitError{
					Platform:   domain.PlatformGoogle,
					RetryAfter: retryAfter(resp),
					Message:    apiErr.Error.Message,
				}
			}

			wait := c.Backoff(attempt)
			if ra := retryAfter(resp); ra > wait {
				wait = ra
			}

			logrus.WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"wait":    wait.String(),
			}).Warn("Limite de requisições do Google Ads atingido, aguardando para repetir")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
			continue
		}

		return nil, fmt.Errorf("resposta inesperada do Google Ads. Status: %d, Resposta: %s", resp.StatusCode(), resp.Body())
	}
}

func retryAfter(resp *resty.Response) time.Duration {
	header := resp.Header().Get("Retry-After")
	if header == "" {
		return 0
	}

	seconds, err := strconv.Atoi(header)
	if err != nil {
		return 0
	}

	return time.Duration(seconds) * time.Second
}
