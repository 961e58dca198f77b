package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	metadomain "github.com/adlens/creative-audit-api/infrastructure/integrator/meta/domain"
	"github.com/sirupsen/logrus"
)

// O Graph API aceita no máximo 50 sub-requisições por chamada de batch
const maxBatchRequests = 50

type batchRequest struct {
	Method      string `json:"method"`
	RelativeURL string `json:"relative_url"`
}

type batchResponse struct {
	Code int    `json:"code"`
	Body string `json:"body"`
}

// GetAdsBatch busca os anúncios de vários conjuntos numa única chamada usando
// o endpoint de batch do Graph API, devolvendo os anúncios agrupados pelo id
// externo do conjunto. Conjuntos com mais anúncios que o limite da página são
// completados com chamadas paginadas individuais.
func (c *MetaClient) GetAdsBatch(ctx context.Context, adSetIDs []string, accessToken string) (map[string][]metadomain.Ad, error) {
	adsByAdSet := make(map[string][]metadomain.Ad, len(adSetIDs))

	for start := 0; start < len(adSetIDs); start += maxBatchRequests {
		end := start + maxBatchRequests
		if end > len(adSetIDs) {
			end = len(adSetIDs)
		}
		chunk := adSetIDs[start:end]

		requests := make([]batchRequest, 0, len(chunk))
		for _, adSetID := range chunk {
			requests = append(requests, batchRequest{
				Method: http.MethodGet,
				RelativeURL: fmt.Sprintf("%s/ads?fields=%s&limit=%d",
					adSetID, url.QueryEscape(adFields), c.Cfg.Sync.BatchSize),
			})
		}

		payload, err := json.Marshal(requests)
		if err != nil {
			return nil, err
		}

		form := url.Values{}
		form.Add("access_token", accessToken)
		form.Add("batch", string(payload))
		encoded := form.Encode()

		body, err := c.do(ctx, func() (*http.Request, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Cfg.Meta.URL, strings.NewReader(encoded))
			if err != nil {
				return nil, err
			}
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			return req, nil
		})
		if err != nil {
			return nil, err
		}

		var responses []batchResponse
		if err := json.Unmarshal(body, &responses); err != nil {
			return nil, fmt.Errorf("erro ao decodificar JSON do batch: %w", err)
		}

		if len(responses) != len(chunk) {
			return nil, fmt.Errorf("batch devolveu %d respostas para %d requisições", len(responses), len(chunk))
		}

		for i, response := range responses {
			adSetID := chunk[i]

			if response.Code != http.StatusOK {
				logrus.WithFields(logrus.Fields{
					"ad_set_id": adSetID,
					"code":      response.Code,
				}).Warn("Sub-requisição do batch falhou, buscando conjunto individualmente")

				ads, err := c.collectAds(ctx, adSetID, accessToken)
				if err != nil {
					return nil, err
				}
				adsByAdSet[adSetID] = ads
				continue
			}

			var page ResponseAds
			if err := json.Unmarshal([]byte(response.Body), &page); err != nil {
				return nil, fmt.Errorf("erro ao decodificar resposta do batch: %w", err)
			}

			ads := page.Data
			if page.Paging.HasNext() {
				rest, err := c.collectAdsFrom(ctx, adSetID, accessToken, page.Paging.Cursors.After)
				if err != nil {
					return nil, err
				}
				ads = append(ads, rest...)
			}

			adsByAdSet[adSetID] = ads
		}
	}

	return adsByAdSet, nil
}

func (c *MetaClient) collectAds(ctx context.Context, adSetID, accessToken string) ([]metadomain.Ad, error) {
	return c.collectAdsFrom(ctx, adSetID, accessToken, "")
}

func (c *MetaClient) collectAdsFrom(ctx context.Context, adSetID, accessToken, cursor string) ([]metadomain.Ad, error) {
	ads := make([]metadomain.Ad, 0)

	for {
		page, err := c.GetAds(ctx, adSetID, accessToken, cursor)
		if err != nil {
			return nil, err
		}

		ads = append(ads, page.Data...)

		if !page.Paging.HasNext() {
			return ads, nil
		}
		cursor = page.Paging.Cursors.After
	}
}
