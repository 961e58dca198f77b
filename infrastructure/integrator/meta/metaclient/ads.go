package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	metadomain "github.com/adlens/creative-audit-api/infrastructure/integrator/meta/domain"
)

const adFields = "id,name,status," +
	"creative{id,name,title,body,link_description,image_url,thumbnail_url,video_id,object_type}," +
	"insights{impressions,clicks,ctr,cpc,actions}"

type ResponseAds struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// GetAds busca uma página de anúncios do conjunto, com o criativo e o
// snapshot de métricas embutidos na mesma resposta
func (c *MetaClient) GetAds(ctx context.Context, adSetID, accessToken, cursor string) (*ResponseAds, error) {
	baseURL := fmt.Sprintf("%s/%s/ads", c.Cfg.Meta.URL, adSetID)

	params := url.Values{}
	params.Add("fields", adFields)
	params.Add("limit", strconv.Itoa(c.Cfg.Sync.BatchSize))
	params.Add("access_token", accessToken)
	if cursor != "" {
		params.Add("after", cursor)
	}

	body, err := c.doGet(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAds
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON de anúncios: %w", err)
	}

	return &response, nil
}
