package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	metadomain "github.com/adlens/creative-audit-api/infrastructure/integrator/meta/domain"
)

type ResponseAdSets struct {
	Data   []metadomain.AdSet `json:"data"`
	Paging metadomain.Paging  `json:"paging"`
}

// GetAdSets busca uma página de conjuntos de anúncios da campanha
func (c *MetaClient) GetAdSets(ctx context.Context, campaignID, accessToken, cursor string) (*ResponseAdSets, error) {
	baseURL := fmt.Sprintf("%s/%s/adsets", c.Cfg.Meta.URL, campaignID)

	params := url.Values{}
	params.Add("fields", "id,name,status,targeting")
	params.Add("limit", strconv.Itoa(c.Cfg.Sync.BatchSize))
	params.Add("access_token", accessToken)
	if cursor != "" {
		params.Add("after", cursor)
	}

	body, err := c.doGet(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdSets
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON de conjuntos de anúncios: %w", err)
	}

	return &response, nil
}
