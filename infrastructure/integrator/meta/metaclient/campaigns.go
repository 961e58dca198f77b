package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	metadomain "github.com/adlens/creative-audit-api/infrastructure/integrator/meta/domain"
)

type ResponseCampaigns struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetCampaigns busca uma página de campanhas da conta de anúncios
func (c *MetaClient) GetCampaigns(ctx context.Context, accountID, accessToken, cursor string) (*ResponseCampaigns, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,status,daily_budget,lifetime_budget,objective")
	params.Add("limit", strconv.Itoa(c.Cfg.Sync.BatchSize))
	params.Add("access_token", accessToken)
	if cursor != "" {
		params.Add("after", cursor)
	}

	body, err := c.doGet(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON de campanhas: %w", err)
	}

	return &response, nil
}
