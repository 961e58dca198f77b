package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/adlens/creative-audit-api/infrastructure/integrator/meta/domain"
)

type ResponseAdAccounts struct {
	Data   []metadomain.AdAccount `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// GetAdAccounts lista as contas de anúncios acessíveis pelo token informado.
// Usada ao concluir o fluxo OAuth para descobrir as contas autorizadas.
func (c *MetaClient) GetAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error) {
	accounts := make([]metadomain.AdAccount, 0)
	cursor := ""

	for {
		params := url.Values{}
		params.Add("fields", "id,account_id,name")
		params.Add("access_token", accessToken)
		if cursor != "" {
			params.Add("after", cursor)
		}

		body, err := c.doGet(ctx, fmt.Sprintf("%s/me/adaccounts?%s", c.Cfg.Meta.URL, params.Encode()))
		if err != nil {
			return nil, err
		}

		var response ResponseAdAccounts
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("erro ao decodificar JSON de contas de anúncios: %w", err)
		}

		accounts = append(accounts, response.Data...)

		if !response.Paging.HasNext() {
			return accounts, nil
		}
		cursor = response.Paging.Cursors.After
	}
}
