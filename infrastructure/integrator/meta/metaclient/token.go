package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthorizationURL monta a URL de consentimento do fluxo OAuth do Meta
func (c *MetaClient) AuthorizationURL(state, redirectURI string) string {
	params := url.Values{}
	params.Add("client_id", c.Cfg.Meta.AppID)
	params.Add("redirect_uri", redirectURI)
	params.Add("state", state)
	params.Add("scope", "ads_read,ads_management")
	params.Add("response_type", "code")

	return fmt.Sprintf("%s/dialog/oauth?%s", c.Cfg.Meta.URL, params.Encode())
}

// ExchangeCode troca o código de autorização por um token de curta duração
func (c *MetaClient) ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("código de autorização não pode ser vazio")
	}

	params := url.Values{}
	params.Add("client_id", c.Cfg.Meta.AppID)
	params.Add("client_secret", c.Cfg.Meta.AppSecret)
	params.Add("redirect_uri", redirectURI)
	params.Add("code", code)

	return c.requestToken(ctx, params)
}

// GetLongLivedToken obtém um token de longa duração do Meta
// usando um token de curta duração
func (c *MetaClient) GetLongLivedToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error) {
	if shortLivedToken == "" {
		return nil, fmt.Errorf("token de acesso não pode ser vazio")
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", c.Cfg.Meta.AppID)
	params.Add("client_secret", c.Cfg.Meta.AppSecret)
	params.Add("fb_exchange_token", shortLivedToken)

	tokenResp, err := c.requestToken(ctx, params)
	if err != nil {
		return nil, err
	}

	expiresInText := FormatDuration(tokenResp.ExpiresIn)
	logrus.Infof("Token de longa duração obtido com sucesso. Expira em %s.", expiresInText)

	return tokenResp, nil
}

func (c *MetaClient) requestToken(ctx context.Context, params url.Values) (*TokenResponse, error) {
	endpoint := fmt.Sprintf("%s/oauth/access_token", c.Cfg.Meta.URL)

	body, err := c.doGet(ctx, endpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token: %w", err)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	return &tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}
