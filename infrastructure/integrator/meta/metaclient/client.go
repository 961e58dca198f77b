package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/adlens/creative-audit-api/infrastructure/integrator"
	metadomain "github.com/adlens/creative-audit-api/infrastructure/integrator/meta/domain"
	"github.com/adlens/creative-audit-api/internal/config"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type Client interface {
	GetCampaigns(ctx context.Context, accountID, accessToken, cursor string) (*ResponseCampaigns, error)
	GetAdSets(ctx context.Context, campaignID, accessToken, cursor string) (*ResponseAdSets, error)
	GetAds(ctx context.Context, adSetID, accessToken, cursor string) (*ResponseAds, error)
	GetAdsBatch(ctx context.Context, adSetIDs []string, accessToken string) (map[string][]metadomain.Ad, error)
	GetAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error)
	AuthorizationURL(state, redirectURI string) string
	ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error)
	GetLongLivedToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client

	// Backoff calcula a espera antes da próxima tentativa após um erro de
	// limite de requisições. Substituível nos testes.
	Backoff func(attempt int) time.Duration
}

func NewClient(cfg *config.Config) *MetaClient {
	return &MetaClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Backoff: func(attempt int) time.Duration {
			return time.Duration(1<<attempt) * time.Second
		},
	}
}

// doGet executa a requisição e trata as respostas de erro do Graph API.
// Erros de limite de requisições são repetidos com backoff exponencial até o
// máximo configurado; erros de token não são repetidos.
func (c *MetaClient) doGet(ctx context.Context, requestURL string) ([]byte, error) {
	return c.do(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	})
}

func (c *MetaClient) do(ctx context.Context, newRequest func() (*http.Request, error)) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		req, err := newRequest()
		if err != nil {
			return nil, err
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("erro ao ler resposta: %w", err)
		}

		if resp.StatusCode == http.StatusOK {
			return body, nil
		}

		var errResp metadomain.ErrorResponse
		_ = json.Unmarshal(body, &errResp)

		if resp.StatusCode == http.StatusUnauthorized || errResp.IsTokenExpired() {
			return nil, &integrator.TokenInvalidError{
				Platform: domain.PlatformMeta,
				Message:  errResp.Error.Message,
			}
		}

		if resp.StatusCode == http.StatusTooManyRequests || errResp.IsRateLimited() {
			if attempt >= c.Cfg.Sync.MaxRetryAttempts-1 {
				return nil, &integrator.RateLimitError{
					Platform:   domain.PlatformMeta,
					RetryAfter: retryAfter(resp),
					Message:    errResp.Error.Message,
				}
			}

			wait := c.Backoff(attempt)
			if ra := retryAfter(resp); ra > wait {
				wait = ra
			}

			logrus.WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"wait":    wait.String(),
			}).Warn("Limite de requisições do Meta atingido, aguardando para repetir")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
			continue
		}

		return nil, fmt.Errorf("resposta inesperada do Meta. Status: %d, Resposta: %s", resp.StatusCode, body)
	}
}

func retryAfter(resp *http.Response) time.Duration {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}

	seconds, err := strconv.Atoi(header)
	if err != nil {
		return 0
	}

	return time.Duration(seconds) * time.Second
}
