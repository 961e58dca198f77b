package integrator

import (
	"context"

	"github.com/adlens/creative-audit-api/internal/domain"
)

// Page é uma página de resultados da plataforma. NextCursor vazio indica que
// não há mais páginas; é o único sinal de término da paginação.
type Page[T any] struct {
	Items      []T
	NextCursor string
}

// RawCampaign carrega os valores como a plataforma devolve, antes de qualquer
// normalização. Status no vocabulário nativo e orçamento nas menores unidades
// da moeda (centavos no Meta, micros no Google).
type RawCampaign struct {
	ExternalID string
	Name       string
	Status     string
	Budget     string
	Objective  string
}

type RawAdSet struct {
	ExternalID         string
	CampaignExternalID string
	Name               string
	Status             string
	Targeting          string
}

// RawCreative inclui o snapshot de métricas do criativo. Os valores numéricos
// chegam como string porque é assim que as APIs de insights os devolvem.
type RawCreative struct {
	ExternalID      string
	AdSetExternalID string
	Name            string
	Type            string
	ImageURL        string
	Body            string
	Headline        string
	Description     string
	Impressions     string
	Clicks          string
	Conversions     string
	CTR             string
	CPC             string
}

// PlatformClient é o contrato que cada plataforma de anúncios implementa.
// As operações recebem a integração para usar o token de acesso correto e
// devolvem uma página por chamada.
type PlatformClient interface {
	Platform() domain.Platform
	FetchCampaigns(ctx context.Context, integration *domain.Integration, cursor string) (*Page[RawCampaign], error)
	FetchAdSets(ctx context.Context, integration *domain.Integration, campaignExternalID string, cursor string) (*Page[RawAdSet], error)
	FetchCreatives(ctx context.Context, integration *domain.Integration, adSetExternalID string, cursor string) (*Page[RawCreative], error)
	FetchCreativesBatch(ctx context.Context, integration *domain.Integration, adSetExternalIDs []string) (map[string][]RawCreative, error)
}

// Registry resolve o cliente pela plataforma da integração
type Registry struct {
	clients map[domain.Platform]PlatformClient
}

func NewRegistry(clients ...PlatformClient) *Registry {
	registry := &Registry{
		clients: make(map[domain.Platform]PlatformClient, len(clients)),
	}

	for _, client := range clients {
		registry.clients[client.Platform()] = client
	}

	return registry
}

func (r *Registry) Resolve(platform domain.Platform) (PlatformClient, bool) {
	client, ok := r.clients[platform]
	return client, ok
}
