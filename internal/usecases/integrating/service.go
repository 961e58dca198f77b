package integrating

import (
	"context"
	"fmt"
	"time"

	"github.com/adlens/creative-audit-api/infrastructure/integrator/meta/metaclient"
	"github.com/adlens/creative-audit-api/infrastructure/repository"
	"github.com/adlens/creative-audit-api/internal/config"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/adlens/creative-audit-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Validade de uma sessão do fluxo OAuth
const oauthSessionTTL = 10 * time.Minute

// IntegrationManager gerencia o ciclo de vida das integrações: listagem,
// ativação e desativação, e o fluxo OAuth de conexão de novas contas
type IntegrationManager interface {
	List(companyID string) ([]*domain.Integration, error)
	Get(integrationID string) (*domain.Integration, error)
	Update(req *domain.UpdateIntegrationRequest) (*domain.Integration, error)
	StartOAuth(companyID string, platform domain.Platform) (string, error)
	CompleteOAuth(ctx context.Context, state, code string) ([]*domain.Integration, error)
}

type Service struct {
	cfg             *config.Config
	metaClient      metaclient.Client
	integrationRepo repository.IntegrationRepository
	sessionRepo     repository.OAuthSessionRepository
}

func NewService(
	cfg *config.Config,
	metaClient metaclient.Client,
	integrationRepo repository.IntegrationRepository,
	sessionRepo repository.OAuthSessionRepository,
) IntegrationManager {
	return &Service{
		cfg:             cfg,
		metaClient:      metaClient,
		integrationRepo: integrationRepo,
		sessionRepo:     sessionRepo,
	}
}

func (s *Service) List(companyID string) ([]*domain.Integration, error) {
	return s.integrationRepo.ListByCompany(companyID)
}

func (s *Service) Get(integrationID string) (*domain.Integration, error) {
	integration, err := s.integrationRepo.GetByID(integrationID)
	if err != nil {
		return nil, err
	}

	if integration == nil {
		return nil, ErrIntegrationNotFound
	}

	return integration, nil
}

func (s *Service) Update(req *domain.UpdateIntegrationRequest) (*domain.Integration, error) {
	integration, err := s.Get(req.ID)
	if err != nil {
		return nil, err
	}

	if err := s.integrationRepo.UpdateIntegration(req); err != nil {
		return nil, err
	}

	if req.Status != nil {
		integration.Status = *req.Status
	}

	return integration, nil
}

// StartOAuth cria a sessão do fluxo de autorização e devolve a URL de
// consentimento da plataforma
func (s *Service) StartOAuth(companyID string, platform domain.Platform) (string, error) {
	// Por enquanto só o fluxo do Meta é self-service; contas do Google são
	// conectadas pela equipe de operações
	if platform != domain.PlatformMeta {
		return "", ErrPlatformNotSupported
	}

	state, err := utils.GenerateState()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	session := &domain.OAuthSession{
		State:       state,
		CompanyID:   companyID,
		Platform:    platform,
		RedirectURI: s.cfg.Meta.RedirectURI,
		CreatedAt:   now,
		ExpiresAt:   now.Add(oauthSessionTTL),
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return "", err
	}

	return s.metaClient.AuthorizationURL(state, session.RedirectURI), nil
}

// CompleteOAuth finaliza o fluxo: valida o state, troca o código por um token
// de longa duração e cria uma integração para cada conta de anúncios
// acessível pelo token
func (s *Service) CompleteOAuth(ctx context.Context, state, code string) ([]*domain.Integration, error) {
	session, err := s.sessionRepo.Consume(state)
	if err != nil {
		return nil, err
	}

	if session == nil {
		return nil, ErrOAuthSessionInvalid
	}

	shortLived, err := s.metaClient.ExchangeCode(ctx, code, session.RedirectURI)
	if err != nil {
		logrus.WithError(err).Error("Erro ao trocar o código de autorização")
		return nil, fmt.Errorf("%w: %v", ErrOAuthExchangeFailed, err)
	}

	longLived, err := s.metaClient.GetLongLivedToken(ctx, shortLived.AccessToken)
	if err != nil {
		logrus.WithError(err).Error("Erro ao obter token de longa duração")
		return nil, fmt.Errorf("%w: %v", ErrOAuthExchangeFailed, err)
	}

	accounts, err := s.metaClient.GetAdAccounts(ctx, longLived.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOAuthExchangeFailed, err)
	}

	if len(accounts) == 0 {
		return nil, ErrNoAdAccounts
	}

	integrations := make([]*domain.Integration, 0, len(accounts))

	for _, account := range accounts {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}

		integration := &domain.Integration{
			ID:                id,
			CompanyID:         session.CompanyID,
			Platform:          session.Platform,
			ExternalAccountID: account.AccountID,
			AccessToken:       longLived.AccessToken,
			Status:            domain.IntegrationStatusActive,
		}

		savedID, err := s.integrationRepo.SaveOrUpdate(integration)
		if err != nil {
			return nil, err
		}

		integration.ID = savedID
		integrations = append(integrations, integration)

		logrus.WithFields(logrus.Fields{
			"integration_id":      savedID,
			"company_id":          session.CompanyID,
			"external_account_id": account.AccountID,
		}).Info("Integração conectada via OAuth")
	}

	return integrations, nil
}
