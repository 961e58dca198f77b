package handler

import (
	"encoding/json"
	"net/http"

	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/adlens/creative-audit-api/internal/usecases/integrating"
	"github.com/adlens/creative-audit-api/pkg/apiErrors"
	"github.com/adlens/creative-audit-api/pkg/middleware"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type UpdateIntegrationBody struct {
	Status string `json:"status"`
}

func (b UpdateIntegrationBody) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Status,
			validation.Required,
			validation.In(string(domain.IntegrationStatusActive), string(domain.IntegrationStatusInactive)),
		),
	)
}

type StartOAuthBody struct {
	Platform string `json:"platform"`
}

func (b StartOAuthBody) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Platform,
			validation.Required,
			validation.In(string(domain.PlatformMeta), string(domain.PlatformGoogle)),
		),
	)
}

// ListIntegrations lista as integrações da empresa do usuário logado
func ListIntegrations(service integrating.IntegrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		integrations, err := service.List(userClaims.CompanyID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar integrações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar integrações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(integrations)
	}
}

// UpdateIntegration ativa ou desativa uma integração
func UpdateIntegration(service integrating.IntegrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integrationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if integrationID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da integração não informado", nil)
			return
		}

		var body UpdateIntegrationBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := body.Validate(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		status := domain.IntegrationStatus(body.Status)
		integration, err := service.Update(&domain.UpdateIntegrationRequest{
			ID:     integrationID,
			Status: &status,
		})
		if err != nil {
			handleIntegrationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(integration)
	}
}

// StartOAuth inicia o fluxo de autorização e devolve a URL de consentimento
func StartOAuth(service integrating.IntegrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var body StartOAuthBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := body.Validate(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		authURL, err := service.StartOAuth(userClaims.CompanyID, domain.Platform(body.Platform))
		if err != nil {
			handleIntegrationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"authorization_url": authURL,
		})
	}
}

// OAuthCallback recebe o redirect da plataforma com o state e o código de
// autorização. Rota pública: o navegador chega aqui sem o token da API.
func OAuthCallback(service integrating.IntegrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")
		code := r.URL.Query().Get("code")

		if state == "" || code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros state e code são obrigatórios", nil)
			return
		}

		integrations, err := service.CompleteOAuth(r.Context(), state, code)
		if err != nil {
			handleIntegrationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":      "Integração conectada com sucesso",
			"integrations": integrations,
		})
	}
}

func handleIntegrationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, integrating.ErrIntegrationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrIntegrationNotFound, "Integração não encontrada", nil)

	case errors.Is(err, integrating.ErrPlatformNotSupported):
		apiErrors.WriteError(w, apiErrors.ErrPlatformNotSupported, "Plataforma não suportada para esta operação", nil)

	case errors.Is(err, integrating.ErrOAuthSessionInvalid):
		apiErrors.WriteError(w, apiErrors.ErrOAuthSessionNotFound, "Sessão de autorização inexistente ou expirada", nil)

	case errors.Is(err, integrating.ErrOAuthExchangeFailed), errors.Is(err, integrating.ErrNoAdAccounts):
		apiErrors.WriteError(w, apiErrors.ErrOAuthExchangeFailed, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Erro ao processar operação de integração")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar integração", nil)
	}
}
