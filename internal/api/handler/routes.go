package handler

import (
	"net/http"

	"github.com/adlens/creative-audit-api/internal/api/handler/router"
	"github.com/adlens/creative-audit-api/internal/usecases/authenticating"
	"github.com/adlens/creative-audit-api/internal/usecases/integrating"
	"github.com/adlens/creative-audit-api/internal/usecases/syncing"
	"github.com/adlens/creative-audit-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Integrations(service integrating.IntegrationManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/integrations",
			Method:      http.MethodGet,
			Handler:     ListIntegrations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/integrations/:id",
			Method:      http.MethodPut,
			Handler:     UpdateIntegration(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/integrations/oauth/start",
			Method:      http.MethodPost,
			Handler:     StartOAuth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			// Rota pública: o navegador chega aqui via redirect da plataforma
			Path:    "/v1/integrations/oauth/callback",
			Method:  http.MethodGet,
			Handler: OAuthCallback(service),
		},
	}
}

func Sync(service syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/integrations/:id/sync",
			Method:      http.MethodPost,
			Handler:     TriggerSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/integrations/:id/sync/stream",
			Method:      http.MethodGet,
			Handler:     StreamSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/integrations/:id/sync/latest",
			Method:      http.MethodGet,
			Handler:     GetLatestSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
