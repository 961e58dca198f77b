package integrating

import "errors"

// Erros específicos para o contexto de integrações
var (
	ErrIntegrationNotFound  = errors.New("integration not found")
	ErrPlatformNotSupported = errors.New("platform not supported for this operation")
	ErrOAuthSessionInvalid  = errors.New("oauth session not found or expired")
	ErrOAuthExchangeFailed  = errors.New("authorization code exchange failed")
	ErrNoAdAccounts         = errors.New("no ad accounts accessible with the granted token")
)
