package domain

import "time"

// Platform identifica a plataforma de anúncios externa de uma integração
type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformGoogle Platform = "google"
)

// Valid verifica se a plataforma é uma das suportadas
func (p Platform) Valid() bool {
	return p == PlatformMeta || p == PlatformGoogle
}

type IntegrationStatus string

const (
	IntegrationStatusActive   IntegrationStatus = "active"
	IntegrationStatusInactive IntegrationStatus = "inactive"
)

// Integration representa uma conta de anúncios externa conectada por uma empresa.
// Criada ao concluir o fluxo OAuth; desativada via soft-disable, nunca removida
// pelo motor de sincronização.
type Integration struct {
	ID                string            `json:"id"`
	CompanyID         string            `json:"company_id"`
	Platform          Platform          `json:"platform"`
	ExternalAccountID string            `json:"external_account_id"`
	AccessToken       string            `json:"-"`
	Status            IntegrationStatus `json:"status"`
	LastSync          *time.Time        `json:"last_sync"`
	LastFullSync      *time.Time        `json:"last_full_sync"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

type UpdateIntegrationRequest struct {
	ID     string             `json:"id"`
	Status *IntegrationStatus `json:"status"`
}
