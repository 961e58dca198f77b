package domain

import "time"

// EntityStatus é o vocabulário normalizado de status compartilhado entre
// campanhas e conjuntos de anúncios, independente da plataforma de origem
type EntityStatus string

const (
	EntityStatusActive   EntityStatus = "active"
	EntityStatusPaused   EntityStatus = "paused"
	EntityStatusArchived EntityStatus = "archived"
	EntityStatusDeleted  EntityStatus = "deleted"
	EntityStatusUnknown  EntityStatus = "unknown"
)

// Campaign é o topo da hierarquia sincronizada. O ExternalID é a chave
// natural da reconciliação, única dentro de uma integração.
type Campaign struct {
	ID            string       `json:"id"`
	IntegrationID string       `json:"integration_id"`
	CompanyID     string       `json:"company_id"`
	ExternalID    string       `json:"external_id"`
	Name          string       `json:"name"`
	Status        EntityStatus `json:"status"`
	Budget        float64      `json:"budget"`
	Objective     string       `json:"objective"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// ContentEquals compara apenas os campos mutáveis vindos da plataforma.
// Usada pela reconciliação para evitar escritas quando nada mudou.
func (c *Campaign) ContentEquals(other *Campaign) bool {
	if other == nil {
		return false
	}
	return c.Name == other.Name &&
		c.Status == other.Status &&
		c.Budget == other.Budget &&
		c.Objective == other.Objective
}
