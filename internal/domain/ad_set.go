package domain

import "time"

// AdSet é o nível intermediário da hierarquia. Pertence a uma campanha pelo
// id interno e carrega o company_id desnormalizado para consultas de acesso.
type AdSet struct {
	ID         string       `json:"id"`
	CampaignID string       `json:"campaign_id"`
	CompanyID  string       `json:"company_id"`
	ExternalID string       `json:"external_id"`
	Name       string       `json:"name"`
	Status     EntityStatus `json:"status"`
	Targeting  string       `json:"targeting"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (a *AdSet) ContentEquals(other *AdSet) bool {
	if other == nil {
		return false
	}
	return a.Name == other.Name &&
		a.Status == other.Status &&
		a.Targeting == other.Targeting
}
