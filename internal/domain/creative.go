package domain

import "time"

type CreativeType string

const (
	CreativeTypeImage    CreativeType = "image"
	CreativeTypeVideo    CreativeType = "video"
	CreativeTypeCarousel CreativeType = "carousel"
	CreativeTypeText     CreativeType = "text"
)

// Creative é a folha da hierarquia e a unidade efetivamente auditada.
// Os campos de conteúdo precisam estar atualizados ao fim de cada
// sincronização para que o auditor trabalhe sobre dados correntes.
type Creative struct {
	ID          string       `json:"id"`
	AdSetID     string       `json:"ad_set_id"`
	CampaignID  string       `json:"campaign_id"`
	CompanyID   string       `json:"company_id"`
	ExternalID  string       `json:"external_id"`
	Name        string       `json:"name"`
	Type        CreativeType `json:"type"`
	ImageURL    string       `json:"image_url"`
	Body        string       `json:"body"`
	Headline    string       `json:"headline"`
	Description string       `json:"description"`
	Impressions int64        `json:"impressions"`
	Clicks      int64        `json:"clicks"`
	Conversions int64        `json:"conversions"`
	CTR         float64      `json:"ctr"`
	CPC         float64      `json:"cpc"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (c *Creative) ContentEquals(other *Creative) bool {
	if other == nil {
		return false
	}
	return c.Name == other.Name &&
		c.Type == other.Type &&
		c.ImageURL == other.ImageURL &&
		c.Body == other.Body &&
		c.Headline == other.Headline &&
		c.Description == other.Description &&
		c.Impressions == other.Impressions &&
		c.Clicks == other.Clicks &&
		c.Conversions == other.Conversions &&
		c.CTR == other.CTR &&
		c.CPC == other.CPC
}
