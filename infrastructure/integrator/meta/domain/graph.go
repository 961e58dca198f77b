package metadomain

import "encoding/json"

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// HasNext indica se existe próxima página. O Graph API só inclui o campo
// `next` quando há mais resultados.
func (p *Paging) HasNext() bool {
	return p.Next != ""
}

// Campaign é o payload bruto do Graph API. Os orçamentos vêm como string em
// centavos; a normalização para reais acontece fora deste pacote.
type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	DailyBudget    string `json:"daily_budget,omitempty"`
	LifetimeBudget string `json:"lifetime_budget,omitempty"`
	Objective      string `json:"objective"`
}

// Budget devolve o orçamento em centavos, preferindo o diário
func (c *Campaign) Budget() string {
	if c.DailyBudget != "" {
		return c.DailyBudget
	}
	return c.LifetimeBudget
}

// AdAccount é a conta de anúncios devolvida por /me/adaccounts. AccountID é
// o id numérico sem o prefixo act_.
type AdAccount struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}

type AdSet struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Status    string          `json:"status"`
	Targeting json.RawMessage `json:"targeting,omitempty"`
}

type AdCreative struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Title           string `json:"title,omitempty"`
	Body            string `json:"body,omitempty"`
	LinkDescription string `json:"link_description,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	VideoID         string `json:"video_id,omitempty"`
	ObjectType      string `json:"object_type,omitempty"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Insight struct {
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	CTR         string   `json:"ctr"`
	CPC         string   `json:"cpc"`
	Actions     []Action `json:"actions,omitempty"`
}

// Conversions soma as ações de conversão do snapshot de insights
func (i *Insight) Conversions() string {
	for idx := range i.Actions {
		if i.Actions[idx].ActionType == "offsite_conversion" || i.Actions[idx].ActionType == "purchase" {
			return i.Actions[idx].Value
		}
	}
	return "0"
}

type Insights struct {
	Data []Insight `json:"data"`
}

type Ad struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Status   string     `json:"status"`
	Creative AdCreative `json:"creative"`
	Insights Insights   `json:"insights"`
}
