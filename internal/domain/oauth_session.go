package domain

import "time"

// OAuthSession guarda o estado de um fluxo de autorização em andamento.
// A expiração é imposta pelo próprio store: sessões vencidas são filtradas
// na leitura e removidas na escrita, sem depender de limpeza nos handlers.
type OAuthSession struct {
	State       string    `json:"state"`
	CompanyID   string    `json:"company_id"`
	Platform    Platform  `json:"platform"`
	RedirectURI string    `json:"redirect_uri"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (s *OAuthSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
