package domain

import "time"

type SyncStatus string

const (
	SyncStatusRunning   SyncStatus = "running"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusPartial   SyncStatus = "partial"
	SyncStatusFailed    SyncStatus = "failed"
)

// Terminal indica se o status encerra a execução
func (s SyncStatus) Terminal() bool {
	return s == SyncStatusCompleted || s == SyncStatusPartial || s == SyncStatusFailed
}

// SyncHistory registra uma execução de sincronização. Uma linha por execução,
// criada em `running` e finalizada exatamente uma vez; o motor nunca apaga
// registros de histórico.
type SyncHistory struct {
	ID              string     `json:"id"`
	IntegrationID   string     `json:"integration_id"`
	Status          SyncStatus `json:"status"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at"`
	CampaignsSynced int        `json:"campaigns_synced"`
	AdSetsSynced    int        `json:"ad_sets_synced"`
	CreativesSynced int        `json:"creatives_synced"`
	DeletedRecords  int        `json:"deleted_records"`
	SkippedRecords  int        `json:"skipped_records"`
	ErrorMessage    *string    `json:"error_message"`
}
