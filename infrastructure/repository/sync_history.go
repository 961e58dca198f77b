package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adlens/creative-audit-api/infrastructure/database/postgres"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
)

const syncHistoryTable = "sync_history"

type SyncHistoryRepository interface {
	Create(history *domain.SyncHistory) error
	Finalize(history *domain.SyncHistory) error
	GetLatestByIntegration(integrationID string) (*domain.SyncHistory, error)
	HasRunning(integrationID string) (bool, error)
	MarkStaleFailed(olderThan time.Duration) (int64, error)
}

type syncHistoryRepository struct {
	conn *postgres.Connection
}

func NewSyncHistoryRepository(conn *postgres.Connection) SyncHistoryRepository {
	return &syncHistoryRepository{
		conn: conn,
	}
}

func (r *syncHistoryRepository) Create(history *domain.SyncHistory) error {
	querySQL, args, err := squirrel.StatementBuilder.
		Insert(syncHistoryTable).
		Columns("id", "integration_id", "status", "started_at").
		Values(
			history.ID,
			history.IntegrationID,
			history.Status,
			history.StartedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(querySQL, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// Finalize grava o desfecho da execução. Só transiciona linhas ainda em
// `running`, então uma execução nunca é finalizada duas vezes.
func (r *syncHistoryRepository) Finalize(history *domain.SyncHistory) error {
	querySQL, args, err := squirrel.StatementBuilder.
		Update(syncHistoryTable).
		Set("status", history.Status).
		Set("completed_at", history.CompletedAt).
		Set("campaigns_synced", history.CampaignsSynced).
		Set("ad_sets_synced", history.AdSetsSynced).
		Set("creatives_synced", history.CreativesSynced).
		Set("deleted_records", history.DeletedRecords).
		Set("skipped_records", history.SkippedRecords).
		Set("error_message", history.ErrorMessage).
		Where(squirrel.Eq{"id": history.ID, "status": domain.SyncStatusRunning}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(querySQL, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *syncHistoryRepository) GetLatestByIntegration(integrationID string) (*domain.SyncHistory, error) {
	querySQL, args, err := squirrel.
		Select(`id, integration_id, status, started_at, completed_at, campaigns_synced,
			ad_sets_synced, creatives_synced, deleted_records, skipped_records, error_message`).
		From(syncHistoryTable).
		Where(squirrel.Eq{"integration_id": integrationID}).
		OrderBy("started_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	history := &domain.SyncHistory{}

	if err := r.conn.QueryRow(querySQL, args...).Scan(
		&history.ID,
		&history.IntegrationID,
		&history.Status,
		&history.StartedAt,
		&history.CompletedAt,
		&history.CampaignsSynced,
		&history.AdSetsSynced,
		&history.CreativesSynced,
		&history.DeletedRecords,
		&history.SkippedRecords,
		&history.ErrorMessage,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return history, nil
}

func (r *syncHistoryRepository) HasRunning(integrationID string) (bool, error) {
	querySQL, args, err := squirrel.
		Select("COUNT(1)").
		From(syncHistoryTable).
		Where(squirrel.Eq{
			"integration_id": integrationID,
			"status":         domain.SyncStatusRunning,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.conn.QueryRow(querySQL, args...).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

// MarkStaleFailed falha execuções presas em `running` há mais tempo que o
// limite, normalmente restos de um processo que caiu no meio da sincronização.
func (r *syncHistoryRepository) MarkStaleFailed(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	result, err := r.conn.Exec(`
		UPDATE sync_history
		SET status = $1, completed_at = NOW(), error_message = 'sync abandoned, marked failed by sweeper'
		WHERE status = $2
		AND started_at < $3
	`, domain.SyncStatusFailed, domain.SyncStatusRunning, cutoff)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
