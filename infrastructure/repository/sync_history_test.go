package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSyncHistoryRepository_Finalize(t *testing.T) {
	now := time.Now().UTC()
	message := "3 campanhas falharam"

	history := &domain.SyncHistory{
		ID:              "SYNC01",
		IntegrationID:   "INT001",
		Status:          domain.SyncStatusPartial,
		StartedAt:       now.Add(-time.Minute),
		CompletedAt:     &now,
		CampaignsSynced: 10,
		AdSetsSynced:    25,
		CreativesSynced: 80,
		DeletedRecords:  3,
		SkippedRecords:  1,
		ErrorMessage:    &message,
	}

	t.Run("Transiciona a linha em running", func(t *testing.T) {
		conn, mock := newConnForTest(t)
		repo := NewSyncHistoryRepository(conn)

		mock.ExpectExec("UPDATE sync_history").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Finalize(history))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Execução já finalizada devolve ErrNoRows", func(t *testing.T) {
		conn, mock := newConnForTest(t)
		repo := NewSyncHistoryRepository(conn)

		// A cláusula status = running não casa com nenhuma linha
		mock.ExpectExec("UPDATE sync_history").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Finalize(history), sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSyncHistoryRepository_HasRunning(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected bool
	}{
		{"Sem execução em andamento", 0, false},
		{"Com execução em andamento", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newConnForTest(t)
			repo := NewSyncHistoryRepository(conn)

			mock.ExpectQuery("SELECT COUNT").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			running, err := repo.HasRunning("INT001")
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, running)
		})
	}
}

func TestSyncHistoryRepository_GetLatestByIntegration(t *testing.T) {
	t.Run("Sem histórico devolve nil sem erro", func(t *testing.T) {
		conn, mock := newConnForTest(t)
		repo := NewSyncHistoryRepository(conn)

		mock.ExpectQuery("SELECT id, integration_id, status").
			WithArgs("INT001").
			WillReturnError(sql.ErrNoRows)

		history, err := repo.GetLatestByIntegration("INT001")
		assert.NoError(t, err)
		assert.Nil(t, history)
	})

	t.Run("Devolve a execução mais recente", func(t *testing.T) {
		conn, mock := newConnForTest(t)
		repo := NewSyncHistoryRepository(conn)

		startedAt := time.Now().UTC().Add(-time.Hour)
		completedAt := startedAt.Add(10 * time.Minute)

		rows := sqlmock.NewRows([]string{
			"id", "integration_id", "status", "started_at", "completed_at", "campaigns_synced",
			"ad_sets_synced", "creatives_synced", "deleted_records", "skipped_records", "error_message",
		}).AddRow("SYNC01", "INT001", "completed", startedAt, completedAt, 10, 25, 80, 0, 0, nil)

		mock.ExpectQuery("SELECT id, integration_id, status").
			WithArgs("INT001").
			WillReturnRows(rows)

		history, err := repo.GetLatestByIntegration("INT001")
		assert.NoError(t, err)
		assert.Equal(t, "SYNC01", history.ID)
		assert.Equal(t, domain.SyncStatusCompleted, history.Status)
		assert.NotNil(t, history.CompletedAt)
		assert.Nil(t, history.ErrorMessage)
	})
}

func TestSyncHistoryRepository_MarkStaleFailed(t *testing.T) {
	conn, mock := newConnForTest(t)
	repo := NewSyncHistoryRepository(conn)

	mock.ExpectExec("UPDATE sync_history").
		WillReturnResult(sqlmock.NewResult(0, 2))

	affected, err := repo.MarkStaleFailed(6 * time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
