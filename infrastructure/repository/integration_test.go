package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIntegrationRepository_GetByID(t *testing.T) {
	t.Run("Integração inexistente devolve nil sem erro", func(t *testing.T) {
		conn, mock := newConnForTest(t)
		repo := NewIntegrationRepository(conn)

		mock.ExpectQuery("SELECT id, company_id, platform").
			WithArgs("INT404").
			WillReturnError(sql.ErrNoRows)

		integration, err := repo.GetByID("INT404")
		assert.NoError(t, err)
		assert.Nil(t, integration)
	})

	t.Run("Devolve a integração com os horários de sincronização", func(t *testing.T) {
		conn, mock := newConnForTest(t)
		repo := NewIntegrationRepository(conn)

		now := time.Now().UTC()
		lastSync := now.Add(-time.Hour)

		rows := sqlmock.NewRows([]string{
			"id", "company_id", "platform", "external_account_id", "access_token",
			"status", "last_sync", "last_full_sync", "created_at", "updated_at",
		}).AddRow("INT001", "COMP01", "meta", "act_123", "TOKEN", "active", lastSync, nil, now, now)

		mock.ExpectQuery("SELECT id, company_id, platform").
			WithArgs("INT001").
			WillReturnRows(rows)

		integration, err := repo.GetByID("INT001")
		assert.NoError(t, err)
		assert.Equal(t, domain.PlatformMeta, integration.Platform)
		assert.NotNil(t, integration.LastSync)
		assert.Nil(t, integration.LastFullSync)
	})
}

func TestIntegrationRepository_SaveOrUpdate(t *testing.T) {
	conn, mock := newConnForTest(t)
	repo := NewIntegrationRepository(conn)

	integration := &domain.Integration{
		ID:                "INTNEW",
		CompanyID:         "COMP01",
		Platform:          domain.PlatformMeta,
		ExternalAccountID: "act_123",
		AccessToken:       "TOKEN",
		Status:            domain.IntegrationStatusActive,
	}

	// Conflito na chave (company_id, platform, external_account_id) reusa a
	// linha existente e só renova o token
	mock.ExpectQuery("INSERT INTO integrations").
		WithArgs("INTNEW", "COMP01", "meta", "act_123", "TOKEN", "active").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("INTOLD"))

	id, err := repo.SaveOrUpdate(integration)
	assert.NoError(t, err)
	assert.Equal(t, "INTOLD", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntegrationRepository_UpdateIntegration(t *testing.T) {
	t.Run("Integração inexistente devolve ErrNoRows", func(t *testing.T) {
		conn, mock := newConnForTest(t)
		repo := NewIntegrationRepository(conn)

		status := domain.IntegrationStatusInactive

		mock.ExpectExec("UPDATE integrations").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateIntegration(&domain.UpdateIntegrationRequest{ID: "INT404", Status: &status})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestIntegrationRepository_MarkSynced(t *testing.T) {
	syncedAt := time.Now().UTC()

	t.Run("Sincronização completa avança last_full_sync", func(t *testing.T) {
		conn, mock := newConnForTest(t)
		repo := NewIntegrationRepository(conn)

		mock.ExpectExec("UPDATE integrations SET last_sync = (.+), updated_at = NOW\\(\\), last_full_sync").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkSynced("INT001", true, syncedAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Sincronização parcial só avança last_sync", func(t *testing.T) {
		conn, mock := newConnForTest(t)
		repo := NewIntegrationRepository(conn)

		mock.ExpectExec("UPDATE integrations SET last_sync = (.+), updated_at = NOW\\(\\) WHERE").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkSynced("INT001", false, syncedAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
