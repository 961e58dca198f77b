package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOAuthSessionRepository_Create(t *testing.T) {
	conn, mock := newConnForTest(t)
	repo := NewOAuthSessionRepository(conn)

	now := time.Now().UTC()
	session := &domain.OAuthSession{
		State:       "STATE123",
		CompanyID:   "COMP01",
		Platform:    domain.PlatformMeta,
		RedirectURI: "https://app.adlens.com.br/oauth/callback",
		CreatedAt:   now,
		ExpiresAt:   now.Add(10 * time.Minute),
	}

	// A escrita limpa sessões vencidas antes de inserir a nova
	mock.ExpectExec("DELETE FROM oauth_sessions WHERE expires_at").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO oauth_sessions").
		WithArgs("STATE123", "COMP01", "meta", session.RedirectURI, now, session.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(session))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOAuthSessionRepository_Consume(t *testing.T) {
	columns := []string{"state", "company_id", "platform", "redirect_uri", "created_at", "expires_at"}

	t.Run("State desconhecido devolve nil sem erro", func(t *testing.T) {
		conn, mock := newConnForTest(t)
		repo := NewOAuthSessionRepository(conn)

		mock.ExpectQuery("DELETE FROM oauth_sessions").
			WithArgs("STATE404").
			WillReturnError(sql.ErrNoRows)

		session, err := repo.Consume("STATE404")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Sessão vencida é tratada como inexistente", func(t *testing.T) {
		conn, mock := newConnForTest(t)
		repo := NewOAuthSessionRepository(conn)

		past := time.Now().UTC().Add(-time.Hour)

		mock.ExpectQuery("DELETE FROM oauth_sessions").
			WithArgs("STATE123").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("STATE123", "COMP01", "meta", "https://app.adlens.com.br/oauth/callback", past.Add(-10*time.Minute), past))

		session, err := repo.Consume("STATE123")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Sessão válida é devolvida uma única vez", func(t *testing.T) {
		conn, mock := newConnForTest(t)
		repo := NewOAuthSessionRepository(conn)

		now := time.Now().UTC()

		mock.ExpectQuery("DELETE FROM oauth_sessions").
			WithArgs("STATE123").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("STATE123", "COMP01", "meta", "https://app.adlens.com.br/oauth/callback", now, now.Add(10*time.Minute)))

		session, err := repo.Consume("STATE123")
		assert.NoError(t, err)
		assert.Equal(t, "COMP01", session.CompanyID)
		assert.Equal(t, domain.PlatformMeta, session.Platform)
	})
}
