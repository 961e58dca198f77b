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

const oauthSessionsTable = "oauth_sessions"

type OAuthSessionRepository interface {
	Create(session *domain.OAuthSession) error
	Consume(state string) (*domain.OAuthSession, error)
}

type oauthSessionRepository struct {
	conn *postgres.Connection
}

func NewOAuthSessionRepository(conn *postgres.Connection) OAuthSessionRepository {
	return &oauthSessionRepository{
		conn: conn,
	}
}

// Create registra uma nova sessão de autorização. Sessões vencidas são
// removidas na mesma escrita para a tabela não acumular lixo.
func (r *oauthSessionRepository) Create(session *domain.OAuthSession) error {
	if _, err := r.conn.Exec(
		"DELETE FROM oauth_sessions WHERE expires_at < NOW()",
	); err != nil {
		return err
	}

	querySQL, args, err := squirrel.StatementBuilder.
		Insert(oauthSessionsTable).
		Columns("state", "company_id", "platform", "redirect_uri", "created_at", "expires_at").
		Values(
			session.State,
			session.CompanyID,
			session.Platform,
			session.RedirectURI,
			session.CreatedAt,
			session.ExpiresAt,
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

// Consume devolve a sessão do state informado e a remove, garantindo uso
// único. Sessões vencidas são tratadas como inexistentes.
func (r *oauthSessionRepository) Consume(state string) (*domain.OAuthSession, error) {
	session := &domain.OAuthSession{}

	err := r.conn.QueryRow(`
		DELETE FROM oauth_sessions
		WHERE state = $1
		RETURNING state, company_id, platform, redirect_uri, created_at, expires_at
	`, state).Scan(
		&session.State,
		&session.CompanyID,
		&session.Platform,
		&session.RedirectURI,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if session.Expired(time.Now().UTC()) {
		return nil, nil
	}

	return session, nil
}
