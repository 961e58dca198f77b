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

const integrationsTable = "integrations"

type IntegrationRepository interface {
	GetByID(integrationID string) (*domain.Integration, error)
	ListByCompany(companyID string) ([]*domain.Integration, error)
	ListActive() ([]*domain.Integration, error)
	SaveOrUpdate(integration *domain.Integration) (string, error)
	UpdateIntegration(req *domain.UpdateIntegrationRequest) error
	MarkSynced(integrationID string, fullSync bool, syncedAt time.Time) error
}

type integrationRepository struct {
	conn *postgres.Connection
}

func NewIntegrationRepository(conn *postgres.Connection) IntegrationRepository {
	return &integrationRepository{
		conn: conn,
	}
}

func (r *integrationRepository) GetByID(integrationID string) (*domain.Integration, error) {
	return r.getIntegration(squirrel.Eq{"id": integrationID})
}

func (r *integrationRepository) getIntegration(whereClause map[string]interface{}) (*domain.Integration, error) {
	querySQL, args, err := squirrel.
		Select("id, company_id, platform, external_account_id, access_token, status, last_sync, last_full_sync, created_at, updated_at").
		From(integrationsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(querySQL, args...)

	integration, err := r.deserializeIntegration(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return integration, nil
}

func (r *integrationRepository) deserializeIntegration(row *sql.Row) (*domain.Integration, error) {
	integration := &domain.Integration{}

	if err := row.Scan(
		&integration.ID,
		&integration.CompanyID,
		&integration.Platform,
		&integration.ExternalAccountID,
		&integration.AccessToken,
		&integration.Status,
		&integration.LastSync,
		&integration.LastFullSync,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return integration, nil
}

func (r *integrationRepository) ListByCompany(companyID string) ([]*domain.Integration, error) {
	return r.listIntegrations(squirrel.Eq{"company_id": companyID})
}

func (r *integrationRepository) ListActive() ([]*domain.Integration, error) {
	return r.listIntegrations(squirrel.Eq{"status": domain.IntegrationStatusActive})
}

func (r *integrationRepository) listIntegrations(whereClause map[string]interface{}) ([]*domain.Integration, error) {
	querySQL, args, err := squirrel.
		Select("id, company_id, platform, external_account_id, access_token, status, last_sync, last_full_sync, created_at, updated_at").
		From(integrationsTable).
		Where(whereClause).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(querySQL, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	integrations := make([]*domain.Integration, 0)

	for rows.Next() {
		integration := &domain.Integration{}

		if err := rows.Scan(
			&integration.ID,
			&integration.CompanyID,
			&integration.Platform,
			&integration.ExternalAccountID,
			&integration.AccessToken,
			&integration.Status,
			&integration.LastSync,
			&integration.LastFullSync,
			&integration.CreatedAt,
			&integration.UpdatedAt,
		); err != nil {
			return nil, err
		}

		integrations = append(integrations, integration)
	}

	return integrations, rows.Err()
}

// SaveOrUpdate insere uma nova integração ou reativa uma existente para a
// mesma conta da plataforma, atualizando o token de acesso.
func (r *integrationRepository) SaveOrUpdate(integration *domain.Integration) (string, error) {
	querySQL, args, err := squirrel.StatementBuilder.
		Insert(integrationsTable).
		Columns("id", "company_id", "platform", "external_account_id", "access_token", "status").
		Values(
			integration.ID,
			integration.CompanyID,
			integration.Platform,
			integration.ExternalAccountID,
			integration.AccessToken,
			integration.Status,
		).
		Suffix(`
			ON CONFLICT (company_id, platform, external_account_id) DO UPDATE SET
				access_token = EXCLUDED.access_token,
				status = EXCLUDED.status,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	var id string
	if err := r.conn.QueryRow(querySQL, args...).Scan(&id); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	return id, nil
}

func (r *integrationRepository) UpdateIntegration(req *domain.UpdateIntegrationRequest) error {
	queryBuilder := squirrel.StatementBuilder.
		Update(integrationsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if req.Status != nil {
		queryBuilder = queryBuilder.Set("status", *req.Status)
	}

	querySQL, args, err := queryBuilder.ToSql()
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

// MarkSynced registra o horário da última sincronização bem sucedida.
func (r *integrationRepository) MarkSynced(integrationID string, fullSync bool, syncedAt time.Time) error {
	queryBuilder := squirrel.StatementBuilder.
		Update(integrationsTable).
		Set("last_sync", syncedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": integrationID}).
		PlaceholderFormat(squirrel.Dollar)

	if fullSync {
		queryBuilder = queryBuilder.Set("last_full_sync", syncedAt)
	}

	querySQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(querySQL, args...)
	return err
}
