package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adlens/creative-audit-api/infrastructure/database/postgres"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
)

const campaignsTable = "campaigns"

type CampaignRepository interface {
	ListByIntegration(integrationID string) ([]*domain.Campaign, error)
	SaveOrUpdate(campaign *domain.Campaign) (string, error)
	DeleteMissing(ctx context.Context, integrationID string, keepExternalIDs []string) (int64, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListByIntegration(integrationID string) ([]*domain.Campaign, error) {
	querySQL, args, err := squirrel.
		Select("id, integration_id, company_id, external_id, name, status, budget, objective, updated_at").
		From(campaignsTable).
		Where(squirrel.Eq{"integration_id": integrationID}).
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

	campaigns := make([]*domain.Campaign, 0)

	for rows.Next() {
		campaign := &domain.Campaign{}

		if err := rows.Scan(
			&campaign.ID,
			&campaign.IntegrationID,
			&campaign.CompanyID,
			&campaign.ExternalID,
			&campaign.Name,
			&campaign.Status,
			&campaign.Budget,
			&campaign.Objective,
			&campaign.UpdatedAt,
		); err != nil {
			return nil, err
		}

		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

// SaveOrUpdate insere ou atualiza a campanha pela chave natural
// (integration_id, external_id) e devolve o id local da linha.
func (r *campaignRepository) SaveOrUpdate(campaign *domain.Campaign) (string, error) {
	querySQL, args, err := squirrel.StatementBuilder.
		Insert(campaignsTable).
		Columns("id", "integration_id", "company_id", "external_id", "name", "status", "budget", "objective").
		Values(
			campaign.ID,
			campaign.IntegrationID,
			campaign.CompanyID,
			campaign.ExternalID,
			campaign.Name,
			campaign.Status,
			campaign.Budget,
			campaign.Objective,
		).
		Suffix(`
			ON CONFLICT (integration_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				budget = EXCLUDED.budget,
				objective = EXCLUDED.objective,
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

// DeleteMissing remove as campanhas da integração que não estão na lista de
// external_ids mantidos, junto com seus conjuntos de anúncios e criativos.
// As remoções acontecem de baixo para cima na mesma transação.
func (r *campaignRepository) DeleteMissing(ctx context.Context, integrationID string, keepExternalIDs []string) (int64, error) {
	var total int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			DELETE FROM creatives c
			USING campaigns cp
			WHERE c.campaign_id = cp.id
			AND cp.integration_id = $1
			AND NOT (cp.external_id = ANY($2))
		`, integrationID, pq.Array(keepExternalIDs))
		if err != nil {
			return err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		total += affected

		result, err = tx.ExecContext(ctx, `
			DELETE FROM ad_sets ads
			USING campaigns cp
			WHERE ads.campaign_id = cp.id
			AND cp.integration_id = $1
			AND NOT (cp.external_id = ANY($2))
		`, integrationID, pq.Array(keepExternalIDs))
		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()
		if err != nil {
			return err
		}
		total += affected

		result, err = tx.ExecContext(ctx, `
			DELETE FROM campaigns
			WHERE integration_id = $1
			AND NOT (external_id = ANY($2))
		`, integrationID, pq.Array(keepExternalIDs))
		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()
		if err != nil {
			return err
		}
		total += affected

		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}
