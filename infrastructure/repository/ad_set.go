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

const adSetsTable = "ad_sets"

type AdSetRepository interface {
	ListByCampaign(campaignID string) ([]*domain.AdSet, error)
	SaveOrUpdate(adSet *domain.AdSet) (string, error)
	DeleteMissing(ctx context.Context, campaignID string, keepExternalIDs []string) (int64, error)
}

type adSetRepository struct {
	conn *postgres.Connection
}

func NewAdSetRepository(conn *postgres.Connection) AdSetRepository {
	return &adSetRepository{
		conn: conn,
	}
}

func (r *adSetRepository) ListByCampaign(campaignID string) ([]*domain.AdSet, error) {
	querySQL, args, err := squirrel.
		Select("id, campaign_id, company_id, external_id, name, status, targeting, updated_at").
		From(adSetsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
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

	adSets := make([]*domain.AdSet, 0)

	for rows.Next() {
		adSet := &domain.AdSet{}

		if err := rows.Scan(
			&adSet.ID,
			&adSet.CampaignID,
			&adSet.CompanyID,
			&adSet.ExternalID,
			&adSet.Name,
			&adSet.Status,
			&adSet.Targeting,
			&adSet.UpdatedAt,
		); err != nil {
			return nil, err
		}

		adSets = append(adSets, adSet)
	}

	return adSets, rows.Err()
}

func (r *adSetRepository) SaveOrUpdate(adSet *domain.AdSet) (string, error) {
	querySQL, args, err := squirrel.StatementBuilder.
		Insert(adSetsTable).
		Columns("id", "campaign_id", "company_id", "external_id", "name", "status", "targeting").
		Values(
			adSet.ID,
			adSet.CampaignID,
			adSet.CompanyID,
			adSet.ExternalID,
			adSet.Name,
			adSet.Status,
			adSet.Targeting,
		).
		Suffix(`
			ON CONFLICT (campaign_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				targeting = EXCLUDED.targeting,
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

// DeleteMissing remove os conjuntos de anúncios da campanha que não estão na
// lista de external_ids mantidos, removendo antes os criativos de cada um.
func (r *adSetRepository) DeleteMissing(ctx context.Context, campaignID string, keepExternalIDs []string) (int64, error) {
	var total int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			DELETE FROM creatives c
			USING ad_sets ads
			WHERE c.ad_set_id = ads.id
			AND ads.campaign_id = $1
			AND NOT (ads.external_id = ANY($2))
		`, campaignID, pq.Array(keepExternalIDs))
		if err != nil {
			return err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		total += affected

		result, err = tx.ExecContext(ctx, `
			DELETE FROM ad_sets
			WHERE campaign_id = $1
			AND NOT (external_id = ANY($2))
		`, campaignID, pq.Array(keepExternalIDs))
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
