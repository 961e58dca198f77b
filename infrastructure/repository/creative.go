package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adlens/creative-audit-api/infrastructure/database/postgres"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
)

const creativesTable = "creatives"

type CreativeRepository interface {
	ListByAdSet(adSetID string) ([]*domain.Creative, error)
	SaveOrUpdate(creative *domain.Creative) (string, error)
	DeleteMissing(adSetID string, keepExternalIDs []string) (int64, error)
	UpdateImageURL(creativeID string, imageURL string) error
}

type creativeRepository struct {
	conn *postgres.Connection
}

func NewCreativeRepository(conn *postgres.Connection) CreativeRepository {
	return &creativeRepository{
		conn: conn,
	}
}

func (r *creativeRepository) ListByAdSet(adSetID string) ([]*domain.Creative, error) {
	querySQL, args, err := squirrel.
		Select(`id, ad_set_id, campaign_id, company_id, external_id, name, type, image_url,
			body, headline, description, impressions, clicks, conversions, ctr, cpc, updated_at`).
		From(creativesTable).
		Where(squirrel.Eq{"ad_set_id": adSetID}).
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

	creatives := make([]*domain.Creative, 0)

	for rows.Next() {
		creative := &domain.Creative{}

		if err := rows.Scan(
			&creative.ID,
			&creative.AdSetID,
			&creative.CampaignID,
			&creative.CompanyID,
			&creative.ExternalID,
			&creative.Name,
			&creative.Type,
			&creative.ImageURL,
			&creative.Body,
			&creative.Headline,
			&creative.Description,
			&creative.Impressions,
			&creative.Clicks,
			&creative.Conversions,
			&creative.CTR,
			&creative.CPC,
			&creative.UpdatedAt,
		); err != nil {
			return nil, err
		}

		creatives = append(creatives, creative)
	}

	return creatives, rows.Err()
}

func (r *creativeRepository) SaveOrUpdate(creative *domain.Creative) (string, error) {
	querySQL, args, err := squirrel.StatementBuilder.
		Insert(creativesTable).
		Columns("id", "ad_set_id", "campaign_id", "company_id", "external_id", "name", "type",
			"image_url", "body", "headline", "description", "impressions", "clicks",
			"conversions", "ctr", "cpc").
		Values(
			creative.ID,
			creative.AdSetID,
			creative.CampaignID,
			creative.CompanyID,
			creative.ExternalID,
			creative.Name,
			creative.Type,
			creative.ImageURL,
			creative.Body,
			creative.Headline,
			creative.Description,
			creative.Impressions,
			creative.Clicks,
			creative.Conversions,
			creative.CTR,
			creative.CPC,
		).
		Suffix(`
			ON CONFLICT (ad_set_id, external_id) DO UPDATE SET
				name = EXCLUDED.name,
				type = EXCLUDED.type,
				image_url = EXCLUDED.image_url,
				body = EXCLUDED.body,
				headline = EXCLUDED.headline,
				description = EXCLUDED.description,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				conversions = EXCLUDED.conversions,
				ctr = EXCLUDED.ctr,
				cpc = EXCLUDED.cpc,
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

// DeleteMissing remove os criativos do conjunto de anúncios que não estão na
// lista de external_ids mantidos.
func (r *creativeRepository) DeleteMissing(adSetID string, keepExternalIDs []string) (int64, error) {
	result, err := r.conn.Exec(`
		DELETE FROM creatives
		WHERE ad_set_id = $1
		AND NOT (external_id = ANY($2))
	`, adSetID, pq.Array(keepExternalIDs))
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// UpdateImageURL troca a URL da imagem pela cópia interna após o cache.
func (r *creativeRepository) UpdateImageURL(creativeID string, imageURL string) error {
	querySQL, args, err := squirrel.StatementBuilder.
		Update(creativesTable).
		Set("image_url", imageURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": creativeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(querySQL, args...)
	return err
}
