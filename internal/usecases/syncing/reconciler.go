package syncing

import (
	"context"

	"github.com/adlens/creative-audit-api/infrastructure/repository"
	"github.com/adlens/creative-audit-api/internal/domain"
	"github.com/adlens/creative-audit-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ReconcileResult resume o efeito de uma passada de reconciliação sobre um
// escopo (campanhas de uma integração, conjuntos de uma campanha, criativos
// de um conjunto).
type ReconcileResult struct {
	Upserted int
	Skipped  int
	Deleted  int64

	// IDByExternalID liga o id externo ao id local de todos os registros
	// processados, inclusive os que não precisaram de escrita
	IDByExternalID map[string]string
}

// Processed conta todos os registros reconciliados, com ou sem escrita
func (r *ReconcileResult) Processed() int {
	return r.Upserted + r.Skipped
}

// Reconciler aplica o estado buscado da plataforma sobre o banco local:
// upsert pela chave natural, escrita pulada quando nada mudou e remoção dos
// registros órfãos quando a busca terminou completa.
type Reconciler struct {
	campaignRepo repository.CampaignRepository
	adSetRepo    repository.AdSetRepository
	creativeRepo repository.CreativeRepository
}

func NewReconciler(
	campaignRepo repository.CampaignRepository,
	adSetRepo repository.AdSetRepository,
	creativeRepo repository.CreativeRepository,
) *Reconciler {
	return &Reconciler{
		campaignRepo: campaignRepo,
		adSetRepo:    adSetRepo,
		creativeRepo: creativeRepo,
	}
}

// ReconcileCampaigns aplica as campanhas buscadas sobre as campanhas locais
// da integração. A limpeza de órfãos só roda quando fetchComplete é true,
// para nunca apagar registros por causa de uma busca interrompida.
func (r *Reconciler) ReconcileCampaigns(ctx context.Context, integration *domain.Integration, fetched []*domain.Campaign, fetchComplete bool) (*ReconcileResult, error) {
	existing, err := r.campaignRepo.ListByIntegration(integration.ID)
	if err != nil {
		return nil, &PersistenceError{Entity: "campaign", Err: err}
	}

	existingByExternalID := make(map[string]*domain.Campaign, len(existing))
	for _, campaign := range existing {
		existingByExternalID[campaign.ExternalID] = campaign
	}

	result := &ReconcileResult{
		IDByExternalID: make(map[string]string, len(fetched)),
	}

	keepExternalIDs := make([]string, 0, len(fetched))

	for _, campaign := range fetched {
		keepExternalIDs = append(keepExternalIDs, campaign.ExternalID)

		if current, ok := existingByExternalID[campaign.ExternalID]; ok && current.ContentEquals(campaign) {
			// Sem mudança: propaga o id local para o nível seguinte da hierarquia
			campaign.ID = current.ID
			result.Skipped++
			result.IDByExternalID[campaign.ExternalID] = current.ID
			continue
		}

		if campaign.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return nil, &PersistenceError{Entity: "campaign", ExternalID: campaign.ExternalID, Err: err}
			}
			campaign.ID = id
		}

		id, err := r.campaignRepo.SaveOrUpdate(campaign)
		if err != nil {
			return nil, &PersistenceError{Entity: "campaign", ExternalID: campaign.ExternalID, Err: err}
		}

		campaign.ID = id
		result.Upserted++
		result.IDByExternalID[campaign.ExternalID] = id
	}

	if fetchComplete {
		deleted, err := r.campaignRepo.DeleteMissing(ctx, integration.ID, keepExternalIDs)
		if err != nil {
			return nil, &PersistenceError{Entity: "campaign", Err: err}
		}
		result.Deleted = deleted

		if deleted > 0 {
			logrus.WithFields(logrus.Fields{
				"integration_id": integration.ID,
				"deleted":        deleted,
			}).Info("Campanhas órfãs removidas com seus conjuntos e criativos")
		}
	}

	return result, nil
}

func (r *Reconciler) ReconcileAdSets(ctx context.Context, campaignID string, fetched []*domain.AdSet, fetchComplete bool) (*ReconcileResult, error) {
	existing, err := r.adSetRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, &PersistenceError{Entity: "ad_set", Err: err}
	}

	existingByExternalID := make(map[string]*domain.AdSet, len(existing))
	for _, adSet := range existing {
		existingByExternalID[adSet.ExternalID] = adSet
	}

	result := &ReconcileResult{
		IDByExternalID: make(map[string]string, len(fetched)),
	}

	keepExternalIDs := make([]string, 0, len(fetched))

	for _, adSet := range fetched {
		keepExternalIDs = append(keepExternalIDs, adSet.ExternalID)

		if current, ok := existingByExternalID[adSet.ExternalID]; ok && current.ContentEquals(adSet) {
			// Sem mudança: propaga o id local para o nível seguinte da hierarquia
			adSet.ID = current.ID
			result.Skipped++
			result.IDByExternalID[adSet.ExternalID] = current.ID
			continue
		}

		if adSet.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return nil, &PersistenceError{Entity: "ad_set", ExternalID: adSet.ExternalID, Err: err}
			}
			adSet.ID = id
		}

		id, err := r.adSetRepo.SaveOrUpdate(adSet)
		if err != nil {
			return nil, &PersistenceError{Entity: "ad_set", ExternalID: adSet.ExternalID, Err: err}
		}

		adSet.ID = id
		result.Upserted++
		result.IDByExternalID[adSet.ExternalID] = id
	}

	if fetchComplete {
		deleted, err := r.adSetRepo.DeleteMissing(ctx, campaignID, keepExternalIDs)
		if err != nil {
			return nil, &PersistenceError{Entity: "ad_set", Err: err}
		}
		result.Deleted = deleted
	}

	return result, nil
}

func (r *Reconciler) ReconcileCreatives(_ context.Context, adSetID string, fetched []*domain.Creative, fetchComplete bool) (*ReconcileResult, error) {
	existing, err := r.creativeRepo.ListByAdSet(adSetID)
	if err != nil {
		return nil, &PersistenceError{Entity: "creative", Err: err}
	}

	existingByExternalID := make(map[string]*domain.Creative, len(existing))
	for _, creative := range existing {
		existingByExternalID[creative.ExternalID] = creative
	}

	result := &ReconcileResult{
		IDByExternalID: make(map[string]string, len(fetched)),
	}

	keepExternalIDs := make([]string, 0, len(fetched))

	for _, creative := range fetched {
		keepExternalIDs = append(keepExternalIDs, creative.ExternalID)

		if current, ok := existingByExternalID[creative.ExternalID]; ok && current.ContentEquals(creative) {
			// Sem mudança: o id local ainda é necessário para o cache de imagens
			creative.ID = current.ID
			result.Skipped++
			result.IDByExternalID[creative.ExternalID] = current.ID
			continue
		}

		if creative.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return nil, &PersistenceError{Entity: "creative", ExternalID: creative.ExternalID, Err: err}
			}
			creative.ID = id
		}

		id, err := r.creativeRepo.SaveOrUpdate(creative)
		if err != nil {
			return nil, &PersistenceError{Entity: "creative", ExternalID: creative.ExternalID, Err: err}
		}

		creative.ID = id
		result.Upserted++
		result.IDByExternalID[creative.ExternalID] = id
	}

	if fetchComplete {
		deleted, err := r.creativeRepo.DeleteMissing(adSetID, keepExternalIDs)
		if err != nil {
			return nil, &PersistenceError{Entity: "creative", Err: err}
		}
		result.Deleted = deleted
	}

	return result, nil
}
