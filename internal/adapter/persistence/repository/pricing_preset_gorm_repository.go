package repository

import (
	"context"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// PricingPresetGormRepository reads the rate card used at invoice time.
type PricingPresetGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPricingPresetRepository = (*PricingPresetGormRepository)(nil)

func NewPricingPresetGormRepository(db *gorm.DB) *PricingPresetGormRepository {
	return &PricingPresetGormRepository{db: db}
}

func (r *PricingPresetGormRepository) ListByOrg(ctx context.Context, orgID string) ([]entities.PricingPreset, error) {
	var rows []pricingPresetModel
	if err := r.db.WithContext(ctx).Where("org_id = ?", orgID).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.PricingPreset, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.PricingPreset{ID: m.ID, OrgID: m.OrgID, Name: m.Name, UnitPrice: m.UnitPrice})
	}
	return out, nil
}
