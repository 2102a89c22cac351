package repository

import (
	"context"
	"errors"
	"fmt"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// CompletedJobGormRepository reads archived jobs and their child rows.
type CompletedJobGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICompletedJobRepository = (*CompletedJobGormRepository)(nil)

func NewCompletedJobGormRepository(db *gorm.DB) *CompletedJobGormRepository {
	return &CompletedJobGormRepository{db: db}
}

func (r *CompletedJobGormRepository) GetAggregate(ctx context.Context, orgID, completedJobID string) (entities.CompletedJobAggregate, error) {
	db := r.db.WithContext(ctx)

	var cj completedJobModel
	err := db.Where("id = ? AND org_id = ?", completedJobID, orgID).Take(&cj).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.CompletedJobAggregate{}, nil
	}
	if err != nil {
		return entities.CompletedJobAggregate{}, err
	}

	agg := entities.CompletedJobAggregate{CompletedJob: fromCompletedJobModel(cj)}

	notes, err := loadArchiveRows[completedJobNoteModel](db, completedJobID, orgID)
	if err != nil {
		return entities.CompletedJobAggregate{}, fmt.Errorf("load notes: %w", err)
	}
	for _, n := range notes {
		agg.Notes = append(agg.Notes, entities.ArchivedNote{ArchiveKeys: n.keys(), ID: n.ID, Text: n.Text, CreatedAt: n.CreatedAt})
	}

	charges, err := loadArchiveRows[completedJobChargeModel](db, completedJobID, orgID)
	if err != nil {
		return entities.CompletedJobAggregate{}, fmt.Errorf("load charges: %w", err)
	}
	for _, c := range charges {
		agg.Charges = append(agg.Charges, entities.ArchivedCharge{
			ArchiveKeys: c.keys(),
			ID:          c.ID,
			Kind:        c.Kind,
			Description: c.Description,
			Quantity:    c.Quantity,
			UnitPrice:   c.UnitPrice,
			Total:       c.Total,
			CreatedAt:   c.CreatedAt,
		})
	}

	hours, err := loadArchiveRows[completedJobHourModel](db, completedJobID, orgID)
	if err != nil {
		return entities.CompletedJobAggregate{}, fmt.Errorf("load hours: %w", err)
	}
	for _, h := range hours {
		agg.Hours = append(agg.Hours, entities.ArchivedHour{ArchiveKeys: h.keys(), ID: h.ID, Hours: h.Hours, Description: h.Description, CreatedAt: h.CreatedAt})
	}

	parts, err := loadArchiveRows[completedJobPartModel](db, completedJobID, orgID)
	if err != nil {
		return entities.CompletedJobAggregate{}, fmt.Errorf("load parts: %w", err)
	}
	for _, p := range parts {
		agg.Parts = append(agg.Parts, entities.ArchivedPart{ArchiveKeys: p.keys(), ID: p.ID, PartName: p.PartName, Quantity: p.Quantity, CreatedAt: p.CreatedAt})
	}

	photos, err := loadArchiveRows[completedJobPhotoModel](db, completedJobID, orgID)
	if err != nil {
		return entities.CompletedJobAggregate{}, fmt.Errorf("load photos: %w", err)
	}
	for _, p := range photos {
		agg.Photos = append(agg.Photos, entities.ArchivedPhoto{ArchiveKeys: p.keys(), ID: p.ID, StorageKey: p.StorageKey, CreatedAt: p.CreatedAt})
	}

	links, err := loadArchiveRows[completedJobEquipmentModel](db, completedJobID, orgID)
	if err != nil {
		return entities.CompletedJobAggregate{}, fmt.Errorf("load equipment: %w", err)
	}
	for _, l := range links {
		agg.Equipment = append(agg.Equipment, entities.ArchivedEquipmentLink{
			ArchiveKeys:           l.keys(),
			ID:                    l.ID,
			EquipmentID:           l.EquipmentID,
			EquipmentNameSnapshot: l.EquipmentNameSnapshot,
			CreatedAt:             l.CreatedAt,
		})
	}
	return agg, nil
}

func (r *CompletedJobGormRepository) ListByOrg(ctx context.Context, orgID, customerID string) ([]entities.CompletedJob, error) {
	q := r.db.WithContext(ctx).Where("org_id = ?", orgID)
	if customerID != "" {
		q = q.Where("customer_id = ?", customerID)
	}

	var rows []completedJobModel
	if err := q.Order("completed_at DESC, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.CompletedJob, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromCompletedJobModel(m))
	}
	return out, nil
}

func loadArchiveRows[A any](db *gorm.DB, completedJobID, orgID string) ([]A, error) {
	var rows []A
	err := db.Where("completed_job_id = ? AND org_id = ?", completedJobID, orgID).
		Order("created_at, id").
		Find(&rows).Error
	return rows, err
}
