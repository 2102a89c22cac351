package repository

import (
	"context"
	"fmt"

	"fieldops/internal/domain/entities"

	"gorm.io/gorm"
)

const archiveBatchSize = 200

// childMigrator copies the live rows of one child kind into its archive
// table. Source rows are left in place; the caller deletes them once every
// kind has been copied.
type childMigrator interface {
	migrate(ctx context.Context, tx *gorm.DB, keys entities.ArchiveKeys) (int, error)
}

// tableMigrator is the generic migrator: L is the live row, A the archive row.
type tableMigrator[L any, A any] struct {
	// load reads the live rows. Nil means a plain select on L's table.
	load    func(ctx context.Context, tx *gorm.DB, keys entities.ArchiveKeys) ([]L, error)
	archive func(row L, keys entities.ArchiveKeys) A
}

func (m tableMigrator[L, A]) migrate(ctx context.Context, tx *gorm.DB, keys entities.ArchiveKeys) (int, error) {
	load := m.load
	if load == nil {
		load = loadLiveRows[L]
	}
	live, err := load(ctx, tx, keys)
	if err != nil {
		return 0, fmt.Errorf("read live rows: %w", err)
	}
	if len(live) == 0 {
		return 0, nil
	}

	rows := make([]A, 0, len(live))
	for _, l := range live {
		rows = append(rows, m.archive(l, keys))
	}
	if err := tx.WithContext(ctx).CreateInBatches(&rows, archiveBatchSize).Error; err != nil {
		return 0, fmt.Errorf("write archive rows: %w", err)
	}
	return len(rows), nil
}

func loadLiveRows[L any](ctx context.Context, tx *gorm.DB, keys entities.ArchiveKeys) ([]L, error) {
	var rows []L
	err := tx.WithContext(ctx).
		Where("job_id = ? AND org_id = ?", keys.OriginalJobID, keys.OrgID).
		Order("created_at, id").
		Find(&rows).Error
	return rows, err
}

func loadEquipmentLinks(ctx context.Context, tx *gorm.DB, keys entities.ArchiveKeys) ([]jobEquipmentNamedRow, error) {
	var rows []jobEquipmentNamedRow
	err := tx.WithContext(ctx).
		Table("job_equipment AS je").
		Select("je.id, je.job_id, je.org_id, je.equipment_id, COALESCE(e.name, '') AS equipment_name, je.created_at").
		Joins("LEFT JOIN equipment e ON e.id = je.equipment_id AND e.org_id = je.org_id").
		Where("je.job_id = ? AND je.org_id = ?", keys.OriginalJobID, keys.OrgID).
		Order("je.created_at, je.id").
		Scan(&rows).Error
	return rows, err
}

func archiveColumns(keys entities.ArchiveKeys) ArchiveColumns {
	return ArchiveColumns{
		CompletedJobID: keys.CompletedJobID,
		OriginalJobID:  keys.OriginalJobID,
		OrgID:          keys.OrgID,
	}
}

var childMigrators = map[entities.ChildKind]childMigrator{
	entities.ChildKindNotes: tableMigrator[jobNoteModel, completedJobNoteModel]{
		archive: func(r jobNoteModel, k entities.ArchiveKeys) completedJobNoteModel {
			return completedJobNoteModel{ID: r.ID, ArchiveColumns: archiveColumns(k), Text: r.Text, CreatedAt: r.CreatedAt}
		},
	},
	entities.ChildKindCharges: tableMigrator[jobChargeModel, completedJobChargeModel]{
		archive: func(r jobChargeModel, k entities.ArchiveKeys) completedJobChargeModel {
			return completedJobChargeModel{
				ID:             r.ID,
				ArchiveColumns: archiveColumns(k),
				Kind:           r.Kind,
				Description:    r.Description,
				Quantity:       r.Quantity,
				UnitPrice:      r.UnitPrice,
				Total:          r.Total,
				CreatedAt:      r.CreatedAt,
			}
		},
	},
	entities.ChildKindHours: tableMigrator[jobHourModel, completedJobHourModel]{
		archive: func(r jobHourModel, k entities.ArchiveKeys) completedJobHourModel {
			return completedJobHourModel{ID: r.ID, ArchiveColumns: archiveColumns(k), Hours: r.Hours, Description: r.Description, CreatedAt: r.CreatedAt}
		},
	},
	entities.ChildKindParts: tableMigrator[jobPartModel, completedJobPartModel]{
		archive: func(r jobPartModel, k entities.ArchiveKeys) completedJobPartModel {
			return completedJobPartModel{ID: r.ID, ArchiveColumns: archiveColumns(k), PartName: r.PartName, Quantity: r.Quantity, CreatedAt: r.CreatedAt}
		},
	},
	// Photo bytes stay in blob storage; the archive row keeps the same key.
	entities.ChildKindPhotos: tableMigrator[jobPhotoModel, completedJobPhotoModel]{
		archive: func(r jobPhotoModel, k entities.ArchiveKeys) completedJobPhotoModel {
			return completedJobPhotoModel{ID: r.ID, ArchiveColumns: archiveColumns(k), StorageKey: r.StorageKey, CreatedAt: r.CreatedAt}
		},
	},
	entities.ChildKindEquipment: tableMigrator[jobEquipmentNamedRow, completedJobEquipmentModel]{
		load: loadEquipmentLinks,
		archive: func(r jobEquipmentNamedRow, k entities.ArchiveKeys) completedJobEquipmentModel {
			return completedJobEquipmentModel{
				ID:                    r.ID,
				ArchiveColumns:        archiveColumns(k),
				EquipmentID:           r.EquipmentID,
				EquipmentNameSnapshot: r.EquipmentName,
				CreatedAt:             r.CreatedAt,
			}
		},
	},
}
