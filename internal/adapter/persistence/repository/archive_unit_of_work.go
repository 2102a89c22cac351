package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	errUnknownChildKind  = errors.New("unknown child kind")
	errEquipmentNotFound = errors.New("equipment not found")
	errLiveJobVanished   = errors.New("live job disappeared during archival")
)

// ArchiveGormUnitOfWork runs the completion pipeline inside one Postgres
// transaction. Nested scopes opened through Savepoint map to SAVEPOINTs.
type ArchiveGormUnitOfWork struct {
	db *gorm.DB
}

var _ interfaces.IArchiveUnitOfWork = (*ArchiveGormUnitOfWork)(nil)

func NewArchiveGormUnitOfWork(db *gorm.DB) *ArchiveGormUnitOfWork {
	return &ArchiveGormUnitOfWork{db: db}
}

func (u *ArchiveGormUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx interfaces.IArchiveTx) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &archiveGormTx{tx: tx})
	})
}

type archiveGormTx struct {
	tx *gorm.DB
}

var _ interfaces.IArchiveTx = (*archiveGormTx)(nil)

func (t *archiveGormTx) LoadJobForCompletion(ctx context.Context, jobID, orgID string) (entities.JobForCompletion, error) {
	db := t.tx.WithContext(ctx)

	var job jobModel
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND org_id = ?", jobID, orgID).
		Take(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.JobForCompletion{}, nil
	}
	if err != nil {
		return entities.JobForCompletion{}, err
	}

	var customerName string
	var customer customerModel
	err = db.Where("id = ? AND org_id = ?", job.CustomerID, orgID).Take(&customer).Error
	switch {
	case err == nil:
		customerName = customer.Name
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return entities.JobForCompletion{}, fmt.Errorf("load customer: %w", err)
	}

	var equipment []equipmentModel
	err = db.Model(&equipmentModel{}).
		Select("equipment.*").
		Joins("JOIN job_equipment je ON je.equipment_id = equipment.id AND je.org_id = equipment.org_id").
		Where("je.job_id = ? AND je.org_id = ?", jobID, orgID).
		Order("je.created_at, je.id").
		Find(&equipment).Error
	if err != nil {
		return entities.JobForCompletion{}, fmt.Errorf("load equipment: %w", err)
	}

	out := entities.JobForCompletion{
		Job:          fromJobModel(job),
		CustomerName: customerName,
		Equipment:    make([]entities.Equipment, 0, len(equipment)),
	}
	for _, e := range equipment {
		out.Job.EquipmentIDs = append(out.Job.EquipmentIDs, e.ID)
		out.Equipment = append(out.Equipment, fromEquipmentModel(e))
	}
	return out, nil
}

func (t *archiveGormTx) InsertCompletedJob(ctx context.Context, cj entities.CompletedJob) error {
	m := toCompletedJobModel(cj)
	return t.tx.WithContext(ctx).Create(&m).Error
}

func (t *archiveGormTx) MigrateChildren(ctx context.Context, kind entities.ChildKind, keys entities.ArchiveKeys) (int, error) {
	m, ok := childMigrators[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %s", errUnknownChildKind, kind)
	}
	return m.migrate(ctx, t.tx, keys)
}

func (t *archiveGormTx) DeleteLiveJob(ctx context.Context, jobID, orgID string) error {
	db := t.tx.WithContext(ctx)
	for _, table := range liveChildTables {
		if err := db.Exec("DELETE FROM "+table+" WHERE job_id = ? AND org_id = ?", jobID, orgID).Error; err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}

	res := db.Where("id = ? AND org_id = ?", jobID, orgID).Delete(&jobModel{})
	if res.Error != nil {
		return fmt.Errorf("delete job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errLiveJobVanished
	}
	return nil
}

func (t *archiveGormTx) Savepoint(ctx context.Context, fn func(ctx context.Context, tx interfaces.IFollowUpTx) error) error {
	return t.tx.WithContext(ctx).Transaction(func(sp *gorm.DB) error {
		return fn(ctx, &archiveGormTx{tx: sp})
	})
}

func (t *archiveGormTx) CreateFollowUpJob(ctx context.Context, job entities.Job) error {
	db := t.tx.WithContext(ctx)
	m := toJobModel(job)
	if err := db.Create(&m).Error; err != nil {
		return err
	}
	for _, equipmentID := range job.EquipmentIDs {
		link := jobEquipmentModel{
			ID:          uuid.NewString(),
			JobID:       job.ID,
			OrgID:       job.OrgID,
			EquipmentID: equipmentID,
			CreatedAt:   job.CreatedAt,
		}
		if err := db.Create(&link).Error; err != nil {
			return fmt.Errorf("link equipment %s: %w", equipmentID, err)
		}
	}
	return nil
}

func (t *archiveGormTx) UpdateEquipmentServiceDates(ctx context.Context, orgID, equipmentID string, last, next time.Time) error {
	res := t.tx.WithContext(ctx).
		Model(&equipmentModel{}).
		Where("id = ? AND org_id = ?", equipmentID, orgID).
		Updates(map[string]any{
			"last_service_date": last,
			"next_service_date": next,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", errEquipmentNotFound, equipmentID)
	}
	return nil
}
