package interfaces

import (
	"context"
	"time"

	"fieldops/internal/domain/entities"
)

//go:generate mockgen -source=archive_unit_of_work_interface.go -destination=mocks/archive_unit_of_work_mock.go -package=mock_interfaces

// IArchiveUnitOfWork runs fn inside one relational transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type IArchiveUnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx IArchiveTx) error) error
}

// IArchiveTx is the transaction-scoped handle used to move a live job into
// the archive. Every read and write is filtered by (job_id, org_id).
type IArchiveTx interface {
	IFollowUpTx

	// LoadJobForCompletion locks and returns the live job. A zero Job.ID
	// means the job does not exist in the org.
	LoadJobForCompletion(ctx context.Context, jobID, orgID string) (entities.JobForCompletion, error)
	InsertCompletedJob(ctx context.Context, cj entities.CompletedJob) error
	// MigrateChildren copies the live rows of one kind into its archive
	// table and returns how many rows were copied. Live rows are kept.
	MigrateChildren(ctx context.Context, kind entities.ChildKind, keys entities.ArchiveKeys) (int, error)
	// DeleteLiveJob removes every live child row and the job row itself.
	DeleteLiveJob(ctx context.Context, jobID, orgID string) error
}

// IFollowUpTx is the part of the transaction the recurring work evaluator
// writes through.
type IFollowUpTx interface {
	// Savepoint runs fn in a nested scope. When fn fails only its own
	// writes are undone and the enclosing transaction stays usable.
	Savepoint(ctx context.Context, fn func(ctx context.Context, tx IFollowUpTx) error) error
	CreateFollowUpJob(ctx context.Context, job entities.Job) error
	UpdateEquipmentServiceDates(ctx context.Context, orgID, equipmentID string, last, next time.Time) error
}
