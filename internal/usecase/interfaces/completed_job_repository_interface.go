package interfaces

import (
	"context"

	"fieldops/internal/domain/entities"
)

//go:generate mockgen -source=completed_job_repository_interface.go -destination=mocks/completed_job_repository_mock.go -package=mock_interfaces

// ICompletedJobRepository reads the archive. Archived rows are never written
// outside the completion transaction.
type ICompletedJobRepository interface {
	// GetAggregate returns a zero CompletedJob.ID when nothing matches.
	GetAggregate(ctx context.Context, orgID, completedJobID string) (entities.CompletedJobAggregate, error)
	ListByOrg(ctx context.Context, orgID, customerID string) ([]entities.CompletedJob, error)
}
