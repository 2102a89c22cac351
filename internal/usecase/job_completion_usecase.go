package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrInvalidJobID  = errors.New("invalid job id")
	ErrInvalidActor  = errors.New("invalid identity")
	ErrArchiveFailed = errors.New("job archival failed")
)

// IJobCompletionUseCase moves a live job into the archive.
//
// There is no idempotency key: the live job row is deleted as the last step
// of the transaction, so a repeated call for the same job fails with
// ErrJobNotFound instead of archiving twice.
type IJobCompletionUseCase interface {
	CompleteJob(ctx context.Context, identity entities.Identity, jobID string) (entities.CompletionResult, error)
}

type JobCompletionUseCase struct {
	uow       interfaces.IArchiveUnitOfWork
	evaluator IFollowUpEvaluator
	now       func() time.Time
	newID     func() string
	logger    *slog.Logger
}

var _ IJobCompletionUseCase = (*JobCompletionUseCase)(nil)

func NewJobCompletionUseCase(uow interfaces.IArchiveUnitOfWork, evaluator IFollowUpEvaluator) *JobCompletionUseCase {
	return &JobCompletionUseCase{
		uow:       uow,
		evaluator: evaluator,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		logger:    slog.Default().With("module", "usecase", "component", "job_completion"),
	}
}

func (u *JobCompletionUseCase) CompleteJob(ctx context.Context, identity entities.Identity, jobID string) (entities.CompletionResult, error) {
	jobID = strings.TrimSpace(jobID)
	if _, err := uuid.Parse(jobID); err != nil {
		return entities.CompletionResult{}, ErrInvalidJobID
	}
	if !identity.Valid() {
		return entities.CompletionResult{}, ErrInvalidActor
	}

	var result entities.CompletionResult
	err := u.uow.WithinTx(ctx, func(ctx context.Context, tx interfaces.IArchiveTx) error {
		live, err := tx.LoadJobForCompletion(ctx, jobID, identity.OrgID)
		if err != nil {
			return fmt.Errorf("load job: %w", err)
		}
		if live.Job.ID == "" {
			return ErrJobNotFound
		}

		completed := u.snapshot(live, identity)
		if err := tx.InsertCompletedJob(ctx, completed); err != nil {
			return fmt.Errorf("insert completed job: %w", err)
		}

		keys := entities.ArchiveKeys{
			CompletedJobID: completed.ID,
			OriginalJobID:  live.Job.ID,
			OrgID:          identity.OrgID,
		}
		migrated := make(map[entities.ChildKind]int, len(entities.ChildKinds()))
		for _, kind := range entities.ChildKinds() {
			n, err := tx.MigrateChildren(ctx, kind, keys)
			if err != nil {
				return fmt.Errorf("migrate %s: %w", kind, err)
			}
			migrated[kind] = n
		}

		followUps := u.evaluator.Evaluate(ctx, tx, live, completed)

		if err := tx.DeleteLiveJob(ctx, live.Job.ID, identity.OrgID); err != nil {
			return fmt.Errorf("delete live job: %w", err)
		}

		result = entities.CompletionResult{
			CompletedJobID: completed.ID,
			CompletedAt:    completed.CompletedAt,
			Migrated:       migrated,
			FollowUpJobIDs: followUps,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return entities.CompletionResult{}, ErrJobNotFound
		}
		u.logger.ErrorContext(ctx, "job completion rolled back",
			"operation", "complete_job",
			"outcome", "failure",
			"job_id", jobID,
			"org_id", identity.OrgID,
			"error", err.Error(),
		)
		return entities.CompletionResult{}, fmt.Errorf("%w: %w", ErrArchiveFailed, err)
	}

	u.logger.InfoContext(ctx, "job completed",
		"operation", "complete_job",
		"outcome", "success",
		"job_id", jobID,
		"org_id", identity.OrgID,
		"completed_job_id", result.CompletedJobID,
		"follow_up_count", len(result.FollowUpJobIDs),
	)
	return result, nil
}

func (u *JobCompletionUseCase) snapshot(live entities.JobForCompletion, identity entities.Identity) entities.CompletedJob {
	job := live.Job
	return entities.CompletedJob{
		ID:                   u.newID(),
		OrgID:                identity.OrgID,
		OriginalJobID:        job.ID,
		CustomerID:           job.CustomerID,
		CustomerNameSnapshot: live.CustomerName,
		Title:                job.Title,
		Description:          job.Description,
		JobType:              job.JobType,
		Notes:                job.Notes,
		ScheduledAt:          job.ScheduledAt,
		CompletedAt:          u.now(),
		CompletedBy:          identity.ActorID,
		OriginalCreatedBy:    job.CreatedBy,
		OriginalCreatedAt:    job.CreatedAt,
	}
}
