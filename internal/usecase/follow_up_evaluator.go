package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IFollowUpEvaluator decides which follow-up jobs a completion produces and
// writes them through the completion transaction.
type IFollowUpEvaluator interface {
	Evaluate(ctx context.Context, tx interfaces.IFollowUpTx, live entities.JobForCompletion, completed entities.CompletedJob) []string
}

// FollowUpEvaluator implements the recurring work rule: a completed
// maintenance job schedules the next visit for every linked equipment item
// that has a service interval.
//
// Items are processed sequentially, each inside its own savepoint. A failing
// item is logged and skipped; it never fails the completion.
type FollowUpEvaluator struct {
	maintenanceTypes entities.MaintenanceTypes
	newID            func() string
	logger           *slog.Logger
}

var _ IFollowUpEvaluator = (*FollowUpEvaluator)(nil)

func NewFollowUpEvaluator(maintenanceTypes entities.MaintenanceTypes) *FollowUpEvaluator {
	if len(maintenanceTypes) == 0 {
		maintenanceTypes = entities.DefaultMaintenanceTypes()
	}
	return &FollowUpEvaluator{
		maintenanceTypes: maintenanceTypes,
		newID:            uuid.NewString,
		logger:           slog.Default().With("module", "usecase", "component", "follow_up_evaluator"),
	}
}

// Evaluate returns the ids of the follow-up jobs it created.
func (e *FollowUpEvaluator) Evaluate(ctx context.Context, tx interfaces.IFollowUpTx, live entities.JobForCompletion, completed entities.CompletedJob) []string {
	if !e.maintenanceTypes.Contains(live.Job.JobType) {
		return nil
	}

	serviceDay := entities.ServiceDay(completed.CompletedAt)
	var created []string
	for _, eq := range live.Equipment {
		if eq.ServiceIntervalMonths == nil {
			continue
		}

		next := entities.AddCalendarMonths(serviceDay, *eq.ServiceIntervalMonths)
		followUp := e.followUpJob(live.Job, completed, eq, next)

		err := tx.Savepoint(ctx, func(ctx context.Context, sp interfaces.IFollowUpTx) error {
			if err := sp.CreateFollowUpJob(ctx, followUp); err != nil {
				return fmt.Errorf("create follow-up job: %w", err)
			}
			if err := sp.UpdateEquipmentServiceDates(ctx, completed.OrgID, eq.ID, serviceDay, next); err != nil {
				return fmt.Errorf("update equipment service dates: %w", err)
			}
			return nil
		})
		if err != nil {
			e.logger.WarnContext(ctx, "follow-up skipped",
				"operation", "evaluate_follow_up",
				"outcome", "failure",
				"job_id", live.Job.ID,
				"completed_job_id", completed.ID,
				"equipment_id", eq.ID,
				"error", err.Error(),
			)
			continue
		}

		e.logger.InfoContext(ctx, "follow-up scheduled",
			"operation", "evaluate_follow_up",
			"outcome", "success",
			"job_id", live.Job.ID,
			"equipment_id", eq.ID,
			"follow_up_job_id", followUp.ID,
			"scheduled_at", next.Format("2006-01-02"),
		)
		created = append(created, followUp.ID)
	}
	return created
}

func (e *FollowUpEvaluator) followUpJob(job entities.Job, completed entities.CompletedJob, eq entities.Equipment, next time.Time) entities.Job {
	scheduledAt := next
	return entities.Job{
		ID:           e.newID(),
		OrgID:        completed.OrgID,
		CustomerID:   job.CustomerID,
		Title:        "Service - " + eq.Name,
		Description:  fmt.Sprintf("Follow-up maintenance for %q (completed job %s)", job.Title, completed.ID),
		JobType:      job.JobType,
		Status:       entities.JobStatusPending,
		ScheduledAt:  &scheduledAt,
		CreatedBy:    completed.CompletedBy,
		CreatedAt:    completed.CompletedAt,
		EquipmentIDs: []string{eq.ID},
	}
}
