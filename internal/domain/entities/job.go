package entities

import (
	"strings"
	"time"
)

// JobStatus represents the lifecycle of a live job.
//
// Completion is not a status: a completed job stops existing in the live
// tables and is represented by a CompletedJob instead.

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
)

const (
	JobTypeService     = "Service"
	JobTypeMaintenance = "Maintenance"
	JobTypeRepair      = "Repair"
)

// Job is a live, mutable unit of field work owned by one org.
//
// Storage model (Postgres):
//   - table jobs, PK id
//   - child tables job_notes, job_charges, job_hours, job_parts, job_photos
//     and the join table job_equipment, all keyed by (job_id, org_id)
type Job struct {
	ID           string     `json:"id"`
	OrgID        string     `json:"org_id"`
	CustomerID   string     `json:"customer_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	JobType      string     `json:"job_type"`
	Status       JobStatus  `json:"status"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`
	Notes        string     `json:"notes"`
	CreatedBy    string     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	EquipmentIDs []string   `json:"equipment_ids,omitempty"`
}

// JobForCompletion is the live job as seen by the completion pipeline: the
// job itself, the customer name at load time and the equipment linked to it.
type JobForCompletion struct {
	Job          Job
	CustomerName string
	Equipment    []Equipment
}

// MaintenanceTypes is the set of job types that take part in recurring
// service scheduling. Matching is case-insensitive.
type MaintenanceTypes []string

func DefaultMaintenanceTypes() MaintenanceTypes {
	return MaintenanceTypes{JobTypeService, JobTypeMaintenance}
}

// ParseMaintenanceTypes reads a comma separated list, falling back to the
// defaults when nothing usable is given.
func ParseMaintenanceTypes(raw string) MaintenanceTypes {
	var out MaintenanceTypes
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return DefaultMaintenanceTypes()
	}
	return out
}

func (m MaintenanceTypes) Contains(jobType string) bool {
	jobType = strings.TrimSpace(jobType)
	for _, t := range m {
		if strings.EqualFold(t, jobType) {
			return true
		}
	}
	return false
}
