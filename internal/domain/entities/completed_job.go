package entities

import "time"

// ChildKind names one kind of record hanging off a job that is carried into
// the archive on completion.

type ChildKind string

const (
	ChildKindNotes     ChildKind = "notes"
	ChildKindCharges   ChildKind = "charges"
	ChildKindHours     ChildKind = "hours"
	ChildKindParts     ChildKind = "parts"
	ChildKindPhotos    ChildKind = "photos"
	ChildKindEquipment ChildKind = "equipment"
)

// ChildKinds lists every kind in migration order.
func ChildKinds() []ChildKind {
	return []ChildKind{
		ChildKindNotes,
		ChildKindCharges,
		ChildKindHours,
		ChildKindParts,
		ChildKindPhotos,
		ChildKindEquipment,
	}
}

// CompletedJob is the immutable archive of a job.
//
// Storage model (Postgres):
//   - table completed_jobs, PK id
//   - one archive table per ChildKind, each carrying completed_job_id,
//     original_job_id and org_id next to the mirrored live columns
//
// CustomerNameSnapshot is frozen at completion time and never refreshed.
type CompletedJob struct {
	ID                   string     `json:"id"`
	OrgID                string     `json:"org_id"`
	OriginalJobID        string     `json:"original_job_id"`
	CustomerID           string     `json:"customer_id"`
	CustomerNameSnapshot string     `json:"customer_name_snapshot"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	JobType              string     `json:"job_type"`
	Notes                string     `json:"notes"`
	ScheduledAt          *time.Time `json:"scheduled_at,omitempty"`
	CompletedAt          time.Time  `json:"completed_at"`
	CompletedBy          string     `json:"completed_by"`
	OriginalCreatedBy    string     `json:"original_created_by"`
	OriginalCreatedAt    time.Time  `json:"original_created_at"`
}

// ArchiveKeys links an archived child row to its CompletedJob and back to the
// identifiers it had while live.
type ArchiveKeys struct {
	CompletedJobID string `json:"completed_job_id"`
	OriginalJobID  string `json:"original_job_id"`
	OrgID          string `json:"org_id"`
}

type ArchivedNote struct {
	ArchiveKeys
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type ArchivedCharge struct {
	ArchiveKeys
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}

type ArchivedHour struct {
	ArchiveKeys
	ID          string    `json:"id"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ArchivedPart struct {
	ArchiveKeys
	ID        string    `json:"id"`
	PartName  string    `json:"part_name"`
	Quantity  float64   `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// ArchivedPhoto carries metadata only. StorageKey addresses the same blob the
// live row pointed at.
type ArchivedPhoto struct {
	ArchiveKeys
	ID         string    `json:"id"`
	StorageKey string    `json:"storage_key"`
	CreatedAt  time.Time `json:"created_at"`
}

type ArchivedEquipmentLink struct {
	ArchiveKeys
	ID                    string    `json:"id"`
	EquipmentID           string    `json:"equipment_id"`
	EquipmentNameSnapshot string    `json:"equipment_name_snapshot"`
	CreatedAt             time.Time `json:"created_at"`
}

// CompletedJobAggregate is a CompletedJob with every archived child row.
type CompletedJobAggregate struct {
	CompletedJob CompletedJob            `json:"completed_job"`
	Notes        []ArchivedNote          `json:"notes"`
	Charges      []ArchivedCharge        `json:"charges"`
	Hours        []ArchivedHour          `json:"hours"`
	Parts        []ArchivedPart          `json:"parts"`
	Photos       []ArchivedPhoto         `json:"photos"`
	Equipment    []ArchivedEquipmentLink `json:"equipment"`
}

// CompletionResult is returned once a job has been archived.
type CompletionResult struct {
	CompletedJobID string
	CompletedAt    time.Time
	Migrated       map[ChildKind]int
	FollowUpJobIDs []string
}
