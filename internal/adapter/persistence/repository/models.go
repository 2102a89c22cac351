package repository

import "time"

// Live tables.

type jobModel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	OrgID       string     `gorm:"column:org_id;not null;index"`
	CustomerID  string     `gorm:"column:customer_id;not null"`
	Title       string     `gorm:"column:title;not null"`
	Description string     `gorm:"column:description"`
	JobType     string     `gorm:"column:job_type;not null"`
	Status      string     `gorm:"column:status;not null"`
	ScheduledAt *time.Time `gorm:"column:scheduled_at"`
	Notes       string     `gorm:"column:notes"`
	CreatedBy   string     `gorm:"column:created_by;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"`
}

func (jobModel) TableName() string { return "jobs" }

type customerModel struct {
	ID    string `gorm:"column:id;primaryKey"`
	OrgID string `gorm:"column:org_id;not null;index"`
	Name  string `gorm:"column:name;not null"`
}

func (customerModel) TableName() string { return "customers" }

type equipmentModel struct {
	ID                    string     `gorm:"column:id;primaryKey"`
	OrgID                 string     `gorm:"column:org_id;not null;index"`
	CustomerID            string     `gorm:"column:customer_id"`
	Name                  string     `gorm:"column:name;not null"`
	ServiceIntervalMonths *int       `gorm:"column:service_interval_months"`
	LastServiceDate       *time.Time `gorm:"column:last_service_date"`
	NextServiceDate       *time.Time `gorm:"column:next_service_date"`
}

func (equipmentModel) TableName() string { return "equipment" }

type jobNoteModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	JobID     string    `gorm:"column:job_id;not null;index"`
	OrgID     string    `gorm:"column:org_id;not null"`
	Text      string    `gorm:"column:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (jobNoteModel) TableName() string { return "job_notes" }

type jobChargeModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	JobID       string    `gorm:"column:job_id;not null;index"`
	OrgID       string    `gorm:"column:org_id;not null"`
	Kind        string    `gorm:"column:kind;not null"`
	Description string    `gorm:"column:description"`
	Quantity    float64   `gorm:"column:quantity;not null"`
	UnitPrice   float64   `gorm:"column:unit_price;not null"`
	Total       float64   `gorm:"column:total;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

func (jobChargeModel) TableName() string { return "job_charges" }

type jobHourModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	JobID       string    `gorm:"column:job_id;not null;index"`
	OrgID       string    `gorm:"column:org_id;not null"`
	Hours       float64   `gorm:"column:hours;not null"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

func (jobHourModel) TableName() string { return "job_hours" }

type jobPartModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	JobID     string    `gorm:"column:job_id;not null;index"`
	OrgID     string    `gorm:"column:org_id;not null"`
	PartName  string    `gorm:"column:part_name;not null"`
	Quantity  float64   `gorm:"column:quantity;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (jobPartModel) TableName() string { return "job_parts" }

type jobPhotoModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	JobID      string    `gorm:"column:job_id;not null;index"`
	OrgID      string    `gorm:"column:org_id;not null"`
	StorageKey string    `gorm:"column:storage_key;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

func (jobPhotoModel) TableName() string { return "job_photos" }

type jobEquipmentModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	JobID       string    `gorm:"column:job_id;not null;uniqueIndex:ux_job_equipment"`
	OrgID       string    `gorm:"column:org_id;not null"`
	EquipmentID string    `gorm:"column:equipment_id;not null;uniqueIndex:ux_job_equipment"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

func (jobEquipmentModel) TableName() string { return "job_equipment" }

// jobEquipmentNamedRow is a job_equipment row joined with the equipment's
// current name.
type jobEquipmentNamedRow struct {
	ID            string
	JobID         string
	OrgID         string
	EquipmentID   string
	EquipmentName string
	CreatedAt     time.Time
}

type pricingPresetModel struct {
	ID        string  `gorm:"column:id;primaryKey"`
	OrgID     string  `gorm:"column:org_id;not null;index"`
	Name      string  `gorm:"column:name;not null"`
	UnitPrice float64 `gorm:"column:unit_price;not null"`
}

func (pricingPresetModel) TableName() string { return "pricing_presets" }

// Archive tables. Each mirrors its live counterpart and adds the linking
// columns.

// ArchiveColumns is exported so gorm picks it up as an embedded struct.
type ArchiveColumns struct {
	CompletedJobID string `gorm:"column:completed_job_id;not null;index"`
	OriginalJobID  string `gorm:"column:original_job_id;not null;index"`
	OrgID          string `gorm:"column:org_id;not null"`
}

type completedJobModel struct {
	ID                   string     `gorm:"column:id;primaryKey"`
	OrgID                string     `gorm:"column:org_id;not null;uniqueIndex:ux_completed_jobs_original"`
	OriginalJobID        string     `gorm:"column:original_job_id;not null;uniqueIndex:ux_completed_jobs_original"`
	CustomerID           string     `gorm:"column:customer_id;not null;index"`
	CustomerNameSnapshot string     `gorm:"column:customer_name_snapshot;not null"`
	Title                string     `gorm:"column:title;not null"`
	Description          string     `gorm:"column:description"`
	JobType              string     `gorm:"column:job_type;not null"`
	Notes                string     `gorm:"column:notes"`
	ScheduledAt          *time.Time `gorm:"column:scheduled_at"`
	CompletedAt          time.Time  `gorm:"column:completed_at;not null"`
	CompletedBy          string     `gorm:"column:completed_by;not null"`
	OriginalCreatedBy    string     `gorm:"column:original_created_by;not null"`
	OriginalCreatedAt    time.Time  `gorm:"column:original_created_at;not null"`
}

func (completedJobModel) TableName() string { return "completed_jobs" }

type completedJobNoteModel struct {
	ID string `gorm:"column:id;primaryKey"`
	ArchiveColumns
	Text      string    `gorm:"column:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (completedJobNoteModel) TableName() string { return "completed_job_notes" }

type completedJobChargeModel struct {
	ID string `gorm:"column:id;primaryKey"`
	ArchiveColumns
	Kind        string    `gorm:"column:kind;not null"`
	Description string    `gorm:"column:description"`
	Quantity    float64   `gorm:"column:quantity;not null"`
	UnitPrice   float64   `gorm:"column:unit_price;not null"`
	Total       float64   `gorm:"column:total;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

func (completedJobChargeModel) TableName() string { return "completed_job_charges" }

type completedJobHourModel struct {
	ID string `gorm:"column:id;primaryKey"`
	ArchiveColumns
	Hours       float64   `gorm:"column:hours;not null"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

func (completedJobHourModel) TableName() string { return "completed_job_hours" }

type completedJobPartModel struct {
	ID string `gorm:"column:id;primaryKey"`
	ArchiveColumns
	PartName  string    `gorm:"column:part_name;not null"`
	Quantity  float64   `gorm:"column:quantity;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (completedJobPartModel) TableName() string { return "completed_job_parts" }

type completedJobPhotoModel struct {
	ID string `gorm:"column:id;primaryKey"`
	ArchiveColumns
	StorageKey string    `gorm:"column:storage_key;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

func (completedJobPhotoModel) TableName() string { return "completed_job_photos" }

type completedJobEquipmentModel struct {
	ID string `gorm:"column:id;primaryKey"`
	ArchiveColumns
	EquipmentID           string    `gorm:"column:equipment_id;not null"`
	EquipmentNameSnapshot string    `gorm:"column:equipment_name_snapshot;not null"`
	CreatedAt             time.Time `gorm:"column:created_at;not null"`
}

func (completedJobEquipmentModel) TableName() string { return "completed_job_equipment" }

// liveChildTables lists the live child tables cleared when a job is archived.
var liveChildTables = []string{
	jobNoteModel{}.TableName(),
	jobChargeModel{}.TableName(),
	jobHourModel{}.TableName(),
	jobPartModel{}.TableName(),
	jobPhotoModel{}.TableName(),
	jobEquipmentModel{}.TableName(),
}
