package response

import (
	"fieldops/internal/domain/entities"
	"time"
)

type CompletedJobResponse struct {
	ID                   string     `json:"id"`
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

type NoteResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type ChargeResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}

type HourResponse struct {
	ID          string    `json:"id"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type PartResponse struct {
	ID        string    `json:"id"`
	PartName  string    `json:"part_name"`
	Quantity  float64   `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

type PhotoResponse struct {
	ID         string    `json:"id"`
	StorageKey string    `json:"storage_key"`
	CreatedAt  time.Time `json:"created_at"`
}

type EquipmentLinkResponse struct {
	ID                    string    `json:"id"`
	EquipmentID           string    `json:"equipment_id"`
	EquipmentNameSnapshot string    `json:"equipment_name_snapshot"`
	CreatedAt             time.Time `json:"created_at"`
}

type CompletedJobDetailResponse struct {
	CompletedJob CompletedJobResponse    `json:"completed_job"`
	Notes        []NoteResponse          `json:"notes"`
	Charges      []ChargeResponse        `json:"charges"`
	Hours        []HourResponse          `json:"hours"`
	Parts        []PartResponse          `json:"parts"`
	Photos       []PhotoResponse         `json:"photos"`
	Equipment    []EquipmentLinkResponse `json:"equipment"`
}

func FromCompletedJob(cj entities.CompletedJob) CompletedJobResponse {
	return CompletedJobResponse{
		ID:                   cj.ID,
		OriginalJobID:        cj.OriginalJobID,
		CustomerID:           cj.CustomerID,
		CustomerNameSnapshot: cj.CustomerNameSnapshot,
		Title:                cj.Title,
		Description:          cj.Description,
		JobType:              cj.JobType,
		Notes:                cj.Notes,
		ScheduledAt:          cj.ScheduledAt,
		CompletedAt:          cj.CompletedAt,
		CompletedBy:          cj.CompletedBy,
		OriginalCreatedBy:    cj.OriginalCreatedBy,
		OriginalCreatedAt:    cj.OriginalCreatedAt,
	}
}

func FromCompletedJobs(list []entities.CompletedJob) []CompletedJobResponse {
	out := make([]CompletedJobResponse, 0, len(list))
	for _, cj := range list {
		out = append(out, FromCompletedJob(cj))
	}
	return out
}

// FromCompletedJobAggregate always renders empty child lists as [].
func FromCompletedJobAggregate(agg entities.CompletedJobAggregate) CompletedJobDetailResponse {
	res := CompletedJobDetailResponse{
		CompletedJob: FromCompletedJob(agg.CompletedJob),
		Notes:        make([]NoteResponse, 0, len(agg.Notes)),
		Charges:      make([]ChargeResponse, 0, len(agg.Charges)),
		Hours:        make([]HourResponse, 0, len(agg.Hours)),
		Parts:        make([]PartResponse, 0, len(agg.Parts)),
		Photos:       make([]PhotoResponse, 0, len(agg.Photos)),
		Equipment:    make([]EquipmentLinkResponse, 0, len(agg.Equipment)),
	}
	for _, n := range agg.Notes {
		res.Notes = append(res.Notes, NoteResponse{ID: n.ID, Text: n.Text, CreatedAt: n.CreatedAt})
	}
	for _, c := range agg.Charges {
		res.Charges = append(res.Charges, ChargeResponse{
			ID:          c.ID,
			Kind:        c.Kind,
			Description: c.Description,
			Quantity:    c.Quantity,
			UnitPrice:   c.UnitPrice,
			Total:       c.Total,
			CreatedAt:   c.CreatedAt,
		})
	}
	for _, h := range agg.Hours {
		res.Hours = append(res.Hours, HourResponse{ID: h.ID, Hours: h.Hours, Description: h.Description, CreatedAt: h.CreatedAt})
	}
	for _, p := range agg.Parts {
		res.Parts = append(res.Parts, PartResponse{ID: p.ID, PartName: p.PartName, Quantity: p.Quantity, CreatedAt: p.CreatedAt})
	}
	for _, p := range agg.Photos {
		res.Photos = append(res.Photos, PhotoResponse{ID: p.ID, StorageKey: p.StorageKey, CreatedAt: p.CreatedAt})
	}
	for _, e := range agg.Equipment {
		res.Equipment = append(res.Equipment, EquipmentLinkResponse{
			ID:                    e.ID,
			EquipmentID:           e.EquipmentID,
			EquipmentNameSnapshot: e.EquipmentNameSnapshot,
			CreatedAt:             e.CreatedAt,
		})
	}
	return res
}
