package entities

import (
	"math"
	"time"
)

// InvoiceStatus represents the billing state of an invoice built from an
// archived job.

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
)

type InvoiceLineSource string

const (
	InvoiceLineSourceCharge InvoiceLineSource = "charge"
	InvoiceLineSourceHours  InvoiceLineSource = "hours"
	InvoiceLineSourcePart   InvoiceLineSource = "part"
)

// Invoice is persisted by the invoice store (DynamoDB).
//
// Storage model (DynamoDB):
//   - PK: job_key = "<org_id>#<original_job_id>"
//
// Keying by the original job guarantees one invoice per archived job.
type Invoice struct {
	ID             string        `json:"id"`
	OrgID          string        `json:"org_id"`
	OriginalJobID  string        `json:"original_job_id"`
	CompletedJobID string        `json:"completed_job_id"`
	CustomerID     string        `json:"customer_id"`
	CustomerName   string        `json:"customer_name"`
	Status         InvoiceStatus `json:"status"`
	Lines          []InvoiceLine `json:"lines"`
	Total          float64       `json:"total"`
	CreatedBy      string        `json:"created_by"`
	CreatedAt      time.Time     `json:"created_at"`
}

type InvoiceLine struct {
	Source      InvoiceLineSource `json:"source"`
	Description string            `json:"description"`
	Quantity    float64           `json:"quantity"`
	UnitPrice   float64           `json:"unit_price"`
	Total       float64           `json:"total"`
}

// InvoiceJobKey is the idempotency key of an invoice.
func InvoiceJobKey(orgID, originalJobID string) string {
	return orgID + "#" + originalJobID
}

// PricingPreset is an entry of the org's current rate card.
type PricingPreset struct {
	ID        string  `json:"id"`
	OrgID     string  `json:"org_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// LaborPresetName is the fallback preset for hour entries whose description
// has no preset of its own.
const LaborPresetName = "Labor"

// RoundCents rounds v half away from zero to two decimals.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
