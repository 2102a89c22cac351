package response

import (
	"fieldops/internal/domain/entities"
	"time"
)

type InvoiceLineResponse struct {
	Source      string  `json:"source"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type InvoiceResponse struct {
	OK             bool                  `json:"ok"`
	InvoiceID      string                `json:"invoice_id"`
	OriginalJobID  string                `json:"original_job_id"`
	CompletedJobID string                `json:"completed_job_id"`
	CustomerID     string                `json:"customer_id"`
	CustomerName   string                `json:"customer_name"`
	Status         string                `json:"status"`
	Lines          []InvoiceLineResponse `json:"lines"`
	Total          float64               `json:"total"`
	Created        bool                  `json:"created"`
	CreatedAt      time.Time             `json:"created_at"`
}

func FromInvoice(inv entities.Invoice, created bool) InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, InvoiceLineResponse{
			Source:      string(l.Source),
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Total:       l.Total,
		})
	}
	return InvoiceResponse{
		OK:             true,
		InvoiceID:      inv.ID,
		OriginalJobID:  inv.OriginalJobID,
		CompletedJobID: inv.CompletedJobID,
		CustomerID:     inv.CustomerID,
		CustomerName:   inv.CustomerName,
		Status:         string(inv.Status),
		Lines:          lines,
		Total:          inv.Total,
		Created:        created,
		CreatedAt:      inv.CreatedAt,
	}
}
