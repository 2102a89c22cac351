package interfaces

import (
	"context"

	"fieldops/internal/domain/entities"
)

//go:generate mockgen -source=invoice_repository_interface.go -destination=mocks/invoice_repository_mock.go -package=mock_interfaces

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// The store guarantees at most one invoice per (org_id, original_job_id).
type IInvoiceRepository interface {
	// GetByOriginalJob returns a zero Invoice.ID when no invoice exists.
	GetByOriginalJob(ctx context.Context, orgID, originalJobID string) (entities.Invoice, error)
	// CreateIfAbsent stores inv unless an invoice already exists for its
	// original job, in which case the stored one is returned with created=false.
	CreateIfAbsent(ctx context.Context, inv entities.Invoice) (stored entities.Invoice, created bool, err error)
}

// IPricingPresetRepository reads the org's current rate card.
type IPricingPresetRepository interface {
	ListByOrg(ctx context.Context, orgID string) ([]entities.PricingPreset, error)
}
