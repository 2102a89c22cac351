package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IInvoiceConversionUseCase turns an archived job into an invoice.
//
// Conversion is idempotent per (org_id, original_job_id): a second request
// returns the invoice created by the first. Prices come from the org's
// current rate card, not from the values recorded while the job was live.
type IInvoiceConversionUseCase interface {
	ConvertToInvoice(ctx context.Context, identity entities.Identity, completedJobID string) (inv entities.Invoice, created bool, err error)
}

type InvoiceConversionUseCase struct {
	completedJobs interfaces.ICompletedJobRepository
	presets       interfaces.IPricingPresetRepository
	invoices      interfaces.IInvoiceRepository
	now           func() time.Time
	newID         func() string
	logger        *slog.Logger
}

var _ IInvoiceConversionUseCase = (*InvoiceConversionUseCase)(nil)

func NewInvoiceConversionUseCase(
	completedJobs interfaces.ICompletedJobRepository,
	presets interfaces.IPricingPresetRepository,
	invoices interfaces.IInvoiceRepository,
) *InvoiceConversionUseCase {
	return &InvoiceConversionUseCase{
		completedJobs: completedJobs,
		presets:       presets,
		invoices:      invoices,
		now:           func() time.Time { return time.Now().UTC() },
		newID:         uuid.NewString,
		logger:        slog.Default().With("module", "usecase", "component", "invoice_conversion"),
	}
}

func (u *InvoiceConversionUseCase) ConvertToInvoice(ctx context.Context, identity entities.Identity, completedJobID string) (entities.Invoice, bool, error) {
	completedJobID = strings.TrimSpace(completedJobID)
	if _, err := uuid.Parse(completedJobID); err != nil {
		return entities.Invoice{}, false, ErrInvalidCompletedJobID
	}
	if !identity.Valid() {
		return entities.Invoice{}, false, ErrInvalidActor
	}

	agg, err := u.completedJobs.GetAggregate(ctx, identity.OrgID, completedJobID)
	if err != nil {
		return entities.Invoice{}, false, err
	}
	if agg.CompletedJob.ID == "" {
		return entities.Invoice{}, false, ErrCompletedJobNotFound
	}

	existing, err := u.invoices.GetByOriginalJob(ctx, identity.OrgID, agg.CompletedJob.OriginalJobID)
	if err != nil {
		return entities.Invoice{}, false, err
	}
	if existing.ID != "" {
		return existing, false, nil
	}

	presets, err := u.presets.ListByOrg(ctx, identity.OrgID)
	if err != nil {
		return entities.Invoice{}, false, fmt.Errorf("list pricing presets: %w", err)
	}

	inv := entities.Invoice{
		ID:             u.newID(),
		OrgID:          identity.OrgID,
		OriginalJobID:  agg.CompletedJob.OriginalJobID,
		CompletedJobID: agg.CompletedJob.ID,
		CustomerID:     agg.CompletedJob.CustomerID,
		CustomerName:   agg.CompletedJob.CustomerNameSnapshot,
		Status:         entities.InvoiceStatusDraft,
		Lines:          buildInvoiceLines(agg, newRateCard(presets)),
		CreatedBy:      identity.ActorID,
		CreatedAt:      u.now(),
	}
	for _, l := range inv.Lines {
		inv.Total += l.Total
	}
	inv.Total = entities.RoundCents(inv.Total)

	stored, created, err := u.invoices.CreateIfAbsent(ctx, inv)
	if err != nil {
		return entities.Invoice{}, false, err
	}
	u.logger.InfoContext(ctx, "invoice conversion",
		"operation", "convert_to_invoice",
		"outcome", "success",
		"completed_job_id", agg.CompletedJob.ID,
		"invoice_id", stored.ID,
		"created", created,
	)
	return stored, created, nil
}

type rateCard map[string]float64

func newRateCard(presets []entities.PricingPreset) rateCard {
	rc := make(rateCard, len(presets))
	for _, p := range presets {
		rc[normalizePresetName(p.Name)] = p.UnitPrice
	}
	return rc
}

func (rc rateCard) lookup(name string) (float64, bool) {
	v, ok := rc[normalizePresetName(name)]
	return v, ok
}

func normalizePresetName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func buildInvoiceLines(agg entities.CompletedJobAggregate, rc rateCard) []entities.InvoiceLine {
	lines := make([]entities.InvoiceLine, 0, len(agg.Charges)+len(agg.Hours)+len(agg.Parts))

	for _, c := range agg.Charges {
		price, ok := rc.lookup(c.Description)
		if !ok {
			price = c.UnitPrice
		}
		lines = append(lines, newInvoiceLine(entities.InvoiceLineSourceCharge, c.Description, c.Quantity, price))
	}

	for _, h := range agg.Hours {
		price, ok := rc.lookup(h.Description)
		if !ok {
			price, _ = rc.lookup(entities.LaborPresetName)
		}
		desc := h.Description
		if strings.TrimSpace(desc) == "" {
			desc = entities.LaborPresetName
		}
		lines = append(lines, newInvoiceLine(entities.InvoiceLineSourceHours, desc, h.Hours, price))
	}

	for _, p := range agg.Parts {
		price, _ := rc.lookup(p.PartName)
		lines = append(lines, newInvoiceLine(entities.InvoiceLineSourcePart, p.PartName, p.Quantity, price))
	}
	return lines
}

func newInvoiceLine(source entities.InvoiceLineSource, desc string, qty, unitPrice float64) entities.InvoiceLine {
	return entities.InvoiceLine{
		Source:      source,
		Description: desc,
		Quantity:    qty,
		UnitPrice:   unitPrice,
		Total:       entities.RoundCents(qty * unitPrice),
	}
}
