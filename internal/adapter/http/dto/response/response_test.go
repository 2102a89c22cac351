package response

import (
	"testing"
	"time"

	"fieldops/internal/domain/entities"
)

func TestFromCompletionResult(t *testing.T) {
	now := time.Now().UTC()
	res := FromCompletionResult(entities.CompletionResult{CompletedJobID: "cj-1", CompletedAt: now})
	if !res.OK || res.CompletedJobID != "cj-1" || !res.CompletedAt.Equal(now) {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromCompletedJobAggregate(t *testing.T) {
	now := time.Now().UTC()
	agg := entities.CompletedJobAggregate{
		CompletedJob: entities.CompletedJob{ID: "cj-1", OriginalJobID: "job-1", CustomerNameSnapshot: "ACME", CompletedAt: now},
		Equipment: []entities.ArchivedEquipmentLink{
			{ID: "l-1", EquipmentID: "eq-1", EquipmentNameSnapshot: "Boiler", CreatedAt: now},
		},
	}

	res := FromCompletedJobAggregate(agg)
	if res.CompletedJob.ID != "cj-1" || res.CompletedJob.OriginalJobID != "job-1" || res.CompletedJob.CustomerNameSnapshot != "ACME" {
		t.Fatalf("unexpected header: %+v", res.CompletedJob)
	}
	if res.Notes == nil || len(res.Notes) != 0 || res.Photos == nil {
		t.Fatalf("expected empty, non-nil child lists")
	}
	if len(res.Equipment) != 1 || res.Equipment[0].EquipmentNameSnapshot != "Boiler" {
		t.Fatalf("unexpected equipment: %+v", res.Equipment)
	}
}

func TestFromInvoice(t *testing.T) {
	inv := entities.Invoice{
		ID:     "inv-1",
		Status: entities.InvoiceStatusDraft,
		Lines:  []entities.InvoiceLine{{Source: entities.InvoiceLineSourcePart, Description: "Filter", Quantity: 2, UnitPrice: 5, Total: 10}},
		Total:  10,
	}
	res := FromInvoice(inv, false)
	if !res.OK || res.InvoiceID != "inv-1" || res.Created || res.Status != "draft" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if len(res.Lines) != 1 || res.Lines[0].Source != "part" || res.Lines[0].Total != 10 {
		t.Fatalf("unexpected lines: %+v", res.Lines)
	}
}
