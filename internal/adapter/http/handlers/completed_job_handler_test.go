package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldops/internal/adapter/http/handlers/mocks"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type completedJobMocks struct {
	reads    *mocks.MockICompletedJobUseCase
	invoices *mocks.MockIInvoiceConversionUseCase
	router   *gin.Engine
}

func newCompletedJobRouter(t *testing.T) completedJobMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := completedJobMocks{
		reads:    mocks.NewMockICompletedJobUseCase(ctrl),
		invoices: mocks.NewMockIInvoiceConversionUseCase(ctrl),
	}
	h := NewCompletedJobHandler(m.reads, m.invoices)

	r := gin.New()
	r.Use(withIdentity(testIdentity))
	r.GET("/v1/completed-jobs", h.ListCompletedJobs)
	r.GET("/v1/completed-jobs/:completed_job_id", h.GetCompletedJob)
	r.POST("/v1/completed-jobs/:completed_job_id/invoice", h.ConvertToInvoice)
	m.router = r
	return m
}

func TestCompletedJobHandler_GetCompletedJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		m := newCompletedJobRouter(t)
		m.reads.EXPECT().GetByID(gomock.Any(), testIdentity, "cj-1").Return(entities.CompletedJobAggregate{}, usecase.ErrCompletedJobNotFound)

		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/completed-jobs/cj-1", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "COMPLETED_JOB_NOT_FOUND" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success renders empty child lists", func(t *testing.T) {
		m := newCompletedJobRouter(t)
		m.reads.EXPECT().GetByID(gomock.Any(), testIdentity, "cj-1").Return(entities.CompletedJobAggregate{
			CompletedJob: entities.CompletedJob{ID: "cj-1", Notes: "legacy note", CustomerNameSnapshot: "Acme"},
			Parts:        []entities.ArchivedPart{{ID: "p-1", PartName: "Filter", Quantity: 2}},
		}, nil)

		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/completed-jobs/cj-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		job, ok := body["completed_job"].(map[string]any)
		if !ok || job["id"] != "cj-1" || job["notes"] != "legacy note" {
			t.Fatalf("unexpected completed_job: %v", body["completed_job"])
		}
		if notes, ok := body["notes"].([]any); !ok || len(notes) != 0 {
			t.Fatalf("expected empty notes list, got %v", body["notes"])
		}
		if parts, ok := body["parts"].([]any); !ok || len(parts) != 1 {
			t.Fatalf("expected one part, got %v", body["parts"])
		}
	})
}

func TestCompletedJobHandler_ListCompletedJobs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid customer id", func(t *testing.T) {
		m := newCompletedJobRouter(t)
		m.reads.EXPECT().List(gomock.Any(), testIdentity, "nope").Return(nil, usecase.ErrInvalidCustomerID)

		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/completed-jobs?customer_id=nope", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		m := newCompletedJobRouter(t)
		m.reads.EXPECT().List(gomock.Any(), testIdentity, "").Return([]entities.CompletedJob{{ID: "a"}, {ID: "b"}}, nil)

		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/completed-jobs", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String()[0] != '[' {
			t.Fatalf("expected json array, got %s", w.Body.String())
		}
	})
}

func TestCompletedJobHandler_ConvertToInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		m := newCompletedJobRouter(t)
		m.invoices.EXPECT().ConvertToInvoice(gomock.Any(), testIdentity, "cj-1").Return(entities.Invoice{ID: "inv-1", Total: 12.5}, true, nil)

		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/completed-jobs/cj-1/invoice", nil))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["invoice_id"] != "inv-1" || body["created"] != true || body["total"] != 12.5 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("existing", func(t *testing.T) {
		m := newCompletedJobRouter(t)
		m.invoices.EXPECT().ConvertToInvoice(gomock.Any(), testIdentity, "cj-1").Return(entities.Invoice{ID: "inv-1"}, false, nil)

		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/completed-jobs/cj-1/invoice", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["created"] != false {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("store error", func(t *testing.T) {
		m := newCompletedJobRouter(t)
		m.invoices.EXPECT().ConvertToInvoice(gomock.Any(), testIdentity, "cj-1").Return(entities.Invoice{}, false, errors.New("dynamo"))

		w := httptest.NewRecorder()
		m.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/completed-jobs/cj-1/invoice", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
