package handlers

import (
	"net/http"

	request "fieldops/internal/adapter/http/dto/request"
	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

// CompletedJobHandler serves the archive and its conversion to invoices.

type CompletedJobHandler struct {
	completedJobs usecase.ICompletedJobUseCase
	invoices      usecase.IInvoiceConversionUseCase
}

func NewCompletedJobHandler(completedJobs usecase.ICompletedJobUseCase, invoices usecase.IInvoiceConversionUseCase) *CompletedJobHandler {
	return &CompletedJobHandler{completedJobs: completedJobs, invoices: invoices}
}

// GetCompletedJob returns an archived job with every child record.
//
//	@Summary	Get a completed job
//	@Tags		completed-jobs
//	@Produce	json
//	@Param		completed_job_id	path		string	true	"Completed job ID"
//	@Success	200					{object}	response.CompletedJobDetailResponse
//	@Failure	400					{object}	pkg.HTTPError
//	@Failure	404					{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/completed-jobs/{completed_job_id} [get]
func (h *CompletedJobHandler) GetCompletedJob(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	agg, err := h.completedJobs.GetByID(c.Request.Context(), identity, c.Param("completed_job_id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCompletedJobAggregate(agg))
}

// ListCompletedJobs lists the org's archive, newest first.
//
//	@Summary	List completed jobs
//	@Tags		completed-jobs
//	@Produce	json
//	@Param		customer_id	query		string	false	"Customer ID"
//	@Success	200			{array}		response.CompletedJobResponse
//	@Failure	400			{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/completed-jobs [get]
func (h *CompletedJobHandler) ListCompletedJobs(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var q request.ListCompletedJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	list, err := h.completedJobs.List(c.Request.Context(), identity, q.ResolveCustomerID())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCompletedJobs(list))
}

// ConvertToInvoice creates the invoice of an archived job, or returns the
// existing one.
//
//	@Summary	Convert a completed job to an invoice
//	@Tags		completed-jobs
//	@Produce	json
//	@Param		completed_job_id	path		string	true	"Completed job ID"
//	@Success	200					{object}	response.InvoiceResponse
//	@Success	201					{object}	response.InvoiceResponse
//	@Failure	400					{object}	pkg.HTTPError
//	@Failure	404					{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/completed-jobs/{completed_job_id}/invoice [post]
func (h *CompletedJobHandler) ConvertToInvoice(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	inv, created, err := h.invoices.ConvertToInvoice(c.Request.Context(), identity, c.Param("completed_job_id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromInvoice(inv, created))
}
