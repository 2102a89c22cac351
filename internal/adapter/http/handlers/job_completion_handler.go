package handlers

import (
	"net/http"

	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
)

// JobCompletionHandler exposes the completion action on a live job.

type JobCompletionHandler struct {
	usecase usecase.IJobCompletionUseCase
}

func NewJobCompletionHandler(uc usecase.IJobCompletionUseCase) *JobCompletionHandler {
	return &JobCompletionHandler{usecase: uc}
}

// CompleteJob archives a live job.
//
//	@Summary	Complete a job
//	@Tags		jobs
//	@Produce	json
//	@Param		job_id	path		string	true	"Job ID"
//	@Success	200		{object}	response.CompleteJobResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	404		{object}	pkg.HTTPError
//	@Failure	500		{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/jobs/{job_id}/complete [post]
func (h *JobCompletionHandler) CompleteJob(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	result, err := h.usecase.CompleteJob(c.Request.Context(), identity, c.Param("job_id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCompletionResult(result))
}
