package response

import (
	"fieldops/internal/domain/entities"
	"time"
)

type CompleteJobResponse struct {
	OK             bool      `json:"ok"`
	CompletedJobID string    `json:"completed_job_id"`
	CompletedAt    time.Time `json:"completed_at"`
}

func FromCompletionResult(r entities.CompletionResult) CompleteJobResponse {
	return CompleteJobResponse{
		OK:             true,
		CompletedJobID: r.CompletedJobID,
		CompletedAt:    r.CompletedAt,
	}
}
