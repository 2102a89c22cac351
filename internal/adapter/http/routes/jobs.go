package routes

import (
	"fieldops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs          = "/jobs"
	PathCompletedJobs = "/completed-jobs"
)

func addJobRoutes(rg *gin.RouterGroup, completionHandler *handlers.JobCompletionHandler, completedJobHandler *handlers.CompletedJobHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("/:job_id/complete", completionHandler.CompleteJob)
	}

	completed := rg.Group(PathCompletedJobs)
	{
		completed.GET("", completedJobHandler.ListCompletedJobs)
		completed.GET("/:completed_job_id", completedJobHandler.GetCompletedJob)
		completed.POST("/:completed_job_id/invoice", completedJobHandler.ConvertToInvoice)
	}
}
