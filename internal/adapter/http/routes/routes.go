package routes

import (
	"fieldops/internal/adapter/http/handlers"
	"fieldops/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router serves.
type Handlers struct {
	JobCompletion *handlers.JobCompletionHandler
	CompletedJobs *handlers.CompletedJobHandler
}

// NewRouter builds the gin engine. Every /v1 route except ping requires an
// identity resolved by the auth middleware.
func NewRouter(h Handlers, identity middleware.IdentityConfig) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	secured := v1.Group("")
	secured.Use(middleware.RequireIdentity(identity))
	addJobRoutes(secured, h.JobCompletion, h.CompletedJobs)

	return router
}
