package handlers

import (
	"errors"
	"net/http"

	"fieldops/internal/adapter/http/middleware"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingIdentity = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidCompletedJobID),
		errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidActor):
		return errMissingIdentity
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCompletedJobNotFound):
		return pkg.NewDomainErrorSimple("COMPLETED_JOB_NOT_FOUND", "Completed job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrArchiveFailed):
		return pkg.NewDomainError("ARCHIVE_FAILED", "Job could not be completed, retry the request", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requireIdentity writes 401 and returns false when no identity was resolved.
func requireIdentity(c *gin.Context) (entities.Identity, bool) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		writeError(c, errMissingIdentity)
		return entities.Identity{}, false
	}
	return identity, true
}
