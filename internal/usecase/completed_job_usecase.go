package usecase

import (
	"context"
	"errors"
	"strings"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCompletedJobNotFound  = errors.New("completed job not found")
	ErrInvalidCompletedJobID = errors.New("invalid completed job id")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
)

// ICompletedJobUseCase exposes read access to the archive.
type ICompletedJobUseCase interface {
	GetByID(ctx context.Context, identity entities.Identity, completedJobID string) (entities.CompletedJobAggregate, error)
	List(ctx context.Context, identity entities.Identity, customerID string) ([]entities.CompletedJob, error)
}

type CompletedJobUseCase struct {
	repo interfaces.ICompletedJobRepository
}

var _ ICompletedJobUseCase = (*CompletedJobUseCase)(nil)

func NewCompletedJobUseCase(repo interfaces.ICompletedJobRepository) *CompletedJobUseCase {
	return &CompletedJobUseCase{repo: repo}
}

func (u *CompletedJobUseCase) GetByID(ctx context.Context, identity entities.Identity, completedJobID string) (entities.CompletedJobAggregate, error) {
	completedJobID = strings.TrimSpace(completedJobID)
	if _, err := uuid.Parse(completedJobID); err != nil {
		return entities.CompletedJobAggregate{}, ErrInvalidCompletedJobID
	}
	if !identity.Valid() {
		return entities.CompletedJobAggregate{}, ErrInvalidActor
	}

	agg, err := u.repo.GetAggregate(ctx, identity.OrgID, completedJobID)
	if err != nil {
		return entities.CompletedJobAggregate{}, err
	}
	if agg.CompletedJob.ID == "" {
		return entities.CompletedJobAggregate{}, ErrCompletedJobNotFound
	}
	return agg, nil
}

func (u *CompletedJobUseCase) List(ctx context.Context, identity entities.Identity, customerID string) ([]entities.CompletedJob, error) {
	if !identity.Valid() {
		return nil, ErrInvalidActor
	}
	customerID = strings.TrimSpace(customerID)
	if customerID != "" {
		if _, err := uuid.Parse(customerID); err != nil {
			return nil, ErrInvalidCustomerID
		}
	}
	return u.repo.ListByOrg(ctx, identity.OrgID, customerID)
}
