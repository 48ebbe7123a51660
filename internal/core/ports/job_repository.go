package ports

import (
	"context"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

// ListJobsFilter narrows a job listing query. Zero values mean "no filter".
type ListJobsFilter struct {
	Status     string
	Type       string
	EmployerID string
	Search     string // matched against title and company, case-insensitive
	Page       int
	Limit      int
}

// JobRepository defines persistence for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, int64, error)
	IncrementApplications(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
