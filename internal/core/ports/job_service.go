package ports

import (
	"context"
	"time"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

// CreateJobInput carries all data needed to publish a posting.
type CreateJobInput struct {
	Title        string
	Company      string
	Department   string
	Location     string
	Type         string
	SalaryMin    int64
	SalaryMax    int64
	Currency     string
	Description  string
	Requirements []string
	Skills       []string
	Deadline     time.Time
	Draft        bool
	EmployerID   string
}

// ListJobsInput carries all parameters for the job listing endpoint.
type ListJobsInput struct {
	Status     string
	Type       string
	EmployerID string
	Search     string
	Page       int
	Limit      int
}

// ListJobsResult is returned by ListJobs.
type ListJobsResult struct {
	Items      []*domain.Job
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// JobService defines use-case operations for job postings.
type JobService interface {
	CreateJob(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	ListJobs(ctx context.Context, input ListJobsInput) (*ListJobsResult, error)
}
