package ports

import (
	"context"
	"time"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

// ApplyInput carries a new application submission.
type ApplyInput struct {
	JobID       string
	StudentID   string
	Resume      string
	CoverLetter string
}

// UpdateApplicationStatusInput carries a review decision on an application.
type UpdateApplicationStatusInput struct {
	ApplicationID string
	Status        string
	Notes         string
	InterviewDate time.Time
	Feedback      string
}

// ApplicationService defines use-case operations for applications.
type ApplicationService interface {
	Apply(ctx context.Context, input ApplyInput) (*domain.Application, error)
	UpdateStatus(ctx context.Context, input UpdateApplicationStatusInput) (*domain.Application, error)
	ListApplications(ctx context.Context, filter ListApplicationsFilter) ([]*domain.Application, error)
}
