package ports

import (
	"context"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

// ListApplicationsFilter narrows an application listing query.
type ListApplicationsFilter struct {
	JobID     string
	StudentID string
	Status    string
}

// ApplicationRepository defines persistence for student applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	FindByJobAndStudent(ctx context.Context, jobID, studentID string) (*domain.Application, error)
	Update(ctx context.Context, app *domain.Application) error
	List(ctx context.Context, filter ListApplicationsFilter) ([]*domain.Application, error)
	Count(ctx context.Context) (int64, error)
}
