package ports

import (
	"context"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

// ActivityRepository defines persistence for the activity audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
}

// ActivityService records session and navigation actions. Recording is
// best-effort: failures are logged, never propagated to the acting request.
type ActivityService interface {
	Record(ctx context.Context, event domain.ActivityEvent) error
}
