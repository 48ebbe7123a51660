package ports

import (
	"context"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

// PlacementRepository defines persistence for confirmed placement records.
type PlacementRepository interface {
	Create(ctx context.Context, record *domain.PlacementRecord) error
	List(ctx context.Context) ([]*domain.PlacementRecord, error)
	Count(ctx context.Context) (int64, error)
}

// ReportService aggregates portal-wide statistics for the dashboards.
type ReportService interface {
	Stats(ctx context.Context) (*domain.SystemStats, error)
	ListPlacements(ctx context.Context) ([]*domain.PlacementRecord, error)
}
