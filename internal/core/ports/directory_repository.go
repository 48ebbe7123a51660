package ports

import (
	"context"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

// DirectoryRepository is the user directory backing the admin views. It is a
// read-mostly catalogue; nothing in the session core depends on it.
type DirectoryRepository interface {
	Upsert(ctx context.Context, identity *domain.Identity) error
	List(ctx context.Context, role domain.Role) ([]*domain.Identity, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
