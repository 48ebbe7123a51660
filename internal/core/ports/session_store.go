package ports

import (
	"context"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

// SessionStore persists at most one identity record across process restarts.
// Load treats a malformed stored record as absent and clears the slot so the
// corruption does not recur on the next startup; it never surfaces parse
// failures to the caller.
type SessionStore interface {
	Save(ctx context.Context, identity *domain.Identity) error
	Load(ctx context.Context) (*domain.Identity, error)
	Clear(ctx context.Context) error
}
