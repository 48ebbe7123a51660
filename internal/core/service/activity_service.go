package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

// ActivityDeduper abstracts the idempotency store (Redis) guarding the audit
// trail against double-submitted actions.
type ActivityDeduper interface {
	IsDuplicate(ctx context.Context, actorID, action string, ts time.Time) (bool, error)
	Mark(ctx context.Context, actorID, action string, ts time.Time) error
}

type activityService struct {
	repo  ports.ActivityRepository
	dedup ActivityDeduper
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, dedup ActivityDeduper, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log}
}

// Record deduplicates and persists a single activity event.
func (s *activityService) Record(ctx context.Context, event domain.ActivityEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	isDup, err := s.dedup.IsDuplicate(ctx, event.ActorID, string(event.Action), event.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("actor", event.ActorID).Msg("dedup check failed, recording anyway")
	} else if isDup {
		s.log.Debug().Str("actor", event.ActorID).Str("action", string(event.Action)).Msg("duplicate activity skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, event.ActorID, string(event.Action), event.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("actor", event.ActorID).Msg("failed to set dedup key")
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("actor", event.ActorID).
		Str("action", string(event.Action)).
		Str("view", event.View).
		Msg("activity recorded")

	return nil
}
