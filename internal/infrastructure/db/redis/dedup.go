package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// ActivityDedup provides idempotency checks for the activity audit trail.
// Key format: activity:<actor_id>:<action>:<unix_timestamp>
type ActivityDedup struct {
	client *redis.Client
}

// NewActivityDedup creates an ActivityDedup wrapping the given Redis client.
func NewActivityDedup(client *redis.Client) *ActivityDedup {
	return &ActivityDedup{client: client}
}

// IsDuplicate reports whether this exact action has already been recorded.
func (d *ActivityDedup) IsDuplicate(ctx context.Context, actorID, action string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(actorID, action, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this action has been processed (expires after dedupTTL).
func (d *ActivityDedup) Mark(ctx context.Context, actorID, action string, ts time.Time) error {
	return d.client.Set(ctx, d.key(actorID, action, ts), "1", dedupTTL).Err()
}

func (d *ActivityDedup) key(actorID, action string, ts time.Time) string {
	return fmt.Sprintf("activity:%s:%s:%d", actorID, action, ts.Unix())
}
