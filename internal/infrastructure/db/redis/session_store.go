package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

// sessionKey is the single fixed slot holding the persisted identity.
const sessionKey = "placement_portal_auth"

// SessionStore persists at most one identity record in Redis. A malformed
// record is fail-open: Load reports it as absent and deletes the slot so the
// corruption does not recur on the next startup.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// sessionRecord is the flat wire layout of the persisted slot. CreatedAt is
// encoded as a sortable RFC 3339 string rather than a binary timestamp.
type sessionRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	Company    string `json:"company,omitempty"`
	Phone      string `json:"phone,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

// Save serializes the identity into the slot, overwriting whatever was there.
func (s *SessionStore) Save(ctx context.Context, identity *domain.Identity) error {
	rec := sessionRecord{
		ID:         identity.ID,
		Name:       identity.Name,
		Email:      identity.Email,
		Role:       string(identity.Role),
		Department: identity.Department,
		Company:    identity.Company,
		Phone:      identity.Phone,
		CreatedAt:  identity.CreatedAt.UTC().Format(time.RFC3339Nano),
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load deserializes the slot. An empty slot yields (nil, nil). A record that
// cannot be decoded, or that decodes into a structurally invalid identity, is
// deleted and also yields (nil, nil) — corruption never reaches the caller.
func (s *SessionStore) Load(ctx context.Context) (*domain.Identity, error) {
	payload, err := s.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		s.discard(ctx)
		return nil, nil
	}

	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		s.discard(ctx)
		return nil, nil
	}

	identity := &domain.Identity{
		ID:         rec.ID,
		Name:       rec.Name,
		Email:      rec.Email,
		Role:       domain.Role(rec.Role),
		Department: rec.Department,
		Company:    rec.Company,
		Phone:      rec.Phone,
		CreatedAt:  createdAt,
	}
	if err := identity.Validate(); err != nil {
		s.discard(ctx)
		return nil, nil
	}
	return identity, nil
}

// Clear removes the slot. Clearing an empty slot is not an error.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SessionStore) discard(ctx context.Context) {
	_ = s.client.Del(ctx, sessionKey).Err()
}
