package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

type stubActivityRepo struct {
	events    []*domain.ActivityEvent
	insertErr error
}

func (r *stubActivityRepo) Insert(_ context.Context, e *domain.ActivityEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *e
	r.events = append(r.events, &clone)
	return nil
}

type stubDeduper struct {
	seen     map[string]bool
	checkErr error
}

func newStubDeduper() *stubDeduper {
	return &stubDeduper{seen: make(map[string]bool)}
}

func (d *stubDeduper) key(actorID, action string, ts time.Time) string {
	return actorID + ":" + action + ":" + ts.UTC().Format(time.RFC3339)
}

func (d *stubDeduper) IsDuplicate(_ context.Context, actorID, action string, ts time.Time) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[d.key(actorID, action, ts)], nil
}

func (d *stubDeduper) Mark(_ context.Context, actorID, action string, ts time.Time) error {
	d.seen[d.key(actorID, action, ts)] = true
	return nil
}

func TestActivityService_RecordsEvent(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, newStubDeduper(), zerolog.Nop())

	err := svc.Record(context.Background(), domain.ActivityEvent{
		ActorID:   "u1",
		ActorRole: domain.RoleStudent,
		Action:    domain.ActivityNavigate,
		View:      "jobs",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	if repo.events[0].Timestamp.IsZero() {
		t.Error("timestamp must be defaulted")
	}
}

func TestActivityService_SkipsDuplicates(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, newStubDeduper(), zerolog.Nop())

	ts := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	event := domain.ActivityEvent{ActorID: "u1", Action: domain.ActivityLogin, Timestamp: ts}

	if err := svc.Record(context.Background(), event); err != nil {
		t.Fatalf("first record failed: %v", err)
	}
	if err := svc.Record(context.Background(), event); err != nil {
		t.Fatalf("duplicate record errored: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("duplicate must be skipped, got %d events", len(repo.events))
	}
}

func TestActivityService_DedupFailureIsNonFatal(t *testing.T) {
	repo := &stubActivityRepo{}
	dedup := newStubDeduper()
	dedup.checkErr = errors.New("redis down")
	svc := NewActivityService(repo, dedup, zerolog.Nop())

	err := svc.Record(context.Background(), domain.ActivityEvent{ActorID: "u1", Action: domain.ActivityLogout})
	if err != nil {
		t.Fatalf("dedup failure must not block recording: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected event recorded anyway, got %d", len(repo.events))
	}
}

func TestActivityService_InsertFailure(t *testing.T) {
	repo := &stubActivityRepo{insertErr: errors.New("write failed")}
	svc := NewActivityService(repo, newStubDeduper(), zerolog.Nop())

	err := svc.Record(context.Background(), domain.ActivityEvent{ActorID: "u1", Action: domain.ActivityLogin})
	if err == nil {
		t.Fatal("expected error")
	}
}
