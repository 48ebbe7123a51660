package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

func setupStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client), mr
}

func sampleIdentity() *domain.Identity {
	return &domain.Identity{
		ID:         "3f1c9a6e-0001-4000-8000-000000000001",
		Name:       "Priya Sharma",
		Email:      "priya.sharma@student.edu",
		Role:       domain.RoleStudent,
		Department: "Computer Science",
		Phone:      "+91-98765-43210",
		CreatedAt:  time.Date(2026, 2, 10, 9, 30, 0, 123456789, time.UTC),
	}
}

func TestSessionStore_RoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	want := sampleIdentity()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected identity, got nil")
	}

	if got.ID != want.ID || got.Name != want.Name || got.Email != want.Email {
		t.Errorf("core fields differ: %+v", got)
	}
	if got.Role != want.Role || got.Department != want.Department || got.Phone != want.Phone {
		t.Errorf("attribute fields differ: %+v", got)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("createdAt not equal as instant: got %v want %v", got.CreatedAt, want.CreatedAt)
	}
}

func TestSessionStore_EmptySlotIsAbsent(t *testing.T) {
	store, _ := setupStore(t)

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected absent, got %+v", got)
	}
}

func TestSessionStore_SaveOverwrites(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	first := sampleIdentity()
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	second := sampleIdentity()
	second.ID = "3f1c9a6e-0002-4000-8000-000000000002"
	second.Email = "arjun.mehta@infosys.com"
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Email != second.Email {
		t.Errorf("expected overwrite, got %q", got.Email)
	}
}

func TestSessionStore_CorruptRecordDoesNotRecur(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	corrupt := []string{
		"not json at all",
		`{"id":"x"`,                               // truncated
		`{"id":"","name":"","email":"","role":""}`, // structurally empty
		`{"id":"x","name":"N","email":"e@x.com","role":"wizard","createdAt":"2026-01-01T00:00:00Z"}`,
		`{"id":"x","name":"N","email":"e@x.com","role":"student","createdAt":"yesterday"}`,
	}
	for _, payload := range corrupt {
		if err := mr.Set(sessionKey, payload); err != nil {
			t.Fatalf("seed: %v", err)
		}

		got, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("corrupt record must not error: %v", err)
		}
		if got != nil {
			t.Fatalf("corrupt record %q must be absent, got %+v", payload, got)
		}
		// the slot is cleared so the corruption does not recur
		if mr.Exists(sessionKey) {
			t.Fatalf("corrupt record %q must be deleted", payload)
		}
	}
}

func TestSessionStore_ClearIsIdempotent(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, sampleIdentity()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if mr.Exists(sessionKey) {
		t.Fatal("slot must be removed")
	}
	// clearing again is not an error
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
}
