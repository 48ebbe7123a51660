package service

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

func TestNavigation_RequiresStartedSession(t *testing.T) {
	nav := NewNavigationService(zerolog.Nop())

	if _, err := nav.Navigate("jobs"); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := nav.Back(); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := nav.State(); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestNavigation_StartSeedsDefaultView(t *testing.T) {
	nav := NewNavigationService(zerolog.Nop())
	nav.Start()

	state, err := nav.State()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Current != domain.DefaultView || state.Depth != 1 || state.CanGoBack {
		t.Fatalf("unexpected initial state: %+v", state)
	}
}

func TestNavigation_NavigateAndBack(t *testing.T) {
	nav := NewNavigationService(zerolog.Nop())
	nav.Start()

	state, _ := nav.Navigate("jobs")
	if state.Current != "jobs" || state.Depth != 2 || !state.CanGoBack {
		t.Fatalf("unexpected state after navigate: %+v", state)
	}

	// navigating to the current view must not grow the history
	state, _ = nav.Navigate("jobs")
	if state.Depth != 2 {
		t.Fatalf("duplicate navigate must be a no-op, depth %d", state.Depth)
	}

	state, _ = nav.Back()
	if state.Current != domain.DefaultView || state.Depth != 1 || state.CanGoBack {
		t.Fatalf("unexpected state after back: %+v", state)
	}

	// back at depth 1 is a no-op
	state, _ = nav.Back()
	if state.Current != domain.DefaultView || state.Depth != 1 {
		t.Fatalf("back at depth 1 must be a no-op: %+v", state)
	}
}

func TestNavigation_BackAlwaysSeesLatestHistory(t *testing.T) {
	nav := NewNavigationService(zerolog.Nop())
	nav.Start()

	// snapshot taken before further navigation must not influence Back
	stale, _ := nav.State()
	if stale.CanGoBack {
		t.Fatal("setup: expected CanGoBack=false")
	}

	nav.Navigate("jobs")
	nav.Navigate("applications")

	state, _ := nav.Back()
	if state.Current != "jobs" {
		t.Fatalf("back must act on live history, got %q", state.Current)
	}
}

func TestNavigation_StopDiscardsHistory(t *testing.T) {
	nav := NewNavigationService(zerolog.Nop())
	nav.Start()
	nav.Navigate("jobs")

	nav.Stop()
	if _, err := nav.State(); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected history discarded, got %v", err)
	}

	// a fresh session starts over with the default entry
	nav.Start()
	state, _ := nav.State()
	if state.Depth != 1 || state.Current != domain.DefaultView {
		t.Fatalf("expected fresh history, got %+v", state)
	}
}
