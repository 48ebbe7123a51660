package service

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

// NavigationService owns the view history of the authenticated session.
// Every operation locks and reads the live history at call time, so a caller
// dispatching a back action (for example the client's keyboard shortcut) can
// never act on a stale copy of the stack.
type NavigationService struct {
	log zerolog.Logger

	mu      sync.Mutex
	history *domain.History // nil while no session is mounted
}

func NewNavigationService(log zerolog.Logger) *NavigationService {
	return &NavigationService{log: log}
}

// Start resets the history to the single default entry. Called when the
// session becomes authenticated; calling it again discards the old history.
func (n *NavigationService) Start() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.history = domain.NewHistory(domain.DefaultView)
}

// Stop discards the history. Called at logout.
func (n *NavigationService) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.history = nil
}

// Navigate pushes a view onto the history.
func (n *NavigationService) Navigate(view string) (ports.NavigationState, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.history == nil {
		return ports.NavigationState{}, domain.ErrNotAuthenticated
	}
	n.history.Push(view)
	n.log.Debug().Str("view", n.history.Current()).Int("depth", n.history.Depth()).Msg("navigated")
	return n.state(), nil
}

// Back pops the current view. At depth 1 this is a no-op.
func (n *NavigationService) Back() (ports.NavigationState, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.history == nil {
		return ports.NavigationState{}, domain.ErrNotAuthenticated
	}
	n.history.Pop()
	return n.state(), nil
}

// State reports the current history without modifying it.
func (n *NavigationService) State() (ports.NavigationState, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.history == nil {
		return ports.NavigationState{}, domain.ErrNotAuthenticated
	}
	return n.state(), nil
}

func (n *NavigationService) state() ports.NavigationState {
	return ports.NavigationState{
		Current:   n.history.Current(),
		CanGoBack: n.history.CanGoBack(),
		Depth:     n.history.Depth(),
		Views:     n.history.Views(),
	}
}
