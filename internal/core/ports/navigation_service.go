package ports

// NavigationState is the current view of the navigation history.
type NavigationState struct {
	Current   string
	CanGoBack bool
	Depth     int
	Views     []string
}

// NavigationService owns the history of visited views for the authenticated
// session. Every operation reads the live history at call time, never a
// snapshot captured earlier.
type NavigationService interface {
	// Start resets the history to a single default entry. Called when a
	// session becomes authenticated.
	Start()
	// Stop discards the history. Called at logout.
	Stop()
	// Navigate pushes a view. Navigating to the current view is a no-op.
	Navigate(view string) (NavigationState, error)
	// Back pops the current view. At depth 1 it is a no-op.
	Back() (NavigationState, error)
	State() (NavigationState, error)
}
