package ports

import (
	"context"

	"github.com/campusworks/placement-portal/internal/core/domain"
)

// SessionPhase names the state the session machine is in. Identity and error
// are carried by the snapshot only in the phases that permit them, so a
// caller can never observe both at once.
type SessionPhase string

const (
	PhaseLoading        SessionPhase = "loading"
	PhaseAnonymous      SessionPhase = "anonymous"
	PhaseAuthenticating SessionPhase = "authenticating"
	PhaseAuthenticated  SessionPhase = "authenticated"
	PhaseError          SessionPhase = "error"
)

// SessionSnapshot is the read-only view of the session handed to the rest of
// the interface. Identity is a copy; mutating it has no effect on the session.
type SessionSnapshot struct {
	Phase           SessionPhase
	Identity        *domain.Identity
	Error           string
	IsAuthenticated bool
}

// SignupInput carries the caller-supplied fields for account creation.
// Unlike login, nothing is derived: the identity is built from these verbatim.
type SignupInput struct {
	Name       string
	Email      string
	Password   string
	Role       domain.Role
	Department string
	Company    string
	Phone      string
}

// AuthResult is returned by a successful login or signup.
type AuthResult struct {
	Identity *domain.Identity
	Token    string
}

// SessionService is the session lifecycle state machine.
type SessionService interface {
	// Initialize loads the persisted slot. It runs at most once per process;
	// later calls are no-ops.
	Initialize(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Logout(ctx context.Context) error
	// ClearError moves the machine from the error phase back to anonymous.
	// In any other phase it is a no-op.
	ClearError()
	Snapshot() SessionSnapshot
}
