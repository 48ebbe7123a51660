package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campusworks/placement-portal/internal/core/derive"
	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

// SessionConfig carries the tunables of the session lifecycle.
type SessionConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// LoginDelay and SignupDelay simulate the latency a real backend would
	// impose on an authentication round trip.
	LoginDelay  time.Duration
	SignupDelay time.Duration
}

// SessionService implements the session lifecycle state machine. The machine
// holds exactly one of: no identity (anonymous), no identity plus an error
// message, or an identity — the combinations are enforced by the transition
// helpers, so a snapshot can never carry both an identity and an error.
type SessionService struct {
	store     ports.SessionStore
	directory ports.DirectoryRepository // optional, may be nil
	log       zerolog.Logger

	jwtSecret   string
	tokenTTL    time.Duration
	loginDelay  time.Duration
	signupDelay time.Duration
	sleep       func(ctx context.Context, d time.Duration) error

	initOnce sync.Once

	mu         sync.Mutex
	phase      ports.SessionPhase
	identity   *domain.Identity
	errMsg     string
	attemptSeq uint64 // monotonic; the latest attempt is the only one allowed to apply
}

func NewSessionService(store ports.SessionStore, directory ports.DirectoryRepository, cfg SessionConfig, log zerolog.Logger) *SessionService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &SessionService{
		store:       store,
		directory:   directory,
		log:         log,
		jwtSecret:   cfg.JWTSecret,
		tokenTTL:    cfg.TokenTTL,
		loginDelay:  cfg.LoginDelay,
		signupDelay: cfg.SignupDelay,
		sleep:       sleepWithContext,
		phase:       ports.PhaseLoading,
	}
}

// Initialize loads the persisted slot. Present → authenticated; absent or
// corrupt → anonymous. Only the first call has any effect.
func (s *SessionService) Initialize(ctx context.Context) error {
	var err error
	s.initOnce.Do(func() {
		identity, loadErr := s.store.Load(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if loadErr != nil {
			// The store itself is unreachable. Start anonymous; the caller
			// decides whether that is worth more than a warning.
			s.toAnonymous()
			err = fmt.Errorf("session initialize: %w", loadErr)
			return
		}
		if identity != nil {
			s.toAuthenticated(identity)
			s.log.Info().Str("user_id", identity.ID).Str("role", string(identity.Role)).Msg("session restored")
			return
		}
		s.toAnonymous()
	})
	return err
}

// Login authenticates with an email and password. The identity is synthesized
// entirely from the email address; any previously stored identity is ignored
// and overwritten. Validation failures land in the error phase. If another
// attempt starts while this one is suspended in its latency delay, this one
// is discarded without touching state or storage.
func (s *SessionService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	seq := s.beginAttempt()

	if err := s.sleep(ctx, s.loginDelay); err != nil {
		s.abortAttempt(seq)
		return nil, err
	}

	if email == "" || password == "" {
		return nil, s.failAttempt(seq, domain.ErrMissingCredentials)
	}
	if len(password) < domain.MinPasswordLength {
		// Same failure class a wrong password would produce against a real
		// backend, so the response does not reveal which check tripped.
		return nil, s.failAttempt(seq, domain.ErrInvalidCredentials)
	}

	role := derive.RoleFromEmail(email)
	identity := &domain.Identity{
		ID:        uuid.NewString(),
		Name:      derive.NameFromEmail(email),
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if role == domain.RoleEmployer {
		identity.Company = derive.CompanyFromEmail(email)
	} else {
		identity.Department = derive.DepartmentFromEmail(role, email)
	}

	return s.completeAttempt(ctx, seq, identity, "login failed")
}

// Signup creates an account from caller-supplied fields. Nothing is derived.
func (s *SessionService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	seq := s.beginAttempt()

	if err := s.sleep(ctx, s.signupDelay); err != nil {
		s.abortAttempt(seq)
		return nil, err
	}

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, s.failAttempt(seq, domain.ErrMissingSignupFields)
	}
	if len(input.Password) < domain.MinPasswordLength {
		return nil, s.failAttempt(seq, domain.ErrPasswordTooShort)
	}
	if !input.Role.Valid() {
		return nil, s.failAttempt(seq, domain.ErrInvalidRole)
	}

	identity := &domain.Identity{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
		Department: input.Department,
		Company:    input.Company,
		Phone:      input.Phone,
		CreatedAt:  time.Now().UTC(),
	}

	return s.completeAttempt(ctx, seq, identity, "signup failed")
}

// Logout clears the stored slot and moves to anonymous unconditionally, even
// when the store cannot be reached. Any in-flight attempt is superseded.
func (s *SessionService) Logout(ctx context.Context) error {
	err := s.store.Clear(ctx)

	s.mu.Lock()
	s.attemptSeq++
	s.toAnonymous()
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Msg("session ended")
	return nil
}

// ClearError moves from the error phase back to anonymous. No-op elsewhere.
func (s *SessionService) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == ports.PhaseError {
		s.toAnonymous()
	}
}

// Snapshot returns a read-only copy of the current session state.
func (s *SessionService) Snapshot() ports.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := ports.SessionSnapshot{
		Phase:           s.phase,
		Error:           s.errMsg,
		IsAuthenticated: s.phase == ports.PhaseAuthenticated,
	}
	if s.identity != nil {
		clone := *s.identity
		snap.Identity = &clone
	}
	return snap
}

// --- attempt bookkeeping -------------------------------------------------

// beginAttempt registers a new authentication attempt and transitions to the
// authenticating phase, clearing any prior error.
func (s *SessionService) beginAttempt() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attemptSeq++
	s.phase = ports.PhaseAuthenticating
	s.identity = nil
	s.errMsg = ""
	return s.attemptSeq
}

// abortAttempt unwinds a cancelled attempt. Superseded attempts leave the
// newer attempt's state alone.
func (s *SessionService) abortAttempt(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq == s.attemptSeq {
		s.toAnonymous()
	}
}

// failAttempt applies a validation failure if the attempt is still the
// latest; stale attempts are discarded silently.
func (s *SessionService) failAttempt(seq uint64, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.attemptSeq {
		return domain.ErrAttemptSuperseded
	}
	s.toError(cause.Error())
	return cause
}

// completeAttempt persists and publishes a successful attempt, but only when
// it is still the latest outstanding one. This turns the implicit
// last-resolved-wins race of overlapping attempts into an explicit
// last-requested-wins guarantee.
func (s *SessionService) completeAttempt(ctx context.Context, seq uint64, identity *domain.Identity, failMsg string) (*ports.AuthResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.attemptSeq {
		return nil, domain.ErrAttemptSuperseded
	}

	if err := s.store.Save(ctx, identity); err != nil {
		s.toError(failMsg)
		return nil, fmt.Errorf("persist session: %w", err)
	}

	token, err := s.mintToken(identity)
	if err != nil {
		s.toError(failMsg)
		return nil, fmt.Errorf("mint token: %w", err)
	}

	if s.directory != nil {
		if err := s.directory.Upsert(ctx, identity); err != nil {
			s.log.Warn().Err(err).Str("user_id", identity.ID).Msg("directory upsert failed")
		}
	}

	s.toAuthenticated(identity)
	s.log.Info().
		Str("user_id", identity.ID).
		Str("email", identity.Email).
		Str("role", string(identity.Role)).
		Msg("session authenticated")

	clone := *identity
	return &ports.AuthResult{Identity: &clone, Token: token}, nil
}

// --- state transitions (callers hold s.mu) --------------------------------

func (s *SessionService) toAnonymous() {
	s.phase = ports.PhaseAnonymous
	s.identity = nil
	s.errMsg = ""
}

func (s *SessionService) toError(msg string) {
	s.phase = ports.PhaseError
	s.identity = nil
	s.errMsg = msg
}

func (s *SessionService) toAuthenticated(identity *domain.Identity) {
	s.phase = ports.PhaseAuthenticated
	s.identity = identity
	s.errMsg = ""
}

func (s *SessionService) mintToken(identity *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.ID,
		"email": identity.Email,
		"role":  string(identity.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
