package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

type stubSessionService struct {
	loginFn  func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	signupFn func(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error)
	logoutFn func(ctx context.Context) error
	snapshot ports.SessionSnapshot

	clearCalled bool
}

func (s *stubSessionService) Initialize(ctx context.Context) error { return nil }

func (s *stubSessionService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	return s.signupFn(ctx, input)
}

func (s *stubSessionService) Logout(ctx context.Context) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx)
	}
	return nil
}

func (s *stubSessionService) ClearError() { s.clearCalled = true }

func (s *stubSessionService) Snapshot() ports.SessionSnapshot { return s.snapshot }

type stubNavigation struct {
	started bool
	stopped bool
}

func (n *stubNavigation) Start() { n.started = true }
func (n *stubNavigation) Stop()  { n.stopped = true }
func (n *stubNavigation) Navigate(view string) (ports.NavigationState, error) {
	return ports.NavigationState{}, nil
}
func (n *stubNavigation) Back() (ports.NavigationState, error) {
	return ports.NavigationState{}, nil
}
func (n *stubNavigation) State() (ports.NavigationState, error) {
	return ports.NavigationState{}, nil
}

type stubDispatcher struct {
	events []domain.ActivityEvent
}

func (d *stubDispatcher) Enqueue(event domain.ActivityEvent) {
	d.events = append(d.events, event)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestSessionHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	identity := &domain.Identity{ID: "u1", Name: "Priya Sharma", Email: "priya.sharma@cs.university.edu", Role: domain.RoleStudent}
	sessions := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "priya.sharma@cs.university.edu" || password != "secret123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.AuthResult{Identity: identity, Token: "token123"}, nil
		},
	}
	nav := &stubNavigation{}
	dispatcher := &stubDispatcher{}
	handler := NewSessionHandler(sessions, nav, dispatcher)

	body := strings.NewReader(`{"email":"priya.sharma@cs.university.edu","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Priya Sharma" || user["role"] != "student" {
		t.Fatalf("unexpected user payload: %+v", user)
	}

	if !nav.started {
		t.Fatalf("navigation not started")
	}
	if len(dispatcher.events) != 1 || dispatcher.events[0].Action != domain.ActivityLogin {
		t.Fatalf("expected one login activity event, got %+v", dispatcher.events)
	}
	if dispatcher.events[0].ActorID != "u1" {
		t.Fatalf("unexpected actor: %s", dispatcher.events[0].ActorID)
	}
}

func TestSessionHandler_Login_Failure(t *testing.T) {
	e := newTestEcho()
	sessions := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	nav := &stubNavigation{}
	dispatcher := &stubDispatcher{}
	handler := NewSessionHandler(sessions, nav, dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"email":"x@y.com","password":"12345"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	if nav.started {
		t.Fatalf("navigation should not start on failure")
	}
	if len(dispatcher.events) != 0 {
		t.Fatalf("no activity should be recorded on failure")
	}
}

func TestSessionHandler_Login_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	sessions := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewSessionHandler(sessions, &stubNavigation{}, &stubDispatcher{})

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestSessionHandler_Signup_Success(t *testing.T) {
	e := newTestEcho()
	identity := &domain.Identity{ID: "u2", Name: "Jane Roe", Email: "jane@acme.io", Role: domain.RoleEmployer, Company: "Acme Technologies"}
	sessions := &stubSessionService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
			if input.Name != "Jane Roe" || input.Role != domain.RoleEmployer {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AuthResult{Identity: identity, Token: "token456"}, nil
		},
	}
	nav := &stubNavigation{}
	dispatcher := &stubDispatcher{}
	handler := NewSessionHandler(sessions, nav, dispatcher)

	body := strings.NewReader(`{"name":"Jane Roe","email":"jane@acme.io","password":"secret123","role":"employer","company":"Acme Technologies"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !nav.started {
		t.Fatalf("navigation not started")
	}
	if len(dispatcher.events) != 1 || dispatcher.events[0].Action != domain.ActivitySignup {
		t.Fatalf("expected one signup activity event, got %+v", dispatcher.events)
	}
}

func TestSessionHandler_Signup_RejectsBadRole(t *testing.T) {
	e := newTestEcho()
	sessions := &stubSessionService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewSessionHandler(sessions, &stubNavigation{}, &stubDispatcher{})

	body := strings.NewReader(`{"name":"X","email":"x@y.com","password":"secret123","role":"wizard"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Signup(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	e := newTestEcho()
	identity := &domain.Identity{ID: "u1", Role: domain.RoleStudent}
	sessions := &stubSessionService{
		snapshot: ports.SessionSnapshot{
			Phase:           ports.PhaseAuthenticated,
			Identity:        identity,
			IsAuthenticated: true,
		},
	}
	nav := &stubNavigation{}
	dispatcher := &stubDispatcher{}
	handler := NewSessionHandler(sessions, nav, dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !nav.stopped {
		t.Fatalf("navigation not stopped")
	}
	if len(dispatcher.events) != 1 || dispatcher.events[0].Action != domain.ActivityLogout {
		t.Fatalf("expected one logout activity event, got %+v", dispatcher.events)
	}
}

func TestSessionHandler_ClearError(t *testing.T) {
	e := newTestEcho()
	sessions := &stubSessionService{
		snapshot: ports.SessionSnapshot{Phase: ports.PhaseAnonymous},
	}
	handler := NewSessionHandler(sessions, &stubNavigation{}, &stubDispatcher{})

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/clear-error", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ClearError(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !sessions.clearCalled {
		t.Fatalf("ClearError not forwarded to service")
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["phase"] != "anonymous" {
		t.Fatalf("expected anonymous phase, got %v", resp["phase"])
	}
}

func TestSessionHandler_Session(t *testing.T) {
	e := newTestEcho()
	sessions := &stubSessionService{
		snapshot: ports.SessionSnapshot{
			Phase: ports.PhaseError,
			Error: "login failed",
		},
	}
	handler := NewSessionHandler(sessions, &stubNavigation{}, &stubDispatcher{})

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["phase"] != "error" || resp["error"] != "login failed" {
		t.Fatalf("unexpected snapshot payload: %+v", resp)
	}
	if resp["isAuthenticated"] != false {
		t.Fatalf("expected isAuthenticated=false")
	}
	if _, present := resp["user"]; present {
		t.Fatalf("user must be omitted in the error phase")
	}
}
