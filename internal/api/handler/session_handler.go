package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/placement-portal/internal/api/metrics"
	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

// ActivityDispatcher is the interface the handlers use to enqueue audit events.
type ActivityDispatcher interface {
	Enqueue(event domain.ActivityEvent)
}

// SessionHandler exposes the session lifecycle over HTTP.
type SessionHandler struct {
	sessions   ports.SessionService
	navigation ports.NavigationService
	activity   ActivityDispatcher
}

func NewSessionHandler(sessions ports.SessionService, navigation ports.NavigationService, activity ActivityDispatcher) *SessionHandler {
	return &SessionHandler{
		sessions:   sessions,
		navigation: navigation,
		activity:   activity,
	}
}

// Login authenticates with email and password and starts a navigation history.
//
// @Summary      Login
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", attemptResult(err)).Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()

	h.navigation.Start()
	h.activity.Enqueue(domain.ActivityEvent{
		ActorID:   result.Identity.ID,
		ActorRole: result.Identity.Role,
		Action:    domain.ActivityLogin,
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: result.Identity})
}

// Signup creates an account from the submitted fields and authenticates it.
//
// @Summary      Sign up
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/signup [post]
func (h *SessionHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.sessions.Signup(c.Request().Context(), ports.SignupInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       domain.Role(req.Role),
		Department: req.Department,
		Company:    req.Company,
		Phone:      req.Phone,
	})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", attemptResult(err)).Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("signup", "success").Inc()

	h.navigation.Start()
	h.activity.Enqueue(domain.ActivityEvent{
		ActorID:   result.Identity.ID,
		ActorRole: result.Identity.Role,
		Action:    domain.ActivitySignup,
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusCreated, authResponse{Token: result.Token, User: result.Identity})
}

// Logout ends the session and discards the navigation history.
//
// @Summary      Logout
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Router       /v1/auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	snap := h.sessions.Snapshot()

	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return err
	}
	h.navigation.Stop()

	if snap.Identity != nil {
		h.activity.Enqueue(domain.ActivityEvent{
			ActorID:   snap.Identity.ID,
			ActorRole: snap.Identity.Role,
			Action:    domain.ActivityLogout,
			Timestamp: time.Now().UTC(),
		})
	}

	return c.JSON(http.StatusOK, toSessionResponse(h.sessions.Snapshot()))
}

// ClearError acknowledges a failed attempt and returns to the anonymous phase.
//
// @Summary      Clear the session error
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/auth/clear-error [post]
func (h *SessionHandler) ClearError(c echo.Context) error {
	h.sessions.ClearError()
	return c.JSON(http.StatusOK, toSessionResponse(h.sessions.Snapshot()))
}

// Session returns the current session snapshot.
//
// @Summary      Get the current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/auth/session [get]
func (h *SessionHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, toSessionResponse(h.sessions.Snapshot()))
}

func toSessionResponse(snap ports.SessionSnapshot) sessionResponse {
	return sessionResponse{
		Phase:           string(snap.Phase),
		User:            snap.Identity,
		Error:           snap.Error,
		IsAuthenticated: snap.IsAuthenticated,
	}
}

// attemptResult buckets an attempt error for the auth metrics.
func attemptResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrMissingSignupFields),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrInvalidRole):
		return "invalid"
	case errors.Is(err, domain.ErrAttemptSuperseded):
		return "superseded"
	default:
		return "error"
	}
}
