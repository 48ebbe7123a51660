package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/placement-portal/internal/api/metrics"
	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

type navigateRequest struct {
	View string `json:"view" validate:"required"`
}

type navigationStateResponse struct {
	Current   string   `json:"current"`
	CanGoBack bool     `json:"canGoBack"`
	Depth     int      `json:"depth"`
	Views     []string `json:"views"`
}

// NavigationHandler exposes the view history over HTTP.
type NavigationHandler struct {
	navigation ports.NavigationService
	activity   ActivityDispatcher
}

func NewNavigationHandler(navigation ports.NavigationService, activity ActivityDispatcher) *NavigationHandler {
	return &NavigationHandler{navigation: navigation, activity: activity}
}

// State returns the current navigation history.
//
// @Summary      Get navigation state
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  navigationStateResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/navigation [get]
func (h *NavigationHandler) State(c echo.Context) error {
	state, err := h.navigation.State()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNavigationResponse(state))
}

// Navigate pushes a view onto the history.
//
// @Summary      Navigate to a view
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      navigateRequest  true  "Target view"
// @Success      200   {object}  navigationStateResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/navigation/navigate [post]
func (h *NavigationHandler) Navigate(c echo.Context) error {
	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	state, err := h.navigation.Navigate(req.View)
	if err != nil {
		return err
	}
	metrics.NavigationDepth.Set(float64(state.Depth))
	h.enqueue(c, domain.ActivityNavigate, state.Current)

	return c.JSON(http.StatusOK, toNavigationResponse(state))
}

// Back pops the current view off the history.
//
// @Summary      Go back one view
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  navigationStateResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/navigation/back [post]
func (h *NavigationHandler) Back(c echo.Context) error {
	state, err := h.navigation.Back()
	if err != nil {
		return err
	}
	metrics.NavigationDepth.Set(float64(state.Depth))
	h.enqueue(c, domain.ActivityGoBack, state.Current)

	return c.JSON(http.StatusOK, toNavigationResponse(state))
}

func (h *NavigationHandler) enqueue(c echo.Context, action domain.ActivityAction, view string) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" {
		return
	}
	h.activity.Enqueue(domain.ActivityEvent{
		ActorID:   userID,
		ActorRole: domain.Role(role),
		Action:    action,
		View:      view,
		Timestamp: time.Now().UTC(),
	})
}

func toNavigationResponse(state ports.NavigationState) navigationStateResponse {
	return navigationStateResponse{
		Current:   state.Current,
		CanGoBack: state.CanGoBack,
		Depth:     state.Depth,
		Views:     state.Views,
	}
}
