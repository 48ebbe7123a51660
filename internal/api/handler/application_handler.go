package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

type applyRequest struct {
	JobID       string `json:"job_id" validate:"required"`
	Resume      string `json:"resume"`
	CoverLetter string `json:"cover_letter"`
}

type updateApplicationStatusRequest struct {
	Status        string    `json:"status" validate:"required,oneof=pending shortlisted interviewed selected rejected"`
	Notes         string    `json:"notes"`
	InterviewDate time.Time `json:"interview_date"`
	Feedback      string    `json:"feedback"`
}

// ApplicationHandler handles HTTP requests for student applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Apply handles POST /v1/applications.
//
// @Summary      Apply to a job posting
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyRequest  true  "Application details"
// @Success      201   {object}  domain.Application
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	studentID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	app, err := h.service.Apply(c.Request().Context(), ports.ApplyInput{
		JobID:       req.JobID,
		StudentID:   studentID,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, app)
}

// UpdateStatus handles PATCH /v1/applications/:id/status.
//
// @Summary      Move an application through the review pipeline
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                          true  "Application id"
// @Param        body  body      updateApplicationStatusRequest  true  "Review decision"
// @Success      200   {object}  domain.Application
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	var req updateApplicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	app, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateApplicationStatusInput{
		ApplicationID: c.Param("id"),
		Status:        req.Status,
		Notes:         req.Notes,
		InterviewDate: req.InterviewDate,
		Feedback:      req.Feedback,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, app)
}

// List handles GET /v1/applications.
//
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        job_id  query     string  false  "Filter by job"
// @Param        status  query     string  false  "Filter by review status"
// @Success      200     {array}   domain.Application
// @Failure      401     {object}  errorResponse
// @Router       /v1/applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	filter := ports.ListApplicationsFilter{
		JobID:  c.QueryParam("job_id"),
		Status: c.QueryParam("status"),
	}
	// Students only ever see their own applications.
	if role == string(domain.RoleStudent) {
		filter.StudentID = userID
	}

	apps, err := h.service.ListApplications(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if apps == nil {
		apps = []*domain.Application{}
	}
	return c.JSON(http.StatusOK, apps)
}
