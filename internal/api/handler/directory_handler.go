package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

// DirectoryHandler serves the user directory backing the admin views.
type DirectoryHandler struct {
	directory ports.DirectoryRepository
}

func NewDirectoryHandler(directory ports.DirectoryRepository) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// List handles GET /v1/directory/users.
//
// @Summary      List known users
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        role  query     string  false  "Filter by role"
// @Success      200   {array}   domain.Identity
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/directory/users [get]
func (h *DirectoryHandler) List(c echo.Context) error {
	role := domain.Role(c.QueryParam("role"))
	if role != "" && !role.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role")
	}

	users, err := h.directory.List(c.Request().Context(), role)
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.Identity{}
	}
	return c.JSON(http.StatusOK, users)
}
