package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tropicalbs/internal/errors"
	"tropicalbs/internal/service"
)

// TabHandler handles navigation tab endpoints.
type TabHandler struct {
	tabService service.TabService
}

// NewTabHandler creates a new tab handler.
func NewTabHandler(tabService service.TabService) *TabHandler {
	return &TabHandler{tabService: tabService}
}

// TabRequest represents a tab create or update.
type TabRequest struct {
	Title        string   `json:"title" validate:"required"`
	UISref       string   `json:"uisref" validate:"required"`
	VisibleRoles []string `json:"visible_roles"`
}

// UpdateTabRequest relaxes the required fields for partial updates.
type UpdateTabRequest struct {
	Title        string   `json:"title"`
	UISref       string   `json:"uisref"`
	VisibleRoles []string `json:"visible_roles"`
}

// ListTabs godoc
// @Summary List tabs with flattened visibility roles
// @Tags core
// @Produce json
// @Success 200 {array} service.TabView
// @Failure 500 {object} errors.ErrorResponse
// @Router /core/tabs [get]
func (h *TabHandler) ListTabs(c echo.Context) error {
	tabs, err := h.tabService.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "could not retrieve tabs",
			Code:  "STORE_ERROR",
		})
	}
	return c.JSON(http.StatusOK, tabs)
}

// CreateTab godoc
// @Summary Create a tab
// @Tags core
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TabRequest true "Tab data"
// @Success 201 {object} service.TabView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /core/tabs [post]
func (h *TabHandler) CreateTab(c echo.Context) error {
	var req TabRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tab, err := h.tabService.Create(c.Request().Context(), req.Title, req.UISref, req.VisibleRoles)
	if err != nil {
		return mapTabError(err)
	}
	return c.JSON(http.StatusCreated, service.NewTabView(tab))
}

// UpdateTab godoc
// @Summary Update a tab
// @Tags core
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tab ID"
// @Param request body UpdateTabRequest true "Fields to update"
// @Success 200 {object} service.TabView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /core/tabs/{id} [put]
func (h *TabHandler) UpdateTab(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateTabRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tab, err := h.tabService.Update(c.Request().Context(), id, req.Title, req.UISref, req.VisibleRoles)
	if err != nil {
		return mapTabError(err)
	}
	return c.JSON(http.StatusOK, service.NewTabView(tab))
}

// DeleteTab godoc
// @Summary Delete a tab
// @Tags core
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tab ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /core/tabs/{id} [delete]
func (h *TabHandler) DeleteTab(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.tabService.Delete(c.Request().Context(), id); err != nil {
		return mapTabError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "tab deleted successfully",
	})
}

func mapTabError(err error) *echo.HTTPError {
	switch err {
	case service.ErrTabNotFound:
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "TAB_NOT_FOUND",
		})
	case service.ErrRoleNotFound:
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "ROLE_NOT_FOUND",
		})
	}
	return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
		Error: "database error",
		Code:  "STORE_ERROR",
	})
}
