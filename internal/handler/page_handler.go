package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tropicalbs/internal/errors"
	"tropicalbs/internal/service"
)

// PageHandler handles content page endpoints.
type PageHandler struct {
	pageService service.PageService
}

// NewPageHandler creates a new page handler.
func NewPageHandler(pageService service.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

// PageRequest represents a page create.
type PageRequest struct {
	Title   string `json:"title" validate:"required"`
	Slug    string `json:"slug" validate:"required"`
	Content string `json:"content"`
}

// UpdatePageRequest relaxes required fields for partial updates.
type UpdatePageRequest struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
}

// ListPages godoc
// @Summary List pages
// @Tags core
// @Produce json
// @Success 200 {array} model.Page
// @Failure 500 {object} errors.ErrorResponse
// @Router /core/pages [get]
func (h *PageHandler) ListPages(c echo.Context) error {
	pages, err := h.pageService.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "could not retrieve pages",
			Code:  "STORE_ERROR",
		})
	}
	return c.JSON(http.StatusOK, pages)
}

// CreatePage godoc
// @Summary Create a page
// @Tags core
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PageRequest true "Page data"
// @Success 201 {object} model.Page
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /core/pages [post]
func (h *PageHandler) CreatePage(c echo.Context) error {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	page, err := h.pageService.Create(c.Request().Context(), req.Title, req.Slug, req.Content)
	if err != nil {
		return mapPageError(err)
	}
	return c.JSON(http.StatusCreated, page)
}

// UpdatePage godoc
// @Summary Update a page
// @Tags core
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Page ID"
// @Param request body UpdatePageRequest true "Fields to update"
// @Success 200 {object} model.Page
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /core/pages/{id} [put]
func (h *PageHandler) UpdatePage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdatePageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	page, err := h.pageService.Update(c.Request().Context(), id, req.Title, req.Slug, req.Content)
	if err != nil {
		return mapPageError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// DeletePage godoc
// @Summary Delete a page
// @Tags core
// @Produce json
// @Security BearerAuth
// @Param id path int true "Page ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /core/pages/{id} [delete]
func (h *PageHandler) DeletePage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.pageService.Delete(c.Request().Context(), id); err != nil {
		return mapPageError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "page deleted successfully",
	})
}

func mapPageError(err error) *echo.HTTPError {
	switch err {
	case service.ErrPageNotFound:
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "PAGE_NOT_FOUND",
		})
	case service.ErrSlugTaken:
		return echo.NewHTTPError(http.StatusConflict, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "SLUG_TAKEN",
		})
	}
	return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
		Error: "database error",
		Code:  "STORE_ERROR",
	})
}
