package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tropicalbs/internal/errors"
	"tropicalbs/internal/service"
)

// ContentHandler serves the SPA bootstrap payload.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new content handler.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Index godoc
// @Summary Joint pages-and-tabs payload the SPA boots from
// @Tags core
// @Produce json
// @Success 200 {object} service.IndexPayload
// @Failure 500 {object} errors.ErrorResponse
// @Router /core/index [get]
func (h *ContentHandler) Index(c echo.Context) error {
	payload, err := h.contentService.Index(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "could not assemble index payload",
			Code:  "STORE_ERROR",
		})
	}
	return c.JSON(http.StatusOK, payload)
}
