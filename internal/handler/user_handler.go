package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"tropicalbs/internal/errors"
	"tropicalbs/internal/service"
)

// UserHandler handles user administration endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest represents a user update. A nil roles field leaves the
// role set untouched; a non-nil field replaces it entirely.
type UpdateUserRequest struct {
	Email string   `json:"email" validate:"omitempty,email"`
	Roles []string `json:"roles"`
}

// ListUsers godoc
// @Summary List users with flattened role names
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.UserProfile
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	profiles, err := h.userService.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "could not retrieve users",
			Code:  "STORE_ERROR",
		})
	}
	return c.JSON(http.StatusOK, profiles)
}

// GetUser godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} service.UserProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return mapUserError(err)
	}
	return c.JSON(http.StatusOK, service.NewUserProfile(user))
}

// UpdateUser godoc
// @Summary Update a user's email and/or replace their role set
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} service.UserProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), id, req.Email, req.Roles)
	if err != nil {
		return mapUserError(err)
	}
	return c.JSON(http.StatusOK, service.NewUserProfile(user))
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return mapUserError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "user deleted successfully",
	})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

func mapUserError(err error) *echo.HTTPError {
	switch err {
	case service.ErrUnknownUser:
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "UNKNOWN_USER",
		})
	case service.ErrRoleNotFound:
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "ROLE_NOT_FOUND",
		})
	case service.ErrEmailTaken:
		return echo.NewHTTPError(http.StatusConflict, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "EMAIL_TAKEN",
		})
	}
	return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
		Error: "database error",
		Code:  "STORE_ERROR",
	})
}
