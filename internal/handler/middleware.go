package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tropicalbs/internal/errors"
	"tropicalbs/internal/model"
	"tropicalbs/internal/service"
)

// currentUserKey is the echo context key holding the resolved user.
const currentUserKey = "currentUser"

// CurrentUser returns the user resolved by RequireUser, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// RequireUser resolves the bearer token to a stored user and attaches it to
// the context. A token whose identity no longer exists or was revoked does
// not pass, regardless of signature validity.
func (h *AuthHandler) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := h.authService.CheckAuth(c.Request().Context(), bearerToken(c))
		if err != nil {
			switch err {
			case service.ErrMissingToken:
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: err.Error(),
					Code:  "MISSING_TOKEN",
				})
			case service.ErrInvalidToken:
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: err.Error(),
					Code:  "INVALID_TOKEN",
				})
			case service.ErrTokenRevoked:
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: err.Error(),
					Code:  "TOKEN_REVOKED",
				})
			case service.ErrUnknownUser:
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: err.Error(),
					Code:  "UNKNOWN_USER",
				})
			}
			return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
				Error: "failed to verify token",
				Code:  "AUTH_CHECK_FAILED",
			})
		}

		c.Set(currentUserKey, user)
		return next(c)
	}
}

// RequireRole allows the request through only when the resolved user holds
// the named role. Must run after RequireUser.
func RequireRole(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: "no authenticated user",
					Code:  "MISSING_TOKEN",
				})
			}
			for _, role := range user.Roles {
				if role.Name == name {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: "insufficient role",
				Code:  "FORBIDDEN",
			})
		}
	}
}
