package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tropicalbs/internal/errors"
	"tropicalbs/internal/model"
	"tropicalbs/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUpRequest represents a sign-up request.
type SignUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"display_name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetRequest asks for a password-reset token to be mailed out.
type ResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetConfirmRequest consumes a reset token.
type ResetConfirmRequest struct {
	Token    string `json:"token" validate:"required,len=40,hexadecimal"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthUser is the identity payload returned alongside a token.
type AuthUser struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

func newAuthResponse(token string, user *model.User) AuthResponse {
	return AuthResponse{
		Token: token,
		User:  AuthUser{Email: user.Email, Roles: user.RoleNames()},
	}
}

// SignUp godoc
// @Summary Sign up a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Sign-up data"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.SignUp(c.Request().Context(), req.Email, req.Password, req.DisplayName, req.FirstName, req.LastName)
	if err != nil {
		switch err {
		case service.ErrEmailTaken:
			return echo.NewHTTPError(http.StatusConflict, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "EMAIL_TAKEN",
			})
		case service.ErrRoleNotFound:
			return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
				Error: "default role is not seeded",
				Code:  "DEFAULT_ROLE_MISSING",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to sign up",
			Code:  "SIGNUP_FAILED",
		})
	}

	return c.JSON(http.StatusOK, newAuthResponse(token, user))
}

// Login godoc
// @Summary Log in a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to log in",
			Code:  "LOGIN_FAILED",
		})
	}

	return c.JSON(http.StatusOK, newAuthResponse(token, user))
}

// Me godoc
// @Summary Return the identity resolved from the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthUser
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "no authenticated user",
			Code:  "UNAUTHENTICATED",
		})
	}
	return c.JSON(http.StatusOK, AuthUser{Email: user.Email, Roles: user.RoleNames()})
}

// Logout godoc
// @Summary Revoke the current bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := bearerToken(c)
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		if err == service.ErrInvalidToken {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_TOKEN",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to log out",
			Code:  "LOGOUT_FAILED",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// SendReset godoc
// @Summary Mail a one-time password-reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/reset [post]
func (h *AuthHandler) SendReset(c echo.Context) error {
	var req ResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.SendResetToken(c.Request().Context(), req.Email); err != nil {
		switch err {
		case service.ErrUnknownUser:
			return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "UNKNOWN_USER",
			})
		case service.ErrNotificationFailed:
			return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "NOTIFICATION_FAILED",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to issue reset token",
			Code:  "RESET_FAILED",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "check your email for the reset token",
	})
}

// ResetPassword godoc
// @Summary Consume a reset token and set a new password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetConfirmRequest true "Token and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/reset/confirm [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Token, req.Password); err != nil {
		if err == service.ErrResetTokenInvalid {
			return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "RESET_TOKEN_INVALID",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to reset password",
			Code:  "RESET_FAILED",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "password updated successfully",
	})
}
