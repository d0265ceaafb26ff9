package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"tropicalbs/internal/config"
	apperrors "tropicalbs/internal/errors"
	"tropicalbs/internal/handler"
)

// resetRequestsPerSecond caps reset-token issuance per client IP.
const resetRequestsPerSecond rate.Limit = 1

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	tabHandler *handler.TabHandler,
	pageHandler *handler.PageHandler,
	contentHandler *handler.ContentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.SignUp)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/reset", authHandler.SendReset,
		middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(resetRequestsPerSecond)))
	api.POST("/auth/reset/confirm", authHandler.ResetPassword)

	// SPA bootstrap and read-only content
	api.GET("/core/index", contentHandler.Index)
	api.GET("/core/tabs", tabHandler.ListTabs)
	api.GET("/core/pages", pageHandler.ListPages)

	// Secured routes: echo-jwt verifies signature and expiry, RequireUser
	// resolves the identity against the store and the revocation list.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:   []byte(cfg.JWTSecret),
		ErrorHandler: jwtErrorHandler,
	}), authHandler.RequireUser)

	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/auth/logout", authHandler.Logout)

	// User administration requires the admin role
	admin := secured.Group("", handler.RequireRole("admin"))
	admin.GET("/users", userHandler.ListUsers)
	admin.GET("/users/:id", userHandler.GetUser)
	admin.PUT("/users/:id", userHandler.UpdateUser)
	admin.DELETE("/users/:id", userHandler.DeleteUser)

	// Content mutations require the admin role
	admin.POST("/core/tabs", tabHandler.CreateTab)
	admin.PUT("/core/tabs/:id", tabHandler.UpdateTab)
	admin.DELETE("/core/tabs/:id", tabHandler.DeleteTab)
	admin.POST("/core/pages", pageHandler.CreatePage)
	admin.PUT("/core/pages/:id", pageHandler.UpdatePage)
	admin.DELETE("/core/pages/:id", pageHandler.DeletePage)
}

// jwtErrorHandler maps a missing token to 403 and everything else the
// signature check rejects to 401.
func jwtErrorHandler(c echo.Context, err error) error {
	if errors.Is(err, echojwt.ErrJWTMissing) {
		return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
			Error: "no token provided",
			Code:  "MISSING_TOKEN",
		})
	}
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: "invalid or expired token",
		Code:  "INVALID_TOKEN",
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
