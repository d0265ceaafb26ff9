package main

import (
	"context"
	"log"
	"net/http"

	_ "tropicalbs/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tropicalbs/internal/auth"
	"tropicalbs/internal/cache"
	"tropicalbs/internal/config"
	"tropicalbs/internal/db"
	"tropicalbs/internal/handler"
	"tropicalbs/internal/mail"
	"tropicalbs/internal/model"
	"tropicalbs/internal/repository"
	"tropicalbs/internal/router"
	"tropicalbs/internal/service"
)

// @title Tropical BS Admin API
// @version 1.0
// @description Admin backend with JWT authentication, role-based authorization, and page/tab content management.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Page{},
		&model.Tab{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	pageRepo := repository.NewPageRepository(gormDB)
	tabRepo := repository.NewTabRepository(gormDB)

	// Sign-up depends on the default role existing
	if _, err := roleRepo.EnsureExists(context.Background(), model.DefaultRoleName); err != nil {
		log.Fatalf("seed default role: %v", err)
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	var mailer mail.Sender
	if cfg.SendGridKey != "" {
		mailer = mail.NewSendGridSender(cfg.SendGridKey, cfg.MailFrom, cfg.MailFromName)
	} else {
		log.Println("SENDGRID_API_KEY not set, reset emails will be logged instead of delivered")
		mailer = mail.LogSender{}
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, jwtService, tokenStore, mailer)
	userService := service.NewUserService(userRepo, roleRepo, cacheClient)
	tabService := service.NewTabService(tabRepo, roleRepo)
	pageService := service.NewPageService(pageRepo)
	contentService := service.NewContentService(pageRepo, tabRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	tabHandler := handler.NewTabHandler(tabService)
	pageHandler := handler.NewPageHandler(pageService)
	contentHandler := handler.NewContentHandler(contentService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		tabHandler,
		pageHandler,
		contentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
