package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"tropicalbs/internal/config"
	"tropicalbs/internal/db"
	"tropicalbs/internal/model"
	"tropicalbs/internal/repository"
)

var seedRoles = []string{model.DefaultRoleName, "admin"}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Role{}, &model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	for _, name := range seedRoles {
		if _, err := roleRepo.EnsureExists(ctx, name); err != nil {
			log.Fatalf("Failed to seed role %q: %v", name, err)
		}
		log.Printf("Role %q present", name)
	}

	adminEmail := strings.ToLower(os.Getenv("ADMIN_EMAIL"))
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	if _, err := userRepo.FindByEmail(ctx, adminEmail); err == nil {
		log.Printf("Admin account %s already exists, nothing to do", adminEmail)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to look up admin account: %v", err)
	}

	admin := &model.User{
		Email:       adminEmail,
		Password:    adminPassword,
		DisplayName: "Administrator",
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	roles, err := roleRepo.FindMatching(ctx, repository.AnyOfNames(seedRoles))
	if err != nil {
		log.Fatalf("Failed to resolve seed roles: %v", err)
	}
	if err := userRepo.ReplaceRoles(ctx, admin, roles); err != nil {
		log.Fatalf("Failed to assign admin roles: %v", err)
	}

	log.Printf("Seeded admin account %s with roles %v", adminEmail, seedRoles)
}
