package main

import (
	"flag"
	"log"

	"github.com/mestakip/tiretrack/internal/config"
	"github.com/mestakip/tiretrack/internal/user/domain"
	"github.com/mestakip/tiretrack/internal/user/repository"
	"github.com/mestakip/tiretrack/pkg/auth"
	"github.com/mestakip/tiretrack/pkg/database"
)

// Creates the initial admin account. Safe to run repeatedly: an existing
// username is left untouched.
func main() {
	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "admin@tiretrack.local", "admin email")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("password is required: -password <value>")
	}

	cfg := config.Load()
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := repository.NewGormUserRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if existing, err := repo.FindByUsername(*username); err == nil && existing != nil {
		log.Printf("User %q already exists, nothing to do", *username)
		return
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &domain.User{
		Username:    *username,
		Email:       *email,
		Password:    hashed,
		Role:        domain.RoleAdmin,
		Status:      domain.StatusActive,
		IsSuperuser: true,
	}
	if err := repo.Create(admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("Admin %q created with id %d", admin.Username, admin.ID)
}
