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

func main() {
	username := flag.String("username", "", "username (required)")
	email := flag.String("email", "", "email (required)")
	password := flag.String("password", "", "password (required)")
	role := flag.String("role", domain.RoleOperator, "role: admin, manager or operator")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		log.Fatal("username, email and password are required")
	}
	if !domain.ValidRole(*role) {
		log.Fatalf("Invalid role %q", *role)
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

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &domain.User{
		Username: *username,
		Email:    *email,
		Password: hashed,
		Role:     *role,
		Status:   domain.StatusActive,
	}
	if err := repo.Create(user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	log.Printf("User %q created with id %d", user.Username, user.ID)
}
