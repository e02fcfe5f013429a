package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"

	"github.com/devconnect/devconnect-api/config"
	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
	pginfra "github.com/devconnect/devconnect-api/internal/infrastructure/postgres"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// Seeds a demo account and channel for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	channels := pginfra.NewChannelRepository(pool)

	hash, err := helpers.HashPassword("password123")
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}
	demo := &entity.User{Name: "Demo User", Email: "demo@devconnect.local", Password: hash}
	if err := users.Create(ctx, demo); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			log.Println("demo user already seeded")
			return
		}
		log.Fatalf("seed user failed: %v", err)
	}

	general := &entity.Channel{
		Name:        "General",
		Description: "Default channel",
		Members:     []string{demo.ID},
		Admins:      []string{demo.ID},
	}
	if err := channels.Create(ctx, general); err != nil {
		log.Fatalf("seed channel failed: %v", err)
	}
	log.Printf("seeded user %s and channel %s", demo.ID, general.ID)
}
