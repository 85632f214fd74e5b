// Command seed inserts the three well-known accounts (one per role) into
// the users collection. Safe to re-run: existing emails are skipped.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/corporation/identity-api/internal/core/domain"
	"github.com/corporation/identity-api/internal/core/service"
	"github.com/corporation/identity-api/internal/infrastructure/config"
	mongodb "github.com/corporation/identity-api/internal/infrastructure/db/mongo"
	"github.com/corporation/identity-api/pkg/logger"
)

type seedUser struct {
	email     string
	firstName string
	lastName  string
	role      domain.Role
	password  string
}

var seedUsers = []seedUser{
	{"admin@corporation.com", "John", "Dee", domain.RoleAdmin, "Admin#2024pass"},
	{"developer@corporation.com", "Adam", "Smith", domain.RoleDeveloper, "Dev#2024pass1"},
	{"simple@corporation.com", "James", "Bond", domain.RoleSimpleMortal, "Mortal#2024p1"},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	repo := mongodb.NewUserRepository(db, cfg.Mongo.Collection)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	for _, s := range seedUsers {
		hash, err := service.HashPassword(s.password)
		if err != nil {
			log.Fatal().Err(err).Msg("hashing failed")
		}

		_, err = repo.Insert(ctx, &domain.User{
			Email:        s.email,
			FirstName:    s.firstName,
			LastName:     s.lastName,
			Role:         s.role,
			IsActive:     true,
			CreatedAt:    time.Now().UTC(),
			PasswordHash: hash,
		})
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			log.Info().Str("email", s.email).Msg("already seeded, skipping")
		case err != nil:
			log.Fatal().Err(err).Str("email", s.email).Msg("seed insert failed")
		default:
			log.Info().Str("email", s.email).Str("role", string(s.role)).Msg("seeded")
		}
	}
}
