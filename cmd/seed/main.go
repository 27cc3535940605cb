package main

import (
	"context"
	"flag"
	"log"
	"os"

	"noteboard-be/internal/config"
	"noteboard-be/internal/entity"
	"noteboard-be/internal/pkg/security"
	"noteboard-be/internal/repository/specification"
	"noteboard-be/internal/repository/unitofwork"
	"noteboard-be/pkg/database"

	"github.com/fatih/color"
)

type seedUser struct {
	username string
	password string
	role     string
	legacy   bool
}

func main() {
	adminPassword := flag.String("admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "password for the seeded admin account")
	withLegacy := flag.Bool("legacy-demo", false, "also seed a user whose password is stored unhashed")
	flag.Parse()

	if *adminPassword == "" {
		color.Red("Error: -admin-password or SEED_ADMIN_PASSWORD is required")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		color.Yellow("DB_DRIVER is %q, nothing to seed", cfg.Database.Driver)
		return
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	users := []seedUser{{username: "admin", password: *adminPassword, role: entity.UserRoleAdmin}}
	if *withLegacy {
		users = append(users, seedUser{username: "legacy-demo", password: "legacy-demo", role: entity.UserRoleUser, legacy: true})
	}

	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	factory := unitofwork.NewRepositoryFactory(db)

	color.Cyan("Seeding users...")
	for _, u := range users {
		if err := seed(context.Background(), factory, hasher, u); err != nil {
			color.Red("Error seeding '%s': %v", u.username, err)
			continue
		}
	}
	color.Green("User seeding completed!")
}

func seed(ctx context.Context, factory unitofwork.RepositoryFactory, hasher security.PasswordHasher, u seedUser) error {
	repo := factory.NewUnitOfWork(ctx).UserRepository()

	existing, err := repo.FindOne(ctx, specification.ByUsername{Username: u.username})
	if err != nil {
		return err
	}
	if existing != nil {
		color.Yellow("User '%s' already exists, skipping...", u.username)
		return nil
	}

	stored := u.password
	if !u.legacy {
		if stored, err = hasher.Hash(u.password); err != nil {
			return err
		}
	}

	if err := repo.Create(ctx, &entity.User{Username: u.username, PasswordHash: stored, Role: u.role}); err != nil {
		return err
	}
	color.Green("Created user: %s (%s)", u.username, u.role)
	return nil
}
