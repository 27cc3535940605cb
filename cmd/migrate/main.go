package main

import (
	"os"

	"noteboard-be/internal/config"
	"noteboard-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		color.Yellow("DB_DRIVER is %q, nothing to migrate", cfg.Database.Driver)
		return
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, true)
	if err != nil {
		color.Red("Error: failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Running AutoMigrate for %d tables...", len(database.Models()))
	if err := database.AutoMigrate(db); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	color.Green("Success: database migration completed")
}
