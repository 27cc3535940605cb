package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"noteboard-be/internal/bootstrap"
	"noteboard-be/internal/config"
	"noteboard-be/internal/pkg/logger"
	"noteboard-be/internal/repository/memory"
	"noteboard-be/internal/repository/unitofwork"
	"noteboard-be/internal/server"
	"noteboard-be/internal/tracer"
	"noteboard-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer := tracer.InitTracer(ctx, cfg.Tracing, sysLogger)
	defer shutdownTracer(context.Background())

	// 2. Initialize Storage
	uowFactory, err := newRepositoryFactory(cfg, sysLogger)
	if err != nil {
		sysLogger.Error("Main", "Unable to initialize storage", map[string]interface{}{"error": err})
		sysLogger.Sync()
		os.Exit(1)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(ctx, cfg, uowFactory, sysLogger)
	defer container.Close()

	// 4. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		sysLogger.Warn("Main", "Audit consumer not started", map[string]interface{}{"error": err.Error()})
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			sysLogger.Error("Main", "Server shutdown failed", map[string]interface{}{"error": err})
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		sysLogger.Error("Main", "Server stopped", map[string]interface{}{"error": err})
	}
}

func newRepositoryFactory(cfg *config.Config, log logger.ILogger) (unitofwork.RepositoryFactory, error) {
	if cfg.Database.Driver == config.DriverMemory {
		log.Warn("Main", "Using in-memory storage, data is lost on restart", nil)
		return memory.NewRepositoryFactory(memory.NewStore()), nil
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsDevelopment())
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return nil, err
		}
	}
	return unitofwork.NewRepositoryFactory(db), nil
}
