package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/inventory_ledger_app/internal/adapters/database/sqlite"
	"github.com/SscSPs/inventory_ledger_app/internal/adapters/storage/file"
	"github.com/SscSPs/inventory_ledger_app/internal/adapters/storage/memory"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/inventory_ledger_app/internal/core/services"
	"github.com/SscSPs/inventory_ledger_app/internal/handlers"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/SscSPs/inventory_ledger_app/internal/platform/config"
	"github.com/SscSPs/inventory_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Inventory Ledger API
// @version 1.0
// @description Inventory, sales and credit tracking for a small retail shop.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires the server and blocks until it stops. Storage is released on every
// return path.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	repo, closeRepo, err := openStateRepository(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.StorageDriver, err)
	}
	defer closeRepo()

	store := services.NewStateContainer(repo)
	if err := store.Load(ctx); err != nil {
		return err
	}

	serviceContainer := services.NewServiceContainer(cfg, store)
	if err := services.Bootstrap(ctx, store, serviceContainer, services.BootstrapOptions{
		AdminPassword: cfg.SeedAdminPassword,
		SampleData:    cfg.SeedSampleData,
	}); err != nil {
		return fmt.Errorf("bootstrap ledger: %w", err)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		return fmt.Errorf("register routes: %w", err)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
	return r.Run(":" + cfg.Port)
}

// openStateRepository opens the configured ledger storage. The returned func
// releases whatever connection the driver holds.
func openStateRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.StateRepositoryFacade, func(), error) {
	noop := func() {}

	switch cfg.StorageDriver {
	case config.StorageMemory:
		return memory.NewStateRepository(), noop, nil

	case config.StorageFile:
		logger.Info("Using file storage", slog.String("path", cfg.StateFilePath))
		return file.NewOSStateRepository(cfg.StateFilePath), noop, nil

	case config.StorageSQLite:
		db, err := database.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		repo, err := sqlite.NewStateRepository(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		logger.Info("Using sqlite storage", slog.String("path", cfg.SQLitePath))
		return repo, func() { _ = db.Close() }, nil

	case config.StoragePostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("Database connection pool established.")

		if err := runMigrations(cfg, logger); err != nil {
			database.ClosePgxPool(dbPool)
			return nil, noop, err
		}
		return pgsql.NewRepositoryProvider(dbPool).StateRepo, func() { database.ClosePgxPool(dbPool) }, nil
	}
	return nil, noop, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
}

// runMigrations applies the postgres migrations found under cfg.MigrationsPath.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", upErr)
	}

	// Check for dirty migrations after running Up.
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
