package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/expensemcp/expense_mcp_app/internal/core/services"
	"github.com/expensemcp/expense_mcp_app/internal/handlers"
	"github.com/expensemcp/expense_mcp_app/internal/middleware"
	"github.com/expensemcp/expense_mcp_app/internal/repositories/database/pgsql"
	"github.com/expensemcp/expense_mcp_app/internal/splitwise"
	"github.com/expensemcp/expense_mcp_app/pkg/config"
	"github.com/expensemcp/expense_mcp_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	handlers.RegisterRoutes(r, buildServices(dbPool, cfg))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires the repositories and the Splitwise client into the
// service container the tool dispatcher consumes.
func buildServices(dbPool *pgxpool.Pool, cfg *config.Config) services.ServicesContainer {
	repos := pgsql.NewRepositoryProvider(dbPool)

	var clientOpts []splitwise.Option
	if cfg.SplitwiseBaseURL != "" {
		clientOpts = append(clientOpts, splitwise.WithBaseURL(cfg.SplitwiseBaseURL))
	}
	gateway := splitwise.NewClient(cfg.SplitwiseAPIKey, clientOpts...)

	return services.ServicesContainer{
		Transaction: services.NewTransactionService(repos.AccountRepo, repos.TransactionRepo),
		Summary:     services.NewSummaryService(repos.TransactionRepo),
		Budget:      services.NewBudgetService(repos.BudgetRepo, repos.TransactionRepo),
		Category:    services.NewCategoryService(repos.CategoryRepo),
		Recurring:   services.NewRecurringService(repos.RecurringRepo),
		Sharing:     services.NewSharingService(gateway),
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
