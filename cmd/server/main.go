package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sales-analytics/internal/config"
	"sales-analytics/internal/database"
	"sales-analytics/internal/handlers"
	"sales-analytics/internal/middleware"
	"sales-analytics/internal/repositories"
	"sales-analytics/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	seedDB := flag.Bool("seed-db", false, "fetch the remote product transaction fixture into the database before serving")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogging(cfg)

	// Plain sql connection for the migration runner; gorm opens its own pool.
	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		slog.Error("Failed to open database for migrations", "error", err)
		os.Exit(1)
	}
	if err := database.RunMigrationsIfEnabled(sqlDB); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	if err := sqlDB.Close(); err != nil {
		slog.Warn("Failed to close migration connection", "error", err)
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	transactionRepo := repositories.NewTransactionRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	listingService := services.NewListingService(transactionRepo)
	statisticsService := services.NewStatisticsService(transactionRepo)
	priceRangeService := services.NewPriceRangeService(transactionRepo)
	categoryService := services.NewCategoryAnalyticsService(transactionRepo)
	reportService := services.NewReportService(statisticsService, priceRangeService, categoryService, metrics)
	seedService := services.NewSeedService(transactionRepo, cfg.Seed, metrics)

	if *seedDB {
		count, err := seedService.Initialize(context.Background())
		if err != nil {
			slog.Error("Database seeding failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database seeding finished", "inserted", count)
	}

	transactionHandler := handlers.NewTransactionHandler(listingService)
	analyticsHandler := handlers.NewAnalyticsHandler(statisticsService, priceRangeService, categoryService, reportService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst))
	e.Use(middleware.Metrics(metrics))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	// The month path segment is optional on the listing route only.
	e.GET("/transactions", transactionHandler.ListTransactions)
	e.GET("/transactions/:month", transactionHandler.ListTransactions, middleware.ValidateMonth())
	e.GET("/statistics/:month", analyticsHandler.Statistics, middleware.ValidateMonth())
	e.GET("/priceRanges/:month", analyticsHandler.PriceRanges, middleware.ValidateMonth())
	e.GET("/categories/:month", analyticsHandler.Categories, middleware.ValidateMonth())
	e.GET("/completeAnalysis/:month", analyticsHandler.CompleteAnalysis, middleware.ValidateMonth())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("Starting analytics server", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped gracefully")
}

func setupLogging(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
