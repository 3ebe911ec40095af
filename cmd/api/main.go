package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"govariate/adapters/httpapi"
	"govariate/adapters/postgres"
	"govariate/app"
	"govariate/internal/config"
	"govariate/internal/errors"
	"govariate/internal/migration"
	"govariate/internal/testkit"
	"govariate/ports"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	// Run migrations
	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure the run ledger
	var ledger ports.RunLedgerPort
	if appConfig.Database.URL != "" {
		db, err := initDatabase(appConfig)
		if err != nil {
			log.Fatal("Failed to initialize database:", err)
		}
		defer db.Close()
		ledger = postgres.NewRunRepository(db)
		log.Println("Using PostgreSQL run ledger")
	} else {
		log.Println("No DATABASE_URL configured, using in-memory run ledger")
		kit, err := testkit.NewTestKit()
		if err != nil {
			log.Fatalf("Failed to initialize in-memory ledger: %v", err)
		}
		ledger = kit.LedgerAdapter()
	}

	// Wire the draw service and HTTP API
	drawService := app.NewDrawService(ledger, app.DrawLimits{
		MaxCount:     appConfig.Draw.MaxCount,
		DefaultCount: appConfig.Draw.DefaultCount,
		BatchWorkers: appConfig.Draw.BatchWorkers,
	})
	server := httpapi.NewServer(drawService, ledger)

	srv := &http.Server{
		Addr:         ":" + appConfig.Server.Port,
		Handler:      server.Handler(),
		ReadTimeout:  appConfig.Server.ReadTimeout,
		WriteTimeout: appConfig.Server.WriteTimeout,
	}

	// Shut down cleanly on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown failed: %v", err)
		}
	}()

	// Start the server
	log.Printf("🚀 Starting govariate API server on port %s", appConfig.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
