package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"trainingms/training-api/internal/api"
	"trainingms/training-api/internal/config"
	"trainingms/training-api/internal/repository/postgres"
	"trainingms/training-api/internal/service"
)

func main() {
	log.Println("Starting Training Management API...")

	// Measurements serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Migrations ---
	log.Println("Applying database migrations...")
	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 1*time.Minute)
	if err := postgres.RunMigrations(migrateCtx, cfg.Database.URL); err != nil {
		migrateCancel()
		log.Fatalf("FATAL: Could not apply migrations: %v", err)
	}
	migrateCancel()
	log.Println("Migrations applied.")

	// --- Database Connection ---
	pool, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to PostgreSQL: %v", err)
	}
	defer func() {
		log.Println("Closing database pool...")
		pool.Close()
	}()
	log.Println("Database connection established.")

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	traineeRepo := postgres.NewTraineeRepository(pool)
	goalRepo := postgres.NewGoalRepository(pool)
	moduleRepo := postgres.NewModuleRepository(pool)
	evaluationRepo := postgres.NewEvaluationRepository(pool)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	traineeService := service.NewTraineeService(traineeRepo)
	goalService := service.NewGoalService(goalRepo, traineeRepo)
	moduleService := service.NewModuleService(moduleRepo, goalRepo)
	evaluationService := service.NewEvaluationService(evaluationRepo, traineeRepo)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, traineeService, goalService, moduleService, evaluationService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
