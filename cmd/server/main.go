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

	"github.com/ayushjpeg/Gym/internal/api"
	"github.com/ayushjpeg/Gym/internal/config"
	"github.com/ayushjpeg/Gym/internal/repository/mongo"
	"github.com/ayushjpeg/Gym/internal/service"
	"github.com/ayushjpeg/Gym/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Gym Planner Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureHistoryIndexes(ctx, appDB); err != nil {
			log.Printf("WARN: Failed to create history indexes: %v", err)
		}
	}()

	// --- Initialize Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		log.Println("Initializing file storage service...")
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Println("No S3 bucket configured; video endpoints disabled.")
	}

	// --- Initialize Repositories ---
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	historyRepo := mongo.NewMongoHistoryRepository(appDB)
	assignmentRepo := mongo.NewMongoAssignmentRepository(appDB)
	targetRepo := mongo.NewMongoTargetRepository(appDB)

	// --- Seed Defaults ---
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := service.EnsureSeedData(seedCtx, exerciseRepo, assignmentRepo, targetRepo); err != nil {
		seedCancel()
		log.Fatalf("FATAL: Failed to seed default data: %v", err)
	}
	seedCancel()

	// --- Initialize Services ---
	exerciseService := service.NewExerciseService(exerciseRepo, assignmentRepo, fileStorage)
	historyService := service.NewHistoryService(historyRepo, exerciseRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo, exerciseRepo)
	plannerService := service.NewPlannerService(exerciseRepo, historyRepo, assignmentRepo, targetRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default()

	// --- Setup Routes ---
	api.SetupRoutes(router, cfg.API.Key, exerciseService, historyService, assignmentService, plannerService)

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
