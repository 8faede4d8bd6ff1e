package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/pageza/fittrack/backend/config"
	"github.com/pageza/fittrack/backend/internal/database"
	"github.com/pageza/fittrack/backend/internal/server"
	"github.com/pageza/fittrack/backend/internal/service"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	deps := server.Dependencies{DB: db}

	// Redis backs caching, search sessions and rate limiting; the bot still
	// works without it outside production.
	var redisClient *redis.Client
	if cfg.RedisHost != "" || cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			if config.IsProduction() {
				log.Fatalf("Failed to connect to Redis: %v", err)
			}
			log.Printf("Continuing without Redis: %v", err)
			redisClient = nil
		}
	}
	if redisClient != nil {
		defer redisClient.Close()
		deps.Redis = redisClient
	}

	if cfg.Storage.ReportsEnabled() {
		s3Config, err := config.NewS3Config(ctx, cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		deps.Archive = service.NewS3ReportArchive(s3Config)
		log.Printf("Weekly reports will be archived to bucket %s", s3Config.BucketName)
	}

	// Create and start server
	srv, err := server.New(cfg, deps)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
