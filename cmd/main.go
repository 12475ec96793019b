package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"polblog-api/config"
	"polblog-api/controllers"
	"polblog-api/db"
	"polblog-api/repository"
	"polblog-api/routes"
	"polblog-api/storage"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB. A failure here is logged but not fatal: the
	// server keeps listening and requests touching the store answer 500
	// until connectivity is restored.
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelConnect()

	var blogs *mongo.Collection
	database, err := db.ConnectMongo(connectCtx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Printf("MongoDB connection error: %v", err)
	} else {
		blogs = database.Collection("blogs")
	}

	// Optional Redis cache
	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = db.NewRedisClient(db.DefaultRedisConfig(cfg.RedisURL))
		if err != nil {
			log.Printf("Redis connection error, cache disabled: %v", err)
			cache = nil
		} else {
			log.Println("Redis connection initialized successfully.")
		}
	}

	uploader := setupUploader(cfg)

	blogController := &controllers.BlogController{
		Repo:     repository.NewMongoBlogRepository(blogs, cache),
		Uploader: uploader,
	}

	// Set up routes and middlewares
	handler := routes.SetupRoutes(cfg, blogController)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    100 * time.Second,
		WriteTimeout:   100 * time.Second,
		MaxHeaderBytes: 7500,
		IdleTimeout:    120 * time.Second,
	}

	// Use a wait group to manage graceful shutdown
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()
	log.Printf("Server started on :%s", cfg.Port)

	// Wait for interrupt signal to gracefully shut down the server
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	// Create a context with a timeout for shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %+v", err)
	}

	wg.Wait() // Wait for all goroutines to finish before exiting
	log.Println("Server exited gracefully")
}

// setupUploader builds the single upload backend selected by configuration.
func setupUploader(cfg *config.Config) storage.Uploader {
	switch cfg.StorageDriver {
	case "cloudinary":
		uploader, err := storage.NewCloudinaryUploader(
			cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			log.Fatalf("Error configuring Cloudinary uploader: %v", err)
		}
		return uploader
	case "local":
		uploader, err := storage.NewLocalUploader(cfg.UploadDir, cfg.BaseURL)
		if err != nil {
			log.Fatalf("Error configuring local uploader: %v", err)
		}
		return uploader
	default:
		log.Fatalf("Unknown storage driver %q", cfg.StorageDriver)
		return nil
	}
}
