package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/studyhub-dev/studyhub/internal/api"
	"github.com/studyhub-dev/studyhub/internal/api/handlers"
	"github.com/studyhub-dev/studyhub/internal/config"
	"github.com/studyhub-dev/studyhub/internal/repositories"
	"github.com/studyhub-dev/studyhub/internal/storage"
	"github.com/studyhub-dev/studyhub/internal/uploads"
)

// @title StudyHub API
// @version 1.0
// @description User accounts and PDF course-material uploads.
// @BasePath /
func main() {
	cfg := config.Load()

	db, err := repositories.Connect(cfg.DBURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var blobs storage.BlobStorage
	if cfg.StorageBackend == "s3" {
		blobs = storage.NewS3Storage(cfg.S3)
	} else {
		local, err := storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			log.Fatal("Failed to create upload directory:", err)
		}
		blobs = local
	}

	h := handlers.New(
		repositories.NewGormUserRepository(db),
		repositories.NewGormMaterialRepository(db),
		uploads.NewReceiver(blobs),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(h, cfg.UploadDir, cfg.CorsConfig),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting StudyHub server on port: %s", cfg.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
	}
}
