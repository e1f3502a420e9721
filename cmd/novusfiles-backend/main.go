package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"novusfiles-backend/internal/config"
	"novusfiles-backend/internal/features/files"
	users_models "novusfiles-backend/internal/features/users/models"
	"novusfiles-backend/internal/server"
	"novusfiles-backend/internal/storage"
	"novusfiles-backend/internal/util/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	env := config.GetEnv()
	log := logger.GetLogger()

	if os.Getenv("JWT_SECRET") == "" {
		log.Warn("JWT_SECRET is not set, using the insecure development default")
	}

	if err := storage.Migrate(
		&users_models.User{},
		&files.FileRecord{},
	); err != nil {
		log.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(env.UploadDir, 0o755); err != nil {
		log.Error("Failed to create upload directory", "path", env.UploadDir, "error", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter()

	httpServer := &http.Server{
		Addr:              ":" + env.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting NovusFiles backend", "port", env.Port, "database", env.DatabaseType)

		if err := httpServer.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", "error", err)
	}
}
