package main

import (
	"context"
	"log"

	api "moviehub-backend/cmd/api"
	authdomain "moviehub-backend/internal/auth/domain"
	authRepo "moviehub-backend/internal/auth/repository"
	authUsecase "moviehub-backend/internal/auth/usecase"
	watchlistUsecase "moviehub-backend/internal/watchlist/usecase"
	"moviehub-backend/pkg/config"
	"moviehub-backend/pkg/database"
	"moviehub-backend/pkg/redisclient"
	"moviehub-backend/pkg/session"
	"moviehub-backend/pkg/snapshot"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.WatchedMovie{}, &authdomain.WatchLaterMovie{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis (optional). Without it the session marker is disabled
	// and snapshots fall back to flat files.
	var sessions *session.Store
	var snapshots snapshot.Writer = snapshot.NewFileWriter(cfg.SnapshotDir)
	if cfg.RedisAddr != "" {
		rdb, err := redisclient.New(context.Background(), cfg)
		if err != nil {
			log.Printf("[WARN] Redis unavailable, session markers disabled: %v", err)
		} else {
			sessions = session.NewStore(rdb, cfg.SessionTTL)
			if cfg.SnapshotBackend == "redis" {
				snapshots = snapshot.NewRedisWriter(rdb)
			}
		}
	}

	// Initialize repositories and use cases (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	watchlistUsecaseInstance := watchlistUsecase.NewWatchlistUsecase(userRepo)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, watchlistUsecaseInstance, sessions, snapshots)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
