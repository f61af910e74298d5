package api

import (
	"net/http"

	"moviehub-backend/internal/auth/delivery"
	authUsecase "moviehub-backend/internal/auth/usecase"
	watchlistDelivery "moviehub-backend/internal/watchlist/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, authHandler *delivery.AuthHandler, watchlistHandler *watchlistDelivery.WatchlistHandler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// List routes (protected)
		users := api.Group("/users")
		users.Use(delivery.AuthMiddleware(authUc))
		{
			users.POST("/watched", watchlistHandler.AddWatched)
			users.PUT("/watched", watchlistHandler.UpdateWatchedRating)
			users.DELETE("/watched", watchlistHandler.RemoveWatched)
			users.POST("/watchLater", watchlistHandler.AddWatchLater)
			users.DELETE("/watchLater", watchlistHandler.RemoveWatchLater)
			users.POST("/saveWatchedMovies", watchlistHandler.SaveWatchedMovies)
			users.POST("/saveWatchLaterMovies", watchlistHandler.SaveWatchLaterMovies)
		}
	}
}
