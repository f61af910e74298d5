package api

import (
	authDelivery "moviehub-backend/internal/auth/delivery"
	authUsecasePkg "moviehub-backend/internal/auth/usecase"
	watchlistDelivery "moviehub-backend/internal/watchlist/delivery"
	watchlistUsecasePkg "moviehub-backend/internal/watchlist/usecase"
	"moviehub-backend/pkg/session"
	"moviehub-backend/pkg/snapshot"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase      authUsecasePkg.AuthUsecase
	authHandler      *authDelivery.AuthHandler
	watchlistHandler *watchlistDelivery.WatchlistHandler
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, watchlistUc watchlistUsecasePkg.WatchlistUsecase, sessions *session.Store, snapshots snapshot.Writer) *Handler {
	return &Handler{
		authUsecase:      authUc,
		authHandler:      authDelivery.NewAuthHandler(authUc, sessions),
		watchlistHandler: watchlistDelivery.NewWatchlistHandler(watchlistUc, snapshots),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.authHandler, h.watchlistHandler)

	return r.Run(addr)
}
