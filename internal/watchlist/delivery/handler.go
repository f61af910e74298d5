package delivery

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	watchlistdto "moviehub-backend/internal/watchlist/dto"
	"moviehub-backend/internal/watchlist/usecase"
	"moviehub-backend/pkg/snapshot"

	"github.com/gin-gonic/gin"
)

// WatchlistHandler handles watched/watch-later list requests
type WatchlistHandler struct {
	watchlistUsecase usecase.WatchlistUsecase
	snapshots        snapshot.Writer
}

// NewWatchlistHandler creates a new WatchlistHandler
func NewWatchlistHandler(watchlistUsecase usecase.WatchlistUsecase, snapshots snapshot.Writer) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistUsecase: watchlistUsecase,
		snapshots:        snapshots,
	}
}

// AddWatched adds a movie id, with an optional rating, to the watched list
// POST /api/users/watched
func (h *WatchlistHandler) AddWatched(c *gin.Context) {
	var req watchlistdto.AddWatchedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.watchlistUsecase.AddWatched(req.Email, req.MovieID, req.Rating); err != nil {
		h.respondError(c, err, "watched")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "movie added to watched list",
	})
}

// UpdateWatchedRating sets the rating of an already-watched movie
// PUT /api/users/watched
func (h *WatchlistHandler) UpdateWatchedRating(c *gin.Context) {
	var req watchlistdto.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.watchlistUsecase.UpdateWatchedRating(req.Email, req.MovieID, *req.Rating); err != nil {
		h.respondError(c, err, "watched")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "rating updated",
	})
}

// RemoveWatched deletes a movie from the watched list
// DELETE /api/users/watched
func (h *WatchlistHandler) RemoveWatched(c *gin.Context) {
	var req watchlistdto.RemoveMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.watchlistUsecase.RemoveWatched(req.Email, req.MovieID); err != nil {
		h.respondError(c, err, "watched")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "movie removed from watched list",
	})
}

// AddWatchLater adds a movie id to the watch-later list
// POST /api/users/watchLater
func (h *WatchlistHandler) AddWatchLater(c *gin.Context) {
	var req watchlistdto.AddWatchLaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.watchlistUsecase.AddWatchLater(req.Email, req.MovieID); err != nil {
		h.respondError(c, err, "watch later")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "movie added to watch later list",
	})
}

// RemoveWatchLater deletes a movie from the watch-later list
// DELETE /api/users/watchLater
func (h *WatchlistHandler) RemoveWatchLater(c *gin.Context) {
	var req watchlistdto.RemoveMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.watchlistUsecase.RemoveWatchLater(req.Email, req.MovieID); err != nil {
		h.respondError(c, err, "watch later")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "movie removed from watch later list",
	})
}

// SaveWatchedMovies snapshots the watched list ids for the user
// POST /api/users/saveWatchedMovies
func (h *WatchlistHandler) SaveWatchedMovies(c *gin.Context) {
	h.saveSnapshot(c, "watched", h.watchlistUsecase.WatchedMovieIDs)
}

// SaveWatchLaterMovies snapshots the watch-later list ids for the user
// POST /api/users/saveWatchLaterMovies
func (h *WatchlistHandler) SaveWatchLaterMovies(c *gin.Context) {
	h.saveSnapshot(c, "watchLater", h.watchlistUsecase.WatchLaterMovieIDs)
}

func (h *WatchlistHandler) saveSnapshot(c *gin.Context, listName string, export func(string) ([]string, error)) {
	var req watchlistdto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movieIDs, err := export(req.Email)
	if err != nil {
		h.respondError(c, err, listName)
		return
	}

	key := fmt.Sprintf("%s-%s", req.Email, listName)
	if err := h.snapshots.Write(c.Request.Context(), key, movieIDs); err != nil {
		log.Printf("[ERROR] failed to write snapshot %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("%s movie ids saved", listName),
		"data":    movieIDs,
	})
}

func (h *WatchlistHandler) respondError(c *gin.Context, err error, listName string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, usecase.ErrMovieAlreadyListed):
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("movie already exists in the %s list", listName)})
	case errors.Is(err, usecase.ErrMovieNotListed):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("movie not found in the %s list", listName)})
	default:
		log.Printf("[ERROR] watchlist operation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
