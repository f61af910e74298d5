package usecase

import "errors"

var (
	// ErrUserNotFound indicates the email resolved to no user. Checked before
	// any list inspection.
	ErrUserNotFound = errors.New("user not found")
	// ErrMovieAlreadyListed indicates an add for a movie id already present in
	// the target list.
	ErrMovieAlreadyListed = errors.New("movie already in list")
	// ErrMovieNotListed indicates an update or remove for a movie id absent
	// from the target list. Distinct from ErrUserNotFound.
	ErrMovieNotListed = errors.New("movie not in list")
)

// WatchlistUsecase owns the per-user list mutations and their read-only
// projections. Every operation resolves the user by normalized email, mutates
// an in-memory copy of the record and persists it whole on success; failed
// operations never mutate stored state.
type WatchlistUsecase interface {
	AddWatched(email, movieID string, rating *float64) error
	UpdateWatchedRating(email, movieID string, rating float64) error
	RemoveWatched(email, movieID string) error
	AddWatchLater(email, movieID string) error
	RemoveWatchLater(email, movieID string) error
	WatchedMovieIDs(email string) ([]string, error)
	WatchLaterMovieIDs(email string) ([]string, error)
}
