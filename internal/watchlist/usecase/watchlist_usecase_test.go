package usecase

import (
	"testing"

	authdomain "moviehub-backend/internal/auth/domain"
	"moviehub-backend/internal/auth/repository"

	"github.com/stretchr/testify/require"
)

func newTestUsecase(t *testing.T) (WatchlistUsecase, repository.UserRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	err := repo.Create(&authdomain.User{
		Email:    "user@example.com",
		Password: "irrelevant-hash",
	})
	require.NoError(t, err)
	return NewWatchlistUsecase(repo), repo
}

func ratingOf(v float64) *float64 { return &v }

func TestAddWatchedDuplicate(t *testing.T) {
	uc, repo := newTestUsecase(t)

	require.NoError(t, uc.AddWatched("user@example.com", "movie-1", ratingOf(8)))
	err := uc.AddWatched("user@example.com", "movie-1", ratingOf(5))
	require.ErrorIs(t, err, ErrMovieAlreadyListed)

	user, err := repo.FindByEmail("user@example.com")
	require.NoError(t, err)
	require.Len(t, user.WatchedMovies, 1)
	require.Equal(t, "movie-1", user.WatchedMovies[0].MovieID)
	require.Equal(t, 8.0, *user.WatchedMovies[0].Rating)
}

func TestAddWatchedWithoutRating(t *testing.T) {
	uc, repo := newTestUsecase(t)

	require.NoError(t, uc.AddWatched("user@example.com", "movie-1", nil))

	user, err := repo.FindByEmail("user@example.com")
	require.NoError(t, err)
	require.Len(t, user.WatchedMovies, 1)
	require.Nil(t, user.WatchedMovies[0].Rating)
}

func TestUpdateWatchedRating(t *testing.T) {
	uc, repo := newTestUsecase(t)

	require.NoError(t, uc.AddWatched("user@example.com", "movie-1", ratingOf(3)))
	require.NoError(t, uc.AddWatched("user@example.com", "movie-2", ratingOf(7)))
	require.NoError(t, uc.AddWatchLater("user@example.com", "movie-3"))

	require.NoError(t, uc.UpdateWatchedRating("user@example.com", "movie-1", 9))

	// Only the targeted entry changes.
	user, err := repo.FindByEmail("user@example.com")
	require.NoError(t, err)
	require.Len(t, user.WatchedMovies, 2)
	for _, movie := range user.WatchedMovies {
		switch movie.MovieID {
		case "movie-1":
			require.Equal(t, 9.0, *movie.Rating)
		case "movie-2":
			require.Equal(t, 7.0, *movie.Rating)
		}
	}
	require.Len(t, user.WatchLaterMovies, 1)
	require.Equal(t, "movie-3", user.WatchLaterMovies[0].MovieID)
}

func TestUpdateWatchedRatingAbsent(t *testing.T) {
	uc, _ := newTestUsecase(t)

	err := uc.UpdateWatchedRating("user@example.com", "missing", 5)
	require.ErrorIs(t, err, ErrMovieNotListed)
}

func TestRemoveWatched(t *testing.T) {
	uc, repo := newTestUsecase(t)

	require.NoError(t, uc.AddWatched("user@example.com", "movie-1", nil))
	require.NoError(t, uc.AddWatched("user@example.com", "movie-2", nil))

	require.NoError(t, uc.RemoveWatched("user@example.com", "movie-1"))

	user, err := repo.FindByEmail("user@example.com")
	require.NoError(t, err)
	require.Len(t, user.WatchedMovies, 1)
	require.Equal(t, "movie-2", user.WatchedMovies[0].MovieID)

	err = uc.RemoveWatched("user@example.com", "movie-1")
	require.ErrorIs(t, err, ErrMovieNotListed)
}

func TestAddWatchLaterDuplicate(t *testing.T) {
	uc, repo := newTestUsecase(t)

	require.NoError(t, uc.AddWatchLater("user@example.com", "movie-1"))
	err := uc.AddWatchLater("user@example.com", "movie-1")
	require.ErrorIs(t, err, ErrMovieAlreadyListed)

	user, err := repo.FindByEmail("user@example.com")
	require.NoError(t, err)
	require.Len(t, user.WatchLaterMovies, 1)
}

func TestRemoveWatchLaterAbsent(t *testing.T) {
	uc, repo := newTestUsecase(t)

	require.NoError(t, uc.AddWatchLater("user@example.com", "movie-1"))

	err := uc.RemoveWatchLater("user@example.com", "missing")
	require.ErrorIs(t, err, ErrMovieNotListed)

	// A failed remove leaves the list untouched.
	user, err := repo.FindByEmail("user@example.com")
	require.NoError(t, err)
	require.Len(t, user.WatchLaterMovies, 1)
}

func TestUserNotFoundCheckedFirst(t *testing.T) {
	uc, _ := newTestUsecase(t)

	require.ErrorIs(t, uc.AddWatched("nobody@example.com", "movie-1", nil), ErrUserNotFound)
	require.ErrorIs(t, uc.UpdateWatchedRating("nobody@example.com", "movie-1", 5), ErrUserNotFound)
	require.ErrorIs(t, uc.RemoveWatched("nobody@example.com", "movie-1"), ErrUserNotFound)
	require.ErrorIs(t, uc.AddWatchLater("nobody@example.com", "movie-1"), ErrUserNotFound)
	require.ErrorIs(t, uc.RemoveWatchLater("nobody@example.com", "movie-1"), ErrUserNotFound)

	_, err := uc.WatchedMovieIDs("nobody@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)
	_, err = uc.WatchLaterMovieIDs("nobody@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestOperationsNormalizeEmail(t *testing.T) {
	uc, _ := newTestUsecase(t)

	require.NoError(t, uc.AddWatched("User@Example.COM", "movie-1", nil))

	ids, err := uc.WatchedMovieIDs("USER@example.com")
	require.NoError(t, err)
	require.Equal(t, []string{"movie-1"}, ids)
}

func TestExportsDropRatingsAndNeverMutate(t *testing.T) {
	uc, repo := newTestUsecase(t)

	require.NoError(t, uc.AddWatched("user@example.com", "movie-1", ratingOf(8)))
	require.NoError(t, uc.AddWatched("user@example.com", "movie-2", nil))
	require.NoError(t, uc.AddWatchLater("user@example.com", "movie-3"))

	first, err := uc.WatchedMovieIDs("user@example.com")
	require.NoError(t, err)
	second, err := uc.WatchedMovieIDs("user@example.com")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, []string{"movie-1", "movie-2"}, first)

	later, err := uc.WatchLaterMovieIDs("user@example.com")
	require.NoError(t, err)
	require.Equal(t, []string{"movie-3"}, later)

	user, err := repo.FindByEmail("user@example.com")
	require.NoError(t, err)
	require.Len(t, user.WatchedMovies, 2)
	require.Equal(t, 8.0, *user.WatchedMovies[0].Rating)
}
