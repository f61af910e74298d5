package usecase

import (
	"fmt"

	authdomain "moviehub-backend/internal/auth/domain"
	"moviehub-backend/internal/auth/repository"
)

// watchlistUsecase implements WatchlistUsecase interface
type watchlistUsecase struct {
	userRepo repository.UserRepository
}

// NewWatchlistUsecase creates a new instance of watchlistUsecase
func NewWatchlistUsecase(userRepo repository.UserRepository) WatchlistUsecase {
	return &watchlistUsecase{
		userRepo: userRepo,
	}
}

func (u *watchlistUsecase) AddWatched(email, movieID string, rating *float64) error {
	user, err := u.resolveUser(email)
	if err != nil {
		return err
	}

	for _, movie := range user.WatchedMovies {
		if movie.MovieID == movieID {
			return ErrMovieAlreadyListed
		}
	}

	user.WatchedMovies = append(user.WatchedMovies, authdomain.WatchedMovie{
		UserID:  user.ID,
		MovieID: movieID,
		Rating:  rating,
	})

	return u.save(user)
}

func (u *watchlistUsecase) UpdateWatchedRating(email, movieID string, rating float64) error {
	user, err := u.resolveUser(email)
	if err != nil {
		return err
	}

	for i := range user.WatchedMovies {
		if user.WatchedMovies[i].MovieID == movieID {
			user.WatchedMovies[i].Rating = &rating
			return u.save(user)
		}
	}

	return ErrMovieNotListed
}

func (u *watchlistUsecase) RemoveWatched(email, movieID string) error {
	user, err := u.resolveUser(email)
	if err != nil {
		return err
	}

	for i := range user.WatchedMovies {
		if user.WatchedMovies[i].MovieID == movieID {
			user.WatchedMovies = append(user.WatchedMovies[:i], user.WatchedMovies[i+1:]...)
			return u.save(user)
		}
	}

	return ErrMovieNotListed
}

func (u *watchlistUsecase) AddWatchLater(email, movieID string) error {
	user, err := u.resolveUser(email)
	if err != nil {
		return err
	}

	for _, movie := range user.WatchLaterMovies {
		if movie.MovieID == movieID {
			return ErrMovieAlreadyListed
		}
	}

	user.WatchLaterMovies = append(user.WatchLaterMovies, authdomain.WatchLaterMovie{
		UserID:  user.ID,
		MovieID: movieID,
	})

	return u.save(user)
}

func (u *watchlistUsecase) RemoveWatchLater(email, movieID string) error {
	user, err := u.resolveUser(email)
	if err != nil {
		return err
	}

	for i := range user.WatchLaterMovies {
		if user.WatchLaterMovies[i].MovieID == movieID {
			user.WatchLaterMovies = append(user.WatchLaterMovies[:i], user.WatchLaterMovies[i+1:]...)
			return u.save(user)
		}
	}

	return ErrMovieNotListed
}

// WatchedMovieIDs returns the watched list ids, ratings dropped. Pure
// projection, never mutates.
func (u *watchlistUsecase) WatchedMovieIDs(email string) ([]string, error) {
	user, err := u.resolveUser(email)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(user.WatchedMovies))
	for _, movie := range user.WatchedMovies {
		ids = append(ids, movie.MovieID)
	}
	return ids, nil
}

// WatchLaterMovieIDs returns the watch-later list ids. Pure projection, never
// mutates.
func (u *watchlistUsecase) WatchLaterMovieIDs(email string) ([]string, error) {
	user, err := u.resolveUser(email)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(user.WatchLaterMovies))
	for _, movie := range user.WatchLaterMovies {
		ids = append(ids, movie.MovieID)
	}
	return ids, nil
}

func (u *watchlistUsecase) resolveUser(email string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByEmail(authdomain.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *watchlistUsecase) save(user *authdomain.User) error {
	if err := u.userRepo.Save(user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}
