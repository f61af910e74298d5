package domain

import (
	"strings"
	"time"
)

type User struct {
	ID               string            `json:"id" gorm:"primaryKey"`
	Email            string            `json:"email" gorm:"uniqueIndex;not null"`
	Password         string            `json:"-" gorm:"not null"` // Never return password hash in JSON
	WatchedMovies    []WatchedMovie    `json:"watched_movies" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	WatchLaterMovies []WatchLaterMovie `json:"watch_later_movies" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// WatchedMovie is one entry of a user's watched list. At most one row exists
// per (user, movie); the rating is optional and has no existence outside the
// entry it belongs to.
type WatchedMovie struct {
	UserID  string   `json:"-" gorm:"primaryKey"`
	MovieID string   `json:"movie_id" gorm:"primaryKey"`
	Rating  *float64 `json:"rating,omitempty"`
}

// WatchLaterMovie is one entry of a user's watch-later list, unique per
// (user, movie). Movie ids are opaque strings, never validated against a
// catalog.
type WatchLaterMovie struct {
	UserID  string `json:"-" gorm:"primaryKey"`
	MovieID string `json:"movie_id" gorm:"primaryKey"`
}

// NormalizeEmail lowercases and trims an email address. Every lookup and every
// stored email goes through this, so comparisons are exact afterwards.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
