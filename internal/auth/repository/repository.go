package repository

import (
	authdomain "moviehub-backend/internal/auth/domain"
)

// UserRepository is the persistence surface the usecases run against. Lookups
// return (nil, nil) when no user matches, so callers can tell "absent" from a
// store failure.
//
// Save persists the whole user record, lists included. Concurrent
// lookup-then-save cycles against the same user are not serialized: the last
// writer wins and silently overwrites an interleaved mutation. An optimistic
// versioned implementation can be swapped in behind this interface.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Save(user *authdomain.User) error
}
