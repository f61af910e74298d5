package repository

import (
	"fmt"
	"sync"
	"time"

	authdomain "moviehub-backend/internal/auth/domain"

	"github.com/google/uuid"
)

// memoryRepository keeps users in a map keyed by normalized email. It backs
// tests and DB-less runs. Reads and writes copy the whole record, so callers
// mutate their own snapshot and persist it with Save, same as the GORM
// implementation.
type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]*authdomain.User
}

func NewMemoryRepository() UserRepository {
	return &memoryRepository{
		users: make(map[string]*authdomain.User),
	}
}

func (r *memoryRepository) Create(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Email = authdomain.NormalizeEmail(user.Email)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if _, exists := r.users[user.Email]; exists {
		return fmt.Errorf("user with email %s already exists", user.Email)
	}

	r.users[user.Email] = cloneUser(user)
	return nil
}

func (r *memoryRepository) FindByEmail(email string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[authdomain.NormalizeEmail(email)]
	if !exists {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (r *memoryRepository) FindByID(id string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) Save(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; !exists {
		return fmt.Errorf("user with email %s not found", user.Email)
	}

	user.UpdatedAt = time.Now()
	r.users[user.Email] = cloneUser(user)
	return nil
}

func cloneUser(user *authdomain.User) *authdomain.User {
	clone := *user
	clone.WatchedMovies = make([]authdomain.WatchedMovie, len(user.WatchedMovies))
	for i, m := range user.WatchedMovies {
		clone.WatchedMovies[i] = m
		if m.Rating != nil {
			rating := *m.Rating
			clone.WatchedMovies[i].Rating = &rating
		}
	}
	clone.WatchLaterMovies = make([]authdomain.WatchLaterMovie, len(user.WatchLaterMovies))
	copy(clone.WatchLaterMovies, user.WatchLaterMovies)
	return &clone
}
