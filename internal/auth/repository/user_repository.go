package repository

import (
	"errors"
	"time"

	authdomain "moviehub-backend/internal/auth/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// userRepository implements UserRepository using GORM
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Email = authdomain.NormalizeEmail(user.Email)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	for i := range user.WatchedMovies {
		user.WatchedMovies[i].UserID = user.ID
	}
	for i := range user.WatchLaterMovies {
		user.WatchLaterMovies[i].UserID = user.ID
	}
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Preload("WatchedMovies").Preload("WatchLaterMovies").
		Where("email = ?", authdomain.NormalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Preload("WatchedMovies").Preload("WatchLaterMovies").
		Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Save overwrites the stored record with the in-memory one. Both list tables
// are replaced inside a single transaction, so every written record is
// internally consistent, but two concurrent Saves for the same user resolve
// last-write-wins.
func (r *userRepository) Save(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&authdomain.WatchedMovie{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&authdomain.WatchLaterMovie{}).Error; err != nil {
			return err
		}
		for i := range user.WatchedMovies {
			user.WatchedMovies[i].UserID = user.ID
		}
		for i := range user.WatchLaterMovies {
			user.WatchLaterMovies[i].UserID = user.ID
		}
		if len(user.WatchedMovies) > 0 {
			if err := tx.Create(&user.WatchedMovies).Error; err != nil {
				return err
			}
		}
		if len(user.WatchLaterMovies) > 0 {
			if err := tx.Create(&user.WatchLaterMovies).Error; err != nil {
				return err
			}
		}
		return tx.Omit("WatchedMovies", "WatchLaterMovies").Save(user).Error
	})
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
