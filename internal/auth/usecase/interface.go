package usecase

import (
	"errors"

	authdto "moviehub-backend/internal/auth/dto"
)

var (
	// ErrEmailAlreadyRegistered indicates a register attempt for a taken email.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password, so a
	// caller cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken indicates a token that failed verification or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthUsecase owns registration, login and token verification.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	ValidateToken(token string) (*authdto.TokenClaims, error)
}
