package service

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"spellingspark/internal/repository"
)

// AuthService guards the bot behind a shared password
type AuthService struct {
	userRepo    repository.UserRepository
	botPassword string
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, botPassword string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		botPassword: botPassword,
	}
}

// CheckPassword reports whether password matches the bot password.
// Surrounding whitespace is ignored, case is not.
func (s *AuthService) CheckPassword(password string) bool {
	given := []byte(strings.TrimSpace(password))
	return len(given) > 0 && subtle.ConstantTimeCompare(given, []byte(s.botPassword)) == 1
}

// Access registers the user on first contact and reports whether they may play
func (s *AuthService) Access(userID int64) (bool, error) {
	if err := s.userRepo.EnsureUserExists(userID); err != nil {
		return false, fmt.Errorf("failed to register user: %w", err)
	}

	authorized, err := s.userRepo.IsAuthorized(userID)
	if err != nil {
		return false, fmt.Errorf("failed to check authorization: %w", err)
	}
	return authorized, nil
}

// Unlock authorizes the user if password is correct and reports whether it was
func (s *AuthService) Unlock(userID int64, password string) (bool, error) {
	if !s.CheckPassword(password) {
		return false, nil
	}
	if err := s.userRepo.AuthorizeUser(userID); err != nil {
		return false, fmt.Errorf("failed to authorize user: %w", err)
	}
	return true, nil
}
