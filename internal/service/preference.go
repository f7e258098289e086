package service

import (
	"errors"

	"spellingspark/internal/domain"
	"spellingspark/internal/repository"
)

// ErrUnknownAvatar is returned for avatars outside the catalogue
var ErrUnknownAvatar = errors.New("unknown avatar")

// PreferenceService stores per-user presentation choices
type PreferenceService struct {
	userRepo repository.UserRepository
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(userRepo repository.UserRepository) *PreferenceService {
	return &PreferenceService{userRepo: userRepo}
}

// Avatar returns the user's avatar, or the default one
func (s *PreferenceService) Avatar(userID int64) (string, error) {
	avatar, err := s.userRepo.GetAvatar(userID)
	if err != nil {
		return domain.DefaultAvatar, err
	}
	if avatar == "" {
		return domain.DefaultAvatar, nil
	}
	return avatar, nil
}

// SetAvatar stores a catalogue avatar for the user
func (s *PreferenceService) SetAvatar(userID int64, avatar string) error {
	if !domain.IsAvatar(avatar) {
		return ErrUnknownAvatar
	}
	return s.userRepo.SetAvatar(userID, avatar)
}
