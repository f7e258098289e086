package service

import (
	"errors"
	"strings"

	"spellingspark/internal/domain"
	"spellingspark/internal/repository"
)

// ErrEmptyWordList is returned when a word list has no usable words
var ErrEmptyWordList = errors.New("word list is empty")

// setsPageSize is the number of saved sets per page
const setsPageSize = 7

// WordSetService handles saved word set logic
type WordSetService struct {
	setRepo repository.WordSetRepository
}

// NewWordSetService creates a new word set service
func NewWordSetService(setRepo repository.WordSetRepository) *WordSetService {
	return &WordSetService{setRepo: setRepo}
}

// ParseWords splits text into one word per non-blank line
func ParseWords(text string) []string {
	var words []string
	for _, line := range strings.Split(text, "\n") {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// SetName derives the name a new set is saved under:
// the first three words, followed by "..." when there are more
func SetName(words []string) string {
	if len(words) <= 3 {
		return strings.Join(words, ", ")
	}
	return strings.Join(words[:3], ", ") + "..."
}

// SaveNewWords saves words as a new set unless a set with the same name exists.
// It reports whether a set was created.
func (s *WordSetService) SaveNewWords(userID int64, words []string) (bool, error) {
	if len(words) == 0 {
		return false, ErrEmptyWordList
	}
	return s.setRepo.SaveSet(userID, SetName(words), words)
}

// ListSets returns one page of saved sets and the total number of pages
func (s *WordSetService) ListSets(userID int64, page int) ([]domain.WordSet, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * setsPageSize
	sets, err := s.setRepo.ListSets(userID, setsPageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.setRepo.CountSets(userID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (total + setsPageSize - 1) / setsPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return sets, totalPages, nil
}

// GetSet returns a saved set, or nil if the user has no such set
func (s *WordSetService) GetSet(userID int64, id int) (*domain.WordSet, error) {
	return s.setRepo.GetSet(userID, id)
}

// DeleteSet removes a saved set
func (s *WordSetService) DeleteSet(userID int64, id int) (bool, error) {
	return s.setRepo.DeleteSet(userID, id)
}
