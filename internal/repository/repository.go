package repository

import (
	"spellingspark/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
	GetAvatar(userID int64) (string, error)
	SetAvatar(userID int64, avatar string) error
}

// WordSetRepository defines saved word set operations
type WordSetRepository interface {
	SaveSet(userID int64, name string, words []string) (bool, error)
	GetSet(userID int64, id int) (*domain.WordSet, error)
	ListSets(userID int64, limit, offset int) ([]domain.WordSet, error)
	CountSets(userID int64) (int, error)
	DeleteSet(userID int64, id int) (bool, error)
}

// DefinitionRepository defines the shared definition cache
type DefinitionRepository interface {
	GetDefinitions(words []string) (domain.Definitions, error)
	SaveDefinitions(defs domain.Definitions) error
	CleanOldDefinitions(days int) (int64, error)
}
