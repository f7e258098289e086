package testutil

import (
	"context"

	"spellingspark/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) GetAvatar(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) SetAvatar(userID int64, avatar string) error {
	args := m.Called(userID, avatar)
	return args.Error(0)
}

// MockWordSetRepository is a mock for WordSetRepository
type MockWordSetRepository struct {
	mock.Mock
}

func (m *MockWordSetRepository) SaveSet(userID int64, name string, words []string) (bool, error) {
	args := m.Called(userID, name, words)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordSetRepository) GetSet(userID int64, id int) (*domain.WordSet, error) {
	args := m.Called(userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordSet), args.Error(1)
}

func (m *MockWordSetRepository) ListSets(userID int64, limit, offset int) ([]domain.WordSet, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordSet), args.Error(1)
}

func (m *MockWordSetRepository) CountSets(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockWordSetRepository) DeleteSet(userID int64, id int) (bool, error) {
	args := m.Called(userID, id)
	return args.Bool(0), args.Error(1)
}

// MockDefinitionRepository is a mock for DefinitionRepository
type MockDefinitionRepository struct {
	mock.Mock
}

func (m *MockDefinitionRepository) GetDefinitions(words []string) (domain.Definitions, error) {
	args := m.Called(words)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Definitions), args.Error(1)
}

func (m *MockDefinitionRepository) SaveDefinitions(defs domain.Definitions) error {
	args := m.Called(defs)
	return args.Error(0)
}

func (m *MockDefinitionRepository) CleanOldDefinitions(days int) (int64, error) {
	args := m.Called(days)
	return args.Get(0).(int64), args.Error(1)
}

// MockDefinitionFetcher is a mock for the language model definition call
type MockDefinitionFetcher struct {
	mock.Mock
}

func (m *MockDefinitionFetcher) FetchDefinitions(ctx context.Context, words []string) (domain.Definitions, error) {
	args := m.Called(ctx, words)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Definitions), args.Error(1)
}

// MockOracle is a mock for the word validation and story calls used by games
type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) ValidateWord(ctx context.Context, word string) (bool, error) {
	args := m.Called(ctx, word)
	return args.Bool(0), args.Error(1)
}

func (m *MockOracle) GenerateParagraph(ctx context.Context, words []string) (string, error) {
	args := m.Called(ctx, words)
	return args.String(0), args.Error(1)
}
