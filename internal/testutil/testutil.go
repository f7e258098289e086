package testutil

import (
	"time"

	"spellingspark/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWordSet creates a test word set
func NewTestWordSet(id int, userID int64, name string, words ...string) *domain.WordSet {
	return &domain.WordSet{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Words:     words,
		CreatedAt: time.Now(),
	}
}
