package handler

import (
	"fmt"
	"time"

	"spellingspark/internal/domain"
	"spellingspark/internal/game"
)

// Session is the in-memory state of one user
type Session struct {
	View        domain.View
	Words       []string
	Definitions domain.Definitions
	Mode        domain.GameMode
	Game        game.Game
	Page        int
	StartedAt   time.Time
}

func newSession(now time.Time) *Session {
	return &Session{View: domain.ViewWordInput, Page: 1, StartedAt: now}
}

// useWords switches the session to the game menu for a prepared word list
func (s *Session) useWords(words []string, defs domain.Definitions) {
	s.Words = words
	s.Definitions = defs
	s.toMenu()
}

// clearWords drops the word list and returns to word input
func (s *Session) clearWords() {
	s.Words = nil
	s.Definitions = nil
	s.Game = nil
	s.Mode = domain.GameNone
	s.View = domain.ViewWordInput
}

func (s *Session) toMenu() {
	s.Game = nil
	s.Mode = domain.GameNone
	s.View = domain.ViewGameMenu
}

func (s *Session) play(mode domain.GameMode, g game.Game) {
	s.Mode = mode
	s.Game = g
	s.View = domain.ViewGame
}

// formatElapsed renders d as mm:ss; minutes keep counting past an hour
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func formatHeader(avatar string, elapsed time.Duration) string {
	return fmt.Sprintf("%s Spelling Spark · ⏱ %s", avatar, formatElapsed(elapsed))
}
