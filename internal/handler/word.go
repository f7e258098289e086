package handler

import (
	"context"
	"strings"

	"spellingspark/internal/domain"
	"spellingspark/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgDefinitionsFailed = "Failed to fetch definitions. Please check your API key and try again."

// handleText handles all text messages based on the current view
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	authorized, err := h.authService.Access(userID)
	if err != nil {
		h.logger.Error("Failed to check access", zap.Error(err))
		return c.Send(msgError)
	}

	// Locked users can only send the password
	if !authorized {
		unlocked, err := h.authService.Unlock(userID, text)
		if err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send(msgError)
		}
		if !unlocked {
			return c.Send("❌ Wrong password. Try again:")
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		if err := c.Send("✅ Access granted!"); err != nil {
			return err
		}
		return h.showWordInput(c, userID, h.ResetSession(userID))
	}

	s := h.GetSession(userID)

	switch s.View {
	case domain.ViewGame:
		if s.Game == nil {
			return h.showCurrent(c, userID, s)
		}
		return h.answer(c, userID, s, text)

	case domain.ViewGameMenu:
		if err := c.Send("Pick a game below, or change the word set to practise new words."); err != nil {
			return err
		}
		return h.showGameMenu(c, userID, s)

	default:
		words := service.ParseWords(c.Text())
		if len(words) == 0 {
			return c.Send("Please enter at least one word.")
		}

		created, err := h.setService.SaveNewWords(userID, words)
		if err != nil {
			// Saving is a convenience; the words can still be played
			h.logger.Error("Failed to save word set", zap.Error(err), zap.Int64("user_id", userID))
		} else if created {
			h.logger.Info("Word set saved",
				zap.Int64("user_id", userID),
				zap.String("name", service.SetName(words)),
				zap.Int("words", len(words)),
			)
		}

		return h.loadWords(c, userID, s, words)
	}
}

// loadWords prepares definitions for words and opens the game menu.
// On failure the word list is cleared and the user stays on word input.
func (h *Handler) loadWords(c tele.Context, userID int64, s *Session, words []string) error {
	if err := c.Notify(tele.Typing); err != nil {
		h.logger.Debug("Failed to send chat action", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	defs, err := h.defService.Prepare(ctx, words)
	if err != nil {
		h.logger.Error("Failed to prepare definitions",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int("words", len(words)),
		)
		s.clearWords()
		if sendErr := c.Send(msgDefinitionsFailed); sendErr != nil {
			return sendErr
		}
		return h.showWordInput(c, userID, s)
	}

	s.useWords(words, defs)
	return h.showGameMenu(c, userID, s)
}
