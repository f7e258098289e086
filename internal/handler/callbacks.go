package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"spellingspark/internal/domain"
	"spellingspark/internal/game"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// If message is not modified, it was already edited by another callback
	if errors.Is(err, tele.ErrSameMessageContent) || strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the callback message, or sends a new one for text updates
func (h *Handler) show(c tele.Context, userID int64, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil // Message was already modified, just acknowledged
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Handle specific button callbacks by Unique first
	switch callback.Unique {
	case btnMenu.Unique:
		return h.handleMenu(c)
	case btnChangeSet.Unique:
		return h.handleChangeSet(c)
	case btnAvatar.Unique:
		return h.handleAvatarCommand(c)
	}

	// If Unique is empty, try to handle by Data
	if callback.Unique == "" {
		switch data {
		case btnMenu.Unique:
			return h.handleMenu(c)
		case btnChangeSet.Unique:
			return h.handleChangeSet(c)
		case btnAvatar.Unique:
			return h.handleAvatarCommand(c)
		}
	}

	// Handle by Data prefix (dynamic buttons)
	switch {
	case strings.HasPrefix(data, prefixGame):
		return h.handleGameAction(c, strings.TrimPrefix(data, prefixGame))
	case strings.HasPrefix(data, prefixMode):
		return h.handleModeSelection(c, strings.TrimPrefix(data, prefixMode))
	case strings.HasPrefix(data, prefixSet):
		return h.handleSetSelection(c, strings.TrimPrefix(data, prefixSet))
	case strings.HasPrefix(data, prefixDelete):
		return h.handleDeleteSet(c, strings.TrimPrefix(data, prefixDelete))
	case strings.HasPrefix(data, prefixPage):
		return h.handlePagination(c, strings.TrimPrefix(data, prefixPage))
	case strings.HasPrefix(data, prefixAvatar):
		return h.handleAvatarSelection(c, strings.TrimPrefix(data, prefixAvatar))
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// showCurrent renders whatever view the session is on
func (h *Handler) showCurrent(c tele.Context, userID int64, s *Session) error {
	switch {
	case s.View == domain.ViewGame && s.Game != nil:
		return h.showGame(c, userID, s)
	case s.View != domain.ViewWordInput && len(s.Words) > 0:
		s.toMenu()
		return h.showGameMenu(c, userID, s)
	}
	s.clearWords()
	return h.showWordInput(c, userID, s)
}

// showWordInput shows the word prompt with the session's page of saved sets
func (h *Handler) showWordInput(c tele.Context, userID int64, s *Session) error {
	sets, totalPages, err := h.setService.ListSets(userID, s.Page)
	if err != nil {
		h.logger.Error("Failed to list word sets", zap.Error(err), zap.Int64("user_id", userID))
		sets, totalPages = nil, 1
	}

	// The last page may have been emptied by a delete
	if len(sets) == 0 && s.Page > totalPages {
		s.Page = totalPages
		if sets, totalPages, err = h.setService.ListSets(userID, s.Page); err != nil {
			h.logger.Error("Failed to list word sets", zap.Error(err), zap.Int64("user_id", userID))
			sets, totalPages = nil, 1
		}
	}

	text, markup := wordInputScreen(h.header(userID, s), sets, s.Page, totalPages)
	return h.show(c, userID, text, markup)
}

func (h *Handler) showGameMenu(c tele.Context, userID int64, s *Session) error {
	text, markup := gameMenuScreen(h.header(userID, s), s.Words)
	return h.show(c, userID, text, markup)
}

func (h *Handler) showGame(c tele.Context, userID int64, s *Session) error {
	text, markup := gameScreen(h.header(userID, s), s.Game)
	return h.show(c, userID, text, markup)
}

// handleMenu returns from a game to the game menu
func (h *Handler) handleMenu(c tele.Context) error {
	userID := c.Sender().ID
	s := h.GetSession(userID)

	if len(s.Words) == 0 {
		s.clearWords()
		return h.showWordInput(c, userID, s)
	}

	s.toMenu()
	return h.showGameMenu(c, userID, s)
}

// handleChangeSet drops the current words and returns to word input
func (h *Handler) handleChangeSet(c tele.Context) error {
	userID := c.Sender().ID
	s := h.GetSession(userID)

	s.clearWords()
	s.Page = 1
	return h.showWordInput(c, userID, s)
}

// handleSetSelection loads a saved set and prepares its definitions
func (h *Handler) handleSetSelection(c tele.Context, arg string) error {
	userID := c.Sender().ID

	id, err := strconv.Atoi(arg)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid set"})
	}

	set, err := h.setService.GetSet(userID, id)
	if err != nil {
		h.logger.Error("Failed to get word set", zap.Error(err), zap.Int("set_id", id))
		return c.Respond(&tele.CallbackResponse{Text: msgError})
	}
	if set == nil {
		return c.Respond(&tele.CallbackResponse{Text: "This set no longer exists", ShowAlert: true})
	}

	h.logger.Info("Word set selected",
		zap.Int64("user_id", userID),
		zap.Int("set_id", set.ID),
		zap.Int("words", len(set.Words)),
	)

	return h.loadWords(c, userID, h.GetSession(userID), set.Words)
}

// handleDeleteSet deletes a saved set and redraws the list
func (h *Handler) handleDeleteSet(c tele.Context, arg string) error {
	userID := c.Sender().ID

	id, err := strconv.Atoi(arg)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid set"})
	}

	deleted, err := h.setService.DeleteSet(userID, id)
	if err != nil {
		h.logger.Error("Failed to delete word set", zap.Error(err), zap.Int("set_id", id))
		return c.Respond(&tele.CallbackResponse{Text: msgError})
	}
	if deleted {
		h.logger.Info("Word set deleted", zap.Int64("user_id", userID), zap.Int("set_id", id))
	}

	s := h.GetSession(userID)
	s.clearWords()
	return h.showWordInput(c, userID, s)
}

// handlePagination handles page navigation of saved sets
func (h *Handler) handlePagination(c tele.Context, arg string) error {
	userID := c.Sender().ID

	page, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || page < 1 {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}

	s := h.GetSession(userID)
	s.Page = page
	return h.showWordInput(c, userID, s)
}

// handleModeSelection starts the chosen game
func (h *Handler) handleModeSelection(c tele.Context, arg string) error {
	userID := c.Sender().ID
	s := h.GetSession(userID)

	n, err := strconv.Atoi(arg)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown game"})
	}
	mode := domain.GameMode(n)

	if len(s.Words) == 0 {
		s.clearWords()
		return h.showWordInput(c, userID, s)
	}

	if mode == domain.GameWordDetective {
		if err := c.Notify(tele.Typing); err != nil {
			h.logger.Debug("Failed to send chat action", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	g, err := game.New(ctx, mode, s.Words, s.Definitions, game.Deps{Oracle: h.oracle, Now: h.now})
	if err != nil {
		h.logger.Warn("Failed to start game",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("game", mode.Label()),
		)
		return c.Respond(&tele.CallbackResponse{Text: game.Message(err), ShowAlert: true})
	}

	h.logger.Info("Game started", zap.Int64("user_id", userID), zap.String("game", g.Title()))

	s.play(mode, g)
	if err := h.showGame(c, userID, s); err != nil {
		return err
	}
	return h.narrate(c, userID, s)
}

// handleGameAction forwards a game button to the running game
func (h *Handler) handleGameAction(c tele.Context, value string) error {
	userID := c.Sender().ID
	s := h.GetSession(userID)

	if s.View != domain.ViewGame || s.Game == nil {
		return c.Respond(&tele.CallbackResponse{Text: "This game is no longer active."})
	}

	return h.answer(c, userID, s, value)
}

// answer applies input to the running game and redraws it
func (h *Handler) answer(c tele.Context, userID int64, s *Session, input string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := s.Game.Answer(ctx, input); err != nil {
		h.logger.Error("Failed to apply answer",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("game", s.Game.Title()),
		)
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Something went wrong. Please try again."})
		}
		return c.Send("Something went wrong. Please try again.")
	}

	if err := h.showGame(c, userID, s); err != nil {
		return err
	}
	return h.narrate(c, userID, s)
}

// handleAvatarSelection stores the picked avatar and returns to the current view
func (h *Handler) handleAvatarSelection(c tele.Context, arg string) error {
	userID := c.Sender().ID

	i, err := strconv.Atoi(arg)
	if err != nil || i < 0 || i >= len(domain.Avatars) {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown avatar"})
	}

	if err := h.prefService.SetAvatar(userID, domain.Avatars[i]); err != nil {
		h.logger.Error("Failed to set avatar", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: msgError})
	}

	return h.showCurrent(c, userID, h.GetSession(userID))
}
