package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgError          = "Something went wrong. Please try again later."
	msgPasswordPrompt = "👋 Welcome to Spelling Spark! Please enter the password:"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	authorized, err := h.authService.Access(userID)
	if err != nil {
		h.logger.Error("Failed to check access", zap.Error(err))
		return c.Send(msgError)
	}

	s := h.ResetSession(userID)
	if !authorized {
		return c.Send(msgPasswordPrompt)
	}

	return h.showWordInput(c, userID, s)
}

// handleAvatarCommand shows the avatar picker, from /avatar or its button
func (h *Handler) handleAvatarCommand(c tele.Context) error {
	userID := c.Sender().ID

	avatar, err := h.prefService.Avatar(userID)
	if err != nil {
		h.logger.Warn("Failed to load avatar", zap.Error(err), zap.Int64("user_id", userID))
	}

	text, markup := avatarScreen(avatar)
	return h.show(c, userID, text, markup)
}
