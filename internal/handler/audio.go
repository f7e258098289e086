package handler

import (
	"bytes"
	"context"
	"fmt"
	"html"

	"spellingspark/internal/game"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// narrate sends the recording a game asks for, if any.
// Without audio the word is sent hidden behind a spoiler.
func (h *Handler) narrate(c tele.Context, userID int64, s *Session) error {
	narrator, ok := s.Game.(game.Narrator)
	if !ok {
		return nil
	}
	word, ok := narrator.Narration()
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	audio, err := h.speaker.Speak(ctx, word)
	if err != nil {
		h.logger.Warn("Failed to synthesise speech", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(spoilerMessage(word), tele.ModeHTML)
	}

	return c.Send(&tele.Audio{
		File:     tele.FromReader(bytes.NewReader(audio)),
		FileName: "word.wav",
		MIME:     "audio/wav",
		Title:    "Listen & Type",
	})
}

func spoilerMessage(word string) string {
	return fmt.Sprintf("🔊 Audio is unavailable right now. Tap to peek at the word: <tg-spoiler>%s</tg-spoiler>",
		html.EscapeString(word))
}
