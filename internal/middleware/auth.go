package middleware

import (
	"spellingspark/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgError          = "Something went wrong. Please try again later."
	msgPasswordPrompt = "🔒 Please enter the password first:"
)

// Authorizer is the part of the auth service the gate needs
type Authorizer interface {
	Access(userID int64) (bool, error)
}

var _ Authorizer = (*service.AuthService)(nil)

// AuthMiddleware lets only authorized users through; everyone else is asked for the password
func AuthMiddleware(auth Authorizer, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			authorized, err := auth.Access(userID)
			if err != nil {
				logger.Error("Failed to check access in middleware", zap.Error(err), zap.Int64("user_id", userID))
				return reply(c, msgError)
			}

			// If not authorized and not /start command, prompt for password
			if !authorized && c.Text() != "/start" {
				logger.Debug("Blocked unauthorized update", zap.Int64("user_id", userID))
				return reply(c, msgPasswordPrompt)
			}

			return next(c)
		}
	}
}

// reply acknowledges a callback before answering in the chat
func reply(c tele.Context, text string) error {
	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			return err
		}
	}
	return c.Send(text)
}
