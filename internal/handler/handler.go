package handler

import (
	"context"
	"sync"
	"time"

	"spellingspark/internal/game"
	"spellingspark/internal/middleware"
	"spellingspark/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Speaker turns a word into an audio recording
type Speaker interface {
	Speak(ctx context.Context, word string) ([]byte, error)
}

// requestTimeout bounds every language model call made for an update
const requestTimeout = 90 * time.Second

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	setService  *service.WordSetService
	defService  *service.DefinitionService
	prefService *service.PreferenceService
	oracle      game.Oracle
	speaker     Speaker
	logger      *zap.Logger
	now         func() time.Time

	// User sessions (in-memory view state)
	sessions   map[int64]*Session
	sessionMux sync.RWMutex

	// Per-user locks so two taps never race one game
	userLocks map[int64]*sync.Mutex
	lockMux   sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	setService *service.WordSetService,
	defService *service.DefinitionService,
	prefService *service.PreferenceService,
	oracle game.Oracle,
	speaker Speaker,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		setService:  setService,
		defService:  defService,
		prefService: prefService,
		oracle:      oracle,
		speaker:     speaker,
		logger:      logger,
		now:         time.Now,
		sessions:    make(map[int64]*Session),
		userLocks:   make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	gate := middleware.AuthMiddleware(h.authService, h.logger)

	// Commands
	h.bot.Handle("/start", h.locked(h.handleStart))
	h.bot.Handle("/avatar", h.locked(h.handleAvatarCommand), gate)

	// Text messages carry the password, word lists and typed answers
	h.bot.Handle(tele.OnText, h.locked(h.handleText))

	// Callback queries (inline buttons)
	h.bot.Handle(&btnMenu, h.locked(h.handleMenu), gate)
	h.bot.Handle(&btnChangeSet, h.locked(h.handleChangeSet), gate)
	h.bot.Handle(&btnAvatar, h.locked(h.handleAvatarCommand), gate)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.locked(h.handleCallback), gate)
}

// GetSession returns the user's session, creating it on first use
func (h *Handler) GetSession(userID int64) *Session {
	h.sessionMux.RLock()
	s, exists := h.sessions[userID]
	h.sessionMux.RUnlock()
	if exists {
		return s
	}

	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	if s, exists = h.sessions[userID]; !exists {
		s = newSession(h.now())
		h.sessions[userID] = s
	}
	return s
}

// ResetSession sends the user back to word input with a fresh session
func (h *Handler) ResetSession(userID int64) *Session {
	s := newSession(h.now())
	h.sessionMux.Lock()
	h.sessions[userID] = s
	h.sessionMux.Unlock()
	return s
}

// lockUser serialises updates of one user and returns the unlock func
func (h *Handler) lockUser(userID int64) func() {
	h.lockMux.Lock()
	lock, exists := h.userLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.userLocks[userID] = lock
	}
	h.lockMux.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (h *Handler) locked(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		unlock := h.lockUser(c.Sender().ID)
		defer unlock()
		return next(c)
	}
}

// header is shown on top of every screen: avatar and session time
func (h *Handler) header(userID int64, s *Session) string {
	avatar, err := h.prefService.Avatar(userID)
	if err != nil {
		h.logger.Warn("Failed to load avatar", zap.Error(err), zap.Int64("user_id", userID))
	}
	return formatHeader(avatar, h.now().Sub(s.StartedAt))
}

// Inline keyboard buttons
var (
	btnMenu = tele.Btn{
		Unique: "menu",
		Text:   "🏠 Menu",
	}
	btnChangeSet = tele.Btn{
		Unique: "change_set",
		Text:   "🔁 Change word set",
	}
	btnAvatar = tele.Btn{
		Unique: "avatar",
		Text:   "🎭 Avatar",
	}
)

