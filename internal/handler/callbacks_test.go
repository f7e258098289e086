package handler

import (
	"errors"
	"strconv"
	"testing"

	"spellingspark/internal/domain"
	"spellingspark/internal/game"
	"spellingspark/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "set_12",
			expected: "set_12",
		},
		{
			name:     "telebot unique marker",
			input:    "\fg_opt:2",
			expected: "g_opt:2",
		},
		{
			name:     "string with whitespace",
			input:    "  page_2  ",
			expected: "page_2",
		},
		{
			name:     "string with newline",
			input:    "test\ndata",
			expected: "testdata",
		},
		{
			name:     "string with tab",
			input:    "test\tdata",
			expected: "testdata",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "test\x00data\x01",
			expected: "testdata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func modeData(mode domain.GameMode) string {
	return "\f" + prefixMode + strconv.Itoa(int(mode))
}

func TestHandleCallback_PlayFlashcards(t *testing.T) {
	h, _ := newTestHandler(true)
	h.GetSession(testUserID).useWords([]string{"apple"}, domain.Definitions{"apple": "A round fruit."})

	c := testutil.NewFakeCallback(testUserID, modeData(domain.GameFlashcards))
	require.NoError(t, h.handleCallback(c))

	s := h.GetSession(testUserID)
	assert.Equal(t, domain.ViewGame, s.View)
	assert.Equal(t, domain.GameFlashcards, s.Mode)
	assert.Contains(t, c.LastText(), "Flashcards")
	assert.Contains(t, c.LastText(), "apple")
	assert.Len(t, c.Answers, 1)

	c = testutil.NewFakeCallback(testUserID, "\fg_flip")
	require.NoError(t, h.handleCallback(c))
	assert.Contains(t, c.LastText(), "A round fruit.")

	c = testutil.NewFakeCallback(testUserID, "\fmenu")
	require.NoError(t, h.handleCallback(c))
	assert.Equal(t, domain.ViewGameMenu, s.View)
	assert.Nil(t, s.Game)
	assert.Contains(t, c.LastText(), "Choose a game:")
}

func TestHandleCallback_GameCannotStart(t *testing.T) {
	h, _ := newTestHandler(true)
	h.GetSession(testUserID).useWords([]string{"apple"}, domain.Definitions{})

	c := testutil.NewFakeCallback(testUserID, modeData(domain.GameWordLadder))
	require.NoError(t, h.handleCallback(c))

	require.Len(t, c.Answers, 1)
	assert.Equal(t, game.Message(game.ErrNoFourLetterWords), c.Answers[0].Text)
	assert.True(t, c.Answers[0].ShowAlert)
	assert.Equal(t, domain.ViewGameMenu, h.GetSession(testUserID).View)
	assert.Empty(t, c.Edited)
}

func TestHandleCallback_NoActiveGame(t *testing.T) {
	h, _ := newTestHandler(true)

	c := testutil.NewFakeCallback(testUserID, "\fg_flip")
	require.NoError(t, h.handleCallback(c))

	require.Len(t, c.Answers, 1)
	assert.Equal(t, "This game is no longer active.", c.Answers[0].Text)
}

func TestHandleCallback_ModeWithoutWords(t *testing.T) {
	h, deps := newTestHandler(true)
	deps.expectWordInput(1, nil, 0)

	c := testutil.NewFakeCallback(testUserID, modeData(domain.GameQuiz))
	require.NoError(t, h.handleCallback(c))

	assert.Equal(t, domain.ViewWordInput, h.GetSession(testUserID).View)
	assert.Contains(t, c.LastText(), "Send me your spelling words")
}

func TestHandleCallback_SelectSet(t *testing.T) {
	h, deps := newTestHandler(true)
	set := testutil.NewTestWordSet(3, testUserID, "apple, tiger", "apple", "tiger")
	deps.sets.On("GetSet", testUserID, 3).Return(set, nil)
	deps.defs.On("GetDefinitions", mock.Anything).
		Return(domain.Definitions{"apple": "A round fruit.", "tiger": "A big cat."}, nil)

	c := testutil.NewFakeCallback(testUserID, "\fset_3")
	require.NoError(t, h.handleCallback(c))

	s := h.GetSession(testUserID)
	assert.Equal(t, domain.ViewGameMenu, s.View)
	assert.Equal(t, []string{"apple", "tiger"}, s.Words)
	assert.Equal(t, "A big cat.", s.Definitions["tiger"])
	deps.fetcher.AssertNotCalled(t, "FetchDefinitions", mock.Anything, mock.Anything)
}

func TestHandleCallback_SelectMissingSet(t *testing.T) {
	h, deps := newTestHandler(true)
	deps.sets.On("GetSet", testUserID, 9).Return(nil, nil)

	c := testutil.NewFakeCallback(testUserID, "\fset_9")
	require.NoError(t, h.handleCallback(c))

	require.Len(t, c.Answers, 1)
	assert.Equal(t, "This set no longer exists", c.Answers[0].Text)
}

func TestHandleCallback_DeleteSet(t *testing.T) {
	h, deps := newTestHandler(true)
	deps.sets.On("DeleteSet", testUserID, 3).Return(true, nil)
	deps.expectWordInput(1, nil, 0)

	c := testutil.NewFakeCallback(testUserID, "\fdel_3")
	require.NoError(t, h.handleCallback(c))

	deps.sets.AssertCalled(t, "DeleteSet", testUserID, 3)
	assert.Contains(t, c.LastText(), "No saved sets yet.")
}

func TestHandleCallback_PaginationClampsToLastPage(t *testing.T) {
	h, deps := newTestHandler(true)
	sets := []domain.WordSet{*testutil.NewTestWordSet(1, testUserID, "apple", "apple")}
	deps.sets.On("ListSets", testUserID, 7, 14).Return([]domain.WordSet{}, nil)
	deps.sets.On("ListSets", testUserID, 7, 7).Return(sets, nil)
	deps.sets.On("CountSets", testUserID).Return(8, nil)

	c := testutil.NewFakeCallback(testUserID, "\fpage_3")
	require.NoError(t, h.handleCallback(c))

	assert.Equal(t, 2, h.GetSession(testUserID).Page)
	assert.Contains(t, c.LastText(), "Or pick a saved set")
}

func TestHandleCallback_Avatar(t *testing.T) {
	h, deps := newTestHandler(true)
	deps.users.On("SetAvatar", testUserID, "🤖").Return(nil)
	deps.expectWordInput(1, nil, 0)

	c := testutil.NewFakeCallback(testUserID, "\fav_7")
	require.NoError(t, h.handleCallback(c))

	deps.users.AssertCalled(t, "SetAvatar", testUserID, "🤖")
	assert.Contains(t, c.LastText(), "Send me your spelling words")

	c = testutil.NewFakeCallback(testUserID, "\fav_99")
	require.NoError(t, h.handleCallback(c))
	require.Len(t, c.Answers, 1)
	assert.Equal(t, "Unknown avatar", c.Answers[0].Text)
}

func TestHandleCallback_ListenTypeSendsAudio(t *testing.T) {
	h, deps := newTestHandler(true)
	deps.speaker.audio = []byte("RIFF")
	h.GetSession(testUserID).useWords([]string{"apple"}, domain.Definitions{})

	c := testutil.NewFakeCallback(testUserID, modeData(domain.GameListenType))
	require.NoError(t, h.handleCallback(c))

	require.Len(t, c.Sent, 1)
	audio, ok := c.Sent[0].(*tele.Audio)
	require.True(t, ok)
	assert.Equal(t, "word.wav", audio.FileName)
	assert.Equal(t, []string{"apple"}, deps.speaker.words)
}

func TestHandleCallback_ListenTypeFallback(t *testing.T) {
	h, deps := newTestHandler(true)
	deps.speaker.err = errors.New("quota")
	h.GetSession(testUserID).useWords([]string{"a<b"}, domain.Definitions{})

	c := testutil.NewFakeCallback(testUserID, modeData(domain.GameListenType))
	require.NoError(t, h.handleCallback(c))

	require.Len(t, c.Sent, 1)
	assert.Equal(t, spoilerMessage("a<b"), c.Sent[0])
	assert.Contains(t, c.Sent[0], "<tg-spoiler>a&lt;b</tg-spoiler>")
	assert.Contains(t, c.SentOpts[0], tele.ModeHTML)
}

func TestShow_EditErrors(t *testing.T) {
	h, _ := newTestHandler(true)

	c := testutil.NewFakeCallback(testUserID, "\fmenu")
	c.EditErr = errors.New("telegram: Bad Request: message is not modified (400)")
	require.NoError(t, h.show(c, testUserID, "text", nil))
	assert.Empty(t, c.Sent)
	assert.Len(t, c.Answers, 1)

	c = testutil.NewFakeCallback(testUserID, "\fmenu")
	c.EditErr = errors.New("telegram: message to edit not found (400)")
	require.NoError(t, h.show(c, testUserID, "text", nil))
	assert.Equal(t, []interface{}{"text"}, c.Sent)
}

func TestHandleCallback_ChangeSet(t *testing.T) {
	h, deps := newTestHandler(true)
	deps.expectWordInput(1, nil, 0)

	s := h.GetSession(testUserID)
	s.useWords([]string{"apple", "tiger"}, domain.Definitions{"apple": "A round fruit."})
	s.Page = 3

	c := testutil.NewFakeCallback(testUserID, "\fchange_set")
	require.NoError(t, h.handleCallback(c))

	assert.Nil(t, s.Words)
	assert.Nil(t, s.Definitions)
	assert.Equal(t, domain.ViewWordInput, s.View)
	assert.Equal(t, 1, s.Page)
	assert.Contains(t, c.LastText(), "Send me your spelling words")
	deps.sets.AssertCalled(t, "ListSets", testUserID, 7, 0)
}

func TestHandleAvatarCommand(t *testing.T) {
	h, _ := newTestHandler(true)
	expected := [][]string{
		{"av_0", "av_1", "av_2", "av_3"},
		{"av_4", "av_5", "av_6", "av_7"},
	}

	c := testutil.NewFakeContext(testUserID, "/avatar")
	require.NoError(t, h.handleAvatarCommand(c))

	require.Len(t, c.Sent, 1)
	assert.Equal(t, "Your avatar: 🤖\n\nChoose a new one:", c.Sent[0])
	require.Len(t, c.SentOpts[0], 1)
	markup, ok := c.SentOpts[0][0].(*tele.ReplyMarkup)
	require.True(t, ok)
	assert.Equal(t, expected, uniques(markup))
	assert.Equal(t, domain.Avatars[0], markup.InlineKeyboard[0][0].Text)

	// The header button opens the same picker in place
	c = testutil.NewFakeCallback(testUserID, "\favatar")
	require.NoError(t, h.handleCallback(c))

	assert.Empty(t, c.Sent)
	require.Len(t, c.Edited, 1)
	assert.Equal(t, "Your avatar: 🤖\n\nChoose a new one:", c.Edited[0])
}
