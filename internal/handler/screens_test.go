package handler

import (
	"math/rand/v2"
	"testing"
	"time"

	"spellingspark/internal/domain"
	"spellingspark/internal/game"
	"spellingspark/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func uniques(markup *tele.ReplyMarkup) [][]string {
	rows := make([][]string, len(markup.InlineKeyboard))
	for i, row := range markup.InlineKeyboard {
		for _, btn := range row {
			rows[i] = append(rows[i], btn.Unique)
		}
	}
	return rows
}

func TestWordInputScreen(t *testing.T) {
	sets := []domain.WordSet{
		*testutil.NewTestWordSet(1, testUserID, "apple, tiger", "apple", "tiger"),
		*testutil.NewTestWordSet(2, testUserID, "moon", "moon"),
	}

	text, markup := wordInputScreen("header", sets, 2, 3)
	assert.Contains(t, text, "header")
	assert.Contains(t, text, "Or pick a saved set")
	assert.Equal(t, [][]string{
		{"set_1", "del_1"},
		{"set_2", "del_2"},
		{"page_1", "page_3"},
		{"avatar"},
	}, uniques(markup))
	assert.Equal(t, "apple, tiger (2)", markup.InlineKeyboard[0][0].Text)
}

func TestWordInputScreen_SinglePage(t *testing.T) {
	text, markup := wordInputScreen("header", nil, 1, 1)
	assert.Contains(t, text, "No saved sets yet.")
	assert.Equal(t, [][]string{{"avatar"}}, uniques(markup))
}

func TestGameMenuScreen(t *testing.T) {
	text, markup := gameMenuScreen("header", []string{"apple", "tiger"})
	assert.Contains(t, text, "Your words (2): apple, tiger")

	rows := uniques(markup)
	require.Len(t, rows, len(domain.GameMenu)/2+1)
	assert.Equal(t, []string{"mode_1", "mode_2"}, rows[0])
	assert.Equal(t, []string{"change_set"}, rows[len(rows)-1])
	assert.Equal(t, "🧠 Word Ladder", markup.InlineKeyboard[0][0].Text)
}

func TestGameScreen(t *testing.T) {
	g := game.NewFlashcards([]string{"apple"}, domain.Definitions{"apple": "A round fruit."}, rand.New(rand.NewPCG(1, 2)))

	text, markup := gameScreen("header", g)
	assert.Contains(t, text, "🎮 Flashcards")
	assert.Contains(t, text, "apple")
	assert.Equal(t, [][]string{{"g_flip", "g_next"}, {"menu"}}, uniques(markup))
}

func TestAvatarScreen(t *testing.T) {
	text, markup := avatarScreen("🤖")
	assert.Contains(t, text, "Your avatar: 🤖")
	rows := uniques(markup)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"av_0", "av_1", "av_2", "av_3"}, rows[0])
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in       time.Duration
		expected string
	}{
		{in: 0, expected: "00:00"},
		{in: 59 * time.Second, expected: "00:59"},
		{in: 3*time.Minute + 12*time.Second + 900*time.Millisecond, expected: "03:12"},
		{in: 75*time.Minute + 3*time.Second, expected: "75:03"},
		{in: -time.Second, expected: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatElapsed(tt.in))
		})
	}
}
