package handler

import (
	"fmt"
	"strconv"
	"strings"

	"spellingspark/internal/domain"
	"spellingspark/internal/game"

	tele "gopkg.in/telebot.v3"
)

// Callback data prefixes of dynamic buttons
const (
	prefixSet    = "set_"
	prefixDelete = "del_"
	prefixPage   = "page_"
	prefixMode   = "mode_"
	prefixAvatar = "av_"
	prefixGame   = "g_"
)

const (
	menuColumns   = 2
	avatarColumns = 4
)

// wordInputScreen lists one page of saved sets under the word prompt
func wordInputScreen(header string, sets []domain.WordSet, page, totalPages int) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n✏️ Send me your spelling words, one per line.")
	if len(sets) == 0 {
		b.WriteString("\n\nNo saved sets yet.")
	} else {
		b.WriteString("\n\n📚 Or pick a saved set:")
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, set := range sets {
		id := strconv.Itoa(set.ID)
		rows = append(rows, markup.Row(
			markup.Data(set.DisplayString(), prefixSet+id),
			markup.Data("🗑", prefixDelete+id),
		))
	}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("%s%d", prefixPage, page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("%s%d", prefixPage, page+1)))
		}
		if len(navRow) > 0 {
			rows = append(rows, navRow)
		}
	}

	rows = append(rows, markup.Row(btnAvatar))
	markup.Inline(rows...)

	return b.String(), markup
}

// gameMenuScreen offers every game for the current words
func gameMenuScreen(header string, words []string) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf("%s\n\n📝 Your words (%d): %s\n\nChoose a game:",
		header, len(words), strings.Join(words, ", "))

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	row := tele.Row{}
	for _, opt := range domain.GameMenu {
		row = append(row, markup.Data(opt.Label, prefixMode+strconv.Itoa(int(opt.Mode))))
		if len(row) == menuColumns {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, markup.Row(btnChangeSet))
	markup.Inline(rows...)

	return text, markup
}

// gameScreen renders the current view of g
func gameScreen(header string, g game.Game) (string, *tele.ReplyMarkup) {
	view := g.View()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n🎮 %s\n\n%s", header, g.Title(), view.Text)
	if view.Feedback != "" {
		b.WriteString("\n\n")
		b.WriteString(view.Feedback)
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, buttons := range view.Buttons {
		row := tele.Row{}
		for _, btn := range buttons {
			row = append(row, markup.Data(btn.Label, prefixGame+btn.Value))
		}
		rows = append(rows, row)
	}
	rows = append(rows, markup.Row(btnMenu))
	markup.Inline(rows...)

	return b.String(), markup
}

// avatarScreen shows the avatar catalogue
func avatarScreen(current string) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	row := tele.Row{}
	for i, avatar := range domain.Avatars {
		row = append(row, markup.Data(avatar, prefixAvatar+strconv.Itoa(i)))
		if len(row) == avatarColumns {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	markup.Inline(rows...)

	return fmt.Sprintf("Your avatar: %s\n\nChoose a new one:", current), markup
}
