package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"spellingspark/internal/domain"
)

// memoryWords caps the board at twelve cards
const memoryWords = 6

// MemoryMatch is a face-down pairs game of words and definitions
type MemoryMatch struct {
	cards    []matchItem
	flipped  []int
	matched  map[string]bool
	pairs    int
	feedback string
}

// NewMemoryMatch deals up to six random words and their definitions
func NewMemoryMatch(words []string, defs domain.Definitions, r *rand.Rand) (*MemoryMatch, error) {
	if len(words) < 2 {
		return nil, ErrNotEnoughWords
	}

	picked := shuffled(r, words)
	if len(picked) > memoryWords {
		picked = picked[:memoryWords]
	}

	cards := make([]matchItem, 0, len(picked)*2)
	for _, w := range picked {
		cards = append(cards,
			matchItem{kind: kindWord, value: w, word: w},
			matchItem{kind: kindDefinition, value: defs.Of(w), word: w},
		)
	}
	r.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	return &MemoryMatch{cards: cards, matched: make(map[string]bool), pairs: len(picked)}, nil
}

func (g *MemoryMatch) isFlipped(i int) bool {
	for _, f := range g.flipped {
		if f == i {
			return true
		}
	}
	return false
}

// Complete reports whether every pair was found
func (g *MemoryMatch) Complete() bool {
	return len(g.matched) == g.pairs
}

func (g *MemoryMatch) Title() string { return "Memory Match" }

func (g *MemoryMatch) View() View {
	if g.Complete() {
		return View{Text: "🎉 You matched them all!", Feedback: g.feedback, Done: true}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Find the pairs! %d of %d matched.", len(g.matched), g.pairs)
	for _, i := range g.flipped {
		fmt.Fprintf(&b, "\n\n🃏 %d: %s", i+1, g.cards[i].value)
	}

	var rows [][]Button
	var row []Button
	for i, card := range g.cards {
		label := fmt.Sprintf("❓ %d", i+1)
		switch {
		case g.matched[card.word]:
			label = "✅"
		case g.isFlipped(i):
			label = "🃏 " + truncate(card.value, 24)
		}
		row = append(row, Button{Label: label, Value: choice("card", i)})
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return View{Text: b.String(), Feedback: g.feedback, Buttons: rows}
}

func (g *MemoryMatch) Answer(_ context.Context, input string) error {
	i, ok := indexArg(input, "card")
	if !ok || i >= len(g.cards) {
		g.feedback = "Tap the cards to flip them."
		return nil
	}

	// A revealed pair turns back over on the next flip
	if len(g.flipped) == 2 {
		g.flipped = g.flipped[:0]
	}
	if g.isFlipped(i) || g.matched[g.cards[i].word] {
		return nil
	}

	g.feedback = ""
	g.flipped = append(g.flipped, i)
	if len(g.flipped) < 2 {
		return nil
	}

	first, second := g.cards[g.flipped[0]], g.cards[g.flipped[1]]
	if first.matches(second) {
		g.matched[first.word] = true
		g.feedback = "✅ Match!"
	} else {
		g.feedback = "❌ No match."
	}
	return nil
}
