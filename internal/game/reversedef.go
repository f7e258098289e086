package game

import (
	"context"
	"fmt"
	"math/rand/v2"

	"spellingspark/internal/domain"
)

// ReverseDefinition shows a definition and asks for the word.
// Every answer moves on, right or wrong.
type ReverseDefinition struct {
	deck     deck
	defs     domain.Definitions
	score    score
	lastOK   bool
	feedback string
}

// NewReverseDefinition creates a reverse definition game over shuffled words
func NewReverseDefinition(words []string, defs domain.Definitions, r *rand.Rand) *ReverseDefinition {
	return &ReverseDefinition{deck: deck{words: shuffled(r, words)}, defs: defs}
}

func (g *ReverseDefinition) Title() string { return "Reverse Definition" }

func (g *ReverseDefinition) View() View {
	if g.deck.finished() {
		headline := "🎉 Game Over!"
		if g.lastOK {
			headline = "🎉 You guessed them all!"
		}
		return View{
			Text:     headline + "\n\n" + g.score.String(),
			Feedback: g.feedback,
			Done:     true,
		}
	}
	return View{
		Text: fmt.Sprintf("Definition %s\n\nWhich word matches this definition?\n\n\"%s\"",
			g.deck.progress(), g.defs.Of(g.deck.current())),
		Feedback: g.feedback,
	}
}

func (g *ReverseDefinition) Answer(_ context.Context, input string) error {
	if g.deck.finished() {
		return nil
	}

	word := g.deck.current()
	g.lastOK = sameWord(input, word)
	g.score.record(g.lastOK)
	if g.lastOK {
		g.feedback = "✅ Correct!"
	} else {
		g.feedback = fmt.Sprintf("❌ Incorrect. The answer was %q.", word)
	}

	g.deck.advance()
	return nil
}
