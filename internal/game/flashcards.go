package game

import (
	"context"
	"fmt"
	"math/rand/v2"

	"spellingspark/internal/domain"
)

// Flashcards shows one word at a time; flipping reveals its definition
type Flashcards struct {
	deck     deck
	defs     domain.Definitions
	flipped  bool
	feedback string
}

// NewFlashcards creates a flashcard game over shuffled words
func NewFlashcards(words []string, defs domain.Definitions, r *rand.Rand) *Flashcards {
	return &Flashcards{deck: deck{words: shuffled(r, words)}, defs: defs}
}

func (g *Flashcards) Title() string { return "Flashcards" }

func (g *Flashcards) View() View {
	if g.deck.finished() {
		return View{Text: "🎉 You've reviewed all the cards!", Done: true}
	}

	face := "📝 " + g.deck.current()
	if g.flipped {
		face = "📖 " + g.defs.Of(g.deck.current())
	}

	return View{
		Text:     fmt.Sprintf("Card %s\n\n%s", g.deck.progress(), face),
		Feedback: g.feedback,
		Buttons: [][]Button{{
			{Label: "🔄 Flip", Value: actFlip},
			{Label: "➡️ Next", Value: actNext},
		}},
	}
}

func (g *Flashcards) Answer(_ context.Context, input string) error {
	g.feedback = ""
	if g.deck.finished() {
		return nil
	}

	switch input {
	case actFlip:
		g.flipped = !g.flipped
	case actNext:
		g.deck.advance()
		g.flipped = false
	default:
		g.feedback = "Use the buttons to flip or move on."
	}
	return nil
}
