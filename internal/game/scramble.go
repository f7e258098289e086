package game

import (
	"context"
	"math/rand/v2"
)

// Scramble asks the player to unscramble each word
type Scramble struct {
	deck      deck
	rand      *rand.Rand
	scrambled string
	feedback  string
}

// NewScramble creates a scramble game over shuffled words
func NewScramble(words []string, r *rand.Rand) *Scramble {
	g := &Scramble{deck: deck{words: shuffled(r, words)}, rand: r}
	g.scrambled = scramble(r, g.deck.current())
	return g
}

func (g *Scramble) Title() string { return "Scramble" }

func (g *Scramble) View() View {
	if g.deck.finished() {
		return View{Text: "🎉 Scramble complete!", Feedback: g.feedback, Done: true}
	}
	return View{
		Text:     "Word " + g.deck.progress() + "\n\nUnscramble the letters:\n\n🔀 " + g.scrambled,
		Feedback: g.feedback,
	}
}

func (g *Scramble) Answer(_ context.Context, input string) error {
	if g.deck.finished() {
		return nil
	}

	if !sameWord(input, g.deck.current()) {
		g.feedback = "❌ Incorrect. Try again!"
		return nil
	}

	g.feedback = "✅ Correct!"
	g.deck.advance()
	g.scrambled = scramble(g.rand, g.deck.current())
	return nil
}
