package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// TypingRace times the player typing every word correctly
type TypingRace struct {
	deck     deck
	now      func() time.Time
	started  time.Time
	elapsed  time.Duration
	feedback string
}

// NewTypingRace creates a typing race; the clock starts immediately
func NewTypingRace(words []string, r *rand.Rand, now func() time.Time) *TypingRace {
	return &TypingRace{deck: deck{words: shuffled(r, words)}, now: now, started: now()}
}

func (g *TypingRace) Title() string { return "Typing Race" }

func (g *TypingRace) View() View {
	if g.deck.finished() {
		return View{
			Text:     fmt.Sprintf("🏁 Typing race complete!\n\nTime: %.1fs", g.elapsed.Seconds()),
			Feedback: g.feedback,
			Done:     true,
		}
	}
	return View{
		Text:     "Word " + g.deck.progress() + "\n\nType this word as fast as you can:\n\n⌨️ " + g.deck.current(),
		Feedback: g.feedback,
	}
}

func (g *TypingRace) Answer(_ context.Context, input string) error {
	if g.deck.finished() {
		return nil
	}

	if !sameWord(input, g.deck.current()) {
		g.feedback = "❌ Incorrect. Try again!"
		return nil
	}

	g.feedback = "✅ Correct!"
	g.deck.advance()
	if g.deck.finished() {
		g.elapsed = g.now().Sub(g.started)
	}
	return nil
}
