package game

import (
	"context"
	"math/rand/v2"
)

// ListenType reads each word aloud and asks the player to type it
type ListenType struct {
	deck     deck
	pending  bool
	feedback string
}

// NewListenType creates a listen and type game over shuffled words
func NewListenType(words []string, r *rand.Rand) *ListenType {
	return &ListenType{deck: deck{words: shuffled(r, words)}, pending: true}
}

func (g *ListenType) Title() string { return "Listen & Type" }

func (g *ListenType) View() View {
	if g.deck.finished() {
		return View{Text: "🔊 Listen & Type complete!", Feedback: g.feedback, Done: true}
	}
	return View{
		Text:     "Word " + g.deck.progress() + "\n\nListen to the recording, then type what you hear.",
		Feedback: g.feedback,
		Buttons:  [][]Button{{{Label: "🔊 Listen again", Value: actListen}}},
	}
}

// Narration implements Narrator
func (g *ListenType) Narration() (string, bool) {
	if !g.pending || g.deck.finished() {
		return "", false
	}
	g.pending = false
	return g.deck.current(), true
}

func (g *ListenType) Answer(_ context.Context, input string) error {
	if g.deck.finished() {
		return nil
	}

	if input == actListen {
		g.feedback = ""
		g.pending = true
		return nil
	}

	if !sameWord(input, g.deck.current()) {
		g.feedback = "❌ Incorrect. Try again!"
		return nil
	}

	g.feedback = "✅ Correct!"
	g.deck.advance()
	g.pending = true
	return nil
}
