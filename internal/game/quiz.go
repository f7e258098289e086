package game

import (
	"context"
	"fmt"
	"math/rand/v2"

	"spellingspark/internal/domain"
)

// fakeSpellings is the number of wrong options offered per question
const fakeSpellings = 3

// Quiz shows a definition and asks for the correct spelling among scrambles
type Quiz struct {
	deck     deck
	defs     domain.Definitions
	rand     *rand.Rand
	options  []string
	score    score
	feedback string
}

// NewQuiz creates a spelling quiz over shuffled words
func NewQuiz(words []string, defs domain.Definitions, r *rand.Rand) *Quiz {
	g := &Quiz{deck: deck{words: shuffled(r, words)}, defs: defs, rand: r}
	g.prepare()
	return g
}

// fakeWords returns up to n distinct scrambles of word, none equal to it
func fakeWords(r *rand.Rand, word string, n int) []string {
	seen := map[string]bool{word: true}
	var fakes []string
	for attempt := 0; attempt < 100 && len(fakes) < n; attempt++ {
		fake := scramble(r, word)
		if !seen[fake] {
			seen[fake] = true
			fakes = append(fakes, fake)
		}
	}
	return fakes
}

func (g *Quiz) prepare() {
	if g.deck.finished() {
		g.options = nil
		return
	}
	word := g.deck.current()
	g.options = shuffled(g.rand, append([]string{word}, fakeWords(g.rand, word, fakeSpellings)...))
}

func (g *Quiz) Title() string { return "Spelling Quiz" }

func (g *Quiz) View() View {
	if g.deck.finished() {
		return View{
			Text:     "🎓 Quiz complete!\n\n" + g.score.String(),
			Feedback: g.feedback,
			Done:     true,
		}
	}

	rows := make([][]Button, len(g.options))
	for i, opt := range g.options {
		rows[i] = []Button{{Label: opt, Value: choice("opt", i)}}
	}

	return View{
		Text: fmt.Sprintf("Question %s\n\nChoose the correct spelling for the definition:\n\n\"%s\"",
			g.deck.progress(), g.defs.Of(g.deck.current())),
		Feedback: g.feedback,
		Buttons:  rows,
	}
}

func (g *Quiz) Answer(_ context.Context, input string) error {
	if g.deck.finished() {
		return nil
	}

	i, ok := indexArg(input, "opt")
	if !ok || i >= len(g.options) {
		g.feedback = "Pick one of the options below."
		return nil
	}

	word := g.deck.current()
	if g.options[i] == word {
		g.feedback = "✅ Correct!"
		g.score.record(true)
	} else {
		g.feedback = fmt.Sprintf("❌ Incorrect. The correct spelling is %q.", word)
		g.score.record(false)
	}

	g.deck.advance()
	g.prepare()
	return nil
}
