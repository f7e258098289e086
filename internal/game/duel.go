package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"spellingspark/internal/domain"
)

type duelOption struct {
	definition string
	correct    bool
}

// DefinitionDuel pits a word's definition against an imposter's
type DefinitionDuel struct {
	deck     deck
	words    []string
	defs     domain.Definitions
	rand     *rand.Rand
	options  []duelOption
	score    score
	feedback string
}

// NewDefinitionDuel needs at least two words that differ beyond case
func NewDefinitionDuel(words []string, defs domain.Definitions, r *rand.Rand) (*DefinitionDuel, error) {
	distinct := make(map[string]bool)
	for _, w := range words {
		distinct[strings.ToLower(w)] = true
	}
	if len(distinct) < 2 {
		return nil, ErrNotEnoughWords
	}

	g := &DefinitionDuel{deck: deck{words: shuffled(r, words)}, words: words, defs: defs, rand: r}
	g.prepare()
	return g, nil
}

func (g *DefinitionDuel) prepare() {
	if g.deck.finished() {
		g.options = nil
		return
	}

	word := g.deck.current()
	var others []string
	for _, w := range g.words {
		if !strings.EqualFold(w, word) {
			others = append(others, w)
		}
	}
	imposter := others[g.rand.IntN(len(others))]

	g.options = []duelOption{
		{definition: g.defs.Of(word), correct: true},
		{definition: g.defs.Of(imposter), correct: false},
	}
	g.rand.Shuffle(len(g.options), func(i, j int) { g.options[i], g.options[j] = g.options[j], g.options[i] })
}

func (g *DefinitionDuel) Title() string { return "Definition Duel" }

func (g *DefinitionDuel) View() View {
	if g.deck.finished() {
		return View{
			Text:     "🎉 Duel complete!\n\n" + g.score.String(),
			Feedback: g.feedback,
			Done:     true,
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Round %s\n\nWhich is the correct definition for %q?\n", g.deck.progress(), g.deck.current())
	row := make([]Button, len(g.options))
	for i, opt := range g.options {
		label := string(rune('A' + i))
		fmt.Fprintf(&b, "\n%s. %s", label, opt.definition)
		row[i] = Button{Label: label, Value: choice("opt", i)}
	}

	return View{Text: b.String(), Feedback: g.feedback, Buttons: [][]Button{row}}
}

func (g *DefinitionDuel) Answer(_ context.Context, input string) error {
	if g.deck.finished() {
		return nil
	}

	i, ok := indexArg(input, "opt")
	if !ok || i >= len(g.options) {
		g.feedback = "Pick A or B."
		return nil
	}

	if g.options[i].correct {
		g.feedback = "✅ Correct!"
	} else {
		g.feedback = "❌ Incorrect!"
	}
	g.score.record(g.options[i].correct)

	g.deck.advance()
	g.prepare()
	return nil
}
