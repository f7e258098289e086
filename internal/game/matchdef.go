package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"spellingspark/internal/domain"
)

// wordsPerSet is the number of words matched per round
const wordsPerSet = 4

type itemKind int

const (
	kindWord itemKind = iota
	kindDefinition
)

type matchItem struct {
	kind  itemKind
	value string
	word  string
}

// matches reports whether a and b are the two halves of one pair
func (a matchItem) matches(b matchItem) bool {
	return a.word == b.word && a.kind != b.kind
}

// MatchDefinition pairs words with definitions in rounds of four
type MatchDefinition struct {
	sets     [][]string
	set      int
	defs     domain.Definitions
	rand     *rand.Rand
	items    []matchItem
	selected int
	matched  map[string]bool
	feedback string
}

// NewMatchDefinition creates a match game; it needs at least two words
func NewMatchDefinition(words []string, defs domain.Definitions, r *rand.Rand) (*MatchDefinition, error) {
	if len(words) < 2 {
		return nil, ErrNotEnoughWords
	}
	g := &MatchDefinition{sets: chunkWords(shuffled(r, words), wordsPerSet), defs: defs, rand: r}
	g.deal()
	return g, nil
}

// chunkWords splits words into groups of size; a trailing single word
// joins the previous group so every round has something to match
func chunkWords(words []string, size int) [][]string {
	var sets [][]string
	for start := 0; start < len(words); start += size {
		end := min(start+size, len(words))
		sets = append(sets, words[start:end:end])
	}
	if n := len(sets); n > 1 && len(sets[n-1]) == 1 {
		sets[n-2] = append(sets[n-2], sets[n-1]...)
		sets = sets[:n-1]
	}
	return sets
}

func (g *MatchDefinition) deal() {
	g.items = g.items[:0]
	for _, w := range g.sets[g.set] {
		g.items = append(g.items,
			matchItem{kind: kindWord, value: w, word: w},
			matchItem{kind: kindDefinition, value: g.defs.Of(w), word: w},
		)
	}
	g.rand.Shuffle(len(g.items), func(i, j int) { g.items[i], g.items[j] = g.items[j], g.items[i] })
	g.selected = -1
	g.matched = make(map[string]bool)
}

func (g *MatchDefinition) setComplete() bool {
	return len(g.matched) == len(g.items)/2
}

func (g *MatchDefinition) hasMoreSets() bool {
	return g.set+1 < len(g.sets)
}

func (g *MatchDefinition) Title() string { return "Match Definition" }

func (g *MatchDefinition) View() View {
	if g.setComplete() && !g.hasMoreSets() {
		return View{Text: "🏆 You matched every word!", Feedback: g.feedback, Done: true}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Round %d of %d\n\nTap a word, then its definition.\n", g.set+1, len(g.sets))

	var rows [][]Button
	var row []Button
	label := 'A'
	for i, item := range g.items {
		var text string
		if item.kind == kindWord {
			text = item.value
		} else {
			fmt.Fprintf(&b, "\n%c. %s", label, item.value)
			text = fmt.Sprintf("📖 %c", label)
			label++
		}
		switch {
		case g.matched[item.word]:
			text = "✅ " + text
		case i == g.selected:
			text = "👉 " + text
		}
		row = append(row, Button{Label: text, Value: choice("item", i)})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	if g.setComplete() {
		rows = append(rows, []Button{{Label: "➡️ Next set", Value: actNext}})
	}

	return View{Text: b.String(), Feedback: g.feedback, Buttons: rows}
}

func (g *MatchDefinition) Answer(_ context.Context, input string) error {
	if input == actNext {
		if g.setComplete() && g.hasMoreSets() {
			g.set++
			g.feedback = ""
			g.deal()
		}
		return nil
	}

	i, ok := indexArg(input, "item")
	if !ok || i >= len(g.items) {
		g.feedback = "Tap the buttons to match words and definitions."
		return nil
	}

	item := g.items[i]
	if g.matched[item.word] {
		return nil
	}

	switch {
	case g.selected == i:
		g.selected = -1
		g.feedback = ""
	case g.selected >= 0:
		if g.items[g.selected].matches(item) {
			g.matched[item.word] = true
			g.feedback = "✅ Match!"
			if g.setComplete() && g.hasMoreSets() {
				g.feedback = "✅ Match! Set complete."
			}
		} else {
			g.feedback = "❌ Not a match."
		}
		g.selected = -1
	default:
		g.selected = i
		g.feedback = ""
	}
	return nil
}
