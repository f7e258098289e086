package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	builderSourceLength = 5
	builderMinLength    = 3
)

// WordBuilder asks for words made from the letters of a longer word
type WordBuilder struct {
	oracle   Oracle
	rand     *rand.Rand
	sources  []string
	source   string
	letters  []rune
	found    []string
	feedback string
}

// NewWordBuilder picks a random source word of at least five letters
func NewWordBuilder(words []string, oracle Oracle, r *rand.Rand) (*WordBuilder, error) {
	var long []string
	for _, w := range words {
		if utf8.RuneCountInString(w) >= builderSourceLength {
			long = append(long, strings.ToLower(w))
		}
	}
	if len(long) == 0 {
		return nil, ErrNoLongWords
	}

	g := &WordBuilder{oracle: oracle, rand: r, sources: long}
	g.reset()
	return g, nil
}

func (g *WordBuilder) reset() {
	g.source = g.sources[g.rand.IntN(len(g.sources))]
	g.letters = []rune(g.source)
	g.rand.Shuffle(len(g.letters), func(i, j int) { g.letters[i], g.letters[j] = g.letters[j], g.letters[i] })
	g.found = nil
	g.feedback = ""
}

// canMakeWord reports whether word uses only the given letters,
// each at most as often as it appears
func canMakeWord(word string, letters []rune) bool {
	left := make(map[rune]int, len(letters))
	for _, l := range letters {
		left[l]++
	}
	for _, r := range word {
		if left[r] == 0 {
			return false
		}
		left[r]--
	}
	return true
}

// Found returns the accepted words in alphabetical order
func (g *WordBuilder) Found() []string {
	return append([]string(nil), g.found...)
}

func (g *WordBuilder) Title() string { return "Word Builder" }

func (g *WordBuilder) View() View {
	letters := make([]string, len(g.letters))
	for i, l := range g.letters {
		letters[i] = strings.ToUpper(string(l))
	}

	text := fmt.Sprintf("🧩 %s\n\nMake words of %d or more letters.", strings.Join(letters, " "), builderMinLength)
	if len(g.found) > 0 {
		text += fmt.Sprintf("\n\nFound (%d): %s", len(g.found), strings.Join(g.found, ", "))
	}

	return View{
		Text:     text,
		Feedback: g.feedback,
		Buttons:  [][]Button{{{Label: "🔁 New letters", Value: actReset}}},
	}
}

func (g *WordBuilder) Answer(ctx context.Context, input string) error {
	if input == actReset {
		g.reset()
		return nil
	}

	word := strings.ToLower(strings.TrimSpace(input))

	if utf8.RuneCountInString(word) < builderMinLength {
		g.feedback = "❌ Words must be at least 3 letters long."
		return nil
	}
	for _, f := range g.found {
		if f == word {
			g.feedback = "👍 You already found that one!"
			return nil
		}
	}
	if !canMakeWord(word, g.letters) {
		g.feedback = "❌ You can only use the letters provided."
		return nil
	}

	valid, err := g.oracle.ValidateWord(ctx, word)
	if err != nil {
		return fmt.Errorf("failed to validate %q: %w", word, err)
	}
	if !valid {
		g.feedback = fmt.Sprintf("❌ %q is not a valid word.", word)
		return nil
	}

	g.found = append(g.found, word)
	sort.Strings(g.found)
	g.feedback = fmt.Sprintf("✅ Added %q!", word)
	return nil
}
