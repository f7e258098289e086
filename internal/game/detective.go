package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
)

// detectiveWords caps how many words are hidden in the story
const detectiveWords = 5

// WordDetective hides words in a generated story for the player to find
type WordDetective struct {
	paragraph string
	toFind    []string
	found     map[string]bool
	feedback  string
}

// cleanToken strips trailing punctuation and case from a story word
func cleanToken(s string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', '!', '?':
			return -1
		}
		return r
	}, s))
}

// NewWordDetective asks the oracle for a story containing up to five words.
// Words the story does not actually contain are not asked for.
func NewWordDetective(ctx context.Context, words []string, oracle Oracle, r *rand.Rand) (*WordDetective, error) {
	picked := shuffled(r, words)
	if len(picked) > detectiveWords {
		picked = picked[:detectiveWords]
	}

	lower := make([]string, len(picked))
	for i, w := range picked {
		lower[i] = strings.ToLower(w)
	}

	paragraph, err := oracle.GenerateParagraph(ctx, lower)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoStory, err)
	}

	present := make(map[string]bool)
	for _, tok := range strings.Fields(paragraph) {
		present[cleanToken(tok)] = true
	}

	var toFind []string
	for _, w := range picked {
		if present[strings.ToLower(w)] {
			toFind = append(toFind, w)
		}
	}
	if len(toFind) == 0 {
		return nil, ErrNoStory
	}

	return &WordDetective{
		paragraph: paragraph,
		toFind:    toFind,
		found:     make(map[string]bool),
	}, nil
}

// Complete reports whether every hidden word was found
func (g *WordDetective) Complete() bool {
	return len(g.found) == len(g.toFind)
}

func (g *WordDetective) Title() string { return "Word Detective" }

func (g *WordDetective) View() View {
	var b strings.Builder
	b.WriteString("Find the hidden words in the story and send them to me.\n\n")
	b.WriteString(g.paragraph)
	fmt.Fprintf(&b, "\n\nWords to find (%d/%d):", len(g.found), len(g.toFind))
	for _, w := range g.toFind {
		mark := "🔍"
		if g.found[w] {
			mark = "✅"
		}
		fmt.Fprintf(&b, "\n%s %s", mark, w)
	}

	if g.Complete() {
		b.WriteString("\n\n🎉 Case Solved! You found all the words!")
		return View{Text: b.String(), Feedback: g.feedback, Done: true}
	}
	return View{Text: b.String(), Feedback: g.feedback}
}

func (g *WordDetective) Answer(_ context.Context, input string) error {
	if g.Complete() {
		return nil
	}

	var hits, misses []string
	for _, tok := range strings.Fields(input) {
		clean := cleanToken(tok)
		hit := ""
		for _, w := range g.toFind {
			if strings.ToLower(w) == clean && !g.found[w] {
				hit = w
				break
			}
		}
		if hit == "" {
			misses = append(misses, tok)
			continue
		}
		g.found[hit] = true
		hits = append(hits, hit)
	}

	switch {
	case len(hits) > 0:
		g.feedback = fmt.Sprintf("🔎 Found: %s", strings.Join(hits, ", "))
	case len(misses) > 0:
		g.feedback = fmt.Sprintf("❌ %q is not one of the hidden words.", strings.Join(misses, " "))
	default:
		g.feedback = ""
	}
	return nil
}
