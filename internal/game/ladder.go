package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

// ladderLength is the length of every word on the ladder
const ladderLength = 4

// WordLadder builds a chain of words, each one letter away from the last
type WordLadder struct {
	oracle   Oracle
	path     []string
	feedback string
}

// NewWordLadder starts on a random 4-letter word from words
func NewWordLadder(words []string, oracle Oracle, r *rand.Rand) (*WordLadder, error) {
	var four []string
	for _, w := range words {
		if utf8.RuneCountInString(w) == ladderLength {
			four = append(four, strings.ToLower(w))
		}
	}
	if len(four) == 0 {
		return nil, ErrNoFourLetterWords
	}

	return &WordLadder{oracle: oracle, path: []string{four[r.IntN(len(four))]}}, nil
}

// oneLetterApart reports whether a and b differ in exactly one position
func oneLetterApart(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	diff := 0
	for i := range ra {
		if ra[i] != rb[i] {
			diff++
		}
	}
	return diff == 1
}

// Current returns the top of the ladder
func (g *WordLadder) Current() string {
	return g.path[len(g.path)-1]
}

// Path returns the words climbed so far
func (g *WordLadder) Path() []string {
	return append([]string(nil), g.path...)
}

func (g *WordLadder) Title() string { return "Word Ladder" }

func (g *WordLadder) View() View {
	return View{
		Text: fmt.Sprintf("🪜 %s\n\nSteps: %d\n\nChange one letter of %q to make a new word.",
			strings.Join(g.path, " → "), len(g.path)-1, g.Current()),
		Feedback: g.feedback,
	}
}

func (g *WordLadder) Answer(ctx context.Context, input string) error {
	word := strings.ToLower(strings.TrimSpace(input))

	if utf8.RuneCountInString(word) != ladderLength {
		g.feedback = "❌ Word must be 4 letters long."
		return nil
	}
	if !oneLetterApart(g.Current(), word) {
		g.feedback = "❌ Must change exactly one letter."
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

	g.path = append(g.path, word)
	g.feedback = "✅ Nice one!"
	return nil
}
