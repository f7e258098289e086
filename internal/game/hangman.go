package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxMistakes is the number of wrong guesses that lose a hangman round
const MaxMistakes = 6

// Hangman is the classic letter guessing game over a random word
type Hangman struct {
	words    []string
	rand     *rand.Rand
	word     string
	guessed  []rune
	mistakes int
	feedback string
}

// NewHangman starts a round with a random word
func NewHangman(words []string, r *rand.Rand) *Hangman {
	g := &Hangman{words: words, rand: r}
	g.reset()
	return g
}

func (g *Hangman) reset() {
	g.word = strings.ToLower(g.words[g.rand.IntN(len(g.words))])
	g.guessed = nil
	g.mistakes = 0
	g.feedback = ""
}

func (g *Hangman) hasGuessed(r rune) bool {
	for _, l := range g.guessed {
		if l == r {
			return true
		}
	}
	return false
}

// Masked returns the word with unguessed letters as "_".
// Characters that are not letters are always shown.
func (g *Hangman) Masked() string {
	parts := make([]string, 0, len(g.word))
	for _, r := range g.word {
		if !unicode.IsLetter(r) || g.hasGuessed(r) {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// Won reports whether every letter has been guessed
func (g *Hangman) Won() bool {
	return !strings.Contains(g.Masked(), "_")
}

// Lost reports whether the mistake limit was reached
func (g *Hangman) Lost() bool {
	return g.mistakes >= MaxMistakes
}

func (g *Hangman) Title() string { return "Hangman" }

func (g *Hangman) View() View {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nMistakes: %d/%d", g.Masked(), g.mistakes, MaxMistakes)
	if len(g.guessed) > 0 {
		letters := make([]string, len(g.guessed))
		for i, r := range g.guessed {
			letters[i] = string(r)
		}
		fmt.Fprintf(&b, "\nGuessed: %s", strings.Join(letters, " "))
	}

	switch {
	case g.Won():
		b.WriteString("\n\n🎉 You win!")
	case g.Lost():
		fmt.Fprintf(&b, "\n\n💀 Game over! The word was %q.", g.word)
	default:
		b.WriteString("\n\nSend a letter to guess.")
		return View{Text: b.String(), Feedback: g.feedback}
	}

	return View{
		Text:    b.String(),
		Buttons: [][]Button{{{Label: "🔁 Play again", Value: actReset}}},
		Done:    true,
	}
}

func (g *Hangman) Answer(_ context.Context, input string) error {
	if input == actReset {
		g.reset()
		return nil
	}
	if g.Won() || g.Lost() {
		return nil
	}

	input = strings.ToLower(strings.TrimSpace(input))
	letter, size := utf8.DecodeRuneInString(input)
	if size == 0 || size != len(input) || !unicode.IsLetter(letter) {
		g.feedback = "Guess one letter at a time."
		return nil
	}

	if g.hasGuessed(letter) {
		g.feedback = ""
		return nil
	}

	g.guessed = append(g.guessed, letter)
	if strings.ContainsRune(g.word, letter) {
		g.feedback = "✅ Good guess!"
	} else {
		g.mistakes++
		g.feedback = "❌ Not in the word."
	}
	return nil
}
