package game

import (
	"context"
	"fmt"
	"math/rand/v2"
)

var sillyTemplates = []string{
	"The %s danced on a rainbow while eating spaghetti.",
	"My pet %s can sing opera better than a professional.",
	"I saw a giant %s flying a kite on the moon.",
	"Why did the %s wear a tutu to the grocery store?",
}

// SillySentence drops the words into silly sentence templates, endlessly
type SillySentence struct {
	words []string
	id    int
}

// NewSillySentence creates a silly sentence game over shuffled words
func NewSillySentence(words []string, r *rand.Rand) *SillySentence {
	return &SillySentence{words: shuffled(r, words)}
}

func (g *SillySentence) Title() string { return "Silly Sentence" }

// Sentence returns the sentence currently shown
func (g *SillySentence) Sentence() string {
	word := g.words[g.id%len(g.words)]
	return fmt.Sprintf(sillyTemplates[g.id%len(sillyTemplates)], word)
}

func (g *SillySentence) View() View {
	return View{
		Text:    "🤪 " + g.Sentence(),
		Buttons: [][]Button{{{Label: "✨ New sentence", Value: actNext}}},
	}
}

func (g *SillySentence) Answer(_ context.Context, input string) error {
	if input == actNext {
		g.id++
	}
	return nil
}
