// Package game implements the vocabulary mini-games as independent state
// machines. A game never talks to the chat directly: the handler renders
// View and forwards typed text or button values to Answer.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"spellingspark/internal/domain"

	"golang.org/x/text/cases"
)

var (
	ErrUnknownMode       = errors.New("unknown game")
	ErrNoWords           = errors.New("no words to play with")
	ErrNotEnoughWords    = errors.New("need at least two different words")
	ErrNoFourLetterWords = errors.New("no 4-letter words")
	ErrNoLongWords       = errors.New("no words with 5 or more letters")
	ErrNoStory           = errors.New("story could not be generated")
)

// Message returns the text shown to a player when a game cannot start
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNoWords):
		return "You need to provide words to play this game."
	case errors.Is(err, ErrNotEnoughWords):
		return "This game needs at least two different words."
	case errors.Is(err, ErrNoFourLetterWords):
		return "Word Ladder needs at least one 4-letter word in your list."
	case errors.Is(err, ErrNoLongWords):
		return "Word Builder needs at least one word with 5 or more letters."
	case errors.Is(err, ErrNoStory):
		return "Could not generate the story. Please try again."
	}
	return "This game could not be started."
}

// Button actions shared by several games
const (
	actFlip   = "flip"
	actNext   = "next"
	actReset  = "reset"
	actListen = "listen"
)

// Button is an inline choice; Value is passed back to Answer
type Button struct {
	Label string
	Value string
}

// View is everything the handler needs to render a game screen
type View struct {
	Text     string
	Feedback string
	Buttons  [][]Button
	Done     bool
}

// Game is a single mini-game in progress
type Game interface {
	Title() string
	View() View
	// Answer applies typed text or a button value
	Answer(ctx context.Context, input string) error
}

// Narrator is implemented by games that read words aloud.
// Narration returns the pending word once and then reports false.
type Narrator interface {
	Narration() (string, bool)
}

// Oracle is the language model as used by the games
type Oracle interface {
	ValidateWord(ctx context.Context, word string) (bool, error)
	GenerateParagraph(ctx context.Context, words []string) (string, error)
}

// Deps are the collaborators a game may need
type Deps struct {
	Oracle Oracle
	Rand   *rand.Rand
	Now    func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// New starts the game for mode over words and their definitions
func New(ctx context.Context, mode domain.GameMode, words []string, defs domain.Definitions, deps Deps) (Game, error) {
	words = unique(words)
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	deps = deps.withDefaults()

	switch mode {
	case domain.GameFlashcards:
		return NewFlashcards(words, defs, deps.Rand), nil
	case domain.GameQuiz:
		return NewQuiz(words, defs, deps.Rand), nil
	case domain.GameScramble:
		return NewScramble(words, deps.Rand), nil
	case domain.GameHangman:
		return NewHangman(words, deps.Rand), nil
	case domain.GameTypingRace:
		return NewTypingRace(words, deps.Rand, deps.Now), nil
	case domain.GameSillySentence:
		return NewSillySentence(words, deps.Rand), nil
	case domain.GameListenType:
		return NewListenType(words, deps.Rand), nil
	case domain.GameMatchDefinition:
		return NewMatchDefinition(words, defs, deps.Rand)
	case domain.GameReverseDefinition:
		return NewReverseDefinition(words, defs, deps.Rand), nil
	case domain.GameMemoryMatch:
		return NewMemoryMatch(words, defs, deps.Rand)
	case domain.GameWordLadder:
		return NewWordLadder(words, deps.Oracle, deps.Rand)
	case domain.GameWordBuilder:
		return NewWordBuilder(words, deps.Oracle, deps.Rand)
	case domain.GameDefinitionDuel:
		return NewDefinitionDuel(words, defs, deps.Rand)
	case domain.GameWordDetective:
		return NewWordDetective(ctx, words, deps.Oracle, deps.Rand)
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
}

// unique drops blank words and words repeated in any case,
// keeping the first spelling
func unique(words []string) []string {
	fold := cases.Fold()
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		key := fold.String(strings.TrimSpace(w))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w)
	}
	return out
}

// shuffled returns a shuffled copy of words
func shuffled(r *rand.Rand, words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// sameWord compares answers ignoring surrounding space and case
func sameWord(a, b string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}

// scramble shuffles the letters of word until they differ from it.
// Words that cannot be rearranged (e.g. "aa") are returned as is.
func scramble(r *rand.Rand, word string) string {
	letters := []rune(word)
	for attempt := 0; attempt < 50; attempt++ {
		r.Shuffle(len(letters), func(i, j int) { letters[i], letters[j] = letters[j], letters[i] })
		if s := string(letters); s != word {
			return s
		}
	}
	return word
}

// indexArg parses button values of the form "<prefix>:<n>"
func indexArg(input, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(input, prefix+":")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func choice(prefix string, i int) string {
	return prefix + ":" + strconv.Itoa(i)
}

// truncate shortens s to at most n runes for button labels
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// deck walks through words one at a time
type deck struct {
	words []string
	index int
}

func (d *deck) current() string {
	if d.finished() {
		return ""
	}
	return d.words[d.index]
}

func (d *deck) advance() {
	if !d.finished() {
		d.index++
	}
}

func (d *deck) finished() bool {
	return d.index >= len(d.words)
}

func (d *deck) progress() string {
	return fmt.Sprintf("%d of %d", d.index+1, len(d.words))
}

// score keeps right/total counts for games that report a result
type score struct {
	right, total int
}

func (s *score) record(ok bool) {
	s.total++
	if ok {
		s.right++
	}
}

func (s score) String() string {
	return fmt.Sprintf("Score: %d/%d", s.right, s.total)
}
