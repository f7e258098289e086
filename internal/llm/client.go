package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"spellingspark/internal/domain"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var (
	// ErrNoAPIKey is returned when the API key is not configured
	ErrNoAPIKey = errors.New("API key not configured")
	// ErrFetchDefinitions is the single error surfaced for failed definition requests
	ErrFetchDefinitions = errors.New("could not fetch definitions")
)

// StoryFallback replaces a paragraph that could not be generated
const StoryFallback = "Could not generate the story. Please try again."

// wordMask replaces a word leaking into its own definition
const wordMask = "_____"

var definitionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"definitions": {
			Type:        genai.TypeArray,
			Description: "An array of word-definition pairs.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"word": {
						Type:        genai.TypeString,
						Description: "The word being defined.",
					},
					"definition": {
						Type:        genai.TypeString,
						Description: "A simple, one-sentence definition suitable for a young learner (under 20 words). The definition must not contain the word it is defining.",
					},
				},
				Required: []string{"word", "definition"},
			},
		},
	},
	Required: []string{"definitions"},
}

type definitionsReply struct {
	Definitions []struct {
		Word       string `json:"word"`
		Definition string `json:"definition"`
	} `json:"definitions"`
}

// Client exposes the vocabulary operations backed by a Generator
type Client struct {
	gen    Generator
	logger *zap.Logger
}

// NewClient creates a client. A nil generator makes every call fail with ErrNoAPIKey.
func NewClient(gen Generator, logger *zap.Logger) *Client {
	return &Client{gen: gen, logger: logger}
}

// FetchDefinitions returns a definition for every word in words
func (c *Client) FetchDefinitions(ctx context.Context, words []string) (domain.Definitions, error) {
	if c.gen == nil {
		return nil, ErrNoAPIKey
	}
	if len(words) == 0 {
		return domain.Definitions{}, nil
	}

	prompt := fmt.Sprintf(
		"For each word in the following list, provide a simple, one-sentence definition suitable for a young learner (under 20 words). "+
			"Crucially, the definition for a word must not contain the word itself. "+
			"If a word cannot be defined, provide %q. Words: %s",
		domain.DefinitionNotFound, strings.Join(words, ", "),
	)

	text, err := c.gen.Generate(ctx, prompt, definitionSchema)
	if err != nil {
		c.logger.Error("Error fetching definitions", zap.Error(err), zap.Int("words", len(words)))
		return nil, fmt.Errorf("%w: %w", ErrFetchDefinitions, err)
	}

	var reply definitionsReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		c.logger.Error("Malformed definitions reply", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFetchDefinitions, err)
	}

	byWord := make(map[string]string, len(reply.Definitions))
	for _, item := range reply.Definitions {
		byWord[strings.ToLower(strings.TrimSpace(item.Word))] = strings.TrimSpace(item.Definition)
	}

	defs := make(domain.Definitions, len(words))
	for _, w := range words {
		def := byWord[strings.ToLower(w)]
		if def == "" {
			def = domain.DefinitionNotFound
		} else {
			def = maskWord(def, w)
		}
		defs[w] = def
	}

	return defs, nil
}

// ValidateWord asks whether word is a valid, common English word.
// A failed call counts as "not valid".
func (c *Client) ValidateWord(ctx context.Context, word string) (bool, error) {
	if c.gen == nil {
		return false, ErrNoAPIKey
	}

	prompt := fmt.Sprintf("Is %q a valid, common English word? Answer only with \"yes\" or \"no\".", word)
	text, err := c.gen.Generate(ctx, prompt, nil)
	if err != nil {
		c.logger.Warn("Error validating word", zap.String("word", word), zap.Error(err))
		return false, nil
	}

	return strings.ToLower(strings.TrimSpace(text)) == "yes", nil
}

// GenerateParagraph writes a short story containing every word.
// On failure StoryFallback is returned together with the error.
func (c *Client) GenerateParagraph(ctx context.Context, words []string) (string, error) {
	if c.gen == nil {
		return "", ErrNoAPIKey
	}

	prompt := fmt.Sprintf(
		"Write a short, simple paragraph for a young learner that naturally includes the following words: %s. "+
			"Do not highlight, bold, or format the special words in any way.",
		strings.Join(words, ", "),
	)
	text, err := c.gen.Generate(ctx, prompt, nil)
	if err != nil {
		c.logger.Error("Error generating paragraph", zap.Error(err))
		return StoryFallback, err
	}

	return strings.TrimSpace(text), nil
}

// Speak returns a WAV recording of word
func (c *Client) Speak(ctx context.Context, word string) ([]byte, error) {
	if c.gen == nil {
		return nil, ErrNoAPIKey
	}

	pcm, mimeType, err := c.gen.Speech(ctx, word)
	if err != nil {
		return nil, err
	}

	return encodeWAV(pcm, sampleRate(mimeType)), nil
}

// maskWord hides whole-word occurrences of word inside def
func maskWord(def, word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return def
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(word))

	var out strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(def, -1) {
		start, end := loc[0], loc[1]
		before, _ := utf8.DecodeLastRuneInString(def[:start])
		after, _ := utf8.DecodeRuneInString(def[end:])
		// RE2's \b is ASCII only, so word edges are checked by hand
		if isWordRune(before) || isWordRune(after) {
			continue
		}
		out.WriteString(def[last:start])
		out.WriteString(wordMask)
		last = end
	}
	out.WriteString(def[last:])
	return out.String()
}

func isWordRune(r rune) bool {
	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}
