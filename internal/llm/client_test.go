package llm

import (
	"context"
	"encoding/binary"
	"fmt"
	"testing"

	"spellingspark/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	args := m.Called(ctx, prompt, schema)
	return args.String(0), args.Error(1)
}

func (m *mockGenerator) Speech(ctx context.Context, text string) ([]byte, string, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func TestClient_FetchDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		reply    string
		expected domain.Definitions
	}{
		{
			name:  "all words defined",
			words: []string{"apple", "run"},
			reply: `{"definitions":[{"word":"apple","definition":"A round fruit."},{"word":"run","definition":"To move fast on foot."}]}`,
			expected: domain.Definitions{
				"apple": "A round fruit.",
				"run":   "To move fast on foot.",
			},
		},
		{
			name:  "missing word gets placeholder",
			words: []string{"apple", "zzyzx"},
			reply: `{"definitions":[{"word":"apple","definition":"A round fruit."}]}`,
			expected: domain.Definitions{
				"apple": "A round fruit.",
				"zzyzx": domain.DefinitionNotFound,
			},
		},
		{
			name:     "reply word case differs",
			words:    []string{"Paris"},
			reply:    `{"definitions":[{"word":"paris","definition":"The capital city of France."}]}`,
			expected: domain.Definitions{"Paris": "The capital city of France."},
		},
		{
			name:     "empty definition gets placeholder",
			words:    []string{"apple"},
			reply:    `{"definitions":[{"word":"apple","definition":"  "}]}`,
			expected: domain.Definitions{"apple": domain.DefinitionNotFound},
		},
		{
			name:     "word leaking into definition is masked",
			words:    []string{"cat"},
			reply:    `{"definitions":[{"word":"cat","definition":"A Cat is a small furry pet, not a category."}]}`,
			expected: domain.Definitions{"cat": "A _____ is a small furry pet, not a category."},
		},
		{
			name:     "no definitions key",
			words:    []string{"apple"},
			reply:    `{}`,
			expected: domain.Definitions{"apple": domain.DefinitionNotFound},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(mockGenerator)
			gen.On("Generate", mock.Anything, mock.AnythingOfType("string"), definitionSchema).Return(tt.reply, nil)

			client := NewClient(gen, zap.NewNop())
			defs, err := client.FetchDefinitions(context.Background(), tt.words)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, defs)
			gen.AssertExpectations(t)
		})
	}
}

func TestClient_FetchDefinitions_PromptListsWords(t *testing.T) {
	gen := new(mockGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return assert.Contains(t, p, "Words: apple, banana") && assert.Contains(t, p, domain.DefinitionNotFound)
	}), definitionSchema).Return(`{"definitions":[]}`, nil)

	client := NewClient(gen, zap.NewNop())
	_, err := client.FetchDefinitions(context.Background(), []string{"apple", "banana"})

	assert.NoError(t, err)
	gen.AssertExpectations(t)
}

func TestClient_FetchDefinitions_Errors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		gen := new(mockGenerator)
		gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("", fmt.Errorf("quota exceeded"))

		client := NewClient(gen, zap.NewNop())
		defs, err := client.FetchDefinitions(context.Background(), []string{"apple"})

		assert.ErrorIs(t, err, ErrFetchDefinitions)
		assert.Nil(t, defs)
	})

	t.Run("malformed json", func(t *testing.T) {
		gen := new(mockGenerator)
		gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("not json", nil)

		client := NewClient(gen, zap.NewNop())
		defs, err := client.FetchDefinitions(context.Background(), []string{"apple"})

		assert.ErrorIs(t, err, ErrFetchDefinitions)
		assert.Nil(t, defs)
	})

	t.Run("no api key", func(t *testing.T) {
		client := NewClient(nil, zap.NewNop())
		_, err := client.FetchDefinitions(context.Background(), []string{"apple"})

		assert.ErrorIs(t, err, ErrNoAPIKey)
	})

	t.Run("empty list makes no call", func(t *testing.T) {
		gen := new(mockGenerator)

		client := NewClient(gen, zap.NewNop())
		defs, err := client.FetchDefinitions(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, defs)
		gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestClient_ValidateWord(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		err      error
		expected bool
	}{
		{name: "yes", reply: "yes", expected: true},
		{name: "yes with whitespace and case", reply: " Yes\n", expected: true},
		{name: "no", reply: "no", expected: false},
		{name: "chatty answer", reply: "yes, it is", expected: false},
		{name: "api error", err: fmt.Errorf("timeout"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(mockGenerator)
			gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
				return assert.Contains(t, p, `"cold"`)
			}), (*genai.Schema)(nil)).Return(tt.reply, tt.err)

			client := NewClient(gen, zap.NewNop())
			valid, err := client.ValidateWord(context.Background(), "cold")

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, valid)
			gen.AssertExpectations(t)
		})
	}

	t.Run("no api key", func(t *testing.T) {
		client := NewClient(nil, zap.NewNop())
		valid, err := client.ValidateWord(context.Background(), "cold")

		assert.ErrorIs(t, err, ErrNoAPIKey)
		assert.False(t, valid)
	})
}

func TestClient_GenerateParagraph(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gen := new(mockGenerator)
		gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
			return assert.Contains(t, p, "apple, kite")
		}), (*genai.Schema)(nil)).Return("  A kite fell on an apple.\n", nil)

		client := NewClient(gen, zap.NewNop())
		text, err := client.GenerateParagraph(context.Background(), []string{"apple", "kite"})

		assert.NoError(t, err)
		assert.Equal(t, "A kite fell on an apple.", text)
	})

	t.Run("failure returns fallback", func(t *testing.T) {
		gen := new(mockGenerator)
		gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("", fmt.Errorf("boom"))

		client := NewClient(gen, zap.NewNop())
		text, err := client.GenerateParagraph(context.Background(), []string{"apple"})

		assert.Error(t, err)
		assert.Equal(t, StoryFallback, text)
	})
}

func TestClient_Speak(t *testing.T) {
	pcm := []byte{1, 2, 3, 4}

	gen := new(mockGenerator)
	gen.On("Speech", mock.Anything, "apple").Return(pcm, "audio/L16;codec=pcm;rate=16000", nil)

	client := NewClient(gen, zap.NewNop())
	wav, err := client.Speak(context.Background(), "apple")

	require.NoError(t, err)
	require.Len(t, wav, 44+len(pcm))
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, uint32(16000), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(wav[40:44]))
	assert.Equal(t, pcm, wav[44:])
}

func TestClient_Speak_Error(t *testing.T) {
	gen := new(mockGenerator)
	gen.On("Speech", mock.Anything, "apple").Return(nil, "", fmt.Errorf("no audio returned"))

	client := NewClient(gen, zap.NewNop())
	wav, err := client.Speak(context.Background(), "apple")

	assert.Error(t, err)
	assert.Nil(t, wav)
}

func TestMaskWord(t *testing.T) {
	tests := []struct {
		name     string
		def      string
		word     string
		expected string
	}{
		{name: "whole word", def: "An apple is a fruit.", word: "apple", expected: "An _____ is a fruit."},
		{name: "any case", def: "Apple trees grow apples.", word: "apple", expected: "_____ trees grow apples."},
		{name: "inside a longer word", def: "A pineapple is sweet.", word: "apple", expected: "A pineapple is sweet."},
		{name: "ends in accented letter", def: "A small café sells coffee.", word: "café", expected: "A small _____ sells coffee."},
		{name: "accented letter in any case", def: "CAFÉ means a coffee shop.", word: "café", expected: "_____ means a coffee shop."},
		{name: "accented neighbour", def: "Un élève is a pupil.", word: "lève", expected: "Un élève is a pupil."},
		{name: "repeated", def: "cat, cat and cat", word: "cat", expected: "_____, _____ and _____"},
		{name: "blank word", def: "Nothing to hide.", word: " ", expected: "Nothing to hide."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskWord(tt.def, tt.word))
		})
	}
}

func TestSampleRate(t *testing.T) {
	tests := []struct {
		mimeType string
		expected int
	}{
		{mimeType: "audio/L16;codec=pcm;rate=24000", expected: 24000},
		{mimeType: "audio/L16; rate=16000", expected: 16000},
		{mimeType: "audio/L16", expected: defaultSampleRate},
		{mimeType: "audio/L16;rate=abc", expected: defaultSampleRate},
		{mimeType: "", expected: defaultSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			assert.Equal(t, tt.expected, sampleRate(tt.mimeType))
		})
	}
}

func TestNewGeminiGenerator_NoKey(t *testing.T) {
	gen, err := NewGeminiGenerator(context.Background(), "", "", "")
	assert.ErrorIs(t, err, ErrNoAPIKey)
	assert.Nil(t, gen)
}
