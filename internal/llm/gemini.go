package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator is the hosted model as seen by Client
type Generator interface {
	// Generate returns the text reply to prompt. A non-nil schema asks for
	// a JSON reply matching it.
	Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	// Speech returns spoken text as raw audio along with its MIME type
	Speech(ctx context.Context, text string) ([]byte, string, error)
}

// GeminiGenerator implements Generator with the Gemini API
type GeminiGenerator struct {
	client      *genai.Client
	model       string
	speechModel string
	voice       string
}

// NewGeminiGenerator creates a Gemini backed generator
func NewGeminiGenerator(ctx context.Context, apiKey, model, speechModel string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	if model == "" {
		model = "gemini-2.5-flash"
	}
	if speechModel == "" {
		speechModel = "gemini-2.5-flash-preview-tts"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiGenerator{
		client:      client,
		model:       model,
		speechModel: speechModel,
		voice:       "Kore",
	}, nil
}

// Generate implements Generator
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	var cfg *genai.GenerateContentConfig
	if schema != nil {
		cfg = &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	return resp.Text(), nil
}

// Speech implements Generator
func (g *GeminiGenerator) Speech(ctx context.Context, text string) ([]byte, string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.voice},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.speechModel, genai.Text("Say clearly: "+text), cfg)
	if err != nil {
		return nil, "", fmt.Errorf("GenAI speech failed: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, part.InlineData.MIMEType, nil
			}
		}
	}

	return nil, "", fmt.Errorf("no audio returned")
}
