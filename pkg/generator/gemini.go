package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiDecoder generates candidate queries through the Gemini content
// generation API.
type GeminiDecoder struct {
	client *genai.Client
	model  string
}

func NewGeminiDecoder(config Config) (*GeminiDecoder, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if config.Model == "" {
		return nil, fmt.Errorf("gemini model name is required")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiDecoder{
		client: client,
		model:  config.Model,
	}, nil
}

// Decode maps the decoding configuration onto the Gemini generation
// config: MaxLength bounds output tokens, TopP/TopK carry over directly,
// NumReturnSequences becomes the candidate count. Beam knobs have no
// Gemini equivalent and are ignored.
func (d *GeminiDecoder) Decode(ctx context.Context, prompt string, cfg DecodingConfig) ([]string, error) {
	model := d.client.GenerativeModel(d.model)
	model.MaxOutputTokens = int32Ptr(int32(cfg.MaxLength))
	model.SetTopP(float32(cfg.TopP))
	model.SetTopK(int32(cfg.TopK))
	if cfg.NumReturnSequences > 0 {
		model.CandidateCount = int32Ptr(int32(cfg.NumReturnSequences))
	}
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(decoderSystemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no response from Gemini")
	}

	candidates := make([]string, 0, len(resp.Candidates))
	for _, cand := range resp.Candidates {
		if cand.Content == nil || len(cand.Content.Parts) == 0 {
			continue
		}
		text := fmt.Sprintf("%v", cand.Content.Parts[0])
		text = strings.ReplaceAll(text, "```", "")
		candidates = append(candidates, strings.TrimSpace(text))
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("empty candidates from Gemini")
	}
	return candidates, nil
}

func (d *GeminiDecoder) ModelInfo() ModelInfo {
	return ModelInfo{
		Name:     d.model,
		Provider: ProviderGemini,
	}
}

func int32Ptr(v int32) *int32 { return &v }
