package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIDecoder generates candidate queries through the OpenAI chat
// completion API.
type OpenAIDecoder struct {
	client *openai.Client
	model  string
}

func NewOpenAIDecoder(config Config) (*OpenAIDecoder, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	model := config.Model
	if model == "" {
		model = openai.GPT4o
	}

	return &OpenAIDecoder{
		client: openai.NewClient(config.APIKey),
		model:  model,
	}, nil
}

// Decode maps the decoding configuration onto the chat completion
// request: MaxLength bounds the completion tokens, NumReturnSequences
// becomes the choice count, and the repetition penalty's excess over the
// neutral 1.0 feeds the frequency penalty. Beam knobs have no chat
// equivalent and are ignored.
func (d *OpenAIDecoder) Decode(ctx context.Context, prompt string, cfg DecodingConfig) ([]string, error) {
	n := cfg.NumReturnSequences
	if n < 1 {
		n = 1
	}

	req := openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: decoderSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:        cfg.MaxLength,
		TopP:             float32(cfg.TopP),
		N:                n,
		FrequencyPenalty: float32(cfg.RepetitionPenalty - 1.0),
	}

	resp, err := d.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	candidates := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		candidates = append(candidates, strings.TrimSpace(choice.Message.Content))
	}
	return candidates, nil
}

func (d *OpenAIDecoder) ModelInfo() ModelInfo {
	return ModelInfo{
		Name:     d.model,
		Provider: ProviderOpenAI,
	}
}
