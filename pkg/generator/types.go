// Package generator wraps pretrained text-to-text models behind a
// uniform decoding capability. The translation core only sees the
// Decoder interface; concrete backends are registered by provider name.
package generator

import "context"

// Supported providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// DecodingConfig carries the beam-search and sampling knobs recognized by
// the decoder contract. Backends map the knobs they support and ignore
// the rest.
type DecodingConfig struct {
	NumBeams           int     `json:"num_beams"`
	MaxLength          int     `json:"max_length"`
	RepetitionPenalty  float64 `json:"repetition_penalty"`
	LengthPenalty      float64 `json:"length_penalty"`
	EarlyStopping      bool    `json:"early_stopping"`
	TopP               float64 `json:"top_p"`
	TopK               int     `json:"top_k"`
	NumReturnSequences int     `json:"num_return_sequences"`
}

// Decoder is the sequence generation capability consumed by the
// translation core: one prompt in, an ordered candidate list out. A
// failed call is fatal for that request only.
type Decoder interface {
	Decode(ctx context.Context, prompt string, cfg DecodingConfig) ([]string, error)
	ModelInfo() ModelInfo
}

// ModelInfo describes the model behind a decoder.
type ModelInfo struct {
	Name     string
	Provider string
}

// Config holds configuration for decoder backends.
type Config struct {
	Provider string
	Model    string
	APIKey   string
}

// decoderSystemPrompt frames the task for chat-completion backends. The
// prompt body already carries the language tag, the question and the
// schema vocabulary.
const decoderSystemPrompt = `You translate prompts of the form "<language>: <question> | <schema>" into a single query in the named query language. Use only identifiers listed in the schema segment. Respond with the query text alone: no explanation, no code fences, all lowercase.`
