// Package nlq translates natural-language questions into structured
// queries for several target query languages. An Adapter binds one schema
// vocabulary and one sequence decoder; translation builds a lowercase
// prompt around the question, decodes a draft query, and restores the
// original casing of schema identifiers in the draft.
package nlq

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"nl2query/pkg/generator"
)

// Language tags embedded at the head of every prompt.
const (
	TagCypher    = "cypher"
	TagKusto     = "kusto"
	TagMongo     = "mongo"
	TagDataframe = "pandas"
)

// Adapter translates questions for one target language bound to one
// schema. Safe for concurrent use: all state is read-only after
// construction apart from the decoder call.
type Adapter struct {
	tag      string
	vocab    *Vocabulary
	schema   CasefoldMap
	decoder  generator.Decoder
	defaults generator.DecodingConfig
	logger   *zap.Logger
}

// Option configures an Adapter at construction.
type Option func(*Adapter)

// WithLogger attaches a logger for restoration-ambiguity warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithDefaultConfig overrides the language's default decoding configuration.
func WithDefaultConfig(cfg generator.DecodingConfig) Option {
	return func(a *Adapter) { a.defaults = cfg }
}

func newAdapter(tag string, vocab *Vocabulary, schema CasefoldMap, decoder generator.Decoder, defaults generator.DecodingConfig, opts ...Option) (*Adapter, error) {
	if decoder == nil {
		return nil, ErrNilDecoder
	}
	a := &Adapter{
		tag:      tag,
		vocab:    vocab,
		schema:   schema,
		decoder:  decoder,
		defaults: defaults,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Tag returns the adapter's language tag.
func (a *Adapter) Tag() string { return a.tag }

// Vocabulary returns the bound schema vocabulary.
func (a *Adapter) Vocabulary() *Vocabulary { return a.vocab }

// DefaultConfig returns the decoding configuration used by GenerateQuery.
func (a *Adapter) DefaultConfig() generator.DecodingConfig { return a.defaults }

// GenerateQuery translates a question using the adapter's default
// decoding configuration.
func (a *Adapter) GenerateQuery(ctx context.Context, question string) (string, error) {
	return a.GenerateQueryWithConfig(ctx, question, a.defaults)
}

// GenerateQueryWithConfig translates a question with an explicit decoding
// configuration: build prompt, decode, take the first candidate, restore
// identifier casing. Decoder failures wrap into a GenerationError and do
// not corrupt the adapter.
func (a *Adapter) GenerateQueryWithConfig(ctx context.Context, question string, cfg generator.DecodingConfig) (string, error) {
	prompt, supplementary := BuildPrompt(question, a.tag, a.vocab)

	candidates, err := a.decoder.Decode(ctx, prompt, cfg)
	if err != nil {
		return "", &GenerationError{Language: a.tag, Err: err}
	}
	if len(candidates) == 0 {
		return "", &GenerationError{Language: a.tag, Err: errors.New("decoder returned no candidates")}
	}

	for key, canonical := range supplementary {
		if prev, ok := a.schema[key]; ok && prev != canonical {
			a.logger.Warn("casefold collision, question token overrides schema identifier",
				zap.String("language", a.tag),
				zap.String("key", key),
				zap.String("schema", prev),
				zap.String("question", canonical),
			)
		}
	}

	merged := MergeCasefoldMaps(a.schema, supplementary)
	return Restore(candidates[0], merged), nil
}
