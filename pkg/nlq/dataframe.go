package nlq

import (
	"strings"

	"nl2query/pkg/generator"
)

// DefaultDataframeConfig returns the beam-search defaults for dataframe
// expression generation.
func DefaultDataframeConfig() generator.DecodingConfig {
	return generator.DecodingConfig{
		NumBeams:           10,
		MaxLength:          128,
		RepetitionPenalty:  2.5,
		LengthPenalty:      1.0,
		EarlyStopping:      true,
		TopP:               0.95,
		TopK:               50,
		NumReturnSequences: 1,
	}
}

// NewDataframeAdapter builds an adapter for the dataframe expression
// language from a dataframe name and its ordered column list. Generated
// dataframe expressions reference columns as quoted string literals, so
// the schema casefold map carries single-quoted keys: 'age' -> 'Age'.
// Bare column mentions outside quotes are left alone.
func NewDataframeAdapter(decoder generator.Decoder, name string, columns []string, opts ...Option) (*Adapter, error) {
	vocab, err := NewVocabulary(name, columns)
	if err != nil {
		return nil, err
	}
	schema := make(CasefoldMap, len(columns))
	for _, col := range columns {
		schema["'"+strings.ToLower(col)+"'"] = "'" + col + "'"
	}
	return newAdapter(TagDataframe, vocab, schema, decoder, DefaultDataframeConfig(), opts...)
}
