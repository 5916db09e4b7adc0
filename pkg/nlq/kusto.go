package nlq

import "nl2query/pkg/generator"

// DefaultKustoConfig returns the beam-search defaults for Kusto
// generation.
func DefaultKustoConfig() generator.DecodingConfig {
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

// NewKustoAdapter builds an adapter for the Kusto telemetry query
// language from a table name and its ordered column list.
func NewKustoAdapter(decoder generator.Decoder, table string, columns []string, opts ...Option) (*Adapter, error) {
	vocab, err := NewVocabulary(table, columns)
	if err != nil {
		return nil, err
	}
	return newAdapter(TagKusto, vocab, vocab.CasefoldMap(), decoder, DefaultKustoConfig(), opts...)
}
