package nlq

import "nl2query/pkg/generator"

// DefaultCypherConfig returns the beam-search defaults for Cypher
// generation.
func DefaultCypherConfig() generator.DecodingConfig {
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

// NewCypherAdapter builds an adapter for the Cypher graph query language
// from ordered node labels with their properties plus a relationship-name
// list. Labels, properties and relationships all participate in casing
// restoration.
func NewCypherAdapter(decoder generator.Decoder, labels []NodeLabel, relationships []string, opts ...Option) (*Adapter, error) {
	vocab, err := NewGraphVocabulary(labels, relationships)
	if err != nil {
		return nil, err
	}
	return newAdapter(TagCypher, vocab, vocab.CasefoldMap(), decoder, DefaultCypherConfig(), opts...)
}
