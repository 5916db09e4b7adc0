package nlq

import "nl2query/pkg/generator"

// mongoReservedKey shows up in collections exported from tabular data
// and never belongs in a generated query.
const mongoReservedKey = "index"

// DefaultMongoConfig returns the beam-search defaults for MongoDB
// generation. Mongo queries run longer than the other languages, so the
// beam count and length ceiling are higher.
func DefaultMongoConfig() generator.DecodingConfig {
	return generator.DecodingConfig{
		NumBeams:           20,
		MaxLength:          256,
		RepetitionPenalty:  2.5,
		LengthPenalty:      1.0,
		EarlyStopping:      true,
		TopP:               0.95,
		TopK:               50,
		NumReturnSequences: 1,
	}
}

// NewMongoAdapter builds an adapter for the MongoDB query language from a
// collection name and its ordered key list. The reserved "index" key is
// filtered out of a copy of the list; the caller's slice is never
// mutated, and its absence is not an error.
func NewMongoAdapter(decoder generator.Decoder, collection string, keys []string, opts ...Option) (*Adapter, error) {
	filtered := make([]string, 0, len(keys))
	for _, key := range keys {
		if key == mongoReservedKey {
			continue
		}
		filtered = append(filtered, key)
	}
	vocab, err := NewVocabulary(collection, filtered)
	if err != nil {
		return nil, err
	}
	return newAdapter(TagMongo, vocab, vocab.CasefoldMap(), decoder, DefaultMongoConfig(), opts...)
}
