package dtos

type NodeLabelPayload struct {
	Label      string   `json:"label" binding:"required"`
	Properties []string `json:"properties"`
}

// RegisterSchemaRequest registers an inline schema. Flat languages
// (kusto, mongo, pandas) carry a container plus identifiers; cypher
// carries node labels plus optional relationships.
type RegisterSchemaRequest struct {
	Language      string             `json:"language" binding:"required,oneof=cypher kusto mongo pandas"`
	Container     string             `json:"container"`
	Identifiers   []string           `json:"identifiers"`
	Labels        []NodeLabelPayload `json:"labels"`
	Relationships []string           `json:"relationships"`
}

// RegisterPostgresSchemaRequest registers a schema by introspecting a
// table's columns from a live PostgreSQL database.
type RegisterPostgresSchemaRequest struct {
	Language string `json:"language" binding:"required,oneof=kusto pandas"`
	DSN      string `json:"dsn" binding:"required"`
	Table    string `json:"table" binding:"required"`
}

// RegisterMongoSchemaRequest registers a mongo schema by sampling a
// collection's top-level keys.
type RegisterMongoSchemaRequest struct {
	URI        string `json:"uri" binding:"required"`
	Database   string `json:"database" binding:"required"`
	Collection string `json:"collection" binding:"required"`
	SampleSize int64  `json:"sample_size"`
}

type RegisterSchemaResponse struct {
	SchemaID    string   `json:"schema_id"`
	Language    string   `json:"language"`
	Container   string   `json:"container,omitempty"`
	Identifiers []string `json:"identifiers,omitempty"`
}

// DecodingOverrides carries optional per-request decoding knobs; unset
// fields fall back to the adapter's language defaults.
type DecodingOverrides struct {
	NumBeams           *int     `json:"num_beams"`
	MaxLength          *int     `json:"max_length"`
	RepetitionPenalty  *float64 `json:"repetition_penalty"`
	LengthPenalty      *float64 `json:"length_penalty"`
	EarlyStopping      *bool    `json:"early_stopping"`
	TopP               *float64 `json:"top_p"`
	TopK               *int     `json:"top_k"`
	NumReturnSequences *int     `json:"num_return_sequences"`
}

type TranslateRequest struct {
	SchemaID string             `json:"schema_id" binding:"required"`
	Question string             `json:"question" binding:"required"`
	Decoding *DecodingOverrides `json:"decoding"`
}

type TranslateResponse struct {
	SchemaID string `json:"schema_id"`
	Language string `json:"language"`
	Question string `json:"question"`
	Query    string `json:"query"`
	Cached   bool   `json:"cached"`
}
