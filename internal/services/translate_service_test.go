package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nl2query/internal/apis/dtos"
	"nl2query/pkg/generator"
)

type stubDecoder struct {
	candidates []string
	err        error
	gotConfig  generator.DecodingConfig
}

func (s *stubDecoder) Decode(_ context.Context, _ string, cfg generator.DecodingConfig) ([]string, error) {
	s.gotConfig = cfg
	if s.err != nil {
		return nil, s.err
	}
	return s.candidates, nil
}

func (s *stubDecoder) ModelInfo() generator.ModelInfo {
	return generator.ModelInfo{Name: "stub", Provider: "stub"}
}

func registerKusto(t *testing.T, svc TranslateService) string {
	t.Helper()
	resp, status, err := svc.RegisterSchema(&dtos.RegisterSchemaRequest{
		Language:    "kusto",
		Container:   "passengers",
		Identifiers: []string{"Name", "Age", "Pclass"},
	})
	require.NoError(t, err)
	require.Equal(t, uint(http.StatusCreated), status)
	return resp.SchemaID
}

func TestRegisterSchemaAllLanguages(t *testing.T) {
	svc := NewTranslateService(&stubDecoder{}, nil, nil)

	tests := []struct {
		name string
		req  dtos.RegisterSchemaRequest
	}{
		{"kusto", dtos.RegisterSchemaRequest{Language: "kusto", Container: "logs", Identifiers: []string{"Level"}}},
		{"mongo", dtos.RegisterSchemaRequest{Language: "mongo", Container: "people", Identifiers: []string{"Name"}}},
		{"pandas", dtos.RegisterSchemaRequest{Language: "pandas", Container: "df", Identifiers: []string{"Age"}}},
		{"cypher", dtos.RegisterSchemaRequest{
			Language:      "cypher",
			Labels:        []dtos.NodeLabelPayload{{Label: "Person", Properties: []string{"Name"}}},
			Relationships: []string{"FRIENDS_WITH"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, status, err := svc.RegisterSchema(&tt.req)
			require.NoError(t, err)
			assert.Equal(t, uint(http.StatusCreated), status)
			assert.NotEmpty(t, resp.SchemaID)
			assert.Equal(t, tt.req.Language, resp.Language)
		})
	}
}

func TestRegisterSchemaInvalid(t *testing.T) {
	svc := NewTranslateService(&stubDecoder{}, nil, nil)

	_, status, err := svc.RegisterSchema(&dtos.RegisterSchemaRequest{
		Language:  "kusto",
		Container: "",
	})
	assert.Error(t, err)
	assert.Equal(t, uint(http.StatusBadRequest), status)

	_, status, err = svc.RegisterSchema(&dtos.RegisterSchemaRequest{Language: "sql"})
	assert.Error(t, err)
	assert.Equal(t, uint(http.StatusBadRequest), status)
}

func TestTranslate(t *testing.T) {
	dec := &stubDecoder{candidates: []string{"select avg(age) from passengers"}}
	svc := NewTranslateService(dec, nil, nil)
	schemaID := registerKusto(t, svc)

	resp, status, err := svc.Translate(context.Background(), &dtos.TranslateRequest{
		SchemaID: schemaID,
		Question: "what is the average age of passengers",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(http.StatusOK), status)
	assert.Equal(t, "select avg(Age) from passengers", resp.Query)
	assert.Equal(t, "kusto", resp.Language)
	assert.False(t, resp.Cached)
}

func TestTranslateUnknownSchema(t *testing.T) {
	svc := NewTranslateService(&stubDecoder{}, nil, nil)

	_, status, err := svc.Translate(context.Background(), &dtos.TranslateRequest{
		SchemaID: "no-such-id",
		Question: "anything",
	})
	assert.Error(t, err)
	assert.Equal(t, uint(http.StatusNotFound), status)
}

func TestTranslateDecoderFailure(t *testing.T) {
	dec := &stubDecoder{err: errors.New("model unavailable")}
	svc := NewTranslateService(dec, nil, nil)
	schemaID := registerKusto(t, svc)

	_, status, err := svc.Translate(context.Background(), &dtos.TranslateRequest{
		SchemaID: schemaID,
		Question: "anything",
	})
	assert.Error(t, err)
	assert.Equal(t, uint(http.StatusBadGateway), status)
}

func TestTranslateDecodingOverrides(t *testing.T) {
	dec := &stubDecoder{candidates: []string{"passengers | count"}}
	svc := NewTranslateService(dec, nil, nil)
	schemaID := registerKusto(t, svc)

	numBeams := 3
	maxLength := 64
	_, status, err := svc.Translate(context.Background(), &dtos.TranslateRequest{
		SchemaID: schemaID,
		Question: "how many passengers",
		Decoding: &dtos.DecodingOverrides{
			NumBeams:  &numBeams,
			MaxLength: &maxLength,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(http.StatusOK), status)
	assert.Equal(t, 3, dec.gotConfig.NumBeams)
	assert.Equal(t, 64, dec.gotConfig.MaxLength)
	// untouched knobs keep the language defaults
	assert.Equal(t, 2.5, dec.gotConfig.RepetitionPenalty)
}
