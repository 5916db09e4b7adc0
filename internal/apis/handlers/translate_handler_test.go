package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nl2query/internal/apis/dtos"
	"nl2query/internal/services"
	"nl2query/pkg/generator"
)

type cannedDecoder struct {
	candidates []string
}

func (c *cannedDecoder) Decode(_ context.Context, _ string, _ generator.DecodingConfig) ([]string, error) {
	return c.candidates, nil
}

func (c *cannedDecoder) ModelInfo() generator.ModelInfo {
	return generator.ModelInfo{Name: "canned", Provider: "canned"}
}

func newTestRouter(dec generator.Decoder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTranslateHandler(services.NewTranslateService(dec, nil, nil))

	router := gin.New()
	router.POST("/api/schemas", handler.RegisterSchema)
	router.POST("/api/translate", handler.Translate)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterAndTranslate(t *testing.T) {
	router := newTestRouter(&cannedDecoder{candidates: []string{"select avg(age) from passengers"}})

	rec := postJSON(t, router, "/api/schemas", dtos.RegisterSchemaRequest{
		Language:    "kusto",
		Container:   "passengers",
		Identifiers: []string{"Name", "Age", "Pclass"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var registerBody struct {
		Success bool                        `json:"success"`
		Data    dtos.RegisterSchemaResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registerBody))
	require.True(t, registerBody.Success)
	require.NotEmpty(t, registerBody.Data.SchemaID)

	rec = postJSON(t, router, "/api/translate", dtos.TranslateRequest{
		SchemaID: registerBody.Data.SchemaID,
		Question: "what is the average age of passengers",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var translateBody struct {
		Success bool                   `json:"success"`
		Data    dtos.TranslateResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &translateBody))
	assert.True(t, translateBody.Success)
	assert.Equal(t, "select avg(Age) from passengers", translateBody.Data.Query)
}

func TestRegisterSchemaRejectsUnknownLanguage(t *testing.T) {
	router := newTestRouter(&cannedDecoder{})

	rec := postJSON(t, router, "/api/schemas", map[string]interface{}{
		"language":    "sql",
		"container":   "t",
		"identifiers": []string{"C"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body dtos.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.NotNil(t, body.Error)
}

func TestTranslateRejectsMissingFields(t *testing.T) {
	router := newTestRouter(&cannedDecoder{})

	rec := postJSON(t, router, "/api/translate", map[string]interface{}{
		"question": "no schema id",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslateUnknownSchemaID(t *testing.T) {
	router := newTestRouter(&cannedDecoder{candidates: []string{"x"}})

	rec := postJSON(t, router, "/api/translate", dtos.TranslateRequest{
		SchemaID: "missing",
		Question: "anything",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
