package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nl2query/internal/apis/dtos"
	"nl2query/internal/constants"
	"nl2query/pkg/generator"
	"nl2query/pkg/nlq"
	"nl2query/pkg/redis"
	"nl2query/pkg/schemaloader"
)

type TranslateService interface {
	RegisterSchema(req *dtos.RegisterSchemaRequest) (*dtos.RegisterSchemaResponse, uint, error)
	RegisterPostgresSchema(ctx context.Context, req *dtos.RegisterPostgresSchemaRequest) (*dtos.RegisterSchemaResponse, uint, error)
	RegisterMongoSchema(ctx context.Context, req *dtos.RegisterMongoSchemaRequest) (*dtos.RegisterSchemaResponse, uint, error)
	Translate(ctx context.Context, req *dtos.TranslateRequest) (*dtos.TranslateResponse, uint, error)
}

type boundSchema struct {
	language string
	adapter  *nlq.Adapter
}

type translateService struct {
	decoder generator.Decoder
	cache   *redis.QueryCache // nil when caching is disabled
	logger  *zap.Logger

	mu      sync.RWMutex
	schemas map[string]*boundSchema
}

func NewTranslateService(decoder generator.Decoder, cache *redis.QueryCache, logger *zap.Logger) TranslateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &translateService{
		decoder: decoder,
		cache:   cache,
		logger:  logger,
		schemas: make(map[string]*boundSchema),
	}
}

func (s *translateService) RegisterSchema(req *dtos.RegisterSchemaRequest) (*dtos.RegisterSchemaResponse, uint, error) {
	var adapter *nlq.Adapter
	var err error

	switch req.Language {
	case constants.LanguageCypher:
		labels := make([]nlq.NodeLabel, 0, len(req.Labels))
		for _, l := range req.Labels {
			labels = append(labels, nlq.NodeLabel{Label: l.Label, Properties: l.Properties})
		}
		adapter, err = nlq.NewCypherAdapter(s.decoder, labels, req.Relationships, nlq.WithLogger(s.logger))
	case constants.LanguageKusto:
		adapter, err = nlq.NewKustoAdapter(s.decoder, req.Container, req.Identifiers, nlq.WithLogger(s.logger))
	case constants.LanguageMongo:
		adapter, err = nlq.NewMongoAdapter(s.decoder, req.Container, req.Identifiers, nlq.WithLogger(s.logger))
	case constants.LanguageDataframe:
		adapter, err = nlq.NewDataframeAdapter(s.decoder, req.Container, req.Identifiers, nlq.WithLogger(s.logger))
	default:
		return nil, http.StatusBadRequest, fmt.Errorf("unsupported language: %s", req.Language)
	}
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return s.store(adapter), http.StatusCreated, nil
}

func (s *translateService) RegisterPostgresSchema(ctx context.Context, req *dtos.RegisterPostgresSchemaRequest) (*dtos.RegisterSchemaResponse, uint, error) {
	db, err := schemaloader.OpenPostgres(req.DSN)
	if err != nil {
		return nil, http.StatusBadGateway, err
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()

	columns, err := schemaloader.TableColumns(db, req.Table)
	if err != nil {
		return nil, http.StatusBadGateway, err
	}

	var adapter *nlq.Adapter
	switch req.Language {
	case constants.LanguageKusto:
		adapter, err = nlq.NewKustoAdapter(s.decoder, req.Table, columns, nlq.WithLogger(s.logger))
	case constants.LanguageDataframe:
		adapter, err = nlq.NewDataframeAdapter(s.decoder, req.Table, columns, nlq.WithLogger(s.logger))
	default:
		return nil, http.StatusBadRequest, fmt.Errorf("unsupported language for table schemas: %s", req.Language)
	}
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	s.logger.Info("registered postgres-backed schema",
		zap.String("table", req.Table),
		zap.Int("columns", len(columns)),
		zap.String("language", req.Language),
	)
	return s.store(adapter), http.StatusCreated, nil
}

func (s *translateService) RegisterMongoSchema(ctx context.Context, req *dtos.RegisterMongoSchemaRequest) (*dtos.RegisterSchemaResponse, uint, error) {
	client, err := schemaloader.ConnectMongo(ctx, req.URI)
	if err != nil {
		return nil, http.StatusBadGateway, err
	}
	defer func() { _ = client.Disconnect(ctx) }()

	keys, err := schemaloader.CollectionKeys(ctx, client, req.Database, req.Collection, req.SampleSize)
	if err != nil {
		return nil, http.StatusBadGateway, err
	}

	adapter, err := nlq.NewMongoAdapter(s.decoder, req.Collection, keys, nlq.WithLogger(s.logger))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	s.logger.Info("registered mongo-backed schema",
		zap.String("collection", req.Collection),
		zap.Int("keys", len(keys)),
	)
	return s.store(adapter), http.StatusCreated, nil
}

func (s *translateService) Translate(ctx context.Context, req *dtos.TranslateRequest) (*dtos.TranslateResponse, uint, error) {
	s.mu.RLock()
	bound, ok := s.schemas[req.SchemaID]
	s.mu.RUnlock()
	if !ok {
		return nil, http.StatusNotFound, fmt.Errorf("schema not found: %s", req.SchemaID)
	}

	cfg := applyOverrides(bound.adapter.DefaultConfig(), req.Decoding)

	// Only default-config requests hit the cache; overridden decoding
	// may legitimately produce a different query.
	var cacheKey string
	if s.cache != nil && req.Decoding == nil {
		cacheKey = s.cache.Key(bound.language, req.SchemaID, req.Question)
		if query, hit := s.cache.Get(ctx, cacheKey); hit {
			return &dtos.TranslateResponse{
				SchemaID: req.SchemaID,
				Language: bound.language,
				Question: req.Question,
				Query:    query,
				Cached:   true,
			}, http.StatusOK, nil
		}
	}

	query, err := bound.adapter.GenerateQueryWithConfig(ctx, req.Question, cfg)
	if err != nil {
		var genErr *nlq.GenerationError
		if errors.As(err, &genErr) {
			return nil, http.StatusBadGateway, err
		}
		return nil, http.StatusInternalServerError, err
	}

	if cacheKey != "" {
		s.cache.Set(ctx, cacheKey, query)
	}

	return &dtos.TranslateResponse{
		SchemaID: req.SchemaID,
		Language: bound.language,
		Question: req.Question,
		Query:    query,
	}, http.StatusOK, nil
}

func (s *translateService) store(adapter *nlq.Adapter) *dtos.RegisterSchemaResponse {
	id := uuid.NewString()
	s.mu.Lock()
	s.schemas[id] = &boundSchema{language: adapter.Tag(), adapter: adapter}
	s.mu.Unlock()

	return &dtos.RegisterSchemaResponse{
		SchemaID:    id,
		Language:    adapter.Tag(),
		Container:   adapter.Vocabulary().Container(),
		Identifiers: adapter.Vocabulary().Identifiers(),
	}
}

func applyOverrides(cfg generator.DecodingConfig, o *dtos.DecodingOverrides) generator.DecodingConfig {
	if o == nil {
		return cfg
	}
	if o.NumBeams != nil {
		cfg.NumBeams = *o.NumBeams
	}
	if o.MaxLength != nil {
		cfg.MaxLength = *o.MaxLength
	}
	if o.RepetitionPenalty != nil {
		cfg.RepetitionPenalty = *o.RepetitionPenalty
	}
	if o.LengthPenalty != nil {
		cfg.LengthPenalty = *o.LengthPenalty
	}
	if o.EarlyStopping != nil {
		cfg.EarlyStopping = *o.EarlyStopping
	}
	if o.TopP != nil {
		cfg.TopP = *o.TopP
	}
	if o.TopK != nil {
		cfg.TopK = *o.TopK
	}
	if o.NumReturnSequences != nil {
		cfg.NumReturnSequences = *o.NumReturnSequences
	}
	return cfg
}
