package di

import (
	"log"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"nl2query/config"
	"nl2query/internal/apis/handlers"
	"nl2query/internal/constants"
	"nl2query/internal/services"
	"nl2query/internal/utils"
	"nl2query/pkg/generator"
	"nl2query/pkg/redis"
)

var DiContainer *dig.Container

func Initialize() {
	DiContainer = dig.New()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	// Build the default decoder from the environment
	decoderConfig := generator.Config{
		Provider: config.Env.DecoderProvider,
		Model:    config.Env.DecoderModel,
	}
	switch config.Env.DecoderProvider {
	case generator.ProviderOpenAI:
		decoderConfig.APIKey = config.Env.OpenAIAPIKey
	case generator.ProviderGemini:
		decoderConfig.APIKey = config.Env.GeminiAPIKey
	}

	manager := generator.NewManager()
	if err := manager.RegisterDecoder(constants.DefaultDecoder, decoderConfig); err != nil {
		log.Fatalf("Failed to register decoder: %v", err)
	}
	decoder, err := manager.GetDecoder(constants.DefaultDecoder)
	if err != nil {
		log.Fatalf("Failed to get decoder: %v", err)
	}

	// Query cache is optional; the service runs uncached without Redis
	var cache *redis.QueryCache
	if config.Env.RedisEnabled {
		redisClient, err := redis.RedisClient(config.Env.RedisHost, config.Env.RedisPort, config.Env.RedisUsername, config.Env.RedisPassword)
		if err != nil {
			log.Fatalf("Failed to initialize Redis client: %v", err)
		}
		ttl := time.Second * time.Duration(config.Env.QueryCacheTTLSeconds)
		if ttl <= 0 {
			ttl = constants.DefaultQueryCacheTTL
		}
		cache = redis.NewQueryCache(redisClient, ttl, logger)
	}

	jwtService := utils.NewJWTService(config.Env.JWTSecret, config.JWTExpiration())
	translateService := services.NewTranslateService(decoder, cache, logger)
	authService := services.NewAuthService(config.Env.AuthClientID, config.Env.AuthClientSecretHash, jwtService, config.JWTExpiration())

	if err := DiContainer.Provide(func() *zap.Logger { return logger }); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	if err := DiContainer.Provide(func() *generator.Manager { return manager }); err != nil {
		log.Fatalf("Failed to provide decoder manager: %v", err)
	}

	if err := DiContainer.Provide(func() utils.JWTService { return jwtService }); err != nil {
		log.Fatalf("Failed to provide JWT service: %v", err)
	}

	if err := DiContainer.Provide(func() services.TranslateService { return translateService }); err != nil {
		log.Fatalf("Failed to provide translate service: %v", err)
	}

	if err := DiContainer.Provide(func() services.AuthService { return authService }); err != nil {
		log.Fatalf("Failed to provide auth service: %v", err)
	}

	if err := DiContainer.Provide(func(svc services.TranslateService) *handlers.TranslateHandler {
		return handlers.NewTranslateHandler(svc)
	}); err != nil {
		log.Fatalf("Failed to provide translate handler: %v", err)
	}

	if err := DiContainer.Provide(func(svc services.AuthService) *handlers.AuthHandler {
		return handlers.NewAuthHandler(svc)
	}); err != nil {
		log.Fatalf("Failed to provide auth handler: %v", err)
	}
}

func GetTranslateHandler() (*handlers.TranslateHandler, error) {
	var handler *handlers.TranslateHandler
	err := DiContainer.Invoke(func(h *handlers.TranslateHandler) {
		handler = h
	})
	return handler, err
}

func GetAuthHandler() (*handlers.AuthHandler, error) {
	var handler *handlers.AuthHandler
	err := DiContainer.Invoke(func(h *handlers.AuthHandler) {
		handler = h
	})
	return handler, err
}

func GetLogger() (*zap.Logger, error) {
	var logger *zap.Logger
	err := DiContainer.Invoke(func(l *zap.Logger) {
		logger = l
	})
	return logger, err
}
