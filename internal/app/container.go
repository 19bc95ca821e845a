// Package app assembles the service graph.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tunescope/tunescope-go/internal/catalog"
	"github.com/tunescope/tunescope-go/internal/config"
	"github.com/tunescope/tunescope-go/internal/server"
	"github.com/tunescope/tunescope-go/internal/service/ai"
	"github.com/tunescope/tunescope-go/internal/service/cache"
	"github.com/tunescope/tunescope-go/internal/service/pipeline"
	"github.com/tunescope/tunescope-go/internal/service/recommend"
	"github.com/tunescope/tunescope-go/internal/service/spotify"
)

// Container bundles assembled services for constructing the HTTP server.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	serverDeps *server.Dependencies
	closers    []func()
}

// NewServer instantiates the HTTP server from the pre-built dependency
// graph.
func (c *Container) NewServer() (*server.Server, error) {
	if c == nil || c.serverDeps == nil {
		return nil, fmt.Errorf("server dependencies not initialized")
	}
	return server.New(c.serverDeps)
}

// Close releases held resources in reverse construction order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build assembles all infrastructure services. All heavy-weight
// initialization (Redis, catalog client, model manager) happens here so the
// server stays focused on request handling.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// Cache is optional: a missing Redis degrades to uncached catalog
	// calls rather than failing startup.
	var catalogCache spotify.Cache
	redisReady := false
	cacheSvc, cacheErr := cache.NewCacheService(cache.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if cacheErr != nil {
		logger.Warn("Cache unavailable, catalog lookups will not be memoized", zap.Error(cacheErr))
	} else {
		catalogCache = cacheSvc
		redisReady = true
		closers = append(closers, func() {
			_ = cacheSvc.Close()
		})
	}

	spotifyClient, err := spotify.NewClient(ctx, cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, catalogCache, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog client: %w", err)
	}

	// AI stack
	modelManager, err := ai.NewModelManager(ctx, ai.ModelManagerConfig{
		GeminiAPIKey:   cfg.Gemini.APIKey,
		OpenAIAPIKey:   cfg.OpenAI.APIKey,
		EnableFallback: cfg.OpenAI.EnableFallback,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create model manager: %w", err)
	}

	analyzer := ai.NewAnalyzer(modelManager, logger)

	// Recommendation pipeline
	validator := recommend.NewFeatureValidator(cfg.Resolver.FeatureTolerance, cfg.Resolver.ValidationMode)
	strategies := []recommend.Strategy{
		recommend.NewCatalogStrategy(spotifyClient, validator, logger),
		recommend.NewModelGuidedStrategy(spotifyClient, analyzer, validator, logger),
		recommend.NewKeywordStrategy(spotifyClient, validator, logger),
	}
	resolver := recommend.NewResolver(strategies, cfg.Resolver.TargetCount, logger)
	pipe := pipeline.New(analyzer, resolver, logger)

	deps := &server.Dependencies{
		Recommender: pipe,
		Sequencer:   catalog.NewSequencer(nil),
		Catalog:     spotifyClient,
		Health: server.HealthInfo{
			SpotifyConfigured: cfg.Spotify.ClientID != "" && cfg.Spotify.ClientSecret != "",
			GeminiConfigured:  cfg.Gemini.APIKey != "",
			OpenAIConfigured:  cfg.OpenAI.APIKey != "",
			RedisConfigured:   redisReady,
		},
		Logger: logger,
	}

	return &Container{
		Config:     cfg,
		Logger:     logger,
		serverDeps: deps,
		closers:    closers,
	}, nil
}
