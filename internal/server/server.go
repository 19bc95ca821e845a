// Package server exposes the recommendation pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/tunescope/tunescope-go/internal/constants"
	"github.com/tunescope/tunescope-go/internal/domain"
)

// Recommender runs the analyze pipeline. Satisfied by pipeline.Pipeline.
type Recommender interface {
	Recommend(ctx context.Context, answers domain.Answers) (*domain.RecommendationResult, error)
}

// QuestionSequencer picks the next question ids for a set of answers.
type QuestionSequencer interface {
	NextQuestions(answers domain.Answers, totalQuestions int) []string
}

// CatalogBrowser is the read-only catalog surface exposed directly over
// HTTP.
type CatalogBrowser interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error)
	AvailableGenres(ctx context.Context) ([]string, error)
}

// HealthInfo reports which collaborators are configured. Presence of
// credentials, not liveness.
type HealthInfo struct {
	SpotifyConfigured bool
	GeminiConfigured  bool
	OpenAIConfigured  bool
	RedisConfigured   bool
}

// Dependencies is the wired collaborator set handlers receive.
type Dependencies struct {
	Recommender Recommender
	Sequencer   QuestionSequencer
	Catalog     CatalogBrowser
	Health      HealthInfo
	Logger      *zap.Logger
}

type Server struct {
	deps       *Dependencies
	logger     *zap.Logger
	httpServer *http.Server
}

func New(deps *Dependencies) (*Server, error) {
	if deps == nil || deps.Recommender == nil || deps.Sequencer == nil || deps.Catalog == nil {
		return nil, fmt.Errorf("server dependencies not initialized")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Server{
		deps:   deps,
		logger: deps.Logger,
	}, nil
}

// Handler builds the route table wrapped with recovery and request
// logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/questions/next", s.handleNextQuestions)
	mux.HandleFunc("/api/genres", s.handleGenres)
	mux.HandleFunc("/api/search/tracks", s.handleSearchTracks)
	mux.HandleFunc("/api/health", s.handleHealth)

	return s.recoveryMiddleware(s.loggingMiddleware(mux))
}

func (s *Server) Start(port int) error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Handler(),
		ReadTimeout:  constants.ServerConfig.ReadTimeout,
		WriteTimeout: constants.ServerConfig.WriteTimeout,
		IdleTimeout:  constants.ServerConfig.IdleTimeout,
	}

	s.logger.Info("HTTP server listening", zap.Int("port", port))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
