// Package pipeline wires profile inference to the recommendation resolver,
// producing the full analysis payload from a set of questionnaire answers.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tunescope/tunescope-go/internal/constants"
	"github.com/tunescope/tunescope-go/internal/domain"
)

// ProfileInferrer turns answers into a personality profile. Satisfied by
// the AI analyzer.
type ProfileInferrer interface {
	InferProfile(ctx context.Context, answers domain.Answers) (domain.PersonalityProfile, error)
}

// SongResolver produces recommendations for a profile. Satisfied by the
// recommendation resolver.
type SongResolver interface {
	Resolve(ctx context.Context, profile domain.PersonalityProfile) ([]domain.Recommendation, error)
}

type Pipeline struct {
	inferrer ProfileInferrer
	resolver SongResolver
	logger   *zap.Logger
}

func New(inferrer ProfileInferrer, resolver SongResolver, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		inferrer: inferrer,
		resolver: resolver,
		logger:   logger,
	}
}

// Recommend runs the full pipeline. Inference failures abort; an empty song
// list with a valid profile is a degraded but successful result.
func (p *Pipeline) Recommend(ctx context.Context, answers domain.Answers) (*domain.RecommendationResult, error) {
	inferCtx, cancel := context.WithTimeout(ctx, time.Duration(constants.AIInputLimits.AnalyzeTimeoutSec)*time.Second)
	profile, err := p.inferrer.InferProfile(inferCtx, answers)
	cancel()
	if err != nil {
		return nil, err
	}

	songs, err := p.resolver.Resolve(ctx, profile)
	if err != nil {
		return nil, err
	}
	if songs == nil {
		songs = []domain.Recommendation{}
	}

	p.logger.Info("Recommendation pipeline complete",
		zap.String("personality_type", profile.Type),
		zap.Int("songs", len(songs)),
	)

	return &domain.RecommendationResult{
		PersonalityAnalysis: profile,
		Songs:               songs,
	}, nil
}
