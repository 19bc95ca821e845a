package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/tunescope/tunescope-go/internal/constants"
	"github.com/tunescope/tunescope-go/internal/domain"
	"github.com/tunescope/tunescope-go/internal/prompt"
	"github.com/tunescope/tunescope-go/internal/util"
	perrors "github.com/tunescope/tunescope-go/pkg/errors"
)

// JSONGenerator is the slice of ModelManager the analyzer depends on.
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, preset ModelPreset, dest any, opts *GenerateOptions) (*GenerateMetadata, error)
}

// Analyzer turns questionnaire answers into a personality profile and the
// profile into concrete track search queries.
type Analyzer struct {
	models JSONGenerator
	logger *zap.Logger
}

func NewAnalyzer(models JSONGenerator, logger *zap.Logger) *Analyzer {
	return &Analyzer{models: models, logger: logger}
}

// InferProfile analyzes the answers and returns the inferred profile.
// Feature preferences outside [0, 1] are clamped after decoding.
func (a *Analyzer) InferProfile(ctx context.Context, answers domain.Answers) (domain.PersonalityProfile, error) {
	var profile domain.PersonalityProfile

	if len(answers) == 0 {
		return profile, perrors.NewValidationError("answers must not be empty", "answers", nil)
	}
	if len(answers) > constants.AIInputLimits.MaxAnswers {
		return profile, perrors.NewValidationError("too many answers", "answers", len(answers))
	}

	bounded := make(domain.Answers, len(answers))
	for id, v := range answers {
		if s, ok := v.(string); ok {
			bounded[id] = util.TruncateString(s, constants.AIInputLimits.MaxAnswerLength)
		} else {
			bounded[id] = v
		}
	}

	answersJSON, err := json.MarshalIndent(bounded, "", "  ")
	if err != nil {
		return profile, fmt.Errorf("marshal answers: %w", err)
	}

	metadata, err := a.models.GenerateJSON(ctx, prompt.BuildPersonalityAnalysis(string(answersJSON)), PresetCreative, &profile, nil)
	if err != nil {
		return profile, err
	}

	if profile.Type == "" {
		return profile, perrors.NewMalformedResponseError("profile missing personality type", "", nil)
	}

	prefs := &profile.MusicPreferences
	prefs.Energy = util.Clamp01(prefs.Energy)
	prefs.Valence = util.Clamp01(prefs.Valence)
	prefs.Danceability = util.Clamp01(prefs.Danceability)
	prefs.Acousticness = util.Clamp01(prefs.Acousticness)

	a.logger.Info("Personality profile inferred",
		zap.String("type", profile.Type),
		zap.Int("traits", len(profile.Traits)),
		zap.String("provider", metadata.Provider),
		zap.Bool("fallback", metadata.UsedFallback),
	)

	return profile, nil
}

// SuggestQueries asks the model for 4-6 search queries matching the
// profile, constrained to the available seed genres.
func (a *Analyzer) SuggestQueries(ctx context.Context, profile domain.PersonalityProfile, availableGenres []string) ([]domain.QuerySuggestion, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}

	var suggestions []domain.QuerySuggestion
	metadata, err := a.models.GenerateJSON(ctx, prompt.BuildSongQueries(string(profileJSON), availableGenres), PresetCreative, &suggestions, nil)
	if err != nil {
		return nil, err
	}

	filtered := suggestions[:0]
	for _, s := range suggestions {
		if s.Query != "" {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) == 0 {
		return nil, perrors.NewMalformedResponseError("model returned no usable queries", "", nil)
	}

	a.logger.Info("Song queries suggested",
		zap.Int("count", len(filtered)),
		zap.String("provider", metadata.Provider),
	)

	return filtered, nil
}
