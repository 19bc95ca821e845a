package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/tunescope/tunescope-go/internal/domain"
)

// Catalog is the slice of the music catalog the pipeline consumes.
type Catalog interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error)
	RecommendByProfile(ctx context.Context, seedGenres []string, target domain.FeatureVector, limit int) ([]domain.Track, error)
	GetAudioFeatures(ctx context.Context, ids []string) (map[string]domain.FeatureVector, error)
	AvailableGenres(ctx context.Context) ([]string, error)
}

// QuerySuggester proposes search queries for a profile. Satisfied by the
// AI analyzer.
type QuerySuggester interface {
	SuggestQueries(ctx context.Context, profile domain.PersonalityProfile, availableGenres []string) ([]domain.QuerySuggestion, error)
}

// Strategy is one tier of the pipeline. Recommend returns at most needed
// accepted tracks; fewer (or none) means the next tier makes up the
// shortfall.
type Strategy interface {
	Name() string
	Recommend(ctx context.Context, profile domain.PersonalityProfile, needed int) ([]domain.Recommendation, error)
}

// pickCandidate scans one query's results for the first candidate whose
// measured features pass the validator. Falling open onto the first raw
// result is the last resort: it applies only when no candidate in the
// result set carries a measured vector at all.
func pickCandidate(tracks []domain.Track, features map[string]domain.FeatureVector, validator *FeatureValidator, target domain.FeatureVector) (domain.Track, bool) {
	measured := false
	for _, track := range tracks {
		v, ok := features[track.ID]
		if !ok {
			continue
		}
		measured = true
		if validator.Matches(v, target) {
			return track, true
		}
	}
	if !measured && len(tracks) > 0 && validator.Accept(nil, target) {
		return tracks[0], true
	}
	return domain.Track{}, false
}

// generatedReason is the explanation attached to tracks that did not come
// with a model-written reason.
func generatedReason(profile domain.PersonalityProfile, target domain.FeatureVector) string {
	return fmt.Sprintf("This song matches your %s personality with its %s energy and %s vibe.",
		strings.ToLower(profile.Type),
		domain.EnergyDescription(target.Energy),
		domain.ValenceDescription(target.Valence),
	)
}

func leadTraits(profile domain.PersonalityProfile) []string {
	traits := profile.Traits
	if len(traits) > 3 {
		traits = traits[:3]
	}
	return traits
}

func recommendationFromTrack(track domain.Track, profile domain.PersonalityProfile, target domain.FeatureVector) domain.Recommendation {
	return domain.Recommendation{
		Track:            track,
		Reason:           generatedReason(profile, target),
		PersonalityMatch: leadTraits(profile),
		Mood:             domain.MoodFromValence(target.Valence),
		Energy:           domain.EnergyLevelFrom(target.Energy),
	}
}

// energyLevelFromLabel maps a model-written energy label onto the display
// level, falling back to the target-derived bucket when the label is not
// recognized.
func energyLevelFromLabel(label string, targetEnergy float64) domain.EnergyLevel {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "high":
		return domain.EnergyHigh
	case "medium":
		return domain.EnergyMedium
	case "low":
		return domain.EnergyLow
	default:
		return domain.EnergyLevelFrom(targetEnergy)
	}
}
