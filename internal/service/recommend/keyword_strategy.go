package recommend

import (
	"context"

	"go.uber.org/zap"

	"github.com/tunescope/tunescope-go/internal/constants"
	"github.com/tunescope/tunescope-go/internal/domain"
)

// KeywordStrategy is the last tier: deterministic keyword searches built
// from the profile's genres and target features, each query contributing
// its first feature-passing hit. Only runs when the earlier tiers left a
// shortfall.
type KeywordStrategy struct {
	catalog   Catalog
	validator *FeatureValidator
	logger    *zap.Logger
}

func NewKeywordStrategy(catalog Catalog, validator *FeatureValidator, logger *zap.Logger) *KeywordStrategy {
	return &KeywordStrategy{
		catalog:   catalog,
		validator: validator,
		logger:    logger,
	}
}

func (s *KeywordStrategy) Name() string {
	return "keyword-fallback"
}

func (s *KeywordStrategy) Recommend(ctx context.Context, profile domain.PersonalityProfile, needed int) ([]domain.Recommendation, error) {
	target := profile.MusicPreferences.TargetFeatures()
	queries := buildKeywordQueries(profile.MusicPreferences.Genres, target)

	recs := make([]domain.Recommendation, 0, needed)
	for _, query := range queries {
		if len(recs) >= needed {
			break
		}
		tracks, err := s.catalog.SearchTracks(ctx, query, candidatesPerQuery)
		if err != nil {
			s.logger.Warn("Keyword search failed", zap.String("query", query), zap.Error(err))
			continue
		}
		if len(tracks) == 0 {
			continue
		}

		ids := make([]string, 0, len(tracks))
		for _, t := range tracks {
			ids = append(ids, t.ID)
		}
		features, err := s.catalog.GetAudioFeatures(ctx, ids)
		if err != nil {
			s.logger.Warn("Audio feature lookup failed, validating without measurements", zap.Error(err))
			features = nil
		}

		track, ok := pickCandidate(tracks, features, s.validator, target)
		if !ok {
			continue
		}
		recs = append(recs, recommendationFromTrack(track, profile, target))
	}

	s.logger.Debug("Keyword strategy produced candidates",
		zap.Int("queries", len(queries)),
		zap.Int("accepted", len(recs)),
	)
	return recs, nil
}

// buildKeywordQueries derives searches from the profile: an energy-flavored
// query per leading genre, two mood queries from valence, then broad
// fillers, capped to the per-tier query limit.
func buildKeywordQueries(genres []string, target domain.FeatureVector) []string {
	energetic := target.Energy >= 0.5

	if len(genres) > 2 {
		genres = genres[:2]
	}

	var queries []string
	for _, genre := range genres {
		if energetic {
			queries = append(queries, genre+" energetic")
		} else {
			queries = append(queries, genre+" chill")
		}
	}

	if target.Valence >= 0.5 {
		queries = append(queries, "feel good hits", "upbeat anthems")
	} else {
		queries = append(queries, "chill vibes", "mellow acoustic")
	}
	queries = append(queries, "chart toppers", "viral hits")

	if len(queries) > constants.ResolverConfig.MaxQueriesPerStrategy {
		queries = queries[:constants.ResolverConfig.MaxQueriesPerStrategy]
	}
	return queries
}
