package recommend

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/tunescope/tunescope-go/internal/constants"
	"github.com/tunescope/tunescope-go/internal/domain"
	"github.com/tunescope/tunescope-go/internal/util"
)

const (
	searchConcurrency  = 4
	candidatesPerQuery = 3
)

// ModelGuidedStrategy is the second tier: the model proposes search
// queries with explanations attached, each query resolves to its first
// feature-passing search hit.
type ModelGuidedStrategy struct {
	catalog   Catalog
	suggester QuerySuggester
	validator *FeatureValidator
	logger    *zap.Logger
}

func NewModelGuidedStrategy(catalog Catalog, suggester QuerySuggester, validator *FeatureValidator, logger *zap.Logger) *ModelGuidedStrategy {
	return &ModelGuidedStrategy{
		catalog:   catalog,
		suggester: suggester,
		validator: validator,
		logger:    logger,
	}
}

func (s *ModelGuidedStrategy) Name() string {
	return "model-guided"
}

func (s *ModelGuidedStrategy) Recommend(ctx context.Context, profile domain.PersonalityProfile, needed int) ([]domain.Recommendation, error) {
	genres, err := s.catalog.AvailableGenres(ctx)
	if err != nil {
		s.logger.Warn("Genre seed lookup failed, prompting without vocabulary", zap.Error(err))
		genres = nil
	}

	suggestions, err := s.suggester.SuggestQueries(ctx, profile, genres)
	if err != nil {
		return nil, err
	}
	if len(suggestions) > constants.ResolverConfig.MaxQueriesPerStrategy {
		suggestions = suggestions[:constants.ResolverConfig.MaxQueriesPerStrategy]
	}

	candidates := s.searchAll(ctx, suggestions)

	var ids []string
	for _, tracks := range candidates {
		for _, t := range tracks {
			ids = append(ids, t.ID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	features, err := s.catalog.GetAudioFeatures(ctx, ids)
	if err != nil {
		s.logger.Warn("Audio feature lookup failed, validating without measurements", zap.Error(err))
		features = nil
	}

	target := profile.MusicPreferences.TargetFeatures()
	recs := make([]domain.Recommendation, 0, needed)
	for i, suggestion := range suggestions {
		if len(recs) >= needed {
			break
		}
		track, ok := pickCandidate(candidates[i], features, s.validator, target)
		if !ok {
			continue
		}
		recs = append(recs, s.buildRecommendation(track, suggestion, profile, target))
	}

	s.logger.Debug("Model strategy produced candidates",
		zap.Int("queries", len(suggestions)),
		zap.Int("accepted", len(recs)),
	)
	return recs, nil
}

// searchAll runs all suggested queries concurrently. Results keep the
// suggestion order so earlier queries get first pick.
func (s *ModelGuidedStrategy) searchAll(ctx context.Context, suggestions []domain.QuerySuggestion) [][]domain.Track {
	p := pool.New().WithMaxGoroutines(searchConcurrency)

	results := make([][]domain.Track, len(suggestions))
	resultsMu := sync.Mutex{}

	for idx, suggestion := range suggestions {
		idx, suggestion := idx, suggestion
		p.Go(func() {
			tracks := s.searchQuery(ctx, suggestion.Query)
			resultsMu.Lock()
			results[idx] = tracks
			resultsMu.Unlock()
		})
	}

	p.Wait()
	return results
}

// searchQuery resolves one query, retrying once with punctuation stripped
// when the literal query comes back empty.
func (s *ModelGuidedStrategy) searchQuery(ctx context.Context, query string) []domain.Track {
	tracks, err := s.catalog.SearchTracks(ctx, query, candidatesPerQuery)
	if err != nil {
		s.logger.Warn("Query search failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	if len(tracks) > 0 {
		return tracks
	}

	simplified := util.StripPunctuation(query)
	if simplified == "" || simplified == query {
		return nil
	}

	tracks, err = s.catalog.SearchTracks(ctx, simplified, candidatesPerQuery)
	if err != nil {
		s.logger.Warn("Simplified search failed", zap.String("query", simplified), zap.Error(err))
		return nil
	}
	return tracks
}

func (s *ModelGuidedStrategy) buildRecommendation(track domain.Track, suggestion domain.QuerySuggestion, profile domain.PersonalityProfile, target domain.FeatureVector) domain.Recommendation {
	reason := suggestion.Reason
	if reason == "" {
		reason = generatedReason(profile, target)
	}
	match := suggestion.PersonalityMatch
	if len(match) == 0 {
		match = leadTraits(profile)
	}
	mood := suggestion.Mood
	if mood == "" {
		mood = domain.MoodFromValence(target.Valence)
	}

	return domain.Recommendation{
		Track:            track,
		Reason:           reason,
		PersonalityMatch: match,
		Mood:             mood,
		Energy:           energyLevelFromLabel(suggestion.Energy, target.Energy),
	}
}
