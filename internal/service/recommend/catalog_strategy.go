package recommend

import (
	"context"

	"go.uber.org/zap"

	"github.com/tunescope/tunescope-go/internal/constants"
	"github.com/tunescope/tunescope-go/internal/domain"
)

// CatalogStrategy is the first tier: catalog-native recommendations seeded
// by the profile's genres and targeted at its feature vector, then gated on
// measured features.
type CatalogStrategy struct {
	catalog   Catalog
	validator *FeatureValidator
	logger    *zap.Logger
}

func NewCatalogStrategy(catalog Catalog, validator *FeatureValidator, logger *zap.Logger) *CatalogStrategy {
	return &CatalogStrategy{
		catalog:   catalog,
		validator: validator,
		logger:    logger,
	}
}

func (s *CatalogStrategy) Name() string {
	return "catalog-native"
}

func (s *CatalogStrategy) Recommend(ctx context.Context, profile domain.PersonalityProfile, needed int) ([]domain.Recommendation, error) {
	target := profile.MusicPreferences.TargetFeatures()

	tracks, err := s.catalog.RecommendByProfile(ctx, profile.MusicPreferences.Genres, target, constants.ResolverConfig.CatalogNativeLimit)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, nil
	}

	// Feature lookups are capped; tracks past the cap carry no measured
	// vector and are decided by the validation mode.
	lookupCount := len(tracks)
	if lookupCount > constants.ResolverConfig.CatalogFeatureLookups {
		lookupCount = constants.ResolverConfig.CatalogFeatureLookups
	}
	ids := make([]string, 0, lookupCount)
	for _, t := range tracks[:lookupCount] {
		ids = append(ids, t.ID)
	}

	features, err := s.catalog.GetAudioFeatures(ctx, ids)
	if err != nil {
		s.logger.Warn("Audio feature lookup failed, validating without measurements", zap.Error(err))
		features = nil
	}

	// Measured candidates decide first. Unmeasured ones (past the lookup
	// cap, or missing from the response) only fill remaining slots, and
	// only when the validation mode fails open.
	recs := make([]domain.Recommendation, 0, needed)
	var unmeasured []domain.Track
	for _, track := range tracks {
		if len(recs) >= needed {
			break
		}
		v, ok := features[track.ID]
		if !ok {
			unmeasured = append(unmeasured, track)
			continue
		}
		if !s.validator.Matches(v, target) {
			continue
		}
		recs = append(recs, recommendationFromTrack(track, profile, target))
	}
	for _, track := range unmeasured {
		if len(recs) >= needed || !s.validator.Accept(nil, target) {
			break
		}
		recs = append(recs, recommendationFromTrack(track, profile, target))
	}

	s.logger.Debug("Catalog strategy produced candidates",
		zap.Int("fetched", len(tracks)),
		zap.Int("accepted", len(recs)),
	)
	return recs, nil
}
