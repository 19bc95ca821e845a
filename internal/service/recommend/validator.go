// Package recommend implements the multi-tier recommendation pipeline:
// catalog-native recommendations first, model-guided search second, keyword
// heuristics as the fallback, merged in order and deduplicated.
package recommend

import (
	"github.com/tunescope/tunescope-go/internal/config"
	"github.com/tunescope/tunescope-go/internal/domain"
	"github.com/tunescope/tunescope-go/internal/util"
)

// FeatureValidator gates candidate tracks on how close their measured
// audio features sit to the profile's target vector.
type FeatureValidator struct {
	tolerance float64
	strict    bool
}

func NewFeatureValidator(tolerance float64, mode string) *FeatureValidator {
	return &FeatureValidator{
		tolerance: tolerance,
		strict:    mode == config.ValidationStrict,
	}
}

// Matches reports whether every dimension of measured is within tolerance
// of target. The boundary counts as a match.
func (v *FeatureValidator) Matches(measured, target domain.FeatureVector) bool {
	return util.WithinTolerance(measured.Energy, target.Energy, v.tolerance) &&
		util.WithinTolerance(measured.Valence, target.Valence, v.tolerance) &&
		util.WithinTolerance(measured.Danceability, target.Danceability, v.tolerance) &&
		util.WithinTolerance(measured.Acousticness, target.Acousticness, v.tolerance)
}

// Accept decides a candidate with a possibly missing measured vector. In
// lenient mode a missing vector fails open; strict mode rejects it.
func (v *FeatureValidator) Accept(measured *domain.FeatureVector, target domain.FeatureVector) bool {
	if measured == nil {
		return !v.strict
	}
	return v.Matches(*measured, target)
}
