package recommend

import (
	"testing"

	"github.com/tunescope/tunescope-go/internal/config"
	"github.com/tunescope/tunescope-go/internal/domain"
)

func vector(e, v, d, a float64) domain.FeatureVector {
	return domain.FeatureVector{Energy: e, Valence: v, Danceability: d, Acousticness: a}
}

func TestMatchesWithinTolerance(t *testing.T) {
	validator := NewFeatureValidator(0.4, config.ValidationLenient)
	target := vector(0.5, 0.5, 0.5, 0.5)

	cases := []struct {
		name     string
		measured domain.FeatureVector
		want     bool
	}{
		{"identical", vector(0.5, 0.5, 0.5, 0.5), true},
		{"all near", vector(0.7, 0.3, 0.6, 0.4), true},
		{"boundary accepts", vector(0.1, 0.5, 0.5, 0.5), true},
		{"energy too far", vector(0.95, 0.5, 0.5, 0.5), false},
		{"valence too far", vector(0.5, 0.05, 0.5, 0.5), false},
		{"danceability too far", vector(0.5, 0.5, 0.95, 0.5), false},
		{"acousticness too far", vector(0.5, 0.5, 0.5, 0.05), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validator.Matches(tc.measured, target); got != tc.want {
				t.Fatalf("Matches(%+v) = %v, want %v", tc.measured, got, tc.want)
			}
		})
	}
}

func TestMatchesIsSymmetric(t *testing.T) {
	validator := NewFeatureValidator(0.4, config.ValidationStrict)
	a := vector(0.2, 0.8, 0.4, 0.6)
	b := vector(0.55, 0.45, 0.75, 0.25)

	if validator.Matches(a, b) != validator.Matches(b, a) {
		t.Fatalf("Matches is not symmetric for %+v and %+v", a, b)
	}
}

func TestAcceptMissingVector(t *testing.T) {
	target := vector(0.5, 0.5, 0.5, 0.5)

	lenient := NewFeatureValidator(0.4, config.ValidationLenient)
	if !lenient.Accept(nil, target) {
		t.Fatal("lenient mode should accept a candidate with no measured features")
	}

	strict := NewFeatureValidator(0.4, config.ValidationStrict)
	if strict.Accept(nil, target) {
		t.Fatal("strict mode should reject a candidate with no measured features")
	}
}

func TestAcceptMeasuredVectorIgnoresMode(t *testing.T) {
	target := vector(0.5, 0.5, 0.5, 0.5)
	far := vector(0.0, 1.0, 0.5, 0.5)

	for _, mode := range []string{config.ValidationStrict, config.ValidationLenient} {
		validator := NewFeatureValidator(0.4, mode)
		if validator.Accept(&far, target) {
			t.Fatalf("mode %s accepted an out-of-tolerance vector", mode)
		}
		near := target
		if !validator.Accept(&near, target) {
			t.Fatalf("mode %s rejected an in-tolerance vector", mode)
		}
	}
}
