package recommend

import (
	"context"

	"go.uber.org/zap"

	"github.com/tunescope/tunescope-go/internal/domain"
	perrors "github.com/tunescope/tunescope-go/pkg/errors"
)

// Resolver walks the strategy tiers in order until the target count is
// reached, merging results and deduplicating by title and artist.
type Resolver struct {
	strategies  []Strategy
	targetCount int
	logger      *zap.Logger
}

func NewResolver(strategies []Strategy, targetCount int, logger *zap.Logger) *Resolver {
	return &Resolver{
		strategies:  strategies,
		targetCount: targetCount,
		logger:      logger,
	}
}

// Resolve produces up to the target count of recommendations for the
// profile. A later tier only runs when the earlier tiers left a shortfall.
// An empty result is valid; the caller decides how to present it.
func (r *Resolver) Resolve(ctx context.Context, profile domain.PersonalityProfile) ([]domain.Recommendation, error) {
	recs := make([]domain.Recommendation, 0, r.targetCount)
	seen := make(map[string]struct{})

	for _, strategy := range r.strategies {
		if len(recs) >= r.targetCount {
			break
		}

		got, err := strategy.Recommend(ctx, profile, r.targetCount-len(recs))
		if err != nil {
			if isAbortError(err) {
				return nil, err
			}
			r.logger.Warn("Strategy failed, moving to next tier",
				zap.String("strategy", strategy.Name()),
				zap.Error(err),
			)
			continue
		}

		added := 0
		for _, rec := range got {
			key := rec.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			recs = append(recs, rec)
			added++
			if len(recs) >= r.targetCount {
				break
			}
		}

		r.logger.Info("Strategy tier complete",
			zap.String("strategy", strategy.Name()),
			zap.Int("added", added),
			zap.Int("total", len(recs)),
		)
	}

	return recs, nil
}

// isAbortError reports whether a strategy error should stop the pipeline
// instead of falling through to the next tier. Quota and credential
// failures affect every tier that talks to the model, so retrying tiers
// cannot help.
func isAbortError(err error) bool {
	perr, ok := perrors.AsPipelineError(err)
	if !ok {
		return false
	}
	return perr.Code == perrors.CodeQuota || perr.Code == perrors.CodeCredential
}
