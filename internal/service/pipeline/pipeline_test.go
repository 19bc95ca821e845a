package pipeline

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/tunescope/tunescope-go/internal/domain"
)

type fakeInferrer struct {
	profile domain.PersonalityProfile
	err     error
}

func (f *fakeInferrer) InferProfile(_ context.Context, _ domain.Answers) (domain.PersonalityProfile, error) {
	return f.profile, f.err
}

type fakeResolver struct {
	songs []domain.Recommendation
	err   error
	calls int
}

func (f *fakeResolver) Resolve(_ context.Context, _ domain.PersonalityProfile) ([]domain.Recommendation, error) {
	f.calls++
	return f.songs, f.err
}

func TestRecommendCombinesProfileAndSongs(t *testing.T) {
	inferrer := &fakeInferrer{profile: domain.PersonalityProfile{Type: "Explorer"}}
	resolver := &fakeResolver{songs: []domain.Recommendation{
		{Track: domain.Track{ID: "1", Title: "a", Artist: "x"}},
	}}
	pipe := New(inferrer, resolver, zap.NewNop())

	result, err := pipe.Recommend(context.Background(), domain.Answers{"social-energy": "party"})
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if result.PersonalityAnalysis.Type != "Explorer" {
		t.Fatalf("profile type = %q, want Explorer", result.PersonalityAnalysis.Type)
	}
	if len(result.Songs) != 1 {
		t.Fatalf("songs = %d, want 1", len(result.Songs))
	}
}

func TestRecommendInferenceFailureAborts(t *testing.T) {
	resolver := &fakeResolver{}
	pipe := New(&fakeInferrer{err: errors.New("inference down")}, resolver, zap.NewNop())

	if _, err := pipe.Recommend(context.Background(), domain.Answers{"a": "b"}); err == nil {
		t.Fatal("expected inference error to propagate")
	}
	if resolver.calls != 0 {
		t.Fatal("resolver ran after failed inference")
	}
}

func TestRecommendEmptySongsIsValid(t *testing.T) {
	pipe := New(&fakeInferrer{profile: domain.PersonalityProfile{Type: "Explorer"}}, &fakeResolver{songs: nil}, zap.NewNop())

	result, err := pipe.Recommend(context.Background(), domain.Answers{"a": "b"})
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if result.Songs == nil {
		t.Fatal("songs should be an empty slice, not nil")
	}
}
