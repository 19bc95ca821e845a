package recommend

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/tunescope/tunescope-go/internal/domain"
	perrors "github.com/tunescope/tunescope-go/pkg/errors"
)

type fakeStrategy struct {
	name  string
	recs  []domain.Recommendation
	err   error
	calls int
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Recommend(_ context.Context, _ domain.PersonalityProfile, needed int) ([]domain.Recommendation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.recs) > needed {
		return f.recs[:needed], nil
	}
	return f.recs, nil
}

func rec(title, artist string) domain.Recommendation {
	return domain.Recommendation{
		Track: domain.Track{ID: title, Title: title, Artist: artist},
	}
}

func testProfile() domain.PersonalityProfile {
	return domain.PersonalityProfile{
		Type:   "Explorer",
		Traits: []string{"curious", "open", "energetic"},
		MusicPreferences: domain.MusicPreferences{
			Genres:  []string{"indie"},
			Energy:  0.7,
			Valence: 0.6,
		},
	}
}

func TestResolveStopsWhenTargetReached(t *testing.T) {
	first := &fakeStrategy{name: "first", recs: []domain.Recommendation{
		rec("a", "x"), rec("b", "x"), rec("c", "x"),
		rec("d", "x"), rec("e", "x"), rec("f", "x"),
	}}
	last := &fakeStrategy{name: "last", recs: []domain.Recommendation{rec("g", "x")}}

	resolver := NewResolver([]Strategy{first, last}, 6, zap.NewNop())
	got, err := resolver.Resolve(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	if last.calls != 0 {
		t.Fatalf("fallback strategy was invoked %d times, want 0", last.calls)
	}
}

func TestResolveMergesShortfallAcrossTiers(t *testing.T) {
	first := &fakeStrategy{name: "first", recs: []domain.Recommendation{
		rec("a", "x"), rec("b", "x"), rec("c", "x"),
	}}
	second := &fakeStrategy{name: "second", recs: []domain.Recommendation{
		rec("d", "x"), rec("e", "x"), rec("f", "x"), rec("g", "x"),
	}}

	resolver := NewResolver([]Strategy{first, second}, 6, zap.NewNop())
	got, err := resolver.Resolve(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	if got[0].Title != "a" || got[3].Title != "d" {
		t.Fatalf("merge did not keep tier order: %v", titles(got))
	}
}

func TestResolveDeduplicatesByTitleAndArtist(t *testing.T) {
	first := &fakeStrategy{name: "first", recs: []domain.Recommendation{rec("Song", "Artist")}}
	second := &fakeStrategy{name: "second", recs: []domain.Recommendation{
		rec("SONG", "ARTIST"), rec("  Song", "Artist  "), rec("Other", "Artist"),
	}}

	resolver := NewResolver([]Strategy{first, second}, 6, zap.NewNop())
	got, err := resolver.Resolve(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 after dedup: %v", len(got), titles(got))
	}
}

func TestResolveSkipsFailedTier(t *testing.T) {
	broken := &fakeStrategy{name: "broken", err: errors.New("catalog down")}
	working := &fakeStrategy{name: "working", recs: []domain.Recommendation{rec("a", "x")}}

	resolver := NewResolver([]Strategy{broken, working}, 6, zap.NewNop())
	got, err := resolver.Resolve(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "a" {
		t.Fatalf("expected fallback result, got %v", titles(got))
	}
}

func TestResolveAbortsOnQuotaError(t *testing.T) {
	quota := &fakeStrategy{name: "model", err: perrors.NewQuotaError("rate limited", "gemini", nil)}
	fallback := &fakeStrategy{name: "keyword", recs: []domain.Recommendation{rec("a", "x")}}

	resolver := NewResolver([]Strategy{quota, fallback}, 6, zap.NewNop())
	_, err := resolver.Resolve(context.Background(), testProfile())
	if err == nil {
		t.Fatal("expected quota error to abort the pipeline")
	}
	perr, ok := perrors.AsPipelineError(err)
	if !ok || perr.Code != perrors.CodeQuota {
		t.Fatalf("err = %v, want quota pipeline error", err)
	}
	if fallback.calls != 0 {
		t.Fatal("fallback tier ran after an aborting error")
	}
}

func TestResolveAllTiersEmpty(t *testing.T) {
	resolver := NewResolver([]Strategy{
		&fakeStrategy{name: "a"},
		&fakeStrategy{name: "b"},
	}, 6, zap.NewNop())

	got, err := resolver.Resolve(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("empty pipeline should not error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func titles(recs []domain.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}
