package recommend

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/tunescope/tunescope-go/internal/config"
	"github.com/tunescope/tunescope-go/internal/domain"
)

type fakeCatalog struct {
	searchResults map[string][]domain.Track
	searchErr     error
	searchCalls   []string

	recommendTracks []domain.Track
	recommendErr    error

	features     map[string]domain.FeatureVector
	featuresErr  error
	featureCalls [][]string

	genres    []string
	genresErr error
}

func (f *fakeCatalog) SearchTracks(_ context.Context, query string, _ int) ([]domain.Track, error) {
	f.searchCalls = append(f.searchCalls, query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults[query], nil
}

func (f *fakeCatalog) RecommendByProfile(_ context.Context, _ []string, _ domain.FeatureVector, _ int) ([]domain.Track, error) {
	if f.recommendErr != nil {
		return nil, f.recommendErr
	}
	return f.recommendTracks, nil
}

func (f *fakeCatalog) GetAudioFeatures(_ context.Context, ids []string) (map[string]domain.FeatureVector, error) {
	f.featureCalls = append(f.featureCalls, ids)
	if f.featuresErr != nil {
		return nil, f.featuresErr
	}
	out := make(map[string]domain.FeatureVector)
	for _, id := range ids {
		if v, ok := f.features[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func (f *fakeCatalog) AvailableGenres(_ context.Context) ([]string, error) {
	if f.genresErr != nil {
		return nil, f.genresErr
	}
	return f.genres, nil
}

type fakeSuggester struct {
	suggestions []domain.QuerySuggestion
	err         error
}

func (f *fakeSuggester) SuggestQueries(_ context.Context, _ domain.PersonalityProfile, _ []string) ([]domain.QuerySuggestion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.suggestions, nil
}

func track(id, title, artist string) domain.Track {
	return domain.Track{ID: id, Title: title, Artist: artist}
}

func TestCatalogStrategyValidatesFeatures(t *testing.T) {
	catalog := &fakeCatalog{
		recommendTracks: []domain.Track{
			track("1", "a", "x"), track("2", "b", "x"), track("3", "c", "x"),
			track("4", "d", "x"), track("5", "e", "x"),
		},
		features: map[string]domain.FeatureVector{
			"1": vector(0.7, 0.6, 0.5, 0.5),
			"2": vector(0.0, 0.0, 0.0, 1.0),
			"3": vector(0.6, 0.7, 0.5, 0.5),
			"4": vector(1.0, 0.0, 1.0, 1.0),
			"5": vector(0.8, 0.5, 0.6, 0.4),
		},
	}
	validator := NewFeatureValidator(0.2, config.ValidationStrict)
	strategy := NewCatalogStrategy(catalog, validator, zap.NewNop())

	profile := testProfile()
	profile.MusicPreferences = domain.MusicPreferences{
		Genres: []string{"indie"}, Energy: 0.7, Valence: 0.6, Danceability: 0.5, Acousticness: 0.5,
	}

	got, err := strategy.Recommend(context.Background(), profile, 6)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("accepted %d tracks, want 3 of 5", len(got))
	}
	for _, r := range got {
		if r.Reason == "" || r.Mood == "" || r.Energy == "" {
			t.Fatalf("recommendation missing explanation fields: %+v", r)
		}
	}
}

func TestCatalogStrategyLenientAcceptsUnmeasured(t *testing.T) {
	catalog := &fakeCatalog{
		recommendTracks: []domain.Track{track("1", "a", "x"), track("2", "b", "x")},
		featuresErr:     errors.New("features endpoint down"),
	}
	strategy := NewCatalogStrategy(catalog, NewFeatureValidator(0.4, config.ValidationLenient), zap.NewNop())

	got, err := strategy.Recommend(context.Background(), testProfile(), 6)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("lenient mode accepted %d tracks, want 2", len(got))
	}
}

func TestCatalogStrategyStrictRejectsUnmeasured(t *testing.T) {
	catalog := &fakeCatalog{
		recommendTracks: []domain.Track{track("1", "a", "x")},
		featuresErr:     errors.New("features endpoint down"),
	}
	strategy := NewCatalogStrategy(catalog, NewFeatureValidator(0.4, config.ValidationStrict), zap.NewNop())

	got, err := strategy.Recommend(context.Background(), testProfile(), 6)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("strict mode accepted %d unmeasured tracks, want 0", len(got))
	}
}

func TestCatalogStrategyPrefersMeasuredCandidates(t *testing.T) {
	catalog := &fakeCatalog{
		recommendTracks: []domain.Track{
			track("1", "a", "x"), track("2", "b", "x"), track("3", "c", "x"),
		},
		features: map[string]domain.FeatureVector{
			"1": vector(0.0, 0.0, 1.0, 1.0),
			"3": vector(0.7, 0.6, 0.0, 0.0),
		},
	}
	strategy := NewCatalogStrategy(catalog, NewFeatureValidator(0.2, config.ValidationLenient), zap.NewNop())

	got, err := strategy.Recommend(context.Background(), testProfile(), 1)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("got %v, want the measured passing track over the unmeasured one", titles(got))
	}
}

func TestModelStrategyUsesSuggestionExplanations(t *testing.T) {
	catalog := &fakeCatalog{
		genres: []string{"indie"},
		searchResults: map[string][]domain.Track{
			"upbeat indie anthems": {track("1", "a", "x")},
		},
		features: map[string]domain.FeatureVector{
			"1": vector(0.7, 0.6, 0.3, 0.2),
		},
	}
	suggester := &fakeSuggester{suggestions: []domain.QuerySuggestion{{
		Query:            "upbeat indie anthems",
		Reason:           "Matches your adventurous streak",
		PersonalityMatch: []string{"curious"},
		Mood:             "Uplifting",
		Energy:           "high",
	}}}
	strategy := NewModelGuidedStrategy(catalog, suggester, NewFeatureValidator(0.4, config.ValidationStrict), zap.NewNop())

	got, err := strategy.Recommend(context.Background(), testProfile(), 6)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("accepted %d tracks, want 1", len(got))
	}
	if got[0].Reason != "Matches your adventurous streak" {
		t.Fatalf("Reason = %q, want suggestion reason", got[0].Reason)
	}
	if got[0].Energy != domain.EnergyHigh {
		t.Fatalf("Energy = %q, want High", got[0].Energy)
	}
}

func TestModelStrategyRetriesSimplifiedQuery(t *testing.T) {
	catalog := &fakeCatalog{
		searchResults: map[string][]domain.Track{
			"cant stop the feeling": {track("1", "a", "x")},
		},
	}
	suggester := &fakeSuggester{suggestions: []domain.QuerySuggestion{{
		Query: "can't stop the feeling!",
	}}}
	strategy := NewModelGuidedStrategy(catalog, suggester, NewFeatureValidator(0.4, config.ValidationLenient), zap.NewNop())

	got, err := strategy.Recommend(context.Background(), testProfile(), 6)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("accepted %d tracks, want 1 via simplified retry", len(got))
	}
	if len(catalog.searchCalls) != 2 {
		t.Fatalf("search calls = %v, want literal then simplified", catalog.searchCalls)
	}
	if catalog.searchCalls[1] != "cant stop the feeling" {
		t.Fatalf("retry query = %q, want punctuation stripped", catalog.searchCalls[1])
	}
}

func TestModelStrategyFirstPassingCandidateWins(t *testing.T) {
	catalog := &fakeCatalog{
		searchResults: map[string][]domain.Track{
			"indie rock": {track("1", "a", "x"), track("2", "b", "x")},
		},
		features: map[string]domain.FeatureVector{
			"1": vector(0.0, 0.0, 1.0, 1.0),
			"2": vector(0.7, 0.6, 0.5, 0.5),
		},
	}
	suggester := &fakeSuggester{suggestions: []domain.QuerySuggestion{{Query: "indie rock"}}}
	strategy := NewModelGuidedStrategy(catalog, suggester, NewFeatureValidator(0.2, config.ValidationStrict), zap.NewNop())

	profile := testProfile()
	profile.MusicPreferences = domain.MusicPreferences{
		Energy: 0.7, Valence: 0.6, Danceability: 0.5, Acousticness: 0.5,
	}

	got, err := strategy.Recommend(context.Background(), profile, 6)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("got %v, want only the feature-passing candidate", titles(got))
	}
}

func TestModelStrategyMeasuredCandidatePreemptsFailOpen(t *testing.T) {
	catalog := &fakeCatalog{
		searchResults: map[string][]domain.Track{
			"dreamy synth": {track("1", "haze", "x"), track("2", "aurora", "x")},
		},
		features: map[string]domain.FeatureVector{
			"2": vector(0.7, 0.6, 0.0, 0.0),
		},
	}
	suggester := &fakeSuggester{suggestions: []domain.QuerySuggestion{{Query: "dreamy synth"}}}
	strategy := NewModelGuidedStrategy(catalog, suggester, NewFeatureValidator(0.4, config.ValidationLenient), zap.NewNop())

	got, err := strategy.Recommend(context.Background(), testProfile(), 6)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("got %v, want the measured candidate over the unmeasured one", titles(got))
	}
}

func TestModelStrategyRejectsWhenMeasuredCandidatesFail(t *testing.T) {
	catalog := &fakeCatalog{
		searchResults: map[string][]domain.Track{
			"screamo": {track("1", "dirge", "x")},
		},
		features: map[string]domain.FeatureVector{
			"1": vector(0.0, 0.0, 0.0, 1.0),
		},
	}
	suggester := &fakeSuggester{suggestions: []domain.QuerySuggestion{{Query: "screamo"}}}
	strategy := NewModelGuidedStrategy(catalog, suggester, NewFeatureValidator(0.4, config.ValidationLenient), zap.NewNop())

	got, err := strategy.Recommend(context.Background(), testProfile(), 6)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want no fallback when a measured candidate was rejected", titles(got))
	}
}

func TestModelStrategyPropagatesSuggesterError(t *testing.T) {
	suggester := &fakeSuggester{err: errors.New("model unavailable")}
	strategy := NewModelGuidedStrategy(&fakeCatalog{}, suggester, NewFeatureValidator(0.4, config.ValidationLenient), zap.NewNop())

	if _, err := strategy.Recommend(context.Background(), testProfile(), 6); err == nil {
		t.Fatal("expected suggester error to propagate")
	}
}

func TestKeywordQueriesFollowTargetFeatures(t *testing.T) {
	energetic := buildKeywordQueries([]string{"rock", "pop", "jazz"}, vector(0.8, 0.7, 0.5, 0.2))
	if len(energetic) == 0 || energetic[0] != "rock energetic" {
		t.Fatalf("queries = %v, want genre+energetic first", energetic)
	}
	for _, q := range energetic {
		if q == "jazz energetic" {
			t.Fatalf("queries = %v, genre list should be capped", energetic)
		}
	}

	calm := buildKeywordQueries(nil, vector(0.2, 0.3, 0.5, 0.8))
	want := []string{"chill vibes", "mellow acoustic", "chart toppers", "viral hits"}
	if len(calm) != len(want) {
		t.Fatalf("queries = %v, want %v", calm, want)
	}
	for i := range want {
		if calm[i] != want[i] {
			t.Fatalf("queries = %v, want %v", calm, want)
		}
	}
}

func TestKeywordStrategyRejectsOutOfToleranceCandidates(t *testing.T) {
	catalog := &fakeCatalog{
		searchResults: map[string][]domain.Track{
			"indie energetic": {track("1", "dirge", "x")},
		},
		features: map[string]domain.FeatureVector{
			"1": vector(0.0, 0.0, 0.0, 1.0),
		},
	}
	strategy := NewKeywordStrategy(catalog, NewFeatureValidator(0.4, config.ValidationLenient), zap.NewNop())

	got, err := strategy.Recommend(context.Background(), testProfile(), 6)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	for _, r := range got {
		if r.ID == "1" {
			t.Fatalf("out-of-tolerance candidate was accepted: %v", titles(got))
		}
	}
	if len(catalog.featureCalls) == 0 {
		t.Fatal("keyword tier never looked up audio features")
	}
}

func TestKeywordStrategyAcceptsFirstPassingPerQuery(t *testing.T) {
	catalog := &fakeCatalog{
		searchResults: map[string][]domain.Track{
			"indie energetic": {track("1", "a", "x")},
			"feel good hits":  {track("2", "b", "x"), track("3", "c", "x")},
		},
		features: map[string]domain.FeatureVector{
			"1": vector(0.7, 0.6, 0.0, 0.0),
			"2": vector(0.0, 0.0, 0.0, 1.0),
			"3": vector(0.6, 0.7, 0.0, 0.0),
		},
	}
	strategy := NewKeywordStrategy(catalog, NewFeatureValidator(0.4, config.ValidationLenient), zap.NewNop())

	got, err := strategy.Recommend(context.Background(), testProfile(), 2)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("got %v, want the passing candidate from each query", titles(got))
	}
}
