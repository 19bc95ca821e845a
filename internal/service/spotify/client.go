// Package spotify adapts the external music catalog behind the contracts
// the recommendation pipeline consumes.
package spotify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"

	spotifylib "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"

	"github.com/tunescope/tunescope-go/internal/constants"
	"github.com/tunescope/tunescope-go/internal/domain"
	"github.com/tunescope/tunescope-go/internal/util"
	perrors "github.com/tunescope/tunescope-go/pkg/errors"
)

// Cache is the slice of the cache service the client needs. A nil Cache
// disables memoization; every lookup goes straight to the API.
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Client struct {
	api    *spotifylib.Client
	cache  Cache
	logger *zap.Logger
}

// NewClient builds a catalog client on the client-credentials flow. The
// oauth2 transport refreshes the token lazily and is safe for concurrent
// use.
func NewClient(ctx context.Context, clientID, clientSecret string, cache Cache, logger *zap.Logger) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, perrors.NewCredentialError("Spotify credentials not configured", "spotify", nil)
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	httpClient := config.Client(ctx)

	return &Client{
		api:    spotifylib.New(httpClient),
		cache:  cache,
		logger: logger,
	}, nil
}

// SearchTracks runs a track search. Zero results is an empty slice, not an
// error.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	if limit <= 0 {
		limit = constants.ResolverConfig.SearchLimit
	}

	cacheKey := fmt.Sprintf("spotify:search:%d:%s", limit, util.Normalize(query))
	var cached []domain.Track
	if c.cacheGet(ctx, cacheKey, &cached) && cached != nil {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, constants.SpotifyConfig.RequestTimeout)
	defer cancel()

	result, err := c.api.Search(ctx, query, spotifylib.SearchTypeTrack, spotifylib.Limit(limit))
	if err != nil {
		return nil, perrors.NewServiceError("track search failed", "spotify", "search", err)
	}

	tracks := []domain.Track{}
	if result.Tracks != nil {
		for _, t := range result.Tracks.Tracks {
			tracks = append(tracks, trackFromFull(t))
		}
	}

	c.cacheSet(ctx, cacheKey, tracks, constants.CacheTTL.TrackSearch)

	c.logger.Debug("Track search",
		zap.String("query", query),
		zap.Int("results", len(tracks)),
	)
	return tracks, nil
}

// RecommendByProfile asks the catalog for native recommendations seeded by
// genres and targeted at the preferred feature vector. Seed genres beyond
// the API limit are dropped.
func (c *Client) RecommendByProfile(ctx context.Context, seedGenres []string, target domain.FeatureVector, limit int) ([]domain.Track, error) {
	if limit <= 0 {
		limit = constants.ResolverConfig.CatalogNativeLimit
	}
	if len(seedGenres) > constants.ResolverConfig.SeedGenreLimit {
		seedGenres = seedGenres[:constants.ResolverConfig.SeedGenreLimit]
	}

	ctx, cancel := context.WithTimeout(ctx, constants.SpotifyConfig.RequestTimeout)
	defer cancel()

	seeds := spotifylib.Seeds{Genres: normalizeGenres(seedGenres)}
	attrs := spotifylib.NewTrackAttributes().
		TargetEnergy(target.Energy).
		TargetValence(target.Valence).
		TargetDanceability(target.Danceability).
		TargetAcousticness(target.Acousticness)

	recs, err := c.api.GetRecommendations(ctx, seeds, attrs, spotifylib.Limit(limit))
	if err != nil {
		return nil, perrors.NewServiceError("recommendation lookup failed", "spotify", "recommendations", err)
	}

	tracks := make([]domain.Track, 0, len(recs.Tracks))
	for _, t := range recs.Tracks {
		tracks = append(tracks, trackFromSimple(t))
	}

	c.logger.Debug("Catalog recommendations",
		zap.Strings("seed_genres", seedGenres),
		zap.Int("results", len(tracks)),
	)
	return tracks, nil
}

// GetAudioFeatures resolves measured feature vectors for the given track
// ids. Tracks the catalog has no analysis for are absent from the result
// map.
func (c *Client) GetAudioFeatures(ctx context.Context, ids []string) (map[string]domain.FeatureVector, error) {
	features := make(map[string]domain.FeatureVector, len(ids))
	var missing []spotifylib.ID

	for _, id := range ids {
		var cached domain.FeatureVector
		key := featureCacheKey(id)
		if c.cacheGet(ctx, key, &cached) && cached != (domain.FeatureVector{}) {
			features[id] = cached
			continue
		}
		missing = append(missing, spotifylib.ID(id))
	}

	if len(missing) == 0 {
		return features, nil
	}

	ctx, cancel := context.WithTimeout(ctx, constants.SpotifyConfig.RequestTimeout)
	defer cancel()

	fetched, err := c.api.GetAudioFeatures(ctx, missing...)
	if err != nil {
		return nil, perrors.NewServiceError("audio feature lookup failed", "spotify", "audio-features", err)
	}

	for _, f := range fetched {
		if f == nil {
			continue
		}
		vector := domain.FeatureVector{
			Energy:       float64(f.Energy),
			Valence:      float64(f.Valence),
			Danceability: float64(f.Danceability),
			Acousticness: float64(f.Acousticness),
		}
		id := string(f.ID)
		features[id] = vector
		c.cacheSet(ctx, featureCacheKey(id), vector, constants.CacheTTL.AudioFeatures)
	}

	return features, nil
}

// AvailableGenres returns the catalog's seed genre vocabulary.
func (c *Client) AvailableGenres(ctx context.Context) ([]string, error) {
	const cacheKey = "spotify:genres"
	var cached []string
	if c.cacheGet(ctx, cacheKey, &cached) && len(cached) > 0 {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, constants.SpotifyConfig.RequestTimeout)
	defer cancel()

	genres, err := c.api.GetAvailableGenreSeeds(ctx)
	if err != nil {
		return nil, perrors.NewServiceError("genre seed lookup failed", "spotify", "genres", err)
	}

	c.cacheSet(ctx, cacheKey, genres, constants.CacheTTL.GenreSeeds)
	return genres, nil
}

func (c *Client) cacheGet(ctx context.Context, key string, dest any) bool {
	if c.cache == nil {
		return false
	}
	if err := c.cache.Get(ctx, key, dest); err != nil {
		c.logger.Warn("Cache read failed, falling through", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *Client) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, value, ttl); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func featureCacheKey(id string) string {
	return "spotify:features:" + id
}

// normalizeGenres lowercases and hyphenates genre names so model output
// like "Indie Pop" matches the catalog's seed vocabulary.
func normalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.ReplaceAll(util.Normalize(g), " ", "-")
		if g != "" {
			out = append(out, g)
		}
	}
	return out
}

func trackFromFull(t spotifylib.FullTrack) domain.Track {
	track := trackFromSimple(t.SimpleTrack)
	if len(t.Album.Images) > 0 {
		track.ImageURL = t.Album.Images[0].URL
	}
	return track
}

func trackFromSimple(t spotifylib.SimpleTrack) domain.Track {
	artist := "Unknown Artist"
	if len(t.Artists) > 0 {
		artist = t.Artists[0].Name
	}

	id := string(t.ID)
	spotifyURL := t.ExternalURLs["spotify"]
	if spotifyURL == "" {
		spotifyURL = "https://open.spotify.com/track/" + id
	}

	return domain.Track{
		ID:         id,
		Title:      t.Name,
		Artist:     artist,
		EmbedURL:   "https://open.spotify.com/embed/track/" + id,
		PreviewURL: t.PreviewURL,
		SpotifyURL: spotifyURL,
	}
}
