package domain

import "github.com/tunescope/tunescope-go/internal/util"

// Track identifies a single playable track in the external catalog.
type Track struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	EmbedURL   string `json:"embedUrl"`
	PreviewURL string `json:"previewUrl,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
	SpotifyURL string `json:"spotifyUrl"`
}

// Key is the track's deduplication identity: normalized title and artist.
func (t Track) Key() string {
	return util.DedupKey(t.Title, t.Artist)
}

// FeatureVector holds the measured or targeted audio features of a track,
// each in [0, 1].
type FeatureVector struct {
	Energy       float64 `json:"energy"`
	Valence      float64 `json:"valence"`
	Danceability float64 `json:"danceability"`
	Acousticness float64 `json:"acousticness"`
}

// Recommendation is an accepted track enriched with the explanation shown to
// the user.
type Recommendation struct {
	Track
	Reason           string      `json:"reason"`
	PersonalityMatch []string    `json:"personalityMatch"`
	Mood             string      `json:"mood"`
	Energy           EnergyLevel `json:"energy"`
}

// RecommendationResult is the produced payload of the pipeline.
type RecommendationResult struct {
	PersonalityAnalysis PersonalityProfile `json:"personalityAnalysis"`
	Songs               []Recommendation   `json:"songs"`
}
