package domain

// PersonalityProfile is the model-inferred analysis of a completed
// questionnaire.
type PersonalityProfile struct {
	Type             string           `json:"type"`
	Description      string           `json:"description"`
	Traits           []string         `json:"traits"`
	MusicPreferences MusicPreferences `json:"musicPreferences"`
}

// MusicPreferences carries the target audio-feature vector and seed genres
// derived from the profile. All feature values live in [0, 1].
type MusicPreferences struct {
	Genres       []string `json:"genres"`
	Energy       float64  `json:"energy"`
	Valence      float64  `json:"valence"`
	Danceability float64  `json:"danceability"`
	Acousticness float64  `json:"acousticness"`
}

// TargetFeatures returns the preferred audio features as a vector.
func (p MusicPreferences) TargetFeatures() FeatureVector {
	return FeatureVector{
		Energy:       p.Energy,
		Valence:      p.Valence,
		Danceability: p.Danceability,
		Acousticness: p.Acousticness,
	}
}

type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "High"
	EnergyMedium EnergyLevel = "Medium"
	EnergyLow    EnergyLevel = "Low"
)

// EnergyLevelFrom buckets a [0, 1] energy value into the display level.
func EnergyLevelFrom(energy float64) EnergyLevel {
	if energy > 0.6 {
		return EnergyHigh
	}
	if energy > 0.3 {
		return EnergyMedium
	}
	return EnergyLow
}

// MoodFromValence maps a valence value to a one-word mood label.
func MoodFromValence(valence float64) string {
	if valence > 0.8 {
		return "Euphoric"
	}
	if valence > 0.6 {
		return "Uplifting"
	}
	if valence > 0.4 {
		return "Balanced"
	}
	if valence > 0.2 {
		return "Melancholic"
	}
	return "Introspective"
}

// EnergyDescription is the adjective used in generated reason text.
func EnergyDescription(energy float64) string {
	if energy > 0.7 {
		return "high"
	}
	if energy > 0.4 {
		return "moderate"
	}
	return "calm"
}

// ValenceDescription is the adjective used in generated reason text.
func ValenceDescription(valence float64) string {
	if valence > 0.7 {
		return "upbeat"
	}
	if valence > 0.4 {
		return "balanced"
	}
	return "mellow"
}
