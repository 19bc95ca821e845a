// Package prompt builds the LLM prompts used by the analysis pipeline.
package prompt

import (
	"fmt"
	"strings"
)

// BuildPersonalityAnalysis renders the profile-inference prompt for a set
// of questionnaire answers, already JSON-encoded.
func BuildPersonalityAnalysis(answersJSON string) string {
	return fmt.Sprintf(`Analyze the following personality assessment answers and provide a comprehensive personality analysis:

Answers: %s

Based on these answers, provide a JSON response with the following structure:
{
  "type": "A catchy personality type name (e.g., 'The Dreamy Explorer', 'The Energetic Socialite')",
  "description": "A detailed 2-3 sentence description of this personality type",
  "traits": ["Array of 5-7 key personality traits"],
  "musicPreferences": {
    "genres": ["Array of 3-5 music genres that would appeal to this personality"],
    "energy": "Number between 0-1 representing preferred energy level",
    "valence": "Number between 0-1 representing preference for positive/upbeat music",
    "danceability": "Number between 0-1 representing preference for danceable music",
    "acousticness": "Number between 0-1 representing preference for acoustic vs electronic music"
  }
}

Consider the following mapping:
- Social energy levels (introvert vs extrovert)
- Decision making style (logic vs intuition)
- Adventure level (risk-taking vs comfort-seeking)
- Work environment preferences
- Stress response methods
- Creativity importance
- And any other personality indicators in the answers

Provide only the JSON response, no additional text.
`, answersJSON)
}

// BuildSongQueries renders the query-suggestion prompt for a profile,
// already JSON-encoded, constrained to the available seed genres.
func BuildSongQueries(profileJSON string, availableGenres []string) string {
	if len(availableGenres) > 50 {
		availableGenres = availableGenres[:50]
	}

	return fmt.Sprintf(`Based on the following personality analysis, generate 4-6 specific song search queries for Spotify that would match this person's personality:

Personality Analysis: %s

Available Spotify Genres: %s

For each recommendation, provide a JSON object with this structure:
{
  "query": "Specific search query for Spotify (artist, song title, or genre + descriptors)",
  "reason": "2-3 sentence explanation of why this song matches their personality",
  "personalityMatch": ["Array of 2-4 personality traits this song addresses"],
  "mood": "One word mood descriptor (e.g., 'Energetic', 'Peaceful', 'Empowering', 'Reflective')",
  "energy": "High, Medium, or Low"
}

Guidelines:
- Include a mix of energy levels and moods
- Consider both popular and lesser-known artists
- Match genres to the personality analysis
- Ensure variety in the recommendations
- Make search queries specific enough to find actual songs

Provide a JSON array of 4-6 recommendation objects, no additional text.
`, profileJSON, strings.Join(availableGenres, ", "))
}
