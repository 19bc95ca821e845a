package domain

// QuerySuggestion is a model-proposed search query with the explanation
// attached to whatever track it eventually resolves to.
type QuerySuggestion struct {
	Query            string   `json:"query"`
	Reason           string   `json:"reason"`
	PersonalityMatch []string `json:"personalityMatch"`
	Mood             string   `json:"mood"`
	Energy           string   `json:"energy"`
}
