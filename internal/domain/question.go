package domain

import "strconv"

type QuestionType string

const (
	QuestionChoice      QuestionType = "multiple-choice"
	QuestionScale       QuestionType = "slider"
	QuestionFreeText    QuestionType = "text"
	QuestionImageChoice QuestionType = "image-selection"
)

// ImageOption is a selectable image with its display label.
type ImageOption struct {
	Src   string `json:"src"`
	Label string `json:"label"`
}

// Question is a single questionnaire item. Only the fields matching the
// question's type are populated: Options for choice, Images for
// image-selection, Min/Max and the end labels for slider, Placeholder for
// free text.
type Question struct {
	ID          string        `json:"id"`
	Type        QuestionType  `json:"type"`
	Prompt      string        `json:"question"`
	Subtitle    string        `json:"subtitle,omitempty"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags"`
	Weight      int           `json:"weight"`
	Options     []string      `json:"options,omitempty"`
	Images      []ImageOption `json:"images,omitempty"`
	Min         int           `json:"min,omitempty"`
	Max         int           `json:"max,omitempty"`
	LeftLabel   string        `json:"leftLabel,omitempty"`
	RightLabel  string        `json:"rightLabel,omitempty"`
	Placeholder string        `json:"placeholder,omitempty"`
}

// Answers maps question ids to submitted answers. Choice and free-text
// answers are strings, slider answers are numbers; JSON decoding produces
// float64 for the latter.
type Answers map[string]any

// Text returns the answer as a string, if present and textual.
func (a Answers) Text(id string) (string, bool) {
	v, ok := a[id]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Number returns the answer as a number. String values that parse as
// numbers are accepted too, since form submissions often stringify sliders.
func (a Answers) Number(id string) (float64, bool) {
	v, ok := a[id]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
