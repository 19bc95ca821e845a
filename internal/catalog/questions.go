// Package catalog holds the static questionnaire pool and the adaptive
// sequencing logic that selects which questions to ask next.
package catalog

import (
	"sort"

	"github.com/tunescope/tunescope-go/internal/domain"
)

// CoreQuestionIDs are always asked first, in this order.
var CoreQuestionIDs = []string{
	"social-energy",
	"decision-making",
	"music-discovery",
	"creativity-level",
}

// QuestionPool is the full questionnaire catalog. Order matters: the
// sequencer falls back to catalog order when every other selection source
// is exhausted.
var QuestionPool = []domain.Question{
	{
		ID:       "social-energy",
		Type:     domain.QuestionChoice,
		Prompt:   "How do you prefer to spend your ideal weekend?",
		Subtitle: "Choose the scenario that energizes you most",
		Category: "social",
		Tags:     []string{"energy", "social", "weekend"},
		Weight:   5,
		Options: []string{
			"Hosting a big party with lots of friends",
			"Having a small gathering with close friends",
			"Enjoying quiet time alone or with one person",
			"Exploring new places by myself",
		},
	},
	{
		ID:         "decision-making",
		Type:       domain.QuestionScale,
		Prompt:     "When making important decisions, how much do you rely on logic vs. intuition?",
		Subtitle:   "Move the slider to show your natural tendency",
		Category:   "thinking",
		Tags:       []string{"logic", "intuition", "decisions"},
		Weight:     5,
		Min:        0,
		Max:        100,
		LeftLabel:  "Pure Logic",
		RightLabel: "Pure Intuition",
	},
	{
		ID:       "adventure-level",
		Type:     domain.QuestionChoice,
		Prompt:   "Which adventure sounds most appealing?",
		Subtitle: "Pick the experience that excites you most",
		Category: "risk",
		Tags:     []string{"adventure", "risk", "excitement"},
		Weight:   4,
		Options: []string{
			"Skydiving or bungee jumping",
			"Trying a new restaurant in town",
			"Reading a book in a cozy café",
			"Planning a detailed itinerary for a trip",
		},
	},
	{
		ID:       "work-style",
		Type:     domain.QuestionImageChoice,
		Prompt:   "Which workspace environment helps you thrive?",
		Subtitle: "Select the environment where you feel most productive",
		Category: "environment",
		Tags:     []string{"work", "environment", "productivity"},
		Weight:   4,
		Images: []domain.ImageOption{
			{Src: "/office.jpg", Label: "Busy Open Office"},
			{Src: "/library.jpg", Label: "Quiet Library"},
			{Src: "/coffee_shop.jpg", Label: "Bustling Coffee Shop"},
			{Src: "/home_office.jpg", Label: "Cozy Home Office"},
		},
	},
	{
		ID:       "stress-response",
		Type:     domain.QuestionChoice,
		Prompt:   "When you're feeling overwhelmed, what helps you most?",
		Subtitle: "Choose your go-to stress relief method",
		Category: "coping",
		Tags:     []string{"stress", "coping", "relief"},
		Weight:   4,
		Options: []string{
			"Talking it out with friends or family",
			"Going for a run or hitting the gym",
			"Taking a long bath or meditation",
			"Organizing and making to-do lists",
		},
	},
	{
		ID:         "creativity-level",
		Type:       domain.QuestionScale,
		Prompt:     "How important is creative expression in your daily life?",
		Subtitle:   "Rate the role creativity plays in your routine",
		Category:   "creativity",
		Tags:       []string{"creativity", "expression", "daily"},
		Weight:     4,
		Min:        0,
		Max:        100,
		LeftLabel:  "Not Important",
		RightLabel: "Essential",
	},
	{
		ID:          "future-outlook",
		Type:        domain.QuestionFreeText,
		Prompt:      "Describe your biggest dream or aspiration in a few words:",
		Subtitle:    "Share what drives you forward (be authentic!)",
		Category:    "goals",
		Tags:        []string{"goals", "dreams", "future"},
		Weight:      3,
		Placeholder: "e.g., Travel the world, Start my own business, Make a difference...",
	},
	{
		ID:       "music-discovery",
		Type:     domain.QuestionChoice,
		Prompt:   "How do you typically discover new music?",
		Subtitle: "Choose your primary music discovery method",
		Category: "music",
		Tags:     []string{"music", "discovery", "habits"},
		Weight:   3,
		Options: []string{
			"Spotify/Apple Music recommendations",
			"Friends and social media",
			"Music blogs and reviews",
			"Live concerts and festivals",
		},
	},
	{
		ID:         "music-mood",
		Type:       domain.QuestionScale,
		Prompt:     "Do you prefer music that matches your current mood or changes it?",
		Subtitle:   "How does music interact with your emotions?",
		Category:   "music",
		Tags:       []string{"music", "mood", "emotions"},
		Weight:     4,
		Min:        0,
		Max:        100,
		LeftLabel:  "Matches Mood",
		RightLabel: "Changes Mood",
	},
	{
		ID:       "music-energy-time",
		Type:     domain.QuestionChoice,
		Prompt:   "When do you listen to your most energetic music?",
		Subtitle: "Think about your daily rhythm",
		Category: "music",
		Tags:     []string{"music", "energy", "time"},
		Weight:   2,
		Options: []string{
			"Early morning to start my day",
			"During workouts or activities",
			"Evening when I need motivation",
			"Late night when I feel creative",
		},
	},
	{
		ID:       "morning-routine",
		Type:     domain.QuestionChoice,
		Prompt:   "What does your ideal morning look like?",
		Subtitle: "Choose the morning that energizes you",
		Category: "lifestyle",
		Tags:     []string{"morning", "routine", "energy"},
		Weight:   3,
		Options: []string{
			"Up at 5 AM with a structured routine",
			"Slow start with coffee and music",
			"Exercise first thing to get energized",
			"Whatever feels right that day",
		},
	},
	{
		ID:         "social-media-usage",
		Type:       domain.QuestionScale,
		Prompt:     "How much time do you spend on social media daily?",
		Subtitle:   "Be honest about your average usage",
		Category:   "lifestyle",
		Tags:       []string{"social", "media", "time"},
		Weight:     2,
		Min:        0,
		Max:        8,
		LeftLabel:  "0 hours",
		RightLabel: "8+ hours",
	},
	{
		ID:       "party-preference",
		Type:     domain.QuestionChoice,
		Prompt:   "At a party, where are you most likely to be found?",
		Subtitle: "Think about your natural party behavior",
		Category: "social",
		Tags:     []string{"party", "social", "behavior"},
		Weight:   3,
		Options: []string{
			"Center of attention, telling stories",
			"Dancing and having fun with everyone",
			"Deep conversation in a quiet corner",
			"Helping the host with party tasks",
		},
	},
	{
		ID:       "learning-style",
		Type:     domain.QuestionChoice,
		Prompt:   "How do you prefer to learn new things?",
		Subtitle: "Choose your natural learning approach",
		Category: "learning",
		Tags:     []string{"learning", "education", "style"},
		Weight:   3,
		Options: []string{
			"Hands-on practice and experimentation",
			"Reading and researching thoroughly",
			"Watching videos and demonstrations",
			"Discussion and collaboration with others",
		},
	},
	{
		ID:         "risk-tolerance",
		Type:       domain.QuestionScale,
		Prompt:     "How comfortable are you with taking risks?",
		Subtitle:   "In general life decisions and opportunities",
		Category:   "risk",
		Tags:       []string{"risk", "comfort", "decisions"},
		Weight:     4,
		Min:        0,
		Max:        100,
		LeftLabel:  "Very Cautious",
		RightLabel: "Risk Taker",
	},
	{
		ID:       "competition-attitude",
		Type:     domain.QuestionChoice,
		Prompt:   "How do you feel about competitive situations?",
		Subtitle: "Your natural response to competition",
		Category: "competition",
		Tags:     []string{"competition", "attitude", "performance"},
		Weight:   3,
		Options: []string{
			"I thrive on competition and love to win",
			"Competition motivates me to improve",
			"I prefer collaborative over competitive",
			"Competition makes me uncomfortable",
		},
	},
	{
		ID:       "nature-vs-city",
		Type:     domain.QuestionChoice,
		Prompt:   "Where do you feel most at peace?",
		Subtitle: "Choose your ideal environment",
		Category: "environment",
		Tags:     []string{"nature", "city", "peace"},
		Weight:   3,
		Options: []string{
			"Deep in a forest or mountains",
			"By the ocean or a lake",
			"In a bustling city center",
			"In my own cozy space",
		},
	},
	{
		ID:       "conflict-resolution",
		Type:     domain.QuestionChoice,
		Prompt:   "When faced with conflict, you typically:",
		Subtitle: "Your natural conflict response",
		Category: "conflict",
		Tags:     []string{"conflict", "resolution", "communication"},
		Weight:   4,
		Options: []string{
			"Address it directly and immediately",
			"Try to find a compromise that works for everyone",
			"Take time to think before responding",
			"Avoid conflict when possible",
		},
	},
	{
		ID:       "concert-preference",
		Type:     domain.QuestionChoice,
		Prompt:   "What type of musical experience excites you most?",
		Subtitle: "Think about your ideal musical event",
		Category: "music",
		Tags:     []string{"concert", "music", "experience"},
		Weight:   3,
		Options: []string{
			"Massive festival with thousands of people",
			"Intimate acoustic performance",
			"High-energy club or electronic show",
			"Classical or jazz in a concert hall",
		},
	},
	{
		ID:         "music-nostalgia",
		Type:       domain.QuestionScale,
		Prompt:     "Do you prefer discovering new music or listening to familiar favorites?",
		Subtitle:   "Your balance between new and nostalgic",
		Category:   "music",
		Tags:       []string{"music", "nostalgia", "discovery"},
		Weight:     3,
		Min:        0,
		Max:        100,
		LeftLabel:  "Always New",
		RightLabel: "Familiar Favorites",
	},
	{
		ID:         "spontaneity-level",
		Type:       domain.QuestionScale,
		Prompt:     "How spontaneous are you in daily life?",
		Subtitle:   "Planning vs. going with the flow",
		Category:   "planning",
		Tags:       []string{"spontaneity", "planning", "flexibility"},
		Weight:     3,
		Min:        0,
		Max:        100,
		LeftLabel:  "Always Planned",
		RightLabel: "Completely Spontaneous",
	},
	{
		ID:       "technology-adoption",
		Type:     domain.QuestionChoice,
		Prompt:   "How do you approach new technology?",
		Subtitle: "Your relationship with tech trends",
		Category: "technology",
		Tags:     []string{"technology", "adoption", "trends"},
		Weight:   2,
		Options: []string{
			"First in line for the latest gadgets",
			"Adopt when it proves useful",
			"Wait until everyone else has it",
			"Prefer to stick with what works",
		},
	},
	{
		ID:       "travel-style",
		Type:     domain.QuestionChoice,
		Prompt:   "What's your ideal vacation style?",
		Subtitle: "How you like to explore and relax",
		Category: "travel",
		Tags:     []string{"travel", "vacation", "exploration"},
		Weight:   3,
		Options: []string{
			"Adventure and extreme sports",
			"Cultural immersion and local experiences",
			"Relaxation and luxury resorts",
			"Road trips and spontaneous discoveries",
		},
	},
	{
		ID:       "communication-style",
		Type:     domain.QuestionChoice,
		Prompt:   "How do you prefer to communicate important news?",
		Subtitle: "Your natural communication preference",
		Category: "communication",
		Tags:     []string{"communication", "style", "preference"},
		Weight:   3,
		Options: []string{
			"Face-to-face conversation",
			"Phone or video call",
			"Text message or email",
			"Social media or group chat",
		},
	},
	{
		ID:       "emotional-processing",
		Type:     domain.QuestionChoice,
		Prompt:   "When dealing with strong emotions, you tend to:",
		Subtitle: "Your emotional processing style",
		Category: "emotional",
		Tags:     []string{"emotions", "processing", "coping"},
		Weight:   4,
		Options: []string{
			"Express them immediately",
			"Talk through them with someone",
			"Process them internally first",
			"Distract myself until they pass",
		},
	},
	{
		ID:         "perfectionism-level",
		Type:       domain.QuestionScale,
		Prompt:     "How much of a perfectionist are you?",
		Subtitle:   "Your attention to detail and standards",
		Category:   "perfectionism",
		Tags:       []string{"perfectionism", "standards", "detail"},
		Weight:     3,
		Min:        0,
		Max:        100,
		LeftLabel:  "Good Enough Works",
		RightLabel: "Everything Must Be Perfect",
	},
	{
		ID:       "leadership-style",
		Type:     domain.QuestionChoice,
		Prompt:   "In group projects, you naturally:",
		Subtitle: "Your role in team dynamics",
		Category: "leadership",
		Tags:     []string{"leadership", "teamwork", "groups"},
		Weight:   3,
		Options: []string{
			"Take charge and delegate tasks",
			"Contribute ideas and facilitate discussion",
			"Focus on executing tasks well",
			"Support others and maintain harmony",
		},
	},
	{
		ID:       "attention-to-detail",
		Type:     domain.QuestionChoice,
		Prompt:   "When reading or watching something, you:",
		Subtitle: "Your information processing style",
		Category: "attention",
		Tags:     []string{"attention", "detail", "processing"},
		Weight:   2,
		Options: []string{
			"Notice every small detail and nuance",
			"Focus on the main themes and messages",
			"Look for practical applications",
			"Enjoy the overall experience",
		},
	},
	{
		ID:         "change-adaptation",
		Type:       domain.QuestionScale,
		Prompt:     "How do you typically react to unexpected changes?",
		Subtitle:   "Your adaptability to change",
		Category:   "adaptability",
		Tags:       []string{"change", "adaptability", "flexibility"},
		Weight:     4,
		Min:        0,
		Max:        100,
		LeftLabel:  "Resist Change",
		RightLabel: "Embrace Change",
	},
	{
		ID:       "humor-style",
		Type:     domain.QuestionChoice,
		Prompt:   "What type of humor do you gravitate toward?",
		Subtitle: "Your comedy preferences",
		Category: "humor",
		Tags:     []string{"humor", "comedy", "personality"},
		Weight:   2,
		Options: []string{
			"Witty wordplay and clever jokes",
			"Physical comedy and silly situations",
			"Sarcasm and dry humor",
			"Wholesome and uplifting humor",
		},
	},
	{
		ID:       "energy-management",
		Type:     domain.QuestionChoice,
		Prompt:   "When your energy is low, what helps you recharge?",
		Subtitle: "Your personal energy restoration method",
		Category: "energy",
		Tags:     []string{"energy", "recharge", "restoration"},
		Weight:   3,
		Options: []string{
			"Spending time with energetic people",
			"Engaging in physical activity",
			"Having quiet time alone",
			"Doing something creative",
		},
	},
	{
		ID:       "goal-setting-style",
		Type:     domain.QuestionChoice,
		Prompt:   "How do you approach setting and achieving goals?",
		Subtitle: "Your goal-oriented behavior",
		Category: "goals",
		Tags:     []string{"goals", "achievement", "planning"},
		Weight:   3,
		Options: []string{
			"Set detailed plans with specific milestones",
			"Set big picture goals and adapt along the way",
			"Focus on daily habits rather than outcomes",
			"Work toward goals as opportunities arise",
		},
	},
	{
		ID:       "information-sharing",
		Type:     domain.QuestionChoice,
		Prompt:   "When you learn something interesting, you:",
		Subtitle: "How you handle new information",
		Category: "information",
		Tags:     []string{"information", "sharing", "learning"},
		Weight:   2,
		Options: []string{
			"Immediately share it with others",
			"Research more before discussing",
			"Keep it to yourself unless asked",
			"Find ways to apply it practically",
		},
	},
	{
		ID:       "time-of-day-preference",
		Type:     domain.QuestionChoice,
		Prompt:   "When do you feel most productive and creative?",
		Subtitle: "Your natural energy rhythm",
		Category: "time",
		Tags:     []string{"time", "productivity", "rhythm"},
		Weight:   2,
		Options: []string{
			"Early morning (5-9 AM)",
			"Mid-morning to afternoon (9 AM-3 PM)",
			"Evening (3-9 PM)",
			"Late night (9 PM-1 AM)",
		},
	},
	{
		ID:         "music-volume-preference",
		Type:       domain.QuestionScale,
		Prompt:     "How loud do you typically listen to music?",
		Subtitle:   "Your preferred volume level",
		Category:   "music",
		Tags:       []string{"music", "volume", "listening"},
		Weight:     2,
		Min:        0,
		Max:        100,
		LeftLabel:  "Soft Background",
		RightLabel: "Maximum Volume",
	},
	{
		ID:       "music-sharing-behavior",
		Type:     domain.QuestionChoice,
		Prompt:   "When you discover amazing music, you:",
		Subtitle: "Your music sharing tendencies",
		Category: "music",
		Tags:     []string{"music", "sharing", "discovery"},
		Weight:   2,
		Options: []string{
			"Immediately send it to friends",
			"Add it to shared playlists",
			"Keep it as your personal treasure",
			"Post about it on social media",
		},
	},
	{
		ID:       "music-multitasking",
		Type:     domain.QuestionChoice,
		Prompt:   "When do you listen to music most often?",
		Subtitle: "Your music listening habits",
		Category: "music",
		Tags:     []string{"music", "multitasking", "habits"},
		Weight:   2,
		Options: []string{
			"While working or studying",
			"During commutes and travel",
			"As dedicated listening sessions",
			"During exercise and activities",
		},
	},
	{
		ID:       "weekend-activity-preference",
		Type:     domain.QuestionChoice,
		Prompt:   "How do you prefer to spend a free Saturday?",
		Subtitle: "Your ideal weekend activity",
		Category: "lifestyle",
		Tags:     []string{"weekend", "leisure", "activities"},
		Weight:   3,
		Options: []string{
			"Exploring somewhere new in your city",
			"Having people over for games or dinner",
			"Working on personal projects or hobbies",
			"Relaxing and catching up on entertainment",
		},
	},
	{
		ID:         "decision-speed",
		Type:       domain.QuestionScale,
		Prompt:     "How quickly do you typically make decisions?",
		Subtitle:   "Your decision-making pace",
		Category:   "decisions",
		Tags:       []string{"decisions", "speed", "thinking"},
		Weight:     3,
		Min:        0,
		Max:        100,
		LeftLabel:  "Very Deliberate",
		RightLabel: "Quick Decisions",
	},
	{
		ID:       "feedback-preference",
		Type:     domain.QuestionChoice,
		Prompt:   "How do you prefer to receive feedback?",
		Subtitle: "Your feedback reception style",
		Category: "feedback",
		Tags:     []string{"feedback", "communication", "growth"},
		Weight:   3,
		Options: []string{
			"Direct and straightforward",
			"Balanced with positive and constructive points",
			"In private, one-on-one settings",
			"Written format I can review later",
		},
	},
	{
		ID:         "routine-flexibility",
		Type:       domain.QuestionScale,
		Prompt:     "How important are daily routines to you?",
		Subtitle:   "Structure vs. flexibility in daily life",
		Category:   "routine",
		Tags:       []string{"routine", "structure", "flexibility"},
		Weight:     3,
		Min:        0,
		Max:        100,
		LeftLabel:  "Highly Flexible",
		RightLabel: "Need Structure",
	},
	{
		ID:       "celebration-style",
		Type:     domain.QuestionChoice,
		Prompt:   "How do you like to celebrate achievements?",
		Subtitle: "Your celebration preferences",
		Category: "celebration",
		Tags:     []string{"celebration", "achievement", "social"},
		Weight:   2,
		Options: []string{
			"Big party with lots of people",
			"Intimate dinner with close friends/family",
			"Treat myself to something special",
			"Quiet personal reflection and gratitude",
		},
	},
	{
		ID:          "personal-values",
		Type:        domain.QuestionFreeText,
		Prompt:      "What are the three most important values that guide your life?",
		Subtitle:    "Share what matters most to you",
		Category:    "values",
		Tags:        []string{"values", "beliefs", "core"},
		Weight:      4,
		Placeholder: "e.g., Family, Creativity, Adventure...",
	},
	{
		ID:          "ideal-day-description",
		Type:        domain.QuestionFreeText,
		Prompt:      "Describe your perfect day from start to finish:",
		Subtitle:    "Paint a picture of your ideal 24 hours",
		Category:    "lifestyle",
		Tags:        []string{"ideal", "day", "lifestyle"},
		Weight:      3,
		Placeholder: "Wake up at... then I would... ending with...",
	},
	{
		ID:          "music-memory",
		Type:        domain.QuestionFreeText,
		Prompt:      "Share a powerful memory associated with a song or musical moment:",
		Subtitle:    "Music and memory connection",
		Category:    "music",
		Tags:        []string{"music", "memory", "emotional"},
		Weight:      3,
		Placeholder: "The first time I heard... or when this song reminded me of...",
	},
	{
		ID:          "biggest-fear",
		Type:        domain.QuestionFreeText,
		Prompt:      "What is something you would love to try but fear holds you back from?",
		Subtitle:    "Exploring courage and growth",
		Category:    "growth",
		Tags:        []string{"fear", "growth", "courage"},
		Weight:      3,
		Placeholder: "I would love to try... but I worry that...",
	},
	{
		ID:          "legacy-impact",
		Type:        domain.QuestionFreeText,
		Prompt:      "How do you want to be remembered by the people closest to you?",
		Subtitle:    "Your desired impact and legacy",
		Category:    "legacy",
		Tags:        []string{"legacy", "impact", "relationships"},
		Weight:      4,
		Placeholder: "I want to be remembered as someone who...",
	},
}

var poolByID = func() map[string]domain.Question {
	m := make(map[string]domain.Question, len(QuestionPool))
	for _, q := range QuestionPool {
		m[q.ID] = q
	}
	return m
}()

// QuestionByID looks up a question definition by id.
func QuestionByID(id string) (domain.Question, bool) {
	q, ok := poolByID[id]
	return q, ok
}

// QuestionsByCategory returns all questions in a category, catalog order.
func QuestionsByCategory(category string) []domain.Question {
	var out []domain.Question
	for _, q := range QuestionPool {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// QuestionsWithTags returns the questions carrying any of the given tags.
func QuestionsWithTags(tags []string) []domain.Question {
	var out []domain.Question
	for _, q := range QuestionPool {
		for _, tag := range tags {
			if containsString(q.Tags, tag) {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

// QuestionsByType returns the questions of the given type, catalog order.
func QuestionsByType(t domain.QuestionType) []domain.Question {
	var out []domain.Question
	for _, q := range QuestionPool {
		if q.Type == t {
			out = append(out, q)
		}
	}
	return out
}

// FreeTextQuestions returns the free-response subset of the pool.
func FreeTextQuestions() []domain.Question {
	return QuestionsByType(domain.QuestionFreeText)
}

// HighestWeightQuestions returns the count heaviest questions. Ties keep
// catalog order.
func HighestWeightQuestions(count int) []domain.Question {
	sorted := make([]domain.Question, len(QuestionPool))
	copy(sorted, QuestionPool)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})
	if count > len(sorted) {
		count = len(sorted)
	}
	return sorted[:count]
}

// CategoryDistribution counts questions per category.
func CategoryDistribution() map[string]int {
	distribution := make(map[string]int)
	for _, q := range QuestionPool {
		distribution[q.Category]++
	}
	return distribution
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
