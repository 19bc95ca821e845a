package catalog

import (
	"math/rand"
	"sort"
	"time"

	"github.com/tunescope/tunescope-go/internal/constants"
	"github.com/tunescope/tunescope-go/internal/domain"
	"github.com/tunescope/tunescope-go/internal/util"
)

// Sequencer selects which questions a session should ask, adapting the
// middle of the questionnaire to the answers given so far. It is a pure
// function of (answers, targetLength, rng): callers recompute on each new
// answer. The core prefix never moves.
type Sequencer struct {
	rng *rand.Rand
}

// NewSequencer builds a sequencer around the given source of randomness.
// Pass a fixed-seed rand for deterministic sequences; nil gets a
// time-seeded one.
func NewSequencer(rng *rand.Rand) *Sequencer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sequencer{rng: rng}
}

// NextQuestions returns the ordered question ids for a session with the
// given answers. Core questions come first, then answer-routed picks, then
// a shuffled variety fill, one random free-text question, and finally
// catalog-order filler until the target length is reached or the pool runs
// out. No id repeats.
func (s *Sequencer) NextQuestions(answers domain.Answers, totalQuestions int) []string {
	if totalQuestions <= 0 {
		totalQuestions = constants.Questionnaire.DefaultTotal
	}

	used := make(map[string]struct{})
	selected := make([]string, 0, totalQuestions)

	for _, id := range CoreQuestionIDs {
		if len(selected) < totalQuestions {
			selected = append(selected, id)
			used[id] = struct{}{}
		}
	}

	if len(selected) >= totalQuestions {
		return selected[:totalQuestions]
	}

	freeText := make(map[string]struct{})
	for _, q := range FreeTextQuestions() {
		freeText[q.ID] = struct{}{}
	}

	var available []domain.Question
	for _, q := range QuestionPool {
		if _, isUsed := used[q.ID]; isUsed {
			continue
		}
		if _, isFree := freeText[q.ID]; isFree {
			continue
		}
		available = append(available, q)
	}

	for _, id := range s.routedIDs(answers, available, used) {
		if len(selected) >= totalQuestions {
			break
		}
		if _, isUsed := used[id]; isUsed {
			continue
		}
		selected = append(selected, id)
		used[id] = struct{}{}
	}

	remainingSlots := totalQuestions - len(selected)
	if remainingSlots > constants.Questionnaire.ReservedFreeText {
		variety := s.varietyIDs(available, used, remainingSlots-constants.Questionnaire.ReservedFreeText)
		for _, id := range variety {
			if len(selected) >= totalQuestions {
				break
			}
			selected = append(selected, id)
			used[id] = struct{}{}
		}
	}

	if len(selected) < totalQuestions {
		var availableFree []string
		for _, q := range FreeTextQuestions() {
			if _, isUsed := used[q.ID]; !isUsed {
				availableFree = append(availableFree, q.ID)
			}
		}
		if len(availableFree) > 0 {
			id := availableFree[s.rng.Intn(len(availableFree))]
			selected = append(selected, id)
			used[id] = struct{}{}
		}
	}

	for _, q := range QuestionPool {
		if len(selected) >= totalQuestions {
			break
		}
		if _, isUsed := used[q.ID]; isUsed {
			continue
		}
		selected = append(selected, q.ID)
		used[q.ID] = struct{}{}
	}

	if len(selected) > totalQuestions {
		selected = selected[:totalQuestions]
	}
	return selected
}

// routedIDs applies the answer-driven routing rules. The caps per rule are
// part of the routing table; the overall routed count is capped after
// deduplication.
func (s *Sequencer) routedIDs(answers domain.Answers, available []domain.Question, used map[string]struct{}) []string {
	var routed []string

	if social, ok := answers.Text("social-energy"); ok && social != "" {
		if util.ContainsAny(social, "party", "friends") {
			routed = append(routed, fromCategories([]string{"social", "communication", "celebration"}, available, used, 2)...)
		} else {
			routed = append(routed, fromCategories([]string{"emotional", "energy", "routine"}, available, used, 2)...)
		}
	}

	if decision, ok := answers.Number("decision-making"); ok {
		switch {
		case decision < 30:
			routed = append(routed, fromCategories([]string{"planning", "perfectionism", "attention", "feedback"}, available, used, 2)...)
		case decision > 70:
			routed = append(routed, fromCategories([]string{"adaptability", "humor", "spontaneity"}, available, used, 2)...)
		default:
			routed = append(routed, fromCategories([]string{"decisions", "goals"}, available, used, 1)...)
		}
	}

	if discovery, ok := answers.Text("music-discovery"); ok && discovery != "" {
		if util.ContainsAny(discovery, "recommendations", "social") {
			routed = append(routed, fromCategories([]string{"music", "information"}, available, used, 2)...)
		} else {
			routed = append(routed, fromCategories([]string{"music"}, available, used, 1)...)
		}
	}

	if creativity, ok := answers.Number("creativity-level"); ok {
		if creativity > 60 {
			routed = append(routed, fromCategories([]string{"humor", "learning", "technology"}, available, used, 1)...)
		} else {
			routed = append(routed, fromCategories([]string{"routine", "time"}, available, used, 1)...)
		}
	}

	seen := make(map[string]struct{}, len(routed))
	deduped := routed[:0]
	for _, id := range routed {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}
	if len(deduped) > constants.Questionnaire.RoutedCap {
		deduped = deduped[:constants.Questionnaire.RoutedCap]
	}
	return deduped
}

// varietyIDs fills leftover slots with heavier questions in random order.
func (s *Sequencer) varietyIDs(available []domain.Question, used map[string]struct{}, count int) []string {
	var candidates []string
	for _, q := range available {
		if _, isUsed := used[q.ID]; isUsed {
			continue
		}
		if q.Weight >= constants.Questionnaire.VarietyMinWeight {
			candidates = append(candidates, q.ID)
		}
	}
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if count > len(candidates) {
		count = len(candidates)
	}
	return candidates[:count]
}

// fromCategories picks the heaviest unused questions in the given
// categories, catalog order breaking ties.
func fromCategories(categories []string, available []domain.Question, used map[string]struct{}, maxCount int) []string {
	var matched []domain.Question
	for _, q := range available {
		if _, isUsed := used[q.ID]; isUsed {
			continue
		}
		if containsString(categories, q.Category) {
			matched = append(matched, q)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Weight > matched[j].Weight
	})
	if maxCount > len(matched) {
		maxCount = len(matched)
	}
	ids := make([]string, 0, maxCount)
	for _, q := range matched[:maxCount] {
		ids = append(ids, q.ID)
	}
	return ids
}
