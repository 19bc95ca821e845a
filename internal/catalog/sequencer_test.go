package catalog

import (
	"math/rand"
	"testing"

	"github.com/tunescope/tunescope-go/internal/constants"
	"github.com/tunescope/tunescope-go/internal/domain"
)

func newTestSequencer(seed int64) *Sequencer {
	return NewSequencer(rand.New(rand.NewSource(seed)))
}

func assertNoDuplicates(t *testing.T, ids []string) {
	t.Helper()
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate question id %q in sequence %v", id, ids)
		}
		seen[id] = struct{}{}
	}
}

func assertCorePrefix(t *testing.T, ids []string) {
	t.Helper()
	if len(ids) < len(CoreQuestionIDs) {
		t.Fatalf("sequence shorter than core set: %v", ids)
	}
	for i, want := range CoreQuestionIDs {
		if ids[i] != want {
			t.Fatalf("position %d = %q, want core question %q", i, ids[i], want)
		}
	}
}

func TestNextQuestionsDefaultLength(t *testing.T) {
	seq := newTestSequencer(1)

	ids := seq.NextQuestions(nil, 0)

	if len(ids) != constants.Questionnaire.DefaultTotal {
		t.Fatalf("len = %d, want %d", len(ids), constants.Questionnaire.DefaultTotal)
	}
	assertNoDuplicates(t, ids)
	assertCorePrefix(t, ids)
	for _, id := range ids {
		if _, ok := QuestionByID(id); !ok {
			t.Fatalf("sequence contains unknown id %q", id)
		}
	}
}

func TestNextQuestionsHonorsLargeTotals(t *testing.T) {
	seq := newTestSequencer(1)

	long := seq.NextQuestions(nil, 20)
	if len(long) != 20 {
		t.Fatalf("len = %d, want 20 while the pool has spare questions", len(long))
	}
	assertNoDuplicates(t, long)
	assertCorePrefix(t, long)

	if got := seq.NextQuestions(nil, 1000); len(got) != len(QuestionPool) {
		t.Fatalf("len = %d, want pool exhaustion at %d", len(got), len(QuestionPool))
	}

	short := seq.NextQuestions(nil, 2)
	if len(short) != 2 {
		t.Fatalf("len = %d, want 2", len(short))
	}
	if short[0] != CoreQuestionIDs[0] || short[1] != CoreQuestionIDs[1] {
		t.Fatalf("short sequence %v does not keep core order", short)
	}
}

func TestNextQuestionsDeterministicWithSeed(t *testing.T) {
	answers := domain.Answers{"social-energy": "Going to a party with friends"}

	first := newTestSequencer(42).NextQuestions(answers, 12)
	second := newTestSequencer(42).NextQuestions(answers, 12)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("position %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestNextQuestionsCorePrefixStableUnderMoreAnswers(t *testing.T) {
	few := domain.Answers{"social-energy": "Quiet night at home"}
	more := domain.Answers{
		"social-energy":    "Quiet night at home",
		"decision-making":  float64(80),
		"music-discovery":  "Through friend recommendations",
		"creativity-level": float64(90),
	}

	a := newTestSequencer(7).NextQuestions(few, 10)
	b := newTestSequencer(7).NextQuestions(more, 10)

	assertCorePrefix(t, a)
	assertCorePrefix(t, b)
	assertNoDuplicates(t, a)
	assertNoDuplicates(t, b)
}

func TestNextQuestionsRoutesSocialAnswer(t *testing.T) {
	seq := newTestSequencer(3)
	answers := domain.Answers{"social-energy": "Going to a party with friends"}

	ids := seq.NextQuestions(answers, 10)

	routedCategories := map[string]bool{"social": true, "communication": true, "celebration": true}
	q, ok := QuestionByID(ids[len(CoreQuestionIDs)])
	if !ok {
		t.Fatalf("unknown id %q", ids[len(CoreQuestionIDs)])
	}
	if !routedCategories[q.Category] {
		t.Fatalf("first routed question %q has category %q, want one of social/communication/celebration", q.ID, q.Category)
	}
}

func TestNextQuestionsIncludesOneFreeText(t *testing.T) {
	seq := newTestSequencer(5)

	ids := seq.NextQuestions(nil, constants.Questionnaire.DefaultTotal)

	freeCount := 0
	for _, id := range ids {
		q, ok := QuestionByID(id)
		if !ok {
			t.Fatalf("unknown id %q", id)
		}
		if q.Type == domain.QuestionFreeText {
			freeCount++
		}
	}
	if freeCount != 1 {
		t.Fatalf("free-text count = %d, want exactly 1", freeCount)
	}
}

func TestNextQuestionsLowDecisionRouting(t *testing.T) {
	seq := newTestSequencer(9)
	answers := domain.Answers{"decision-making": float64(10)}

	ids := seq.NextQuestions(answers, 10)

	planningCategories := map[string]bool{"planning": true, "perfectionism": true, "attention": true, "feedback": true}
	q, ok := QuestionByID(ids[len(CoreQuestionIDs)])
	if !ok {
		t.Fatalf("unknown id %q", ids[len(CoreQuestionIDs)])
	}
	if !planningCategories[q.Category] {
		t.Fatalf("first routed question %q has category %q, want a structure-focused category", q.ID, q.Category)
	}
}
