package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

// lastPick makes every draw choose the last element and every shuffle keep the order.
const lastPick = 0.99

func abcd() []entities.VocabEntry {
	return []entities.VocabEntry{
		{Word: "a", Meaning: "A"},
		{Word: "b", Meaning: "B"},
		{Word: "c", Meaning: "C"},
		{Word: "d", Meaning: "D"},
	}
}

func vocabulary(n int) []entities.VocabEntry {
	out := make([]entities.VocabEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entities.VocabEntry{
			Word:    fmt.Sprintf("word%d", i),
			Meaning: fmt.Sprintf("meaning%d", i),
		})
	}
	return out
}

func TestGenerator_Generate_Empty(t *testing.T) {
	t.Parallel()

	all := entities.AllQuestionKinds

	tests := []struct {
		name    string
		entries []entities.VocabEntry
		kinds   []entities.QuestionKind
		count   int
	}{
		{name: "no entries", entries: nil, kinds: all, count: 10},
		{name: "no kinds", entries: abcd(), kinds: nil, count: 10},
		{name: "no eligible entries", entries: []entities.VocabEntry{{Word: "a"}, {Word: "b", IPA: "/b/"}}, kinds: all, count: 10},
		{name: "mcq needs four candidates", entries: abcd()[:3], kinds: []entities.QuestionKind{entities.KindMCQ}, count: 10},
		{name: "tf needs two candidates", entries: abcd()[:1], kinds: []entities.QuestionKind{entities.KindTF}, count: 10},
		{name: "unknown kinds are ignored", entries: abcd(), kinds: []entities.QuestionKind{"essay"}, count: 10},
		{name: "zero count", entries: abcd(), kinds: all, count: 0},
		{name: "negative count", entries: abcd(), kinds: all, count: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewGenerator(nil).Generate(tt.entries, tt.kinds, tt.count)
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestGenerator_Generate_Cardinality(t *testing.T) {
	t.Parallel()

	g := NewGenerator(nil)

	got := g.Generate(abcd(), []entities.QuestionKind{entities.KindMCQ}, 10)
	assert.Len(t, got, 4)

	got = g.Generate(vocabulary(30), entities.AllQuestionKinds, 20)
	assert.Len(t, got, 20)

	// Entries without a meaning never become questions.
	entries := append(abcd(), entities.VocabEntry{Word: "e"}, entities.VocabEntry{Word: "f", IPA: "/f/"})
	got = g.Generate(entries, []entities.QuestionKind{entities.KindFill}, 10)
	assert.Len(t, got, 4)
}

func TestGenerator_Generate_UnsupportedKindFallsBack(t *testing.T) {
	t.Parallel()

	entries := abcd()[:3]
	got := NewGenerator(nil).Generate(entries, []entities.QuestionKind{entities.KindMCQ, entities.KindFill}, 10)

	require.Len(t, got, 3)
	for _, q := range got {
		assert.Equal(t, entities.KindFill, q.Kind())
	}
}

func TestGenerator_Generate_NoReplacement(t *testing.T) {
	t.Parallel()

	entries := vocabulary(12)
	g := NewGenerator(nil)

	for i := 0; i < 100; i++ {
		got := g.Generate(entries, entities.AllQuestionKinds, 50)
		require.Len(t, got, len(entries))

		seen := make(map[string]struct{}, len(got))
		for _, q := range got {
			_, dup := seen[q.Prompt()]
			require.False(t, dup, "word %q asked twice", q.Prompt())
			seen[q.Prompt()] = struct{}{}
		}
	}
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	t.Parallel()

	g := NewGenerator(NewSequenceSource(lastPick))

	t.Run("mcq keeps order with identity shuffles", func(t *testing.T) {
		got := g.Generate(abcd(), []entities.QuestionKind{entities.KindFill, entities.KindMCQ}, 1)
		want := entities.Quiz{
			entities.MCQQuestion{Question: "a", Options: []string{"A", "B", "C", "D"}, Answer: "A"},
		}
		assert.Equal(t, want, got)
	})

	t.Run("tf shows another meaning", func(t *testing.T) {
		got := g.Generate(abcd(), []entities.QuestionKind{entities.KindTF}, 4)
		want := entities.Quiz{
			entities.TFQuestion{Question: "a", Meaning: "D", Answer: false},
			entities.TFQuestion{Question: "b", Meaning: "D", Answer: false},
			entities.TFQuestion{Question: "c", Meaning: "D", Answer: false},
			entities.TFQuestion{Question: "d", Meaning: "C", Answer: false},
		}
		assert.Equal(t, want, got)
	})

	t.Run("tf falls back to a negated meaning", func(t *testing.T) {
		entries := []entities.VocabEntry{
			{Word: "big", Meaning: "large"},
			{Word: "huge", Meaning: "large"},
		}
		got := g.Generate(entries, []entities.QuestionKind{entities.KindTF}, 2)
		want := entities.Quiz{
			entities.TFQuestion{Question: "big", Meaning: "Not large", Answer: false},
			entities.TFQuestion{Question: "huge", Meaning: "Not large", Answer: false},
		}
		assert.Equal(t, want, got)
	})

	t.Run("tf heads shows the true meaning", func(t *testing.T) {
		g := NewGenerator(NewSequenceSource(0))
		got := g.Generate(abcd(), []entities.QuestionKind{entities.KindTF}, 1)
		require.Len(t, got, 1)

		q, ok := got[0].(entities.TFQuestion)
		require.True(t, ok)
		assert.True(t, q.Answer)
		assert.Equal(t, "B", q.Meaning)
		assert.Equal(t, "b", q.Question)
	})
}

func TestGenerator_Generate_DistractorsFromWholeDeck(t *testing.T) {
	t.Parallel()

	entries := append(abcd(), entities.VocabEntry{Word: "", Meaning: "Ghost"})

	// All-zero draws rotate [0 1 2 3] into [1 2 3 0], so "b" is asked.
	g := NewGenerator(NewSequenceSource(0))
	got := g.Generate(entries, []entities.QuestionKind{entities.KindMCQ}, 1)
	require.Len(t, got, 1)

	q, ok := got[0].(entities.MCQQuestion)
	require.True(t, ok)
	assert.Equal(t, "b", q.Question)
	assert.Equal(t, "B", q.Answer)
	assert.ElementsMatch(t, []string{"B", "C", "D", "Ghost"}, q.Options)
}

func TestGenerator_Generate_MCQOptions(t *testing.T) {
	t.Parallel()

	entries := []entities.VocabEntry{
		{Word: "a", Meaning: "A"},
		{Word: "b", Meaning: "B"},
		{Word: "c", Meaning: "B"},
		{Word: "d", Meaning: "B"},
		{Word: "e", Meaning: "C"},
		{Word: "f", Meaning: ""},
	}
	distinctOthers := map[string]int{"a": 2, "b": 2, "c": 2, "d": 2, "e": 2}

	g := NewGenerator(nil)
	for i := 0; i < 200; i++ {
		for _, q := range g.Generate(entries, []entities.QuestionKind{entities.KindMCQ}, 10) {
			mcq, ok := q.(entities.MCQQuestion)
			require.True(t, ok)

			assert.Len(t, mcq.Options, min(mcqChoices, distinctOthers[mcq.Question]+1))
			assertUnique(t, mcq.Options)

			hits := 0
			for _, o := range mcq.Options {
				if o == mcq.Answer {
					hits++
				}
			}
			assert.Equal(t, 1, hits, "answer must appear exactly once in %v", mcq.Options)
		}
	}

	// With plenty of distinct meanings every question has four options.
	for _, q := range g.Generate(vocabulary(10), []entities.QuestionKind{entities.KindMCQ}, 10) {
		mcq := q.(entities.MCQQuestion)
		assert.Len(t, mcq.Options, mcqChoices)
		assert.Contains(t, mcq.Options, mcq.Answer)
		assertUnique(t, mcq.Options)
	}
}

func TestGenerator_Generate_TFConsistency(t *testing.T) {
	t.Parallel()

	entries := vocabulary(6)
	meaningOf := make(map[string]string, len(entries))
	for _, e := range entries {
		meaningOf[e.Word] = e.Meaning
	}

	var trues, falses int
	g := NewGenerator(nil)
	for i := 0; i < 200; i++ {
		for _, q := range g.Generate(entries, []entities.QuestionKind{entities.KindTF}, 6) {
			tf, ok := q.(entities.TFQuestion)
			require.True(t, ok)

			if tf.Answer {
				trues++
				assert.Equal(t, meaningOf[tf.Question], tf.Meaning)
			} else {
				falses++
				assert.NotEqual(t, meaningOf[tf.Question], tf.Meaning)
			}
		}
	}

	assert.Positive(t, trues)
	assert.Positive(t, falses)
}

func TestGenerator_Generate_Fill(t *testing.T) {
	t.Parallel()

	entries := []entities.VocabEntry{{Word: "cat", IPA: "/kæt/", Meaning: "Feline"}}
	got := NewGenerator(nil).Generate(entries, []entities.QuestionKind{entities.KindFill}, 5)

	assert.Equal(t, entities.Quiz{entities.FillQuestion{Question: "cat", Answer: "Feline"}}, got)
}

func TestGenerator_Generate_AllKindsAppear(t *testing.T) {
	t.Parallel()

	g := NewGenerator(nil)
	counts := make(map[entities.QuestionKind]int)
	for i := 0; i < 50; i++ {
		for k, n := range g.Generate(vocabulary(20), entities.AllQuestionKinds, 20).Kinds() {
			counts[k] += n
		}
	}

	for _, k := range entities.AllQuestionKinds {
		assert.Positive(t, counts[k], "kind %s never drawn", k)
	}
}

func TestGenerate_DuplicateKindsDoNotBias(t *testing.T) {
	t.Parallel()

	// Duplicates collapse, so with the last-pick source the last distinct kind wins.
	g := NewGenerator(NewSequenceSource(lastPick))
	got := g.Generate(abcd(), []entities.QuestionKind{entities.KindFill, entities.KindMCQ, entities.KindFill}, 2)

	require.Len(t, got, 2)
	for _, q := range got {
		assert.Equal(t, entities.KindMCQ, q.Kind())
	}
}

func TestGenerate_PackageLevel(t *testing.T) {
	t.Parallel()

	got := Generate(abcd(), []entities.QuestionKind{entities.KindFill}, 2)
	assert.Len(t, got, 2)
}

func assertUnique(t *testing.T, values []string) {
	t.Helper()

	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		_, dup := seen[v]
		assert.False(t, dup, "duplicate option %q in %v", v, values)
		seen[v] = struct{}{}
	}
}
