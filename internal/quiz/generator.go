// Package quiz builds graded quizzes out of vocabulary entries and grades the answers.
//
// Generation is a pure function of its inputs and the injected Source: nothing is
// retained between calls, so a single Generator may serve many callers.
package quiz

import (
	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

// mcqChoices is the number of options of a multiple-choice question when enough
// distinct meanings exist.
const mcqChoices = 4

var defaultGenerator = NewGenerator(DefaultSource())

// Generate builds a quiz with the package default generator.
func Generate(entries []entities.VocabEntry, kinds []entities.QuestionKind, count int) entities.Quiz {
	return defaultGenerator.Generate(entries, kinds, count)
}

// Generator synthesizes quizzes from vocabulary entries.
type Generator struct {
	src Source
}

// NewGenerator creates a generator drawing randomness from src.
// A nil src falls back to DefaultSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = DefaultSource()
	}
	return &Generator{src: src}
}

// Generate selects up to count quiz-eligible entries without replacement, in random order,
// and turns each into a question of a kind drawn uniformly from kinds.
//
// Kinds the vocabulary cannot support are ignored: mcq needs at least 4 eligible entries,
// tf at least 2. When nothing can be generated the result is an empty quiz.
func (g *Generator) Generate(entries []entities.VocabEntry, kinds []entities.QuestionKind, count int) entities.Quiz {
	if len(entries) == 0 || len(kinds) == 0 {
		return entities.Quiz{}
	}

	candidates := eligibleIndexes(entries)
	if len(candidates) == 0 {
		return entities.Quiz{}
	}

	available := availableKinds(kinds, len(candidates))
	if len(available) == 0 {
		return entities.Quiz{}
	}

	n := min(count, len(candidates))
	if n <= 0 {
		return entities.Quiz{}
	}

	shuffle(g.src, candidates)

	out := make(entities.Quiz, 0, n)
	for _, idx := range candidates[:n] {
		kind := available[intn(g.src, len(available))]
		out = append(out, g.build(kind, entries, idx))
	}

	return out
}

func (g *Generator) build(kind entities.QuestionKind, entries []entities.VocabEntry, idx int) entities.Question {
	switch kind {
	case entities.KindMCQ:
		return g.mcq(entries, idx)
	case entities.KindTF:
		return g.tf(entries, idx)
	default:
		return fill(entries, idx)
	}
}

// mcq offers the correct meaning together with up to three distinct meanings of other entries.
// With fewer distinct meanings available the question simply has fewer options.
func (g *Generator) mcq(entries []entities.VocabEntry, idx int) entities.MCQQuestion {
	correct := entries[idx].Meaning

	pool := otherMeanings(entries, idx)
	pool = uniqueKeepOrder(pool)
	shuffle(g.src, pool)

	distractors := pool[:min(len(pool), mcqChoices-1)]

	options := make([]string, 0, len(distractors)+1)
	options = append(options, correct)
	options = append(options, distractors...)
	shuffle(g.src, options)

	return entities.MCQQuestion{
		Question: entries[idx].Word,
		Options:  options,
		Answer:   correct,
	}
}

// tf shows the true meaning half of the time. Otherwise it shows the meaning of a random
// other entry, or a negated sentence when no other meaning exists.
func (g *Generator) tf(entries []entities.VocabEntry, idx int) entities.TFQuestion {
	correct := entries[idx].Meaning
	q := entities.TFQuestion{Question: entries[idx].Word}

	if coin(g.src) {
		q.Meaning = correct
		q.Answer = true
		return q
	}

	others := otherMeanings(entries, idx)
	if len(others) == 0 {
		q.Meaning = "Not " + correct
		return q
	}

	q.Meaning = others[intn(g.src, len(others))]
	return q
}

func fill(entries []entities.VocabEntry, idx int) entities.FillQuestion {
	return entities.FillQuestion{
		Question: entries[idx].Word,
		Answer:   entries[idx].Meaning,
	}
}

// eligibleIndexes returns the positions of entries with both a word and a meaning.
func eligibleIndexes(entries []entities.VocabEntry) []int {
	out := make([]int, 0, len(entries))
	for i, e := range entries {
		if e.Eligible() {
			out = append(out, i)
		}
	}
	return out
}

// availableKinds drops unknown and repeated kinds and those needing more candidates than exist.
func availableKinds(kinds []entities.QuestionKind, candidates int) []entities.QuestionKind {
	seen := make(map[entities.QuestionKind]struct{}, len(kinds))
	out := make([]entities.QuestionKind, 0, len(kinds))
	for _, k := range kinds {
		if !k.Valid() || candidates < k.MinCandidates() {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// otherMeanings lists the non-empty meanings of all entries except idx that differ
// from the meaning at idx. The whole entry set is used, not only quiz candidates.
func otherMeanings(entries []entities.VocabEntry, idx int) []string {
	correct := entries[idx].Meaning
	out := make([]string, 0, len(entries))
	for i, e := range entries {
		if i == idx || e.Meaning == "" || e.Meaning == correct {
			continue
		}
		out = append(out, e.Meaning)
	}
	return out
}

// uniqueKeepOrder removes duplicates while preserving the original order.
func uniqueKeepOrder(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
