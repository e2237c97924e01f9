package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

// Check compares a submitted answer against the question's stored answer.
//
//   - mcq: exact match with the correct option
//   - tf: boolean match; "true/false", "t/f", "1/0" and "yes/no" are understood
//   - fill: case-insensitive match ignoring surrounding whitespace
//
// An empty answer is unanswered, never correct.
func Check(q entities.Question, a entities.Answer) entities.AnswerStatus {
	if a == entities.NoAnswer {
		return entities.StatusUnanswered
	}

	var ok bool
	switch q := q.(type) {
	case entities.MCQQuestion:
		ok = string(a) == q.Answer
	case entities.TFQuestion:
		b, err := parseBool(string(a))
		ok = err == nil && b == q.Answer
	case entities.FillQuestion:
		ok = strings.EqualFold(strings.TrimSpace(string(a)), strings.TrimSpace(q.Answer))
	default:
		panic(fmt.Sprintf("quiz: unexpected question type %T", q))
	}

	if ok {
		return entities.StatusCorrect
	}
	return entities.StatusIncorrect
}

// Grade scores answers against the quiz. answers[i] belongs to quiz[i]; missing
// answers count as unanswered. Total is always the quiz length.
func Grade(qz entities.Quiz, answers []entities.Answer) entities.Score {
	score := entities.Score{Total: len(qz)}
	for i, q := range qz {
		a := entities.NoAnswer
		if i < len(answers) {
			a = answers[i]
		}
		if Check(q, a) == entities.StatusCorrect {
			score.Correct++
		}
	}
	return score
}

func parseBool(s string) (bool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(s)
}
