package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// QuestionKind is the format of a quiz question.
type QuestionKind string

const (
	KindMCQ  QuestionKind = "mcq"  // multiple choice
	KindTF   QuestionKind = "tf"   // true/false
	KindFill QuestionKind = "fill" // fill-in
)

// AllQuestionKinds lists every supported kind in display order.
var AllQuestionKinds = []QuestionKind{KindMCQ, KindTF, KindFill}

var ErrUnknownQuestionKind = errors.New("unknown question kind")

// Valid reports whether k is one of the supported kinds.
func (k QuestionKind) Valid() bool {
	switch k {
	case KindMCQ, KindTF, KindFill:
		return true
	default:
		return false
	}
}

// MinCandidates returns how many quiz-eligible entries a kind needs.
func (k QuestionKind) MinCandidates() int {
	switch k {
	case KindMCQ:
		return 4
	case KindTF:
		return 2
	default:
		return 0
	}
}

// ParseQuestionKinds parses a comma separated list such as "mcq,fill".
func ParseQuestionKinds(s string) ([]QuestionKind, error) {
	var kinds []QuestionKind
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		k := QuestionKind(part)
		if !k.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownQuestionKind, part)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Question is one of MCQQuestion, TFQuestion or FillQuestion.
// The set is closed: callers switch on the concrete type.
type Question interface {
	Kind() QuestionKind
	Prompt() string
	isQuestion()
}

// MCQQuestion asks to pick the meaning of a word among options.
type MCQQuestion struct {
	Question string
	Options  []string // unique, contains Answer exactly once
	Answer   string
}

// TFQuestion asks whether Meaning is the meaning of the word.
type TFQuestion struct {
	Question string
	Meaning  string // proposition shown to the learner
	Answer   bool
}

// FillQuestion asks to type the meaning of a word.
type FillQuestion struct {
	Question string
	Answer   string
}

func (MCQQuestion) Kind() QuestionKind  { return KindMCQ }
func (TFQuestion) Kind() QuestionKind   { return KindTF }
func (FillQuestion) Kind() QuestionKind { return KindFill }

func (q MCQQuestion) Prompt() string  { return q.Question }
func (q TFQuestion) Prompt() string   { return q.Question }
func (q FillQuestion) Prompt() string { return q.Question }

func (MCQQuestion) isQuestion()  {}
func (TFQuestion) isQuestion()   {}
func (FillQuestion) isQuestion() {}

// CorrectAnswer returns the stored answer of q in its textual form.
func CorrectAnswer(q Question) string {
	switch q := q.(type) {
	case MCQQuestion:
		return q.Answer
	case TFQuestion:
		return strconv.FormatBool(q.Answer)
	case FillQuestion:
		return q.Answer
	default:
		panic(fmt.Sprintf("entities: unexpected question type %T", q))
	}
}

// Quiz is an ordered sequence of questions.
type Quiz []Question

// Kinds counts questions per kind.
func (qz Quiz) Kinds() map[QuestionKind]int {
	out := make(map[QuestionKind]int, len(AllQuestionKinds))
	for _, q := range qz {
		out[q.Kind()]++
	}
	return out
}

type questionJSON struct {
	Type     QuestionKind    `json:"type"`
	Question string          `json:"question"`
	Options  []string        `json:"options,omitempty"`
	Meaning  string          `json:"meaning,omitempty"`
	Answer   json.RawMessage `json:"answer"`
}

// MarshalJSON encodes the quiz as an array of objects tagged by "type".
func (qz Quiz) MarshalJSON() ([]byte, error) {
	out := make([]questionJSON, 0, len(qz))
	for _, q := range qz {
		var (
			item questionJSON
			err  error
		)
		switch q := q.(type) {
		case MCQQuestion:
			item = questionJSON{Type: KindMCQ, Question: q.Question, Options: q.Options}
			item.Answer, err = json.Marshal(q.Answer)
		case TFQuestion:
			item = questionJSON{Type: KindTF, Question: q.Question, Meaning: q.Meaning}
			item.Answer, err = json.Marshal(q.Answer)
		case FillQuestion:
			item = questionJSON{Type: KindFill, Question: q.Question}
			item.Answer, err = json.Marshal(q.Answer)
		default:
			return nil, fmt.Errorf("marshal quiz: unexpected question type %T", q)
		}
		if err != nil {
			return nil, fmt.Errorf("marshal quiz answer: %w", err)
		}
		out = append(out, item)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the format produced by MarshalJSON.
func (qz *Quiz) UnmarshalJSON(data []byte) error {
	var items []questionJSON
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("unmarshal quiz: %w", err)
	}

	out := make(Quiz, 0, len(items))
	for i, item := range items {
		switch item.Type {
		case KindMCQ:
			q := MCQQuestion{Question: item.Question, Options: item.Options}
			if err := json.Unmarshal(item.Answer, &q.Answer); err != nil {
				return fmt.Errorf("unmarshal quiz question %d: %w", i, err)
			}
			out = append(out, q)
		case KindTF:
			q := TFQuestion{Question: item.Question, Meaning: item.Meaning}
			if err := json.Unmarshal(item.Answer, &q.Answer); err != nil {
				return fmt.Errorf("unmarshal quiz question %d: %w", i, err)
			}
			out = append(out, q)
		case KindFill:
			q := FillQuestion{Question: item.Question}
			if err := json.Unmarshal(item.Answer, &q.Answer); err != nil {
				return fmt.Errorf("unmarshal quiz question %d: %w", i, err)
			}
			out = append(out, q)
		default:
			return fmt.Errorf("unmarshal quiz question %d: %w: %q", i, ErrUnknownQuestionKind, item.Type)
		}
	}

	*qz = out
	return nil
}
