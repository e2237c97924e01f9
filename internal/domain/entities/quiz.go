package entities

import (
	"time"

	"github.com/google/uuid"
)

// Session statuses.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
	SessionAbandoned = "abandoned"
)

// Answer is a submitted answer. The empty value means the question was not answered.
// True/false answers are submitted as "true" or "false".
type Answer string

// NoAnswer is the answer of a skipped question.
const NoAnswer Answer = ""

// BoolAnswer builds the answer to a true/false question.
func BoolAnswer(b bool) Answer {
	if b {
		return "true"
	}
	return "false"
}

// AnswerStatus is the result of checking a single answer.
type AnswerStatus string

const (
	StatusUnanswered AnswerStatus = "unanswered"
	StatusCorrect    AnswerStatus = "correct"
	StatusIncorrect  AnswerStatus = "incorrect"
)

// Score is the number of correct answers out of the quiz length.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Percent returns the share of correct answers in percent.
func (s Score) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) * 100 / float64(s.Total)
}

// QuizSession represents a quiz a user is taking.
// It tracks the generated questions, progress, session status, and timestamps.
type QuizSession struct {
	ID              int64      // unique session ID
	UserID          int64      // user ID who started the quiz
	DeckID          uuid.UUID  // deck the questions were generated from
	Questions       Quiz       // generated questions, immutable once stored
	CurrentQuestion int        // zero-based index of the question awaiting an answer
	CorrectAnswers  int        // number of correct answers so far
	Status          string     // "active", "completed" or "abandoned"
	StartedAt       time.Time  // timestamp when the quiz started
	CompletedAt     *time.Time // nullable
	Version         int        // optimistic lock counter
}

// NewQuizSession creates an active session for the given quiz.
func NewQuizSession(userID int64, deckID uuid.UUID, questions Quiz) *QuizSession {
	return &QuizSession{
		UserID:    userID,
		DeckID:    deckID,
		Questions: questions,
		Status:    SessionActive,
		StartedAt: time.Now(),
	}
}

// IsActive reports whether the session still accepts answers.
func (qs *QuizSession) IsActive() bool {
	return qs.Status == SessionActive && qs.CurrentQuestion < len(qs.Questions)
}

// Current returns the question awaiting an answer, or nil when there is none.
func (qs *QuizSession) Current() Question {
	if !qs.IsActive() {
		return nil
	}
	return qs.Questions[qs.CurrentQuestion]
}

// Advance records the outcome of the current question and moves to the next one.
// The session is completed after the last question.
func (qs *QuizSession) Advance(status AnswerStatus) {
	if status == StatusCorrect {
		qs.CorrectAnswers++
	}
	qs.CurrentQuestion++
	if qs.CurrentQuestion >= len(qs.Questions) {
		qs.Complete()
	}
}

// Complete marks the quiz session as completed and sets the completion timestamp.
func (qs *QuizSession) Complete() {
	qs.Status = SessionCompleted
	now := time.Now()
	qs.CompletedAt = &now
}

// Score returns the score accumulated so far.
func (qs *QuizSession) Score() Score {
	return Score{Correct: qs.CorrectAnswers, Total: len(qs.Questions)}
}

// QuizAnswer represents a user's answer to a quiz question.
type QuizAnswer struct {
	ID            int64
	SessionID     int64
	UserID        int64
	QuestionOrder int
	Kind          QuestionKind
	UserAnswer    string
	CorrectAnswer string
	Status        AnswerStatus
	AnsweredAt    time.Time
}

// NewQuizAnswer creates a quiz answer record for the given question.
func NewQuizAnswer(session *QuizSession, order int, q Question, answer Answer, status AnswerStatus) *QuizAnswer {
	return &QuizAnswer{
		SessionID:     session.ID,
		UserID:        session.UserID,
		QuestionOrder: order,
		Kind:          q.Kind(),
		UserAnswer:    string(answer),
		CorrectAnswer: CorrectAnswer(q),
		Status:        status,
		AnsweredAt:    time.Now(),
	}
}
