package entities

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	MinQuizLength     = 1
	MaxQuizLength     = 20
	DefaultQuizLength = 10
)

// UserSettings stores user-specific quiz preferences.
type UserSettings struct {
	UserID       int64
	QuizKinds    []QuestionKind // kinds the generator may draw from
	QuizLength   int            // requested number of questions
	ActiveDeckID *uuid.UUID     // nullable, deck used by /quiz
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUserSettings creates a new UserSettings instance with default values.
func NewUserSettings(userID int64) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:     userID,
		QuizKinds:  []QuestionKind{KindMCQ},
		QuizLength: DefaultQuizLength,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ClampQuizLength limits n to the range accepted by the quiz generator callers.
func ClampQuizLength(n int) int {
	return min(max(n, MinQuizLength), MaxQuizLength)
}

// HasKind reports whether k is enabled.
func (us *UserSettings) HasKind(k QuestionKind) bool {
	return slices.Contains(us.QuizKinds, k)
}

// ToggleKind enables or disables k. The last enabled kind cannot be disabled.
// It reports whether the settings changed.
func (us *UserSettings) ToggleKind(k QuestionKind) bool {
	if !k.Valid() {
		return false
	}

	if us.HasKind(k) {
		if len(us.QuizKinds) == 1 {
			return false
		}
		us.QuizKinds = slices.DeleteFunc(slices.Clone(us.QuizKinds), func(x QuestionKind) bool { return x == k })
		return true
	}

	// Keep display order stable.
	var kinds []QuestionKind
	for _, x := range AllQuestionKinds {
		if x == k || us.HasKind(x) {
			kinds = append(kinds, x)
		}
	}
	us.QuizKinds = kinds
	return true
}
