package service

//go:generate mockgen -source=contracts.go -destination=mock/contracts_mock.go -package=mock_service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
	Exists(ctx context.Context, userID int64) (bool, error)
}

type DeckRepository interface {
	Create(ctx context.Context, deck *entities.Deck) error
	GetByID(ctx context.Context, userID int64, id uuid.UUID) (*entities.Deck, error)
	ListByUserID(ctx context.Context, userID int64) ([]*entities.Deck, error)
	Delete(ctx context.Context, userID int64, id uuid.UUID) error
}

type QuizRepository interface {
	Create(ctx context.Context, session *entities.QuizSession) (int64, error)
	GetByID(ctx context.Context, userID, sessionID int64) (*entities.QuizSession, error)
	GetActiveByUserID(ctx context.Context, userID int64) (*entities.QuizSession, error)
	Update(ctx context.Context, session *entities.QuizSession) error
	AbandonActive(ctx context.Context, userID int64) error
	AbandonStale(ctx context.Context, startedBefore time.Time) (int64, error)
	SaveAnswer(ctx context.Context, answer *entities.QuizAnswer) error
	ListAnswers(ctx context.Context, sessionID int64) ([]*entities.QuizAnswer, error)
}

type SettingsRepository interface {
	Create(ctx context.Context, settings *entities.UserSettings) error
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	Update(ctx context.Context, settings *entities.UserSettings) error
	SetActiveDeck(ctx context.Context, userID int64, deckID *uuid.UUID) error
}

// Transactor runs fn atomically. Repositories join the transaction through ctx.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Enricher fills in pronunciation and meaning for bare words.
type Enricher interface {
	Enrich(
		ctx context.Context, words []string, lang entities.TargetLanguage, style entities.IPAStyle,
	) ([]entities.VocabEntry, error)
}

type QuizGenerator interface {
	Generate(entries []entities.VocabEntry, kinds []entities.QuestionKind, count int) entities.Quiz
}
