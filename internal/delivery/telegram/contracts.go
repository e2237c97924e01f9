package telegram

//go:generate mockgen -source=contracts.go -destination=mock/contracts_mock.go -package=mock_telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/service"
	"github.com/aliskhannn/vocab-deck-bot/internal/storage"
)

// Bot is the part of *tgbotapi.BotAPI the handler uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) error
}

type DeckService interface {
	Import(ctx context.Context, userID int64, title, text string) (*entities.Deck, error)
	List(ctx context.Context, userID int64) ([]*entities.Deck, error)
	Get(ctx context.Context, userID int64, deckID uuid.UUID) (*entities.Deck, error)
	Active(ctx context.Context, userID int64) (*entities.Deck, error)
	Delete(ctx context.Context, userID int64, deckID uuid.UUID) error
	Export(ctx context.Context, userID int64, deckID uuid.UUID, format string) (*service.ExportFile, error)
}

type QuizService interface {
	Start(ctx context.Context, userID int64) (*entities.QuizSession, error)
	Current(ctx context.Context, userID int64) (*entities.QuizSession, error)
	Answer(ctx context.Context, userID, sessionID int64, answer entities.Answer) (*service.AnswerResult, error)
	Abandon(ctx context.Context, userID int64) error
	ExportJSON(ctx context.Context, userID, sessionID int64) ([]byte, error)
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
	ToggleQuizKind(ctx context.Context, userID int64, kind entities.QuestionKind) (*entities.UserSettings, error)
	SetQuizLength(ctx context.Context, userID int64, n int) (*entities.UserSettings, error)
	SetActiveDeck(ctx context.Context, userID int64, deckID uuid.UUID) error
}

type QuizStorage interface {
	StoreMessageID(sessionID int64, messageID int)
	GetMessageID(sessionID int64) (int, bool)
	Delete(sessionID int64)
	SetPending(chatID int64, p storage.Pending)
	GetPending(chatID int64) storage.Pending
	ClearPending(chatID int64)
}
