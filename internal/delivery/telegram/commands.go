package telegram

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/service"
	"github.com/aliskhannn/vocab-deck-bot/internal/storage"
	"github.com/aliskhannn/vocab-deck-bot/pkg/validator"
)

const maxTitleLength = 64

func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, msgWelcome()))
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgHelp))
	}
}

// handleNew remembers the deck title and waits for the word list.
func (h *Handler) handleNew(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		title := strings.TrimSpace(args)
		if title == "" {
			return h.send(newPlainMessage(chatID, msgUseNew))
		}
		if utf8.RuneCountInString(title) > maxTitleLength {
			return h.send(newPlainMessage(chatID, msgTitleInvalid))
		}

		h.quizStorage.SetPending(chatID, storage.Pending{
			Kind:  storage.PendingDeckText,
			Title: title,
		})

		return h.send(newMessage(chatID, msgAwaitingDeck(title)))
	}
}

// importDeck turns the received word list into a deck.
func (h *Handler) importDeck(ctx context.Context, chatID, userID int64, title, text string) error {
	deck, err := h.deckService.Import(ctx, userID, title, text)
	switch {
	case errors.Is(err, service.ErrEmptyDeck):
		return h.send(newPlainMessage(chatID, msgEmptyDeck))
	case errors.Is(err, service.ErrEnrichmentFailed):
		return h.send(newPlainMessage(chatID, msgEnrichmentFailed))
	case errors.Is(err, validator.ErrValidation):
		h.quizStorage.ClearPending(chatID)
		return h.send(newPlainMessage(chatID, msgTitleInvalid))
	case err != nil:
		return err
	}

	h.quizStorage.ClearPending(chatID)

	msg := newMessage(chatID, msgDeckImported(deck))
	msg.ReplyMarkup = buildDeckKeyboard(deck)
	return h.send(msg)
}

// handleDecks lists the user's decks, marking the active one.
func (h *Handler) handleDecks(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb, err := h.renderDeckList(ctx, userID)
		if err != nil {
			return err
		}

		msg := newPlainMessage(chatID, text)
		if kb != nil {
			msg.ReplyMarkup = *kb
		}
		return h.send(msg)
	}
}

func (h *Handler) renderDeckList(ctx context.Context, userID int64) (string, *tgbotapi.InlineKeyboardMarkup, error) {
	decks, err := h.deckService.List(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	if len(decks) == 0 {
		return msgNoDecks, nil, nil
	}

	settings, err := h.settingsService.GetOrCreate(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	var activeID string
	if settings.ActiveDeckID != nil {
		activeID = settings.ActiveDeckID.String()
	}

	kb := buildDeckListKeyboard(decks, activeID)
	return "📚 Your decks:", &kb, nil
}

func (h *Handler) handleQuiz(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.startQuiz(ctx, chatID, userID)
	}
}

func (h *Handler) handleSettings(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		settings, err := h.settingsService.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}

		msg := newMessage(chatID, renderSettings(settings))
		msg.ReplyMarkup = buildSettingsKeyboard(settings)
		return h.send(msg)
	}
}

// handleExport sends the active deck as CSV and JSON documents.
func (h *Handler) handleExport(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		deck, err := h.deckService.Active(ctx, userID)
		if errors.Is(err, service.ErrNoActiveDeck) || errors.Is(err, service.ErrDeckNotFound) {
			return h.send(newPlainMessage(chatID, msgNoActiveDeck))
		}
		if err != nil {
			return err
		}

		return h.exportDeck(ctx, chatID, userID, deck)
	}
}

func (h *Handler) exportDeck(ctx context.Context, chatID, userID int64, deck *entities.Deck) error {
	for _, format := range []string{service.FormatCSV, service.FormatJSON} {
		file, err := h.deckService.Export(ctx, userID, deck.ID, format)
		if err != nil {
			return err
		}
		if err := h.sendDocument(chatID, file.Name, file.Data); err != nil {
			return err
		}
	}
	return nil
}

// handleCancel drops the pending input and abandons the running quiz.
func (h *Handler) handleCancel(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.quizStorage.ClearPending(chatID)

		session, err := h.quizService.Current(ctx, userID)
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return h.send(newPlainMessage(chatID, msgCancelled))
		case err != nil:
			return err
		}

		h.dropQuestionMessage(chatID, session.ID)

		if err := h.quizService.Abandon(ctx, userID); err != nil {
			return err
		}

		h.logger.Debug("quiz cancelled",
			zap.Int64("user_id", userID),
			zap.Int64("session_id", session.ID),
		)

		return h.send(newPlainMessage(chatID, msgCancelled))
	}
}
