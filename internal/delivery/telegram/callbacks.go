package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/service"
)

// handleCallback dispatches an inline button press and always answers it,
// so the client drops its loading indicator.
func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	data := decodeCallback(cb.Data)

	var (
		toast string
		err   error
	)

	switch data.Action {
	case actionDeck:
		toast, err = h.handleDeckCallback(ctx, cb, data)
	case actionQuiz:
		toast, err = h.handleQuizCallback(ctx, cb, data)
	case actionSettings:
		toast, err = h.handleSettingsCallback(ctx, cb, data)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
	}

	if err != nil {
		h.logger.Error("handle callback",
			zap.Int64("user_id", cb.From.ID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		toast = msgInternalError
	}

	h.answerCallback(cb.ID, toast)
}

func (h *Handler) handleDeckCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) (string, error) {
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID

	if data.param(0) == deckList {
		return "", h.editDeckList(ctx, chatID, msgID, userID)
	}

	deckID, ok := data.uuidParam(1)
	if !ok {
		h.logger.Warn("invalid deck callback", zap.String("data", data.Raw))
		return "", nil
	}

	var err error
	switch data.param(0) {
	case deckOpen:
		var deck *entities.Deck
		deck, err = h.deckService.Get(ctx, userID, deckID)
		if err == nil {
			edit := newEdit(chatID, msgID, renderDeck(deck))
			kb := buildDeckKeyboard(deck)
			edit.ReplyMarkup = &kb
			err = h.send(edit)
		}

	case deckSelect:
		err = h.settingsService.SetActiveDeck(ctx, userID, deckID)
		if err == nil {
			return msgDeckSelected, nil
		}

	case deckDelete:
		err = h.deckService.Delete(ctx, userID, deckID)
		if err == nil {
			return msgDeckDeleted, h.editDeckList(ctx, chatID, msgID, userID)
		}

	case deckExport:
		var deck *entities.Deck
		deck, err = h.deckService.Get(ctx, userID, deckID)
		if err == nil {
			err = h.exportDeck(ctx, chatID, userID, deck)
		}

	default:
		h.logger.Warn("unknown deck callback", zap.String("data", data.Raw))
	}

	if errors.Is(err, service.ErrDeckNotFound) {
		return msgDeckNotFound, nil
	}
	return "", err
}

func (h *Handler) editDeckList(ctx context.Context, chatID int64, msgID int, userID int64) error {
	text, kb, err := h.renderDeckList(ctx, userID)
	if err != nil {
		return err
	}

	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ReplyMarkup = kb
	return h.send(edit)
}

func (h *Handler) handleQuizCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) (string, error) {
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID

	sub := data.param(0)
	if sub == quizStart {
		return "", h.startQuiz(ctx, chatID, userID)
	}

	sessionID, ok := data.int64Param(1)
	if !ok {
		h.logger.Warn("invalid quiz callback", zap.String("data", data.Raw))
		return "", nil
	}

	if sub == quizExport {
		return h.exportSession(ctx, chatID, userID, sessionID)
	}

	order, ok := data.intParam(2)
	if !ok {
		h.logger.Warn("invalid quiz callback", zap.String("data", data.Raw))
		return "", nil
	}

	session, err := h.activeQuestion(ctx, userID, sessionID, order)
	if err == nil {
		var answer entities.Answer
		answer, ok = callbackAnswer(session.Current(), sub, data)
		if !ok {
			h.logger.Warn("invalid quiz answer", zap.String("data", data.Raw))
			return "", nil
		}
		err = h.applyAnswer(ctx, chatID, userID, session, answer)
	}

	if errors.Is(err, errStaleQuestion) {
		return msgStaleQuestion, nil
	}
	return "", err
}

// callbackAnswer converts a pressed answer button into the submitted answer.
func callbackAnswer(q entities.Question, sub string, data callbackData) (entities.Answer, bool) {
	switch sub {
	case quizSkip:
		return entities.NoAnswer, true

	case quizOption:
		mcq, ok := q.(entities.MCQQuestion)
		if !ok {
			return "", false
		}
		idx, ok := data.intParam(3)
		if !ok || idx < 0 || idx >= len(mcq.Options) {
			return "", false
		}
		return entities.Answer(mcq.Options[idx]), true

	case quizTF:
		if _, ok := q.(entities.TFQuestion); !ok {
			return "", false
		}
		switch data.param(3) {
		case "true":
			return entities.BoolAnswer(true), true
		case "false":
			return entities.BoolAnswer(false), true
		}
	}

	return "", false
}

// exportSession sends the questions, answers and score of a session as a JSON document.
func (h *Handler) exportSession(ctx context.Context, chatID, userID, sessionID int64) (string, error) {
	data, err := h.quizService.ExportJSON(ctx, userID, sessionID)
	if errors.Is(err, service.ErrSessionNotFound) {
		return msgSessionNotFound, nil
	}
	if err != nil {
		return "", err
	}

	return "", h.sendDocument(chatID, fmt.Sprintf("quiz-%d.json", sessionID), data)
}
