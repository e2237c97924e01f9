package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

func (h *Handler) handleSettingsCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) (string, error) {
	userID := cb.From.ID

	var (
		settings *entities.UserSettings
		err      error
	)

	switch data.param(0) {
	case settingsMenu:
		settings, err = h.settingsService.GetOrCreate(ctx, userID)

	case settingsKind:
		kind := entities.QuestionKind(data.param(1))
		if !kind.Valid() {
			h.logger.Warn("invalid settings callback", zap.String("data", data.Raw))
			return "", nil
		}
		settings, err = h.settingsService.ToggleQuizKind(ctx, userID, kind)
		if err == nil && len(settings.QuizKinds) == 1 && settings.QuizKinds[0] == kind {
			// The only enabled kind cannot be switched off.
			return msgLastKind, nil
		}

	case settingsLength:
		n, ok := data.intParam(1)
		if !ok {
			h.logger.Warn("invalid settings callback", zap.String("data", data.Raw))
			return "", nil
		}
		settings, err = h.settingsService.SetQuizLength(ctx, userID, n)

	default:
		h.logger.Warn("unknown settings callback", zap.String("data", data.Raw))
		return "", nil
	}

	if err != nil {
		return "", err
	}

	return "", h.editSettings(cb.Message.Chat.ID, cb.Message.MessageID, settings)
}

func (h *Handler) editSettings(chatID int64, msgID int, settings *entities.UserSettings) error {
	edit := newEdit(chatID, msgID, renderSettings(settings))
	kb := buildSettingsKeyboard(settings)
	edit.ReplyMarkup = &kb
	return h.send(edit)
}
