package telegram

import (
	"context"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-deck-bot/internal/storage"
)

type Handler struct {
	bot             Bot
	logger          *zap.Logger
	userService     UserService
	deckService     DeckService
	quizService     QuizService
	settingsService SettingsService
	quizStorage     QuizStorage
	httpClient      *http.Client
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	userService UserService,
	deckService DeckService,
	quizService QuizService,
	settingsService SettingsService,
	quizStorage QuizStorage,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		userService:     userService,
		deckService:     deckService,
		quizService:     quizService,
		settingsService: settingsService,
		quizStorage:     quizStorage,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		cb := update.CallbackQuery
		h.logger.Debug("callback received",
			zap.Int64("user_id", cb.From.ID),
			zap.String("data", cb.Data),
		)
		if cb.Message == nil {
			return
		}
		h.ensureUser(ctx, cb.From.ID, cb.Message.Chat.ID)
		h.handleCallback(ctx, cb)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	msg := update.Message
	userID := msg.From.ID
	chatID := msg.Chat.ID

	h.ensureUser(ctx, userID, chatID)

	if msg.IsCommand() {
		h.handleCommand(ctx, msg)
		return
	}

	if msg.Document != nil {
		_ = h.withErrorHandling(h.handleDocument(userID, msg.Document))(ctx, chatID)
		return
	}

	_ = h.withErrorHandling(h.handleText(userID, msg.Text))(ctx, chatID)
}

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	var fn HandlerFunc
	switch msg.Command() {
	case "start":
		fn = h.handleStart()
	case "help":
		fn = h.handleHelp()
	case "new":
		fn = h.handleNew(msg.CommandArguments())
	case "decks":
		fn = h.handleDecks(userID)
	case "quiz":
		fn = h.handleQuiz(userID)
	case "settings":
		fn = h.handleSettings(userID)
	case "export":
		fn = h.handleExport(userID)
	case "cancel":
		fn = h.handleCancel(userID)
	default:
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
		return
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

// handleText routes a plain message to the input the chat is waiting for.
func (h *Handler) handleText(userID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		pending := h.quizStorage.GetPending(chatID)

		switch pending.Kind {
		case storage.PendingDeckText:
			return h.importDeck(ctx, chatID, userID, pending.Title, text)
		case storage.PendingFillAnswer:
			return h.answerFill(ctx, chatID, userID, pending, text)
		default:
			return h.send(newPlainMessage(chatID, msgNothingPending))
		}
	}
}

func (h *Handler) ensureUser(ctx context.Context, userID, chatID int64) {
	if err := h.userService.EnsureUser(ctx, userID, chatID); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		if isNotModified(err) {
			return nil
		}
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}

// isNotModified reports an edit that would leave the message unchanged.
func isNotModified(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}

// sendAndGetID sends c and returns the ID of the sent message.
func (h *Handler) sendAndGetID(c tgbotapi.Chattable) (int, error) {
	sent, err := h.bot.Send(c)
	if err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return 0, err
	}
	return sent.MessageID, nil
}

// deleteMessage removes a message, ignoring failures: it may already be gone.
func (h *Handler) deleteMessage(chatID int64, messageID int) {
	if _, err := h.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		h.logger.Debug("failed to delete message",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(err),
		)
	}
}

// answerCallback removes the loading indicator of a button, optionally showing text.
func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}
