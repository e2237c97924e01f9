package telegram

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/service"
	"github.com/aliskhannn/vocab-deck-bot/internal/storage"
)

// errStaleQuestion means the answered question is no longer the current one.
var errStaleQuestion = errors.New("stale question")

// startQuiz replaces the running quiz, if any, with a new one on the active deck.
func (h *Handler) startQuiz(ctx context.Context, chatID, userID int64) error {
	if prev, err := h.quizService.Current(ctx, userID); err == nil {
		h.dropQuestionMessage(chatID, prev.ID)
	} else if !errors.Is(err, service.ErrSessionNotFound) {
		return err
	}

	session, err := h.quizService.Start(ctx, userID)
	switch {
	case errors.Is(err, service.ErrNoActiveDeck), errors.Is(err, service.ErrDeckNotFound):
		return h.send(newPlainMessage(chatID, msgNoActiveDeck))
	case errors.Is(err, service.ErrNoQuestionsAvailable):
		return h.send(newPlainMessage(chatID, msgNoQuestions))
	case err != nil:
		return err
	}

	h.logger.Debug("quiz session created",
		zap.Int64("session_id", session.ID),
		zap.Int("questions", len(session.Questions)),
	)

	return h.sendQuestion(chatID, session)
}

// sendQuestion shows the current question of session and remembers its message.
func (h *Handler) sendQuestion(chatID int64, session *entities.QuizSession) error {
	q := session.Current()
	order := session.CurrentQuestion

	msg := newMessage(chatID, renderQuestion(q, order, len(session.Questions)))
	msg.ReplyMarkup = buildQuestionKeyboard(q, session.ID, order)

	msgID, err := h.sendAndGetID(msg)
	if err != nil {
		return err
	}
	h.quizStorage.StoreMessageID(session.ID, msgID)

	if q.Kind() == entities.KindFill {
		h.quizStorage.SetPending(chatID, storage.Pending{
			Kind:      storage.PendingFillAnswer,
			SessionID: session.ID,
			Order:     order,
		})
	} else {
		h.quizStorage.ClearPending(chatID)
	}

	return nil
}

// activeQuestion returns the running session when it still waits for question order of sessionID.
func (h *Handler) activeQuestion(ctx context.Context, userID, sessionID int64, order int) (*entities.QuizSession, error) {
	session, err := h.quizService.Current(ctx, userID)
	if errors.Is(err, service.ErrSessionNotFound) {
		return nil, errStaleQuestion
	}
	if err != nil {
		return nil, err
	}

	if session.ID != sessionID || session.CurrentQuestion != order {
		return nil, errStaleQuestion
	}

	return session, nil
}

// applyAnswer grades the answer, replaces the question buttons with the verdict and
// moves on to the next question or the result.
func (h *Handler) applyAnswer(
	ctx context.Context, chatID, userID int64, session *entities.QuizSession, answer entities.Answer,
) error {
	res, err := h.quizService.Answer(ctx, userID, session.ID, answer)
	switch {
	case errors.Is(err, service.ErrSessionNotActive),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrOptimisticLock):
		return errStaleQuestion
	case err != nil:
		return err
	}

	if msgID, ok := h.quizStorage.GetMessageID(session.ID); ok {
		text := renderQuestion(res.Question, res.Order, len(session.Questions)) + "\n\n" + renderFeedback(res)
		_ = h.send(newEdit(chatID, msgID, text))
	}

	if !res.Finished {
		return h.sendQuestion(chatID, res.Session)
	}

	h.quizStorage.ClearPending(chatID)
	h.quizStorage.Delete(session.ID)

	msg := newMessage(chatID, renderResult(res.Score))
	msg.ReplyMarkup = buildQuizResultKeyboard(session.ID)
	return h.send(msg)
}

// answerFill grades a typed answer to a fill question.
func (h *Handler) answerFill(ctx context.Context, chatID, userID int64, pending storage.Pending, text string) error {
	session, err := h.activeQuestion(ctx, userID, pending.SessionID, pending.Order)
	if err == nil {
		err = h.applyAnswer(ctx, chatID, userID, session, entities.Answer(strings.TrimSpace(text)))
	}

	if errors.Is(err, errStaleQuestion) {
		h.quizStorage.ClearPending(chatID)
		return h.send(newPlainMessage(chatID, msgStaleQuestion))
	}
	return err
}

// dropQuestionMessage deletes the question message of a session that is being replaced.
func (h *Handler) dropQuestionMessage(chatID, sessionID int64) {
	if msgID, ok := h.quizStorage.GetMessageID(sessionID); ok {
		h.deleteMessage(chatID, msgID)
	}
	h.quizStorage.Delete(sessionID)
}
