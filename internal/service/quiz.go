package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/quiz"
)

var (
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrSessionNotActive     = errors.New("quiz session is not active")
)

// AnswerResult describes the outcome of one answered question.
type AnswerResult struct {
	Session       *entities.QuizSession
	Question      entities.Question
	Order         int // zero-based index of the answered question
	Status        entities.AnswerStatus
	CorrectAnswer string
	Next          entities.Question // nil when the quiz is finished
	Finished      bool
	Score         entities.Score
}

type QuizService struct {
	tr        Transactor
	quizRepo  QuizRepository
	decks     DeckRepository
	settings  SettingsRepository
	generator QuizGenerator
	logger    *zap.Logger
}

func NewQuizService(
	tr Transactor,
	quizRepo QuizRepository,
	decks DeckRepository,
	settings SettingsRepository,
	generator QuizGenerator,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		tr:        tr,
		quizRepo:  quizRepo,
		decks:     decks,
		settings:  settings,
		generator: generator,
		logger:    logger,
	}
}

// Start generates a quiz from the active deck and replaces any unfinished session.
func (s *QuizService) Start(ctx context.Context, userID int64) (*entities.QuizSession, error) {
	settings, err := getOrCreateSettings(ctx, s.settings, userID)
	if err != nil {
		return nil, err
	}
	if settings.ActiveDeckID == nil {
		return nil, ErrNoActiveDeck
	}

	deck, err := s.decks.GetByID(ctx, userID, *settings.ActiveDeckID)
	if err != nil {
		return nil, err
	}

	length := entities.ClampQuizLength(settings.QuizLength)
	questions := s.generator.Generate(deck.Entries, settings.QuizKinds, length)
	if len(questions) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	session := entities.NewQuizSession(userID, deck.ID, questions)
	err = s.tr.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.quizRepo.AbandonActive(ctx, userID); err != nil {
			return err
		}

		id, err := s.quizRepo.Create(ctx, session)
		if err != nil {
			return err
		}
		session.ID = id

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("quiz started",
		zap.Int64("user_id", userID),
		zap.Int64("session_id", session.ID),
		zap.String("deck_id", deck.ID.String()),
		zap.Int("questions", len(questions)),
	)

	return session, nil
}

// Current returns the user's unfinished session.
func (s *QuizService) Current(ctx context.Context, userID int64) (*entities.QuizSession, error) {
	return s.quizRepo.GetActiveByUserID(ctx, userID)
}

// Answer grades the current question of the session and moves on.
// An empty answer skips the question.
func (s *QuizService) Answer(
	ctx context.Context, userID, sessionID int64, answer entities.Answer,
) (*AnswerResult, error) {
	var result *AnswerResult

	err := s.tr.WithinTx(ctx, func(ctx context.Context) error {
		session, err := s.quizRepo.GetByID(ctx, userID, sessionID)
		if err != nil {
			return err
		}
		if !session.IsActive() {
			return ErrSessionNotActive
		}

		order := session.CurrentQuestion
		q := session.Current()
		status := quiz.Check(q, answer)

		if err := s.quizRepo.SaveAnswer(ctx, entities.NewQuizAnswer(session, order, q, answer, status)); err != nil {
			return err
		}

		session.Advance(status)
		if err := s.quizRepo.Update(ctx, session); err != nil {
			return err
		}

		result = &AnswerResult{
			Session:       session,
			Question:      q,
			Order:         order,
			Status:        status,
			CorrectAnswer: entities.CorrectAnswer(q),
			Next:          session.Current(),
			Finished:      !session.IsActive(),
			Score:         session.Score(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Finished {
		s.logger.Info("quiz completed",
			zap.Int64("user_id", userID),
			zap.Int64("session_id", sessionID),
			zap.Int("correct", result.Score.Correct),
			zap.Int("total", result.Score.Total),
		)
	}

	return result, nil
}

// Abandon ends the user's unfinished session, if any.
func (s *QuizService) Abandon(ctx context.Context, userID int64) error {
	return s.quizRepo.AbandonActive(ctx, userID)
}

type answerExport struct {
	Order  int                   `json:"order"`
	Type   entities.QuestionKind `json:"type"`
	Answer string                `json:"answer"`
	Status entities.AnswerStatus `json:"status"`
}

type sessionExport struct {
	Quiz    entities.Quiz  `json:"quiz"`
	Answers []answerExport `json:"answers"`
	Score   entities.Score `json:"score"`
	Status  string         `json:"status"`
}

// ExportJSON renders the session questions, the answers given so far and the score.
func (s *QuizService) ExportJSON(ctx context.Context, userID, sessionID int64) ([]byte, error) {
	session, err := s.quizRepo.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	answers, err := s.quizRepo.ListAnswers(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := sessionExport{
		Quiz:    session.Questions,
		Answers: make([]answerExport, 0, len(answers)),
		Score:   session.Score(),
		Status:  session.Status,
	}
	for _, a := range answers {
		out.Answers = append(out.Answers, answerExport{
			Order:  a.QuestionOrder,
			Type:   a.Kind,
			Answer: a.UserAnswer,
			Status: a.Status,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}

	return data, nil
}
