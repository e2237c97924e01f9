package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/vocab-deck-bot/internal/quiz"
	mock_service "github.com/aliskhannn/vocab-deck-bot/internal/service/mock"
)

type quizMocks struct {
	tr        *mock_service.MockTransactor
	quizRepo  *mock_service.MockQuizRepository
	decks     *mock_service.MockDeckRepository
	settings  *mock_service.MockSettingsRepository
	generator *mock_service.MockQuizGenerator
}

func newQuizServiceMock(t *testing.T, setup func(m quizMocks)) *QuizService {
	ctrl := gomock.NewController(t)
	m := quizMocks{
		tr:        mock_service.NewMockTransactor(ctrl),
		quizRepo:  mock_service.NewMockQuizRepository(ctrl),
		decks:     mock_service.NewMockDeckRepository(ctrl),
		settings:  mock_service.NewMockSettingsRepository(ctrl),
		generator: mock_service.NewMockQuizGenerator(ctrl),
	}
	passThroughTx(m.tr)
	if setup != nil {
		setup(m)
	}

	return NewQuizService(m.tr, m.quizRepo, m.decks, m.settings, m.generator, zap.NewNop())
}

func testQuiz() entities.Quiz {
	return entities.Quiz{
		entities.MCQQuestion{Question: "cat", Options: []string{"собака", "кошка"}, Answer: "кошка"},
		entities.FillQuestion{Question: "собака", Answer: "dog"},
	}
}

func TestQuizService_Start(t *testing.T) {
	t.Parallel()

	deckID := uuid.New()
	deck := &entities.Deck{
		ID: deckID,
		Entries: []entities.VocabEntry{
			{Word: "cat", Meaning: "кошка"},
			{Word: "dog", Meaning: "собака"},
		},
	}
	withDeck := func(length int) *entities.UserSettings {
		s := entities.NewUserSettings(1)
		s.ActiveDeckID = &deckID
		s.QuizLength = length
		s.QuizKinds = []entities.QuestionKind{entities.KindMCQ, entities.KindFill}
		return s
	}

	t.Run("creates session", func(t *testing.T) {
		t.Parallel()

		s := newQuizServiceMock(t, func(m quizMocks) {
			m.settings.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(withDeck(50), nil)
			m.decks.EXPECT().GetByID(gomock.Any(), int64(1), deckID).Return(deck, nil)
			m.generator.EXPECT().
				Generate(deck.Entries, []entities.QuestionKind{entities.KindMCQ, entities.KindFill}, entities.MaxQuizLength).
				Return(testQuiz())
			m.quizRepo.EXPECT().AbandonActive(gomock.Any(), int64(1)).Return(nil)
			m.quizRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(9), nil)
		})

		session, err := s.Start(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(9), session.ID)
		assert.Equal(t, deckID, session.DeckID)
		assert.Equal(t, testQuiz(), session.Questions)
		assert.True(t, session.IsActive())
	})

	t.Run("no active deck", func(t *testing.T) {
		t.Parallel()

		s := newQuizServiceMock(t, func(m quizMocks) {
			m.settings.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(entities.NewUserSettings(1), nil)
		})

		_, err := s.Start(context.Background(), 1)
		assert.ErrorIs(t, err, ErrNoActiveDeck)
	})

	t.Run("nothing eligible", func(t *testing.T) {
		t.Parallel()

		s := newQuizServiceMock(t, func(m quizMocks) {
			m.settings.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(withDeck(0), nil)
			m.decks.EXPECT().GetByID(gomock.Any(), int64(1), deckID).Return(deck, nil)
			m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), entities.MinQuizLength).Return(entities.Quiz{})
		})

		_, err := s.Start(context.Background(), 1)
		assert.ErrorIs(t, err, ErrNoQuestionsAvailable)
	})

	t.Run("real generator", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		tr := mock_service.NewMockTransactor(ctrl)
		quizRepo := mock_service.NewMockQuizRepository(ctrl)
		decks := mock_service.NewMockDeckRepository(ctrl)
		settings := mock_service.NewMockSettingsRepository(ctrl)
		passThroughTx(tr)

		settings.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(withDeck(5), nil)
		decks.EXPECT().GetByID(gomock.Any(), int64(1), deckID).Return(deck, nil)
		quizRepo.EXPECT().AbandonActive(gomock.Any(), int64(1)).Return(nil)
		quizRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil)

		gen := quiz.NewGenerator(quiz.NewSeededSource(7))
		s := NewQuizService(tr, quizRepo, decks, settings, gen, zap.NewNop())

		session, err := s.Start(context.Background(), 1)
		require.NoError(t, err)
		// Two eligible entries: only fill questions can be built, one per entry.
		require.Len(t, session.Questions, 2)
		for _, q := range session.Questions {
			assert.Equal(t, entities.KindFill, q.Kind())
		}
	})
}

func TestQuizService_Answer(t *testing.T) {
	t.Parallel()

	activeSession := func(current, correct int) *entities.QuizSession {
		return &entities.QuizSession{
			ID:              5,
			UserID:          1,
			Questions:       testQuiz(),
			CurrentQuestion: current,
			CorrectAnswers:  correct,
			Status:          entities.SessionActive,
			Version:         2,
		}
	}

	t.Run("correct answer moves on", func(t *testing.T) {
		t.Parallel()

		s := newQuizServiceMock(t, func(m quizMocks) {
			m.quizRepo.EXPECT().GetByID(gomock.Any(), int64(1), int64(5)).Return(activeSession(0, 0), nil)
			m.quizRepo.EXPECT().SaveAnswer(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, a *entities.QuizAnswer) error {
					assert.Equal(t, 0, a.QuestionOrder)
					assert.Equal(t, entities.StatusCorrect, a.Status)
					assert.Equal(t, "кошка", a.CorrectAnswer)
					return nil
				})
			m.quizRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		})

		res, err := s.Answer(context.Background(), 1, 5, "кошка")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCorrect, res.Status)
		assert.False(t, res.Finished)
		assert.Equal(t, testQuiz()[1], res.Next)
		assert.Equal(t, entities.Score{Correct: 1, Total: 2}, res.Score)
	})

	t.Run("last answer finishes", func(t *testing.T) {
		t.Parallel()

		s := newQuizServiceMock(t, func(m quizMocks) {
			m.quizRepo.EXPECT().GetByID(gomock.Any(), int64(1), int64(5)).Return(activeSession(1, 1), nil)
			m.quizRepo.EXPECT().SaveAnswer(gomock.Any(), gomock.Any()).Return(nil)
			m.quizRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, s *entities.QuizSession) error {
					assert.Equal(t, entities.SessionCompleted, s.Status)
					assert.NotNil(t, s.CompletedAt)
					return nil
				})
		})

		res, err := s.Answer(context.Background(), 1, 5, "  DOG ")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusCorrect, res.Status)
		assert.True(t, res.Finished)
		assert.Nil(t, res.Next)
		assert.Equal(t, 100.0, res.Score.Percent())
	})

	t.Run("skip", func(t *testing.T) {
		t.Parallel()

		s := newQuizServiceMock(t, func(m quizMocks) {
			m.quizRepo.EXPECT().GetByID(gomock.Any(), int64(1), int64(5)).Return(activeSession(0, 0), nil)
			m.quizRepo.EXPECT().SaveAnswer(gomock.Any(), gomock.Any()).Return(nil)
			m.quizRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		})

		res, err := s.Answer(context.Background(), 1, 5, entities.NoAnswer)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusUnanswered, res.Status)
		assert.Equal(t, 0, res.Score.Correct)
	})

	t.Run("completed session", func(t *testing.T) {
		t.Parallel()

		done := activeSession(2, 1)
		done.Status = entities.SessionCompleted
		s := newQuizServiceMock(t, func(m quizMocks) {
			m.quizRepo.EXPECT().GetByID(gomock.Any(), int64(1), int64(5)).Return(done, nil)
		})

		_, err := s.Answer(context.Background(), 1, 5, "dog")
		assert.ErrorIs(t, err, ErrSessionNotActive)
	})

	t.Run("concurrent answer", func(t *testing.T) {
		t.Parallel()

		s := newQuizServiceMock(t, func(m quizMocks) {
			m.quizRepo.EXPECT().GetByID(gomock.Any(), int64(1), int64(5)).Return(activeSession(0, 0), nil)
			m.quizRepo.EXPECT().SaveAnswer(gomock.Any(), gomock.Any()).Return(nil)
			m.quizRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(repository.ErrOptimisticLock)
		})

		_, err := s.Answer(context.Background(), 1, 5, "кошка")
		assert.ErrorIs(t, err, repository.ErrOptimisticLock)
	})
}

func TestQuizService_ExportJSON(t *testing.T) {
	t.Parallel()

	s := newQuizServiceMock(t, func(m quizMocks) {
		m.quizRepo.EXPECT().GetByID(gomock.Any(), int64(1), int64(5)).Return(&entities.QuizSession{
			ID:              5,
			Questions:       testQuiz(),
			CurrentQuestion: 1,
			CorrectAnswers:  1,
			Status:          entities.SessionActive,
		}, nil)
		m.quizRepo.EXPECT().ListAnswers(gomock.Any(), int64(5)).Return([]*entities.QuizAnswer{
			{QuestionOrder: 0, Kind: entities.KindMCQ, UserAnswer: "кошка", Status: entities.StatusCorrect},
		}, nil)
	})

	data, err := s.ExportJSON(context.Background(), 1, 5)
	require.NoError(t, err)

	var got struct {
		Quiz    entities.Quiz `json:"quiz"`
		Answers []struct {
			Order  int    `json:"order"`
			Type   string `json:"type"`
			Status string `json:"status"`
		} `json:"answers"`
		Score entities.Score `json:"score"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, testQuiz(), got.Quiz)
	require.Len(t, got.Answers, 1)
	assert.Equal(t, "mcq", got.Answers[0].Type)
	assert.Equal(t, entities.Score{Correct: 1, Total: 2}, got.Score)
}
