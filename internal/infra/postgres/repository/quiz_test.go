package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

func sampleQuiz() entities.Quiz {
	return entities.Quiz{
		entities.MCQQuestion{Question: "cat", Options: []string{"dog", "cat", "cow", "fox"}, Answer: "cat"},
		entities.TFQuestion{Question: "run", Meaning: "бежать", Answer: true},
		entities.FillQuestion{Question: "кошка", Answer: "cat"},
	}
}

func TestQuizRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewQuizRepository(mock)

	session := entities.NewQuizSession(42, uuid.New(), sampleQuiz())

	mock.ExpectQuery(`INSERT INTO quiz_sessions`).
		WithArgs(int64(42), session.DeckID, pgxmock.AnyArg(), 0, 0, entities.SessionActive, pgxmock.AnyArg(), 0).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	id, err := repo.Create(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepository_GetActiveByUserID(t *testing.T) {
	deckID := uuid.New()
	questions, err := json.Marshal(sampleQuiz())
	require.NoError(t, err)

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "active session",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{
					"id", "user_id", "deck_id", "questions", "current_question", "correct_answers",
					"status", "started_at", "completed_at", "version",
				}).AddRow(int64(3), int64(42), deckID, questions, 1, 1, "active", time.Now(), (*time.Time)(nil), 1)
				mock.ExpectQuery(`FROM quiz_sessions\s+WHERE user_id = \$1 AND status = 'active'`).
					WithArgs(int64(42)).
					WillReturnRows(rows)
			},
		},
		{
			name: "none",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM quiz_sessions`).
					WithArgs(int64(42)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewQuizRepository(mock)
			tt.setup(mock)

			session, err := repo.GetActiveByUserID(context.Background(), 42)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(3), session.ID)
				assert.Equal(t, deckID, session.DeckID)
				assert.Equal(t, sampleQuiz(), session.Questions)
				assert.Nil(t, session.CompletedAt)
				assert.Equal(t, entities.TFQuestion{Question: "run", Meaning: "бежать", Answer: true}, session.Current())
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuizRepository_Update(t *testing.T) {
	t.Run("bumps version", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewQuizRepository(mock)
		session := &entities.QuizSession{ID: 3, CurrentQuestion: 2, CorrectAnswers: 1, Status: "active", Version: 4}

		mock.ExpectExec(`UPDATE quiz_sessions`).
			WithArgs(2, 1, "active", (*time.Time)(nil), int64(3), 4).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.Update(context.Background(), session))
		assert.Equal(t, 5, session.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewQuizRepository(mock)
		session := &entities.QuizSession{ID: 3, Status: "active", Version: 4}

		mock.ExpectExec(`UPDATE quiz_sessions`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), int64(3), 4).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Update(context.Background(), session)
		assert.ErrorIs(t, err, ErrOptimisticLock)
		assert.Equal(t, 4, session.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQuizRepository_SaveAnswer(t *testing.T) {
	mock := newMockPool(t)
	repo := NewQuizRepository(mock)

	session := &entities.QuizSession{ID: 3, UserID: 42}
	answer := entities.NewQuizAnswer(session, 0, sampleQuiz()[0], "cat", entities.StatusCorrect)

	mock.ExpectExec(`INSERT INTO quiz_answers`).
		WithArgs(int64(3), int64(42), 0, "mcq", "cat", "cat", "correct", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.SaveAnswer(context.Background(), answer))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepository_ListAnswers(t *testing.T) {
	mock := newMockPool(t)
	repo := NewQuizRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`FROM quiz_answers`).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "session_id", "user_id", "question_order", "kind",
			"user_answer", "correct_answer", "status", "answered_at",
		}).
			AddRow(int64(1), int64(3), int64(42), 0, "mcq", "cat", "cat", "correct", now).
			AddRow(int64(2), int64(3), int64(42), 1, "tf", "", "true", "unanswered", now))

	answers, err := repo.ListAnswers(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, entities.KindTF, answers[1].Kind)
	assert.Equal(t, entities.StatusUnanswered, answers[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepository_AbandonActive(t *testing.T) {
	mock := newMockPool(t)
	repo := NewQuizRepository(mock)

	mock.ExpectExec(`SET status = 'abandoned'`).
		WithArgs(int64(42)).
		WillReturnError(errors.New("connection reset"))

	err := repo.AbandonActive(context.Background(), 42)
	assert.ErrorContains(t, err, "abandon sessions")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepository_AbandonStale(t *testing.T) {
	mock := newMockPool(t)
	repo := NewQuizRepository(mock)

	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`WHERE status = 'active' AND started_at < \$1`).
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	n, err := repo.AbandonStale(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
