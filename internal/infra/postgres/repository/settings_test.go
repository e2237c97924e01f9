package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

func TestSettingsRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSettingsRepository(mock)

	settings := entities.NewUserSettings(42)

	mock.ExpectExec(`INSERT INTO user_settings`).
		WithArgs(int64(42), []string{"mcq"}, 10, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), settings))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_GetByUserID(t *testing.T) {
	deckID := uuid.New()
	now := time.Now()
	columns := []string{"user_id", "quiz_kinds", "quiz_length", "active_deck_id", "created_at", "updated_at"}

	tests := []struct {
		name      string
		rows      *pgxmock.Rows
		err       error
		wantKinds []entities.QuestionKind
		wantErr   error
	}{
		{
			name:      "known kinds",
			rows:      pgxmock.NewRows(columns).AddRow(int64(42), []string{"mcq", "fill"}, 15, &deckID, now, now),
			wantKinds: []entities.QuestionKind{entities.KindMCQ, entities.KindFill},
		},
		{
			name:      "unknown kinds fall back to mcq",
			rows:      pgxmock.NewRows(columns).AddRow(int64(42), []string{"arabic"}, 15, &deckID, now, now),
			wantKinds: []entities.QuestionKind{entities.KindMCQ},
		},
		{
			name:    "not found",
			err:     pgx.ErrNoRows,
			wantErr: ErrSettingsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewSettingsRepository(mock)

			exp := mock.ExpectQuery(`FROM user_settings`).WithArgs(int64(42))
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			settings, err := repo.GetByUserID(context.Background(), 42)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantKinds, settings.QuizKinds)
				assert.Equal(t, 15, settings.QuizLength)
				require.NotNil(t, settings.ActiveDeckID)
				assert.Equal(t, deckID, *settings.ActiveDeckID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSettingsRepository_Update(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSettingsRepository(mock)

	settings := entities.NewUserSettings(42)
	settings.QuizKinds = []entities.QuestionKind{entities.KindTF, entities.KindFill}
	settings.QuizLength = 5

	mock.ExpectExec(`UPDATE user_settings`).
		WithArgs([]string{"tf", "fill"}, 5, pgxmock.AnyArg(), pgxmock.AnyArg(), int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.Update(context.Background(), settings), ErrSettingsNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_SetActiveDeck(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSettingsRepository(mock)
	deckID := uuid.New()

	mock.ExpectExec(`SET active_deck_id = \$1`).
		WithArgs(&deckID, int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.SetActiveDeck(context.Background(), 42, &deckID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
