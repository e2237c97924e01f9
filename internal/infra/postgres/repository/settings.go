package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/infra/postgres"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository provides access to user settings data in the database.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository with the provided database pool.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create stores settings unless the user already has some.
func (r *SettingsRepository) Create(ctx context.Context, settings *entities.UserSettings) error {
	query := `
		INSERT INTO user_settings (
			user_id, quiz_kinds, quiz_length, active_deck_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := postgres.Executor(ctx, r.db).Exec(
		ctx,
		query,
		settings.UserID,
		kindsToStrings(settings.QuizKinds),
		settings.QuizLength,
		settings.ActiveDeckID,
		settings.CreatedAt,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByUserID retrieves settings for a user.
func (r *SettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	query := `
		SELECT user_id, quiz_kinds, quiz_length, active_deck_id, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var (
		settings entities.UserSettings
		kinds    []string
	)
	err := postgres.Executor(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&kinds,
		&settings.QuizLength,
		&settings.ActiveDeckID,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	settings.QuizKinds = stringsToKinds(kinds)

	return &settings, nil
}

// Update overwrites the quiz preferences of a user.
func (r *SettingsRepository) Update(ctx context.Context, settings *entities.UserSettings) error {
	query := `
		UPDATE user_settings
		SET quiz_kinds = $1,
		    quiz_length = $2,
		    active_deck_id = $3,
		    updated_at = $4
		WHERE user_id = $5
	`

	settings.UpdatedAt = time.Now()
	result, err := postgres.Executor(ctx, r.db).Exec(
		ctx,
		query,
		kindsToStrings(settings.QuizKinds),
		settings.QuizLength,
		settings.ActiveDeckID,
		settings.UpdatedAt,
		settings.UserID,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// SetActiveDeck points the user's quizzes at the given deck.
func (r *SettingsRepository) SetActiveDeck(ctx context.Context, userID int64, deckID *uuid.UUID) error {
	query := `
		UPDATE user_settings
		SET active_deck_id = $1, updated_at = NOW()
		WHERE user_id = $2
	`

	result, err := postgres.Executor(ctx, r.db).Exec(ctx, query, deckID, userID)
	if err != nil {
		return fmt.Errorf("set active deck: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

func kindsToStrings(kinds []entities.QuestionKind) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, string(k))
	}
	return out
}

// stringsToKinds drops values that are no longer known kinds.
func stringsToKinds(values []string) []entities.QuestionKind {
	out := make([]entities.QuestionKind, 0, len(values))
	for _, v := range values {
		if k := entities.QuestionKind(v); k.Valid() {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		out = append(out, entities.KindMCQ)
	}
	return out
}
