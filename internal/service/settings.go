package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/infra/postgres/repository"
)

var ErrNoKinds = errors.New("at least one question kind is required")

// Not-found errors of the repositories, surfaced unchanged by the services.
var (
	ErrDeckNotFound    = repository.ErrDeckNotFound
	ErrSessionNotFound = repository.ErrSessionNotFound
	ErrOptimisticLock  = repository.ErrOptimisticLock
)

type SettingsService struct {
	repository SettingsRepository
	decks      DeckRepository
}

func NewSettingsService(repository SettingsRepository, decks DeckRepository) *SettingsService {
	return &SettingsService{repository: repository, decks: decks}
}

func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	return getOrCreateSettings(ctx, s.repository, userID)
}

// SetQuizKinds replaces the enabled kinds. Unknown kinds are rejected.
func (s *SettingsService) SetQuizKinds(
	ctx context.Context, userID int64, kinds []entities.QuestionKind,
) (*entities.UserSettings, error) {
	if len(kinds) == 0 {
		return nil, ErrNoKinds
	}
	for _, k := range kinds {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: %q", entities.ErrUnknownQuestionKind, k)
		}
	}

	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.QuizKinds = nil
	for _, k := range entities.AllQuestionKinds {
		for _, want := range kinds {
			if k == want {
				settings.QuizKinds = append(settings.QuizKinds, k)
				break
			}
		}
	}

	if err := s.repository.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// ToggleQuizKind flips one kind on or off, keeping at least one enabled.
func (s *SettingsService) ToggleQuizKind(
	ctx context.Context, userID int64, kind entities.QuestionKind,
) (*entities.UserSettings, error) {
	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !settings.ToggleKind(kind) {
		return settings, nil
	}

	if err := s.repository.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// SetQuizLength stores n clamped to the supported range.
func (s *SettingsService) SetQuizLength(ctx context.Context, userID int64, n int) (*entities.UserSettings, error) {
	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.QuizLength = entities.ClampQuizLength(n)
	if err := s.repository.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// SetActiveDeck makes the user's deck the source of new quizzes.
func (s *SettingsService) SetActiveDeck(ctx context.Context, userID int64, deckID uuid.UUID) error {
	if _, err := s.decks.GetByID(ctx, userID, deckID); err != nil {
		return err
	}

	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return err
	}

	return s.repository.SetActiveDeck(ctx, userID, &deckID)
}

func getOrCreateSettings(ctx context.Context, repo SettingsRepository, userID int64) (*entities.UserSettings, error) {
	settings, err := repo.GetByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, err
	}

	settings = entities.NewUserSettings(userID)
	if err := repo.Create(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
