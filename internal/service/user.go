package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

type UserService struct {
	tr       Transactor
	users    UserRepository
	settings SettingsRepository
	logger   *zap.Logger
}

func NewUserService(tr Transactor, users UserRepository, settings SettingsRepository, logger *zap.Logger) *UserService {
	return &UserService{tr: tr, users: users, settings: settings, logger: logger}
}

// EnsureUser registers the user on first contact together with default settings.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.tr.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.users.Save(ctx, entities.NewUser(userID, chatID))
		if err != nil {
			return err
		}
		if !created {
			return nil
		}

		if err := s.settings.Create(ctx, entities.NewUserSettings(userID)); err != nil {
			return err
		}

		s.logger.Info("user registered", zap.Int64("user_id", userID), zap.Int64("chat_id", chatID))
		return nil
	})
}
