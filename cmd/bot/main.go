package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/vocab-deck-bot/internal/config"
	"github.com/aliskhannn/vocab-deck-bot/internal/delivery/telegram"
	"github.com/aliskhannn/vocab-deck-bot/internal/infra/gemini"
	"github.com/aliskhannn/vocab-deck-bot/internal/infra/postgres"
	"github.com/aliskhannn/vocab-deck-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/vocab-deck-bot/internal/logger"
	"github.com/aliskhannn/vocab-deck-bot/internal/quiz"
	"github.com/aliskhannn/vocab-deck-bot/internal/service"
	"github.com/aliskhannn/vocab-deck-bot/internal/storage"
	"github.com/aliskhannn/vocab-deck-bot/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil && !errors.Is(err, context.Canceled) {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}
	lg.Info("shutdown complete")
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}

	if err := postgres.Migrate(ctx, dsn, migrations.FS, lg); err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "new", Description: "Create a deck: /new <title>"},
		{Command: "decks", Description: "Your decks"},
		{Command: "quiz", Description: "Start a quiz on the active deck"},
		{Command: "settings", Description: "Question types and quiz length"},
		{Command: "export", Description: "Download the active deck"},
		{Command: "cancel", Description: "Stop the current quiz or import"},
		{Command: "help", Description: "Help"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	// Initialize repositories and services.
	tr := postgres.NewTransactor(pool)
	userRepo := repository.NewUserRepository(pool)
	deckRepo := repository.NewDeckRepository(pool)
	quizRepo := repository.NewQuizRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)

	var enricher service.Enricher
	if cfg.Gemini.APIKey != "" {
		e, err := gemini.NewEnricher(ctx, gemini.Config{
			APIKey:          cfg.Gemini.APIKey,
			Model:           cfg.Gemini.Model,
			MeaningLanguage: cfg.Gemini.MeaningLanguage,
		}, lg)
		if err != nil {
			return err
		}
		enricher = e
	} else {
		lg.Info("gemini api key not set, word-only lists will not be enriched")
	}

	userService := service.NewUserService(tr, userRepo, settingsRepo, lg)
	settingsService := service.NewSettingsService(settingsRepo, deckRepo)
	deckService := service.NewDeckService(tr, deckRepo, settingsRepo, enricher, lg)
	quizService := service.NewQuizService(tr, quizRepo, deckRepo, settingsRepo, quiz.NewGenerator(quiz.DefaultSource()), lg)
	janitor := service.NewSessionJanitor(quizRepo, cfg.Quiz.SessionTTL, cfg.Quiz.JanitorSchedule, lg)

	handler := telegram.NewHandler(
		bot,
		lg,
		userService,
		deckService,
		quizService,
		settingsService,
		storage.NewQuizStorage(),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return janitor.Start(ctx)
	})
	g.Go(func() error {
		defer bot.StopReceivingUpdates()
		return handler.Run(ctx)
	})

	return g.Wait()
}
