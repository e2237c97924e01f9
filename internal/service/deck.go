package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-deck-bot/internal/vocab"
	"github.com/aliskhannn/vocab-deck-bot/pkg/validator"
)

var (
	ErrEmptyDeck         = errors.New("no vocabulary found in the input")
	ErrNoActiveDeck      = errors.New("no active deck")
	ErrEnrichmentFailed  = errors.New("could not complete the word list")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ExportFile is a rendered deck ready to be sent as a document.
type ExportFile struct {
	Name string
	Data []byte
}

type DeckService struct {
	tr       Transactor
	decks    DeckRepository
	settings SettingsRepository
	enricher Enricher // nil when enrichment is disabled
	logger   *zap.Logger
}

func NewDeckService(
	tr Transactor,
	decks DeckRepository,
	settings SettingsRepository,
	enricher Enricher,
	logger *zap.Logger,
) *DeckService {
	return &DeckService{
		tr:       tr,
		decks:    decks,
		settings: settings,
		enricher: enricher,
		logger:   logger,
	}
}

// Import parses text into a new deck and makes it the user's active deck.
// Word-only lists are completed by the enricher when one is configured.
func (s *DeckService) Import(ctx context.Context, userID int64, title, text string) (*entities.Deck, error) {
	entries := vocab.Parse(text)
	if len(entries) == 0 {
		return nil, ErrEmptyDeck
	}

	deck := entities.NewDeck(userID, strings.TrimSpace(title), entries)
	if containsHan(entries) {
		deck.TargetLanguage = entities.LanguageChinese
		deck.IPAStyle = entities.IPAStylePinyin
	}

	if err := validator.ValidateStruct(deck); err != nil {
		return nil, err
	}

	if vocab.IsWordOnly(entries) && s.enricher != nil {
		enriched, err := s.enricher.Enrich(ctx, deck.Words(), deck.TargetLanguage, deck.IPAStyle)
		if err != nil {
			s.logger.Warn("enrich deck", zap.Int64("user_id", userID), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrEnrichmentFailed, err)
		}
		if len(enriched) == 0 {
			return nil, ErrEmptyDeck
		}
		deck.Entries = enriched
	}

	err := s.tr.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.decks.Create(ctx, deck); err != nil {
			return err
		}
		if _, err := getOrCreateSettings(ctx, s.settings, userID); err != nil {
			return err
		}
		return s.settings.SetActiveDeck(ctx, userID, &deck.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("deck imported",
		zap.Int64("user_id", userID),
		zap.String("deck_id", deck.ID.String()),
		zap.Int("entries", len(deck.Entries)),
		zap.Int("eligible", deck.EligibleCount()),
	)

	return deck, nil
}

func (s *DeckService) List(ctx context.Context, userID int64) ([]*entities.Deck, error) {
	return s.decks.ListByUserID(ctx, userID)
}

func (s *DeckService) Get(ctx context.Context, userID int64, deckID uuid.UUID) (*entities.Deck, error) {
	return s.decks.GetByID(ctx, userID, deckID)
}

// Active returns the deck new quizzes are drawn from.
func (s *DeckService) Active(ctx context.Context, userID int64) (*entities.Deck, error) {
	settings, err := getOrCreateSettings(ctx, s.settings, userID)
	if err != nil {
		return nil, err
	}
	if settings.ActiveDeckID == nil {
		return nil, ErrNoActiveDeck
	}

	return s.decks.GetByID(ctx, userID, *settings.ActiveDeckID)
}

func (s *DeckService) Delete(ctx context.Context, userID int64, deckID uuid.UUID) error {
	if err := s.decks.Delete(ctx, userID, deckID); err != nil {
		return err
	}

	s.logger.Info("deck deleted", zap.Int64("user_id", userID), zap.String("deck_id", deckID.String()))
	return nil
}

// Export renders the deck in the given format.
func (s *DeckService) Export(ctx context.Context, userID int64, deckID uuid.UUID, format string) (*ExportFile, error) {
	deck, err := s.decks.GetByID(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}

	return RenderDeck(deck, format)
}

// RenderDeck encodes the deck entries as a CSV or JSON file.
func RenderDeck(deck *entities.Deck, format string) (*ExportFile, error) {
	var buf bytes.Buffer
	switch format {
	case FormatCSV:
		if err := vocab.WriteCSV(&buf, deck.Entries); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
	case FormatJSON:
		if err := vocab.WriteJSON(&buf, deck.Entries); err != nil {
			return nil, fmt.Errorf("write json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return &ExportFile{
		Name: vocab.FileName(deck.Title, format),
		Data: buf.Bytes(),
	}, nil
}

func containsHan(entries []entities.VocabEntry) bool {
	for _, e := range entries {
		for _, r := range e.Word {
			if unicode.Is(unicode.Han, r) {
				return true
			}
		}
	}
	return false
}
