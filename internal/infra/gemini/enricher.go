// Package gemini fills in pronunciation and meaning for word-only decks
// using the Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

var (
	ErrMissingAPIKey = errors.New("gemini API key is required")
	ErrRateLimited   = errors.New("gemini rate limit exceeded")
	ErrUnavailable   = errors.New("gemini unavailable")
	ErrBadResponse   = errors.New("gemini returned malformed entries")
)

type Config struct {
	APIKey          string
	Model           string
	MeaningLanguage string
}

type contentGenerator interface {
	GenerateContent(
		ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Enricher turns bare words into full vocabulary entries.
type Enricher struct {
	models          contentGenerator
	model           string
	meaningLanguage string
	logger          *zap.Logger
}

func NewEnricher(ctx context.Context, cfg Config, logger *zap.Logger) (*Enricher, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return newEnricher(client.Models, cfg, logger), nil
}

func newEnricher(models contentGenerator, cfg Config, logger *zap.Logger) *Enricher {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	lang := cfg.MeaningLanguage
	if lang == "" {
		lang = "English"
	}

	return &Enricher{
		models:          models,
		model:           model,
		meaningLanguage: lang,
		logger:          logger,
	}
}

// Enrich returns one entry per word, in the order the model produced them.
// Entries without a word are dropped.
func (e *Enricher) Enrich(
	ctx context.Context, words []string, lang entities.TargetLanguage, style entities.IPAStyle,
) ([]entities.VocabEntry, error) {
	if len(words) == 0 {
		return []entities.VocabEntry{}, nil
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: e.systemPrompt(lang, style)}},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema:   entrySchema(),
	}
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: strings.Join(words, "\n")}},
	}}

	result, err := e.models.GenerateContent(ctx, e.model, contents, config)
	if err != nil {
		return nil, mapError(err)
	}

	entries, err := parseEntries(result.Text())
	if err != nil {
		return nil, err
	}

	e.logger.Debug("deck enriched",
		zap.String("model", e.model),
		zap.Int("words", len(words)),
		zap.Int("entries", len(entries)),
	)

	return entries, nil
}

func (e *Enricher) systemPrompt(lang entities.TargetLanguage, style entities.IPAStyle) string {
	var b strings.Builder
	b.WriteString("You are a vocabulary assistant. For every input line, return one entry with ")
	b.WriteString("the word exactly as given, its pronunciation and a short meaning in ")
	b.WriteString(e.meaningLanguage)
	b.WriteString(".\n")

	switch {
	case lang == entities.LanguageChinese || style == entities.IPAStylePinyin:
		b.WriteString("The words are Chinese. Write the pronunciation as Hanyu Pinyin with tone marks.")
	case style == entities.IPAStyleUK:
		b.WriteString("The words are English. Write the pronunciation in British IPA between slashes.")
	default:
		b.WriteString("The words are English. Write the pronunciation in American IPA between slashes.")
	}

	return b.String()
}

func entrySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"word":    {Type: genai.TypeString},
				"ipa":     {Type: genai.TypeString},
				"meaning": {Type: genai.TypeString},
			},
			Required: []string{"word", "ipa", "meaning"},
		},
	}
}

func parseEntries(text string) ([]entities.VocabEntry, error) {
	var raw []entities.VocabEntry
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	entries := make([]entities.VocabEntry, 0, len(raw))
	for _, r := range raw {
		r.Word = strings.TrimSpace(r.Word)
		if r.Word == "" {
			continue
		}
		r.IPA = strings.TrimSpace(r.IPA)
		r.Meaning = strings.TrimSpace(r.Meaning)
		entries = append(entries, r)
	}

	return entries, nil
}

func mapError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
