package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/vocab-deck-bot/internal/storage"
)

// maxDocumentSize limits uploaded word lists.
const maxDocumentSize = 1 << 20

var errFileTooLarge = errors.New("file too large")

var supportedDocumentExt = map[string]bool{
	".csv": true,
	".tsv": true,
	".txt": true,
}

// handleDocument imports an uploaded word list into the deck announced by /new.
func (h *Handler) handleDocument(userID int64, doc *tgbotapi.Document) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		pending := h.quizStorage.GetPending(chatID)
		if pending.Kind != storage.PendingDeckText {
			return h.send(newPlainMessage(chatID, msgNothingPending))
		}

		if !supportedDocumentExt[strings.ToLower(filepath.Ext(doc.FileName))] {
			return h.send(newPlainMessage(chatID, msgUnsupportedFile))
		}
		if doc.FileSize > maxDocumentSize {
			return h.send(newPlainMessage(chatID, msgFileTooLarge))
		}

		text, err := h.downloadFile(ctx, doc.FileID)
		if errors.Is(err, errFileTooLarge) {
			return h.send(newPlainMessage(chatID, msgFileTooLarge))
		}
		if err != nil {
			return err
		}

		return h.importDeck(ctx, chatID, userID, pending.Title, text)
	}
}

func (h *Handler) downloadFile(ctx context.Context, fileID string) (string, error) {
	url, err := h.bot.GetFileDirectURL(fileID)
	if err != nil {
		return "", fmt.Errorf("get file url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download file: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if len(data) > maxDocumentSize {
		return "", errFileTooLarge
	}

	return strings.TrimPrefix(string(data), "\ufeff"), nil
}

func (h *Handler) sendDocument(chatID int64, name string, data []byte) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	return h.send(doc)
}
