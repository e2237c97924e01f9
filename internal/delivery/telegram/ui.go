package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

var quizLengthChoices = []int{5, 10, 15, 20}

// buildDeckListKeyboard builds one button per deck.
func buildDeckListKeyboard(decks []*entities.Deck, activeID string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(decks))
	for _, d := range decks {
		label := fmt.Sprintf("📘 %s (%d)", d.Title, len(d.Entries))
		if d.ID.String() == activeID {
			label = "⭐ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildDeckCallback(deckOpen, d.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildDeckKeyboard builds actions for a single deck.
func buildDeckKeyboard(deck *entities.Deck) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Use for quizzes", buildDeckCallback(deckSelect, deck.ID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📤 Export", buildDeckCallback(deckExport, deck.ID)),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Delete", buildDeckCallback(deckDelete, deck.ID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« All decks", buildDeckListCallback()),
		),
	)
}

// buildQuestionKeyboard builds the answer buttons of a question.
// Fill questions are answered with a text message and only get a skip button.
func buildQuestionKeyboard(q entities.Question, sessionID int64, order int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	switch q := q.(type) {
	case entities.MCQQuestion:
		for i, option := range q.Options {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(option, buildQuizOptionCallback(sessionID, order, i)),
			))
		}
	case entities.TFQuestion:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ True", buildQuizTFCallback(sessionID, order, true)),
			tgbotapi.NewInlineKeyboardButtonData("❌ False", buildQuizTFCallback(sessionID, order, false)),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏭ Skip", buildQuizSkipCallback(sessionID, order)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard(sessionID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 New quiz", buildQuizStartCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📥 Results as JSON", buildQuizExportCallback(sessionID)),
		),
	)
}

// buildSettingsKeyboard builds main settings keyboard.
func buildSettingsKeyboard(settings *entities.UserSettings) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, k := range entities.AllQuestionKinds {
		mark := "☐"
		if settings.HasKind(k) {
			mark = "☑️"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(mark+" "+msgKindName(k), buildSettingsKindCallback(k)),
		))
	}

	lengthRow := make([]tgbotapi.InlineKeyboardButton, 0, len(quizLengthChoices))
	for _, n := range quizLengthChoices {
		label := strconv.Itoa(n)
		if settings.QuizLength == n {
			label = "• " + label + " •"
		}
		lengthRow = append(lengthRow, tgbotapi.NewInlineKeyboardButtonData(label, buildSettingsLengthCallback(n)))
	}
	rows = append(rows, lengthRow)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
